// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so the Source reports two
// channels. Fold and resample it before mixing:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	prompt, err := ulawmix.EncodeSource(src, 8000, 4096)
//
// Decoding only; MP3 writing is not supported.
package mp3
