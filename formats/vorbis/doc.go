// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	prompt, err := ulawmix.EncodeSource(src, 8000, 4096)
//
// Channel count and sample rate come from the stream. Samples are
// interleaved float32 as produced by the decoder; ReadSamples only ever
// returns whole frames.
//
// Register adds the decoder under "ogg", "oga" and "vorbis".
package vorbis
