// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// AIFF prompts are common when recordings come from macOS tooling. The
// decoder yields an audio.Source; pass it to ulawmix.EncodeSource to get a
// mu-law buffer the mixer accepts:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	prompt, err := ulawmix.EncodeSource(src, 8000, 4096)
//
// Integer PCM of 8, 16, 24 and 32 bits is supported, any channel count
// and sample rate. Samples are normalized to [-1.0, 1.0].
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: sample size not supported
//   - ErrUnsupportedAiffLayout: no usable format information
package aiff
