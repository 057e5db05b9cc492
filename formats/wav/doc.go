// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Supported Encodings
//
//   - PCM 16-bit, any channel count and sample rate
//   - G.711 mu-law (format tag 7), 8-bit mono
//
// # Mu-law Files
//
// ReadMuLaw and WriteMuLaw move raw G.711 bytes in and out of a WAV
// container without decoding them, so recordings can be fed straight to
// the mixer:
//
//	f, _ := os.Open("base.wav")
//	base, rate, err := wav.ReadMuLaw(f)
//	...
//	out, _ := os.Create("mixed.wav")
//	err = wav.WriteMuLaw(out, rate, mixed)
//
// # Decoding
//
// Decoder turns either encoding into an audio.Source of float32 samples
// in [-1.0, 1.0]:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Inputs that cannot seek are buffered in memory first.
//
// # Writing PCM
//
//	err := wav.WritePCM16(file, 8000, samples)
//
// # Errors
//
//   - ErrNotWavFile: not a RIFF/WAVE stream
//   - ErrUnsupportedWavLayout: missing or unreadable fmt chunk
//   - ErrUnsupportedEncoding: neither PCM 16-bit nor mu-law
//   - ErrMissingData: no data chunk
//   - ErrNotMuLaw, ErrNotMono: ReadMuLaw on a file it cannot return raw
//
// Errors are wrapped; test them with errors.Is.
package wav
