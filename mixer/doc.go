// SPDX-License-Identifier: EPL-2.0

// Package mixer combines mu-law audio buffers in the linear domain.
//
// It is built for voice overlay in telephony: a base ("original") stream
// keeps playing while a secondary ("whisper") stream is laid on top of
// it with its own volume and a linear fade-in / fade-out so the overlay
// does not click in or out.
//
// All functions work on whole buffers and return freshly allocated
// slices. Input slices are never modified or retained, so independent
// calls may run concurrently without any locking.
//
// # Mixing
//
//	cfg := mixer.NewConfig(0.3, 1.0, 100, 100, 8000)
//	out, err := mixer.Mix(original, whisper, cfg)
//
// The result is as long as the longer input; a stream that runs out is
// treated as silence. Samples are summed in 32 bits and saturated to
// 16 bits before re-encoding, so loud inputs clip instead of wrapping.
//
// # Envelope
//
// Only the whisper stream is enveloped. Gain rises linearly from 0 over
// the fade-in samples, stays at 1, then falls linearly to 0 over the
// fade-out samples. When the two ramps overlap on a short buffer the
// gains are multiplied.
//
// # Volume and Silence
//
//	quieter := mixer.ReduceVolume(buf, 0.5)
//	gap, err := mixer.Silence(250, 8000) // 2000 bytes of mulaw.Silence
//
// Volumes are not range checked; values above 1 amplify and saturate.
//
// # Errors
//
// Invalid sample rates and durations are reported before any work is
// done. Both ErrInvalidSampleRate and ErrInvalidDuration match
// ErrInvalidConfiguration with errors.Is.
package mixer
