// SPDX-License-Identifier: EPL-2.0

// Package ulawmix mixes, attenuates and synthesizes G.711 mu-law audio.
//
// It targets telephony overlays: a base stream (a caller's voice, hold
// music) gets a quieter prompt laid over it, the prompt faded in and out
// so it does not click. Everything works on whole mono mu-law buffers at
// a single sample rate; there is no streaming API.
//
// # Quick Start
//
//	cfg := ulawmix.NewMixerConfig(
//	    0.3,  // whisper (overlay) volume
//	    1.0,  // original volume
//	    100,  // fade in, ms
//	    100,  // fade out, ms
//	    8000, // sample rate, Hz
//	)
//
//	mixed, err := ulawmix.MixAudioStreams(base, prompt, cfg)
//	if err != nil {
//	    return err // errors.Is(err, ulawmix.ErrInvalidConfiguration)
//	}
//
//	quiet := ulawmix.ReduceVolume(mixed, 0.5)
//	gap, _ := ulawmix.CreateSilence(250, 8000)
//
// The output of MixAudioStreams is as long as the longer input; the
// shorter one is padded with silence. Inputs are never modified.
//
// # Prompt Ingestion
//
// Prompts often arrive as WAV, MP3, Ogg Vorbis or AIFF. Decode them with
// the formats subpackages and convert with EncodeSource:
//
//	reg := audio.NewRegistry()
//	wav.Register(reg)
//	mp3.Register(reg)
//
//	src, err := reg.Decode(filepath.Ext(name), file)
//	prompt, err := ulawmix.EncodeSource(src, 8000, 4096)
//
// EncodeSource resamples with cubic interpolation, averages channels down
// to mono and compresses to mu-law.
//
// # Packages
//
//   - mulaw: bit exact G.711 mu-law codec
//   - mixer: scaling, fade envelope, mixing, silence
//   - audio: float sample pipeline (resampler, downmixer, registry)
//   - formats/wav: mu-law and PCM WAV read/write
//   - formats/mp3, formats/vorbis, formats/aiff: prompt decoders
//
// # Concurrency
//
// All operations are pure functions over caller owned slices and may be
// called from any number of goroutines.
package ulawmix
