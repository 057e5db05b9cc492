// SPDX-License-Identifier: EPL-2.0

package ulawmix

import "github.com/ik5/ulawmix/mixer"

// ErrInvalidConfiguration is returned for a non-positive or non-finite
// sample rate and for a negative or non-finite duration. Match it with
// errors.Is; the returned errors carry the offending value.
var ErrInvalidConfiguration = mixer.ErrInvalidConfiguration

// MixerConfig holds the volumes, fades and sample rate of a mix.
type MixerConfig = mixer.Config

// NewMixerConfig builds a MixerConfig. Fade lengths are in milliseconds,
// the sample rate in Hz.
func NewMixerConfig(whisperVolume, originalVolume, fadeInMs, fadeOutMs, sampleRate float64) MixerConfig {
	return mixer.NewConfig(whisperVolume, originalVolume, fadeInMs, fadeOutMs, sampleRate)
}

// MixAudioStreams lays the whisper stream over the original one.
// Both inputs are mono mu-law at cfg's sample rate; the result has the
// length of the longer input.
//
// Example:
//
//	cfg := ulawmix.NewMixerConfig(0.3, 1.0, 100, 100, 8000)
//	out, err := ulawmix.MixAudioStreams(base, prompt, cfg)
//	if errors.Is(err, ulawmix.ErrInvalidConfiguration) {
//	    // bad sample rate
//	}
func MixAudioStreams(original, whisper []byte, cfg MixerConfig) ([]byte, error) {
	return mixer.Mix(original, whisper, cfg)
}

// ReduceVolume scales every sample of a mu-law buffer by volume.
// Values above 1 amplify and saturate at full scale.
func ReduceVolume(audio []byte, volume float64) []byte {
	return mixer.ReduceVolume(audio, volume)
}

// CreateSilence returns durationMs of mu-law silence at sampleRate.
func CreateSilence(durationMs, sampleRate float64) ([]byte, error) {
	return mixer.Silence(durationMs, sampleRate)
}
