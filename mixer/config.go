// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"math"
)

// Config holds the parameters of a single Mix call.
// It is a value type with no setters; build it with NewConfig.
type Config struct {
	whisperVolume  float64
	originalVolume float64
	fadeInMs       float64
	fadeOutMs      float64
	sampleRate     float64
}

// NewConfig builds a Config. Nothing is validated here; Mix rejects an
// invalid sample rate before touching any sample.
func NewConfig(whisperVolume, originalVolume, fadeInMs, fadeOutMs, sampleRate float64) Config {
	return Config{
		whisperVolume:  whisperVolume,
		originalVolume: originalVolume,
		fadeInMs:       fadeInMs,
		fadeOutMs:      fadeOutMs,
		sampleRate:     sampleRate,
	}
}

// WhisperVolume is the gain applied to the whisper stream.
func (c Config) WhisperVolume() float64 { return c.whisperVolume }

// OriginalVolume is the gain applied to the original stream.
func (c Config) OriginalVolume() float64 { return c.originalVolume }

// FadeInMs is the length of the whisper fade-in ramp in milliseconds.
func (c Config) FadeInMs() float64 { return c.fadeInMs }

// FadeOutMs is the length of the whisper fade-out ramp in milliseconds.
func (c Config) FadeOutMs() float64 { return c.fadeOutMs }

// SampleRate is the rate, in samples per second, used to turn fade
// lengths into sample counts.
func (c Config) SampleRate() float64 { return c.sampleRate }

// Validate reports whether the configuration can be used for mixing.
func (c Config) Validate() error {
	return validateRate(c.sampleRate)
}

// Envelope returns the whisper envelope for a buffer of total samples.
func (c Config) Envelope(total int) Envelope {
	return Envelope{
		Total:   total,
		FadeIn:  msToFadeSamples(c.fadeInMs, c.sampleRate, total),
		FadeOut: msToFadeSamples(c.fadeOutMs, c.sampleRate, total),
	}
}

func validateRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	return nil
}

// msToFadeSamples rounds a fade length to samples and clamps it to [0, total].
func msToFadeSamples(ms, sampleRate float64, total int) int {
	n := math.Round(ms * sampleRate / 1000)

	switch {
	case math.IsNaN(n) || n <= 0:
		return 0
	case n >= float64(total):
		return total
	}

	return int(n)
}
