// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the module's tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame index i, in [-1, 1].
type Waveform func(i, ch int) float32

// Source is a synthetic audio.Source. It is declared here without
// importing the audio package so that package can use it in its own tests.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       Waveform
}

// NewSource returns a Source producing frames frames of wave.
func NewSource(sampleRate, channels, frames int, wave Waveform) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		wave:       wave,
	}
}

// NewSilentSource produces digital silence.
func NewSilentSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource produces a full-scale sine of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(i) / float64(sampleRate)))
	})
}

// NewConstantSource produces the same value on every sample.
func NewConstantSource(sampleRate, channels, frames int, value float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

// Reset rewinds the source to its first frame.
func (s *Source) Reset() { s.pos = 0 }

// ReadSamples writes whole frames of interleaved samples and returns
// io.EOF together with the last frames.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.wave(s.pos+f, ch)
		}
	}

	s.pos += n
	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}

	return n * s.channels, nil
}
