// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/ulawmix/mulaw"
	"github.com/ik5/ulawmix/utils"
)

// MuLawSource exposes a mono mu-law buffer as a Source, so mixer output
// can go through the float pipeline (resampling, WAV export, ...).
// The buffer is read, never modified.
type MuLawSource struct {
	data       []byte
	sampleRate int
	pos        int
}

func NewMuLawSource(data []byte, sampleRate int) *MuLawSource {
	return &MuLawSource{data: data, sampleRate: sampleRate}
}

func (s *MuLawSource) SampleRate() int { return s.sampleRate }
func (s *MuLawSource) Channels() int   { return 1 }
func (s *MuLawSource) BufSize() int    { return len(s.data) }
func (s *MuLawSource) Close() error    { return nil }

func (s *MuLawSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}

	n := min(len(dst), len(s.data)-s.pos)
	for i, b := range s.data[s.pos : s.pos+n] {
		dst[i] = utils.Int16ToFloat32(mulaw.Decode(b))
	}
	s.pos += n

	if s.pos >= len(s.data) {
		return n, io.EOF
	}

	return n, nil
}
