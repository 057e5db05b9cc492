// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
	"github.com/ik5/ulawmix/audio"
	"github.com/ik5/ulawmix/internal/pcmsource"
	"github.com/ik5/ulawmix/internal/seekbuf"
)

// WAVE format tags.
const (
	formatPCM   = 1
	formatMuLaw = 7
)

// Decoder reads PCM 16-bit and mu-law WAV files.
type Decoder struct{}

// Register adds the WAV decoder to reg under "wav" and "wave".
func Register(reg *audio.Registry) {
	reg.Register("wav", Decoder{})
	reg.Register("wave", Decoder{})
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := open(r)
	if err != nil {
		return nil, err
	}

	switch {
	case dec.WavAudioFormat == formatMuLaw:
		data, rate, err := readMuLaw(dec)
		if err != nil {
			return nil, err
		}

		return audio.NewMuLawSource(data, rate), nil

	case dec.WavAudioFormat == formatPCM && dec.BitDepth == 16:
		if err := dec.FwdToPCM(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
		}

		return pcmsource.New(dec, int(dec.SampleRate), int(dec.NumChans), 16), nil

	default:
		return nil, fmt.Errorf("%w: format %d, %d-bit", ErrUnsupportedEncoding, dec.WavAudioFormat, dec.BitDepth)
	}
}

// open checks the RIFF/WAVE header and parses the fmt chunk.
func open(r io.Reader) (*wav.Decoder, error) {
	rs, err := seekbuf.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-audio/wav does not check the form type, so look at it first.
	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if p.ID != riff.RiffID || p.Format != riff.WavFormatID {
		return nil, ErrNotWavFile
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()

	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	// No fmt chunk.
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return dec, nil
}
