// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/ulawmix/audio"
	"github.com/ik5/ulawmix/internal/pcmsource"
	"github.com/ik5/ulawmix/internal/seekbuf"
)

// Decoder reads integer PCM AIFF files.
type Decoder struct{}

// Register adds the AIFF decoder to reg under "aiff" and "aif".
func Register(reg *audio.Registry) {
	reg.Register("aiff", Decoder{})
	reg.Register("aif", Decoder{})
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek.
	rs, err := seekbuf.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcmsource.New(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth)), nil
}
