// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/ulawmix/utils"
)

// Resampler converts a Source to another sample rate with Catmull-Rom
// cubic interpolation. Channel count and interleaving are preserved.
// When downsampling, input frames pass through a one-pole low-pass filter
// first to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     float64 // source frames per output frame
	err      error

	// win holds source frames n-1, n, n+1, n+2 around the read position;
	// real marks which of them came from the source rather than padding.
	win    [4][]float32
	real   [4]bool
	pos    float64 // fractional position between win[1] and win[2]
	primed bool

	in          []float32
	inPos       int
	inLen       int
	eof         bool
	lowPass     bool
	filterState []float32
	filterInit  bool
}

const lowPassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	srcRate := src.SampleRate()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
	}

	switch {
	case channels < 1:
		r.err = fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
		return r
	case srcRate <= 0:
		r.err = fmt.Errorf("%w: source %d", ErrInvalidSampleRate, srcRate)
		return r
	case dstRate <= 0:
		r.err = fmt.Errorf("%w: %d", ErrInvalidSampleRate, dstRate)
		return r
	}

	r.in = make([]float32, 1024*channels)
	r.filterState = make([]float32, channels)
	r.step = float64(srcRate) / float64(dstRate)
	r.lowPass = r.step > 1

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// next copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) next(dst []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels

		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	frame := r.in[r.inPos : r.inPos+r.channels]
	r.inPos += r.channels

	if r.lowPass {
		if !r.filterInit {
			copy(r.filterState, frame)
			r.filterInit = true
		}

		for c, v := range frame {
			r.filterState[c] = lowPassAlpha*v + (1-lowPassAlpha)*r.filterState[c]
		}
		frame = r.filterState
	}

	copy(dst, frame)

	return true, nil
}

// load fills win[i] from the source, repeating win[i-1] past the end.
func (r *Resampler) load(i int) error {
	ok, err := r.next(r.win[i])
	if err != nil {
		return err
	}

	if !ok {
		copy(r.win[i], r.win[i-1])
	}
	r.real[i] = ok

	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.win); i++ {
		if err := r.load(i); err != nil {
			return err
		}
	}

	// No frame before the first one; repeat it.
	copy(r.win[0], r.win[1])

	return nil
}

func (r *Resampler) advance() error {
	oldest := r.win[0]
	copy(r.win[:], r.win[1:])
	r.win[3] = oldest
	copy(r.real[:], r.real[1:])

	return r.load(3)
}

// ReadSamples produces interleaved samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			if err := r.advance(); err != nil {
				return written, err
			}
			r.pos--
		}

		if !r.real[1] {
			return written, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	return written, nil
}
