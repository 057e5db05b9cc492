// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/ulawmix/internal/audiotest"
)

func drain(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	buf := make([]float32, bufSize)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 100), 8000)

	if r.SampleRate() != 8000 || r.Channels() != 2 {
		t.Errorf("metadata = %d ch @ %d Hz, want 2 ch @ 8000 Hz", r.Channels(), r.SampleRate())
	}
}

func TestResampler_FrameCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
		frames  int
		want    int
	}{
		{name: "same rate", srcRate: 8000, dstRate: 8000, frames: 100, want: 100},
		{name: "halve", srcRate: 16000, dstRate: 8000, frames: 16000, want: 8000},
		{name: "double", srcRate: 8000, dstRate: 16000, frames: 8000, want: 16000},
		{name: "quarter", srcRate: 32000, dstRate: 8000, frames: 3200, want: 800},
		{name: "single frame", srcRate: 8000, dstRate: 8000, frames: 1, want: 1},
		{name: "empty", srcRate: 8000, dstRate: 16000, frames: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResampler(audiotest.NewSineSource(tt.srcRate, 1, tt.frames, 300), tt.dstRate)
			if got := len(drain(t, r, 512)); got != tt.want {
				t.Errorf("resampled %d frames, want %d", got, tt.want)
			}
		})
	}
}

func TestResampler_UnevenRatio(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSineSource(44100, 1, 44100, 440), 8000)
	got := len(drain(t, r, 1024))

	if got < 7999 || got > 8001 {
		t.Errorf("resampled %d frames, want about 8000", got)
	}
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 400, 440)
	out := drain(t, NewResampler(src, 8000), 64)

	src.Reset()
	want := drain(t, src, 64)

	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestResampler_ConstantSignal(t *testing.T) {
	t.Parallel()

	for _, dst := range []int{8000, 11025, 22050, 48000} {
		out := drain(t, NewResampler(audiotest.NewConstantSource(16000, 1, 1600, 0.5), dst), 256)

		for i, v := range out {
			if math.Abs(float64(v-0.5)) > 1e-4 {
				t.Fatalf("dst %d: sample %d = %v, want 0.5", dst, i, v)
			}
		}
	}
}

func TestResampler_StereoChannelsStaySeparate(t *testing.T) {
	t.Parallel()

	wave := func(_, ch int) float32 { return []float32{0.25, -0.75}[ch] }
	out := drain(t, NewResampler(audiotest.NewSource(16000, 2, 1600, wave), 8000), 200)

	if len(out) != 1600 {
		t.Fatalf("got %d values, want 1600", len(out))
	}

	for f := 0; f < len(out); f += 2 {
		if math.Abs(float64(out[f]-0.25)) > 1e-4 || math.Abs(float64(out[f+1]+0.75)) > 1e-4 {
			t.Fatalf("frame %d = (%v, %v), want (0.25, -0.75)", f/2, out[f], out[f+1])
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 2, 100), 16000)

	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_InvalidSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		srcRate  int
		channels int
		dstRate  int
		want     error
	}{
		{name: "target rate zero", srcRate: 8000, channels: 1, dstRate: 0, want: ErrInvalidSampleRate},
		{name: "target rate negative", srcRate: 8000, channels: 1, dstRate: -8000, want: ErrInvalidSampleRate},
		{name: "source rate zero", srcRate: 0, channels: 1, dstRate: 8000, want: ErrInvalidSampleRate},
		{name: "source rate negative", srcRate: -1, channels: 1, dstRate: 8000, want: ErrInvalidSampleRate},
		{name: "no channels", srcRate: 8000, channels: 0, dstRate: 8000, want: ErrInvalidChannels},
		{name: "negative channels", srcRate: 8000, channels: -2, dstRate: 8000, want: ErrInvalidChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResampler(audiotest.NewSilentSource(tt.srcRate, tt.channels, 100), tt.dstRate)

			// The error must be returned on every call, never a stream of frames.
			for range 2 {
				n, err := r.ReadSamples(make([]float32, 16))
				if n != 0 || !errors.Is(err, tt.want) {
					t.Fatalf("ReadSamples() = %d, %v, want 0, %v", n, err, tt.want)
				}
			}
		})
	}
}

type errSource struct{ Source }

var errBroken = errors.New("broken source")

func (errSource) ReadSamples([]float32) (int, error) { return 0, errBroken }

func TestResampler_PropagatesSourceErrors(t *testing.T) {
	t.Parallel()

	r := NewResampler(errSource{audiotest.NewSilentSource(8000, 1, 10)}, 16000)

	if _, err := r.ReadSamples(make([]float32, 16)); !errors.Is(err, errBroken) {
		t.Errorf("ReadSamples() error = %v, want errBroken", err)
	}
}

func TestResampler_EOFIsSticky(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 1, 10), 8000)
	_ = drain(t, r, 4)

	for range 3 {
		if n, err := r.ReadSamples(make([]float32, 4)); n != 0 || err != io.EOF {
			t.Fatalf("ReadSamples() after EOF = %d, %v", n, err)
		}
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		r := NewResampler(audiotest.NewSineSource(44100, 1, 44100, 440), 8000)
		for {
			if _, err := r.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
