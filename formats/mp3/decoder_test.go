// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/ulawmix/audio"
)

// fakeMP3 serves little-endian int16 PCM the way gomp3.Decoder does.
type fakeMP3 struct {
	samples []int16
	offset  int
	err     error
}

func (f *fakeMP3) SampleRate() int { return 44100 }

func (f *fakeMP3) Read(buf []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	if f.offset >= len(f.samples) {
		return 0, io.EOF
	}

	n := min(len(buf)/2, len(f.samples)-f.offset)
	for i := range n {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(f.samples[f.offset+i]))
	}
	f.offset += n

	return n * 2, nil
}

func newSource(samples ...int16) *source {
	return &source{dec: &fakeMP3{samples: samples}, sampleRate: 44100}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not MP3 data"), nil} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource()
	src.buf = make([]byte, 8192)

	if src.SampleRate() != 44100 || src.Channels() != 2 || src.BufSize() != 4096 {
		t.Errorf("metadata = %d Hz, %d ch, buf %d", src.SampleRate(), src.Channels(), src.BufSize())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newSource(0, 16384, 32767, -16384, -32768, 8192)

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float32{0, 0.5, 32767.0 / 32768, -0.5, -1, 0.25}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}

	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_SmallReads(t *testing.T) {
	t.Parallel()

	src := newSource(make([]int16, 100)...)
	dst := make([]float32, 8)
	total := 0

	for {
		n, err := src.ReadSamples(dst)
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 100 {
		t.Errorf("read %d samples, want 100", total)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeMP3{err: io.ErrUnexpectedEOF}}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	Register(reg)

	if _, ok := reg.Get(".MP3"); !ok {
		t.Error("mp3 decoder not registered")
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		src := newSource(samples...)
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
