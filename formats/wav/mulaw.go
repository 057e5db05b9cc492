// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/ulawmix/internal/seekbuf"
)

// ReadMuLaw reads a mono 8-bit mu-law WAV and returns the raw G.711 bytes
// with their sample rate. The bytes can be passed to the mixer as is.
func ReadMuLaw(r io.ReadSeeker) ([]byte, int, error) {
	dec, err := open(r)
	if err != nil {
		return nil, 0, err
	}

	return readMuLaw(dec)
}

func readMuLaw(dec *wav.Decoder) ([]byte, int, error) {
	if dec.WavAudioFormat != formatMuLaw || dec.BitDepth != 8 {
		return nil, 0, fmt.Errorf("%w: format %d, %d-bit", ErrNotMuLaw, dec.WavAudioFormat, dec.BitDepth)
	}

	if dec.NumChans != 1 {
		return nil, 0, fmt.Errorf("%w: %d channels", ErrNotMono, dec.NumChans)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrMissingData, err)
	}

	if dec.PCMChunk == nil {
		return nil, 0, ErrMissingData
	}

	// The chunk size may overstate a truncated file; keep what is there.
	data, err := io.ReadAll(io.LimitReader(dec.PCMChunk.R, int64(dec.PCMChunk.Size)))
	if err != nil {
		return nil, 0, fmt.Errorf("reading mu-law data: %w", err)
	}

	return data, int(dec.SampleRate), nil
}

// WriteMuLaw writes data as a mono 8-bit mu-law WAV (format tag 7).
func WriteMuLaw(w io.WriteSeeker, sampleRate int, data []byte) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	ints := make([]int, len(data))
	for i, b := range data {
		ints[i] = int(b)
	}

	return encode(w, sampleRate, 8, formatMuLaw, ints)
}

// EncodeMuLaw returns data as a complete mono mu-law WAV file.
func EncodeMuLaw(sampleRate int, data []byte) ([]byte, error) {
	var out seekbuf.Buffer
	if err := WriteMuLaw(&out, sampleRate, data); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func encode(w io.WriteSeeker, sampleRate, bitDepth, format int, data []int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, format)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	// Write even when data is empty so the header is emitted.
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}

	return nil
}
