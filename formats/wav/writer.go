// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/ulawmix/internal/seekbuf"
)

// WritePCM16 writes a mono 16-bit PCM WAV at sampleRate.
func WritePCM16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}

	return encode(w, sampleRate, 16, formatPCM, ints)
}

// EncodePCM16 returns samples as a complete mono 16-bit PCM WAV file.
func EncodePCM16(sampleRate int, samples []int16) ([]byte, error) {
	var out seekbuf.Buffer
	if err := WritePCM16(&out, sampleRate, samples); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
