// SPDX-License-Identifier: EPL-2.0

package ulawmix

import (
	"fmt"
	"io"

	"github.com/ik5/ulawmix/audio"
	"github.com/ik5/ulawmix/mulaw"
	"github.com/ik5/ulawmix/utils"
)

const defaultBufferSize = 4096

// EncodeSource turns any decoded Source into a mono mu-law buffer at
// targetRate, ready to be passed to MixAudioStreams.
//
// The pipeline is:
//  1. resample to targetRate (cubic interpolation)
//  2. downmix to mono by averaging channels
//  3. convert to 16-bit PCM
//  4. G.711 mu-law compress
//
// bufferSize is the read size used through the pipeline; values below 1
// fall back to 4096.
//
// Example:
//
//	src, _ := registry.Decode("mp3", file)
//	prompt, err := ulawmix.EncodeSource(src, 8000, 4096)
func EncodeSource(src audio.Source, targetRate, bufferSize int) ([]byte, error) {
	return collect(src, targetRate, bufferSize, func(x float32) byte {
		return mulaw.Encode(utils.Float32ToInt16(x))
	})
}

// ResampleToMono16 resamples src to targetRate, downmixes it to mono and
// returns 16-bit PCM.
func ResampleToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, error) {
	return collect(src, targetRate, bufferSize, utils.Float32ToInt16)
}

// DecodeToPCM16 expands a mu-law buffer recorded at sampleRate into 16-bit
// PCM at targetRate, e.g. to export a mix with wav.WritePCM16.
func DecodeToPCM16(data []byte, sampleRate, targetRate int) ([]int16, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, sampleRate)
	}

	return ResampleToMono16(audio.NewMuLawSource(data, sampleRate), targetRate, len(data))
}

// collect runs src through resample -> mono and converts every sample.
func collect[T any](src audio.Source, targetRate, bufferSize int, conv func(float32) T) ([]T, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, targetRate)
	}

	if bufferSize < 1 {
		bufferSize = defaultBufferSize
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	// Assume about two seconds and grow from there.
	out := make([]T, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			out = append(out, conv(x))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}
