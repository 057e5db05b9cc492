// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/ulawmix/audio"
	"github.com/ik5/ulawmix/internal/audiotest"
)

// Example_resampler converts one second of 16kHz audio to 8kHz.
func Example_resampler() {
	source := audiotest.NewSineSource(16000, 1, 16000, 440)
	resampler := audio.NewResampler(source, 8000)

	buf := make([]float32, 4096)
	total := 0

	for {
		n, err := resampler.ReadSamples(buf)
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Printf("%d Hz, %d samples\n", resampler.SampleRate(), total)
	// Output: 8000 Hz, 8000 samples
}

// Example_monoMixer folds a stereo stream down to mono.
func Example_monoMixer() {
	source := audiotest.NewSineSource(8000, 2, 8000, 440)
	mono := audio.NewMonoMixer(source)

	fmt.Printf("in: %d channels, out: %d channel\n", source.Channels(), mono.Channels())
	// Output: in: 2 channels, out: 1 channel
}

// Example_muLawSource plays a mu-law buffer back as float samples.
func Example_muLawSource() {
	src := audio.NewMuLawSource([]byte{0xFF, 0x80, 0x00}, 8000)

	buf := make([]float32, 3)
	n, _ := src.ReadSamples(buf)

	fmt.Printf("%d samples: %.3f %.3f %.3f\n", n, buf[0], buf[1], buf[2])
	// Output: 3 samples: 0.000 0.980 -0.980
}
