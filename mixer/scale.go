// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/ik5/ulawmix/mulaw"
	"github.com/ik5/ulawmix/utils"
)

// Scale multiplies s by volume and saturates the result to the int16 range,
// truncating toward zero. A NaN volume silences the sample.
func Scale(s int16, volume float64) int16 {
	return utils.SaturateInt16(float64(s) * volume)
}

// ReduceVolume scales every sample of a mu-law buffer by volume.
// The returned buffer has the same length as audio.
func ReduceVolume(audio []byte, volume float64) []byte {
	out := make([]byte, len(audio))
	for i, b := range audio {
		out[i] = mulaw.Encode(Scale(mulaw.Decode(b), volume))
	}

	return out
}
