// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"math"
	"math/rand/v2"
)

const (
	// FullScalePositive is the mu-law code of the largest positive sample.
	FullScalePositive byte = 0x80
	// FullScaleNegative is the mu-law code of the largest negative sample.
	FullScaleNegative byte = 0x00
)

// Constant returns n copies of code.
func Constant(n int, code byte) []byte {
	return bytes.Repeat([]byte{code}, n)
}

// Random returns n reproducible pseudo-random mu-law bytes.
func Random(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(r.UintN(256))
	}

	return buf
}

// Tone returns n mu-law bytes of a sine at frequency Hz with the given
// peak amplitude in [0, 1]. Encoding is done with the plain G.711 formula
// so the fixture does not depend on the code under test.
func Tone(n, sampleRate int, frequency, amplitude float64) []byte {
	buf := make([]byte, n)
	for i := range buf {
		v := amplitude * 32767 * math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate))
		buf[i] = encode(int32(v))
	}

	return buf
}

func encode(v int32) byte {
	var sign byte
	if v < 0 {
		v = -v
		sign = 0x80
	}

	v = min(v, 32635) + 0x84

	exponent := byte(7)
	for mask := int32(0x4000); v&mask == 0 && exponent > 0; mask >>= 1 {
		exponent--
	}

	mantissa := byte(v>>(exponent+3)) & 0x0F

	return ^(sign | exponent<<4 | mantissa)
}
