// SPDX-License-Identifier: EPL-2.0

package mulaw

import "math/bits"

const (
	// Silence is the mu-law code for a linear value of zero.
	Silence byte = 0xFF

	// MaxMagnitude is the largest magnitude Decode can return.
	MaxMagnitude = 32124

	bias = 0x84
	clip = 32635
)

var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]int16 {
	var table [256]int16

	for i := range table {
		table[i] = expand(byte(i))
	}

	return table
}

// expand is the G.711 expansion formula. Decode reads the table built from it.
func expand(b byte) int16 {
	u := ^b
	exponent := (u >> 4) & 0x07
	mantissa := u & 0x0F

	magnitude := ((int32(mantissa) << 3) + bias) << exponent

	if u&0x80 != 0 {
		return int16(bias - magnitude)
	}

	return int16(magnitude - bias)
}

// Decode converts a mu-law byte to a 16-bit linear sample.
func Decode(b byte) int16 {
	return decodeTable[b]
}

// Encode converts a 16-bit linear sample to a mu-law byte.
// Magnitudes beyond the law's range are clipped, so math.MinInt16 is safe.
func Encode(s int16) byte {
	v := int32(s)
	var sign byte

	if v < 0 {
		v = -v
		sign = 0x80
	}

	if v > clip {
		v = clip
	}

	v += bias

	// v is in [0x84, 0x7FFF]; the segment is the position of the highest
	// set bit above bit 7.
	exponent := byte(bits.Len32(uint32(v)) - 8)
	mantissa := byte(v>>(exponent+3)) & 0x0F

	return ^(sign | exponent<<4 | mantissa)
}
