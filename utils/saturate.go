// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampInt16 saturates a widened integer to the int16 range.
func ClampInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}

	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// SaturateInt16 clamps v to the int16 range and truncates toward zero.
// NaN maps to 0.
func SaturateInt16(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}
