// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ik5/ulawmix/mulaw"
)

// maxSilenceSamples bounds Silence allocations (a little over 3 days at 8kHz).
const maxSilenceSamples = math.MaxInt32

// Silence returns round(durationMs*sampleRate/1000) bytes of mulaw.Silence.
func Silence(durationMs, sampleRate float64) ([]byte, error) {
	if err := validateRate(sampleRate); err != nil {
		return nil, err
	}

	if !(durationMs >= 0) || math.IsInf(durationMs, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, durationMs)
	}

	n := math.Round(durationMs * sampleRate / 1000)
	if n > maxSilenceSamples {
		return nil, fmt.Errorf("%w: %vms at %vHz is %v samples", ErrInvalidDuration, durationMs, sampleRate, n)
	}

	return bytes.Repeat([]byte{mulaw.Silence}, int(n)), nil
}
