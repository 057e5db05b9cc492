// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is the parent of every configuration error.
	ErrInvalidConfiguration = errors.New("invalid mixer configuration")

	// ErrInvalidSampleRate indicates a sample rate that is not a positive finite number.
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be positive and finite", ErrInvalidConfiguration)

	// ErrInvalidDuration indicates a negative, non-finite or oversized duration.
	ErrInvalidDuration = fmt.Errorf("%w: duration must be non-negative and finite", ErrInvalidConfiguration)
)
