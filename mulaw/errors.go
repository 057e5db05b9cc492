// SPDX-License-Identifier: EPL-2.0

package mulaw

import "errors"

var (
	// ErrShortBuffer is returned when a destination slice cannot hold the
	// converted samples.
	ErrShortBuffer = errors.New("mulaw: destination buffer too short")
)
