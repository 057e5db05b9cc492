// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat is returned by Registry.Decode for unregistered keys.
	ErrUnknownFormat = errors.New("no decoder registered for format")

	// ErrInvalidSampleRate is returned when a source or target rate is not
	// positive.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	ErrInvalidChannels = errors.New("channel count must be positive")
)
