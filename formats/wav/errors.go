// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedEncoding  = errors.New("only PCM 16-bit and mu-law WAV supported")
	ErrMissingData          = errors.New("WAV data chunk not found")

	// ErrNotMuLaw is returned by ReadMuLaw for files that are not 8-bit G.711 mu-law.
	ErrNotMuLaw = errors.New("WAV is not 8-bit mu-law")

	// ErrNotMono is returned when a mu-law file has more than one channel.
	ErrNotMono = errors.New("mu-law WAV must be mono")

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
