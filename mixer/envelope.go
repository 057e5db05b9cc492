// SPDX-License-Identifier: EPL-2.0

package mixer

// Envelope describes a linear fade-in / fade-out over Total samples.
// Fade lengths are in samples.
type Envelope struct {
	Total   int
	FadeIn  int
	FadeOut int
}

// Gain returns the multiplier for sample i.
func (e Envelope) Gain(i int) float64 {
	return Gain(i, e.Total, e.FadeIn, e.FadeOut)
}

// Gain returns the envelope multiplier in [0, 1] for sample index of a
// buffer holding total samples.
//
// The fade-in ramp is index/fadeIn, the fade-out ramp is
// (total-1-index)/fadeOut. Where both ramps cover the same index they are
// multiplied. A fade length of zero or less disables that ramp, and an
// index outside [0, total) has no gain at all.
func Gain(index, total, fadeIn, fadeOut int) float64 {
	if index < 0 || index >= total {
		return 0
	}

	gain := 1.0

	if fadeIn > 0 && index < fadeIn {
		gain *= float64(index) / float64(fadeIn)
	}

	if fadeOut > 0 && index >= total-fadeOut {
		gain *= float64(total-1-index) / float64(fadeOut)
	}

	return gain
}
