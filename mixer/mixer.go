// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/ik5/ulawmix/mulaw"
	"github.com/ik5/ulawmix/utils"
)

// Mix lays whisper over original and returns the mu-law result.
//
// The original stream is scaled by the configured original volume only.
// The whisper stream is scaled by the whisper volume times the envelope
// gain. The output length is max(len(original), len(whisper)); the shorter
// stream is padded with silence.
func Mix(original, whisper []byte, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	total := max(len(original), len(whisper))
	env := cfg.Envelope(total)
	out := make([]byte, total)

	for i := range total {
		var o, w int16
		if i < len(original) {
			o = mulaw.Decode(original[i])
		}
		if i < len(whisper) {
			w = mulaw.Decode(whisper[i])
		}

		sum := int32(Scale(o, cfg.originalVolume)) +
			int32(Scale(w, cfg.whisperVolume*env.Gain(i)))

		out[i] = mulaw.Encode(utils.ClampInt16(sum))
	}

	return out, nil
}
