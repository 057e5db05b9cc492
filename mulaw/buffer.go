// SPDX-License-Identifier: EPL-2.0

package mulaw

// DecodeBuffer decodes every byte of src into a new slice of linear samples.
func DecodeBuffer(src []byte) []int16 {
	dst := make([]int16, len(src))
	for i, b := range src {
		dst[i] = decodeTable[b]
	}

	return dst
}

// EncodeBuffer encodes every sample of src into a new mu-law slice.
func EncodeBuffer(src []int16) []byte {
	dst := make([]byte, len(src))
	for i, s := range src {
		dst[i] = Encode(s)
	}

	return dst
}

// DecodeInto decodes src into dst and returns the number of samples written.
func DecodeInto(dst []int16, src []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, ErrShortBuffer
	}

	for i, b := range src {
		dst[i] = decodeTable[b]
	}

	return len(src), nil
}

// EncodeInto encodes src into dst and returns the number of bytes written.
func EncodeInto(dst []byte, src []int16) (int, error) {
	if len(dst) < len(src) {
		return 0, ErrShortBuffer
	}

	for i, s := range src {
		dst[i] = Encode(s)
	}

	return len(src), nil
}
