// SPDX-License-Identifier: EPL-2.0

// Package mulaw implements the ITU-T G.711 mu-law companding law.
//
// Mu-law squeezes a 16-bit signed linear sample into 8 bits using
// logarithmic segments, spending more resolution on quiet signals. It is
// the native sample format of North American and Japanese telephony
// (PCMU, RTP payload type 0) and of most telephony media streams.
//
// # Decoding and Encoding
//
//	s := mulaw.Decode(0x80) // 32124, the largest positive code
//	b := mulaw.Encode(s)    // 0x80
//
// Decoding uses a precomputed 256-entry table. Encoding follows the
// classic segment search over a biased magnitude. Both are total: every
// byte and every int16 has exactly one result.
//
// The codec is lossy but stable. For every byte b:
//
//	mulaw.Decode(mulaw.Encode(mulaw.Decode(b))) == mulaw.Decode(b)
//
// # Silence
//
// Electrical zero is not the byte 0x00 (that is the largest negative
// code). Use Silence, which is what Encode(0) returns:
//
//	buf := bytes.Repeat([]byte{mulaw.Silence}, 160) // 20ms at 8kHz
//
// # Buffers
//
// DecodeBuffer and EncodeBuffer allocate a new slice. DecodeInto and
// EncodeInto write into a caller provided slice and return ErrShortBuffer
// when it is too small, so hot paths can run without allocations.
package mulaw
