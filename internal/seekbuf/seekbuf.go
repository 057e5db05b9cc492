// SPDX-License-Identifier: EPL-2.0

// Package seekbuf provides an in-memory io.ReadWriteSeeker.
//
// The go-audio decoders and encoders need to seek, while callers often
// only hold an io.Reader (an HTTP body, a pipe) or want the encoded file
// in memory.
package seekbuf

import (
	"errors"
	"fmt"
	"io"
)

// ErrNegativePosition is returned when a seek would move before offset 0.
var ErrNegativePosition = errors.New("seekbuf: negative position")

// Buffer is a growable byte slice with a read/write offset.
// The zero value is an empty buffer ready for use.
type Buffer struct {
	data   []byte
	offset int64
}

// New returns a Buffer reading from data. The slice is not copied.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// ReadSeeker returns r when it already seeks, otherwise it reads r fully
// into a Buffer.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return New(data), nil
}

// Bytes returns the whole content, regardless of the offset.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}

	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)

	return n, nil
}

// Write writes at the current offset, overwriting existing bytes and
// growing the buffer as needed. Gaps left by seeking past the end are
// zero filled.
func (b *Buffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(b.data))))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}

	copy(b.data[b.offset:], p)
	b.offset = end

	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64

	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.offset + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("seekbuf: invalid whence %d", whence)
	}

	if pos < 0 {
		return 0, ErrNegativePosition
	}

	b.offset = pos

	return pos, nil
}
