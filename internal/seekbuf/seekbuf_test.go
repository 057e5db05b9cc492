// SPDX-License-Identifier: EPL-2.0

package seekbuf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestBuffer_ReadSeek(t *testing.T) {
	t.Parallel()

	b := New([]byte("RIFF----WAVE"))

	head := make([]byte, 4)
	if _, err := io.ReadFull(b, head); err != nil || string(head) != "RIFF" {
		t.Fatalf("Read() = %q, %v", head, err)
	}

	if pos, err := b.Seek(8, io.SeekStart); err != nil || pos != 8 {
		t.Fatalf("Seek(8, start) = %d, %v", pos, err)
	}

	rest, _ := io.ReadAll(b)
	if string(rest) != "WAVE" {
		t.Errorf("ReadAll() after seek = %q, want WAVE", rest)
	}

	if n, err := b.Read(head); n != 0 || err != io.EOF {
		t.Errorf("Read() at end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestBuffer_WriteOverwriteAndGrow(t *testing.T) {
	t.Parallel()

	var b Buffer
	_, _ = b.Write([]byte("RIFF\x00\x00\x00\x00WAVE"))

	// Patch the size field the way an encoder does on Close.
	if _, err := b.Seek(4, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	_, _ = b.Write([]byte{4, 0, 0, 0})

	if _, err := b.Seek(0, io.SeekEnd); err != nil {
		t.Fatal(err)
	}
	_, _ = b.Write([]byte("data"))

	want := []byte("RIFF\x04\x00\x00\x00WAVEdata")
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() = %q, want %q", b.Bytes(), want)
	}
}

func TestBuffer_WritePastEndZeroFills(t *testing.T) {
	t.Parallel()

	var b Buffer
	_, _ = b.Seek(3, io.SeekStart)
	_, _ = b.Write([]byte{9})

	if want := []byte{0, 0, 0, 9}; !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() = %v, want %v", b.Bytes(), want)
	}
}

func TestBuffer_SeekErrors(t *testing.T) {
	t.Parallel()

	b := New([]byte("abc"))

	if _, err := b.Seek(-1, io.SeekStart); !errors.Is(err, ErrNegativePosition) {
		t.Errorf("Seek(-1) error = %v, want ErrNegativePosition", err)
	}

	if _, err := b.Seek(0, 42); err == nil {
		t.Error("Seek() with invalid whence returned nil error")
	}

	if pos, _ := b.Seek(-1, io.SeekEnd); pos != 2 {
		t.Errorf("Seek(-1, end) = %d, want 2", pos)
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	seeker := bytes.NewReader([]byte("x"))
	if rs, _ := ReadSeeker(seeker); rs != io.ReadSeeker(seeker) {
		t.Error("ReadSeeker() wrapped a reader that already seeks")
	}

	rs, err := ReadSeeker(io.MultiReader(strings.NewReader("ab"), strings.NewReader("cd")))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}

	_, _ = rs.Seek(2, io.SeekStart)
	rest, _ := io.ReadAll(rs)
	if string(rest) != "cd" {
		t.Errorf("ReadAll() = %q, want cd", rest)
	}
}
