package lexer

import (
	"bufio"
	"bytes"
	"io"
)

// Source is the external byte source the Lexer pulls from: a plain file,
// a gzip-decompressed stream, or an in-memory buffer all satisfy it
// identically by yielding lines of text on demand. The core treats the
// three the same way and requires only these two operations.
type Source interface {
	// ReadLine returns the next line of input with its trailing newline
	// stripped. ok is false once the source is exhausted.
	ReadLine() (line string, ok bool)

	// IsEOF reports whether ReadLine has already reported exhaustion. It
	// does not look ahead: before the first ReadLine it reports false,
	// even for an empty source.
	IsEOF() bool
}

// readerSource adapts any io.Reader — a plain file, a gzip.Reader wrapped
// around a compressed file, or a bytes.Reader over an in-memory buffer —
// into a Source. This is the one implementation all three external cases
// route through; the core never distinguishes them.
type readerSource struct {
	scanner *bufio.Scanner
	done    bool
}

// NewReaderSource wraps any io.Reader as a line-oriented Source.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{scanner: bufio.NewScanner(r)}
}

// NewBytesSource wraps an in-memory buffer as a Source.
func NewBytesSource(data []byte) Source {
	return NewReaderSource(bytes.NewReader(data))
}

func (s *readerSource) ReadLine() (string, bool) {
	if s.done {
		return "", false
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), true
	}
	s.done = true
	return "", false
}

func (s *readerSource) IsEOF() bool {
	return s.done
}
