// Package streaming provides small helpers for working with byte streams.
package streaming

import (
	"fmt"
	"io"
)

// StreamSlice exposes a fixed-size slice of an underlying reader as an
// io.Reader. It reads at most max bytes from the underlying stream, and
// reports io.ErrUnexpectedEOF if the stream runs dry before the slice is
// filled.
type StreamSlice struct {
	r         io.Reader
	remaining int64
	max       int64
}

func NewStreamSlice(r io.Reader, maxBytes int64) *StreamSlice {
	return &StreamSlice{r: r, remaining: maxBytes, max: maxBytes}
}

// Len returns the size of the slice.
func (s *StreamSlice) Len() int64 {
	return s.max
}

// Remaining returns the number of bytes not yet read from the slice.
func (s *StreamSlice) Remaining() int64 {
	return s.remaining
}

func (s *StreamSlice) Read(p []byte) (int, error) {
	if s.remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > s.remaining {
		p = p[:s.remaining]
	}
	if len(p) == 0 {
		// no bytes requested, so a zero read says nothing about the
		// underlying stream
		return 0, nil
	}

	n, err := s.r.Read(p)
	if n == 0 && (err == nil || err == io.EOF) {
		// The slice says more bytes should be available but the
		// underlying stream is exhausted.
		return 0, io.ErrUnexpectedEOF
	}
	s.remaining -= int64(n)
	if err == io.EOF && s.remaining > 0 {
		return n, io.ErrUnexpectedEOF
	}

	return n, err
}

func (s *StreamSlice) String() string {
	return fmt.Sprintf("slice of stream %v with %d/%d bytes not yet read", s.r, s.remaining, s.max)
}
