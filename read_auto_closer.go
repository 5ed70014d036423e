package pnglist

import (
	"io"
)

// ReadAutoCloser wraps a reader and closes it, if it can be closed, as soon as
// it returns io.EOF.
type ReadAutoCloser struct {
	r io.ReadCloser
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping r. A reader without a
// Close method gets a no-op one.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return ReadAutoCloser{rc}
}

// Read reads from the wrapped reader, closing it when the end of input is
// reached. A zero ReadAutoCloser is always at end of input.
func (a ReadAutoCloser) Read(b []byte) (int, error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err := a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the wrapped reader.
func (a ReadAutoCloser) Close() error {
	if a.r == nil {
		return nil
	}
	return a.r.Close()
}
