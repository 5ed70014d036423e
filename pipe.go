// Package pnglist finds the PNG images in a directory and writes their names,
// one per line, to a text file:
//
//	report, err := pnglist.ListPNGFiles("assets/icons", "png_files_list.txt")
//	if err != nil {
//		fmt.Println("Error:", err)
//		return
//	}
//	fmt.Println(report)
//
// Output: Successfully written 12 PNG filenames to png_files_list.txt
//
// The package also provides a small set of pipe operations, in the style of
// a shell pipeline, for the same kind of work. The lister writes its list
// through one of them:
//
//	n, err := pnglist.ListDir("assets").MatchSuffix(".svg").CountLines()
//
// If any pipe operation results in an error, the pipe's Error method returns
// that error, and all subsequent pipe operations are no-ops. So a whole chain
// of operations can run without checking the error status at each stage.
package pnglist

import (
	"io"
	"os"
)

// Pipe represents a pipe object with an associated ReadAutoCloser.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
	stdout io.Writer
}

// NewPipe returns a pointer to a new empty pipe.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		stdout: os.Stdout,
	}
}

// Close closes the pipe's associated reader. This is always safe to do, because
// pipes created from a non-closable source have a no-op closer.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes from the pipe into b. At end of input, or on a
// nil pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to err. A non-nil error also closes
// the pipe's reader, since nothing will read from it again.
func (p *Pipe) SetError(err error) {
	if p == nil {
		return
	}
	if err != nil {
		p.Close()
	}
	p.err = err
}

// WithReader associates the pipe with r. If r is closable, it will be closed
// automatically once it has been completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout sets the writer used by Stdout, in place of os.Stdout.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithError sets the pipe's error status to err and returns the pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}
