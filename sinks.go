package pnglist

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// String returns the contents of the pipe as a string, or an error, and
// closes the pipe after reading. If there is an error reading, the pipe's
// error status is also set.
func (p *Pipe) String() (string, error) {
	if p == nil {
		return "", nil
	}
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Slice returns the lines of the pipe as a slice of strings, without their
// newline terminators.
func (p *Pipe) Slice() ([]string, error) {
	var lines []string
	if p == nil {
		return lines, nil
	}
	if p.Error() != nil {
		return nil, p.Error()
	}
	scanner := bufio.NewScanner(p.Reader)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		p.SetError(err)
		return nil, err
	}
	return lines, nil
}

// CountLines counts lines from the pipe's reader, and returns the integer
// result, or an error. If there is an error reading the pipe, the pipe's error
// status is also set.
func (p *Pipe) CountLines() (int, error) {
	lines, err := p.Slice()
	return len(lines), err
}

// WriteFile writes the contents of the pipe to the named file, replacing any
// existing contents, and closes the pipe after reading. It returns the number
// of bytes successfully written, or an error. If the pipe already has an error
// status, the file is not opened.
func (p *Pipe) WriteFile(name string) (int64, error) {
	return p.writeOrAppendFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// AppendFile appends the contents of the pipe to the named file, creating it
// if necessary, and closes the pipe after reading. It returns the number of
// bytes successfully written, or an error.
func (p *Pipe) AppendFile(name string) (int64, error) {
	return p.writeOrAppendFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

func (p *Pipe) writeOrAppendFile(name string, flag int) (wrote int64, err error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	out, err := os.OpenFile(name, flag, 0o644)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			p.SetError(closeErr)
			err = closeErr
		}
	}()
	wrote, err = io.Copy(out, p.Reader)
	if err != nil {
		p.SetError(err)
		return wrote, err
	}
	return wrote, nil
}

// Stdout writes the contents of the pipe to the pipe's standard output, which
// is os.Stdout unless changed with WithStdout. It returns the number of bytes
// successfully written, plus a non-nil error if the write failed or if there
// was an error reading from the pipe. If the pipe has error status, Stdout
// returns zero plus the existing error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	output, err := p.String()
	if err != nil {
		return 0, err
	}
	w := p.stdout
	if w == nil {
		w = os.Stdout
	}
	return fmt.Fprint(w, output)
}
