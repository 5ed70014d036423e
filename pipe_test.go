package pnglist

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWithReader(t *testing.T) {
	t.Parallel()
	want := "Hello, world."
	got, err := NewPipe().WithReader(strings.NewReader(want)).String()
	if err != nil {
		t.Fatal(err)
	}
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
}

func TestError(t *testing.T) {
	t.Parallel()
	p := File("testdata/nonexistent.txt")
	if p.Error() == nil {
		t.Fatal("want error status reading nonexistent file, but got nil")
	}
	defer func() {
		// Reading an erroneous pipe should not panic.
		if r := recover(); r != nil {
			t.Errorf("panic reading erroneous pipe: %v", r)
		}
	}()
	_, err := p.String()
	if err != p.Error() {
		t.Error(err)
	}
	_, err = p.CountLines()
	if err != p.Error() {
		t.Error(err)
	}
	e := errors.New("fake error")
	p.SetError(e)
	if p.Error() != e {
		t.Errorf("want %v when setting pipe error, got %v", e, p.Error())
	}
}

func TestSetErrorClosesReader(t *testing.T) {
	t.Parallel()
	f, err := os.Open("testdata/hello.txt")
	if err != nil {
		t.Fatal(err)
	}
	p := NewPipe().WithReader(f)
	p.SetError(errors.New("oh no"))
	if _, err := io.ReadAll(f); err == nil {
		t.Error("want reader closed after setting error status")
	}
}

func TestReadOnNilPipeReturnsEOF(t *testing.T) {
	t.Parallel()
	var p *Pipe
	n, err := p.Read(make([]byte, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("want 0, io.EOF, got %d, %v", n, err)
	}
}

func TestPipeIsAReader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, Echo("hello\n")); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "hello\n" {
		t.Error(cmp.Diff("hello\n", got))
	}
}

func TestWithStdout(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	wrote, err := Echo("hello world").WithStdout(&buf).Stdout()
	if err != nil {
		t.Fatal(err)
	}
	if wrote != len("hello world") {
		t.Errorf("want %d bytes written, got %d", len("hello world"), wrote)
	}
	if got := buf.String(); got != "hello world" {
		t.Error(cmp.Diff("hello world", got))
	}
}

// doMethodsOnPipe calls every kind of method on the supplied pipe and tries
// to trigger a panic.
func doMethodsOnPipe(t *testing.T, p *Pipe, kind string) {
	var action string
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("panic: %s on %s pipe", action, kind)
		}
	}()
	action = "Close()"
	p.Close()
	action = "Error()"
	p.Error()
	action = "EachLine()"
	p.EachLine(func(string, *strings.Builder) {})
	action = "MatchSuffix()"
	p.MatchSuffix(".png")
	action = "JQ()"
	p.JQ(".")
	action = "String()"
	p.String()
	action = "Slice()"
	p.Slice()
	action = "CountLines()"
	p.CountLines()
	action = "Stdout()"
	p.Stdout()
	action = "SetError()"
	p.SetError(nil)
}

func TestNilPipes(t *testing.T) {
	t.Parallel()
	doMethodsOnPipe(t, nil, "nil")
}

func TestZeroPipes(t *testing.T) {
	t.Parallel()
	doMethodsOnPipe(t, &Pipe{}, "zero")
}
