package pnglist

import (
	"os"
	"strings"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// File returns a pipe that reads from the named file. If there is an error
// opening the file, the pipe's error status will be set.
func File(name string) *Pipe {
	p := NewPipe()
	f, err := os.Open(name)
	if err != nil {
		return p.WithError(err)
	}
	return p.WithReader(f)
}

// ListDir returns a pipe containing the names of the entries in dir, one per
// line, leaving out subdirectories. It does not descend into subdirectories,
// and the names come in the order the operating system returns them, which
// is not necessarily sorted. Unlike a Lister, it has no way to include
// directories. If dir can't be read, the pipe's error status will be set.
func ListDir(dir string) *Pipe {
	p := NewPipe()
	entries, err := readDir(dir)
	if err != nil {
		return p.WithError(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if entryIsDir(dir, e) {
			continue
		}
		names = append(names, e.Name())
	}
	return Slice(names)
}

// Slice returns a pipe containing each element of s, one per line.
func Slice(s []string) *Pipe {
	var b strings.Builder
	for _, line := range s {
		b.WriteString(line)
		b.WriteRune('\n')
	}
	return Echo(b.String())
}
