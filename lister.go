package pnglist

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSuffix is the file name suffix a Lister matches when none is set.
const DefaultSuffix = ".png"

// Lister finds the entries of a directory whose names end with a suffix, and
// writes those names to a file.
type Lister struct {
	// Dir is the directory to scan. Only its immediate entries are examined.
	Dir string
	// Output is the file the names are written to. It is created if
	// necessary and truncated if it already exists; its parent directory must
	// already exist.
	Output string
	// Suffix is matched against entry names ignoring case. If empty,
	// DefaultSuffix is used.
	Suffix string
	// IncludeDirs makes the match purely name-based, so that a directory
	// called "icons.png" is listed too. By default directories, and symlinks
	// to directories, are left out.
	IncludeDirs bool
	// Logger receives a debug record for each matched or skipped entry. If
	// nil, slog.Default() is used.
	Logger *slog.Logger
}

// ListPNGFiles writes the names of the PNG files in dir to output, one per
// line, in directory order, and reports what it wrote.
func ListPNGFiles(dir, output string) (Report, error) {
	return Lister{Dir: dir, Output: output}.Run()
}

// Run scans the directory, then writes the matching names to the output file.
// If the directory can't be read, the output file is left untouched. A
// failure part way through writing may leave a partly written file behind.
func (l Lister) Run() (Report, error) {
	r := Report{
		Dir:    l.Dir,
		Output: l.Output,
		Suffix: l.suffix(),
	}
	names, err := l.Match()
	if err != nil {
		return r, fmt.Errorf("listing %s: %w", l.Dir, err)
	}
	if _, err := Slice(names).WriteFile(l.Output); err != nil {
		return r, fmt.Errorf("writing %s: %w", l.Output, err)
	}
	r.Files = names
	return r, nil
}

// Match returns the names of the matching entries of the directory, in the
// order the operating system lists them. It writes nothing.
func (l Lister) Match() ([]string, error) {
	entries, err := readDir(l.Dir)
	if err != nil {
		return nil, err
	}
	log := l.logger()
	suffix := l.suffix()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !hasSuffixFold(name, suffix) {
			continue
		}
		if !l.IncludeDirs && entryIsDir(l.Dir, e) {
			log.Debug("skipping directory", "dir", l.Dir, "name", name)
			continue
		}
		log.Debug("matched", "dir", l.Dir, "name", name)
		names = append(names, name)
	}
	return names, nil
}

func (l Lister) suffix() string {
	if l.Suffix == "" {
		return DefaultSuffix
	}
	return l.Suffix
}

func (l Lister) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

// Report describes the result of a successful Run.
type Report struct {
	Dir    string
	Output string
	Suffix string
	Files  []string
}

// Count returns the number of names written.
func (r Report) Count() int {
	return len(r.Files)
}

// String returns the one-line summary shown to the user, for example
// "Successfully written 3 PNG filenames to png_files_list.txt".
func (r Report) String() string {
	kind := strings.ToUpper(strings.TrimPrefix(r.Suffix, "."))
	return fmt.Sprintf("Successfully written %d %s filenames to %s", r.Count(), kind, r.Output)
}

// JSON returns the report as a single JSON object, terminated by a newline.
func (r Report) JSON() (string, error) {
	files := r.Files
	if files == nil {
		files = []string{}
	}
	b, err := json.Marshal(struct {
		Dir    string   `json:"dir"`
		Output string   `json:"output"`
		Suffix string   `json:"suffix"`
		Count  int      `json:"count"`
		Files  []string `json:"files"`
	}{r.Dir, r.Output, r.Suffix, r.Count(), files})
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// readDir returns the entries of dir unsorted, unlike os.ReadDir.
func readDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

// entryIsDir reports whether e is a directory, following symlinks. A dangling
// symlink is not a directory.
func entryIsDir(dir string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}
