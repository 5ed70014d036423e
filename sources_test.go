package pnglist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEcho(t *testing.T) {
	t.Parallel()
	want := "Hello, world."
	got, err := Echo(want).String()
	if err != nil {
		t.Fatal(err)
	}
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
}

func TestFile(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/test.txt")
	if err != nil {
		t.Fatal(err)
	}
	got, err := File("testdata/test.txt").String()
	if err != nil {
		t.Fatal(err)
	}
	if string(want) != got {
		t.Error(cmp.Diff(string(want), got))
	}
}

func TestSliceSource(t *testing.T) {
	t.Parallel()
	got, err := Slice([]string{"1", "2", "3"}).String()
	if err != nil {
		t.Fatal(err)
	}
	if want := "1\n2\n3\n"; want != got {
		t.Error(cmp.Diff(want, got))
	}
	got, err = Slice(nil).String()
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("want empty output for empty slice, got %q", got)
	}
}

func TestListDir_ListsNamesOfFilesOnly(t *testing.T) {
	t.Parallel()
	dir := extract(t, "testdata/icons.txtar")
	got, err := ListDir(dir).Slice()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.png", "B.PNG", "c.txt", "notes.PNG.bak"}
	if !cmp.Equal(want, got, cmpopts.SortSlices(lessString)) {
		t.Error(cmp.Diff(want, got, cmpopts.SortSlices(lessString)))
	}
}

func TestListDir_SetsErrorForMissingDirectory(t *testing.T) {
	t.Parallel()
	p := ListDir(filepath.Join(t.TempDir(), "missing"))
	if p.Error() == nil {
		t.Fatal("want error listing missing directory, got nil")
	}
	if !os.IsNotExist(p.Error()) {
		t.Errorf("want not-exist error, got %v", p.Error())
	}
}

func TestListDir_SetsErrorForRegularFile(t *testing.T) {
	t.Parallel()
	if ListDir("testdata/hello.txt").Error() == nil {
		t.Fatal("want error listing a regular file, got nil")
	}
}
