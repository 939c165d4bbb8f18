package fsutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

// fixture lays out b.txt, a.txt, a hidden file and two directories.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, ".hidden"), "h")
	mkdir(t, filepath.Join(dir, "zdir"))
	mkdir(t, filepath.Join(dir, "mdir"))
	return dir
}

func TestPathExists(t *testing.T) {
	dir := fixture(t)

	if !PathExists(dir) {
		t.Errorf("Expected PathExists(%s) to be true", dir)
	}
	if !PathExists(filepath.Join(dir, "a.txt")) {
		t.Error("Expected file to exist")
	}
	if PathExists(filepath.Join(dir, "nope")) {
		t.Error("Expected missing path to not exist")
	}
}

func TestListSubpaths(t *testing.T) {
	dir := fixture(t)

	got, err := ListSubpaths(dir)
	if err != nil {
		t.Fatalf("ListSubpaths() error = %v", err)
	}

	slices.Sort(got)
	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "mdir"),
		filepath.Join(dir, "zdir"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListSubpaths() = %v, want %v", got, want)
	}
}

func TestListSubpathsMissing(t *testing.T) {
	_, err := ListSubpaths(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestListSorted(t *testing.T) {
	dir := fixture(t)

	tests := []struct {
		name string
		fn   func(string) ([]string, error)
		want []string
	}{
		{"ListFileNamesSorted", ListFileNamesSorted, []string{"a.txt", "b.txt"}},
		{"ListDirNamesSorted", ListDirNamesSorted, []string{"mdir", "zdir"}},
		{"ListFilePathsSorted", ListFilePathsSorted, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}},
		{"ListDirPathsSorted", ListDirPathsSorted, []string{filepath.Join(dir, "mdir"), filepath.Join(dir, "zdir")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(dir)
			if err != nil {
				t.Fatalf("%s() error = %v", tt.name, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("%s() = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestListUnsorted(t *testing.T) {
	dir := fixture(t)

	tests := []struct {
		name string
		fn   func(string) ([]string, error)
		want []string
	}{
		{"ListFileNames", ListFileNames, []string{"a.txt", "b.txt"}},
		{"ListDirNames", ListDirNames, []string{"mdir", "zdir"}},
		{"ListFilePaths", ListFilePaths, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}},
		{"ListDirPaths", ListDirPaths, []string{filepath.Join(dir, "mdir"), filepath.Join(dir, "zdir")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(dir)
			if err != nil {
				t.Fatalf("%s() error = %v", tt.name, err)
			}
			// Order is platform defined
			slices.Sort(got)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("%s() = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestListErrorsPropagate(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	fns := map[string]func(string) ([]string, error){
		"ListFilePaths":       ListFilePaths,
		"ListFileNamesSorted": ListFileNamesSorted,
		"ListDirPaths":        ListDirPaths,
		"ListDirNamesSorted":  ListDirNamesSorted,
	}
	for name, fn := range fns {
		if _, err := fn(missing); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("%s(missing) error = %v, want fs.ErrNotExist", name, err)
		}
	}
}

func TestListFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "real.txt"), "x")
	if err := os.Symlink(filepath.Join(dir, "real.txt"), filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "broken")); err != nil {
		t.Fatal(err)
	}

	got, err := ListFileNamesSorted(dir)
	if err != nil {
		t.Fatalf("ListFileNamesSorted() error = %v", err)
	}
	want := []string{"link.txt", "real.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListFileNamesSorted() = %v, want %v", got, want)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	writeFile(t, path, "line one\nline two\n")

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "line one\nline two\n" {
		t.Errorf("ReadFile() = %q", got)
	}

	if _, err := ReadFile(path + ".missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist for missing file, got %v", err)
	}
}

func TestReadLine(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		content  string
		expected string
	}{
		{"  first  \nsecond", "first"},
		{"only line", "only line"},
		{"crlf\r\nnext", "crlf"},
		{"a\rb", "a"},
		{" cr only \r\n", "cr only"},
		{"\nsecond", ""},
		{"", ""},
	}

	for i, tt := range tests {
		path := filepath.Join(dir, filepath.Base(t.Name())+string(rune('a'+i)))
		writeFile(t, path, tt.content)

		got, err := ReadLine(path)
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		if got != tt.expected {
			t.Errorf("ReadLine(%q) = %q, want %q", tt.content, got, tt.expected)
		}
	}

	if _, err := ReadLine(filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist for missing file, got %v", err)
	}
}

func TestFprintnl(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprintnl(&buf, "hello"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\n\n" {
		t.Errorf("Fprintnl wrote %q, want %q", buf.String(), "hello\n\n")
	}
}
