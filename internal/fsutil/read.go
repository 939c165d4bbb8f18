// Package fsutil wraps common filesystem chores. Listing and reading return
// errors to the caller; mutations on Ops log their outcome and are safe to
// call without checking the result.
package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// PathExists reports whether path exists, following symlinks.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListSubpaths returns the immediate children of dir joined with dir, in
// directory order. Dot entries are skipped.
func ListSubpaths(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// ListFilePaths returns the subpaths of dir that are regular files.
func ListFilePaths(dir string) ([]string, error) {
	return filterSubpaths(dir, func(info os.FileInfo) bool { return info.Mode().IsRegular() })
}

// ListFilePathsSorted is ListFilePaths in lexicographic order.
func ListFilePathsSorted(dir string) ([]string, error) {
	return sorted(ListFilePaths(dir))
}

// ListFileNames returns the base names of ListFilePaths.
func ListFileNames(dir string) ([]string, error) {
	return baseNames(ListFilePaths(dir))
}

// ListFileNamesSorted returns the base names of ListFilePathsSorted.
func ListFileNamesSorted(dir string) ([]string, error) {
	return baseNames(ListFilePathsSorted(dir))
}

// ListDirPaths returns the subpaths of dir that are directories.
func ListDirPaths(dir string) ([]string, error) {
	return filterSubpaths(dir, func(info os.FileInfo) bool { return info.IsDir() })
}

// ListDirPathsSorted is ListDirPaths in lexicographic order.
func ListDirPathsSorted(dir string) ([]string, error) {
	return sorted(ListDirPaths(dir))
}

// ListDirNames returns the base names of ListDirPaths.
func ListDirNames(dir string) ([]string, error) {
	return baseNames(ListDirPaths(dir))
}

// ListDirNamesSorted returns the base names of ListDirPathsSorted.
func ListDirNamesSorted(dir string) ([]string, error) {
	return baseNames(ListDirPathsSorted(dir))
}

func filterSubpaths(dir string, keep func(os.FileInfo) bool) ([]string, error) {
	paths, err := ListSubpaths(dir)
	if err != nil {
		return nil, err
	}

	kept := paths[:0]
	for _, p := range paths {
		// Broken symlinks are neither files nor directories
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if keep(info) {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func sorted(paths []string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	return paths, nil
}

func baseNames(paths []string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names, nil
}

// ReadFile returns the whole content of path as text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// ReadLine returns the first line of path with surrounding whitespace removed.
// A line ends at "\n", "\r\n" or a lone "\r".
func ReadLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if i := strings.IndexByte(line, '\r'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line), nil
}

// Printnl writes text to standard output followed by a blank line.
func Printnl(text string) {
	_ = Fprintnl(os.Stdout, text)
}

// Fprintnl writes text to w followed by a blank line.
func Fprintnl(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "%s\n\n", text)
	return err
}
