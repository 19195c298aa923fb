// Package storage handles file I/O for the editor: resolving bare file
// names into the saves directory, reading and writing buffers, and the
// per-directory session state file.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveDir is where bare file names (no path separator) are resolved.
const SaveDir = "saves"

// Resolve maps a user-typed file name to the path used for I/O. Names
// without a path separator land in the saves directory; anything with
// a separator is used as given.
func Resolve(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	return filepath.Join(SaveDir, name)
}

// EnsureSaveDir creates the saves directory if it does not exist.
func EnsureSaveDir() error {
	if err := os.MkdirAll(SaveDir, 0o777); err != nil {
		return fmt.Errorf("creating %q dir: %w", SaveDir, err)
	}
	return nil
}

// ReadLines reads the file at path into lines, newline-stripped,
// keeping at most maxLines. An empty file yields a single empty line
// so the caller always has somewhere to put the cursor.
func ReadLines(path string, maxLines int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(lines) < maxLines {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}

// WriteLines writes lines to path, one per line with a trailing
// newline on each, replacing any existing file.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
