package config

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultPath is the settings file looked up at startup.
const DefaultPath = "settings.config"

// Settings holds the tunable editor behavior.
type Settings struct {
	// TabFourSpaces expands Tab to four spaces instead of inserting '\t'.
	TabFourSpaces bool

	// AutoIndent copies the leading whitespace of the current line onto
	// new lines created with Enter.
	AutoIndent bool
}

// Default returns the settings used when no file overrides them.
func Default() Settings {
	return Settings{TabFourSpaces: true, AutoIndent: true}
}

// FileSystem is an abstraction for settings file access.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// Load reads settings from path on fsys. A missing file is not an
// error; the defaults are returned unchanged.
func Load(fsys FileSystem, path string) (Settings, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Default(), nil
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads settings from r, starting from the defaults. Malformed
// lines and unknown keys are skipped.
func Parse(r io.Reader) (Settings, error) {
	s := Default()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '/' {
			continue
		}
		key, value, ok := splitAssignment(line)
		if !ok {
			continue
		}
		switch key {
		case "TAB_FOUR_SPACES":
			s.TabFourSpaces = isTrue(value)
		case "AUTO_INDENT":
			s.AutoIndent = isTrue(value)
		}
	}
	if err := sc.Err(); err != nil {
		return s, err
	}
	return s, nil
}

// splitAssignment parses "KEY = VALUE;" with optional whitespace and an
// optional trailing semicolon.
func splitAssignment(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), ";"))
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

func isTrue(value string) bool {
	return strings.EqualFold(value, "true")
}
