package config

import (
	"strings"
	"testing"
	"testing/fstest"
)

// mapFS adapts fstest.MapFS to the FileSystem interface.
type mapFS struct{ fstest.MapFS }

func TestDefault(t *testing.T) {
	s := Default()
	if !s.TabFourSpaces {
		t.Error("TabFourSpaces default = false, want true")
	}
	if !s.AutoIndent {
		t.Error("AutoIndent default = false, want true")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Settings
	}{
		{
			name:  "both false",
			input: "TAB_FOUR_SPACES = FALSE;\nAUTO_INDENT = FALSE;\n",
			want:  Settings{TabFourSpaces: false, AutoIndent: false},
		},
		{
			name:  "case insensitive values",
			input: "TAB_FOUR_SPACES = True;\nAUTO_INDENT = false;\n",
			want:  Settings{TabFourSpaces: true, AutoIndent: false},
		},
		{
			name:  "comments and blanks skipped",
			input: "# a comment\n// another\n\nAUTO_INDENT = FALSE;\n",
			want:  Settings{TabFourSpaces: true, AutoIndent: false},
		},
		{
			name:  "unknown keys ignored",
			input: "COLOR_SCHEME = dark;\nTAB_FOUR_SPACES = FALSE;\n",
			want:  Settings{TabFourSpaces: false, AutoIndent: true},
		},
		{
			name:  "missing semicolon tolerated",
			input: "TAB_FOUR_SPACES = FALSE\n",
			want:  Settings{TabFourSpaces: false, AutoIndent: true},
		},
		{
			name:  "malformed line skipped",
			input: "just some words\nAUTO_INDENT = FALSE;\n",
			want:  Settings{TabFourSpaces: true, AutoIndent: false},
		},
		{
			name:  "empty input keeps defaults",
			input: "",
			want:  Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	fsys := mapFS{fstest.MapFS{}}
	got, err := Load(fsys, "settings.config")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != Default() {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}

func TestLoadFile(t *testing.T) {
	fsys := mapFS{fstest.MapFS{
		"settings.config": &fstest.MapFile{
			Data: []byte("TAB_FOUR_SPACES = FALSE;\nAUTO_INDENT = TRUE;\n"),
		},
	}}
	got, err := Load(fsys, "settings.config")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Settings{TabFourSpaces: false, AutoIndent: true}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}
