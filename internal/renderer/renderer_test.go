package renderer

import (
	"strings"
	"testing"

	"github.com/cedward/ced/internal/engine/textbuf"
	"github.com/cedward/ced/internal/renderer/backend"
	"github.com/cedward/ced/internal/renderer/core"
	"github.com/cedward/ced/internal/renderer/dirty"
	"github.com/cedward/ced/internal/syntax"
)

func newFrame(lines []string) (*Frame, *textbuf.Buffer) {
	buf := textbuf.New()
	buf.Load(lines)
	d := dirty.NewSet()
	d.MarkAll(buf.LineCount())
	return &Frame{
		Doc:         buf,
		Dirty:       d,
		Highlighter: syntax.NewHighlighter(nil),
	}, buf
}

func TestRenderLines(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, _ := newFrame([]string{"first line", "second line"})
	s.Render(f)

	if got := be.Row(0); got != "first line" {
		t.Errorf("row 0 = %q, want %q", got, "first line")
	}
	if got := be.Row(1); got != "second line" {
		t.Errorf("row 1 = %q, want %q", got, "second line")
	}
	if got := be.Row(2); got != "" {
		t.Errorf("row 2 = %q, want blank", got)
	}
}

func TestRenderSkipsCleanLines(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, _ := newFrame([]string{"alpha", "beta"})
	s.Render(f)

	// Overwrite the screen directly, then render again without marking
	// anything dirty. Clean rows must not be touched.
	be.SetCell(0, 0, core.NewCell('X'))
	s.Render(f)

	if got := be.Row(0); got != "Xlpha" {
		t.Errorf("row 0 = %q, clean line was redrawn", got)
	}
}

func TestRenderClearsDirtyMarks(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, _ := newFrame([]string{"alpha", "beta"})
	s.Render(f)

	if f.Dirty.Len() != 0 {
		t.Errorf("Dirty.Len() = %d after render, want 0", f.Dirty.Len())
	}
}

func TestRenderOffscreenStaysDirty(t *testing.T) {
	be := backend.NewNull(40, 3) // 2 text rows + status
	s := New(be)

	lines := []string{"one", "two", "three", "four"}
	f, _ := newFrame(lines)
	s.Render(f)

	// Lines 2 and 3 are below the fold and must stay marked.
	if !f.Dirty.Dirty(2) || !f.Dirty.Dirty(3) {
		t.Error("off-screen lines lost their dirty marks")
	}
	if f.Dirty.Dirty(0) || f.Dirty.Dirty(1) {
		t.Error("visible lines kept their dirty marks")
	}
}

func TestRenderGutter(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, _ := newFrame([]string{"hello"})
	f.ShowLineNumbers = true
	s.Render(f)

	if got := be.Row(0); got != "   1 | hello" {
		t.Errorf("row 0 = %q, want %q", got, "   1 | hello")
	}
}

func TestRenderRowOffset(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, _ := newFrame([]string{"one", "two", "three"})
	f.RowOffset = 1
	s.Render(f)

	if got := be.Row(0); got != "two" {
		t.Errorf("row 0 = %q, want %q", got, "two")
	}
	if got := be.Row(1); got != "three" {
		t.Errorf("row 1 = %q, want %q", got, "three")
	}
}

func TestRenderColOffset(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, _ := newFrame([]string{"abcdefgh"})
	f.ColOffset = 3
	s.Render(f)

	if got := be.Row(0); got != "defgh" {
		t.Errorf("row 0 = %q, want %q", got, "defgh")
	}
}

func TestRenderSearchOverlay(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, _ := newFrame([]string{"say hello twice hello"})
	f.SearchTerm = "hello"
	s.Render(f)

	// Cells inside a match carry the search style, neighbours do not.
	if got := be.CellAt(4, 0).Style; got != s.searchStyle {
		t.Errorf("cell 4 style = %+v, want search style", got)
	}
	if got := be.CellAt(3, 0).Style; got == s.searchStyle {
		t.Error("cell 3 carries search style outside a match")
	}
	if got := be.CellAt(16, 0).Style; got != s.searchStyle {
		t.Errorf("cell 16 style = %+v, want search style for second match", got)
	}
}

func TestRenderStatusBar(t *testing.T) {
	be := backend.NewNull(80, 12)
	s := New(be)

	f, _ := newFrame([]string{"x"})
	f.Status = Status{FileName: "notes.txt", Version: "ced v4.5", Line: 1, Col: 1, Modified: true}
	s.Render(f)

	got := be.Row(11)
	want := "[ced v4.5] File: notes.txt | Ln: 1, Col: 1 [Modified]  (Ctrl+H for help)"
	if got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}

func TestRenderStatusMessage(t *testing.T) {
	be := backend.NewNull(80, 12)
	s := New(be)

	f, _ := newFrame([]string{"x"})
	f.Status = Status{Message: "Error saving file"}
	s.Render(f)

	if got := be.Row(11); got != "Error saving file" {
		t.Errorf("status = %q, want message text", got)
	}
}

func TestRenderHelp(t *testing.T) {
	be := backend.NewNull(200, 12)
	s := New(be)

	f, _ := newFrame([]string{"x"})
	f.Status.ShowHelp = true
	s.Render(f)

	if got := be.Row(11); !strings.Contains(got, "Ctrl+Q quit") {
		t.Errorf("status = %q, want help text", got)
	}
}

func TestRenderPanel(t *testing.T) {
	be := backend.NewNull(80, 24)
	s := New(be)

	f, _ := newFrame([]string{"x"})
	f.Panel = Panel{Open: true, Lines: []string{"out1", "out2"}}
	s.Render(f)

	textRows := s.TextRows(true)
	if textRows != 24-StatusRows-PanelHeight {
		t.Fatalf("TextRows(true) = %d, want %d", textRows, 24-StatusRows-PanelHeight)
	}
	if got := be.Row(textRows + 1); got != panelHeader {
		t.Errorf("panel header = %q, want %q", got, panelHeader)
	}
	if got := be.Row(textRows + 2); got != "out1" {
		t.Errorf("panel line 0 = %q, want %q", got, "out1")
	}
	if got := be.Row(textRows + 3); got != "out2" {
		t.Errorf("panel line 1 = %q, want %q", got, "out2")
	}
}

func TestPlaceCursor(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, buf := newFrame([]string{"hello"})
	buf.SetCursor(0, 3)
	f.CursorRow, f.CursorCol = 0, 3
	f.ShowLineNumbers = true
	s.Render(f)

	x, y, visible := be.Cursor()
	if !visible {
		t.Fatal("cursor hidden, want visible")
	}
	if x != 3+GutterWidth || y != 0 {
		t.Errorf("cursor = (%d, %d), want (%d, 0)", x, y, 3+GutterWidth)
	}
}

func TestPlaceCursorHiddenOffscreen(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	f, _ := newFrame([]string{"one", "two"})
	f.RowOffset = 1
	f.CursorRow = 0
	s.Render(f)

	if _, _, visible := be.Cursor(); visible {
		t.Error("cursor visible while scrolled off screen")
	}
}

func TestUsableCols(t *testing.T) {
	be := backend.NewNull(40, 12)
	s := New(be)

	if got := s.UsableCols(false); got != 40 {
		t.Errorf("UsableCols(false) = %d, want 40", got)
	}
	if got := s.UsableCols(true); got != 40-GutterWidth {
		t.Errorf("UsableCols(true) = %d, want %d", got, 40-GutterWidth)
	}
}
