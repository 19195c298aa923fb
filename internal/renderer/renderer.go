// Package renderer turns editor state into terminal cells. The Scheduler
// is the incremental heart of the editor: each frame it redraws only the
// visible rows whose buffer lines are marked dirty, clearing marks as it
// goes, so a frame costs O(dirty lines) instead of O(visible rows).
package renderer

import (
	"github.com/cedward/ced/internal/renderer/backend"
	"github.com/cedward/ced/internal/renderer/core"
	"github.com/cedward/ced/internal/renderer/dirty"
	"github.com/cedward/ced/internal/syntax"
)

// Layout constants.
const (
	// GutterWidth is the width of the line-number gutter in cells.
	GutterWidth = 8

	// PanelHeight is the height of the shell panel when open.
	PanelHeight = 10

	// StatusRows is the number of rows reserved for the status bar.
	StatusRows = 1
)

// Document is the read surface the scheduler renders from.
type Document interface {
	LineCount() int
	Line(i int) []rune
}

// Frame is everything the scheduler needs to draw one frame.
type Frame struct {
	Doc Document

	RowOffset int
	ColOffset int
	CursorRow int
	CursorCol int

	Dirty       *dirty.Set
	Highlighter *syntax.Highlighter
	SearchTerm  string

	ShowLineNumbers bool
	Status          Status
	Panel           Panel
}

// Scheduler draws frames onto a backend.
type Scheduler struct {
	be backend.Backend

	searchStyle core.Style
	gutterStyle core.Style
	statusStyle core.Style
	headerStyle core.Style
}

// New creates a scheduler for the given backend.
func New(be backend.Backend) *Scheduler {
	searchBg := syntax.RGB{R: 255, G: 255, B: 0}
	searchFg := searchBg.Contrast()
	return &Scheduler{
		be: be,
		searchStyle: core.DefaultStyle().
			WithBackground(core.ColorFromRGB(searchBg.R, searchBg.G, searchBg.B)).
			WithForeground(core.ColorFromRGB(searchFg.R, searchFg.G, searchFg.B)),
		gutterStyle: core.DefaultStyle().WithForeground(core.ColorGray),
		statusStyle: core.DefaultStyle().WithReverse(),
		headerStyle: core.DefaultStyle().WithBold(),
	}
}

// TextRows returns the number of rows available for buffer text given
// the current terminal size and panel state.
func (s *Scheduler) TextRows(panelOpen bool) int {
	_, h := s.be.Size()
	rows := h - StatusRows
	if panelOpen {
		rows -= PanelHeight
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

// UsableCols returns the columns available for buffer text.
func (s *Scheduler) UsableCols(showLineNumbers bool) int {
	w, _ := s.be.Size()
	if showLineNumbers {
		w -= GutterWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Render draws one frame and flushes it.
func (s *Scheduler) Render(f *Frame) {
	w, _ := s.be.Size()
	textRows := s.TextRows(f.Panel.Open)

	for y := 0; y < textRows; y++ {
		lineIdx := f.RowOffset + y
		if lineIdx >= f.Doc.LineCount() {
			// Rows past the end of the buffer are blanked.
			s.blankRow(y, w)
			continue
		}
		if !f.Dirty.Dirty(lineIdx) {
			continue
		}
		s.drawLine(y, lineIdx, w, f)
		f.Dirty.Clear(lineIdx)
	}

	s.drawStatus(textRows, w, f)

	if f.Panel.Open {
		s.drawPanel(textRows+StatusRows, w, f.Panel)
	}

	s.placeCursor(f, textRows, w)
	s.be.Show()
}

// drawLine renders one buffer line into one screen row.
func (s *Scheduler) drawLine(y, lineIdx, width int, f *Frame) {
	x := 0
	if f.ShowLineNumbers {
		x = s.drawGutter(y, lineIdx)
	}

	line := f.Doc.Line(lineIdx)
	spans := f.Highlighter.Line(line, f.ColOffset, f.SearchTerm)

	for _, span := range spans {
		style := s.styleFor(span)
		for col := span.Start; col < span.End; col++ {
			sx := x + col - f.ColOffset
			if sx >= width {
				break
			}
			s.be.SetCell(sx, y, core.NewStyledCell(line[col], style))
		}
	}

	// Blank the remainder of the row.
	endX := x + len(line) - f.ColOffset
	if endX < x {
		endX = x
	}
	for sx := endX; sx < width; sx++ {
		s.be.SetCell(sx, y, core.EmptyCell())
	}
}

func (s *Scheduler) styleFor(span syntax.Span) core.Style {
	switch span.Kind {
	case syntax.SpanSearch:
		return s.searchStyle
	case syntax.SpanToken:
		return core.DefaultStyle().WithForeground(
			core.ColorFromRGB(span.Color.R, span.Color.G, span.Color.B))
	default:
		return core.DefaultStyle()
	}
}

func (s *Scheduler) blankRow(y, width int) {
	for x := 0; x < width; x++ {
		s.be.SetCell(x, y, core.EmptyCell())
	}
}

// placeCursor positions the hardware cursor, hiding it when the cursor
// row is scrolled out of the text area.
func (s *Scheduler) placeCursor(f *Frame, textRows, width int) {
	y := f.CursorRow - f.RowOffset
	x := f.CursorCol - f.ColOffset
	if f.ShowLineNumbers {
		x += GutterWidth
	}
	if y < 0 || y >= textRows || x < 0 || x >= width {
		s.be.HideCursor()
		return
	}
	s.be.ShowCursor(x, y)
}
