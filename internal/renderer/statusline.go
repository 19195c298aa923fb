package renderer

import (
	"fmt"

	"github.com/cedward/ced/internal/renderer/core"
)

// Status carries the state shown on the bottom status bar.
type Status struct {
	FileName string // already defaulted by the caller, e.g. "Untitled"
	Version  string
	Line     int // 1-based
	Col      int // 1-based
	Modified bool

	// Message is a transient status message that replaces the normal
	// status text for one frame cycle, e.g. an I/O error.
	Message string

	// ShowHelp swaps the status text for the key-binding reference.
	ShowHelp bool
}

const helpText = "Ctrl+Q quit  Ctrl+S save  Ctrl+O open  Ctrl+Z undo  Ctrl+Y redo  " +
	"Ctrl+G goto  Ctrl+F search  Ctrl+R replace  Ctrl+W panel  Ctrl+E cmd  " +
	"Ctrl+D dup  Ctrl+K kill  Ctrl+T nums  Ctrl+U top  Ctrl+L bottom  Ctrl+H help"

// drawStatus renders the status bar at row y.
func (s *Scheduler) drawStatus(y, width int, f *Frame) {
	text := f.Status.Message
	if text == "" {
		if f.Status.ShowHelp {
			text = helpText
		} else {
			modified := ""
			if f.Status.Modified {
				modified = " [Modified]"
			}
			text = fmt.Sprintf("[%s] File: %s | Ln: %d, Col: %d%s  (Ctrl+H for help)",
				f.Status.Version, f.Status.FileName, f.Status.Line, f.Status.Col, modified)
		}
	}

	rs := []rune(text)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(rs) {
			r = rs[x]
		}
		s.be.SetCell(x, y, core.NewStyledCell(r, s.statusStyle))
	}
}
