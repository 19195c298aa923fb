package renderer

import "github.com/cedward/ced/internal/renderer/core"

// Panel carries the shell panel state: whether it is open and the
// captured output of the last command.
type Panel struct {
	Open  bool
	Lines []string
}

const panelHeader = "=== Shell Panel (Ctrl+W to close, Ctrl+E to run cmd) ==="

// drawPanel renders the shell panel starting at screen row top.
func (s *Scheduler) drawPanel(top, width int, p Panel) {
	s.drawPanelRow(top, width, panelHeader, s.headerStyle)

	row := 1
	for _, out := range p.Lines {
		if row >= PanelHeight {
			break
		}
		s.drawPanelRow(top+row, width, out, core.DefaultStyle())
		row++
	}
	for ; row < PanelHeight; row++ {
		s.drawPanelRow(top+row, width, "", core.DefaultStyle())
	}
}

func (s *Scheduler) drawPanelRow(y, width int, text string, style core.Style) {
	rs := []rune(text)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(rs) {
			r = rs[x]
		}
		s.be.SetCell(x, y, core.NewStyledCell(r, style))
	}
}
