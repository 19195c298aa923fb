package renderer

import (
	"fmt"

	"github.com/cedward/ced/internal/renderer/core"
)

// drawGutter renders the line-number gutter for one row and returns the
// first column available for text.
func (s *Scheduler) drawGutter(y, lineIdx int) int {
	label := fmt.Sprintf("%4d | ", lineIdx+1)
	for x := 0; x < GutterWidth; x++ {
		r := ' '
		if x < len(label) {
			r = rune(label[x])
		}
		s.be.SetCell(x, y, core.NewStyledCell(r, s.gutterStyle))
	}
	return GutterWidth
}
