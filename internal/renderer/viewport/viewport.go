// Package viewport tracks the visible window into the buffer: the
// top-left cell offsets and the logic that keeps the cursor inside the
// window after every command.
package viewport

// Viewport holds the scroll offsets of the visible window.
type Viewport struct {
	rowOffset int
	colOffset int
}

// New creates a viewport at the document origin.
func New() *Viewport { return &Viewport{} }

// RowOffset returns the first visible buffer row.
func (v *Viewport) RowOffset() int { return v.rowOffset }

// ColOffset returns the first visible buffer column.
func (v *Viewport) ColOffset() int { return v.colOffset }

// Set places the viewport at explicit offsets, e.g. on snapshot restore.
func (v *Viewport) Set(rowOffset, colOffset int) {
	if rowOffset < 0 {
		rowOffset = 0
	}
	if colOffset < 0 {
		colOffset = 0
	}
	v.rowOffset = rowOffset
	v.colOffset = colOffset
}

// Follow recomputes the offsets so the cursor lands inside a window of
// visibleRows by usableCols cells. It returns true when either offset
// changed, in which case every visible line must be redrawn: its screen
// position or horizontal slice shifted.
func (v *Viewport) Follow(cursorRow, cursorCol, visibleRows, usableCols int) bool {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if usableCols < 1 {
		usableCols = 1
	}

	changed := false

	if cursorRow < v.rowOffset {
		v.rowOffset = cursorRow
		changed = true
	} else if cursorRow >= v.rowOffset+visibleRows {
		v.rowOffset = cursorRow - visibleRows + 1
		changed = true
	}

	if cursorCol < v.colOffset {
		v.colOffset = cursorCol
		changed = true
	} else if cursorCol >= v.colOffset+usableCols {
		v.colOffset = cursorCol - usableCols + 1
		changed = true
	}

	return changed
}
