package backend

import (
	"strings"

	"github.com/cedward/ced/internal/renderer/core"
)

// Null is an in-memory backend for tests. It records cells and cursor
// state and feeds events from a queue.
type Null struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        chan Event
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	n := &Null{
		width:  width,
		height: height,
		events: make(chan Event, 128),
	}
	n.reset()
	return n
}

func (n *Null) reset() {
	n.cells = make([][]core.Cell, n.height)
	for y := range n.cells {
		n.cells[y] = make([]core.Cell, n.width)
		for x := range n.cells[y] {
			n.cells[y][x] = core.EmptyCell()
		}
	}
}

func (n *Null) Init() error { return nil }
func (n *Null) Fini()       {}

func (n *Null) Size() (int, int) { return n.width, n.height }

func (n *Null) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < n.width && y >= 0 && y < n.height {
		n.cells[y][x] = cell
	}
}

func (n *Null) Clear() { n.reset() }
func (n *Null) Show()  {}

func (n *Null) ShowCursor(x, y int) {
	n.cursorX, n.cursorY = x, y
	n.cursorVisible = true
}

func (n *Null) HideCursor() { n.cursorVisible = false }

func (n *Null) PollEvent() Event { return <-n.events }

func (n *Null) HasTrueColor() bool { return true }

// PostEvent queues an event for PollEvent. Drops when the queue is full.
func (n *Null) PostEvent(ev Event) {
	select {
	case n.events <- ev:
	default:
	}
}

// CellAt returns the recorded cell, for assertions.
func (n *Null) CellAt(x, y int) core.Cell {
	if x >= 0 && x < n.width && y >= 0 && y < n.height {
		return n.cells[y][x]
	}
	return core.EmptyCell()
}

// Row returns the text of screen row y with trailing blanks trimmed.
func (n *Null) Row(y int) string {
	if y < 0 || y >= n.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < n.width; x++ {
		if r := n.cells[y][x].Rune; r != 0 {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Cursor returns the recorded cursor state, for assertions.
func (n *Null) Cursor() (x, y int, visible bool) {
	return n.cursorX, n.cursorY, n.cursorVisible
}
