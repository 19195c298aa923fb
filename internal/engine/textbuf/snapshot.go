package textbuf

// Snapshot is a deep copy of the full editor state used for undo/redo:
// every line, the cursor, and the viewport offsets at the moment it was
// taken. It shares no storage with the live buffer.
type Snapshot struct {
	Lines     [][]rune
	CursorRow int
	CursorCol int
	RowOffset int
	ColOffset int
}

// Snapshot captures the buffer content and cursor. The caller fills in
// the viewport offsets, which live outside the buffer.
func (b *Buffer) Snapshot() *Snapshot {
	lines := make([][]rune, len(b.lines))
	for i, rs := range b.lines {
		lines[i] = append([]rune{}, rs...)
	}
	return &Snapshot{
		Lines:     lines,
		CursorRow: b.row,
		CursorCol: b.col,
	}
}

// Restore replaces the buffer content and cursor from a snapshot. The
// snapshot's lines are deep-copied so it stays valid for further restores.
func (b *Buffer) Restore(s *Snapshot) {
	b.lines = make([][]rune, len(s.Lines))
	for i, rs := range s.Lines {
		b.lines[i] = append([]rune{}, rs...)
	}
	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
	}
	b.row = s.CursorRow
	b.col = s.CursorCol
	if b.row > len(b.lines)-1 {
		b.row = len(b.lines) - 1
	}
	b.clampCol()
}
