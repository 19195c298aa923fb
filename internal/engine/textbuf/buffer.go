package textbuf

import (
	"slices"
	"strings"
)

// Default capacity limits. These mirror the editor's historical fixed-array
// bounds but are enforced as policy, not as storage sizes.
const (
	DefaultMaxLineLen = 1024
	DefaultMaxLines   = 1000
)

// Effect describes the redraw consequence of a mutation.
type Effect uint8

const (
	// EffectNone means nothing observable changed.
	EffectNone Effect = iota

	// EffectLine means a single line changed in place.
	EffectLine

	// EffectBelow means the line count changed at Row, so that line and
	// every line below it moved or changed.
	EffectBelow
)

// Change reports what a mutation did, for dirty-line bookkeeping.
type Change struct {
	Effect Effect
	Row    int
}

func none() Change         { return Change{Effect: EffectNone} }
func line(row int) Change  { return Change{Effect: EffectLine, Row: row} }
func below(row int) Change { return Change{Effect: EffectBelow, Row: row} }

// Buffer is an ordered sequence of lines plus a cursor position.
// At least one line always exists, and the cursor stays within bounds:
// row in [0, LineCount-1], col in [0, len(current line)].
type Buffer struct {
	lines [][]rune
	row   int
	col   int

	maxLineLen int
	maxLines   int
}

// New creates an empty buffer containing a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      [][]rune{{}},
		maxLineLen: DefaultMaxLineLen,
		maxLines:   DefaultMaxLines,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load replaces the buffer content with the given lines and resets the
// cursor to the origin. Lines beyond the line-count limit are dropped and
// over-long lines truncated. An empty input yields a single empty line.
func (b *Buffer) Load(lines []string) {
	b.lines = b.lines[:0]
	for _, s := range lines {
		if len(b.lines) >= b.maxLines {
			break
		}
		rs := []rune(s)
		if len(rs) > b.maxLineLen {
			rs = rs[:b.maxLineLen]
		}
		b.lines = append(b.lines, rs)
	}
	if len(b.lines) == 0 {
		b.lines = append(b.lines, []rune{})
	}
	b.row, b.col = 0, 0
}

// Lines returns the buffer content as strings, one per line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, rs := range b.lines {
		out[i] = string(rs)
	}
	return out
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the runes of line i, or nil if out of range.
// The returned slice is the buffer's own storage; callers must not mutate it.
func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// LineText returns line i as a string.
func (b *Buffer) LineText(i int) string { return string(b.Line(i)) }

// Cursor returns the cursor row and column.
func (b *Buffer) Cursor() (row, col int) { return b.row, b.col }

// MaxLineLen returns the line-length limit.
func (b *Buffer) MaxLineLen() int { return b.maxLineLen }

// MaxLines returns the line-count limit.
func (b *Buffer) MaxLines() int { return b.maxLines }

// InsertRune inserts r at the cursor and advances the cursor by one.
// No-op if the line is at the length limit.
func (b *Buffer) InsertRune(r rune) Change {
	cur := b.lines[b.row]
	if len(cur) >= b.maxLineLen {
		return none()
	}
	cur = append(cur, 0)
	copy(cur[b.col+1:], cur[b.col:])
	cur[b.col] = r
	b.lines[b.row] = cur
	b.col++
	return line(b.row)
}

// DeleteBackward removes the rune to the left of the cursor. At column 0
// it joins the current line onto the previous one and places the cursor
// at the join point. No-op at the start of the buffer.
func (b *Buffer) DeleteBackward() Change {
	if b.col == 0 {
		if b.row == 0 {
			return none()
		}
		prev := b.lines[b.row-1]
		joinCol := len(prev)
		b.lines[b.row-1] = append(prev, b.lines[b.row]...)
		b.lines = slices.Delete(b.lines, b.row, b.row+1)
		b.row--
		b.col = joinCol
		return below(b.row)
	}
	cur := b.lines[b.row]
	b.lines[b.row] = append(cur[:b.col-1], cur[b.col:]...)
	b.col--
	return line(b.row)
}

// DeleteForward removes the rune under the cursor. At end of line it joins
// the next line into the current one. No-op at the end of the buffer.
func (b *Buffer) DeleteForward() Change {
	cur := b.lines[b.row]
	if b.col == len(cur) {
		if b.row == len(b.lines)-1 {
			return none()
		}
		b.lines[b.row] = append(cur, b.lines[b.row+1]...)
		b.lines = slices.Delete(b.lines, b.row+1, b.row+2)
		return below(b.row)
	}
	b.lines[b.row] = append(cur[:b.col], cur[b.col+1:]...)
	return line(b.row)
}

// SplitLine breaks the current line at the cursor; text at and after the
// cursor becomes a new line below. With autoIndent the new line inherits
// the leading-space run of the original and the cursor lands after it,
// otherwise the cursor lands at column 0. No-op at the line-count limit.
func (b *Buffer) SplitLine(autoIndent bool) Change {
	if len(b.lines) >= b.maxLines {
		return none()
	}
	cur := b.lines[b.row]
	rest := append([]rune{}, cur[b.col:]...)
	b.lines[b.row] = cur[:b.col]

	indent := 0
	if autoIndent {
		for indent < len(b.lines[b.row]) && b.lines[b.row][indent] == ' ' {
			indent++
		}
		padded := make([]rune, 0, indent+len(rest))
		for i := 0; i < indent; i++ {
			padded = append(padded, ' ')
		}
		rest = append(padded, rest...)
		if len(rest) > b.maxLineLen {
			rest = rest[:b.maxLineLen]
		}
	}

	splitRow := b.row
	b.lines = slices.Insert(b.lines, b.row+1, rest)
	b.row++
	b.col = indent
	return below(splitRow)
}

// DuplicateLine inserts a copy of the current line directly below it and
// moves the cursor onto the copy. No-op at the line-count limit.
func (b *Buffer) DuplicateLine() Change {
	if len(b.lines) >= b.maxLines {
		return none()
	}
	dup := append([]rune{}, b.lines[b.row]...)
	b.lines = slices.Insert(b.lines, b.row+1, dup)
	b.row++
	return below(b.row - 1)
}

// DeleteLine removes the current line. When only one line exists it is
// cleared instead, preserving the at-least-one-line invariant. The cursor
// moves to column 0 of the line now occupying the row.
func (b *Buffer) DeleteLine() Change {
	if len(b.lines) == 1 {
		if len(b.lines[0]) == 0 && b.col == 0 {
			return none()
		}
		b.lines[0] = b.lines[0][:0]
		b.col = 0
		return line(0)
	}
	row := b.row
	b.lines = slices.Delete(b.lines, b.row, b.row+1)
	if b.row >= len(b.lines) {
		b.row = len(b.lines) - 1
	}
	b.col = 0
	return below(row)
}

// ReplaceLine swaps the content of line i, truncating to the length limit.
// The cursor column is clamped if the current line shrank under it.
func (b *Buffer) ReplaceLine(i int, text string) Change {
	if i < 0 || i >= len(b.lines) {
		return none()
	}
	rs := []rune(text)
	if len(rs) > b.maxLineLen {
		rs = rs[:b.maxLineLen]
	}
	b.lines[i] = rs
	if i == b.row && b.col > len(rs) {
		b.col = len(rs)
	}
	return line(i)
}

// Cursor movement. Vertical moves clamp the column to the target line
// length; horizontal moves wrap across line boundaries like the arrow
// keys of a classic terminal editor.

// MoveUp moves the cursor one row up.
func (b *Buffer) MoveUp() {
	if b.row > 0 {
		b.row--
		b.clampCol()
	}
}

// MoveDown moves the cursor one row down.
func (b *Buffer) MoveDown() {
	if b.row < len(b.lines)-1 {
		b.row++
		b.clampCol()
	}
}

// MoveLeft moves the cursor one column left, wrapping to the end of the
// previous line at column 0.
func (b *Buffer) MoveLeft() {
	if b.col > 0 {
		b.col--
	} else if b.row > 0 {
		b.row--
		b.col = len(b.lines[b.row])
	}
}

// MoveRight moves the cursor one column right, wrapping to the start of
// the next line at end of line.
func (b *Buffer) MoveRight() {
	if b.col < len(b.lines[b.row]) {
		b.col++
	} else if b.row < len(b.lines)-1 {
		b.row++
		b.col = 0
	}
}

// MoveLineStart moves the cursor to column 0.
func (b *Buffer) MoveLineStart() { b.col = 0 }

// MoveLineEnd moves the cursor past the last rune of the current line.
func (b *Buffer) MoveLineEnd() { b.col = len(b.lines[b.row]) }

// MoveTop moves the cursor to the start of the buffer.
func (b *Buffer) MoveTop() { b.row, b.col = 0, 0 }

// MoveBottom moves the cursor to the end of the last line.
func (b *Buffer) MoveBottom() {
	b.row = len(b.lines) - 1
	b.col = len(b.lines[b.row])
}

// MoveRows moves the cursor delta rows (negative is up), clamping to the
// buffer bounds and the target line length.
func (b *Buffer) MoveRows(delta int) {
	b.row += delta
	if b.row < 0 {
		b.row = 0
	}
	if b.row > len(b.lines)-1 {
		b.row = len(b.lines) - 1
	}
	b.clampCol()
}

// SetCursor places the cursor at (row, col), clamped to valid positions.
func (b *Buffer) SetCursor(row, col int) {
	if row < 0 {
		row = 0
	}
	if row > len(b.lines)-1 {
		row = len(b.lines) - 1
	}
	b.row = row
	if col < 0 {
		col = 0
	}
	if col > len(b.lines[row]) {
		col = len(b.lines[row])
	}
	b.col = col
}

func (b *Buffer) clampCol() {
	if b.col > len(b.lines[b.row]) {
		b.col = len(b.lines[b.row])
	}
}

// String returns the buffer content joined with newlines, mainly for
// tests and debugging.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
