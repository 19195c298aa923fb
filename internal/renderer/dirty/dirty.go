// Package dirty tracks which buffer lines are stale and must be redrawn.
// Mutations, scrolls and search changes mark lines; the render scheduler
// clears them one by one as it redraws, giving O(dirty lines) frames.
//
// Lines are buffer-indexed, not screen-indexed: a line marked while
// off-screen stays marked until it scrolls into view and gets drawn.
package dirty

// Set is a sparse set of dirty buffer line indices.
type Set struct {
	lines map[int]struct{}
}

// NewSet creates an empty dirty set.
func NewSet() *Set {
	return &Set{lines: make(map[int]struct{})}
}

// Mark flags a single line as dirty. Negative indices are ignored.
func (s *Set) Mark(line int) {
	if line < 0 {
		return
	}
	s.lines[line] = struct{}{}
}

// MarkRange flags lines [from, to] inclusive.
func (s *Set) MarkRange(from, to int) {
	if from < 0 {
		from = 0
	}
	for i := from; i <= to; i++ {
		s.lines[i] = struct{}{}
	}
}

// MarkFrom flags every line from the given index through count-1. Used
// after line-count changes, where all rows below the edit point shift.
func (s *Set) MarkFrom(from, count int) {
	s.MarkRange(from, count-1)
}

// MarkAll flags all count lines.
func (s *Set) MarkAll(count int) {
	s.MarkRange(0, count-1)
}

// Dirty returns true if the line needs redrawing.
func (s *Set) Dirty(line int) bool {
	_, ok := s.lines[line]
	return ok
}

// Clear unflags a single line, typically right after it was drawn.
func (s *Set) Clear(line int) {
	delete(s.lines, line)
}

// Reset drops all marks.
func (s *Set) Reset() {
	clear(s.lines)
}

// Len returns the number of dirty lines.
func (s *Set) Len() int { return len(s.lines) }
