// Package history manages undo/redo for the editor using bounded stacks
// of full-state snapshots. The contract is deliberately snapshot-based
// rather than diff-based: each entry is a complete, independent copy of
// buffer, cursor and viewport, so a restore can never leave the editor
// half-consistent.
//
// History keeps linear time: pushing a fresh snapshot clears the redo
// stack, so redo is only ever valid immediately after an undo.
package history

import (
	"errors"

	"github.com/cedward/ced/internal/engine/textbuf"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxDepth is the default undo stack capacity.
const DefaultMaxDepth = 100

// History holds the undo and redo snapshot stacks.
type History struct {
	undo []*textbuf.Snapshot
	redo []*textbuf.Snapshot

	maxDepth int
}

// New creates a history with the given stack capacity.
// Non-positive values fall back to DefaultMaxDepth.
func New(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &History{maxDepth: maxDepth}
}

// Save records the given snapshot as the new undo top and clears the redo
// stack. When the undo stack is full the snapshot is silently dropped;
// the redo stack is cleared either way, preserving linear history.
// Callers take the snapshot *before* applying the mutation it guards.
func (h *History) Save(s *textbuf.Snapshot) {
	if len(h.undo) < h.maxDepth {
		h.undo = append(h.undo, s)
	}
	h.redo = h.redo[:0]
}

// Undo pops the most recent undo snapshot, pushing current onto the redo
// stack (capacity permitting). Returns ErrNothingToUndo when empty.
func (h *History) Undo(current *textbuf.Snapshot) (*textbuf.Snapshot, error) {
	if len(h.undo) == 0 {
		return nil, ErrNothingToUndo
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	if len(h.redo) < h.maxDepth {
		h.redo = append(h.redo, current)
	}
	return top, nil
}

// Redo pops the most recent redo snapshot, pushing current onto the undo
// stack (capacity permitting). Returns ErrNothingToRedo when empty.
func (h *History) Redo(current *textbuf.Snapshot) (*textbuf.Snapshot, error) {
	if len(h.redo) == 0 {
		return nil, ErrNothingToRedo
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	if len(h.undo) < h.maxDepth {
		h.undo = append(h.undo, current)
	}
	return top, nil
}

// CanUndo returns true if an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo returns true if a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of undo snapshots held.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of redo snapshots held.
func (h *History) RedoDepth() int { return len(h.redo) }

// Clear drops both stacks, e.g. after loading a new file.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
