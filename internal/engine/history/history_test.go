package history

import (
	"errors"
	"testing"

	"github.com/cedward/ced/internal/engine/textbuf"
)

func snap(b *textbuf.Buffer, rowOff, colOff int) *textbuf.Snapshot {
	s := b.Snapshot()
	s.RowOffset = rowOff
	s.ColOffset = colOff
	return s
}

func TestUndoRestoresPreMutationState(t *testing.T) {
	b := textbuf.New()
	b.Load([]string{"hello"})
	b.SetCursor(0, 5)
	h := New(10)

	h.Save(snap(b, 3, 1))
	for _, r := range " world" {
		b.InsertRune(r)
	}

	restored, err := h.Undo(snap(b, 3, 1))
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	b.Restore(restored)

	if got := b.String(); got != "hello" {
		t.Errorf("buffer = %q, want %q", got, "hello")
	}
	row, col := b.Cursor()
	if row != 0 || col != 5 {
		t.Errorf("Cursor = (%d,%d), want (0,5)", row, col)
	}
	if restored.RowOffset != 3 || restored.ColOffset != 1 {
		t.Errorf("viewport = (%d,%d), want (3,1)", restored.RowOffset, restored.ColOffset)
	}
}

func TestRedoRestoresPostMutationState(t *testing.T) {
	b := textbuf.New()
	b.Load([]string{"hello"})
	b.SetCursor(0, 5)
	h := New(10)

	h.Save(snap(b, 0, 0))
	for _, r := range "!" {
		b.InsertRune(r)
	}

	restored, err := h.Undo(snap(b, 0, 0))
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	b.Restore(restored)

	redone, err := h.Redo(snap(b, 0, 0))
	if err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	b.Restore(redone)

	if got := b.String(); got != "hello!" {
		t.Errorf("buffer = %q, want %q", got, "hello!")
	}
	if _, col := b.Cursor(); col != 6 {
		t.Errorf("cursor col = %d, want 6", col)
	}
}

func TestSaveClearsRedo(t *testing.T) {
	b := textbuf.New()
	b.Load([]string{"x"})
	h := New(10)

	h.Save(snap(b, 0, 0))
	if _, err := h.Undo(snap(b, 0, 0)); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	// A fresh mutation invalidates the redo branch.
	h.Save(snap(b, 0, 0))

	if h.CanRedo() {
		t.Error("redo stack should be empty after a fresh save")
	}
}

func TestUndoEmptyReturnsError(t *testing.T) {
	h := New(10)
	b := textbuf.New()

	if _, err := h.Undo(snap(b, 0, 0)); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(snap(b, 0, 0)); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
}

func TestSaveDropsWhenFull(t *testing.T) {
	b := textbuf.New()
	h := New(2)

	h.Save(snap(b, 0, 0))
	h.Save(snap(b, 0, 0))
	h.Save(snap(b, 0, 0)) // over capacity, dropped

	if got := h.UndoDepth(); got != 2 {
		t.Errorf("UndoDepth = %d, want 2", got)
	}
}

func TestClear(t *testing.T) {
	b := textbuf.New()
	h := New(10)
	h.Save(snap(b, 0, 0))
	if _, err := h.Undo(snap(b, 0, 0)); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	h.Save(snap(b, 0, 0))

	h.Clear()

	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear should empty both stacks")
	}
}
