package textbuf

import "testing"

func TestNewBufferHasOneEmptyLine(t *testing.T) {
	b := New()

	if b.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1", b.LineCount())
	}
	row, col := b.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("Cursor = (%d,%d), want (0,0)", row, col)
	}
}

func TestInsertRune(t *testing.T) {
	b := New()
	for _, r := range "hello" {
		b.InsertRune(r)
	}

	if got := b.LineText(0); got != "hello" {
		t.Errorf("LineText(0) = %q, want %q", got, "hello")
	}
	if _, col := b.Cursor(); col != 5 {
		t.Errorf("cursor col = %d, want 5", col)
	}
}

func TestInsertRuneMidLine(t *testing.T) {
	b := New()
	b.Load([]string{"hllo"})
	b.SetCursor(0, 1)

	ch := b.InsertRune('e')

	if ch.Effect != EffectLine || ch.Row != 0 {
		t.Errorf("Change = %+v, want line 0", ch)
	}
	if got := b.LineText(0); got != "hello" {
		t.Errorf("LineText(0) = %q, want %q", got, "hello")
	}
}

func TestInsertThenDeleteBackwardIsInverse(t *testing.T) {
	b := New()
	b.Load([]string{"some text here"})
	b.SetCursor(0, 5)

	b.InsertRune('x')
	b.DeleteBackward()

	if got := b.LineText(0); got != "some text here" {
		t.Errorf("LineText(0) = %q, want original content", got)
	}
	if _, col := b.Cursor(); col != 5 {
		t.Errorf("cursor col = %d, want 5", col)
	}
}

func TestInsertRuneRejectsAtLineLimit(t *testing.T) {
	b := New(WithMaxLineLen(4))
	for _, r := range "abcdef" {
		b.InsertRune(r)
	}

	if got := b.LineText(0); got != "abcd" {
		t.Errorf("LineText(0) = %q, want %q", got, "abcd")
	}
	if _, col := b.Cursor(); col != 4 {
		t.Errorf("cursor col = %d, want 4", col)
	}
}

func TestDeleteBackwardJoinsLines(t *testing.T) {
	b := New()
	b.Load([]string{"first", "second"})
	b.SetCursor(1, 0)

	ch := b.DeleteBackward()

	if ch.Effect != EffectBelow || ch.Row != 0 {
		t.Errorf("Change = %+v, want below 0", ch)
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1", b.LineCount())
	}
	if got := b.LineText(0); got != "firstsecond" {
		t.Errorf("LineText(0) = %q, want %q", got, "firstsecond")
	}
	row, col := b.Cursor()
	if row != 0 || col != 5 {
		t.Errorf("Cursor = (%d,%d), want join point (0,5)", row, col)
	}
}

func TestDeleteBackwardNoopAtOrigin(t *testing.T) {
	b := New()
	b.Load([]string{"text"})

	if ch := b.DeleteBackward(); ch.Effect != EffectNone {
		t.Errorf("Change = %+v, want none", ch)
	}
	if got := b.LineText(0); got != "text" {
		t.Errorf("LineText(0) = %q, want unchanged", got)
	}
}

func TestDeleteForwardJoinsNextLine(t *testing.T) {
	b := New()
	b.Load([]string{"ab", "cd"})
	b.SetCursor(0, 2)

	ch := b.DeleteForward()

	if ch.Effect != EffectBelow {
		t.Errorf("Change = %+v, want below", ch)
	}
	if got := b.LineText(0); got != "abcd" {
		t.Errorf("LineText(0) = %q, want %q", got, "abcd")
	}
	row, col := b.Cursor()
	if row != 0 || col != 2 {
		t.Errorf("Cursor = (%d,%d), want (0,2)", row, col)
	}
}

func TestDeleteForwardNoopAtBufferEnd(t *testing.T) {
	b := New()
	b.Load([]string{"ab"})
	b.SetCursor(0, 2)

	if ch := b.DeleteForward(); ch.Effect != EffectNone {
		t.Errorf("Change = %+v, want none", ch)
	}
}

func TestSplitLine(t *testing.T) {
	b := New()
	b.Load([]string{"hello world"})
	b.SetCursor(0, 5)

	ch := b.SplitLine(false)

	if ch.Effect != EffectBelow || ch.Row != 0 {
		t.Errorf("Change = %+v, want below 0", ch)
	}
	if got := b.LineText(0); got != "hello" {
		t.Errorf("LineText(0) = %q, want %q", got, "hello")
	}
	if got := b.LineText(1); got != " world" {
		t.Errorf("LineText(1) = %q, want %q", got, " world")
	}
	row, col := b.Cursor()
	if row != 1 || col != 0 {
		t.Errorf("Cursor = (%d,%d), want (1,0)", row, col)
	}
}

func TestSplitLineAutoIndent(t *testing.T) {
	b := New()
	b.Load([]string{"    if x {"})
	b.SetCursor(0, 10)

	b.SplitLine(true)

	if got := b.LineText(1); got != "    " {
		t.Errorf("LineText(1) = %q, want four-space indent", got)
	}
	row, col := b.Cursor()
	if row != 1 || col != 4 {
		t.Errorf("Cursor = (%d,%d), want (1,4) after indent", row, col)
	}
}

func TestSplitLineRejectsAtLineLimit(t *testing.T) {
	b := New(WithMaxLines(2))
	b.Load([]string{"a", "b"})

	if ch := b.SplitLine(false); ch.Effect != EffectNone {
		t.Errorf("Change = %+v, want none", ch)
	}
	if b.LineCount() != 2 {
		t.Errorf("LineCount = %d, want 2", b.LineCount())
	}
}

func TestSplitPreservesOrderOfUnaffectedLines(t *testing.T) {
	b := New()
	b.Load([]string{"one", "two", "three"})
	b.SetCursor(1, 1)

	b.SplitLine(false)

	want := []string{"one", "t", "wo", "three"}
	got := b.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDuplicateLine(t *testing.T) {
	b := New()
	b.Load([]string{"alpha", "beta"})
	b.SetCursor(0, 3)

	ch := b.DuplicateLine()

	if ch.Effect != EffectBelow || ch.Row != 0 {
		t.Errorf("Change = %+v, want below 0", ch)
	}
	want := []string{"alpha", "alpha", "beta"}
	for i, w := range want {
		if got := b.LineText(i); got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}
	if row, _ := b.Cursor(); row != 1 {
		t.Errorf("cursor row = %d, want 1", row)
	}
}

func TestDeleteLine(t *testing.T) {
	b := New()
	b.Load([]string{"one", "two", "three"})
	b.SetCursor(1, 2)

	ch := b.DeleteLine()

	if ch.Effect != EffectBelow || ch.Row != 1 {
		t.Errorf("Change = %+v, want below 1", ch)
	}
	want := []string{"one", "three"}
	for i, w := range want {
		if got := b.LineText(i); got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}
	row, col := b.Cursor()
	if row != 1 || col != 0 {
		t.Errorf("Cursor = (%d,%d), want (1,0)", row, col)
	}
}

func TestDeleteLastLineClampsCursor(t *testing.T) {
	b := New()
	b.Load([]string{"one", "two"})
	b.SetCursor(1, 0)

	b.DeleteLine()

	if row, _ := b.Cursor(); row != 0 {
		t.Errorf("cursor row = %d, want 0", row)
	}
}

func TestDeleteOnlyLineClearsIt(t *testing.T) {
	b := New()
	b.Load([]string{"content"})
	b.SetCursor(0, 3)

	b.DeleteLine()

	if b.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1", b.LineCount())
	}
	if got := b.LineText(0); got != "" {
		t.Errorf("LineText(0) = %q, want empty", got)
	}
}

func TestMoveWrapsAcrossLines(t *testing.T) {
	b := New()
	b.Load([]string{"ab", "cd"})
	b.SetCursor(0, 2)

	b.MoveRight()
	if row, col := b.Cursor(); row != 1 || col != 0 {
		t.Errorf("after MoveRight at EOL: (%d,%d), want (1,0)", row, col)
	}

	b.MoveLeft()
	if row, col := b.Cursor(); row != 0 || col != 2 {
		t.Errorf("after MoveLeft at BOL: (%d,%d), want (0,2)", row, col)
	}
}

func TestMoveVerticalClampsColumn(t *testing.T) {
	b := New()
	b.Load([]string{"long line here", "ab"})
	b.SetCursor(0, 10)

	b.MoveDown()

	if _, col := b.Cursor(); col != 2 {
		t.Errorf("col = %d, want clamped to 2", col)
	}
}

func TestMoveRows(t *testing.T) {
	b := New()
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "x"
	}
	b.Load(lines)

	b.MoveRows(100)
	if row, _ := b.Cursor(); row != 29 {
		t.Errorf("row = %d, want clamped to 29", row)
	}

	b.MoveRows(-100)
	if row, _ := b.Cursor(); row != 0 {
		t.Errorf("row = %d, want clamped to 0", row)
	}
}

func TestLoadTruncatesToLimits(t *testing.T) {
	b := New(WithMaxLines(2), WithMaxLineLen(3))
	b.Load([]string{"abcdef", "gh", "dropped"})

	if b.LineCount() != 2 {
		t.Errorf("LineCount = %d, want 2", b.LineCount())
	}
	if got := b.LineText(0); got != "abc" {
		t.Errorf("LineText(0) = %q, want %q", got, "abc")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	b := New()
	b.Load([]string{"one", "two"})
	b.SetCursor(1, 2)

	snap := b.Snapshot()
	snap.RowOffset = 7
	snap.ColOffset = 3

	b.Load([]string{"completely", "different", "content"})
	b.Restore(snap)

	if got := b.String(); got != "one\ntwo" {
		t.Errorf("buffer = %q, want restored content", got)
	}
	row, col := b.Cursor()
	if row != 1 || col != 2 {
		t.Errorf("Cursor = (%d,%d), want (1,2)", row, col)
	}
}

func TestSnapshotDoesNotAliasBuffer(t *testing.T) {
	b := New()
	b.Load([]string{"abc"})
	snap := b.Snapshot()

	b.SetCursor(0, 0)
	b.InsertRune('Z')

	if got := string(snap.Lines[0]); got != "abc" {
		t.Errorf("snapshot line = %q, want untouched %q", got, "abc")
	}
}
