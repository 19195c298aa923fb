package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cedward/ced/internal/engine/search"
	"github.com/cedward/ced/internal/renderer"
	"github.com/cedward/ced/internal/renderer/backend"
	"github.com/cedward/ced/internal/storage"
	"github.com/cedward/ced/internal/syntax"
)

// Cursor travel for paging and the mouse wheel.
const (
	pageStep  = 5
	wheelStep = 3
)

// handleKey dispatches one key event. Mutating keys snapshot state for
// undo before touching the buffer.
func (e *Editor) handleKey(ctx context.Context, ev backend.Event) error {
	switch ev.Key {
	case backend.KeyCtrlQ:
		return e.quit()
	case backend.KeyCtrlS:
		e.saveFile()
	case backend.KeyCtrlO:
		e.openFilePrompt()
	case backend.KeyCtrlZ:
		e.undo()
	case backend.KeyCtrlY:
		e.redo()
	case backend.KeyCtrlF:
		e.searchPrompt()
	case backend.KeyCtrlR:
		e.replaceAllPrompt()
	case backend.KeyCtrlG:
		e.gotoLinePrompt()
	case backend.KeyCtrlH:
		e.showHelp = !e.showHelp
	case backend.KeyCtrlW:
		e.panelOpen = !e.panelOpen
		e.dirty.MarkAll(e.buf.LineCount())
	case backend.KeyCtrlE:
		e.runShellPrompt(ctx)
	case backend.KeyCtrlD:
		e.saveUndo()
		e.applyChange(e.buf.DuplicateLine())
	case backend.KeyCtrlK:
		e.saveUndo()
		e.applyChange(e.buf.DeleteLine())
	case backend.KeyCtrlT:
		e.showLineNumbers = !e.showLineNumbers
		e.dirty.MarkAll(e.buf.LineCount())
	case backend.KeyCtrlU:
		e.buf.MoveTop()
	case backend.KeyCtrlL:
		e.buf.MoveBottom()

	case backend.KeyUp:
		e.buf.MoveUp()
	case backend.KeyDown:
		e.buf.MoveDown()
	case backend.KeyLeft:
		e.buf.MoveLeft()
	case backend.KeyRight:
		e.buf.MoveRight()
	case backend.KeyHome:
		e.buf.MoveLineStart()
	case backend.KeyEnd:
		e.buf.MoveLineEnd()
	case backend.KeyPageUp:
		e.buf.MoveRows(-pageStep)
	case backend.KeyPageDown:
		e.buf.MoveRows(pageStep)

	case backend.KeyBackspace:
		e.saveUndo()
		e.applyChange(e.buf.DeleteBackward())
	case backend.KeyDelete:
		e.saveUndo()
		e.applyChange(e.buf.DeleteForward())
	case backend.KeyEnter:
		e.saveUndo()
		e.applyChange(e.buf.SplitLine(e.settings.AutoIndent))
	case backend.KeyTab:
		e.saveUndo()
		if e.settings.TabFourSpaces {
			for i := 0; i < 4; i++ {
				e.applyChange(e.buf.InsertRune(' '))
			}
		} else {
			e.applyChange(e.buf.InsertRune('\t'))
		}
	case backend.KeyRune:
		if ev.Rune >= ' ' {
			e.saveUndo()
			e.applyChange(e.buf.InsertRune(ev.Rune))
		}
	}
	return nil
}

// handleMouse places the cursor on click and scrolls on wheel events.
func (e *Editor) handleMouse(ev backend.Event) {
	switch ev.MouseButton {
	case backend.MouseLeft:
		row := ev.MouseY + e.vp.RowOffset()
		col := 0
		if row >= 0 && row < e.buf.LineCount() {
			col = ev.MouseX + e.vp.ColOffset()
			if e.showLineNumbers {
				col -= renderer.GutterWidth
			}
		}
		e.buf.SetCursor(row, col)
		e.dirty.MarkAll(e.buf.LineCount())
	case backend.MouseWheelUp:
		e.buf.MoveRows(-wheelStep)
		e.dirty.MarkAll(e.buf.LineCount())
	case backend.MouseWheelDown:
		e.buf.MoveRows(wheelStep)
		e.dirty.MarkAll(e.buf.LineCount())
	}
}

// quit asks for confirmation when unsaved changes would be lost.
func (e *Editor) quit() error {
	if !e.modified {
		return ErrQuit
	}
	answer := e.prompt("Unsaved changes. Quit without saving? (y/N): ")
	if answer == "y" || answer == "Y" {
		return ErrQuit
	}
	return nil
}

func (e *Editor) undo() {
	s, err := e.hist.Undo(e.snapshot())
	if err != nil {
		return
	}
	e.restore(s)
}

func (e *Editor) redo() {
	s, err := e.hist.Redo(e.snapshot())
	if err != nil {
		return
	}
	e.restore(s)
}

// searchPrompt reads a term and activates the search overlay. An empty
// answer clears it.
func (e *Editor) searchPrompt() {
	term := e.prompt("Search term: ")
	if term == "" {
		e.srch.Clear()
	} else {
		e.srch.SetTerm(term)
	}
	e.dirty.MarkAll(e.buf.LineCount())
}

func (e *Editor) replaceAllPrompt() {
	old := e.prompt("Old text: ")
	if old == "" {
		return
	}
	new := e.prompt("New text: ")

	snap := e.snapshot()
	changed := search.ReplaceAll(e.buf, old, new)
	if len(changed) == 0 {
		return
	}
	e.hist.Save(snap)
	e.modified = true
	for _, row := range changed {
		e.dirty.Mark(row)
	}
}

func (e *Editor) gotoLinePrompt() {
	answer := e.prompt("Goto line: ")
	if answer == "" {
		return
	}
	ln, err := strconv.Atoi(answer)
	if err != nil {
		return
	}
	if ln < 1 {
		ln = 1
	}
	if ln > e.buf.LineCount() {
		ln = e.buf.LineCount()
	}
	e.buf.SetCursor(ln-1, 0)
	e.dirty.MarkAll(e.buf.LineCount())
}

// runShellPrompt runs a command and captures its output for the panel.
func (e *Editor) runShellPrompt(ctx context.Context) {
	cmd := e.prompt("Shell command: ")
	if cmd == "" {
		return
	}
	e.log.Debug("shell command: %s", cmd)
	e.panelLines = e.sh.Run(ctx, cmd)
	e.dirty.MarkAll(e.buf.LineCount())
}

// saveFile writes the buffer to the current file, prompting for a name
// the first time.
func (e *Editor) saveFile() {
	name := e.currentFile
	if name == "" {
		name = e.prompt("Save as: ")
		if name == "" {
			return
		}
		name = storage.Resolve(name)
		if err := storage.EnsureSaveDir(); err != nil {
			e.statusMsg = err.Error()
			return
		}
	}

	if err := storage.WriteLines(name, e.buf.Lines()); err != nil {
		e.log.Error("save %s: %v", name, err)
		e.statusMsg = fmt.Sprintf("Error saving file: %v", err)
		return
	}
	e.currentFile = name
	e.modified = false
	e.statusMsg = fmt.Sprintf("File saved as %s", name)
	e.log.Info("saved %s", name)
	e.saveSession()
}

// openFilePrompt loads a file typed at the prompt.
func (e *Editor) openFilePrompt() {
	name := e.prompt("Open file: ")
	if name == "" {
		return
	}
	if err := e.loadFile(storage.Resolve(name)); err != nil {
		e.statusMsg = fmt.Sprintf("Error opening: %v", err)
	}
}

// loadFile reads path into the buffer and rebinds syntax highlighting
// to the file's extension.
func (e *Editor) loadFile(path string) error {
	lines, err := storage.ReadLines(path, e.buf.MaxLines())
	if err != nil {
		e.log.Error("open %s: %v", path, err)
		return err
	}

	e.buf.Load(lines)
	e.vp.Set(0, 0)
	e.hist.Clear()
	e.srch.Clear()
	e.currentFile = path
	e.modified = false
	e.dirty.MarkAll(e.buf.LineCount())

	if def := e.defs.ForFile(path); def != nil {
		e.hl.SetIndex(syntax.BuildIndex(def))
		e.log.Info("opened %s with syntax highlighting", path)
	} else {
		e.hl.SetIndex(nil)
		e.log.Info("opened %s", path)
	}
	return nil
}

// saveSession persists cursor and viewport so the next run can resume.
func (e *Editor) saveSession() {
	row, col := e.buf.Cursor()
	err := storage.SaveSession("", storage.Session{
		File:            e.currentFile,
		CursorRow:       row,
		CursorCol:       col,
		RowOffset:       e.vp.RowOffset(),
		ColOffset:       e.vp.ColOffset(),
		ShowLineNumbers: e.showLineNumbers,
	})
	if err != nil {
		e.log.Warn("session save: %v", err)
	}
}

// RestoreSession reopens the file and position recorded in the session
// state file, if any. Missing state is not an error.
func (e *Editor) RestoreSession() {
	s := storage.LoadSession("")
	if s.File == "" {
		return
	}
	if err := e.loadFile(s.File); err != nil {
		return
	}
	e.buf.SetCursor(s.CursorRow, s.CursorCol)
	e.vp.Set(s.RowOffset, s.ColOffset)
	e.showLineNumbers = s.ShowLineNumbers
	e.dirty.MarkAll(e.buf.LineCount())
}
