package app

import (
	"context"
	"errors"

	"github.com/cedward/ced/internal/config"
	"github.com/cedward/ced/internal/engine/history"
	"github.com/cedward/ced/internal/engine/search"
	"github.com/cedward/ced/internal/engine/textbuf"
	"github.com/cedward/ced/internal/renderer"
	"github.com/cedward/ced/internal/renderer/backend"
	"github.com/cedward/ced/internal/renderer/dirty"
	"github.com/cedward/ced/internal/renderer/viewport"
	"github.com/cedward/ced/internal/shell"
	"github.com/cedward/ced/internal/storage"
	"github.com/cedward/ced/internal/syntax"
)

// Version is shown on the status bar.
const Version = "ced v4.5"

// Editor owns the complete editor state and the event loop. It is
// single-threaded: every mutation happens on the loop goroutine between
// two renders, so no component below it needs locking.
type Editor struct {
	be    backend.Backend
	scr   *renderer.Scheduler
	buf   *textbuf.Buffer
	hist  *history.History
	vp    *viewport.Viewport
	dirty *dirty.Set
	srch  *search.Engine
	sh    *shell.Runner
	defs  syntax.Definitions
	hl    *syntax.Highlighter
	log   *Logger

	settings config.Settings

	currentFile     string
	modified        bool
	showLineNumbers bool
	showHelp        bool
	panelOpen       bool
	panelLines      []string
	statusMsg       string
}

// Option configures an Editor.
type Option func(*Editor)

// WithSettings overrides the default editor settings.
func WithSettings(s config.Settings) Option {
	return func(e *Editor) { e.settings = s }
}

// WithSyntax provides the compiled syntax definitions used to pick a
// highlighter when files are opened.
func WithSyntax(defs syntax.Definitions) Option {
	return func(e *Editor) { e.defs = defs }
}

// WithLogger replaces the default (discarding) logger.
func WithLogger(l *Logger) Option {
	return func(e *Editor) { e.log = l }
}

// New creates an editor running against the given backend.
func New(be backend.Backend, opts ...Option) *Editor {
	e := &Editor{
		be:              be,
		scr:             renderer.New(be),
		buf:             textbuf.New(),
		hist:            history.New(history.DefaultMaxDepth),
		vp:              viewport.New(),
		dirty:           dirty.NewSet(),
		srch:            search.New(),
		sh:              shell.NewRunner(),
		hl:              syntax.NewHighlighter(nil),
		log:             NewLogger(nil, LogLevelInfo),
		settings:        config.Default(),
		showLineNumbers: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dirty.MarkAll(e.buf.LineCount())
	return e
}

// OpenFile loads the named file into the buffer at startup. The name
// goes through the same saves-directory resolution as the open prompt.
func (e *Editor) OpenFile(name string) error {
	return e.loadFile(storage.Resolve(name))
}

// Run drives the event loop until the user quits or the context is
// canceled. One iteration renders the current state and then blocks on
// the next terminal event.
func (e *Editor) Run(ctx context.Context) error {
	for {
		e.render()

		ev := e.be.PollEvent()
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := e.handleEvent(ctx, ev); err != nil {
			if errors.Is(err, ErrQuit) {
				e.log.Info("quit")
				return nil
			}
			return err
		}
	}
}

// render follows the cursor with the viewport and draws one frame.
func (e *Editor) render() {
	row, col := e.buf.Cursor()
	rows := e.scr.TextRows(e.panelOpen)
	cols := e.scr.UsableCols(e.showLineNumbers)
	if e.vp.Follow(row, col, rows, cols) {
		e.dirty.MarkAll(e.buf.LineCount())
	}

	e.scr.Render(&renderer.Frame{
		Doc:             e.buf,
		RowOffset:       e.vp.RowOffset(),
		ColOffset:       e.vp.ColOffset(),
		CursorRow:       row,
		CursorCol:       col,
		Dirty:           e.dirty,
		Highlighter:     e.hl,
		SearchTerm:      e.srch.Term(),
		ShowLineNumbers: e.showLineNumbers,
		Status: renderer.Status{
			FileName: e.displayName(),
			Version:  Version,
			Line:     row + 1,
			Col:      col + 1,
			Modified: e.modified,
			Message:  e.statusMsg,
			ShowHelp: e.showHelp,
		},
		Panel: renderer.Panel{Open: e.panelOpen, Lines: e.panelLines},
	})
}

func (e *Editor) displayName() string {
	if e.currentFile == "" {
		return "Untitled"
	}
	return e.currentFile
}

// handleEvent dispatches one terminal event.
func (e *Editor) handleEvent(ctx context.Context, ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		e.dirty.MarkAll(e.buf.LineCount())
		return nil
	case backend.EventMouse:
		e.handleMouse(ev)
		return nil
	case backend.EventKey:
		e.statusMsg = ""
		return e.handleKey(ctx, ev)
	default:
		return nil
	}
}

// saveUndo snapshots the full state before a mutation.
func (e *Editor) saveUndo() {
	e.hist.Save(e.snapshot())
	e.modified = true
}

func (e *Editor) snapshot() *textbuf.Snapshot {
	s := e.buf.Snapshot()
	s.RowOffset = e.vp.RowOffset()
	s.ColOffset = e.vp.ColOffset()
	return s
}

func (e *Editor) restore(s *textbuf.Snapshot) {
	e.buf.Restore(s)
	e.vp.Set(s.RowOffset, s.ColOffset)
	e.modified = true
	e.dirty.MarkAll(e.buf.LineCount())
}

// applyChange converts a buffer change report into dirty marks.
func (e *Editor) applyChange(c textbuf.Change) {
	switch c.Effect {
	case textbuf.EffectLine:
		e.dirty.Mark(c.Row)
	case textbuf.EffectBelow:
		// Rows past the new end of buffer are blanked by the renderer
		// without needing marks.
		e.dirty.MarkFrom(c.Row, e.buf.LineCount())
	}
}
