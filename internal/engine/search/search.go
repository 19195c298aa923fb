// Package search provides the editor's current-term search state and the
// replace-all mutator. Search itself does not move the cursor; the active
// term is overlaid by the renderer wherever it appears on screen.
package search

import (
	"strings"

	"github.com/cedward/ced/internal/engine/textbuf"
)

// Engine holds the active search term. An empty term means inactive.
type Engine struct {
	term string
}

// New creates an inactive search engine.
func New() *Engine { return &Engine{} }

// SetTerm activates search with the given term. An empty term clears and
// deactivates search. Either way the whole document needs redrawing so
// the overlay appears or disappears everywhere; callers handle that.
func (e *Engine) SetTerm(term string) {
	e.term = term
}

// Term returns the active search term, or "" when inactive.
func (e *Engine) Term() string { return e.term }

// Active returns true when a search term is set.
func (e *Engine) Active() bool { return e.term != "" }

// Clear deactivates search.
func (e *Engine) Clear() { e.term = "" }

// ReplaceAll substitutes every occurrence of old with new on every line,
// literally and left to right without re-scanning into just-substituted
// text, so replacements never recurse even when new contains old. The
// changed line indices are returned for dirty marking. An empty old is a
// no-op.
func ReplaceAll(buf *textbuf.Buffer, old, new string) []int {
	if old == "" {
		return nil
	}
	var changed []int
	for i := 0; i < buf.LineCount(); i++ {
		text := buf.LineText(i)
		if !strings.Contains(text, old) {
			continue
		}
		buf.ReplaceLine(i, strings.ReplaceAll(text, old, new))
		changed = append(changed, i)
	}
	return changed
}
