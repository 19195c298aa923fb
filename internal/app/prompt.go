package app

import (
	"github.com/cedward/ced/internal/renderer/backend"
	"github.com/cedward/ced/internal/renderer/core"
)

// promptMax bounds the length of a prompt answer.
const promptMax = 256

// prompt runs a modal line-input on the bottom screen row and returns
// the typed text. Enter submits, Escape aborts, and an empty answer
// means "cancel" to every caller.
func (e *Editor) prompt(label string) string {
	input := make([]rune, 0, 16)
	for {
		e.drawPromptRow(label, input)

		ev := e.be.PollEvent()
		if ev.Type == backend.EventResize {
			e.dirty.MarkAll(e.buf.LineCount())
			continue
		}
		if ev.Type != backend.EventKey {
			continue
		}

		switch ev.Key {
		case backend.KeyEnter:
			return string(input)
		case backend.KeyEscape:
			return ""
		case backend.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case backend.KeyRune:
			if ev.Rune >= ' ' && len(input) < promptMax {
				input = append(input, ev.Rune)
			}
		}
	}
}

func (e *Editor) drawPromptRow(label string, input []rune) {
	w, h := e.be.Size()
	y := h - 1
	text := append([]rune(label), input...)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		e.be.SetCell(x, y, core.NewCell(r))
	}
	cx := len(text)
	if cx >= w {
		cx = w - 1
	}
	e.be.ShowCursor(cx, y)
	e.be.Show()
}
