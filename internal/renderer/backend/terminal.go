package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/cedward/ced/internal/renderer/core"
)

// Terminal implements Backend on top of tcell.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend for the current tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) HasTrueColor() bool {
	return t.screen.Colors() >= 1<<24
}

// PollEvent blocks for the next tcell event and converts it.
// Unrecognized events come back as EventNone; callers skip those.
func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return convertKeyEvent(ev)
		case *tcell.EventMouse:
			if converted, ok := convertMouseEvent(ev); ok {
				return converted
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			t.screen.Sync()
			return Event{Type: EventResize, Width: w, Height: h}
		case nil:
			// Screen was finalized.
			return Event{Type: EventNone}
		}
	}
}

func convertKeyEvent(ev *tcell.EventKey) Event {
	if k, ok := tcellKeys[ev.Key()]; ok {
		return Event{Type: EventKey, Key: k}
	}
	if ev.Key() == tcell.KeyRune {
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
	}
	return Event{Type: EventNone}
}

// tcellKeys maps tcell keys to logical editing keys. tcell reports the
// 0x08 byte (Ctrl+H) as KeyBackspace and DEL as KeyBackspace2; we keep
// Ctrl+H as its own binding and treat only DEL as backspace, matching
// the editor's traditional key map.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyCtrlH,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyCtrlD:      KeyCtrlD,
	tcell.KeyCtrlE:      KeyCtrlE,
	tcell.KeyCtrlF:      KeyCtrlF,
	tcell.KeyCtrlG:      KeyCtrlG,
	tcell.KeyCtrlK:      KeyCtrlK,
	tcell.KeyCtrlL:      KeyCtrlL,
	tcell.KeyCtrlO:      KeyCtrlO,
	tcell.KeyCtrlQ:      KeyCtrlQ,
	tcell.KeyCtrlR:      KeyCtrlR,
	tcell.KeyCtrlS:      KeyCtrlS,
	tcell.KeyCtrlT:      KeyCtrlT,
	tcell.KeyCtrlU:      KeyCtrlU,
	tcell.KeyCtrlW:      KeyCtrlW,
	tcell.KeyCtrlY:      KeyCtrlY,
	tcell.KeyCtrlZ:      KeyCtrlZ,
}

func convertMouseEvent(ev *tcell.EventMouse) (Event, bool) {
	x, y := ev.Position()
	e := Event{Type: EventMouse, MouseX: x, MouseY: y}
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		e.MouseButton = MouseLeft
	case ev.Buttons()&tcell.WheelUp != 0:
		e.MouseButton = MouseWheelUp
	case ev.Buttons()&tcell.WheelDown != 0:
		e.MouseButton = MouseWheelDown
	default:
		return Event{}, false
	}
	return e, true
}

// convertStyle converts a core style to a tcell style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.Default {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.Default {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	return style
}
