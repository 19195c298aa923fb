// Package backend abstracts the physical terminal behind a small
// interface so the renderer and the event loop can be tested against an
// in-memory implementation.
package backend

import "github.com/cedward/ced/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Key represents a logical keyboard key.
type Key int

// Key constants for special keys. Regular characters use KeyRune with
// the Rune field set.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlK
	KeyCtrlL
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlW
	KeyCtrlY
	KeyCtrlZ
)

// MouseButton represents a mouse action.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseWheelUp
	MouseWheelDown
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Backend is the display and input surface the editor runs against.
type Backend interface {
	// Init puts the terminal into raw mode and takes over the screen.
	Init() error

	// Fini restores the terminal. Safe to call more than once.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Out-of-bounds positions are ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear blanks the whole screen with the default style.
	Clear()

	// Show flushes pending cell updates to the display.
	Show()

	// ShowCursor positions and displays the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent blocks for the next terminal event.
	PollEvent() Event

	// HasTrueColor reports 24-bit color support.
	HasTrueColor() bool
}
