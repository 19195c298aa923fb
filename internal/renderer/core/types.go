// Package core provides the shared cell, style and color types of the
// renderer subsystem. It exists so the backend and the scheduler can
// depend on the same vocabulary without an import cycle.
package core

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Color is a true-color value, or the terminal's default color.
type Color struct {
	R, G, B uint8
	// Default marks the terminal's own default color; R, G, B are
	// ignored when set.
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack  = Color{R: 0, G: 0, B: 0}
	ColorWhite  = Color{R: 255, G: 255, B: 255}
	ColorYellow = Color{R: 255, G: 255, B: 0}
	ColorGray   = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from 8-bit components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String returns "default" or "#RRGGBB".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style is the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Reverse    bool
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns a copy with the given foreground.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy with the given background.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// WithBold returns a copy with bold set.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// WithReverse returns a copy with reverse video set.
func (s Style) WithReverse() Style {
	s.Reverse = true
	return s
}

// Cell is a single terminal cell.
type Cell struct {
	// Rune is the character to display. Zero marks a continuation cell
	// behind a wide character.
	Rune rune

	// Width is the display width: 0 for continuation, 1 normal, 2 wide.
	Width int

	// Style is the cell's visual style.
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewCell creates a cell with the given rune and default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// RuneWidth returns the display width of a rune: 0 for control
// characters, 2 for wide East Asian characters, otherwise 1.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}
