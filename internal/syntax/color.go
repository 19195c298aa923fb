package syntax

import "github.com/lucasb-eyer/go-colorful"

// RGB is a rule color with 8-bit channels as written in the rule document.
type RGB struct {
	R, G, B uint8
}

// Scaled rescales the color into a surface's intensity unit, e.g. 1000
// for curses-style palettes or 255 for true color.
func (c RGB) Scaled(maxIntensity int) (r, g, b int) {
	return int(c.R) * maxIntensity / 255,
		int(c.G) * maxIntensity / 255,
		int(c.B) * maxIntensity / 255
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// Contrast returns black or white, whichever reads better on top of c.
// Used for the search-overlay foreground, where c is the background.
func (c RGB) Contrast() RGB {
	_, _, l := c.colorful().Hsl()
	if l > 0.5 {
		return RGB{0, 0, 0}
	}
	return RGB{255, 255, 255}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
