// Package canvas implements a double-buffered diff-rendering terminal
// canvas: callers draw styled cells into the current frame, and Render
// synchronizes the visible terminal by emitting escape sequences for
// changed cells only. Teardown restores the terminal even when it runs
// from the interrupt path.
package canvas

import (
	"github.com/lixenwraith/nterm/terminal"
)

// Pixel is a single styled cell: foreground, background, glyph.
// Either color channel may be unset; resolution substitutes the canvas
// defaults at render time, so draws can layer without erasing channels
// they don't touch.
type Pixel struct {
	Fg   terminal.Color
	Bg   terminal.Color
	Rune rune
}

// blankPixel is the cell state of a freshly cleared frame
var blankPixel = Pixel{Fg: terminal.ColorUnset, Bg: terminal.ColorUnset, Rune: ' '}

// Resolve substitutes unset channels with the given defaults.
// The defaults may themselves be unset, meaning the terminal's own
// default color is left in effect.
func (p Pixel) Resolve(defaultFg, defaultBg terminal.Color) Pixel {
	if !p.Fg.IsSet() {
		p.Fg = defaultFg
	}
	if !p.Bg.IsSet() {
		p.Bg = defaultBg
	}
	return p
}
