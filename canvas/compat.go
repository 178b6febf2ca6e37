package canvas

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nterm/terminal"
)

// CompatScreen adapts a canvas to the cell-content subset of the tcell
// screen API, so widget code written against tcell's SetContent and
// GetContent can draw onto a canvas unchanged. Combining runes and
// text attributes are not representable and are dropped.
type CompatScreen struct {
	canvas *Canvas
}

// Compat wraps the canvas in a tcell-shaped cell interface.
func (c *Canvas) Compat() *CompatScreen {
	return &CompatScreen{canvas: c}
}

// SetContent overwrites the cell at (x, y) with the primary rune and
// the style's color pair.
func (s *CompatScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	fg, bg := terminal.FromTcellStyle(style)
	s.canvas.SetPixel(x, y, fg, bg, primary)
}

// GetContent reports the pending cell at (x, y). Out-of-bounds reads
// return a blank default-styled cell, matching tcell's behavior.
func (s *CompatScreen) GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int) {
	p, ok := s.canvas.PixelAt(x, y)
	if !ok {
		return ' ', nil, tcell.StyleDefault, 1
	}
	return p.Rune, nil, terminal.ToTcellStyle(p.Fg, p.Bg), 1
}

// Size returns the canvas dimensions.
func (s *CompatScreen) Size() (width, height int) {
	size := s.canvas.Size()
	return size.W, size.H
}
