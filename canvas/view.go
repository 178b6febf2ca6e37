package canvas

import (
	"fmt"

	"github.com/lixenwraith/nterm/terminal"
)

// Alignment selects horizontal placement for WriteAligned and
// PrintAligned.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// View is a rectangular window into a canvas. All view coordinates are
// relative to the view's own origin; writes are translated and then
// clipped by the canvas itself. Views are cheap values and carry no
// pixel storage.
type View struct {
	canvas *Canvas
	left   int
	top    int
	width  int
	height int
}

// View returns a view spanning the whole canvas.
func (c *Canvas) View() View {
	size := c.Size()
	return View{canvas: c, width: size.W, height: size.H}
}

// Sub derives a nested view. Offsets and dimensions are taken as
// given; a sub-view reaching outside its parent simply has its
// out-of-range writes dropped by the canvas bounds check.
func (v View) Sub(left, top, width, height int) View {
	return View{
		canvas: v.canvas,
		left:   v.left + left,
		top:    v.top + top,
		width:  width,
		height: height,
	}
}

// Width returns the view's width in cells.
func (v View) Width() int { return v.width }

// Height returns the view's height in cells.
func (v View) Height() int { return v.height }

// WritePixel merges a pixel at view-relative coordinates, reporting
// whether the coordinate was inside the view.
func (v View) WritePixel(x, y int, fg, bg terminal.Color, r rune) bool {
	if uint(x) >= uint(v.width) || uint(y) >= uint(v.height) {
		return false
	}
	v.canvas.DrawPixel(v.left+x, v.top+y, fg, bg, r)
	return true
}

// WriteText writes a string left to right starting at (x, y), one cell
// per codepoint, stopping at the view's right edge. Returns the number
// of cells written.
func (v View) WriteText(x, y int, fg, bg terminal.Color, text string) int {
	n := 0
	for _, r := range text {
		if !v.WritePixel(x+n, y, fg, bg, r) {
			break
		}
		n++
	}
	return n
}

// WriteAligned writes text on row y aligned within the view's width.
// Text wider than the view is cropped to the view: the retained window
// of the string matches the alignment, so centered overflow drops
// codepoints evenly from both ends.
func (v View) WriteAligned(y int, fg, bg terminal.Color, text string, align Alignment) int {
	runes := []rune(text)
	if len(runes) <= v.width {
		x := 0
		switch align {
		case AlignCenter:
			x = (v.width - len(runes)) / 2
		case AlignRight:
			x = v.width - len(runes)
		}
		return v.WriteText(x, y, fg, bg, string(runes))
	}

	skip := 0
	switch align {
	case AlignCenter:
		skip = (len(runes) - v.width) / 2
	case AlignRight:
		skip = len(runes) - v.width
	}
	return v.WriteText(0, y, fg, bg, string(runes[skip:]))
}

// PrintAt formats and writes at (x, y).
func (v View) PrintAt(x, y int, fg, bg terminal.Color, format string, args ...any) int {
	return v.WriteText(x, y, fg, bg, fmt.Sprintf(format, args...))
}

// PrintAligned formats once and writes the result aligned on row y.
func (v View) PrintAligned(y int, fg, bg terminal.Color, align Alignment, format string, args ...any) int {
	return v.WriteAligned(y, fg, bg, fmt.Sprintf(format, args...), align)
}
