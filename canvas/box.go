package canvas

import "github.com/lixenwraith/nterm/terminal"

// double-line box drawing glyphs
var boxChars = struct {
	topLeft, topRight       rune
	bottomLeft, bottomRight rune
	horizontal, vertical    rune
	collapsed               rune
}{
	topLeft:     '╔',
	topRight:    '╗',
	bottomLeft:  '╚',
	bottomRight: '╝',
	horizontal:  '═',
	vertical:    '║',
	collapsed:   '☐',
}

// DrawBox outlines a rectangle within the view using double-line
// glyphs. Degenerate shapes collapse: a single cell draws a box
// symbol, a single column or row draws a bare line, and a zero
// dimension draws nothing.
func (v View) DrawBox(x, y, width, height int, fg, bg terminal.Color) {
	if width <= 0 || height <= 0 {
		return
	}

	switch {
	case width == 1 && height == 1:
		v.WritePixel(x, y, fg, bg, boxChars.collapsed)
		return
	case width == 1:
		for row := 0; row < height; row++ {
			v.WritePixel(x, y+row, fg, bg, boxChars.vertical)
		}
		return
	case height == 1:
		for col := 0; col < width; col++ {
			v.WritePixel(x+col, y, fg, bg, boxChars.horizontal)
		}
		return
	}

	v.WritePixel(x, y, fg, bg, boxChars.topLeft)
	v.WritePixel(x+width-1, y, fg, bg, boxChars.topRight)
	v.WritePixel(x, y+height-1, fg, bg, boxChars.bottomLeft)
	v.WritePixel(x+width-1, y+height-1, fg, bg, boxChars.bottomRight)

	for col := 1; col < width-1; col++ {
		v.WritePixel(x+col, y, fg, bg, boxChars.horizontal)
		v.WritePixel(x+col, y+height-1, fg, bg, boxChars.horizontal)
	}
	for row := 1; row < height-1; row++ {
		v.WritePixel(x, y+row, fg, bg, boxChars.vertical)
		v.WritePixel(x+width-1, y+row, fg, bg, boxChars.vertical)
	}
}
