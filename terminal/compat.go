package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// tcell interop for callers migrating draw code from a tcell.Screen.
// Colors cross the boundary losslessly for palette entries; truecolor
// values are folded onto the 256 palette via RGBTo256.

// FromTcellColor converts a tcell color to a palette Color.
// tcell.ColorDefault maps to ColorUnset.
func FromTcellColor(c tcell.Color) Color {
	if c == tcell.ColorDefault {
		return ColorUnset
	}
	if c&tcell.ColorIsRGB != 0 {
		r, g, b := c.RGB()
		return RGB{uint8(r), uint8(g), uint8(b)}.Color()
	}
	idx := int64(c) - int64(tcell.ColorValid)
	if idx < 0 || idx > 255 {
		return ColorUnset
	}
	return Color(idx)
}

// ToTcellColor converts a palette Color to a tcell color.
// ColorUnset maps to tcell.ColorDefault.
func ToTcellColor(c Color) tcell.Color {
	if !c.IsSet() {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c.Index()))
}

// FromTcellStyle decomposes a tcell style into the channels the
// renderer understands. Attributes have no canvas equivalent and are
// dropped.
func FromTcellStyle(s tcell.Style) (fg, bg Color) {
	tfg, tbg, _ := s.Decompose()
	return FromTcellColor(tfg), FromTcellColor(tbg)
}

// ToTcellStyle builds a tcell style from palette channels.
func ToTcellStyle(fg, bg Color) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcellColor(fg)).Background(ToTcellColor(bg))
}
