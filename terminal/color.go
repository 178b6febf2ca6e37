package terminal

import (
	"os"
	"strings"
)

// Color is a 256-color palette index, or ColorUnset.
// The unset state is distinguishable from every real palette entry and
// means "transparent" to merging draws and "terminal default" once
// resolved against an unset canvas default.
type Color int16

// ColorUnset is the transparent/unset sentinel.
const ColorUnset Color = -1

// Standard palette entries (indices 0-15 of the xterm palette)
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Palette returns the Color for a raw palette index.
func Palette(idx uint8) Color {
	return Color(idx)
}

// IsSet reports whether the color is a real palette entry.
func (c Color) IsSet() bool {
	return c >= 0 && c <= 255
}

// Index returns the palette index. Only meaningful when IsSet.
func (c Color) Index() uint8 {
	return uint8(c)
}

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color. The renderer itself is palette-indexed;
// RGB values enter through RGBTo256 at the caller's edge.
type RGB struct {
	R, G, B uint8
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
// Pre-computed at init time
var cubeIndex [256]uint8

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func init() {
	// Build cube index lookup (which cube level is nearest for each 0-255 value)
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B

	// Check if grayscale is a better match (when r ≈ g ≈ b)
	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))

	if maxDiff < 10 {
		if gray < 4 {
			// Pure black is cube 0,0,0
			return 16
		}
		if gray > 243 {
			// Pure white is cube 5,5,5
			return 231
		}
		grayIdx := uint8(grayscaleStart + (gray-8)/10)

		// Compare grayscale match vs color cube match
		grayLevel := 8 + int(grayIdx-grayscaleStart)*10
		grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)

		cubeR := cubeIndex[r]
		cubeG := cubeIndex[g]
		cubeB := cubeIndex[b]
		cubeDist := abs(int(r)-int(cubeValues[cubeR])) +
			abs(int(g)-int(cubeValues[cubeG])) +
			abs(int(b)-int(cubeValues[cubeB]))

		if grayDist < cubeDist {
			return grayIdx
		}
	}

	// Use color cube
	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// Color returns the nearest palette Color for an RGB value.
func (c RGB) Color() Color {
	return Color(RGBTo256(c))
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	// 3. Check TERM for known true color terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	// 4. Default to 256-color
	return ColorMode256
}
