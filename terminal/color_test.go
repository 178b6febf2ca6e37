package terminal

import "testing"

// TestColorIsSet verifies the sentinel and range checks
func TestColorIsSet(t *testing.T) {
	if ColorUnset.IsSet() {
		t.Error("Expected ColorUnset to be unset")
	}
	if !ColorBlack.IsSet() {
		t.Error("Expected ColorBlack to be set")
	}
	if !Palette(255).IsSet() {
		t.Error("Expected palette index 255 to be set")
	}
	if Color(256).IsSet() {
		t.Error("Expected out-of-palette value 256 to be unset")
	}
}

// TestPaletteRoundTrip verifies Palette and Index are inverses over
// the full index range
func TestPaletteRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := Palette(uint8(i))
		if c.Index() != uint8(i) {
			t.Errorf("Palette(%d).Index() = %d", i, c.Index())
		}
	}
}

// TestRGBTo256KnownValues verifies corner and axis mappings into the
// 6x6x6 cube and grayscale ramp
func TestRGBTo256KnownValues(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},          // black, cube origin
		{RGB{255, 255, 255}, 231},   // white, cube max
		{RGB{255, 0, 0}, 16 + 180},  // pure red, cube (5,0,0)
		{RGB{0, 255, 0}, 16 + 30},   // pure green, cube (0,5,0)
		{RGB{0, 0, 255}, 16 + 5},    // pure blue, cube (0,0,5)
		{RGB{95, 135, 175}, 16 + 36 + 12 + 3}, // exact cube levels (1,2,3)
	}
	for _, tt := range tests {
		if got := RGBTo256(tt.rgb); got != tt.want {
			t.Errorf("RGBTo256(%v) = %d, want %d", tt.rgb, got, tt.want)
		}
	}
}

// TestRGBTo256Grayscale verifies near-neutral values land on the
// grayscale ramp rather than the coarse cube
func TestRGBTo256Grayscale(t *testing.T) {
	got := RGBTo256(RGB{128, 128, 128})
	if got < grayscaleStart {
		t.Errorf("RGBTo256(mid gray) = %d, expected grayscale ramp (>= %d)", got, grayscaleStart)
	}
}

// TestRGBColor verifies the Color wrapper produces a set palette color
func TestRGBColor(t *testing.T) {
	c := RGB{200, 100, 50}.Color()
	if !c.IsSet() {
		t.Errorf("Expected RGB conversion to produce a set color, got %d", c)
	}
}

// TestDetectColorMode verifies environment-driven capability detection
func TestDetectColorMode(t *testing.T) {
	clear := func(t *testing.T) {
		for _, k := range []string{
			"COLORTERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION",
			"ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE", "TERM",
		} {
			t.Setenv(k, "")
		}
	}

	t.Run("default 256", func(t *testing.T) {
		clear(t)
		if got := DetectColorMode(); got != ColorMode256 {
			t.Errorf("Expected ColorMode256, got %v", got)
		}
	})

	t.Run("COLORTERM truecolor", func(t *testing.T) {
		clear(t)
		t.Setenv("COLORTERM", "truecolor")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("Expected ColorModeTrueColor, got %v", got)
		}
	})

	t.Run("TERM direct", func(t *testing.T) {
		clear(t)
		t.Setenv("TERM", "xterm-direct")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("Expected ColorModeTrueColor, got %v", got)
		}
	})

	t.Run("emulator env", func(t *testing.T) {
		clear(t)
		t.Setenv("KITTY_WINDOW_ID", "1")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("Expected ColorModeTrueColor, got %v", got)
		}
	})
}
