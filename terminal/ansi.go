package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render
// and allow teardown to run from an interrupt handler without the heap)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	// SGR reset; the short form with no parameter
	csiSGRReset = []byte("\x1b[m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// Color prefixes
	fg256 = []byte("38;5;")
	bg256 = []byte("48;5;")

	// OSC window title
	oscTitle    = []byte("\x1b]0;")
	oscTitleEnd = []byte("\x1b\\")
)

// Exported sequences used by the canvas when composing frames.
// Kept as shared slices so the render path never rebuilds them.
var (
	ClearScreen    = csiClear
	HideCursor     = csiCursorHide
	ShowCursor     = csiCursorShow
	EnterAltScreen = csiAltScreenEnter
	ExitAltScreen  = csiAltScreenExit
	ResetColors    = csiSGRReset
)

// AppendInt appends the decimal form of n without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func AppendInt(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(buf, byte(n)+'0')
	}
	if n < 100 {
		return append(buf, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(buf, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var tmp [5]byte
	i := 4
	for n > 0 {
		tmp[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	return append(buf, tmp[i+1:]...)
}

// AppendCursorPos appends the cursor positioning sequence (0-indexed input,
// 1-indexed on the wire)
func AppendCursorPos(buf []byte, x, y int) []byte {
	buf = append(buf, csi...)
	buf = AppendInt(buf, y+1)
	buf = append(buf, ';')
	buf = AppendInt(buf, x+1)
	return append(buf, 'H')
}

// AppendFg appends a foreground-only 256-color sequence
func AppendFg(buf []byte, idx uint8) []byte {
	buf = append(buf, csi...)
	buf = append(buf, fg256...)
	buf = AppendInt(buf, int(idx))
	return append(buf, 'm')
}

// AppendBg appends a background-only 256-color sequence
func AppendBg(buf []byte, idx uint8) []byte {
	buf = append(buf, csi...)
	buf = append(buf, bg256...)
	buf = AppendInt(buf, int(idx))
	return append(buf, 'm')
}

// AppendFgBg appends the combined two-channel 256-color sequence
func AppendFgBg(buf []byte, fg, bg uint8) []byte {
	buf = append(buf, csi...)
	buf = append(buf, fg256...)
	buf = AppendInt(buf, int(fg))
	buf = append(buf, ';')
	buf = append(buf, bg256...)
	buf = AppendInt(buf, int(bg))
	return append(buf, 'm')
}

// AppendTitle appends the OSC window title sequence
func AppendTitle(buf []byte, title string) []byte {
	buf = append(buf, oscTitle...)
	buf = append(buf, title...)
	return append(buf, oscTitleEnd...)
}
