// Package terminal provides low-level terminal control for the canvas
// renderer: platform backends for raw output mode and size queries,
// allocation-free ANSI sequence writers, and the 256-color palette model.
package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if the canvas cannot be closed normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGRReset)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset - escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
