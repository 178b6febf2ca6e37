//go:build windows

package terminal

import (
	"os"

	"golang.org/x/sys/windows"
)

type windowsBackend struct {
	in      *os.File
	out     *os.File
	inH     windows.Handle
	outH    windows.Handle
	oldIn   uint32
	oldOut  uint32
	entered bool
}

// NewBackend returns the host platform backend bound to stdin/stdout.
func NewBackend() Backend {
	return NewBackendFiles(os.Stdin, os.Stdout)
}

// NewBackendFiles returns a backend bound to explicit console files.
func NewBackendFiles(in, out *os.File) Backend {
	return &windowsBackend{
		in:   in,
		out:  out,
		inH:  windows.Handle(in.Fd()),
		outH: windows.Handle(out.Fd()),
	}
}

func (b *windowsBackend) Init() error {
	if b.entered {
		return nil
	}

	var inMode uint32
	if err := windows.GetConsoleMode(b.inH, &inMode); err != nil {
		return err
	}
	var outMode uint32
	if err := windows.GetConsoleMode(b.outH, &outMode); err != nil {
		return err
	}
	b.oldIn = inMode
	b.oldOut = outMode

	rawIn := inMode
	rawIn &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	rawIn |= windows.ENABLE_EXTENDED_FLAGS | windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(b.inH, rawIn); err != nil {
		return err
	}

	// VT processing lets the console interpret the same CSI/OSC sequences
	// the unix path emits
	rawOut := outMode
	rawOut |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.DISABLE_NEWLINE_AUTO_RETURN
	if err := windows.SetConsoleMode(b.outH, rawOut); err != nil {
		windows.SetConsoleMode(b.inH, b.oldIn)
		return err
	}

	b.entered = true
	return nil
}

func (b *windowsBackend) Fini() {
	if b.entered {
		windows.SetConsoleMode(b.outH, b.oldOut)
		windows.SetConsoleMode(b.inH, b.oldIn)
		b.entered = false
	}
}

func (b *windowsBackend) Size() (int, int, bool) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.outH, &info); err != nil {
		return 0, 0, false
	}
	w := int(info.Window.Right - info.Window.Left + 1)
	h := int(info.Window.Bottom - info.Window.Top + 1)
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// resetTerminalMode is a no-op on Windows; mode restoration happens in Fini
func resetTerminalMode() {}
