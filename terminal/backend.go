package terminal

// Backend abstracts platform-specific terminal control.
// The canvas owns all rendering output; a Backend only manages the
// host terminal's mode and reports its live dimensions. This split
// lets the renderer be tested against a fake backend and an in-memory
// sink with no terminal attached.
type Backend interface {
	// Init puts the terminal into raw output mode suitable for absolute
	// cursor addressing. Idempotent per instance.
	Init() error

	// Fini restores the saved terminal mode. Safe to call multiple times,
	// and safe to call from an interrupt handler: it must not allocate.
	Fini()

	// Size returns the live terminal dimensions in cells.
	// ok is false when the size cannot be determined (not a terminal,
	// or the platform query failed).
	Size() (width, height int, ok bool)
}
