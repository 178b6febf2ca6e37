package canvas

import (
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/lixenwraith/nterm/terminal"
)

var (
	// ErrInitializationFailed means the host terminal mode could not be
	// configured; the canvas is left uninitialized.
	ErrInitializationFailed = errors.New("canvas: initialization failed")

	// ErrNotInitialized means an operation requiring a live canvas was
	// invoked before Init or after Close.
	ErrNotInitialized = errors.New("canvas: not initialized")
)

// fallback terminal size when the platform query is unavailable
const (
	fallbackWidth  = 120
	fallbackHeight = 30
)

// outputBufFactor bounds retained output capacity at factor*cellCount;
// a pathological high-diversity frame must not pin an oversized buffer
const outputBufFactor = 12

// Canvas owns the two frames of the double buffer, the output sink and
// the terminal lifecycle. Drawing goes into the current frame; Render
// diffs it against the last rendered frame and emits escape sequences
// for changed cells only.
//
// All methods are single-writer; the only concurrent caller ever
// allowed is the interrupt path through Close, which is guarded by an
// atomic flag.
type Canvas struct {
	backend terminal.Backend
	out     io.Writer

	current  *Frame // draw target
	last     *Frame // previously rendered state
	termSize Size
	redraw   bool // force full repaint on next Render

	defaultFg terminal.Color
	defaultBg terminal.Color

	buf []byte // reusable render output buffer

	active     atomic.Bool // guards Close re-entry from the interrupt path
	terminated bool
	sigCh      chan os.Signal
}

// New creates an uninitialized canvas bound to a platform backend and
// an output sink. Rendering output goes to out; the backend only
// manages terminal mode and size.
func New(backend terminal.Backend, out io.Writer) *Canvas {
	return &Canvas{backend: backend, out: out}
}

// Init configures the terminal and allocates both frames. No-op when
// already initialized. On backend failure the canvas stays
// uninitialized and the error wraps ErrInitializationFailed.
//
// Init installs an interrupt handler (SIGINT/SIGTERM) that closes the
// canvas and terminates the process, so the terminal is restored even
// on abrupt interruption.
func (c *Canvas) Init(width, height int, defaultFg, defaultBg terminal.Color) error {
	if c.active.Load() {
		return nil
	}
	if c.terminated {
		return errors.Wrap(ErrInitializationFailed, "canvas already terminated")
	}

	if err := c.backend.Init(); err != nil {
		return errors.Wrap(ErrInitializationFailed, err.Error())
	}

	c.sigCh = make(chan os.Signal, 1)
	signal.Notify(c.sigCh, os.Interrupt, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		if _, ok := <-ch; ok {
			c.Close()
			os.Exit(1)
		}
	}(c.sigCh)

	c.write(terminal.EnterAltScreen)
	c.write(terminal.HideCursor)

	if w, h, ok := c.backend.Size(); ok {
		c.termSize = Size{w, h}
	} else {
		c.termSize = Size{fallbackWidth, fallbackHeight}
	}

	c.defaultFg = defaultFg
	c.defaultBg = defaultBg
	c.current = NewFrame(Size{width, height})
	c.last = NewFrame(c.current.Size())
	c.buf = make([]byte, 0, 4096)
	c.redraw = true

	c.active.Store(true)
	return nil
}

// Close restores the terminal and releases both frames. Idempotent,
// allocation-free, and safe to run from the interrupt handler: the
// atomic guard makes a concurrent or repeated call a no-op, and all
// restore sequences are pre-allocated package data. Sink write
// failures are swallowed.
func (c *Canvas) Close() {
	if !c.active.CompareAndSwap(true, false) {
		return
	}
	c.terminated = true

	signal.Stop(c.sigCh)
	close(c.sigCh)

	c.write(terminal.ResetColors)
	c.write(terminal.ShowCursor)
	c.write(terminal.ExitAltScreen)

	c.backend.Fini()

	c.current = nil
	c.last = nil
	c.buf = nil
}

// Size returns the logical canvas dimensions.
func (c *Canvas) Size() Size {
	if !c.active.Load() {
		return Size{}
	}
	return c.current.Size()
}

// SetSize reallocates both frames. The new current frame keeps the
// overlapping region of the old one; the new last frame starts blank
// and a full repaint is forced.
func (c *Canvas) SetSize(width, height int) {
	if !c.active.Load() {
		return
	}
	next := NewFrame(Size{width, height})
	next.CopyFrom(c.current)
	c.current = next
	c.last = NewFrame(next.Size())
	c.redraw = true
}

// DrawPixel is the merging write: an unset channel preserves the
// existing cell's channel. When fg is unset the rune is discarded too
// and the existing glyph survives, so a background can be recolored
// without touching content. Out-of-bounds or uninitialized calls are
// silently ignored.
func (c *Canvas) DrawPixel(x, y int, fg, bg terminal.Color, r rune) {
	if !c.active.Load() {
		return
	}
	size := c.current.Size()
	if uint(x) >= uint(size.W) || uint(y) >= uint(size.H) {
		return
	}
	p := c.current.At(x, y)
	if fg.IsSet() {
		p.Fg = fg
		p.Rune = r
	}
	if bg.IsSet() {
		p.Bg = bg
	}
	c.current.Set(x, y, p)
}

// SetPixel overwrites the cell unconditionally; same bounds and
// lifecycle no-op policy as DrawPixel.
func (c *Canvas) SetPixel(x, y int, fg, bg terminal.Color, r rune) {
	if !c.active.Load() {
		return
	}
	size := c.current.Size()
	if uint(x) >= uint(size.W) || uint(y) >= uint(size.H) {
		return
	}
	c.current.Set(x, y, Pixel{Fg: fg, Bg: bg, Rune: r})
}

// PixelAt returns the current frame's cell at (x, y), and whether the
// coordinate was in bounds.
func (c *Canvas) PixelAt(x, y int) (Pixel, bool) {
	if !c.active.Load() {
		return Pixel{}, false
	}
	size := c.current.Size()
	if uint(x) >= uint(size.W) || uint(y) >= uint(size.H) {
		return Pixel{}, false
	}
	return c.current.At(x, y), true
}

// SetTitle emits the window title sequence immediately (not diffed).
func (c *Canvas) SetTitle(title string) {
	if !c.active.Load() {
		return
	}
	c.write(terminal.AppendTitle(nil, title))
}

// styleState tracks the last emitted color pair during a render pass
type styleState struct {
	fg, bg terminal.Color
	valid  bool
}

// Render synchronizes the terminal with the current frame and swaps
// the buffers. Cells whose resolved state matches the last rendered
// frame produce no output; an entirely unchanged frame produces zero
// terminal writes. Returns ErrNotInitialized before Init or after
// Close.
func (c *Canvas) Render() error {
	if !c.active.Load() {
		return ErrNotInitialized
	}

	// Track the live terminal size; a change forces a full repaint
	if w, h, ok := c.backend.Size(); ok {
		live := Size{w, h}
		if live != c.termSize {
			c.termSize = live
			c.redraw = true
		}
	}

	// Overlap between logical canvas and physical terminal, centered
	// when the canvas is smaller; top-left cropped when larger
	draw := c.current.Size().Bound(c.termSize)
	offX := (c.termSize.W - draw.W) / 2
	offY := (c.termSize.H - draw.H) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}

	buf := c.buf[:0]
	if c.redraw {
		buf = append(buf, terminal.ClearScreen...)
		buf = append(buf, terminal.HideCursor...)
	}

	// lastX/lastY track the previous emitted cell so horizontal runs
	// ride the terminal's own cursor advance
	lastX, lastY := -2, -2
	var style styleState
	emitted := false

	for y := 0; y < draw.H; y++ {
		for x := 0; x < draw.W; x++ {
			cur := c.current.At(x, y).Resolve(c.defaultFg, c.defaultBg)
			if !c.redraw {
				prev := c.last.At(x, y).Resolve(c.defaultFg, c.defaultBg)
				if cur == prev {
					continue
				}
			}
			emitted = true

			if y != lastY || x != lastX+1 {
				buf = terminal.AppendCursorPos(buf, offX+x, offY+y)
			}
			buf = appendStyle(buf, cur.Fg, cur.Bg, &style)
			buf = utf8.AppendRune(buf, cur.Rune)
			lastX, lastY = x, y
		}
	}

	// Trailing reset keeps the area outside the draw region unaffected
	// by the last color state; flushed only when something was drawn
	if emitted {
		buf = append(buf, terminal.ResetColors...)
		c.write(buf)
	}

	// Swap buffers; the just-rendered frame is the new diff baseline
	// and the next draw target starts clean
	c.current, c.last = c.last, c.current
	c.current.Fill(blankPixel)
	c.redraw = false

	// Bound retained buffer capacity after a high-diversity frame
	cells := c.current.Size().Area()
	if limit := outputBufFactor * cells; cells > 0 && cap(buf) > limit {
		c.buf = make([]byte, 0, limit/2)
	} else {
		c.buf = buf[:0]
	}

	return nil
}

// appendStyle emits the minimal color sequence for the transition from
// the previously emitted pair. An unset channel cannot be expressed as
// a palette sequence, so it always forces a reset followed by
// reapplication of whichever channels are set.
func appendStyle(buf []byte, fg, bg terminal.Color, st *styleState) []byte {
	if st.valid && fg == st.fg && bg == st.bg {
		return buf
	}
	switch {
	case !fg.IsSet() || !bg.IsSet():
		buf = append(buf, terminal.ResetColors...)
		if fg.IsSet() {
			buf = terminal.AppendFg(buf, fg.Index())
		} else if bg.IsSet() {
			buf = terminal.AppendBg(buf, bg.Index())
		}
	case !st.valid || (fg != st.fg && bg != st.bg):
		buf = terminal.AppendFgBg(buf, fg.Index(), bg.Index())
	case fg != st.fg:
		buf = terminal.AppendFg(buf, fg.Index())
	default:
		buf = terminal.AppendBg(buf, bg.Index())
	}
	st.fg, st.bg, st.valid = fg, bg, true
	return buf
}

// write is the best-effort sink write; a broken output stream must
// never abort rendering or teardown
func (c *Canvas) write(p []byte) {
	if c.out != nil {
		c.out.Write(p)
	}
}
