package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/nterm/anim"
	"github.com/lixenwraith/nterm/canvas"
	"github.com/lixenwraith/nterm/terminal"
)

var (
	fpsFlag       = flag.Int("fps", 30, "Render loop frequency")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/")
)

func main() {
	// Restore the terminal to a sane state even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mNTERM-DEMO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	var colorMode terminal.ColorMode
	switch *colorModeFlag {
	case "256":
		colorMode = terminal.ColorMode256
	case "truecolor", "true", "24bit":
		colorMode = terminal.ColorModeTrueColor
	default:
		colorMode = terminal.DetectColorMode()
	}
	log.Printf("color mode: %v", colorMode)

	c := canvas.New(terminal.NewBackend(), os.Stdout)
	if err := c.Init(80, 24, terminal.ColorBrightWhite, terminal.ColorUnset); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	c.SetTitle("nterm demo")

	spinner := spinnerAnimation()
	trigger := anim.NewTrigger(time.Second/time.Duration(*fpsFlag), time.Now())
	start := time.Now()

	// Runs until interrupted; the canvas interrupt handler restores
	// the terminal and exits the process
	for frame := 0; ; frame++ {
		elapsed := time.Since(start)
		root := c.View()

		root.DrawBox(0, 0, root.Width(), root.Height(), terminal.ColorCyan, terminal.ColorUnset)

		header := root.Sub(1, 1, root.Width()-2, 1)
		header.WriteAligned(0, terminal.ColorBrightYellow, terminal.ColorUnset,
			"nterm rendering demo", canvas.AlignCenter)

		body := root.Sub(2, 3, root.Width()-4, root.Height()-5)
		body.PrintAt(0, 0, terminal.ColorBrightWhite, terminal.ColorUnset,
			"frame %d  elapsed %s", frame, elapsed.Truncate(time.Millisecond))
		drawPalette(body, 0, 2)
		// The period extends one frame past the last keyframe so every
		// phase gets a full display window
		spinner.Draw(body, 0, 6, elapsed%(spinner.Duration()+spinnerInterval))

		footer := root.Sub(1, root.Height()-2, root.Width()-2, 1)
		footer.WriteAligned(0, terminal.ColorBrightBlack, terminal.ColorUnset,
			"Ctrl-C to quit", canvas.AlignRight)

		if err := c.Render(); err != nil {
			log.Printf("render: %v", err)
			break
		}
		trigger.Wait()
	}
}

// drawPalette paints the 16 named colors as a swatch row with indices
func drawPalette(v canvas.View, x, y int) {
	for i := 0; i < 16; i++ {
		v.WritePixel(x+i*2, y, terminal.ColorUnset, terminal.Palette(uint8(i)), ' ')
		v.WritePixel(x+i*2+1, y, terminal.ColorUnset, terminal.Palette(uint8(i)), ' ')
		v.PrintAt(x+i*2, y+1, terminal.ColorBrightBlack, terminal.ColorUnset, "%x", i)
	}
}

const spinnerInterval = 200 * time.Millisecond

// spinnerAnimation builds a small looping four-phase marker
func spinnerAnimation() *anim.Animation {
	glyphs := []rune{'|', '/', '-', '\\'}
	frames := make([]anim.Snapshot, 0, len(glyphs))
	for i, g := range glyphs {
		frames = append(frames, anim.Snapshot{
			At:   time.Duration(i) * spinnerInterval,
			Size: canvas.Size{W: 1, H: 1},
			Pixels: []canvas.Pixel{
				{Fg: terminal.ColorBrightGreen, Bg: terminal.ColorUnset, Rune: g},
			},
		})
	}
	return anim.NewAnimation(frames...)
}
