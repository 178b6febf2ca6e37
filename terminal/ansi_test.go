package terminal

import (
	"bytes"
	"fmt"
	"testing"
)

// TestAppendInt verifies the allocation-free integer formatter against
// the standard library across the terminal coordinate range
func TestAppendInt(t *testing.T) {
	cases := []int{0, 1, 9, 10, 42, 99, 100, 255, 999, 1000, 65535}
	for _, n := range cases {
		got := string(AppendInt(nil, n))
		want := fmt.Sprintf("%d", n)
		if got != want {
			t.Errorf("AppendInt(%d) = %q, want %q", n, got, want)
		}
	}
}

// TestAppendIntReusesBuffer verifies appending into an existing buffer
func TestAppendIntReusesBuffer(t *testing.T) {
	buf := []byte("x=")
	buf = AppendInt(buf, 37)
	if string(buf) != "x=37" {
		t.Errorf("Expected \"x=37\", got %q", buf)
	}
}

// TestAppendCursorPos verifies 0-indexed coordinates map to the
// 1-indexed row;column form
func TestAppendCursorPos(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "\x1b[1;1H"},
		{1, 0, "\x1b[1;2H"},
		{0, 1, "\x1b[2;1H"},
		{79, 23, "\x1b[24;80H"},
	}
	for _, tt := range tests {
		got := string(AppendCursorPos(nil, tt.x, tt.y))
		if got != tt.want {
			t.Errorf("AppendCursorPos(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

// TestAppendColorSequences verifies the 256-color SGR forms
func TestAppendColorSequences(t *testing.T) {
	if got := string(AppendFg(nil, 1)); got != "\x1b[38;5;1m" {
		t.Errorf("AppendFg(1) = %q", got)
	}
	if got := string(AppendBg(nil, 240)); got != "\x1b[48;5;240m" {
		t.Errorf("AppendBg(240) = %q", got)
	}
	if got := string(AppendFgBg(nil, 15, 0)); got != "\x1b[38;5;15;48;5;0m" {
		t.Errorf("AppendFgBg(15, 0) = %q", got)
	}
}

// TestAppendTitle verifies the OSC title sequence framing
func TestAppendTitle(t *testing.T) {
	got := AppendTitle(nil, "hello")
	want := "\x1b]0;hello\x1b\\"
	if string(got) != want {
		t.Errorf("AppendTitle = %q, want %q", got, want)
	}
}

// TestSharedSequences verifies the exported pre-allocated sequences
func TestSharedSequences(t *testing.T) {
	tests := []struct {
		name string
		seq  []byte
		want string
	}{
		{"ClearScreen", ClearScreen, "\x1b[2J"},
		{"HideCursor", HideCursor, "\x1b[?25l"},
		{"ShowCursor", ShowCursor, "\x1b[?25h"},
		{"EnterAltScreen", EnterAltScreen, "\x1b[?1049h"},
		{"ExitAltScreen", ExitAltScreen, "\x1b[?1049l"},
		{"ResetColors", ResetColors, "\x1b[m"},
	}
	for _, tt := range tests {
		if !bytes.Equal(tt.seq, []byte(tt.want)) {
			t.Errorf("%s = %q, want %q", tt.name, tt.seq, tt.want)
		}
	}
}
