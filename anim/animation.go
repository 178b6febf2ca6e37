// Package anim plays pre-rendered pixel timelines onto a canvas view
// and paces render loops with drift-corrected triggers.
package anim

import (
	"sort"
	"time"

	"github.com/lixenwraith/nterm/canvas"
)

// Snapshot is one keyframe of an animation: the full pixel state to
// display from its timestamp onward. Pixels are laid out row-major in
// Size; unset channels fall through to whatever is already on the
// canvas.
type Snapshot struct {
	At     time.Duration
	Size   canvas.Size
	Pixels []canvas.Pixel
}

// Animation is an ordered sequence of snapshots on a shared timeline.
type Animation struct {
	frames []Snapshot
}

// NewAnimation builds an animation from keyframes, ordering them by
// timestamp. The input slice is not retained.
func NewAnimation(frames ...Snapshot) *Animation {
	a := &Animation{frames: make([]Snapshot, len(frames))}
	copy(a.frames, frames)
	sort.SliceStable(a.frames, func(i, j int) bool {
		return a.frames[i].At < a.frames[j].At
	})
	return a
}

// Len returns the number of keyframes.
func (a *Animation) Len() int { return len(a.frames) }

// Duration returns the timestamp of the last keyframe, or zero for an
// empty animation.
func (a *Animation) Duration() time.Duration {
	if len(a.frames) == 0 {
		return 0
	}
	return a.frames[len(a.frames)-1].At
}

// FrameAt returns the snapshot active at the given elapsed time: the
// latest keyframe whose timestamp is not after elapsed. Before the
// first keyframe, or for an empty animation, ok is false.
func (a *Animation) FrameAt(elapsed time.Duration) (Snapshot, bool) {
	// first frame strictly after elapsed; active frame sits before it
	i := sort.Search(len(a.frames), func(i int) bool {
		return a.frames[i].At > elapsed
	})
	if i == 0 {
		return Snapshot{}, false
	}
	return a.frames[i-1], true
}

// Draw writes the active frame for elapsed onto the view at (x, y).
// Reports whether a frame was active.
func (a *Animation) Draw(v canvas.View, x, y int, elapsed time.Duration) bool {
	frame, ok := a.FrameAt(elapsed)
	if !ok {
		return false
	}
	for row := 0; row < frame.Size.H; row++ {
		for col := 0; col < frame.Size.W; col++ {
			p := frame.Pixels[row*frame.Size.W+col]
			if !v.WritePixel(x+col, y+row, p.Fg, p.Bg, p.Rune) {
				break
			}
		}
	}
	return true
}
