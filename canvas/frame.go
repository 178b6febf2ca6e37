package canvas

// Size holds canvas or terminal dimensions in cells.
type Size struct {
	W, H int
}

// Area returns the cell count.
func (s Size) Area() int {
	return s.W * s.H
}

// Bound returns the componentwise minimum of both sizes.
func (s Size) Bound(other Size) Size {
	if other.W < s.W {
		s.W = other.W
	}
	if other.H < s.H {
		s.H = other.H
	}
	return s
}

// Bounded reports whether s fits within other.
func (s Size) Bounded(other Size) bool {
	return s.W <= other.W && s.H <= other.H
}

// Frame is a fixed-size row-major grid of pixels. Pure data, no I/O.
// Accessor bounds violations are caller contract errors and panic.
type Frame struct {
	size  Size
	cells []Pixel
}

// NewFrame allocates a frame of the given size filled with blank cells.
// Negative dimensions clamp to zero.
func NewFrame(size Size) *Frame {
	if size.W < 0 {
		size.W = 0
	}
	if size.H < 0 {
		size.H = 0
	}
	f := &Frame{
		size:  size,
		cells: make([]Pixel, size.Area()),
	}
	f.Fill(blankPixel)
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() Size {
	return f.size
}

// At returns the pixel at (x, y). Panics when out of bounds.
func (f *Frame) At(x, y int) Pixel {
	if uint(x) >= uint(f.size.W) || uint(y) >= uint(f.size.H) {
		panic("canvas: frame coordinates out of range")
	}
	return f.cells[y*f.size.W+x]
}

// Set stores the pixel at (x, y). Panics when out of bounds.
func (f *Frame) Set(x, y int, p Pixel) {
	if uint(x) >= uint(f.size.W) || uint(y) >= uint(f.size.H) {
		panic("canvas: frame coordinates out of range")
	}
	f.cells[y*f.size.W+x] = p
}

// CopyFrom copies the overlapping top-left rectangle from src.
// Cells outside the overlap are left untouched.
func (f *Frame) CopyFrom(src *Frame) {
	overlap := f.size.Bound(src.size)
	for y := 0; y < overlap.H; y++ {
		dst := f.cells[y*f.size.W : y*f.size.W+overlap.W]
		copy(dst, src.cells[y*src.size.W:y*src.size.W+overlap.W])
	}
}

// Fill resets every cell using exponential copy
func (f *Frame) Fill(p Pixel) {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = p
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}
