package vision

// Frame is a decoded video frame: tightly packed RGBA pixels plus the
// capture timestamp in seconds. Frames are read-only once handed to an
// analyzer; no algorithm in this package mutates pixel data.
type Frame struct {
	Pixels    []uint8 // RGBA, 4 bytes per pixel, row-major
	Width     int
	Height    int
	Timestamp float64
}

// NewFrame allocates a zeroed (black, opaque-alpha-less) frame
func NewFrame(width, height int, timestamp float64) *Frame {
	return &Frame{
		Pixels:    make([]uint8, width*height*4),
		Width:     width,
		Height:    height,
		Timestamp: timestamp,
	}
}

// RGB returns the color channels of the pixel at (x, y)
func (f *Frame) RGB(x, y int) (r, g, b uint8) {
	idx := (y*f.Width + x) * 4
	return f.Pixels[idx], f.Pixels[idx+1], f.Pixels[idx+2]
}

// SetRGB sets the color channels of the pixel at (x, y), leaving alpha
// untouched
func (f *Frame) SetRGB(x, y int, r, g, b uint8) {
	idx := (y*f.Width + x) * 4
	f.Pixels[idx] = r
	f.Pixels[idx+1] = g
	f.Pixels[idx+2] = b
}

// Gray returns the channel-averaged grayscale value of the pixel at
// (x, y), scaled to [0, 1]
func (f *Frame) Gray(x, y int) float64 {
	r, g, b := f.RGB(x, y)
	return (float64(r) + float64(g) + float64(b)) / (3.0 * 255.0)
}

// SameSize reports whether two frames share dimensions
func (f *Frame) SameSize(other *Frame) bool {
	return other != nil && f.Width == other.Width && f.Height == other.Height
}

// PixelCount returns the number of pixels in the frame
func (f *Frame) PixelCount() int {
	return f.Width * f.Height
}
