package video

import (
	"github.com/clipsense/clipsense/algorithms/vision"
)

// solidFrame builds a uniformly colored test frame
func solidFrame(width, height int, r, g, b uint8, timestamp float64) *vision.Frame {
	f := vision.NewFrame(width, height, timestamp)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.SetRGB(x, y, r, g, b)
		}
	}
	return f
}

// stripeFrame builds a frame of vertical gray stripes of the given width,
// alternating between two gray values
func stripeFrame(width, height, stripeWidth int, a, b uint8) *vision.Frame {
	f := vision.NewFrame(width, height, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := a
			if (x/stripeWidth)%2 == 1 {
				v = b
			}
			f.SetRGB(x, y, v, v, v)
		}
	}
	return f
}
