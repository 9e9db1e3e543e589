package vision

import (
	"math"
)

// maxRGBDistance is the largest possible Euclidean distance between two
// RGB pixels, used to normalize per-pixel distances into [0, 1].
var maxRGBDistance = math.Sqrt(3.0) * 255.0

// FrameDiff computes the overall difference intensity between two frames
type FrameDiff struct{}

// NewFrameDiff creates a new frame difference calculator
func NewFrameDiff() *FrameDiff {
	return &FrameDiff{}
}

// Intensity returns the mean per-pixel normalized Euclidean RGB distance
// between two frames, in [0, 1]. Identical frames yield exactly 0.
// Mismatched dimensions or empty frames yield 0 as the documented
// degenerate default.
func (fd *FrameDiff) Intensity(a, b *Frame) float64 {
	if a == nil || b == nil || !a.SameSize(b) || a.PixelCount() == 0 {
		return 0.0
	}

	sum := 0.0
	n := a.PixelCount()

	for i := 0; i < n; i++ {
		idx := i * 4
		dr := float64(a.Pixels[idx]) - float64(b.Pixels[idx])
		dg := float64(a.Pixels[idx+1]) - float64(b.Pixels[idx+1])
		db := float64(a.Pixels[idx+2]) - float64(b.Pixels[idx+2])
		sum += math.Sqrt(dr*dr+dg*dg+db*db) / maxRGBDistance
	}

	return sum / float64(n)
}
