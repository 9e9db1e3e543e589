package vision

import (
	"math"
)

// DefaultEdgeThreshold is the normalized gradient magnitude above which a
// pixel counts as an edge.
const DefaultEdgeThreshold = 0.1

// Brightness returns the mean grayscale value of a frame in [0, 1]
func Brightness(f *Frame) float64 {
	if f == nil || f.PixelCount() == 0 {
		return 0.0
	}

	sum := 0.0
	n := f.PixelCount()
	for i := 0; i < n; i++ {
		idx := i * 4
		sum += float64(f.Pixels[idx]) + float64(f.Pixels[idx+1]) + float64(f.Pixels[idx+2])
	}

	return sum / (float64(n) * 3.0 * 255.0)
}

// MeanRGB returns the per-channel mean of a frame, each in [0, 255]
func MeanRGB(f *Frame) (r, g, b float64) {
	if f == nil || f.PixelCount() == 0 {
		return 0.0, 0.0, 0.0
	}

	n := f.PixelCount()
	for i := 0; i < n; i++ {
		idx := i * 4
		r += float64(f.Pixels[idx])
		g += float64(f.Pixels[idx+1])
		b += float64(f.Pixels[idx+2])
	}

	return r / float64(n), g / float64(n), b / float64(n)
}

// EdgeDensity returns the fraction of interior pixels whose
// central-difference gradient magnitude (on [0, 1] grayscale) exceeds the
// threshold. Frames smaller than 3x3 have no interior and yield 0.
func EdgeDensity(f *Frame, threshold float64) float64 {
	if f == nil || f.Width < 3 || f.Height < 3 {
		return 0.0
	}

	edges := 0
	interior := 0

	for y := 1; y < f.Height-1; y++ {
		for x := 1; x < f.Width-1; x++ {
			gx := (f.Gray(x+1, y) - f.Gray(x-1, y)) / 2.0
			gy := (f.Gray(x, y+1) - f.Gray(x, y-1)) / 2.0
			if math.Sqrt(gx*gx+gy*gy) > threshold {
				edges++
			}
			interior++
		}
	}

	return float64(edges) / float64(interior)
}

// Sharpness returns the mean absolute discrete Laplacian response over
// interior pixels, on the channel-averaged grayscale, normalized to
// [0, 1]. Flat frames yield 0; frames smaller than 3x3 yield 0.
func Sharpness(f *Frame) float64 {
	if f == nil || f.Width < 3 || f.Height < 3 {
		return 0.0
	}

	sum := 0.0
	interior := 0

	for y := 1; y < f.Height-1; y++ {
		for x := 1; x < f.Width-1; x++ {
			lap := 4.0*f.Gray(x, y) - f.Gray(x-1, y) - f.Gray(x+1, y) - f.Gray(x, y-1) - f.Gray(x, y+1)
			sum += math.Abs(lap)
			interior++
		}
	}

	// |lap| peaks at 4 for a lone white pixel on black
	return sum / (4.0 * float64(interior))
}

// Noise returns the mean absolute difference between each interior pixel
// and the average of its 4-neighbours, on [0, 1] grayscale. Smooth frames
// yield values near 0.
func Noise(f *Frame) float64 {
	if f == nil || f.Width < 3 || f.Height < 3 {
		return 0.0
	}

	sum := 0.0
	interior := 0

	for y := 1; y < f.Height-1; y++ {
		for x := 1; x < f.Width-1; x++ {
			neighborAvg := (f.Gray(x-1, y) + f.Gray(x+1, y) + f.Gray(x, y-1) + f.Gray(x, y+1)) / 4.0
			sum += math.Abs(f.Gray(x, y) - neighborAvg)
			interior++
		}
	}

	return sum / float64(interior)
}
