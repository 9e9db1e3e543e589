package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/clipsense/clipsense/algorithms/windowing"
)

// DefaultWindowSize is the analysis window length used when nothing else
// is configured. Power-of-two lengths keep the transform fast.
const DefaultWindowSize = 2048

// Analyzer computes windowed magnitude spectra. The input window is
// Hann-weighted before the transform and only the first N/2 bins are kept.
type Analyzer struct {
	size   int
	window *windowing.Hann
}

// NewAnalyzer creates a magnitude-spectrum analyzer for windows of the
// given length. Non-positive sizes fall back to DefaultWindowSize.
func NewAnalyzer(size int) *Analyzer {
	if size <= 0 {
		size = DefaultWindowSize
	}
	return &Analyzer{
		size:   size,
		window: windowing.NewHann(size, false),
	}
}

// Size returns the analyzer's window length
func (a *Analyzer) Size() int {
	return a.size
}

// Magnitude computes the magnitude spectrum of one sample window.
// The result always has length size/2; shorter input is zero-padded,
// longer input is truncated. The input slice is not modified.
func (a *Analyzer) Magnitude(samples []float64) []float64 {
	bins := a.size / 2
	magnitude := make([]float64, bins)

	if len(samples) == 0 {
		return magnitude
	}

	frame := make([]float64, a.size)
	copy(frame, samples)
	// frame is allocated at exactly a.size, the only length ApplyInPlace
	// accepts, so the length-mismatch error cannot occur here
	_ = a.window.ApplyInPlace(frame)

	spectrum := fft.FFTReal(frame)
	for k := 0; k < bins; k++ {
		magnitude[k] = cmplx.Abs(spectrum[k])
	}

	return magnitude
}
