package spectral

import (
	"math"
	"testing"
)

func TestMagnitudeSpectrumLength(t *testing.T) {
	for _, size := range []int{64, 256, 1024, 2048} {
		analyzer := NewAnalyzer(size)
		spectrum := analyzer.Magnitude(make([]float64, size))

		if len(spectrum) != size/2 {
			t.Errorf("window %d: spectrum length = %d, want %d", size, len(spectrum), size/2)
		}
	}
}

func TestMagnitudeSilentWindow(t *testing.T) {
	analyzer := NewAnalyzer(256)
	spectrum := analyzer.Magnitude(make([]float64, 256))

	for k, mag := range spectrum {
		if mag != 0 {
			t.Fatalf("bin %d of silent spectrum = %g, want 0", k, mag)
		}
	}
}

func TestMagnitudeSinePeaksAtBin(t *testing.T) {
	size := 256
	bin := 16
	analyzer := NewAnalyzer(size)

	samples := make([]float64, size)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(bin) * float64(i) / float64(size))
	}

	spectrum := analyzer.Magnitude(samples)

	peak := 0
	for k := range spectrum {
		if spectrum[k] > spectrum[peak] {
			peak = k
		}
	}

	if peak != bin {
		t.Errorf("peak bin = %d, want %d", peak, bin)
	}
}

func TestCentroidSilentSpectrum(t *testing.T) {
	c := NewCentroid()

	if got := c.Compute(make([]float64, 128)); got != 0 {
		t.Errorf("centroid of silent spectrum = %g, want 0", got)
	}
	if got := c.Compute(nil); got != 0 {
		t.Errorf("centroid of empty spectrum = %g, want 0", got)
	}
}

func TestCentroidSingleBin(t *testing.T) {
	c := NewCentroid()

	spectrum := make([]float64, 128)
	spectrum[40] = 3.5

	if got := c.Compute(spectrum); got != 40 {
		t.Errorf("centroid = %g, want 40", got)
	}
	if got := c.ComputeNormalized(spectrum); math.Abs(got-40.0/127.0) > 1e-12 {
		t.Errorf("normalized centroid = %g, want %g", got, 40.0/127.0)
	}
}

func TestRolloff(t *testing.T) {
	r := NewRolloff()

	// All energy in the first bin: rolloff hits immediately
	spectrum := make([]float64, 100)
	spectrum[0] = 1.0
	if got := r.Compute(spectrum, 0.85); got != 0 {
		t.Errorf("rolloff of DC-only spectrum = %g, want 0", got)
	}

	// Silent spectrum degrades to 0
	if got := r.Compute(make([]float64, 100), 0.85); got != 0 {
		t.Errorf("rolloff of silent spectrum = %g, want 0", got)
	}

	// Flat spectrum: cumulative energy reaches 85% at bin 84
	flat := make([]float64, 100)
	for i := range flat {
		flat[i] = 1.0
	}
	if got := r.Compute(flat, 0.85); math.Abs(got-0.84) > 1e-12 {
		t.Errorf("rolloff of flat spectrum = %g, want 0.84", got)
	}
}

func TestFluxRectified(t *testing.T) {
	f := NewFlux()

	prev := []float64{1, 2, 3, 4}
	curr := []float64{2, 1, 5, 4} // +1, -1, +2, 0 -> rectified sum 3

	if got := f.Compute(prev, curr); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("flux = %g, want 0.75", got)
	}

	// Pure decrease contributes nothing
	if got := f.Compute(curr, prev); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("reverse flux = %g, want 0.25", got)
	}
}

func TestFluxTrackerFirstUpdateIsZero(t *testing.T) {
	tracker := NewFluxTracker()

	if got := tracker.Update([]float64{1, 2, 3}); got != 0 {
		t.Fatalf("first update flux = %g, want 0", got)
	}

	// The first spectrum became the reference
	if got := tracker.Update([]float64{2, 2, 4}); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("second update flux = %g, want %g", got, 2.0/3.0)
	}
}

func TestFluxTrackerReset(t *testing.T) {
	tracker := NewFluxTracker()
	tracker.Update([]float64{1, 2, 3})
	tracker.Reset()

	if got := tracker.Update([]float64{5, 5, 5}); got != 0 {
		t.Errorf("flux after reset = %g, want 0", got)
	}
}

func TestZeroCrossingRate(t *testing.T) {
	z := NewZeroCrossingRate()

	// Strictly monotonic non-crossing signal
	monotonic := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	if got := z.Compute(monotonic); got != 0 {
		t.Errorf("ZCR of monotonic signal = %g, want 0", got)
	}

	// Alternating signal crosses on every step
	alternating := []float64{1, -1, 1, -1}
	if got := z.Compute(alternating); got != 0.75 {
		t.Errorf("ZCR of alternating signal = %g, want 0.75", got)
	}

	if got := z.Compute([]float64{1}); got != 0 {
		t.Errorf("ZCR of single sample = %g, want 0", got)
	}
}
