package spectral

// Flux computes spectral flux between two magnitude spectra: the mean of
// positive-only (rectified) per-bin differences. Only energy increases
// count, which is what makes flux a usable onset signal.
type Flux struct{}

// NewFlux creates a new spectral flux calculator
func NewFlux() *Flux {
	return &Flux{}
}

// Compute calculates rectified mean flux between two spectra of equal
// length. Mismatched or empty input yields 0.
func (f *Flux) Compute(prev, curr []float64) float64 {
	if len(prev) == 0 || len(prev) != len(curr) {
		return 0.0
	}

	sum := 0.0
	for k := range curr {
		diff := curr[k] - prev[k]
		if diff > 0 {
			sum += diff
		}
	}

	return sum / float64(len(curr))
}

// FluxTracker carries the previous spectrum across successive flux
// computations. The reference spectrum is per-tracker state, so separate
// analysis sessions get separate trackers and never leak into each other.
type FluxTracker struct {
	flux *Flux
	prev []float64
}

// NewFluxTracker creates a tracker with no reference spectrum
func NewFluxTracker() *FluxTracker {
	return &FluxTracker{flux: NewFlux()}
}

// Update computes flux between the retained reference spectrum and the
// given one, then makes the given spectrum the new reference. The first
// call (no reference yet) returns 0 by definition. The tracker keeps its
// own copy, so callers may reuse the input slice.
func (t *FluxTracker) Update(spectrum []float64) float64 {
	value := 0.0
	if t.prev != nil && len(t.prev) == len(spectrum) {
		value = t.flux.Compute(t.prev, spectrum)
	}

	if t.prev == nil || len(t.prev) != len(spectrum) {
		t.prev = make([]float64, len(spectrum))
	}
	copy(t.prev, spectrum)

	return value
}

// Reset drops the reference spectrum, as if the tracker were fresh
func (t *FluxTracker) Reset() {
	t.prev = nil
}
