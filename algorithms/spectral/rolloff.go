package spectral

// DefaultRolloffThreshold is the cumulative-energy fraction at which the
// rolloff point is reported.
const DefaultRolloffThreshold = 0.85

// Rolloff computes the spectral rolloff point of a magnitude spectrum:
// the smallest bin fraction at which cumulative energy reaches a given
// share of the total.
type Rolloff struct{}

// NewRolloff creates a new spectral rolloff calculator
func NewRolloff() *Rolloff {
	return &Rolloff{}
}

// Compute calculates the rolloff bin fraction in [0, 1] for a single
// magnitude spectrum. threshold is typically 0.85. Zero-energy spectra
// yield 0.
func (r *Rolloff) Compute(spectrum []float64, threshold float64) float64 {
	if len(spectrum) == 0 {
		return 0.0
	}

	totalEnergy := 0.0
	for _, mag := range spectrum {
		totalEnergy += mag * mag
	}

	if totalEnergy == 0 {
		return 0.0
	}

	targetEnergy := threshold * totalEnergy
	cumulativeEnergy := 0.0

	for k, mag := range spectrum {
		cumulativeEnergy += mag * mag
		if cumulativeEnergy >= targetEnergy {
			return float64(k) / float64(len(spectrum))
		}
	}

	return 1.0
}
