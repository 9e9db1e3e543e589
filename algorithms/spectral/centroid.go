package spectral

import "github.com/clipsense/clipsense/algorithms/common"

// Centroid computes the spectral centroid (center of mass) of a
// magnitude spectrum in bin-index units.
type Centroid struct{}

// NewCentroid creates a new spectral centroid calculator
func NewCentroid() *Centroid {
	return &Centroid{}
}

// Compute calculates the centroid bin of a single magnitude spectrum.
// A silent spectrum (zero total magnitude) yields 0.
func (c *Centroid) Compute(spectrum []float64) float64 {
	if len(spectrum) == 0 {
		return 0.0
	}

	denominator := common.Sum(spectrum)
	if denominator == 0 {
		return 0.0
	}

	numerator := 0.0
	for k, mag := range spectrum {
		numerator += float64(k) * mag
	}

	return numerator / denominator
}

// ComputeNormalized calculates the centroid as a fraction of the spectrum
// length, in [0, 1]. Useful as a brightness proxy independent of window size.
func (c *Centroid) ComputeNormalized(spectrum []float64) float64 {
	if len(spectrum) < 2 {
		return 0.0
	}
	return c.Compute(spectrum) / float64(len(spectrum)-1)
}
