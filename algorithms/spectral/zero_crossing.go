package spectral

// ZeroCrossingRate calculates the zero crossing rate of a sample window:
// the number of sign changes divided by the window length. High ZCR
// indicates noisy or high-frequency content.
type ZeroCrossingRate struct{}

// NewZeroCrossingRate creates a new zero crossing rate calculator
func NewZeroCrossingRate() *ZeroCrossingRate {
	return &ZeroCrossingRate{}
}

// Compute calculates ZCR for a single frame. A frame shorter than two
// samples has no crossings and yields 0.
func (z *ZeroCrossingRate) Compute(frame []float64) float64 {
	if len(frame) < 2 {
		return 0.0
	}

	crossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] >= 0 && frame[i] < 0) || (frame[i-1] < 0 && frame[i] >= 0) {
			crossings++
		}
	}

	return float64(crossings) / float64(len(frame))
}
