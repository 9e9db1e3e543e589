package temporal

import (
	"math"
)

// Energy computes short-time RMS energy over overlapping frames
type Energy struct {
	frameSize int
	hopSize   int
}

// NewEnergy creates a new energy calculator with the given frame and hop
// sizes in samples
func NewEnergy(frameSize, hopSize int) *Energy {
	return &Energy{
		frameSize: frameSize,
		hopSize:   hopSize,
	}
}

// ComputeRMSFrames calculates the RMS energy of each frame. Signals
// shorter than one frame yield an empty curve.
func (e *Energy) ComputeRMSFrames(signal []float64) []float64 {
	if len(signal) < e.frameSize || e.frameSize <= 0 || e.hopSize <= 0 {
		return []float64{}
	}

	numFrames := (len(signal)-e.frameSize)/e.hopSize + 1
	energies := make([]float64, numFrames)

	for i := 0; i < numFrames; i++ {
		startIdx := i * e.hopSize
		endIdx := startIdx + e.frameSize

		if endIdx > len(signal) {
			break
		}

		sumSquares := 0.0
		for j := startIdx; j < endIdx; j++ {
			sumSquares += signal[j] * signal[j]
		}
		energies[i] = math.Sqrt(sumSquares / float64(e.frameSize))
	}

	return energies
}

// FrameSize returns the frame length in samples
func (e *Energy) FrameSize() int {
	return e.frameSize
}

// HopSize returns the hop length in samples
func (e *Energy) HopSize() int {
	return e.hopSize
}
