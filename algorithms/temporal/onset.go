package temporal

import (
	"github.com/clipsense/clipsense/algorithms/common"
	"github.com/clipsense/clipsense/algorithms/spectral"
)

// Default onset analysis parameters
const (
	DefaultOnsetWindowSize = 1024
	DefaultOnsetHopSize    = 512
	DefaultOnsetThreshold  = 0.1
	DefaultOnsetMinGap     = 0.05 // seconds
)

// OnsetDetector detects note/event onsets in audio signals by sliding a
// spectral window across the signal and flagging windows whose flux
// against the previous window exceeds a threshold.
type OnsetDetector struct {
	analyzer   *spectral.Analyzer
	windowSize int
	hopSize    int
	threshold  float64
	minGap     float64
}

// NewOnsetDetector creates an onset detector with the default window,
// hop, flux threshold and minimum inter-onset gap
func NewOnsetDetector() *OnsetDetector {
	return NewOnsetDetectorWithParams(DefaultOnsetWindowSize, DefaultOnsetHopSize, DefaultOnsetThreshold, DefaultOnsetMinGap)
}

// NewOnsetDetectorWithParams creates an onset detector with custom parameters.
// minGap is the minimum spacing between reported onsets in seconds.
func NewOnsetDetectorWithParams(windowSize, hopSize int, threshold, minGap float64) *OnsetDetector {
	if windowSize <= 0 {
		windowSize = DefaultOnsetWindowSize
	}
	if hopSize <= 0 {
		hopSize = DefaultOnsetHopSize
	}
	if minGap < 0 {
		minGap = DefaultOnsetMinGap
	}
	return &OnsetDetector{
		analyzer:   spectral.NewAnalyzer(windowSize),
		windowSize: windowSize,
		hopSize:    hopSize,
		threshold:  threshold,
		minGap:     minGap,
	}
}

// Detect returns onset times in seconds. Each window's magnitude
// spectrum is compared to the previous window's; an onset is flagged at
// the window's start time whenever the rectified flux exceeds the
// threshold. The first window never fires (no reference spectrum).
// Overlapping windows see the same event twice, so onsets closer than
// the minimum gap to the previous one are suppressed; a single transient
// reports a single onset.
func (od *OnsetDetector) Detect(signal []float64, sampleRate int) []float64 {
	if len(signal) < od.windowSize || sampleRate <= 0 {
		return []float64{}
	}

	minGapWindows := int(od.minGap * float64(sampleRate) / float64(od.hopSize))

	tracker := spectral.NewFluxTracker()
	onsets := []float64{}
	lastWindow := -minGapWindows

	window := 0
	for start := 0; start+od.windowSize <= len(signal); start += od.hopSize {
		magnitude := od.analyzer.Magnitude(signal[start : start+od.windowSize])
		flux := tracker.Update(magnitude)

		if flux > od.threshold && window-lastWindow >= minGapWindows {
			onsets = append(onsets, float64(start)/float64(sampleRate))
			lastWindow = window
		}
		window++
	}

	return onsets
}

// AdaptiveThreshold calculates a data-driven threshold (mean + 2 stddev)
// from a flux curve, an alternative to the fixed default for material
// with unusual dynamics.
func AdaptiveThreshold(flux []float64) float64 {
	if len(flux) == 0 {
		return 0.0
	}
	return common.Mean(flux) + 2.0*common.StandardDeviation(flux)
}
