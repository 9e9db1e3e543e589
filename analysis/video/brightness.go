package video

import (
	"github.com/clipsense/clipsense/algorithms/common"
	"github.com/clipsense/clipsense/algorithms/vision"
)

// BrightnessProfiler summarizes per-frame luminance across a sequence
type BrightnessProfiler struct{}

// NewBrightnessProfiler creates a brightness profiler
func NewBrightnessProfiler() *BrightnessProfiler {
	return &BrightnessProfiler{}
}

// Analyze returns the average and range of frame brightness. Empty input
// yields a zeroed profile.
func (p *BrightnessProfiler) Analyze(frames []*vision.Frame) BrightnessProfile {
	if len(frames) == 0 {
		return BrightnessProfile{}
	}

	values := make([]float64, len(frames))
	for i, frame := range frames {
		values[i] = vision.Brightness(frame)
	}

	return BrightnessProfile{
		Average: common.Mean(values),
		Min:     common.Min(values),
		Max:     common.Max(values),
	}
}
