package temporal

import (
	"math"
)

// Tempo estimation defaults. The interval range corresponds to 30-300 BPM.
const (
	DefaultTempoBPM        = 120.0
	DefaultIntervalBucket  = 0.01 // 10 ms quantization
	DefaultMinBeatInterval = 0.2  // 300 BPM
	DefaultMaxBeatInterval = 2.0  // 30 BPM
)

// IntervalHistogram estimates tempo from inter-onset intervals by
// quantizing them into fixed-width buckets and picking the most frequent
// beat interval.
type IntervalHistogram struct {
	bucketWidth float64
	minInterval float64
	maxInterval float64
}

// NewIntervalHistogram creates a histogram with the default 10 ms buckets
// over the 30-300 BPM interval range
func NewIntervalHistogram() *IntervalHistogram {
	return &IntervalHistogram{
		bucketWidth: DefaultIntervalBucket,
		minInterval: DefaultMinBeatInterval,
		maxInterval: DefaultMaxBeatInterval,
	}
}

// NewIntervalHistogramWithParams creates a histogram with custom bucket
// width and interval range (seconds)
func NewIntervalHistogramWithParams(bucketWidth, minInterval, maxInterval float64) *IntervalHistogram {
	if bucketWidth <= 0 {
		bucketWidth = DefaultIntervalBucket
	}
	return &IntervalHistogram{
		bucketWidth: bucketWidth,
		minInterval: minInterval,
		maxInterval: maxInterval,
	}
}

// Estimate computes BPM and confidence from onset times (seconds,
// ascending). Confidence is the share of all inter-onset intervals that
// landed in the winning bucket. When no interval falls inside the valid
// beat range the default tempo is returned with zero confidence.
func (h *IntervalHistogram) Estimate(onsets []float64) (bpm float64, confidence float64) {
	if len(onsets) < 2 {
		return DefaultTempoBPM, 0.0
	}

	totalIntervals := len(onsets) - 1
	counts := make(map[int]int)

	for i := 1; i < len(onsets); i++ {
		interval := onsets[i] - onsets[i-1]
		if interval < h.minInterval || interval > h.maxInterval {
			continue
		}
		bucket := int(math.Round(interval / h.bucketWidth))
		counts[bucket]++
	}

	peakBucket := -1
	peakCount := 0
	for bucket, count := range counts {
		if count > peakCount || (count == peakCount && peakBucket >= 0 && bucket < peakBucket) {
			peakBucket = bucket
			peakCount = count
		}
	}

	if peakBucket < 0 {
		return DefaultTempoBPM, 0.0
	}

	beatInterval := float64(peakBucket) * h.bucketWidth
	if beatInterval <= 0 {
		return DefaultTempoBPM, 0.0
	}

	bpm = math.Round(60.0 / beatInterval)
	confidence = float64(peakCount) / float64(totalIntervals)

	return bpm, confidence
}

// ClassifyTempoCategory classifies tempo into broad descriptive categories
func ClassifyTempoCategory(bpm float64) string {
	switch {
	case bpm < 60:
		return "very_slow"
	case bpm < 90:
		return "slow"
	case bpm < 120:
		return "moderate"
	case bpm < 150:
		return "fast"
	default:
		return "very_fast"
	}
}
