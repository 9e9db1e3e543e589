package audio

import (
	"github.com/clipsense/clipsense/algorithms/common"
	"github.com/clipsense/clipsense/algorithms/temporal"
	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/logging"
)

// TempoEstimator detects onsets across a full-length channel and
// estimates tempo from the inter-onset interval histogram
type TempoEstimator struct {
	cfg       config.AudioConfig
	detector  *temporal.OnsetDetector
	histogram *temporal.IntervalHistogram
	logger    logging.Logger
}

// NewTempoEstimator creates a tempo estimator from an audio configuration
func NewTempoEstimator(cfg config.AudioConfig) *TempoEstimator {
	return &TempoEstimator{
		cfg:       cfg,
		detector:  temporal.NewOnsetDetectorWithParams(cfg.OnsetWindowSize, cfg.OnsetHopSize, cfg.OnsetThreshold, cfg.OnsetMinGap),
		histogram: temporal.NewIntervalHistogramWithParams(cfg.IntervalBucket, cfg.MinBeatInterval, cfg.MaxBeatInterval),
		logger: logging.WithFields(logging.Fields{
			"component": "tempo_estimator",
		}),
	}
}

// Estimate returns the tempo estimate for a full channel of samples.
// Material with fewer onsets than the configured minimum is reported at
// the default tempo with zero confidence; the histogram is not consulted.
func (te *TempoEstimator) Estimate(samples []float64, sampleRate int) TempoEstimate {
	onsets := te.detector.Detect(samples, sampleRate)

	if len(onsets) < te.cfg.MinOnsets {
		te.logger.Debug("too few onsets for tempo estimation", logging.Fields{
			"onsets":   len(onsets),
			"required": te.cfg.MinOnsets,
		})
		return TempoEstimate{
			BPM:        temporal.DefaultTempoBPM,
			Confidence: 0.0,
			Category:   temporal.ClassifyTempoCategory(temporal.DefaultTempoBPM),
		}
	}

	bpm, confidence := te.histogram.Estimate(onsets)
	confidence = common.Clamp(confidence, 0.0, 1.0)

	te.logger.Debug("tempo estimated", logging.Fields{
		"onsets":     len(onsets),
		"bpm":        bpm,
		"confidence": confidence,
	})

	return TempoEstimate{
		BPM:        bpm,
		Confidence: confidence,
		Category:   temporal.ClassifyTempoCategory(bpm),
	}
}
