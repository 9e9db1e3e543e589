package video

import (
	"math"

	"github.com/clipsense/clipsense/algorithms/common"
	"github.com/clipsense/clipsense/algorithms/vision"
	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/logging"
)

// MotionEstimator measures inter-frame motion with frame differencing
// and block-matching optical flow
type MotionEstimator struct {
	cfg     config.VideoConfig
	diff    *vision.FrameDiff
	matcher *vision.BlockMatcher
	logger  logging.Logger
}

// NewMotionEstimator creates a motion estimator from a video configuration
func NewMotionEstimator(cfg config.VideoConfig) *MotionEstimator {
	return &MotionEstimator{
		cfg:     cfg,
		diff:    vision.NewFrameDiff(),
		matcher: vision.NewBlockMatcherWithParams(cfg.BlockSize, cfg.SearchRadius),
		logger: logging.WithFields(logging.Fields{
			"component": "motion_estimator",
		}),
	}
}

// Analyze aggregates motion across an ordered frame sequence. Sequences
// with fewer than two frames return a zeroed, static profile without
// computing any pair metrics.
func (m *MotionEstimator) Analyze(frames []*vision.Frame) MotionProfile {
	if len(frames) < 2 {
		return MotionProfile{
			Direction:   DirectionStatic,
			Consistency: 1.0,
			Class:       MotionStatic,
		}
	}

	intensities := make([]float64, 0, len(frames)-1)
	sumH := 0.0
	sumV := 0.0

	for i := 1; i < len(frames); i++ {
		intensities = append(intensities, m.diff.Intensity(frames[i-1], frames[i]))

		dx, dy := m.matcher.EstimateDisplacement(frames[i-1], frames[i])
		sumH += math.Abs(dx)
		sumV += math.Abs(dy)
	}

	pairs := float64(len(intensities))
	avgIntensity := common.Mean(intensities)
	avgH := sumH / pairs
	avgV := sumV / pairs

	profile := MotionProfile{
		Intensity:   avgIntensity,
		Horizontal:  avgH,
		Vertical:    avgV,
		Direction:   m.classifyDirection(avgIntensity, avgH, avgV),
		Consistency: math.Max(0.0, 1.0-common.Variance(intensities)),
		Class:       m.classifyIntensity(avgIntensity),
	}

	m.logger.Debug("motion analyzed", logging.Fields{
		"pairs":     len(intensities),
		"intensity": profile.Intensity,
		"direction": profile.Direction,
		"class":     profile.Class,
	})

	return profile
}

func (m *MotionEstimator) classifyDirection(intensity, avgH, avgV float64) MotionDirection {
	switch {
	case intensity < m.cfg.StaticThreshold:
		return DirectionStatic
	case avgH > m.cfg.DirectionRatio*avgV:
		return DirectionHorizontal
	case avgV > m.cfg.DirectionRatio*avgH:
		return DirectionVertical
	default:
		return DirectionMixed
	}
}

func (m *MotionEstimator) classifyIntensity(intensity float64) MotionClass {
	switch {
	case intensity < m.cfg.StaticThreshold:
		return MotionStatic
	case intensity < m.cfg.LowThreshold:
		return MotionLow
	case intensity < m.cfg.MediumThreshold:
		return MotionMedium
	default:
		return MotionHigh
	}
}
