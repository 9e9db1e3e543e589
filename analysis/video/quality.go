package video

import (
	"math"

	"github.com/clipsense/clipsense/algorithms/vision"
	"github.com/clipsense/clipsense/logging"
)

// QualityAssessor measures technical quality: sharpness from the
// Laplacian response, noise from high-pass residuals and stability from
// inverted frame difference
type QualityAssessor struct {
	diff   *vision.FrameDiff
	logger logging.Logger
}

// NewQualityAssessor creates a quality assessor
func NewQualityAssessor() *QualityAssessor {
	return &QualityAssessor{
		diff: vision.NewFrameDiff(),
		logger: logging.WithFields(logging.Fields{
			"component": "quality_assessor",
		}),
	}
}

// Assess aggregates quality metrics across a frame sequence. A single
// frame scores full stability; empty input yields a zeroed score.
func (q *QualityAssessor) Assess(frames []*vision.Frame) QualityScore {
	if len(frames) == 0 {
		return QualityScore{}
	}

	sharpnessSum := 0.0
	noiseSum := 0.0
	for _, frame := range frames {
		sharpnessSum += vision.Sharpness(frame)
		noiseSum += vision.Noise(frame)
	}
	sharpness := sharpnessSum / float64(len(frames))
	noise := noiseSum / float64(len(frames))

	stability := 1.0
	if len(frames) > 1 {
		stabilitySum := 0.0
		for i := 1; i < len(frames); i++ {
			intensity := q.diff.Intensity(frames[i-1], frames[i])
			stabilitySum += math.Max(0.0, 1.0-2.0*intensity)
		}
		stability = stabilitySum / float64(len(frames)-1)
	}

	score := QualityScore{
		Sharpness: sharpness,
		Stability: stability,
		Noise:     noise,
		Overall:   (sharpness + stability + (1.0 - noise)) / 3.0,
	}

	q.logger.Debug("quality assessed", logging.Fields{
		"frames":    len(frames),
		"sharpness": score.Sharpness,
		"stability": score.Stability,
		"noise":     score.Noise,
		"overall":   score.Overall,
	})

	return score
}
