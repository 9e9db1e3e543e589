package video

import (
	"github.com/clipsense/clipsense/algorithms/vision"
	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/logging"
)

// Scene classification thresholds and the fixed confidence each rule
// carries. Inherited tuning constants, not calibrated values.
const (
	sceneBrightMin    = 0.6
	sceneDarkMax      = 0.3
	indoorEdgeMin     = 0.5
	closeUpEdgeMax    = 0.03
	wideEdgeMin       = 0.25
	outdoorConfidence = 0.7
	indoorConfidence  = 0.6
	closeUpConfidence = 0.6
	wideConfidence    = 0.6
	mediumConfidence  = 0.4
)

// SceneSegmenter detects scene boundaries by walking the frame sequence
// and cutting wherever the inter-frame difference intensity exceeds a
// threshold. Scenes partition [0, duration] by construction.
type SceneSegmenter struct {
	cfg    config.VideoConfig
	diff   *vision.FrameDiff
	logger logging.Logger
}

// NewSceneSegmenter creates a scene segmenter from a video configuration
func NewSceneSegmenter(cfg config.VideoConfig) *SceneSegmenter {
	return &SceneSegmenter{
		cfg:  cfg,
		diff: vision.NewFrameDiff(),
		logger: logging.WithFields(logging.Fields{
			"component": "scene_segmenter",
		}),
	}
}

// Segment walks the frames, closing the current scene at each cut and
// classifying it from the frame just before the cut. The final scene
// always closes at the total duration using the last frame. Empty input
// yields no scenes.
func (s *SceneSegmenter) Segment(frames []*vision.Frame, duration float64) []SceneAnalysis {
	if len(frames) == 0 {
		return []SceneAnalysis{}
	}

	scenes := []SceneAnalysis{}
	sceneStart := 0.0

	for i := 1; i < len(frames); i++ {
		intensity := s.diff.Intensity(frames[i-1], frames[i])
		if intensity <= s.cfg.SceneCutThreshold {
			continue
		}

		cut := frames[i].Timestamp
		sceneType, confidence := s.classify(frames[i-1])
		scenes = append(scenes, SceneAnalysis{
			Start:      sceneStart,
			End:        cut,
			Type:       sceneType,
			Confidence: confidence,
		})
		sceneStart = cut

		// The pair straddling a fresh cut is not re-evaluated, so a
		// single outlier frame produces one boundary, not two
		i++
	}

	sceneType, confidence := s.classify(frames[len(frames)-1])
	scenes = append(scenes, SceneAnalysis{
		Start:      sceneStart,
		End:        duration,
		Type:       sceneType,
		Confidence: confidence,
	})

	s.logger.Debug("scenes segmented", logging.Fields{
		"frames": len(frames),
		"scenes": len(scenes),
	})

	return scenes
}

// classify types a scene from one representative frame using brightness,
// channel dominance and edge density. Fixed priority rules; the first
// matching rule wins, each carrying a fixed confidence.
func (s *SceneSegmenter) classify(frame *vision.Frame) (SceneType, float64) {
	brightness := vision.Brightness(frame)
	edgeDensity := vision.EdgeDensity(frame, s.cfg.EdgeThreshold)
	r, g, b := vision.MeanRGB(frame)

	switch {
	case brightness > sceneBrightMin && g > r && g > b:
		return SceneOutdoor, outdoorConfidence
	case brightness < sceneDarkMax || edgeDensity > indoorEdgeMin:
		return SceneIndoor, indoorConfidence
	case edgeDensity < closeUpEdgeMax:
		return SceneCloseUp, closeUpConfidence
	case edgeDensity > wideEdgeMin:
		return SceneWide, wideConfidence
	default:
		return SceneMedium, mediumConfidence
	}
}
