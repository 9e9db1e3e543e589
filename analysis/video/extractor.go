package video

import (
	"context"
	"fmt"
	"sync"

	"github.com/clipsense/clipsense/algorithms/vision"
	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/logging"
)

// Extractor runs the independent video sub-analyses for one whole-file
// request and aggregates them into a VideoFeatureSet
type Extractor struct {
	cfg        config.VideoConfig
	motion     *MotionEstimator
	color      *ColorProfiler
	brightness *BrightnessProfiler
	scenes     *SceneSegmenter
	quality    *QualityAssessor
	logger     logging.Logger
}

// NewExtractor creates a video extractor with a validated configuration
func NewExtractor(cfg config.VideoConfig) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid video config: %w", err)
	}

	return &Extractor{
		cfg:        cfg,
		motion:     NewMotionEstimator(cfg),
		color:      NewColorProfiler(cfg),
		brightness: NewBrightnessProfiler(),
		scenes:     NewSceneSegmenter(cfg),
		quality:    NewQualityAssessor(),
		logger: logging.WithFields(logging.Fields{
			"component": "video_extractor",
		}),
	}, nil
}

// Extract analyzes an already-extracted, immutable frame sequence. The
// five sub-analyses only read the shared frames, so they run
// concurrently without synchronization.
func (e *Extractor) Extract(ctx context.Context, frames []*vision.Frame, duration float64) (*VideoFeatureSet, error) {
	if duration <= 0 && len(frames) > 0 {
		duration = frames[len(frames)-1].Timestamp
	}

	e.logger.Debug("video extraction started", logging.Fields{
		"frames":   len(frames),
		"duration": duration,
	})

	var (
		wg         sync.WaitGroup
		motion     MotionProfile
		color      ColorProfile
		brightness BrightnessProfile
		scenes     []SceneAnalysis
		quality    QualityScore
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		motion = e.motion.Analyze(frames)
	}()
	go func() {
		defer wg.Done()
		color = e.color.Analyze(frames)
	}()
	go func() {
		defer wg.Done()
		brightness = e.brightness.Analyze(frames)
	}()
	go func() {
		defer wg.Done()
		scenes = e.scenes.Segment(frames, duration)
	}()
	go func() {
		defer wg.Done()
		quality = e.quality.Assess(frames)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &VideoFeatureSet{
		Motion:     motion,
		Color:      color,
		Brightness: brightness,
		Scenes:     scenes,
		Quality:    quality,
		Duration:   duration,
	}, nil
}
