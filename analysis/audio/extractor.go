package audio

import (
	"context"
	"fmt"
	"sync"

	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/logging"
)

// Extractor runs the independent audio sub-analyses for one whole-file
// request and aggregates them into an AudioFeatureSet
type Extractor struct {
	cfg       config.AudioConfig
	tempo     *TempoEstimator
	segmenter *EnergyMoodSegmenter
	logger    logging.Logger
}

// NewExtractor creates an audio extractor with a validated configuration
func NewExtractor(cfg config.AudioConfig) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid audio config: %w", err)
	}

	return &Extractor{
		cfg:       cfg,
		tempo:     NewTempoEstimator(cfg),
		segmenter: NewEnergyMoodSegmenter(cfg),
		logger: logging.WithFields(logging.Fields{
			"component": "audio_extractor",
		}),
	}, nil
}

// Extract analyzes one full channel of samples. The sub-analyses (tempo,
// energy curve, mood) only read the shared immutable sample data, so
// they run concurrently. Degenerate input (empty or silent) degrades to
// documented defaults instead of failing.
func (e *Extractor) Extract(ctx context.Context, samples []float64, sampleRate int, duration float64) (*AudioFeatureSet, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if duration <= 0 {
		duration = float64(len(samples)) / float64(sampleRate)
	}

	e.logger.Debug("audio extraction started", logging.Fields{
		"samples":     len(samples),
		"sample_rate": sampleRate,
		"duration":    duration,
	})

	var (
		wg       sync.WaitGroup
		estimate TempoEstimate
		curve    []float64
		segments []AudioSegment
		mood     Mood
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		estimate = e.tempo.Estimate(samples, sampleRate)
	}()
	go func() {
		defer wg.Done()
		curve, segments = e.segmenter.EnergyCurve(samples, sampleRate)
	}()
	go func() {
		defer wg.Done()
		mood = e.segmenter.Mood(samples, sampleRate)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &AudioFeatureSet{
		BPM:           estimate.BPM,
		Confidence:    estimate.Confidence,
		TempoCategory: estimate.Category,
		EnergyCurve:   curve,
		Segments:      segments,
		Mood:          mood,
		Structure:     e.segmenter.Structure(duration),
		Duration:      duration,
	}, nil
}
