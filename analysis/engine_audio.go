package analysis

import (
	"context"
	"fmt"

	"github.com/clipsense/clipsense/analysis/audio"
	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/logging"
)

// AudioEngine serializes whole-file audio analysis requests. Decoded
// channel data comes in, one immutable AudioFeatureSet per request comes
// out.
type AudioEngine struct {
	coord     *Coordinator
	extractor *audio.Extractor
	logger    logging.Logger
}

// NewAudioEngine creates an audio engine with the given configuration
func NewAudioEngine(cfg config.AudioConfig) (*AudioEngine, error) {
	extractor, err := audio.NewExtractor(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	return &AudioEngine{
		coord:     NewCoordinator("audio"),
		extractor: extractor,
		logger: logging.WithFields(logging.Fields{
			"component": "audio_engine",
		}),
	}, nil
}

// OnEvent registers a lifecycle event handler
func (e *AudioEngine) OnEvent(handler EventHandler) {
	e.coord.OnEvent(handler)
}

// Analyze enqueues a whole-file analysis of decoded channel data and
// returns its deferred result. The samples must not be mutated until the
// request completes; ownership transfers to the engine for the duration.
func (e *AudioEngine) Analyze(ctx context.Context, samples []float64, sampleRate int, duration float64) (*Pending, error) {
	return e.coord.Submit(ctx, func(runCtx context.Context) (any, error) {
		features, err := e.extractor.Extract(runCtx, samples, sampleRate, duration)
		if err != nil {
			return nil, &StageError{Stage: "audio-analysis", Err: err}
		}
		return features, nil
	})
}

// CancelPending drops a request that has not started yet
func (e *AudioEngine) CancelPending(p *Pending) bool {
	return e.coord.CancelPending(p)
}

// Wait blocks on a pending request and returns its typed result
func (e *AudioEngine) Wait(ctx context.Context, p *Pending) (*audio.AudioFeatureSet, error) {
	value, err := p.Wait(ctx)
	if err != nil {
		return nil, err
	}
	return value.(*audio.AudioFeatureSet), nil
}

// Close shuts the engine down, rejecting queued requests
func (e *AudioEngine) Close() {
	e.coord.Close()
}
