package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/clipsense/clipsense/algorithms/vision"
	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/analysis/video"
	"github.com/clipsense/clipsense/logging"
)

// FrameSource supplies decoded frames to the video engine. Extraction is
// inherently serialized: the engine requests frames one at a time
// because sources typically share one decode surface.
type FrameSource interface {
	// FrameCount returns the number of frames available
	FrameCount() int

	// Duration returns the source duration in seconds
	Duration() float64

	// Frame decodes and returns frame index. The engine bounds each call
	// with a timeout context; implementations should honor cancellation.
	Frame(ctx context.Context, index int) (*vision.Frame, error)
}

// VideoEngine serializes whole-file video analysis requests: frames are
// extracted one by one from the source, then the independent
// sub-analyses run concurrently over the immutable frame set.
type VideoEngine struct {
	coord     *Coordinator
	extractor *video.Extractor
	cfg       config.VideoConfig
	logger    logging.Logger
}

// NewVideoEngine creates a video engine with the given configuration
func NewVideoEngine(cfg config.VideoConfig) (*VideoEngine, error) {
	extractor, err := video.NewExtractor(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	return &VideoEngine{
		coord:     NewCoordinator("video"),
		extractor: extractor,
		cfg:       cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "video_engine",
		}),
	}, nil
}

// OnEvent registers a lifecycle event handler
func (e *VideoEngine) OnEvent(handler EventHandler) {
	e.coord.OnEvent(handler)
}

// Analyze enqueues a whole-file analysis of a frame source and returns
// its deferred result
func (e *VideoEngine) Analyze(ctx context.Context, source FrameSource) (*Pending, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: nil frame source", ErrInvalidParameter)
	}

	return e.coord.Submit(ctx, func(runCtx context.Context) (any, error) {
		frames, err := e.extractFrames(runCtx, source)
		if err != nil {
			return nil, &StageError{Stage: "frame-extraction", Err: err}
		}

		features, err := e.extractor.Extract(runCtx, frames, source.Duration())
		if err != nil {
			return nil, &StageError{Stage: "video-analysis", Err: err}
		}
		return features, nil
	})
}

// extractFrames pulls every frame from the source, strictly one at a
// time. Each extraction is bounded by the configured timeout so a stuck
// decode fails the request instead of hanging it.
func (e *VideoEngine) extractFrames(ctx context.Context, source FrameSource) ([]*vision.Frame, error) {
	total := source.FrameCount()
	frames := make([]*vision.Frame, 0, total)

	for i := 0; i < total; i++ {
		frameCtx, cancel := context.WithTimeout(ctx, e.cfg.ExtractTimeout)
		frame, err := source.Frame(frameCtx, i)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: frame %d of %d", ErrTimeout, i, total)
			}
			return nil, fmt.Errorf("%w: frame %d of %d: %v", ErrDecodeFailure, i, total, err)
		}

		frames = append(frames, frame)
		e.coord.emit(Event{Type: EventFrameExtracted, Frame: i + 1, Total: total})
	}

	return frames, nil
}

// CancelPending drops a request that has not started yet
func (e *VideoEngine) CancelPending(p *Pending) bool {
	return e.coord.CancelPending(p)
}

// Wait blocks on a pending request and returns its typed result
func (e *VideoEngine) Wait(ctx context.Context, p *Pending) (*video.VideoFeatureSet, error) {
	value, err := p.Wait(ctx)
	if err != nil {
		return nil, err
	}
	return value.(*video.VideoFeatureSet), nil
}

// Close shuts the engine down, rejecting queued requests
func (e *VideoEngine) Close() {
	e.coord.Close()
}
