package analysis

import (
	"context"
	"fmt"

	"github.com/clipsense/clipsense/algorithms/vision"
)

// SliceFrameSource adapts an already-decoded frame slice to the
// FrameSource interface. Useful for tests and for callers that decode
// upfront.
type SliceFrameSource struct {
	frames   []*vision.Frame
	duration float64
}

// NewSliceFrameSource wraps pre-decoded frames. When duration is
// non-positive it falls back to the last frame's timestamp.
func NewSliceFrameSource(frames []*vision.Frame, duration float64) *SliceFrameSource {
	if duration <= 0 && len(frames) > 0 {
		duration = frames[len(frames)-1].Timestamp
	}
	return &SliceFrameSource{
		frames:   frames,
		duration: duration,
	}
}

// FrameCount returns the number of wrapped frames
func (s *SliceFrameSource) FrameCount() int {
	return len(s.frames)
}

// Duration returns the source duration in seconds
func (s *SliceFrameSource) Duration() float64 {
	return s.duration
}

// Frame returns the frame at index
func (s *SliceFrameSource) Frame(ctx context.Context, index int) (*vision.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.frames) {
		return nil, fmt.Errorf("frame index %d out of range [0, %d)", index, len(s.frames))
	}
	return s.frames[index], nil
}
