package audio

import (
	"fmt"
	"sync"

	"github.com/clipsense/clipsense/algorithms/common"
	"github.com/clipsense/clipsense/algorithms/spectral"
	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/logging"
)

// StreamingAccumulator buffers a real-time trickle of audio chunks into
// fixed-size windows and emits one FeatureFrame per window fill. It is
// built for the render-thread cadence: Push never blocks and never
// allocates beyond the fixed window buffer.
//
// The outgoing channel is bounded. When the consumer falls behind, the
// oldest queued frame is dropped in favor of the new one; the running
// drop count is exposed through Dropped.
type StreamingAccumulator struct {
	mu sync.Mutex

	cfg      config.StreamConfig
	buffer   []float64
	writeIdx int

	// processed counts samples consumed into completed windows, the
	// basis for emitted timestamps
	processed uint64

	analyzer *spectral.Analyzer
	centroid *spectral.Centroid
	zcr      *spectral.ZeroCrossingRate
	tracker  *spectral.FluxTracker

	out     chan FeatureFrame
	dropped uint64
	running bool

	logger logging.Logger
}

// NewStreamingAccumulator creates an accumulator with a validated
// configuration
func NewStreamingAccumulator(cfg config.StreamConfig) (*StreamingAccumulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stream config: %w", err)
	}

	return &StreamingAccumulator{
		cfg:      cfg,
		buffer:   make([]float64, cfg.BufferSize),
		analyzer: spectral.NewAnalyzer(cfg.BufferSize),
		centroid: spectral.NewCentroid(),
		zcr:      spectral.NewZeroCrossingRate(),
		tracker:  spectral.NewFluxTracker(),
		out:      make(chan FeatureFrame, cfg.ChannelCapacity),
		logger: logging.WithFields(logging.Fields{
			"component": "streaming_accumulator",
		}),
	}, nil
}

// Frames returns the channel on which FeatureFrames are delivered
func (a *StreamingAccumulator) Frames() <-chan FeatureFrame {
	return a.out
}

// Start begins accepting samples. Buffer position, flux reference and
// the processed-sample counter are reset so each session starts clean.
func (a *StreamingAccumulator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.writeIdx = 0
	a.processed = 0
	a.tracker.Reset()
	a.running = true

	a.logger.Debug("stream analysis started", logging.Fields{
		"buffer_size": a.cfg.BufferSize,
		"sample_rate": a.cfg.SampleRate,
	})
}

// Stop stops accepting samples. Partial window contents are discarded.
func (a *StreamingAccumulator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.running = false
	a.writeIdx = 0

	a.logger.Debug("stream analysis stopped", logging.Fields{
		"processed_samples": a.processed,
		"dropped_frames":    a.dropped,
	})
}

// SetConfig replaces the accumulator configuration. The new configuration
// is validated as a whole; there is no field-by-field merge. Changing the
// buffer size resets the window and flux reference. The channel capacity
// is fixed at construction and cannot be changed here.
func (a *StreamingAccumulator) SetConfig(cfg config.StreamConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid stream config: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if cfg.ChannelCapacity != a.cfg.ChannelCapacity {
		return fmt.Errorf("channel capacity is fixed at construction (have %d, got %d)",
			a.cfg.ChannelCapacity, cfg.ChannelCapacity)
	}

	if cfg.BufferSize != a.cfg.BufferSize {
		a.buffer = make([]float64, cfg.BufferSize)
		a.analyzer = spectral.NewAnalyzer(cfg.BufferSize)
		a.writeIdx = 0
		a.tracker.Reset()
	}

	a.cfg = cfg
	return nil
}

// Push appends a chunk of samples to the window buffer, computing and
// emitting one FeatureFrame per fill. Samples pushed while the
// accumulator is stopped are ignored.
func (a *StreamingAccumulator) Push(samples []float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}

	for _, s := range samples {
		a.buffer[a.writeIdx] = s
		a.writeIdx++

		if a.writeIdx == len(a.buffer) {
			a.flushLocked()
		}
	}
}

// Dropped returns the number of frames discarded because the consumer
// fell behind
func (a *StreamingAccumulator) Dropped() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dropped
}

// flushLocked computes one FeatureFrame from the filled window and
// resets the write index. Caller holds the mutex.
func (a *StreamingAccumulator) flushLocked() {
	a.processed += uint64(len(a.buffer))

	magnitude := a.analyzer.Magnitude(a.buffer)

	frame := FeatureFrame{
		RMS:              common.RMS(a.buffer),
		ZCR:              a.zcr.Compute(a.buffer),
		SpectralCentroid: a.centroid.Compute(magnitude),
		SpectralFlux:     a.tracker.Update(magnitude),
		Timestamp:        float64(a.processed) / float64(a.cfg.SampleRate),
	}

	a.writeIdx = 0
	a.emit(frame)
}

// emit delivers a frame with a drop-oldest policy: when the channel is
// full the frame at the head of the queue is discarded to make room.
func (a *StreamingAccumulator) emit(frame FeatureFrame) {
	for {
		select {
		case a.out <- frame:
			return
		default:
		}

		select {
		case <-a.out:
			a.dropped++
		default:
		}
	}
}
