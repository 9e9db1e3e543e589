package config

import (
	"fmt"
	"time"
)

// StreamConfig configures the real-time feature accumulator. All fields
// are named and range-checked; there is deliberately no free-form merge.
type StreamConfig struct {
	// BufferSize is the accumulation window in samples; one FeatureFrame
	// is emitted per fill
	BufferSize int `json:"buffer_size"`

	// SampleRate of the incoming sample stream in Hz
	SampleRate int `json:"sample_rate"`

	// ChannelCapacity bounds the outgoing frame channel. When the
	// consumer falls behind, the oldest queued frame is dropped.
	ChannelCapacity int `json:"channel_capacity"`
}

// AudioConfig configures whole-file audio analysis
type AudioConfig struct {
	// Spectral analysis
	SpectrumWindowSize int     `json:"spectrum_window_size"`
	RolloffThreshold   float64 `json:"rolloff_threshold"`

	// Onset detection / tempo estimation
	OnsetWindowSize int     `json:"onset_window_size"`
	OnsetHopSize    int     `json:"onset_hop_size"`
	OnsetThreshold  float64 `json:"onset_threshold"`
	OnsetMinGap     float64 `json:"onset_min_gap"` // seconds
	MinOnsets       int     `json:"min_onsets"`
	IntervalBucket  float64 `json:"interval_bucket"`   // seconds
	MinBeatInterval float64 `json:"min_beat_interval"` // seconds
	MaxBeatInterval float64 `json:"max_beat_interval"` // seconds

	// Energy / mood windows
	EnergyWindow float64 `json:"energy_window"` // seconds, 50% overlap
	MoodWindow   float64 `json:"mood_window"`   // seconds
}

// VideoConfig configures whole-file video analysis
type VideoConfig struct {
	// Motion estimation
	BlockSize       int     `json:"block_size"`
	SearchRadius    int     `json:"search_radius"`
	StaticThreshold float64 `json:"static_threshold"`
	LowThreshold    float64 `json:"low_threshold"`
	MediumThreshold float64 `json:"medium_threshold"`
	DirectionRatio  float64 `json:"direction_ratio"`

	// Color profiling
	PixelStep         int `json:"pixel_step"`
	QuantLevels       int `json:"quant_levels"`
	PaletteSize       int `json:"palette_size"`
	ClusterIterations int `json:"cluster_iterations"`

	// Scene segmentation
	SceneCutThreshold float64 `json:"scene_cut_threshold"`
	EdgeThreshold     float64 `json:"edge_threshold"`

	// ExtractTimeout bounds each frame extraction so a stuck decode
	// surfaces as an explicit failure instead of an indefinite hang
	ExtractTimeout time.Duration `json:"extract_timeout"`
}

// DefaultStreamConfig returns the default real-time configuration
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		BufferSize:      2048,
		SampleRate:      44100,
		ChannelCapacity: 64,
	}
}

// DefaultAudioConfig returns the default audio analysis configuration.
// The thresholds are inherited tuning constants, exposed here so callers
// can override them rather than baked in as magic numbers.
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		SpectrumWindowSize: 2048,
		RolloffThreshold:   0.85,
		OnsetWindowSize:    1024,
		OnsetHopSize:       512,
		OnsetThreshold:     0.1,
		OnsetMinGap:        0.05,
		MinOnsets:          4,
		IntervalBucket:     0.01,
		MinBeatInterval:    0.2,
		MaxBeatInterval:    2.0,
		EnergyWindow:       0.1,
		MoodWindow:         0.5,
	}
}

// DefaultVideoConfig returns the default video analysis configuration
func DefaultVideoConfig() VideoConfig {
	return VideoConfig{
		BlockSize:         16,
		SearchRadius:      8,
		StaticThreshold:   0.1,
		LowThreshold:      0.3,
		MediumThreshold:   0.6,
		DirectionRatio:    1.5,
		PixelStep:         4,
		QuantLevels:       32,
		PaletteSize:       3,
		ClusterIterations: 10,
		SceneCutThreshold: 0.3,
		EdgeThreshold:     0.1,
		ExtractTimeout:    10 * time.Second,
	}
}

// Validate checks the stream configuration ranges
func (c StreamConfig) Validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", c.BufferSize)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.ChannelCapacity <= 0 {
		return fmt.Errorf("channel capacity must be positive, got %d", c.ChannelCapacity)
	}
	return nil
}

// Validate checks the audio configuration ranges
func (c AudioConfig) Validate() error {
	if c.SpectrumWindowSize <= 0 {
		return fmt.Errorf("spectrum window size must be positive, got %d", c.SpectrumWindowSize)
	}
	if c.RolloffThreshold <= 0 || c.RolloffThreshold > 1 {
		return fmt.Errorf("rolloff threshold must be in (0, 1], got %g", c.RolloffThreshold)
	}
	if c.OnsetWindowSize <= 0 || c.OnsetHopSize <= 0 {
		return fmt.Errorf("onset window and hop must be positive, got %d/%d", c.OnsetWindowSize, c.OnsetHopSize)
	}
	if c.OnsetThreshold < 0 {
		return fmt.Errorf("onset threshold must be non-negative, got %g", c.OnsetThreshold)
	}
	if c.OnsetMinGap < 0 {
		return fmt.Errorf("onset min gap must be non-negative, got %g", c.OnsetMinGap)
	}
	if c.MinOnsets < 2 {
		return fmt.Errorf("min onsets must be at least 2, got %d", c.MinOnsets)
	}
	if c.IntervalBucket <= 0 {
		return fmt.Errorf("interval bucket must be positive, got %g", c.IntervalBucket)
	}
	if c.MinBeatInterval <= 0 || c.MaxBeatInterval <= c.MinBeatInterval {
		return fmt.Errorf("beat interval range [%g, %g] is invalid", c.MinBeatInterval, c.MaxBeatInterval)
	}
	if c.EnergyWindow <= 0 || c.MoodWindow <= 0 {
		return fmt.Errorf("energy and mood windows must be positive, got %g/%g", c.EnergyWindow, c.MoodWindow)
	}
	return nil
}

// Validate checks the video configuration ranges
func (c VideoConfig) Validate() error {
	if c.BlockSize <= 0 || c.SearchRadius <= 0 {
		return fmt.Errorf("block size and search radius must be positive, got %d/%d", c.BlockSize, c.SearchRadius)
	}
	if !(c.StaticThreshold < c.LowThreshold && c.LowThreshold < c.MediumThreshold) {
		return fmt.Errorf("motion thresholds must be increasing, got %g/%g/%g",
			c.StaticThreshold, c.LowThreshold, c.MediumThreshold)
	}
	if c.DirectionRatio <= 1 {
		return fmt.Errorf("direction ratio must exceed 1, got %g", c.DirectionRatio)
	}
	if c.PixelStep <= 0 {
		return fmt.Errorf("pixel step must be positive, got %d", c.PixelStep)
	}
	if c.QuantLevels < 2 || c.QuantLevels > 256 {
		return fmt.Errorf("quant levels must be in [2, 256], got %d", c.QuantLevels)
	}
	if c.PaletteSize <= 0 {
		return fmt.Errorf("palette size must be positive, got %d", c.PaletteSize)
	}
	if c.ClusterIterations <= 0 {
		return fmt.Errorf("cluster iterations must be positive, got %d", c.ClusterIterations)
	}
	if c.SceneCutThreshold <= 0 || c.SceneCutThreshold > 1 {
		return fmt.Errorf("scene cut threshold must be in (0, 1], got %g", c.SceneCutThreshold)
	}
	if c.EdgeThreshold <= 0 || c.EdgeThreshold > 1 {
		return fmt.Errorf("edge threshold must be in (0, 1], got %g", c.EdgeThreshold)
	}
	if c.ExtractTimeout <= 0 {
		return fmt.Errorf("extract timeout must be positive, got %v", c.ExtractTimeout)
	}
	return nil
}
