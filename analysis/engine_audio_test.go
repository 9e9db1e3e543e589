package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/clipsense/clipsense/analysis/audio"
	"github.com/clipsense/clipsense/analysis/config"
)

func TestAudioEngineSilence(t *testing.T) {
	engine, err := NewAudioEngine(config.DefaultAudioConfig())
	if err != nil {
		t.Fatalf("NewAudioEngine: %v", err)
	}
	defer engine.Close()

	p, err := engine.Analyze(context.Background(), make([]float64, 44100), 44100, 0)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	features, err := engine.Wait(context.Background(), p)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}

	if features.BPM != 120 || features.Confidence != 0 {
		t.Errorf("tempo = %g bpm at %g confidence, want default 120 at 0",
			features.BPM, features.Confidence)
	}
	if features.Mood.Category != audio.MoodSad {
		t.Errorf("mood = %q, want %q", features.Mood.Category, audio.MoodSad)
	}
	if features.Duration != 1.0 {
		t.Errorf("duration = %g, want 1 derived from sample count", features.Duration)
	}
	if len(features.EnergyCurve) == 0 || len(features.Segments) != len(features.EnergyCurve) {
		t.Errorf("curve/segments = %d/%d points", len(features.EnergyCurve), len(features.Segments))
	}
	if len(features.Structure) != 1 || features.Structure[0].Label != "body" {
		t.Errorf("structure = %+v, want single body section", features.Structure)
	}
}

func TestAudioEngineInvalidSampleRate(t *testing.T) {
	engine, err := NewAudioEngine(config.DefaultAudioConfig())
	if err != nil {
		t.Fatalf("NewAudioEngine: %v", err)
	}
	defer engine.Close()

	p, err := engine.Analyze(context.Background(), make([]float64, 128), 0, 0)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	_, err = engine.Wait(context.Background(), p)
	if err == nil {
		t.Fatal("invalid sample rate produced no error")
	}
	if stageOf(err) != "audio-analysis" {
		t.Errorf("error stage = %q, want audio-analysis", stageOf(err))
	}
}

func TestNewAudioEngineRejectsInvalidConfig(t *testing.T) {
	if _, err := NewAudioEngine(config.AudioConfig{}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NewAudioEngine returned %v, want ErrInvalidParameter", err)
	}
}
