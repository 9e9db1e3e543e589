package video

import (
	"math"
	"testing"

	"github.com/clipsense/clipsense/algorithms/vision"
	"github.com/clipsense/clipsense/analysis/config"
)

func TestSegmentUniformSequence(t *testing.T) {
	s := NewSceneSegmenter(config.DefaultVideoConfig())

	frames := make([]*vision.Frame, 10)
	for i := range frames {
		frames[i] = solidFrame(16, 16, 200, 200, 200, float64(i))
	}

	scenes := s.Segment(frames, 10)

	if len(scenes) != 1 {
		t.Fatalf("got %d scenes, want 1", len(scenes))
	}
	if scenes[0].Start != 0 || scenes[0].End != 10 {
		t.Errorf("scene spans [%g, %g], want [0, 10]", scenes[0].Start, scenes[0].End)
	}
}

func TestSegmentSingleOutlierFrame(t *testing.T) {
	s := NewSceneSegmenter(config.DefaultVideoConfig())

	// one black frame in a white sequence: one boundary, not two
	frames := make([]*vision.Frame, 20)
	for i := range frames {
		if i == 10 {
			frames[i] = solidFrame(16, 16, 0, 0, 0, float64(i)*0.5)
		} else {
			frames[i] = solidFrame(16, 16, 255, 255, 255, float64(i)*0.5)
		}
	}

	scenes := s.Segment(frames, 10)

	if len(scenes) != 2 {
		t.Fatalf("got %d scenes, want 2", len(scenes))
	}
	if scenes[0].Start != 0 || scenes[0].End != 5.0 {
		t.Errorf("first scene spans [%g, %g], want [0, 5]", scenes[0].Start, scenes[0].End)
	}
	if scenes[1].Start != 5.0 || scenes[1].End != 10 {
		t.Errorf("second scene spans [%g, %g], want [5, 10]", scenes[1].Start, scenes[1].End)
	}
}

func TestSegmentScenesPartitionDuration(t *testing.T) {
	s := NewSceneSegmenter(config.DefaultVideoConfig())

	// three shots with hard cuts between them
	frames := []*vision.Frame{}
	shots := []uint8{255, 0, 255}
	for shot, v := range shots {
		for i := 0; i < 5; i++ {
			ts := float64(shot*5+i) * 0.2
			frames = append(frames, solidFrame(16, 16, v, v, v, ts))
		}
	}

	scenes := s.Segment(frames, 3)

	if len(scenes) != 3 {
		t.Fatalf("got %d scenes, want 3", len(scenes))
	}
	if scenes[0].Start != 0 {
		t.Errorf("first scene starts at %g, want 0", scenes[0].Start)
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i].Start != scenes[i-1].End {
			t.Errorf("gap between scenes %d and %d: %g != %g",
				i-1, i, scenes[i-1].End, scenes[i].Start)
		}
	}
	if last := scenes[len(scenes)-1]; math.Abs(last.End-3) > 1e-9 {
		t.Errorf("last scene ends at %g, want 3", last.End)
	}
}

func TestSegmentNoFrames(t *testing.T) {
	s := NewSceneSegmenter(config.DefaultVideoConfig())

	if scenes := s.Segment(nil, 10); len(scenes) != 0 {
		t.Errorf("got %d scenes for empty input, want 0", len(scenes))
	}
}

func TestClassifySceneTypes(t *testing.T) {
	s := NewSceneSegmenter(config.DefaultVideoConfig())

	cases := []struct {
		name  string
		frame *vision.Frame
		want  SceneType
	}{
		// bright and green-dominant
		{"outdoor", solidFrame(20, 20, 150, 255, 150, 0), SceneOutdoor},
		// dark
		{"indoor", solidFrame(20, 20, 30, 30, 30, 0), SceneIndoor},
		// bright but featureless
		{"close-up", solidFrame(20, 20, 255, 255, 255, 0), SceneCloseUp},
		// mid-gray stripes, moderate edge density
		{"wide", stripeFrame(20, 20, 5, 51, 178), SceneWide},
		// broad stripes, sparse edges
		{"medium", stripeFrame(20, 20, 10, 51, 178), SceneMedium},
	}

	for _, tc := range cases {
		got, confidence := s.classify(tc.frame)
		if got != tc.want {
			t.Errorf("%s frame classified as %q, want %q", tc.name, got, tc.want)
		}
		if confidence <= 0 || confidence > 1 {
			t.Errorf("%s confidence = %g, want in (0, 1]", tc.name, confidence)
		}
	}
}
