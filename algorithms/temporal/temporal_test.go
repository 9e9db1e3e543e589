package temporal

import (
	"math"
	"testing"
)

func TestEnergyRMSFrames(t *testing.T) {
	e := NewEnergy(4, 2)

	signal := []float64{1, 1, 1, 1, 0, 0, 0, 0}
	frames := e.ComputeRMSFrames(signal)

	if len(frames) != 3 {
		t.Fatalf("frame count = %d, want 3", len(frames))
	}
	if frames[0] != 1 {
		t.Errorf("frame 0 RMS = %g, want 1", frames[0])
	}
	if math.Abs(frames[1]-math.Sqrt(0.5)) > 1e-12 {
		t.Errorf("frame 1 RMS = %g, want %g", frames[1], math.Sqrt(0.5))
	}
	if frames[2] != 0 {
		t.Errorf("frame 2 RMS = %g, want 0", frames[2])
	}
}

func TestEnergyShortSignal(t *testing.T) {
	e := NewEnergy(1024, 512)

	if frames := e.ComputeRMSFrames([]float64{1, 2, 3}); len(frames) != 0 {
		t.Errorf("frames for short signal = %d, want 0", len(frames))
	}
}

func TestIntervalHistogramSteadyBeat(t *testing.T) {
	h := NewIntervalHistogram()

	// Onsets exactly every 0.5s
	onsets := make([]float64, 21)
	for i := range onsets {
		onsets[i] = float64(i) * 0.5
	}

	bpm, confidence := h.Estimate(onsets)
	if bpm != 120 {
		t.Errorf("bpm = %g, want 120", bpm)
	}
	if confidence != 1 {
		t.Errorf("confidence = %g, want 1", confidence)
	}
}

func TestIntervalHistogramOutOfRange(t *testing.T) {
	h := NewIntervalHistogram()

	// All intervals shorter than the minimum beat interval
	onsets := []float64{0, 0.05, 0.1, 0.15, 0.2}

	bpm, confidence := h.Estimate(onsets)
	if bpm != DefaultTempoBPM {
		t.Errorf("bpm = %g, want default %g", bpm, DefaultTempoBPM)
	}
	if confidence != 0 {
		t.Errorf("confidence = %g, want 0", confidence)
	}
}

func TestIntervalHistogramTooFewOnsets(t *testing.T) {
	h := NewIntervalHistogram()

	bpm, confidence := h.Estimate([]float64{1.0})
	if bpm != DefaultTempoBPM || confidence != 0 {
		t.Errorf("single onset: got %g/%g, want %g/0", bpm, confidence, DefaultTempoBPM)
	}
}

func TestOnsetDetectorSilence(t *testing.T) {
	od := NewOnsetDetector()

	onsets := od.Detect(make([]float64, 44100), 44100)
	if len(onsets) != 0 {
		t.Errorf("onsets in silence = %d, want 0", len(onsets))
	}
}

func TestOnsetDetectorSingleImpulse(t *testing.T) {
	od := NewOnsetDetector()

	// The impulse sits mid-hop, so two overlapping windows both see a
	// flux rise above the threshold. The minimum gap collapses them
	// into a single reported onset.
	signal := make([]float64, 44100)
	signal[5470] = 1.0

	onsets := od.Detect(signal, 44100)
	if len(onsets) != 1 {
		t.Fatalf("onsets for one impulse = %d (%v), want 1", len(onsets), onsets)
	}
}

func TestOnsetDetectorNoGapReportsBothWindows(t *testing.T) {
	od := NewOnsetDetectorWithParams(DefaultOnsetWindowSize, DefaultOnsetHopSize, DefaultOnsetThreshold, 0)

	signal := make([]float64, 44100)
	signal[5470] = 1.0

	onsets := od.Detect(signal, 44100)
	if len(onsets) != 2 {
		t.Fatalf("onsets with zero min gap = %d (%v), want 2", len(onsets), onsets)
	}
}

func TestAdaptiveThreshold(t *testing.T) {
	want := 0.25 + 2*math.Sqrt(0.1875) // mean + 2 stddev
	if got := AdaptiveThreshold([]float64{0, 0, 0, 1}); math.Abs(got-want) > 1e-12 {
		t.Errorf("AdaptiveThreshold = %g, want %g", got, want)
	}
	if got := AdaptiveThreshold(nil); got != 0 {
		t.Errorf("AdaptiveThreshold(nil) = %g, want 0", got)
	}
}

func TestOnsetDetectorShortSignal(t *testing.T) {
	od := NewOnsetDetector()

	if onsets := od.Detect(make([]float64, 100), 44100); len(onsets) != 0 {
		t.Errorf("onsets in too-short signal = %d, want 0", len(onsets))
	}
}

func TestClassifyTempoCategory(t *testing.T) {
	cases := []struct {
		bpm  float64
		want string
	}{
		{50, "very_slow"},
		{80, "slow"},
		{110, "moderate"},
		{130, "fast"},
		{170, "very_fast"},
	}

	for _, c := range cases {
		if got := ClassifyTempoCategory(c.bpm); got != c.want {
			t.Errorf("ClassifyTempoCategory(%g) = %q, want %q", c.bpm, got, c.want)
		}
	}
}
