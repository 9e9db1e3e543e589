package audio

import (
	"math"

	"github.com/clipsense/clipsense/algorithms/common"
	"github.com/clipsense/clipsense/algorithms/spectral"
	"github.com/clipsense/clipsense/algorithms/temporal"
	"github.com/clipsense/clipsense/analysis/config"
)

// EnergyMoodSegmenter derives the windowed energy curve, the coarse
// valence/arousal mood estimate and the structural sections of a track
type EnergyMoodSegmenter struct {
	cfg      config.AudioConfig
	centroid *spectral.Centroid
	rolloff  *spectral.Rolloff
}

// NewEnergyMoodSegmenter creates a segmenter from an audio configuration
func NewEnergyMoodSegmenter(cfg config.AudioConfig) *EnergyMoodSegmenter {
	return &EnergyMoodSegmenter{
		cfg:      cfg,
		centroid: spectral.NewCentroid(),
		rolloff:  spectral.NewRolloff(),
	}
}

// EnergyCurve computes the RMS energy curve over overlapping windows
// (50% overlap) together with one timbral AudioSegment per window.
// Signals shorter than one window yield empty results.
func (s *EnergyMoodSegmenter) EnergyCurve(samples []float64, sampleRate int) ([]float64, []AudioSegment) {
	frameSize := int(s.cfg.EnergyWindow * float64(sampleRate))
	if frameSize <= 0 || len(samples) < frameSize {
		return []float64{}, []AudioSegment{}
	}
	hopSize := frameSize / 2
	if hopSize == 0 {
		hopSize = 1
	}

	curve := temporal.NewEnergy(frameSize, hopSize).ComputeRMSFrames(samples)
	segments := make([]AudioSegment, len(curve))

	analyzer := spectral.NewAnalyzer(frameSize)
	windowDur := float64(frameSize) / float64(sampleRate)

	for i := range curve {
		startIdx := i * hopSize
		magnitude := analyzer.Magnitude(samples[startIdx : startIdx+frameSize])
		start := float64(startIdx) / float64(sampleRate)

		segments[i] = AudioSegment{
			Start:    start,
			End:      start + windowDur,
			Energy:   curve[i],
			Centroid: s.centroid.ComputeNormalized(magnitude),
			Rolloff:  s.rolloff.Compute(magnitude, s.cfg.RolloffThreshold),
		}
	}

	return curve, segments
}

// Mood estimates valence and arousal over coarse windows and classifies
// them. Valence is the RMS-weighted average normalized centroid; arousal
// is the scaled average RMS. Both are clamped to [0, 1].
func (s *EnergyMoodSegmenter) Mood(samples []float64, sampleRate int) Mood {
	frameSize := int(s.cfg.MoodWindow * float64(sampleRate))
	if frameSize <= 0 || len(samples) < frameSize {
		return Mood{Category: classifyMood(0, 0)}
	}

	analyzer := spectral.NewAnalyzer(frameSize)

	weightedCentroid := 0.0
	totalWeight := 0.0
	totalRMS := 0.0
	windows := 0

	for start := 0; start+frameSize <= len(samples); start += frameSize {
		window := samples[start : start+frameSize]
		energy := common.RMS(window)
		centroid := s.centroid.ComputeNormalized(analyzer.Magnitude(window))

		weightedCentroid += energy * centroid
		totalWeight += energy
		totalRMS += energy
		windows++
	}

	valence := 0.0
	if totalWeight > 0 {
		valence = common.Clamp(weightedCentroid/totalWeight, 0.0, 1.0)
	}

	arousal := 0.0
	if windows > 0 {
		arousal = common.Clamp(totalRMS/float64(windows)*10.0, 0.0, 1.0)
	}

	return Mood{
		Valence:  valence,
		Arousal:  arousal,
		Category: classifyMood(valence, arousal),
	}
}

// classifyMood picks a category by fixed priority rules; the first
// matching rule wins
func classifyMood(valence, arousal float64) MoodCategory {
	switch {
	case valence > 0.6 && arousal > 0.6:
		return MoodHappy
	case valence < 0.4 && arousal < 0.4:
		return MoodSad
	case arousal > 0.7:
		return MoodEnergetic
	case arousal < 0.3:
		return MoodCalm
	case valence < 0.4:
		return MoodDramatic
	default:
		return MoodPeaceful
	}
}

// Structure derives duration-proportional structural sections. This is a
// content-blind heuristic: boundaries come from the duration alone, not
// from audio features. Sections always partition [0, duration].
func (s *EnergyMoodSegmenter) Structure(duration float64) []Section {
	if duration <= 0 {
		return []Section{}
	}

	sections := []Section{}
	cursor := 0.0

	if duration > 30 {
		introEnd := math.Min(duration*0.1, 15.0)
		sections = append(sections, Section{Label: "intro", Start: 0, End: introEnd})
		cursor = introEnd
	}

	outroStart := duration
	if duration > 45 {
		outroStart = duration * 0.9
	}

	if duration > 60 {
		boundaries := []float64{duration * 0.4, duration * 0.6, duration * 0.8}
		labels := []string{"verse", "chorus", "verse"}

		for i, b := range boundaries {
			sections = append(sections, Section{Label: labels[i], Start: cursor, End: b})
			cursor = b
		}
		sections = append(sections, Section{Label: "chorus", Start: cursor, End: outroStart})
	} else {
		sections = append(sections, Section{Label: "body", Start: cursor, End: outroStart})
	}

	if outroStart < duration {
		sections = append(sections, Section{Label: "outro", Start: outroStart, End: duration})
	}

	return sections
}
