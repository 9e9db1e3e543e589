package audio

// FeatureFrame is one periodic snapshot of audio descriptors emitted by
// the real-time accumulator, once per buffer fill.
type FeatureFrame struct {
	RMS              float64 `json:"rms"`
	ZCR              float64 `json:"zcr"`
	SpectralCentroid float64 `json:"spectral_centroid"`
	SpectralFlux     float64 `json:"spectral_flux"`
	Timestamp        float64 `json:"timestamp"` // seconds of processed audio
}

// AudioSegment is one energy-curve window with its timbral descriptors.
// Start and End are in seconds; windows overlap by half their length.
type AudioSegment struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Energy   float64 `json:"energy"`   // window RMS
	Centroid float64 `json:"centroid"` // normalized spectral centroid [0, 1]
	Rolloff  float64 `json:"rolloff"`  // rolloff bin fraction [0, 1]
}

// MoodCategory is a coarse mood label derived from valence/arousal
type MoodCategory string

const (
	MoodHappy     MoodCategory = "happy"
	MoodSad       MoodCategory = "sad"
	MoodEnergetic MoodCategory = "energetic"
	MoodCalm      MoodCategory = "calm"
	MoodDramatic  MoodCategory = "dramatic"
	MoodPeaceful  MoodCategory = "peaceful"
)

// Mood holds the valence/arousal estimate and its category
type Mood struct {
	Valence  float64      `json:"valence"` // [0, 1]
	Arousal  float64      `json:"arousal"` // [0, 1]
	Category MoodCategory `json:"category"`
}

// Section is one structural span of the track, labeled heuristically
type Section struct {
	Label string  `json:"label"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// TempoEstimate holds a BPM estimate with its confidence
type TempoEstimate struct {
	BPM        float64 `json:"bpm"`        // [30, 300]
	Confidence float64 `json:"confidence"` // [0, 1]
	Category   string  `json:"category"`
}

// AudioFeatureSet is the immutable result of one whole-file audio
// analysis request. It is never mutated after being returned.
type AudioFeatureSet struct {
	BPM           float64        `json:"bpm"`
	Confidence    float64        `json:"confidence"`
	TempoCategory string         `json:"tempo_category"`
	EnergyCurve   []float64      `json:"energy_curve"`
	Segments      []AudioSegment `json:"segments"`
	Mood          Mood           `json:"mood"`
	Structure     []Section      `json:"structure"`
	Duration      float64        `json:"duration"`
}
