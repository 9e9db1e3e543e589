package video

// MotionDirection is the dominant direction of inter-frame motion
type MotionDirection string

const (
	DirectionStatic     MotionDirection = "static"
	DirectionHorizontal MotionDirection = "horizontal"
	DirectionVertical   MotionDirection = "vertical"
	DirectionMixed      MotionDirection = "mixed"
)

// MotionClass is a coarse classification of overall motion intensity
type MotionClass string

const (
	MotionStatic MotionClass = "static"
	MotionLow    MotionClass = "low"
	MotionMedium MotionClass = "medium"
	MotionHigh   MotionClass = "high"
)

// MotionProfile aggregates motion metrics across all frame pairs
type MotionProfile struct {
	Intensity   float64         `json:"intensity"`   // [0, 1]
	Horizontal  float64         `json:"horizontal"`  // avg |dx| in pixels
	Vertical    float64         `json:"vertical"`    // avg |dy| in pixels
	Direction   MotionDirection `json:"direction"`
	Consistency float64         `json:"consistency"` // [0, 1]
	Class       MotionClass     `json:"class"`
}

// RGB is one palette color
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorMood is a coarse classification of the color palette
type ColorMood string

const (
	ColorWarm    ColorMood = "warm"
	ColorCool    ColorMood = "cool"
	ColorVibrant ColorMood = "vibrant"
	ColorMuted   ColorMood = "muted"
)

// ColorProfile holds the dominant palette and its derived descriptors.
// Temperature and Saturation are in [0, 1]; temperature leans warm above
// 0.5 (red-heavy) and cool below (blue-heavy).
type ColorProfile struct {
	DominantColors []RGB     `json:"dominant_colors"`
	Temperature    float64   `json:"temperature"`
	Saturation     float64   `json:"saturation"`
	Mood           ColorMood `json:"mood"`
}

// BrightnessProfile summarizes per-frame luminance, each value in [0, 1]
type BrightnessProfile struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// SceneType is a heuristic classification of one scene
type SceneType string

const (
	SceneOutdoor SceneType = "outdoor"
	SceneIndoor  SceneType = "indoor"
	SceneCloseUp SceneType = "close-up"
	SceneWide    SceneType = "wide"
	SceneMedium  SceneType = "medium"
)

// SceneAnalysis is one detected scene. Scenes partition [0, duration]
// with no gaps or overlaps.
type SceneAnalysis struct {
	Start      float64   `json:"start"`
	End        float64   `json:"end"`
	Type       SceneType `json:"type"`
	Confidence float64   `json:"confidence"`
}

// QualityScore aggregates the technical quality metrics, each in [0, 1]
type QualityScore struct {
	Sharpness float64 `json:"sharpness"`
	Stability float64 `json:"stability"`
	Noise     float64 `json:"noise"`
	Overall   float64 `json:"overall"`
}

// VideoFeatureSet is the immutable result of one whole-file video
// analysis request. It is never mutated after being returned.
type VideoFeatureSet struct {
	Motion     MotionProfile     `json:"motion"`
	Color      ColorProfile      `json:"color"`
	Brightness BrightnessProfile `json:"brightness"`
	Scenes     []SceneAnalysis   `json:"scenes"`
	Quality    QualityScore      `json:"quality"`
	Duration   float64           `json:"duration"`
}
