package video

import (
	"math"

	"github.com/clipsense/clipsense/algorithms/vision"
	"github.com/clipsense/clipsense/analysis/config"
	"github.com/clipsense/clipsense/logging"
)

// ColorProfiler derives the dominant palette and color descriptors of a
// frame sequence from a quantized, count-weighted color histogram
type ColorProfiler struct {
	cfg    config.VideoConfig
	logger logging.Logger
}

// colorHistogram is a count-weighted histogram over quantized colors.
// Entry order is insertion order, which keeps centroid initialization
// deterministic.
type colorHistogram struct {
	counts map[uint32]int
	order  []uint32
	levels int
}

func newColorHistogram(levels int) *colorHistogram {
	return &colorHistogram{
		counts: make(map[uint32]int),
		levels: levels,
	}
}

// add quantizes a color and bumps its bucket
func (h *colorHistogram) add(r, g, b uint8) {
	key := h.quantize(r)<<16 | h.quantize(g)<<8 | h.quantize(b)
	if _, seen := h.counts[key]; !seen {
		h.order = append(h.order, key)
	}
	h.counts[key]++
}

// quantize maps a channel value onto the configured level grid. The grid
// endpoints map back onto 0 and 255 exactly, so pure colors survive the
// round trip.
func (h *colorHistogram) quantize(c uint8) uint32 {
	return uint32(math.Round(float64(c) * float64(h.levels-1) / 255.0))
}

// reconstruct maps a quantization level back to a channel value
func (h *colorHistogram) reconstruct(level uint32) float64 {
	return math.Round(float64(level) * 255.0 / float64(h.levels-1))
}

// entries returns the histogram as (color, count) pairs in insertion order
func (h *colorHistogram) entries() ([][3]float64, []float64) {
	colors := make([][3]float64, len(h.order))
	weights := make([]float64, len(h.order))

	for i, key := range h.order {
		colors[i] = [3]float64{
			h.reconstruct(key >> 16 & 0xff),
			h.reconstruct(key >> 8 & 0xff),
			h.reconstruct(key & 0xff),
		}
		weights[i] = float64(h.counts[key])
	}

	return colors, weights
}

// NewColorProfiler creates a color profiler from a video configuration
func NewColorProfiler(cfg config.VideoConfig) *ColorProfiler {
	return &ColorProfiler{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "color_profiler",
		}),
	}
}

// Analyze accumulates a merged color histogram across all frames and
// clusters it into the dominant palette. Empty input yields a zeroed,
// muted profile.
func (p *ColorProfiler) Analyze(frames []*vision.Frame) ColorProfile {
	hist := newColorHistogram(p.cfg.QuantLevels)

	for _, frame := range frames {
		p.accumulate(hist, frame)
	}

	colors, weights := hist.entries()
	if len(colors) == 0 {
		return ColorProfile{Mood: ColorMuted}
	}

	palette := p.clusterPalette(colors, weights)
	temperature := weightedTemperature(colors, weights)
	saturation := weightedSaturation(colors, weights)

	profile := ColorProfile{
		DominantColors: palette,
		Temperature:    temperature,
		Saturation:     saturation,
		Mood:           classifyColorMood(temperature, saturation),
	}

	p.logger.Debug("color profile computed", logging.Fields{
		"histogram_entries": len(colors),
		"temperature":       temperature,
		"saturation":        saturation,
		"mood":              profile.Mood,
	})

	return profile
}

// accumulate samples every Nth pixel of a frame into the histogram
func (p *ColorProfiler) accumulate(hist *colorHistogram, frame *vision.Frame) {
	if frame == nil {
		return
	}

	n := frame.PixelCount()
	for i := 0; i < n; i += p.cfg.PixelStep {
		idx := i * 4
		hist.add(frame.Pixels[idx], frame.Pixels[idx+1], frame.Pixels[idx+2])
	}
}

// clusterPalette runs count-weighted k-means over histogram entries.
// Centroids start from the first k entries and run a fixed number of
// iterations; each centroid is updated as the weighted mean of its
// assigned entries, and a centroid with no assignments keeps its position.
func (p *ColorProfiler) clusterPalette(colors [][3]float64, weights []float64) []RGB {
	k := p.cfg.PaletteSize

	centroids := make([][3]float64, k)
	for i := range centroids {
		centroids[i] = colors[i%len(colors)]
	}

	assignments := make([]int, len(colors))

	for iter := 0; iter < p.cfg.ClusterIterations; iter++ {
		// Assignment step
		for i, c := range colors {
			best := 0
			bestDist := math.Inf(1)
			for j, centroid := range centroids {
				d := colorDistance(c, centroid)
				if d < bestDist {
					bestDist = d
					best = j
				}
			}
			assignments[i] = best
		}

		// Update step: count-weighted mean per cluster
		sums := make([][3]float64, k)
		totals := make([]float64, k)
		for i, c := range colors {
			j := assignments[i]
			w := weights[i]
			sums[j][0] += c[0] * w
			sums[j][1] += c[1] * w
			sums[j][2] += c[2] * w
			totals[j] += w
		}

		for j := range centroids {
			if totals[j] > 0 {
				centroids[j] = [3]float64{
					sums[j][0] / totals[j],
					sums[j][1] / totals[j],
					sums[j][2] / totals[j],
				}
			}
		}
	}

	palette := make([]RGB, k)
	for j, c := range centroids {
		palette[j] = RGB{
			R: clampChannel(c[0]),
			G: clampChannel(c[1]),
			B: clampChannel(c[2]),
		}
	}

	return palette
}

// weightedTemperature averages the red-blue balance across sampled
// colors, weighted by count. 1.0 is pure red, 0.0 pure blue.
func weightedTemperature(colors [][3]float64, weights []float64) float64 {
	sum := 0.0
	total := 0.0
	for i, c := range colors {
		sum += (c[0] - c[2] + 255.0) / 510.0 * weights[i]
		total += weights[i]
	}
	if total == 0 {
		return 0.0
	}
	return sum / total
}

// weightedSaturation averages (max-min)/max across sampled colors,
// weighted by count. Black contributes 0.
func weightedSaturation(colors [][3]float64, weights []float64) float64 {
	sum := 0.0
	total := 0.0
	for i, c := range colors {
		maxC := math.Max(c[0], math.Max(c[1], c[2]))
		minC := math.Min(c[0], math.Min(c[1], c[2]))
		if maxC > 0 {
			sum += (maxC - minC) / maxC * weights[i]
		}
		total += weights[i]
	}
	if total == 0 {
		return 0.0
	}
	return sum / total
}

// classifyColorMood picks a palette mood by fixed priority rules
func classifyColorMood(temperature, saturation float64) ColorMood {
	switch {
	case temperature > 0.6 && saturation > 0.6:
		return ColorWarm
	case temperature < 0.4 && saturation > 0.6:
		return ColorCool
	case saturation > 0.7:
		return ColorVibrant
	default:
		return ColorMuted
	}
}

func colorDistance(a, b [3]float64) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	return dr*dr + dg*dg + db*db
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
