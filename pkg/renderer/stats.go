package renderer

import (
	"math"

	"github.com/wilhoit/rayforge/pkg/core"
)

// RenderStats summarizes how many samples were actually spent across
// a render or tile, surfaced at the end of a CLI render.
type RenderStats struct {
	TotalPixels    int
	TotalSamples   int
	AverageSamples float64
	MaxSamples     int
	MinSamples     int
	MaxSamplesUsed int
}

// PixelStats tracks the running sample statistics for a single pixel,
// per spec §4.8: a running mean color plus the s1/s2 illuminance sums
// used by the adaptive stopping rule.
type PixelStats struct {
	colorMean   core.Vec3
	s1          float64 // Σ I_k
	s2          float64 // Σ I_k²
	SampleCount int
}

// AddSample folds a new radiance sample into the running statistics.
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	k := float64(ps.SampleCount)
	ps.colorMean = ps.colorMean.Multiply((k - 1) / k).Add(color.Multiply(1 / k))

	illum := color.Luminance()
	ps.s1 += illum
	ps.s2 += illum * illum
}

// GetColor returns the current running mean color for this pixel.
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.colorMean
}

// ShouldStop implements the §4.8 stopping rule: after more than half
// of ns_aa samples (and more than one sample), stop once the
// confidence-scaled standard error of the mean illuminance is within
// maxTolerance of the mean itself.
func (ps *PixelStats) ShouldStop(config core.SamplingConfig) bool {
	k := ps.SampleCount
	if k <= config.NsAA/2 || k <= 1 {
		return false
	}

	m := ps.s1 / float64(k)
	variance := math.Max(0, (ps.s2-ps.s1*ps.s1/float64(k))/float64(k-1))

	if m <= 1e-8 {
		return variance < 1e-6
	}

	return config.Confidence*math.Sqrt(variance/float64(k)) <= config.MaxTolerance*m
}
