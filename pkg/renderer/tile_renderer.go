package renderer

import (
	"image"

	"github.com/wilhoit/rayforge/pkg/core"
)

// TileRenderer renders pixels within a tile's bounds using a scene's
// integrator, applying the spec §4.8 adaptive per-pixel sampling rule.
type TileRenderer struct {
	scene      core.Scene
	integrator core.Integrator
}

// NewTileRenderer creates a tile renderer for scene/integrator.
func NewTileRenderer(scene core.Scene, integrator core.Integrator) *TileRenderer {
	return &TileRenderer{scene: scene, integrator: integrator}
}

// RenderTileBounds renders every pixel in bounds into pixelStats
// (shared, global-coordinate image), taking up to targetSamples
// samples per pixel subject to the adaptive stopping rule.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler *RandomSampler, width, height, targetSamples int) RenderStats {
	camera := tr.scene.Camera()
	config := tr.scene.SamplingConfig()

	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			samplesUsed := tr.raytracePixel(camera, i, j, width, height, &pixelStats[j][i], sampler, config, targetSamples)
			stats.TotalSamples += samplesUsed
			stats.MinSamples = min(stats.MinSamples, samplesUsed)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}

// raytracePixel is the §6 RaytracePixel(x, y) operation: it takes
// samples until maxSamples is reached or the adaptive rule says to
// stop, batching SamplesPerBatch samples per invocation so a caller
// can interleave cancellation checks or progressive passes between
// batches.
func (tr *TileRenderer) raytracePixel(camera core.Camera, i, j, width, height int, ps *PixelStats, sampler *RandomSampler, config core.SamplingConfig, maxSamples int) int {
	initial := ps.SampleCount
	batchSize := config.SamplesPerBatch
	if batchSize <= 0 {
		batchSize = maxSamples
	}

	taken := 0
	for ps.SampleCount < maxSamples && taken < batchSize && !ps.ShouldStop(config) {
		jitter := sampler.Get2D()
		u := (float64(i) + jitter.X) / float64(width)
		v := 1.0 - (float64(j)+jitter.Y)/float64(height)

		ray := camera.GenerateRay(u, v, sampler)
		color := tr.integrator.EstimateRadiance(ray, tr.scene, sampler)
		ps.AddSample(color)
		taken++
	}

	return ps.SampleCount - initial
}
