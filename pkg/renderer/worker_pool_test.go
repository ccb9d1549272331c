package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhoit/rayforge/pkg/core"
)

func TestWorkerPoolRenderTilesCoversWholeImage(t *testing.T) {
	config := core.SamplingConfig{NsAA: 4, MaxTolerance: 0.05, Confidence: 1.96, SamplesPerBatch: 4}
	scene := newFakeScene(config)
	pool := NewWorkerPool(scene, constantIntegrator{color: core.NewVec3(0.1, 0.2, 0.3)}, 2)

	width, height, tileSize := 8, 8, 4
	tiles := NewTileGrid(width, height, tileSize)
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	stats, err := pool.RenderTiles(context.Background(), tiles, pixelStats, width, height, config.NsAA, nil)
	require.NoError(t, err)
	assert.Equal(t, width*height, stats.TotalPixels)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			assert.Greater(t, pixelStats[y][x].SampleCount, 0)
		}
	}
}

func TestWorkerPoolRenderTilesInvokesTileDoneForEveryTile(t *testing.T) {
	config := core.SamplingConfig{NsAA: 4, MaxTolerance: 0.05, Confidence: 1.96, SamplesPerBatch: 4}
	scene := newFakeScene(config)
	pool := NewWorkerPool(scene, constantIntegrator{color: core.Vec3{}}, 4)

	tiles := NewTileGrid(8, 8, 4)
	pixelStats := make([][]PixelStats, 8)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, 8)
	}

	seen := 0
	_, err := pool.RenderTiles(context.Background(), tiles, pixelStats, 8, 8, config.NsAA, func(tile *Tile, stats RenderStats) {
		seen++
	})
	require.NoError(t, err)
	assert.Equal(t, len(tiles), seen)
}

func TestWorkerPoolRenderTilesCancelledContextStopsEarly(t *testing.T) {
	config := core.SamplingConfig{NsAA: 4, MaxTolerance: 0.05, Confidence: 1.96, SamplesPerBatch: 4}
	scene := newFakeScene(config)
	pool := NewWorkerPool(scene, constantIntegrator{color: core.Vec3{}}, 1)

	tiles := NewTileGrid(8, 8, 4)
	pixelStats := make([][]PixelStats, 8)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, 8)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.RenderTiles(ctx, tiles, pixelStats, 8, 8, config.NsAA, nil)
	assert.Error(t, err)
}

func TestNewWorkerPoolDefaultsToCPUCount(t *testing.T) {
	config := core.SamplingConfig{NsAA: 4}
	scene := newFakeScene(config)
	pool := NewWorkerPool(scene, constantIntegrator{}, 0)
	assert.Greater(t, pool.NumWorkers(), 0)
}
