package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/wilhoit/rayforge/pkg/core"
)

// ProgressiveConfig configures multi-pass progressive rendering: each
// pass raises the per-pixel sample ceiling, so a caller streaming
// PassResult values sees a quick, noisy preview converge over time.
type ProgressiveConfig struct {
	TileSize           int // tile edge length in pixels (64 is a reasonable default)
	InitialSamples     int // samples taken in the first pass
	MaxSamplesPerPixel int // ceiling for the final pass; set independently of the scene's NsAA
	MaxPasses          int // number of passes spanning InitialSamples..MaxSamplesPerPixel
	NumWorkers         int // concurrent tiles in flight (0 = runtime.NumCPU())
}

// DefaultProgressiveConfig returns sensible defaults.
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: 64,
		MaxPasses:          6,
		NumWorkers:         0,
	}
}

// ProgressiveRaytracer renders a scene in successive passes of
// increasing sample count, dispatching tiles across a WorkerPool.
type ProgressiveRaytracer struct {
	scene         core.Scene
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile
	pixelStats    [][]PixelStats
	workerPool    *WorkerPool
	logger        core.Logger
}

// NewProgressiveRaytracer builds a progressive raytracer for scene at
// width x height, using integrator to estimate radiance.
func NewProgressiveRaytracer(scene core.Scene, integrator core.Integrator, width, height int, config ProgressiveConfig, logger core.Logger) *ProgressiveRaytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	return &ProgressiveRaytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		tiles:      NewTileGrid(width, height, config.TileSize),
		pixelStats: pixelStats,
		workerPool: NewWorkerPool(scene, integrator, config.NumWorkers),
		logger:     logger,
	}
}

// samplesForPass computes the sample-count ceiling for passNumber,
// spreading MaxSamplesPerPixel-InitialSamples evenly across the
// remaining passes and using every remaining sample on the last pass.
func (pr *ProgressiveRaytracer) samplesForPass(passNumber int) int {
	if pr.config.MaxPasses <= 1 {
		return pr.config.MaxSamplesPerPixel
	}
	if passNumber == 1 {
		return pr.config.InitialSamples
	}
	if passNumber == pr.config.MaxPasses {
		return pr.config.MaxSamplesPerPixel
	}

	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	perPass := remainingSamples / remainingPasses
	return pr.config.InitialSamples + (passNumber-1)*perPass
}

// TileCompletionResult reports a single tile's completion within a pass.
type TileCompletionResult struct {
	TileX, TileY int
	TileImage    *image.RGBA
	PassNumber   int
	TileNumber   int
	TotalTiles   int
	TotalPasses  int
}

// PassResult reports a completed pass: the full assembled image so far,
// aggregate stats, and whether this is the last pass.
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// RenderOptions toggles optional per-tile progress events.
type RenderOptions struct {
	TileUpdates bool
}

// RenderProgressive runs every configured pass, streaming results over
// channels so the caller can consume them on its own goroutine. The
// channels are closed once rendering finishes, errors, or ctx is
// cancelled.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context, options RenderOptions) (<-chan PassResult, <-chan TileCompletionResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	tileChan := make(chan TileCompletionResult, 100)
	errChan := make(chan error, 1)

	if !options.TileUpdates {
		close(tileChan)
	}

	go func() {
		defer close(passChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)

		pr.logger.Infof("starting progressive render: %d passes, %d workers", pr.config.MaxPasses, pr.workerPool.NumWorkers())

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			select {
			case <-ctx.Done():
				pr.logger.Infof("render cancelled before pass %d", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			start := time.Now()
			targetSamples := pr.samplesForPass(pass)

			var onDone TileDone
			if options.TileUpdates {
				tileNumber := 0
				onDone = func(tile *Tile, stats RenderStats) {
					tileNumber++
					result := TileCompletionResult{
						TileX:       tile.Bounds.Min.X / pr.config.TileSize,
						TileY:       tile.Bounds.Min.Y / pr.config.TileSize,
						TileImage:   pr.extractTileImage(tile),
						PassNumber:  pass,
						TileNumber:  tileNumber,
						TotalTiles:  len(pr.tiles),
						TotalPasses: pr.config.MaxPasses,
					}
					select {
					case tileChan <- result:
					case <-ctx.Done():
					}
				}
			}

			_, err := pr.workerPool.RenderTiles(ctx, pr.tiles, pr.pixelStats, pr.width, pr.height, targetSamples, onDone)
			if err != nil {
				errChan <- fmt.Errorf("pass %d: %w", pass, err)
				return
			}

			img, stats := pr.assembleImage()
			elapsed := time.Since(start)
			pr.logger.Infof("pass %d done in %v (avg %.1f samples/px)", pass, elapsed, stats.AverageSamples)

			isLast := pass == pr.config.MaxPasses || int(stats.AverageSamples) >= pr.config.MaxSamplesPerPixel
			select {
			case passChan <- PassResult{PassNumber: pass, Image: img, Stats: stats, IsLast: isLast}:
			case <-ctx.Done():
				return
			}

			if isLast {
				break
			}
		}
	}()

	return passChan, tileChan, errChan
}

// extractTileImage copies a tile's region out of the shared pixel
// stats array into its own small RGBA image, for incremental preview.
func (pr *ProgressiveRaytracer) extractTileImage(tile *Tile) *image.RGBA {
	bounds := tile.Bounds
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pr.pixelStats[y][x]
			if ps.SampleCount > 0 {
				img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, vec3ToColor(ps.GetColor()))
			}
		}
	}
	return img
}

// assembleImage renders the full image from the current pixel stats
// and computes aggregate render statistics in the same pass.
func (pr *ProgressiveRaytracer) assembleImage() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))

	stats := RenderStats{
		TotalPixels: pr.width * pr.height,
		MaxSamples:  pr.config.MaxSamplesPerPixel,
		MinSamples:  pr.config.MaxSamplesPerPixel,
	}

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			ps := &pr.pixelStats[y][x]
			img.SetRGBA(x, y, vec3ToColor(ps.GetColor()))

			stats.TotalSamples += ps.SampleCount
			stats.MinSamples = min(stats.MinSamples, ps.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, ps.SampleCount)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return img, stats
}
