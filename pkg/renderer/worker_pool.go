package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wilhoit/rayforge/pkg/core"
)

// WorkerPool dispatches tile-rendering tasks across a bounded number
// of goroutines using golang.org/x/sync/errgroup, replacing a
// hand-rolled channel-based pool: a panic recovered into an error
// from any tile cancels the remaining tiles via the group's context
// (spec §5).
type WorkerPool struct {
	tileRenderer *TileRenderer
	numWorkers   int
}

// NewWorkerPool creates a pool rendering against scene/integrator with
// numWorkers concurrent tiles in flight (0 means runtime.NumCPU()).
func NewWorkerPool(scene core.Scene, integrator core.Integrator, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		tileRenderer: NewTileRenderer(scene, integrator),
		numWorkers:   numWorkers,
	}
}

// TileDone is invoked, under lock, immediately after a tile finishes
// rendering — used to stream per-tile progress to a caller.
type TileDone func(tile *Tile, stats RenderStats)

// RenderTiles renders every tile into the shared pixelStats array
// (global image coordinates; tiles have disjoint bounds so each pixel
// is written by exactly one worker, per spec §5), stopping early and
// returning the first error if any tile's render panics or the
// context is cancelled.
func (wp *WorkerPool) RenderTiles(ctx context.Context, tiles []*Tile, pixelStats [][]PixelStats, width, height, targetSamples int, onDone TileDone) (RenderStats, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	var mu sync.Mutex
	total := RenderStats{MaxSamples: targetSamples, MinSamples: targetSamples}

	for _, tile := range tiles {
		tile := tile
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("tile %d panicked: %v", tile.ID, r)
				}
			}()

			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			stats := wp.tileRenderer.RenderTileBounds(tile.Bounds, pixelStats, tile.Sampler, width, height, targetSamples)
			tile.PassesCompleted++

			mu.Lock()
			total.TotalPixels += stats.TotalPixels
			total.TotalSamples += stats.TotalSamples
			total.MinSamples = min(total.MinSamples, stats.MinSamples)
			total.MaxSamplesUsed = max(total.MaxSamplesUsed, stats.MaxSamplesUsed)
			if onDone != nil {
				onDone(tile, stats)
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}

	if total.TotalPixels > 0 {
		total.AverageSamples = float64(total.TotalSamples) / float64(total.TotalPixels)
	}
	return total, nil
}

// NumWorkers reports the pool's concurrency limit.
func (wp *WorkerPool) NumWorkers() int { return wp.numWorkers }
