package renderer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tileBounds() image.Rectangle { return image.Rect(0, 0, 4, 4) }

func TestNewTileGridCoversWholeImageWithoutOverlap(t *testing.T) {
	width, height, tileSize := 10, 7, 4
	tiles := NewTileGrid(width, height, tileSize)

	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}

	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				require.False(t, covered[y][x], "pixel (%d,%d) covered by more than one tile", x, y)
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			assert.True(t, covered[y][x], "pixel (%d,%d) not covered by any tile", x, y)
		}
	}
}

func TestNewTileGridEdgeTilesAreClipped(t *testing.T) {
	tiles := NewTileGrid(10, 7, 4)
	for _, tile := range tiles {
		assert.LessOrEqual(t, tile.Bounds.Max.X, 10)
		assert.LessOrEqual(t, tile.Bounds.Max.Y, 7)
	}
}

func TestNewTileSamplersAreDeterministicPerID(t *testing.T) {
	a := NewTile(5, tileBounds())
	b := NewTile(5, tileBounds())
	assert.Equal(t, a.Sampler.Get1D(), b.Sampler.Get1D(), "same tile ID should seed an identical sampler")
}

func TestNewTileSamplersDifferAcrossIDs(t *testing.T) {
	a := NewTile(1, tileBounds())
	b := NewTile(2, tileBounds())
	assert.NotEqual(t, a.Sampler.Get1D(), b.Sampler.Get1D())
}
