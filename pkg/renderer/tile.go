package renderer

import "image"

// Tile is a rectangular region of the image dispatched as one unit
// of parallel work (spec §5: data-parallel over contiguous pixel
// tiles). Each tile owns its own sampler, seeded deterministically
// from its ID so reruns are reproducible.
type Tile struct {
	ID              int
	Bounds          image.Rectangle
	PassesCompleted int
	Sampler         *RandomSampler
}

// NewTile creates a tile with a sampler seeded from id.
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: NewRandomSampler(int64(id + 42)), // +42 avoids seeding on 0
	}
}

// NewTileGrid partitions a width x height image into tileSize x
// tileSize tiles (the last row/column may be smaller).
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}
