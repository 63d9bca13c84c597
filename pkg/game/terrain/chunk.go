package terrain

import (
	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/bitmask"
)

// Tile is the fully resolved state of one coordinate, as handed to the
// renderer and physics layers.
type Tile struct {
	Pos     world.Vec
	Type    world.TileType
	Family  bitmask.Family
	Index   int
	Overlay int
	Shape   bitmask.Shape
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ChunkOf returns the chunk coordinate containing tile v
func ChunkOf(v world.Vec, size int) world.Vec {
	return world.Vec{X: floorDiv(v.X, size), Y: floorDiv(v.Y, size)}
}

// ChunkBounds returns the tiles covered by chunk
func ChunkBounds(chunk world.Vec, size int) world.Rect {
	origin := world.Vec{X: chunk.X * size, Y: chunk.Y * size}
	return world.Rect{Min: origin, Max: world.Vec{X: origin.X + size, Y: origin.Y + size}}
}

// ChunksAround returns the chunks within radius of center (in chunk units),
// nearest rings first
func ChunksAround(center world.Vec, radius int) []world.Vec {
	if radius < 0 {
		return nil
	}
	chunks := []world.Vec{center}
	for ring := 1; ring <= radius; ring++ {
		for y := center.Y - ring; y <= center.Y+ring; y++ {
			for x := center.X - ring; x <= center.X+ring; x++ {
				dx, dy := x-center.X, y-center.Y
				if dx != ring && dx != -ring && dy != ring && dy != -ring {
					continue
				}
				chunks = append(chunks, world.Vec{X: x, Y: y})
			}
		}
	}
	return chunks
}

// Resolve returns the full tile state at v
func (m *TileMap) Resolve(v world.Vec) Tile {
	family, _ := m.Mask(v)
	return Tile{
		Pos:     v,
		Type:    m.Classify(v),
		Family:  family,
		Index:   m.Tile(v),
		Overlay: m.Overlay(v),
		Shape:   m.Collision(v),
	}
}

// ResolveRect resolves every tile of r, top row first
func (m *TileMap) ResolveRect(r world.Rect) []Tile {
	if r.Width() <= 0 || r.Height() <= 0 {
		return nil
	}
	tiles := make([]Tile, 0, r.Width()*r.Height())
	for y := r.Max.Y - 1; y >= r.Min.Y; y-- {
		for x := r.Min.X; x < r.Max.X; x++ {
			tiles = append(tiles, m.Resolve(world.Vec{X: x, Y: y}))
		}
	}
	return tiles
}

// ResolveChunk resolves every tile of the given chunk, using the grid's
// chunk size
func (m *TileMap) ResolveChunk(chunk world.Vec) []Tile {
	return m.ResolveRect(ChunkBounds(chunk, m.grid.ChunkSize()))
}
