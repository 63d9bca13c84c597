// Package world provides generic 2D tile-plane primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileType is the terrain family flag stored per coordinate.
type TileType uint8

// TileType constants
const (
	Empty TileType = iota // not visited yet
	Water
	Grass
	Path
)

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Water:
		return "Water"
	case Grass:
		return "Grass"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}

// IsLand returns true for the walkable families
func (t TileType) IsLand() bool {
	return t == Grass || t == Path
}

// InvalidIndex marks a sprite index that has not been resolved.
const InvalidIndex = -1

// Cell is a single coordinate of the tile plane.
type Cell struct {
	// Terrain family; Empty until the coordinate is classified or stamped
	Type TileType

	// Resolved sprite-sheet index of the tile whose bottom-left corner is this
	// coordinate, or InvalidIndex
	Index int

	// Resolved decoration overlay index, or InvalidIndex
	Overlay int
}

// NewCell returns an unvisited cell
func NewCell() Cell {
	return Cell{Type: Empty, Index: InvalidIndex, Overlay: InvalidIndex}
}

// Resolved returns true if the tile sprite has been memoized
func (c Cell) Resolved() bool {
	return c.Index != InvalidIndex
}

// Classified returns true once the coordinate has a terrain family
func (c Cell) Classified() bool {
	return c.Type != Empty
}
