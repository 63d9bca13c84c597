package terrain

import (
	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/bitmask"
)

// TileMap answers sprite, overlay and collider queries over a grid,
// classifying coordinates on first use and memoizing resolved sprites.
// It is not safe for concurrent use.
type TileMap struct {
	grid       *world.Grid
	classifier Classifier
	resolver   *bitmask.Resolver
}

// NewTileMap wraps grid with lazy classification and sprite resolution
func NewTileMap(grid *world.Grid, classifier Classifier, resolver *bitmask.Resolver) *TileMap {
	if resolver == nil {
		resolver = bitmask.DefaultResolver()
	}
	return &TileMap{
		grid:       grid,
		classifier: classifier,
		resolver:   resolver,
	}
}

// Grid returns the backing grid
func (m *TileMap) Grid() *world.Grid {
	return m.grid
}

// Classify returns the terrain family of v, consulting the classifier the
// first time an Empty coordinate is seen
func (m *TileMap) Classify(v world.Vec) world.TileType {
	if t := m.grid.TypeAt(v); t != world.Empty {
		return t
	}
	if m.classifier.IsWater(v) {
		m.grid.SetWater(v)
		return world.Water
	}
	m.grid.SetType(v, world.Grass)
	return world.Grass
}

// IsWater checks if v is classified as water
func (m *TileMap) IsWater(v world.Vec) bool {
	return m.Classify(v) == world.Water
}

// SetType stamps a family onto v. Water already on the map is never replaced.
func (m *TileMap) SetType(v world.Vec, t world.TileType) bool {
	return m.grid.SetType(v, t)
}

func (m *TileMap) classifyCorners(v world.Vec) [4]world.TileType {
	var types [4]world.TileType
	for i, c := range world.Corners(v) {
		types[i] = m.Classify(c)
	}
	return types
}

func maskWhere(types [4]world.TileType, pred func(world.TileType) bool) bitmask.Mask {
	return bitmask.MaskOf(pred(types[0]), pred(types[1]), pred(types[2]), pred(types[3]))
}

// Mask returns the catalog family and corner mask of tile v. Tiles touching
// a path corner use the path catalog keyed by path corners; all others use
// the grass catalog keyed by land corners.
func (m *TileMap) Mask(v world.Vec) (bitmask.Family, bitmask.Mask) {
	types := m.classifyCorners(v)
	if paths := maskWhere(types, func(t world.TileType) bool { return t == world.Path }); paths != bitmask.MaskNone {
		return bitmask.FamilyPath, paths
	}
	return bitmask.FamilyGrass, maskWhere(types, world.TileType.IsLand)
}

// Tile returns the sprite index of tile v, resolving and memoizing it on the
// first query
func (m *TileMap) Tile(v world.Vec) int {
	family, mask := m.Mask(v)
	if c := m.grid.GetCell(v); c.Resolved() {
		return c.Index
	}
	index := m.resolver.Resolve(bitmask.ForFamily(family), mask)
	m.grid.SetIndex(v, index)
	return index
}

// Overlay returns the decoration sprite drawn above tile v. Only tiles with
// four plain grass corners can carry flowers.
func (m *TileMap) Overlay(v world.Vec) int {
	types := m.classifyCorners(v)
	if c := m.grid.GetCell(v); c.Overlay != world.InvalidIndex {
		return c.Overlay
	}
	index := bitmask.NoOverlay
	if maskWhere(types, func(t world.TileType) bool { return t == world.Grass }) == bitmask.MaskFull {
		flowers := bitmask.FromCorners(v, m.classifier.HasFlowers)
		index = m.resolver.Resolve(bitmask.Flower, flowers)
	}
	m.grid.SetOverlay(v, index)
	return index
}

// WaterMask returns the corners of tile v that are water
func (m *TileMap) WaterMask(v world.Vec) bitmask.Mask {
	return maskWhere(m.classifyCorners(v), func(t world.TileType) bool { return t == world.Water })
}

// Collision returns the collider of tile v. It is recomputed on every call.
func (m *TileMap) Collision(v world.Vec) bitmask.Shape {
	return bitmask.CollisionShape(m.WaterMask(v))
}
