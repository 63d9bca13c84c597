package bitmask

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lostoppai/pkg/engine/world"
)

func TestMaskOf(t *testing.T) {
	assert.Equal(t, MaskNone, MaskOf(false, false, false, false))
	assert.Equal(t, MaskFull, MaskOf(true, true, true, true))
	assert.Equal(t, BitTopRight, MaskOf(true, false, false, false))
	assert.Equal(t, BitBottomRight, MaskOf(false, true, false, false))
	assert.Equal(t, BitBottomLeft, MaskOf(false, false, true, false))
	assert.Equal(t, BitTopLeft, MaskOf(false, false, false, true))
	assert.Equal(t, Mask(0b1111), MaskFull)
	assert.Equal(t, "0b0101", Mask(0b0101).String())
	assert.Equal(t, Mask(0b1010), Mask(0b0101).Invert())
	assert.Equal(t, 3, Mask(0b1011).Count())
}

func TestFromCorners(t *testing.T) {
	v := world.V(4, -2)
	// Only the top-right vertex (5,-1) qualifies
	m := FromCorners(v, func(c world.Vec) bool { return c == world.V(5, -1) })
	assert.Equal(t, BitTopRight, m)

	// Bottom-left is the tile origin itself
	m = FromCorners(v, func(c world.Vec) bool { return c == v })
	assert.Equal(t, BitBottomLeft, m)
}

func TestCatalogs_CoverEveryMask(t *testing.T) {
	for _, cat := range []*Catalog{Grass, Path, Flower} {
		for m := Mask(0); m < MaskCount; m++ {
			assert.NotEmpty(t, cat.Candidates(m), "%s catalog has no candidates for %v", cat.Family(), m)
		}
	}
}

func TestCatalogs_GrassAndPathAreExhaustive(t *testing.T) {
	for m := Mask(0); m < MaskCount; m++ {
		assert.True(t, Grass.Has(m), "grass catalog missing %v", m)
		assert.True(t, Path.Has(m), "path catalog missing %v", m)
	}
}

func TestCatalog_FullLandHasSingleTile(t *testing.T) {
	require.Len(t, Grass.Candidates(MaskFull), 1)
	assert.Equal(t, GrassFull, Grass.Candidates(MaskFull)[0])
	assert.Equal(t, GrassFull, NewSeededResolver(1).Resolve(Grass, MaskFull))
}

func TestCatalog_FlowerFallsBackToEmptyEntry(t *testing.T) {
	assert.False(t, Flower.Has(0b0011))
	assert.Equal(t, []int{NoOverlay}, Flower.Candidates(0b0011))
	assert.Equal(t, NoOverlay, NewSeededResolver(1).Resolve(Flower, 0b0110))
}

func TestCatalog_DistinctTransitionSprites(t *testing.T) {
	seen := map[int]Mask{}
	for m := Mask(1); m < MaskFull; m++ {
		c := Grass.Candidates(m)
		require.Len(t, c, 1)
		prev, dup := seen[c[0]]
		assert.False(t, dup, "masks %v and %v share sprite %d", prev, m, c[0])
		seen[c[0]] = m
	}
}

func TestResolver_EmptyCatalogReturnsInvalid(t *testing.T) {
	r := NewSeededResolver(3)
	empty := newCatalog(FamilyGrass, nil)
	assert.Equal(t, InvalidIndex, r.Resolve(empty, MaskFull))
	assert.Equal(t, InvalidIndex, r.Resolve(nil, MaskNone))
}

func TestResolver_SeededIsReproducible(t *testing.T) {
	a := NewResolver(rand.NewSource(42))
	b := NewResolver(rand.NewSource(42))
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.Resolve(Grass, MaskNone), b.Resolve(Grass, MaskNone))
	}
}

func TestResolver_DrawsAllVariants(t *testing.T) {
	r := NewSeededResolver(7)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		idx := r.Resolve(Path, MaskFull)
		assert.Contains(t, Path.Candidates(MaskFull), idx)
		seen[idx] = true
	}
	assert.Len(t, seen, len(Path.Candidates(MaskFull)))
}

func TestCollisionShape_TruthTable(t *testing.T) {
	want := map[Mask]Shape{
		0b0000: ShapeNone,
		0b0001: ShapeTriTopRight,
		0b0010: ShapeTriBottomRight,
		0b0100: ShapeTriBottomLeft,
		0b1000: ShapeTriTopLeft,
		0b1001: ShapeRectTop,
		0b0110: ShapeRectBottom,
		0b1100: ShapeRectLeft,
		0b0011: ShapeRectRight,
		0b0101: ShapeNone,
		0b1010: ShapeNone,
		0b0111: ShapeRectBottom,
		0b1110: ShapeRectBottom,
		0b1011: ShapeRectTop,
		0b1101: ShapeRectTop,
		0b1111: ShapeNone,
	}
	require.Len(t, want, MaskCount)
	for m, shape := range want {
		assert.Equal(t, shape, CollisionShape(m), "CollisionShape(%v)", m)
	}
}

func TestCollisionShape_SingleCornerIsTriangleAtThatCorner(t *testing.T) {
	for _, c := range world.AllCorners() {
		shape := CollisionShape(Mask(1) << c)
		assert.True(t, shape.IsTriangle(), "corner %v gave %v", c, shape)
	}
}

func TestCollisionShape_UsesNineShapes(t *testing.T) {
	seen := map[Shape]bool{}
	for m := Mask(0); m < MaskCount; m++ {
		seen[CollisionShape(m)] = true
	}
	assert.Len(t, seen, 9)
}
