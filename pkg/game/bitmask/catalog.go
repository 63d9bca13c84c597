package bitmask

import "lostoppai/pkg/engine/world"

// InvalidIndex is the sprite returned for masks a catalog cannot resolve.
const InvalidIndex = world.InvalidIndex

// Sprite-sheet layout. The terrain sheet stores the grass/water transitions
// first, then the path/grass transitions, then the flower decorations.
const (
	WaterStill = 0 // four still-water variants: 0..3
	GrassFull  = 18

	pathSheetOffset = 32
	PathFull        = 47 // three worn-path variants: 47..49

	NoOverlay        = 63 // transparent cell
	flowerFullOffset = 64 // four meadow variants: 64..67
	flowerTuftOffset = 68 // four single-corner tufts: 68..71
)

// Family names a catalog's terrain family.
type Family int

// Family constants
const (
	FamilyGrass Family = iota
	FamilyPath
	FamilyFlower
)

// String returns the string representation of a family
func (f Family) String() string {
	switch f {
	case FamilyGrass:
		return "grass"
	case FamilyPath:
		return "path"
	case FamilyFlower:
		return "flower"
	default:
		return "unknown"
	}
}

// Catalog is an immutable mask-to-sprite table. Masks without an entry fall
// back to the MaskNone entry.
type Catalog struct {
	family  Family
	entries [MaskCount][]int
	present [MaskCount]bool
}

func newCatalog(f Family, entries map[Mask][]int) *Catalog {
	c := &Catalog{family: f}
	for m, sprites := range entries {
		c.entries[m&MaskFull] = append([]int(nil), sprites...)
		c.present[m&MaskFull] = true
	}
	return c
}

// Family returns the terrain family this catalog resolves
func (c *Catalog) Family() Family {
	return c.family
}

// Has checks if m has an exact entry
func (c *Catalog) Has(m Mask) bool {
	return c.present[m&MaskFull]
}

// Candidates returns the equally valid sprites for m, falling back to the
// MaskNone entry when m has none. The result must not be modified.
func (c *Catalog) Candidates(m Mask) []int {
	m &= MaskFull
	if c.present[m] && len(c.entries[m]) > 0 {
		return c.entries[m]
	}
	return c.entries[MaskNone]
}

// Grass resolves grass/water blob transitions; a set bit is a land corner.
var Grass = newCatalog(FamilyGrass, map[Mask][]int{
	0b0000: {WaterStill, WaterStill + 1, WaterStill + 2, WaterStill + 3},
	0b0001: {4},
	0b0010: {5},
	0b0011: {6},
	0b0100: {7},
	0b0101: {8},
	0b0110: {9},
	0b0111: {10},
	0b1000: {11},
	0b1001: {12},
	0b1010: {13},
	0b1011: {14},
	0b1100: {15},
	0b1101: {16},
	0b1110: {17},
	0b1111: {GrassFull},
})

// Path resolves path/grass transitions; a set bit is a path corner. The
// MaskNone entry is plain grass.
var Path = func() *Catalog {
	entries := map[Mask][]int{
		0b0000: {GrassFull},
		0b1111: {PathFull, PathFull + 1, PathFull + 2},
	}
	for m := Mask(1); m < MaskFull; m++ {
		entries[m] = []int{pathSheetOffset + int(m)}
	}
	return newCatalog(FamilyPath, entries)
}()

// Flower resolves the decoration overlay; a set bit is a flowering grass
// corner. Only full meadows and single-corner tufts have sprites, every other
// mask falls back to NoOverlay.
var Flower = newCatalog(FamilyFlower, map[Mask][]int{
	0b0000: {NoOverlay},
	0b0001: {flowerTuftOffset},
	0b0010: {flowerTuftOffset + 1},
	0b0100: {flowerTuftOffset + 2},
	0b1000: {flowerTuftOffset + 3},
	0b1111: {flowerFullOffset, flowerFullOffset + 1, flowerFullOffset + 2, flowerFullOffset + 3},
})

// ForFamily returns the built-in catalog of a family, or nil
func ForFamily(f Family) *Catalog {
	switch f {
	case FamilyGrass:
		return Grass
	case FamilyPath:
		return Path
	case FamilyFlower:
		return Flower
	default:
		return nil
	}
}
