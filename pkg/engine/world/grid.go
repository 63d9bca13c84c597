package world

// DefaultChunkSize is the growth increment used when a grid is built with a
// non-positive chunk size
const DefaultChunkSize = 32

// MaxCoord bounds both axes of the plane. Coordinates with |x| or |y| above
// it read as Empty and ignore writes, so quadrant indices never overflow.
const MaxCoord = 1 << 20

// Quadrant numbers returned by QuadrantOf
const (
	QuadrantNE = 1 // x >= 0, y >= 0
	QuadrantNW = 2 // x < 0, y >= 0
	QuadrantSW = 3 // x < 0, y < 0
	QuadrantSE = 4 // x >= 0, y < 0
)

// Grid is an unbounded tile plane backed by four dense quadrant arrays.
// It is not safe for concurrent use.
type Grid struct {
	quadrants [4]quadrant
	chunkSize int
}

// NewGrid creates an empty grid that grows chunkSize rows or columns at a time
func NewGrid(chunkSize int) *Grid {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Grid{chunkSize: chunkSize}
}

// ChunkSize returns the growth increment of the grid
func (g *Grid) ChunkSize() int {
	return g.chunkSize
}

// QuadrantOf returns the quadrant (1-4) owning v. Zero counts as non-negative.
func QuadrantOf(v Vec) int {
	switch {
	case v.X >= 0 && v.Y >= 0:
		return QuadrantNE
	case v.X < 0 && v.Y >= 0:
		return QuadrantNW
	case v.X < 0:
		return QuadrantSW
	default:
		return QuadrantSE
	}
}

// InBounds reports whether v lies on the addressable plane
func InBounds(v Vec) bool {
	return v.X >= -MaxCoord && v.X <= MaxCoord && v.Y >= -MaxCoord && v.Y <= MaxCoord
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (g *Grid) quadrantFor(v Vec) *quadrant {
	return &g.quadrants[QuadrantOf(v)-1]
}

// GetCell returns the cell at v. Unallocated coordinates read as an Empty,
// unresolved cell and do not grow the grid.
func (g *Grid) GetCell(v Vec) Cell {
	if !InBounds(v) {
		return NewCell()
	}
	c, _ := g.quadrantFor(v).get(abs(v.X), abs(v.Y))
	return c
}

// IsAllocated checks if v is backed by quadrant storage
func (g *Grid) IsAllocated(v Vec) bool {
	if !InBounds(v) {
		return false
	}
	_, ok := g.quadrantFor(v).get(abs(v.X), abs(v.Y))
	return ok
}

func (g *Grid) cell(v Vec) *Cell {
	return g.quadrantFor(v).at(abs(v.X), abs(v.Y), g.chunkSize)
}

// TypeAt returns the terrain family at v
func (g *Grid) TypeAt(v Vec) TileType {
	return g.GetCell(v).Type
}

// SetType applies a land or water family to v and reports whether the cell
// changed. Empty cells take any family; Grass is upgraded to Path; Water and
// Path are never overwritten and nothing returns to Empty. A change drops the
// memoized sprites of every tile using v as a corner.
func (g *Grid) SetType(v Vec, t TileType) bool {
	if t == Empty || !InBounds(v) {
		return false
	}
	cur := g.TypeAt(v)
	switch {
	case cur == Empty:
	case cur == Grass && t == Path:
	default:
		return false
	}
	g.cell(v).Type = t
	g.invalidateAround(v)
	return true
}

// SetWater marks v as water unconditionally
func (g *Grid) SetWater(v Vec) {
	if !InBounds(v) {
		return
	}
	c := g.cell(v)
	if c.Type == Water {
		return
	}
	c.Type = Water
	g.invalidateAround(v)
}

// SetIndex memoizes the resolved tile sprite for the tile at v
func (g *Grid) SetIndex(v Vec, index int) {
	if InBounds(v) {
		g.cell(v).Index = index
	}
}

// SetOverlay memoizes the resolved overlay sprite for the tile at v
func (g *Grid) SetOverlay(v Vec, index int) {
	if InBounds(v) {
		g.cell(v).Overlay = index
	}
}

func (g *Grid) invalidateAround(v Vec) {
	for _, t := range TilesSharing(v) {
		if !g.IsAllocated(t) {
			continue
		}
		c := g.cell(t)
		c.Index = InvalidIndex
		c.Overlay = InvalidIndex
	}
}

// Extent returns the allocated width and height of quadrant q (1-4)
func (g *Grid) Extent(q int) (width, height int) {
	if q < QuadrantNE || q > QuadrantSE {
		return 0, 0
	}
	quad := &g.quadrants[q-1]
	return quad.width, len(quad.rows)
}

// Allocated returns the number of cells backed by quadrant storage
func (g *Grid) Allocated() int {
	n := 0
	for i := range g.quadrants {
		n += g.quadrants[i].width * len(g.quadrants[i].rows)
	}
	return n
}

// ForEachCell iterates over every coordinate of r row by row, top row first,
// calling the provided function for each
func (g *Grid) ForEachCell(r Rect, fn func(v Vec, cell Cell)) {
	for y := r.Max.Y - 1; y >= r.Min.Y; y-- {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := Vec{X: x, Y: y}
			fn(v, g.GetCell(v))
		}
	}
}

// Count returns how many coordinates of r carry the given family
func (g *Grid) Count(r Rect, t TileType) int {
	n := 0
	g.ForEachCell(r, func(_ Vec, cell Cell) {
		if cell.Type == t {
			n++
		}
	})
	return n
}
