package world

// Corner identifies one of the four grid vertices that bound a tile.
// Tile v spans the vertices v (bottom-left) through v+(1,1) (top-right).
type Corner int

// Corner constants, in mask bit order
const (
	TopRight Corner = iota
	BottomRight
	BottomLeft
	TopLeft
)

// AllCorners returns all corners in mask bit order for iteration
func AllCorners() []Corner {
	return []Corner{TopRight, BottomRight, BottomLeft, TopLeft}
}

// String returns the string representation of a corner
func (c Corner) String() string {
	switch c {
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	case TopLeft:
		return "TopLeft"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the corner is one of the four tile corners
func (c Corner) IsValid() bool {
	return c >= TopRight && c <= TopLeft
}

// Opposite returns the diagonally opposite corner
func (c Corner) Opposite() Corner {
	switch c {
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	case BottomRight:
		return TopLeft
	case TopLeft:
		return BottomRight
	default:
		return c
	}
}

// Offset returns the vertex offset of this corner relative to the tile origin
func (c Corner) Offset() Vec {
	switch c {
	case TopRight:
		return Vec{X: 1, Y: 1}
	case BottomRight:
		return Vec{X: 1, Y: 0}
	case BottomLeft:
		return Vec{X: 0, Y: 0}
	case TopLeft:
		return Vec{X: 0, Y: 1}
	default:
		return Vec{}
	}
}

// Corners returns the four corner vertices of tile v in mask bit order
func Corners(v Vec) [4]Vec {
	return [4]Vec{
		v.Add(TopRight.Offset()),
		v.Add(BottomRight.Offset()),
		v.Add(BottomLeft.Offset()),
		v.Add(TopLeft.Offset()),
	}
}

// TilesSharing returns the four tiles that use vertex v as one of their corners
func TilesSharing(v Vec) [4]Vec {
	return [4]Vec{
		v,
		{X: v.X - 1, Y: v.Y},
		{X: v.X, Y: v.Y - 1},
		{X: v.X - 1, Y: v.Y - 1},
	}
}
