package bitmask

// Shape is the collider spawned for a tile.
type Shape int

// Shape constants
const (
	ShapeNone Shape = iota
	ShapeRectTop
	ShapeRectBottom
	ShapeRectLeft
	ShapeRectRight
	ShapeTriTopLeft
	ShapeTriTopRight
	ShapeTriBottomLeft
	ShapeTriBottomRight
)

// String returns the string representation of a shape
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "None"
	case ShapeRectTop:
		return "RectTop"
	case ShapeRectBottom:
		return "RectBottom"
	case ShapeRectLeft:
		return "RectLeft"
	case ShapeRectRight:
		return "RectRight"
	case ShapeTriTopLeft:
		return "TriTopLeft"
	case ShapeTriTopRight:
		return "TriTopRight"
	case ShapeTriBottomLeft:
		return "TriBottomLeft"
	case ShapeTriBottomRight:
		return "TriBottomRight"
	default:
		return "Unknown"
	}
}

// IsRect returns true for the four edge rectangles
func (s Shape) IsRect() bool {
	return s >= ShapeRectTop && s <= ShapeRectRight
}

// IsTriangle returns true for the four corner triangles
func (s Shape) IsTriangle() bool {
	return s >= ShapeTriTopLeft && s <= ShapeTriBottomRight
}

// collisionTable is indexed by the water mask (set bit = water corner).
// Diagonal pairs and full water get no collider: a single shape cannot cover
// two disjoint corners, and fully wet tiles are enclosed by their shore.
var collisionTable = [MaskCount]Shape{
	0b0000: ShapeNone,
	0b0001: ShapeTriTopRight,
	0b0010: ShapeTriBottomRight,
	0b0011: ShapeRectRight,
	0b0100: ShapeTriBottomLeft,
	0b0101: ShapeNone,
	0b0110: ShapeRectBottom,
	0b0111: ShapeRectBottom, // dry top-left
	0b1000: ShapeTriTopLeft,
	0b1001: ShapeRectTop,
	0b1010: ShapeNone,
	0b1011: ShapeRectTop, // dry bottom-left
	0b1100: ShapeRectLeft,
	0b1101: ShapeRectTop,    // dry bottom-right
	0b1110: ShapeRectBottom, // dry top-right
	0b1111: ShapeNone,
}

// CollisionShape maps a water mask to its collider
func CollisionShape(water Mask) Shape {
	return collisionTable[water&MaskFull]
}
