package world

import "fmt"

// Vec is a signed integer coordinate on the tile plane.
// X grows to the east and Y grows to the north.
type Vec struct {
	X, Y int
}

// V is shorthand for Vec{X: x, Y: y}
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v+o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// LenSq returns the squared euclidean length of v
func (v Vec) LenSq() int {
	return v.X*v.X + v.Y*v.Y
}

// String returns the "x,y" form used in dumps and log lines
func (v Vec) String() string {
	return fmt.Sprintf("%d,%d", v.X, v.Y)
}

// Rect is an inclusive-exclusive rectangle of coordinates [Min, Max).
type Rect struct {
	Min, Max Vec
}

// Contains checks if v lies inside r
func (r Rect) Contains(v Vec) bool {
	return v.X >= r.Min.X && v.X < r.Max.X && v.Y >= r.Min.Y && v.Y < r.Max.Y
}

// Width returns the number of columns in r
func (r Rect) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns the number of rows in r
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y
}

// Around returns the square of side 2*radius+1 centred on c
func Around(c Vec, radius int) Rect {
	return Rect{
		Min: Vec{X: c.X - radius, Y: c.Y - radius},
		Max: Vec{X: c.X + radius + 1, Y: c.Y + radius + 1},
	}
}
