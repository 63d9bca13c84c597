// Package bitmask maps 4-corner occupancy patterns to tile sprites and
// collision shapes.
package bitmask

import (
	"strconv"

	"lostoppai/pkg/engine/world"
)

// Mask is a 4-bit corner occupancy pattern.
// bit0 top-right, bit1 bottom-right, bit2 bottom-left, bit3 top-left.
type Mask uint8

// Mask bits
const (
	BitTopRight    Mask = 1 << world.TopRight
	BitBottomRight Mask = 1 << world.BottomRight
	BitBottomLeft  Mask = 1 << world.BottomLeft
	BitTopLeft     Mask = 1 << world.TopLeft

	MaskNone Mask = 0
	MaskFull Mask = BitTopRight | BitBottomRight | BitBottomLeft | BitTopLeft
)

// MaskCount is the number of distinct masks
const MaskCount = 16

// MaskOf builds a mask from per-corner flags
func MaskOf(topRight, bottomRight, bottomLeft, topLeft bool) Mask {
	var m Mask
	if topRight {
		m |= BitTopRight
	}
	if bottomRight {
		m |= BitBottomRight
	}
	if bottomLeft {
		m |= BitBottomLeft
	}
	if topLeft {
		m |= BitTopLeft
	}
	return m
}

// FromCorners evaluates pred on the four corners of tile v
func FromCorners(v world.Vec, pred func(world.Vec) bool) Mask {
	c := world.Corners(v)
	return MaskOf(pred(c[0]), pred(c[1]), pred(c[2]), pred(c[3]))
}

// Has checks if the corner bit is set
func (m Mask) Has(c world.Corner) bool {
	return m&(1<<c) != 0
}

// Invert flips every corner bit
func (m Mask) Invert() Mask {
	return ^m & MaskFull
}

// Count returns the number of set corners
func (m Mask) Count() int {
	n := 0
	for _, c := range world.AllCorners() {
		if m.Has(c) {
			n++
		}
	}
	return n
}

// String renders the mask as a 4-digit binary literal, top-left bit first
func (m Mask) String() string {
	s := strconv.FormatUint(uint64(m&MaskFull), 2)
	for len(s) < 4 {
		s = "0" + s
	}
	return "0b" + s
}
