package generator

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"lostoppai/pkg/engine/world"
)

// Curve is a cubic Bezier from P1 to P2 bent by C1 and C2.
type Curve struct {
	P1, C1, C2, P2 mgl64.Vec2
}

// NewCurve joins p1 and p2 with control points drawn uniformly inside their
// bounding box
func NewCurve(p1, p2 mgl64.Vec2, rng *rand.Rand) Curve {
	return Curve{
		P1: p1,
		C1: randomInBox(p1, p2, rng),
		C2: randomInBox(p1, p2, rng),
		P2: p2,
	}
}

func randomInBox(a, b mgl64.Vec2, rng *rand.Rand) mgl64.Vec2 {
	minX, maxX := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	minY, maxY := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return mgl64.Vec2{
		minX + rng.Float64()*(maxX-minX),
		minY + rng.Float64()*(maxY-minY),
	}
}

// Point evaluates the curve at t in [0, 1]
func (c Curve) Point(t float64) mgl64.Vec2 {
	u := 1 - t
	return c.P1.Mul(u * u * u).
		Add(c.C1.Mul(3 * t * u * u)).
		Add(c.C2.Mul(3 * t * t * u)).
		Add(c.P2.Mul(t * t * t))
}

// Length returns the straight-line distance between the endpoints
func (c Curve) Length() float64 {
	return c.P2.Sub(c.P1).Len()
}

// SampleCount returns how many samples to take along c at rate samples per
// unit of endpoint distance, never fewer than one
func SampleCount(c Curve, rate float64) int {
	n := int(math.Ceil(c.Length() * rate))
	if n < 1 {
		return 1
	}
	return n
}

// Samples returns n points of the curve at t = i/n for i in [0, n)
func (c Curve) Samples(n int) []mgl64.Vec2 {
	if n <= 0 {
		return nil
	}
	points := make([]mgl64.Vec2, n)
	for i := range points {
		points[i] = c.Point(float64(i) / float64(n))
	}
	return points
}

// Rasterize returns the samples of c rounded to integer coordinates
func (c Curve) Rasterize(n int) []world.Vec {
	samples := c.Samples(n)
	out := make([]world.Vec, len(samples))
	for i, p := range samples {
		out[i] = toVec(p)
	}
	return out
}

func toVec(p mgl64.Vec2) world.Vec {
	return world.Vec{X: int(math.Round(p.X())), Y: int(math.Round(p.Y()))}
}
