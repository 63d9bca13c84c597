// Package terrain resolves the lazily classified tile plane: water versus
// land from seeded noise, then sprites and colliders from corner masks.
package terrain

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/config"
)

// Classifier decides the natural terrain of a coordinate. Implementations
// must be pure: the same coordinate always yields the same answer.
type Classifier interface {
	IsWater(v world.Vec) bool
	HasFlowers(v world.Vec) bool
}

// NoiseClassifier classifies coordinates from two decorrelated simplex octaves.
type NoiseClassifier struct {
	first, second   opensimplex.Noise
	flowers         opensimplex.Noise
	zoom            float64
	threshold       float64
	flowerZoom      float64
	flowerThreshold float64
}

// NewNoiseClassifier builds a classifier for the given world seed
func NewNoiseClassifier(seed int64, cfg config.TerrainConfig) *NoiseClassifier {
	return &NoiseClassifier{
		first:           opensimplex.New(seed),
		second:          opensimplex.New(seed + 1),
		flowers:         opensimplex.NewNormalized(seed + 4),
		zoom:            cfg.Zoom,
		threshold:       cfg.WaterThreshold,
		flowerZoom:      cfg.FlowerZoom,
		flowerThreshold: cfg.FlowerThreshold,
	}
}

// Height returns the summed two-octave noise at v, in [-2, 2]
func (n *NoiseClassifier) Height(v world.Vec) float64 {
	x := float64(v.X) * n.zoom
	y := float64(v.Y) * n.zoom
	return n.first.Eval2(x, y) + n.second.Eval2(x, y)
}

// IsWater checks if the noise height at v falls below the water threshold
func (n *NoiseClassifier) IsWater(v world.Vec) bool {
	return n.Height(v) < n.threshold
}

// HasFlowers checks if v lies in a flower patch
func (n *NoiseClassifier) HasFlowers(v world.Vec) bool {
	return n.flowers.Eval2(float64(v.X)*n.flowerZoom, float64(v.Y)*n.flowerZoom) > n.flowerThreshold
}

// ClassifierFunc adapts a water predicate to a Classifier without flowers.
type ClassifierFunc func(v world.Vec) bool

// IsWater calls f(v)
func (f ClassifierFunc) IsWater(v world.Vec) bool {
	return f(v)
}

// HasFlowers always returns false
func (f ClassifierFunc) HasFlowers(world.Vec) bool {
	return false
}
