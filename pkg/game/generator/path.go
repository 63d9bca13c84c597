package generator

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/config"
	"lostoppai/pkg/game/terrain"
)

// PathStamper widens rasterized curves into path tiles with a grass verge.
type PathStamper struct {
	tiles         *terrain.TileMap
	first, second opensimplex.Noise
	cfg           config.PathConfig
}

// NewPathStamper creates a stamper writing into tiles. The radius noise is
// seeded from seed+2 and seed+3 so it does not correlate with the terrain.
func NewPathStamper(tiles *terrain.TileMap, seed int64, cfg config.PathConfig) *PathStamper {
	return &PathStamper{
		tiles:  tiles,
		first:  opensimplex.New(seed + 2),
		second: opensimplex.New(seed + 3),
		cfg:    cfg,
	}
}

// widthAt returns the radius factor in [0, 1] at v
func (s *PathStamper) widthAt(v world.Vec) float64 {
	x := float64(v.X) * s.cfg.NoiseZoom
	y := float64(v.Y) * s.cfg.NoiseZoom
	n := (s.first.Eval2(x, y) + s.second.Eval2(x, y)) / 2
	return math.Max(0, math.Min(1, (n+1)/2))
}

// Radii returns the path core and grass verge radius at v
func (s *PathStamper) Radii(v world.Vec) (core, verge float64) {
	t := s.widthAt(v)
	core = s.cfg.MinRadius + t*(s.cfg.MaxRadius-s.cfg.MinRadius)
	verge = s.cfg.MinGrassRadius + t*(s.cfg.MaxGrassRadius-s.cfg.MinGrassRadius)
	return core, verge
}

// Stamp writes c into the tile map and returns how many cells were paved.
// Cells inside the verge are classified first; water is left untouched and
// land becomes grass, upgraded to path inside the core.
func (s *PathStamper) Stamp(c Curve) int {
	changed := 0
	for _, centre := range c.Rasterize(SampleCount(c, s.cfg.SampleRate)) {
		changed += s.StampPoint(centre)
	}
	return changed
}

// StampPoint writes one disc of path and verge centred on v and returns how
// many cells it paved
func (s *PathStamper) StampPoint(v world.Vec) int {
	core, verge := s.Radii(v)
	coreSq, vergeSq := core*core, verge*verge
	reach := int(math.Ceil(verge))

	changed := 0
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			d := float64(dx*dx + dy*dy)
			if d >= vergeSq {
				continue
			}
			cell := world.Vec{X: v.X + dx, Y: v.Y + dy}
			// The classifier decides first so lakes are never paved
			if s.tiles.IsWater(cell) {
				continue
			}
			if d < coreSq && s.tiles.SetType(cell, world.Path) {
				changed++
			}
		}
	}
	return changed
}
