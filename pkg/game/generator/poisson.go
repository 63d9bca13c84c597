package generator

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"lostoppai/pkg/game/config"
)

// PoissonConfig controls hotspot density and the sampling region.
type PoissonConfig struct {
	Radius   float64 // minimum separation between points
	Width    float64
	Height   float64
	Attempts int // candidates tried around an active point before it retires
	Seed     int64
}

// PoissonSampler generates well-separated points with Bridson's algorithm.
type PoissonSampler struct {
	config   PoissonConfig
	rng      *rand.Rand
	cellSize float64
	cols     int
	rows     int
	cells    []int // point index per background cell, -1 when empty
	points   []mgl64.Vec2
}

// NewPoissonSampler validates cfg and creates a sampler
func NewPoissonSampler(cfg PoissonConfig) (*PoissonSampler, error) {
	if !(cfg.Radius > 0) {
		return nil, &config.ConfigError{Field: "hotspots.radius", Reason: "must be positive"}
	}
	if !(cfg.Width > 0) || !(cfg.Height > 0) {
		return nil, &config.ConfigError{Field: "hotspots.width/height", Reason: "must be positive"}
	}
	if cfg.Attempts <= 0 {
		return nil, &config.ConfigError{Field: "hotspots.attempts", Reason: "must be positive"}
	}

	cellSize := cfg.Radius / math.Sqrt2
	return &PoissonSampler{
		config:   cfg,
		cellSize: cellSize,
		cols:     int(math.Ceil(cfg.Width / cellSize)),
		rows:     int(math.Ceil(cfg.Height / cellSize)),
	}, nil
}

// Sample runs the sampler to completion and returns the points shifted so
// that the region centre is the origin. The first point is always the
// centre. Each call restarts from the seed.
func (s *PoissonSampler) Sample() []mgl64.Vec2 {
	s.rng = rand.New(rand.NewSource(s.config.Seed))
	s.points = s.points[:0]
	s.cells = make([]int, s.cols*s.rows)
	for i := range s.cells {
		s.cells[i] = -1
	}

	first := mgl64.Vec2{s.config.Width / 2, s.config.Height / 2}
	s.insert(first)
	active := []int{0}

	for len(active) > 0 {
		slot := s.rng.Intn(len(active))
		origin := s.points[active[slot]]

		accepted := false
		for attempt := 0; attempt < s.config.Attempts; attempt++ {
			candidate := s.candidateAround(origin)
			if s.fits(candidate) {
				s.insert(candidate)
				active = append(active, len(s.points)-1)
				accepted = true
				break
			}
		}

		if !accepted {
			// Retire the active point
			active[slot] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	centre := first
	out := make([]mgl64.Vec2, len(s.points))
	for i, p := range s.points {
		out[i] = p.Sub(centre)
	}
	return out
}

// candidateAround draws a point in the annulus [r, 2r) around origin
func (s *PoissonSampler) candidateAround(origin mgl64.Vec2) mgl64.Vec2 {
	r := s.config.Radius
	angle := s.rng.Float64() * 2 * math.Pi
	dist := r + s.rng.Float64()*r
	return origin.Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(dist))
}

func (s *PoissonSampler) cellOf(p mgl64.Vec2) (int, int) {
	return int(p.X() / s.cellSize), int(p.Y() / s.cellSize)
}

// fits checks bounds and scans the 5x5 window of background cells around p
func (s *PoissonSampler) fits(p mgl64.Vec2) bool {
	if p.X() < 0 || p.X() >= s.config.Width || p.Y() < 0 || p.Y() >= s.config.Height {
		return false
	}
	cx, cy := s.cellOf(p)
	rSq := s.config.Radius * s.config.Radius
	for y := cy - 2; y <= cy+2; y++ {
		if y < 0 || y >= s.rows {
			continue
		}
		for x := cx - 2; x <= cx+2; x++ {
			if x < 0 || x >= s.cols {
				continue
			}
			idx := s.cells[y*s.cols+x]
			if idx < 0 {
				continue
			}
			if d := p.Sub(s.points[idx]); d.Dot(d) < rSq {
				return false
			}
		}
	}
	return true
}

func (s *PoissonSampler) insert(p mgl64.Vec2) {
	cx, cy := s.cellOf(p)
	s.points = append(s.points, p)
	s.cells[cy*s.cols+cx] = len(s.points) - 1
}

// PoissonFromConfig maps the hotspot config section onto sampler parameters
func PoissonFromConfig(seed int64, h config.HotspotConfig) PoissonConfig {
	return PoissonConfig{
		Radius:   h.Radius,
		Width:    h.Width,
		Height:   h.Height,
		Attempts: h.Attempts,
		Seed:     seed,
	}
}
