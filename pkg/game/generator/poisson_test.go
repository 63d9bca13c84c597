package generator

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"lostoppai/pkg/game/config"
)

func checkSeparation(t *testing.T, points []mgl64.Vec2, radius float64) {
	t.Helper()
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			dist := points[i].Sub(points[j]).Len()
			if dist+1e-9 < radius {
				t.Fatalf("points %d and %d too close: %.4f < %.4f", i, j, dist, radius)
			}
		}
	}
}

func TestPoissonSampler_Scenario(t *testing.T) {
	s, err := NewPoissonSampler(PoissonConfig{Radius: 35, Width: 150, Height: 150, Attempts: 30, Seed: 60})
	if err != nil {
		t.Fatalf("NewPoissonSampler: %v", err)
	}
	points := s.Sample()
	if len(points) == 0 {
		t.Fatal("Sample() returned no points")
	}
	if points[0] != (mgl64.Vec2{0, 0}) {
		t.Errorf("first point = %v, want region centre (0,0)", points[0])
	}
	checkSeparation(t, points, 35)
	for i, p := range points {
		if p.X() < -75 || p.X() >= 75 || p.Y() < -75 || p.Y() >= 75 {
			t.Errorf("point %d = %v outside the centred 150x150 region", i, p)
		}
	}
}

func TestPoissonSampler_Deterministic(t *testing.T) {
	cfg := PoissonConfig{Radius: 12, Width: 200, Height: 120, Attempts: 30, Seed: 42}
	a, _ := NewPoissonSampler(cfg)
	b, _ := NewPoissonSampler(cfg)
	pa, pb := a.Sample(), b.Sample()
	if len(pa) != len(pb) {
		t.Fatalf("point counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("determinism failure at index %d: %v vs %v", i, pa[i], pb[i])
		}
	}

	// Resampling restarts from the seed
	again := a.Sample()
	if len(again) != len(pa) || again[len(again)-1] != pa[len(pa)-1] {
		t.Error("second Sample() call did not reproduce the first")
	}
}

func TestPoissonSampler_SeedChangesLayout(t *testing.T) {
	a, _ := NewPoissonSampler(PoissonConfig{Radius: 10, Width: 100, Height: 100, Attempts: 30, Seed: 1})
	b, _ := NewPoissonSampler(PoissonConfig{Radius: 10, Width: 100, Height: 100, Attempts: 30, Seed: 2})
	pa, pb := a.Sample(), b.Sample()
	same := len(pa) == len(pb)
	for i := 1; same && i < len(pa); i++ {
		same = pa[i] == pb[i]
	}
	if same {
		t.Error("different seeds produced identical point sets")
	}
}

func TestPoissonSampler_DenseSeparation(t *testing.T) {
	s, _ := NewPoissonSampler(PoissonConfig{Radius: 4, Width: 90, Height: 60, Attempts: 20, Seed: 7})
	points := s.Sample()
	checkSeparation(t, points, 4)

	// Bridson fills the region: expect close to area / (r² * ~1.5) points
	minExpected := int(math.Floor(90 * 60 / (math.Pi * 4 * 4)))
	if len(points) < minExpected {
		t.Errorf("got %d points, want at least %d for a filled region", len(points), minExpected)
	}
}

func TestNewPoissonSampler_RejectsBadConfig(t *testing.T) {
	cases := []PoissonConfig{
		{Radius: 0, Width: 10, Height: 10, Attempts: 5},
		{Radius: -1, Width: 10, Height: 10, Attempts: 5},
		{Radius: 1, Width: 0, Height: 10, Attempts: 5},
		{Radius: 1, Width: 10, Height: -10, Attempts: 5},
		{Radius: 1, Width: 10, Height: 10, Attempts: 0},
		{Radius: math.NaN(), Width: 10, Height: 10, Attempts: 5},
	}
	for _, cfg := range cases {
		_, err := NewPoissonSampler(cfg)
		var cfgErr *config.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("NewPoissonSampler(%+v) error = %v, want ConfigError", cfg, err)
		}
	}
}
