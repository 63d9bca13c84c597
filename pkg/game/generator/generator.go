// Package generator builds a world from a seed: Poisson-disk hotspots joined
// by a spanning tree of bezier paths stamped into a lazily classified tile map.
package generator

import (
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/bitmask"
	"lostoppai/pkg/game/config"
	"lostoppai/pkg/game/terrain"
)

// WorldGenerator is an interface for world generation pipelines
type WorldGenerator interface {
	Generate(cfg *config.Config) (*World, error)
	Name() string
}

// World is the result of generation. Tile queries must only be issued after
// Generate returns.
type World struct {
	Seed     int64
	Tiles    *terrain.TileMap
	Hotspots []mgl64.Vec2
	Edges    []Edge
	Stamped  int // cells paved by path stamping
}

// HotspotTiles returns the hotspots rounded to tile coordinates
func (w *World) HotspotTiles() []world.Vec {
	out := make([]world.Vec, len(w.Hotspots))
	for i, p := range w.Hotspots {
		out[i] = toVec(p)
	}
	return out
}

// Query returns the resolved state of tile v
func (w *World) Query(v world.Vec) terrain.Tile {
	return w.Tiles.Resolve(v)
}

// Option customises a HotspotGenerator
type Option func(*HotspotGenerator)

// WithLogger sets the logger used for generation diagnostics
func WithLogger(l *log.Logger) Option {
	return func(g *HotspotGenerator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithResolver sets the sprite variant resolver
func WithResolver(r *bitmask.Resolver) Option {
	return func(g *HotspotGenerator) {
		g.resolver = r
	}
}

// WithClassifier replaces the noise classifier
func WithClassifier(c terrain.Classifier) Option {
	return func(g *HotspotGenerator) {
		g.classifier = c
	}
}

// HotspotGenerator generates worlds around Poisson-disk hotspots
type HotspotGenerator struct {
	logger     *log.Logger
	resolver   *bitmask.Resolver
	classifier terrain.Classifier
}

// New creates a hotspot generator
func New(opts ...Option) *HotspotGenerator {
	g := &HotspotGenerator{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the name of this generator
func (g *HotspotGenerator) Name() string {
	return "Hotspot Paths"
}

func (g *HotspotGenerator) resolverFor(cfg *config.Config) *bitmask.Resolver {
	if g.resolver != nil {
		return g.resolver
	}
	if seed, ok := cfg.VariantSeed(); ok {
		return bitmask.NewSeededResolver(seed)
	}
	return bitmask.DefaultResolver()
}

// Generate runs the full pipeline: sample hotspots, connect them, stamp the
// paths. It fails only on invalid configuration.
func (g *HotspotGenerator) Generate(cfg *config.Config) (*World, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}
	seed := cfg.World.Seed

	classifier := g.classifier
	if classifier == nil {
		classifier = terrain.NewNoiseClassifier(seed, cfg.Terrain)
	}
	tiles := terrain.NewTileMap(world.NewGrid(cfg.World.ChunkSize), classifier, g.resolverFor(cfg))

	sampler, err := NewPoissonSampler(PoissonFromConfig(seed, cfg.Hotspots))
	if err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}
	w := &World{
		Seed:     seed,
		Tiles:    tiles,
		Hotspots: sampler.Sample(),
	}

	w.Edges, err = BuildMST(w.Hotspots)
	if err != nil {
		g.logger.Printf("seed %d: %v; world has no paths", seed, err)
	}

	rng := rand.New(rand.NewSource(seed))
	stamper := NewPathStamper(tiles, seed, cfg.Paths)
	for _, e := range w.Edges {
		curve := NewCurve(w.Hotspots[e.A], w.Hotspots[e.B], rng)
		w.Stamped += stamper.Stamp(curve)
	}

	g.logger.Printf("seed %d: %d hotspots, %d edges, %d cells stamped", seed, len(w.Hotspots), len(w.Edges), w.Stamped)
	return w, nil
}

// DefaultGenerator is the default world generator
var DefaultGenerator WorldGenerator = New()

// Generate builds a world with a generator configured by opts
func Generate(cfg *config.Config, opts ...Option) (*World, error) {
	return New(opts...).Generate(cfg)
}
