// Package config holds the tunable world generation parameters.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigError reports a parameter that cannot produce a valid world.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}

// Config captures everything needed to generate a world from a seed.
type Config struct {
	World    WorldConfig   `json:"world" yaml:"world"`
	Hotspots HotspotConfig `json:"hotspots" yaml:"hotspots"`
	Terrain  TerrainConfig `json:"terrain" yaml:"terrain"`
	Paths    PathConfig    `json:"paths" yaml:"paths"`
	Tiles    TileConfig    `json:"tiles" yaml:"tiles"`
}

// WorldConfig holds the world seed and grid layout
type WorldConfig struct {
	Seed      int64 `json:"seed" yaml:"seed"`
	ChunkSize int   `json:"chunkSize" yaml:"chunkSize"` // grid growth and viewport chunk edge, in tiles
}

// HotspotConfig parameterises Poisson-disk hotspot sampling
type HotspotConfig struct {
	Radius   float64 `json:"radius" yaml:"radius"` // minimum hotspot separation
	Width    float64 `json:"width" yaml:"width"`   // sampling region, centred on the origin
	Height   float64 `json:"height" yaml:"height"`
	Attempts int     `json:"attempts" yaml:"attempts"` // candidates per active point
}

// TerrainConfig sets the noise scales and thresholds for water and flowers
type TerrainConfig struct {
	Zoom            float64 `json:"zoom" yaml:"zoom"`
	WaterThreshold  float64 `json:"waterThreshold" yaml:"waterThreshold"` // two-octave sum below this is water
	FlowerZoom      float64 `json:"flowerZoom" yaml:"flowerZoom"`
	FlowerThreshold float64 `json:"flowerThreshold" yaml:"flowerThreshold"` // normalized noise above this flowers
}

// PathConfig controls how edges are rasterized and stamped as paths
type PathConfig struct {
	SampleRate     float64 `json:"sampleRate" yaml:"sampleRate"` // curve samples per tile of edge length
	NoiseZoom      float64 `json:"noiseZoom" yaml:"noiseZoom"`
	MinRadius      float64 `json:"minRadius" yaml:"minRadius"`
	MaxRadius      float64 `json:"maxRadius" yaml:"maxRadius"`
	MinGrassRadius float64 `json:"minGrassRadius" yaml:"minGrassRadius"`
	MaxGrassRadius float64 `json:"maxGrassRadius" yaml:"maxGrassRadius"`
}

// TileConfig controls sprite variant selection
type TileConfig struct {
	// VariantSeed makes sprite variant choice reproducible. Nil draws
	// variants from a clock-seeded generator.
	VariantSeed *int64 `json:"variantSeed,omitempty" yaml:"variantSeed,omitempty"`
}

// Load reads configuration from a YAML or JSON file if provided. An empty
// path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:      60,
			ChunkSize: 32,
		},
		Hotspots: HotspotConfig{
			Radius:   35,
			Width:    150,
			Height:   150,
			Attempts: 30,
		},
		Terrain: TerrainConfig{
			Zoom:            0.02,
			WaterThreshold:  -0.6,
			FlowerZoom:      0.15,
			FlowerThreshold: 0.7,
		},
		Paths: PathConfig{
			SampleRate:     0.5,
			NoiseZoom:      0.1,
			MinRadius:      1.5,
			MaxRadius:      3.0,
			MinGrassRadius: 3.5,
			MaxGrassRadius: 6.0,
		},
	}
}

// VariantSeed returns the configured variant seed and whether one is set
func (c *Config) VariantSeed() (int64, bool) {
	if c.Tiles.VariantSeed == nil {
		return 0, false
	}
	return *c.Tiles.VariantSeed, true
}

// Validate checks every section and returns a *ConfigError naming the first
// invalid field
func (c *Config) Validate() error {
	if c.World.ChunkSize <= 0 {
		return invalid("world.chunkSize", "must be positive")
	}
	if c.Hotspots.Radius <= 0 {
		return invalid("hotspots.radius", "must be positive")
	}
	if c.Hotspots.Width <= 0 || c.Hotspots.Height <= 0 {
		return invalid("hotspots.width/height", "must be positive")
	}
	if c.Hotspots.Attempts <= 0 {
		return invalid("hotspots.attempts", "must be positive")
	}
	if c.Terrain.Zoom <= 0 {
		return invalid("terrain.zoom", "must be positive")
	}
	if c.Terrain.FlowerZoom <= 0 {
		return invalid("terrain.flowerZoom", "must be positive")
	}
	if c.Paths.SampleRate <= 0 {
		return invalid("paths.sampleRate", "must be positive")
	}
	if c.Paths.NoiseZoom <= 0 {
		return invalid("paths.noiseZoom", "must be positive")
	}
	if c.Paths.MinRadius < 0 || c.Paths.MinGrassRadius < 0 {
		return invalid("paths radii", "cannot be negative")
	}
	if c.Paths.MaxRadius < c.Paths.MinRadius {
		return invalid("paths.maxRadius", "must be >= minRadius")
	}
	if c.Paths.MaxGrassRadius < c.Paths.MinGrassRadius {
		return invalid("paths.maxGrassRadius", "must be >= minGrassRadius")
	}
	if c.Paths.MinGrassRadius < c.Paths.MinRadius || c.Paths.MaxGrassRadius < c.Paths.MaxRadius {
		return invalid("paths grass radii", "must enclose the path radii")
	}
	return nil
}
