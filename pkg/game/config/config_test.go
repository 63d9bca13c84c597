package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	_, ok := cfg.VariantSeed()
	assert.False(t, ok)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "world.yaml", `
world:
  seed: 1234
hotspots:
  radius: 20
tiles:
  variantSeed: 9
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.EqualValues(t, 1234, cfg.World.Seed)
	assert.Equal(t, 20.0, cfg.Hotspots.Radius)
	assert.Equal(t, Default().Hotspots.Width, cfg.Hotspots.Width, "unset fields keep defaults")

	seed, ok := cfg.VariantSeed()
	assert.True(t, ok)
	assert.EqualValues(t, 9, seed)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "world.json", `{"world": {"seed": 77, "chunkSize": 16}, "paths": {"sampleRate": 1.5}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 77, cfg.World.Seed)
	assert.Equal(t, 16, cfg.World.ChunkSize)
	assert.Equal(t, 1.5, cfg.Paths.SampleRate)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "bad.yaml", "hotspots:\n  radius: -3\n")
	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "error %v is not a ConfigError", err)
	assert.Equal(t, "hotspots.radius", cfgErr.Field)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "broken.json", "{not json")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		field string
		mut   func(*Config)
	}{
		{"chunk size", "world.chunkSize", func(c *Config) { c.World.ChunkSize = 0 }},
		{"zero attempts", "hotspots.attempts", func(c *Config) { c.Hotspots.Attempts = 0 }},
		{"zero region", "hotspots.width/height", func(c *Config) { c.Hotspots.Height = 0 }},
		{"zero sample rate", "paths.sampleRate", func(c *Config) { c.Paths.SampleRate = 0 }},
		{"negative radius", "paths radii", func(c *Config) { c.Paths.MinRadius = -1 }},
		{"inverted path radius", "paths.maxRadius", func(c *Config) { c.Paths.MaxRadius = 1 }},
		{"inverted grass radius", "paths.maxGrassRadius", func(c *Config) { c.Paths.MaxGrassRadius = 2 }},
		{"grass inside path", "paths grass radii", func(c *Config) { c.Paths.MinGrassRadius = 1 }},
		{"zero zoom", "terrain.zoom", func(c *Config) { c.Terrain.Zoom = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(cfg)
			err := cfg.Validate()
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "Validate() = %v, want ConfigError", err)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}
