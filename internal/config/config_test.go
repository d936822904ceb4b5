package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
world:
  seed: 99
  generator: superflat
  render_distance: 12
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, int32(99), cfg.World.Seed)
	assert.Equal(t, GeneratorSuperFlat, cfg.World.Generator)
	assert.Equal(t, 12, cfg.World.RenderDistance)
	assert.Equal(t, 1, cfg.World.LoaderThreads, "unset fields keep defaults")
	assert.Equal(t, 900, cfg.Window.Width)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadEmptyDocument(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("world:\n  sead: 1\n"))
	require.Error(t, err)
}

func TestLoadFileEmptyPath(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window size", func(c *Config) { c.Window.Width = 0 }},
		{"fov", func(c *Config) { c.Window.FOV = 200 }},
		{"fps limit", func(c *Config) { c.Window.FPSLimit = -1 }},
		{"generator", func(c *Config) { c.World.Generator = "caves" }},
		{"render distance low", func(c *Config) { c.World.RenderDistance = 1 }},
		{"render distance high", func(c *Config) { c.World.RenderDistance = 64 }},
		{"loader threads", func(c *Config) { c.World.LoaderThreads = 0 }},
		{"start distance", func(c *Config) { c.World.StartLoadDistance = 20 }},
		{"spawn attempts", func(c *Config) { c.World.SpawnAttempts = 0 }},
		{"atlas", func(c *Config) { c.Assets.AtlasImageSize = 250 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestRenderSettingsClamp(t *testing.T) {
	s := NewRenderSettings(100)
	assert.Equal(t, MaxRenderDistance, s.RenderDistance())

	s.SetRenderDistance(0)
	assert.Equal(t, MinRenderDistance, s.RenderDistance())

	s.SetRenderDistance(8)
	assert.Equal(t, 9, s.AdjustRenderDistance(1))
	assert.Equal(t, MinRenderDistance, s.AdjustRenderDistance(-50))
}
