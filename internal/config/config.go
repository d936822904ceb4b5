package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk application configuration.
type Config struct {
	Window Window `yaml:"window"`
	World  World  `yaml:"world"`
	Assets Assets `yaml:"assets"`
	Log    Log    `yaml:"log"`
}

// Window controls the GL window and projection.
type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	FOV    float32 `yaml:"fov"`
	VSync  bool    `yaml:"vsync"`

	// FPSLimit caps the frame rate; 0 leaves it to vsync.
	FPSLimit int `yaml:"fps_limit"`
}

// Assets points at the block table and texture atlas.
type Assets struct {
	// BlockRegistry is a YAML block table. Empty uses the built in table.
	BlockRegistry string `yaml:"block_registry"`
	// TextureAtlas is a png, bmp or webp image. Empty generates flat colours.
	TextureAtlas   string `yaml:"texture_atlas"`
	AtlasImageSize int    `yaml:"atlas_image_size"`
	AtlasCellSize  int    `yaml:"atlas_cell_size"`
}

// Log selects the log level.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns a configuration that runs out of the box.
func Default() Config {
	return Config{
		Window: Window{
			Width:  900,
			Height: 600,
			Title:  "blockworld",
			FOV:    90,
			VSync:  true,
		},
		World: DefaultWorld(),
		Assets: Assets{
			AtlasImageSize: 256,
			AtlasCellSize:  16,
		},
		Log: Log{Level: "info"},
	}
}

// LoadFile reads path over the defaults. A missing path returns the
// defaults unchanged.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes YAML over the defaults and validates the result.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FOV <= 0 || c.Window.FOV >= 180 {
		return fmt.Errorf("%w: fov %v", ErrInvalid, c.Window.FOV)
	}
	if c.Window.FPSLimit < 0 {
		return fmt.Errorf("%w: fps limit %d", ErrInvalid, c.Window.FPSLimit)
	}
	if err := c.World.Validate(); err != nil {
		return err
	}
	a := c.Assets
	if a.AtlasCellSize <= 0 || a.AtlasImageSize <= 0 || a.AtlasImageSize%a.AtlasCellSize != 0 {
		return fmt.Errorf("%w: atlas %dpx with %dpx cells", ErrInvalid, a.AtlasImageSize, a.AtlasCellSize)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name.
func (l Log) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
}
