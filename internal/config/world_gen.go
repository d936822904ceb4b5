package config

import "fmt"

// Generator names a terrain generator.
type Generator string

const (
	GeneratorClassic   Generator = "classic"
	GeneratorSuperFlat Generator = "superflat"
)

// Render distance bounds, in chunks.
const (
	MinRenderDistance = 2
	MaxRenderDistance = 32
)

// World holds world generation and streaming settings.
type World struct {
	Seed           int32     `yaml:"seed"`
	Generator      Generator `yaml:"generator"`
	RenderDistance int       `yaml:"render_distance"`
	// LoaderThreads is the number of background streaming loops.
	LoaderThreads int `yaml:"loader_threads"`
	// StartLoadDistance is the ring radius streaming restarts from.
	StartLoadDistance int `yaml:"start_load_distance"`
	// SpawnAttempts bounds the random spawn column search.
	SpawnAttempts int `yaml:"spawn_attempts"`
}

// DefaultWorld returns the stock world settings.
func DefaultWorld() World {
	return World{
		Seed:              6835,
		Generator:         GeneratorClassic,
		RenderDistance:    8,
		LoaderThreads:     1,
		StartLoadDistance: 2,
		SpawnAttempts:     1000,
	}
}

// Validate checks the world settings.
func (w World) Validate() error {
	switch w.Generator {
	case GeneratorClassic, GeneratorSuperFlat:
	default:
		return fmt.Errorf("%w: generator %q", ErrInvalid, w.Generator)
	}
	if w.RenderDistance < MinRenderDistance || w.RenderDistance > MaxRenderDistance {
		return fmt.Errorf("%w: render distance %d not in [%d,%d]", ErrInvalid, w.RenderDistance, MinRenderDistance, MaxRenderDistance)
	}
	if w.LoaderThreads < 1 || w.LoaderThreads > 8 {
		return fmt.Errorf("%w: loader threads %d not in [1,8]", ErrInvalid, w.LoaderThreads)
	}
	if w.StartLoadDistance < 1 || w.StartLoadDistance > w.RenderDistance {
		return fmt.Errorf("%w: start load distance %d", ErrInvalid, w.StartLoadDistance)
	}
	if w.SpawnAttempts < 1 {
		return fmt.Errorf("%w: spawn attempts %d", ErrInvalid, w.SpawnAttempts)
	}
	return nil
}
