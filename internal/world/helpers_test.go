package world

import (
	"blockworld/internal/block"
	"blockworld/internal/config"
	"blockworld/internal/meshing"
	"blockworld/internal/physics"
	"blockworld/internal/registry"
	"blockworld/internal/world/gen"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// emptyGenerator leaves every chunk as air.
type emptyGenerator struct{}

func (emptyGenerator) GenerateTerrainFor(gen.Chunk) {}

func (emptyGenerator) MinimumSpawnHeight() int { return 0 }

// flakyGenerator leaves a stray leaf high in the column and panics on its
// first call. Later calls lay superflat terrain.
type flakyGenerator struct {
	gen.SuperFlatGenerator
	calls atomic.Int32
}

func (g *flakyGenerator) GenerateTerrainFor(c gen.Chunk) {
	if g.calls.Add(1) == 1 {
		c.SetBlock(0, 40, 0, block.OakLeaf)
		panic("terrain generation failed")
	}
	g.SuperFlatGenerator.GenerateTerrainFor(c)
}

// fakeViewer sees everything.
type fakeViewer struct {
	pos mgl32.Vec3
}

func (v fakeViewer) Position() mgl32.Vec3           { return v.pos }
func (fakeViewer) IsBoxInFrustum(physics.AABB) bool { return true }

type fakeHandle struct {
	released *atomic.Int32
}

func (h fakeHandle) Release() { h.released.Add(1) }

// fakeRenderer counts uploads, releases and draws.
type fakeRenderer struct {
	uploads  int
	draws    int
	released atomic.Int32
}

func (r *fakeRenderer) Upload(meshing.Buffer) meshing.Handle {
	r.uploads++
	return fakeHandle{released: &r.released}
}

func (r *fakeRenderer) DrawSection(*ChunkSection) { r.draws++ }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestWorld(tb testing.TB, g gen.TerrainGenerator, opts ...func(*config.World)) *World {
	tb.Helper()
	reg, err := registry.Default()
	if err != nil {
		tb.Fatalf("registry: %v", err)
	}
	cfg := config.DefaultWorld()
	for _, o := range opts {
		o(&cfg)
	}
	return New(cfg, reg, g, WithLogger(discardLogger()))
}
