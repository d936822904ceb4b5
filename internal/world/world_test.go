package world

import (
	"blockworld/internal/block"
	"blockworld/internal/config"
	"blockworld/internal/registry"
	"blockworld/internal/world/gen"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldSetGetBlock(t *testing.T) {
	w := newTestWorld(t, emptyGenerator{})

	w.SetBlock(20, 5, -3, block.Stone)
	assert.Equal(t, block.Stone, w.GetBlock(20, 5, -3))
	assert.True(t, w.ChunkExistsAt(1, -1))

	w.WithLock(func(m *ChunkManager) {
		assert.Equal(t, block.Stone, m.GetChunk(1, -1).GetBlock(4, 5, 13))
	})
	assert.Equal(t, 5, w.HeightAt(20, -3))
	assert.Equal(t, block.Air, w.GetBlock(-500, 70, 12))
}

func TestWorldSetGetBlockWholeSection(t *testing.T) {
	w := newTestWorld(t, emptyGenerator{})
	ids := []block.ID{block.Stone, block.Dirt, block.Water, block.OakLeaf, block.Sand, block.Air}
	r := rand.New(rand.NewSource(7))

	// section (-2, 1, 3) spans x -32..-17, y 16..31, z 48..63
	want := make(map[[3]int]block.ID, ChunkVolume)
	for x := -32; x < -16; x++ {
		for y := 16; y < 32; y++ {
			for z := 48; z < 64; z++ {
				id := ids[r.Intn(len(ids))]
				w.SetBlock(x, y, z, id)
				want[[3]int{x, y, z}] = id
			}
		}
	}
	require.Len(t, want, ChunkVolume)
	for p, id := range want {
		assert.Equal(t, id, w.GetBlock(p[0], p[1], p[2]), "block %v", p)
	}
}

func TestWorldBottomLayerIsFixed(t *testing.T) {
	w := newTestWorld(t, gen.SuperFlatGenerator{})
	w.LoadChunk(0, 0)

	w.SetBlock(3, 0, 3, block.Air)
	assert.Equal(t, block.Stone, w.GetBlock(3, 0, 3))
	w.SetBlock(3, -4, 3, block.Dirt)
	assert.Equal(t, block.Air, w.GetBlock(3, -4, 3))

	w.SetBlock(3, 1, 3, block.Stone)
	assert.Equal(t, block.Stone, w.GetBlock(3, 1, 3))
}

func TestSectionWritesOutsideRouteThroughWorld(t *testing.T) {
	w := newTestWorld(t, emptyGenerator{})
	w.WithLock(func(m *ChunkManager) {
		m.GetChunk(0, 0).SetBlock(0, 20, 0, block.Dirt)
		s := m.GetChunk(0, 0).Section(1)

		s.SetBlock(-1, 4, 0, block.Sand)
		s.SetBlock(3, 16, 3, block.Stone)
		assert.Equal(t, block.Sand, s.GetBlock(-1, 4, 0))
		assert.Equal(t, block.Sand, m.GetChunk(-1, 0).GetBlock(15, 20, 0))
		assert.Equal(t, block.Stone, m.GetChunk(0, 0).GetBlock(3, 32, 3))
		assert.Equal(t, 3, m.GetChunk(0, 0).SectionCount())
	})
}

func TestUpdateChunkSchedulesNeighbours(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z int
		want    []SectionPos
	}{
		{"interior", 5, 5, 5, []SectionPos{{0, 0, 0}}},
		{"x and y faces", 0, 16, 5, []SectionPos{{0, 1, 0}, {-1, 1, 0}, {0, 0, 0}}},
		{"far corner", 15, 15, 15, []SectionPos{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{"negative", -1, 20, -16, []SectionPos{{-1, 1, -1}, {0, 1, -1}, {-1, 1, -2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, emptyGenerator{})
			w.UpdateChunk(tt.x, tt.y, tt.z)
			w.UpdateChunk(tt.x, tt.y, tt.z)

			var got []SectionPos
			w.WithLock(func(*ChunkManager) {
				for pos := range w.chunkUpdates {
					got = append(got, pos)
				}
			})
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestUpdateRebuildsScheduledSections(t *testing.T) {
	w := newTestWorld(t, gen.SuperFlatGenerator{})
	w.LoadChunk(0, 0)

	w.UpdateChunk(5, 2, 5)
	// section above the terrain does not exist and is skipped
	w.UpdateChunk(5, 40, 5)
	require.Equal(t, 2, w.PendingUpdates())

	w.Update()
	assert.Equal(t, 0, w.PendingUpdates())
	w.WithLock(func(m *ChunkManager) {
		assert.True(t, m.GetChunk(0, 0).Section(0).HasMesh())
		assert.Equal(t, 1, m.GetChunk(0, 0).SectionCount())
	})
}

func TestDigEventsAppliedOnUpdate(t *testing.T) {
	w := newTestWorld(t, gen.SuperFlatGenerator{})
	w.LoadChunk(0, 0)

	var broken []block.ID
	w.AddEvent(DigEvent{
		Action:   ActionBreak,
		Position: mgl32.Vec3{3.5, 4.2, 3.5},
		OnBreak:  func(id block.ID) { broken = append(broken, id) },
	})
	w.AddEvent(DigEvent{Action: ActionPlace, Position: mgl32.Vec3{3.1, 5.9, 3.9}, Block: block.Stone})
	w.AddEvent(DigEvent{Action: ActionPlace, Position: mgl32.Vec3{4, 5, 4}, Block: block.Air})
	// unloaded column is ignored
	w.AddEvent(DigEvent{Action: ActionPlace, Position: mgl32.Vec3{1000, 5, 1000}, Block: block.Stone})

	// nothing happens until Update
	assert.Equal(t, block.Grass, w.GetBlock(3, 4, 3))

	w.Update()
	assert.Equal(t, block.Air, w.GetBlock(3, 4, 3))
	assert.Equal(t, block.Stone, w.GetBlock(3, 5, 3))
	assert.Equal(t, []block.ID{block.Grass}, broken)
	assert.False(t, w.ChunkExistsAt(62, 62))

	w.WithLock(func(m *ChunkManager) {
		assert.True(t, m.GetChunk(0, 0).Section(0).HasMesh())
	})

	w.Update()
	assert.Len(t, broken, 1)
}

func TestDigEventNegativeCoordinates(t *testing.T) {
	w := newTestWorld(t, gen.SuperFlatGenerator{})
	w.LoadChunk(-1, -1)

	w.AddEvent(DigEvent{Action: ActionBreak, Position: mgl32.Vec3{-0.5, 4.5, -0.5}})
	w.Update()
	assert.Equal(t, block.Air, w.GetBlock(-1, 4, -1))
}

type pressOnce struct{ pressed bool }

func (p *pressOnce) Pressed() bool {
	if p.pressed {
		p.pressed = false
		return true
	}
	return false
}

func TestReloadTriggerDropsMeshes(t *testing.T) {
	trigger := &pressOnce{}
	reg, err := registry.Default()
	require.NoError(t, err)
	w := New(config.DefaultWorld(), reg, gen.SuperFlatGenerator{}, WithLogger(discardLogger()), WithReloadTrigger(trigger))

	w.WithLock(func(m *ChunkManager) { m.MakeMesh(0, 0, fakeViewer{}) })
	w.loadDistance.Store(6)

	trigger.pressed = true
	w.Update()
	w.WithLock(func(m *ChunkManager) {
		assert.False(t, m.GetChunk(0, 0).Section(0).HasMesh())
	})
	assert.Equal(t, config.DefaultWorld().StartLoadDistance, w.LoadDistance())
}

func TestRenderWorldDrawsAndEvicts(t *testing.T) {
	w := newTestWorld(t, gen.SuperFlatGenerator{}, func(c *config.World) {
		c.RenderDistance = config.MinRenderDistance
	})
	w.WithLock(func(m *ChunkManager) {
		require.True(t, m.MakeMesh(0, 0, fakeViewer{}))
	})
	w.LoadChunk(10, 10)

	r := &fakeRenderer{}
	v := fakeViewer{pos: mgl32.Vec3{8, 10, 8}}
	w.RenderWorld(r, v)

	assert.Equal(t, 1, r.uploads, "only the solid mesh has geometry")
	assert.Equal(t, 1, r.draws)
	assert.False(t, w.ChunkExistsAt(10, 10))
	assert.True(t, w.ChunkLoadedAt(1, 1))

	// evicted columns come back empty and ungenerated
	assert.Equal(t, block.Air, w.GetBlock(10*ChunkSize, 2, 10*ChunkSize))
	assert.False(t, w.ChunkLoadedAt(10, 10))

	// buffered meshes are not uploaded twice
	w.RenderWorld(r, v)
	assert.Equal(t, 1, r.uploads)
	assert.Equal(t, 2, r.draws)

	// moving away releases the uploaded handle
	w.RenderWorld(r, fakeViewer{pos: mgl32.Vec3{1000, 10, 1000}})
	assert.Equal(t, int32(1), r.released.Load())
	assert.False(t, w.ChunkExistsAt(0, 0))
}

func TestFindSpawnPointSuperFlat(t *testing.T) {
	w := newTestWorld(t, gen.SuperFlatGenerator{})
	p := w.FindSpawnPoint()

	assert.Equal(t, float32(5), p.Y())
	cx, cz := int(p.X())/ChunkSize, int(p.Z())/ChunkSize
	assert.GreaterOrEqual(t, cx, spawnChunkMin)
	assert.LessOrEqual(t, cx, spawnChunkMax)
	assert.GreaterOrEqual(t, cz, spawnChunkMin)
	assert.LessOrEqual(t, cz, spawnChunkMax)
	for x := cx - 1; x <= cx+1; x++ {
		for z := cz - 1; z <= cz+1; z++ {
			assert.True(t, w.ChunkLoadedAt(x, z))
		}
	}
	assert.Equal(t, p, w.SpawnPoint())

	again := newTestWorld(t, gen.SuperFlatGenerator{}).FindSpawnPoint()
	assert.Equal(t, p, again, "same seed, same spawn")
}

type unreachableSpawn struct{ gen.SuperFlatGenerator }

func (unreachableSpawn) MinimumSpawnHeight() int { return 1000 }

func TestFindSpawnPointFallsBackToBestColumn(t *testing.T) {
	w := newTestWorld(t, unreachableSpawn{}, func(c *config.World) { c.SpawnAttempts = 5 })
	p := w.FindSpawnPoint()

	assert.Equal(t, float32(5), p.Y())
	c := chunkOf(p)
	assert.True(t, w.ChunkLoadedAt(c.X, c.Z))
	w.WithLock(func(m *ChunkManager) {
		assert.Equal(t, 9, m.Len(), "rejected columns are unloaded")
	})
}

func TestFindSpawnPointClassic(t *testing.T) {
	if testing.Short() {
		t.Skip("generates terrain")
	}
	g := gen.NewClassicOverWorldGenerator(config.DefaultWorld().Seed)
	w := newTestWorld(t, g)
	p := w.FindSpawnPoint()

	assert.Greater(t, int(p.Y())-1, g.MinimumSpawnHeight())
	x, z := int(p.X()), int(p.Z())
	assert.Equal(t, int(p.Y())-1, w.HeightAt(x, z))
	assert.True(t, w.registry.IsOpaque(w.GetBlock(x, int(p.Y())-1, z)))
}
