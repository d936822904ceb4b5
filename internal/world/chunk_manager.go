package world

import (
	"blockworld/internal/block"
	"blockworld/internal/world/gen"
)

// ChunkManager owns the column map and the terrain generator. It has no
// lock of its own; every call must hold the world lock.
type ChunkManager struct {
	chunks    map[ChunkPos]*Chunk
	generator gen.TerrainGenerator
	world     *World
}

func newChunkManager(w *World, g gen.TerrainGenerator) *ChunkManager {
	return &ChunkManager{
		chunks:    make(map[ChunkPos]*Chunk),
		generator: g,
		world:     w,
	}
}

// GetChunk returns the column at (x, z), inserting an empty ungenerated one
// if it is missing.
func (m *ChunkManager) GetChunk(x, z int) *Chunk {
	key := ChunkPos{X: x, Z: z}
	c, ok := m.chunks[key]
	if !ok {
		c = newChunk(m.world, x, z)
		m.chunks[key] = c
	}
	return c
}

// MakeMesh generates the 3x3 neighbourhood of (x, z) and then builds one
// visible section of the centre column.
func (m *ChunkManager) MakeMesh(x, z int, f Frustum) bool {
	defer m.world.profiler.Track("world.MakeMesh")()
	for nx := -1; nx <= 1; nx++ {
		for nz := -1; nz <= 1; nz++ {
			m.LoadChunk(x+nx, z+nz)
		}
	}
	return m.GetChunk(x, z).MakeMesh(f)
}

// LoadChunk generates the column if that has not happened yet.
func (m *ChunkManager) LoadChunk(x, z int) {
	c := m.GetChunk(x, z)
	if c.HasLoaded() {
		return
	}
	defer m.world.profiler.Track("gen.GenerateTerrainFor")()
	c.Load(m.generator)
}

// UnloadChunk forgets the column and releases its meshes.
func (m *ChunkManager) UnloadChunk(x, z int) {
	key := ChunkPos{X: x, Z: z}
	if c, ok := m.chunks[key]; ok {
		c.DeleteMeshes()
		delete(m.chunks, key)
	}
}

// ChunkLoadedAt reports whether the column exists and has been generated.
func (m *ChunkManager) ChunkLoadedAt(x, z int) bool {
	c, ok := m.chunks[ChunkPos{X: x, Z: z}]
	return ok && c.HasLoaded()
}

// ChunkExistsAt reports whether the column is in the map.
func (m *ChunkManager) ChunkExistsAt(x, z int) bool {
	_, ok := m.chunks[ChunkPos{X: x, Z: z}]
	return ok
}

// DeleteMeshes drops the meshes of every column.
func (m *ChunkManager) DeleteMeshes() {
	for _, c := range m.chunks {
		c.DeleteMeshes()
	}
}

// Len is the number of columns in the map.
func (m *ChunkManager) Len() int { return len(m.chunks) }

// TerrainGenerator returns the generator used by LoadChunk.
func (m *ChunkManager) TerrainGenerator() gen.TerrainGenerator { return m.generator }

func (m *ChunkManager) getBlock(x, y, z int) block.ID {
	pos := ChunkXZ(x, z)
	bx, bz := BlockXZ(x, z)
	return m.GetChunk(pos.X, pos.Z).GetBlock(bx, y, bz)
}

func (m *ChunkManager) setBlock(x, y, z int, id block.ID) {
	pos := ChunkXZ(x, z)
	bx, bz := BlockXZ(x, z)
	m.GetChunk(pos.X, pos.Z).SetBlock(bx, y, bz, id)
}
