package gen

import "blockworld/internal/block"

const (
	// ChunkSize is the width, depth and section height of a chunk.
	ChunkSize = 16
	// WaterLevel is the sea surface height.
	WaterLevel = 64
)

// Chunk is the part of a chunk column a generator writes into. Writes
// outside the 16x16 footprint are dropped; writes above the current top
// grow the column.
type Chunk interface {
	SetBlock(x, y, z int, id block.ID)
	Location() (x, z int)
}

// TerrainGenerator fills freshly created chunk columns. Implementations keep
// per-call scratch state and must not be used from several goroutines at
// once.
type TerrainGenerator interface {
	GenerateTerrainFor(c Chunk)
	MinimumSpawnHeight() int
}
