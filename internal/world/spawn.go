package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	spawnChunkMin = 100
	spawnChunkMax = 200
)

// FindSpawnPoint picks a random column far from the origin whose surface is
// above the generator's minimum spawn height, then loads the 3x3 chunks
// around it. If no column qualifies within the configured number of
// attempts, the tallest column seen is used.
func (w *World) FindSpawnPoint() mgl32.Vec3 {
	w.mu.Lock()
	defer w.mu.Unlock()

	minHeight := w.chunks.TerrainGenerator().MinimumSpawnHeight()

	var cx, cz, bx, bz, h, attempts int
	found := false

	// tallest rejected column, used if nothing qualifies
	best := -1
	var bestCX, bestCZ, bestBX, bestBZ int

	for attempts < w.spawnAttempts {
		attempts++
		cx = w.randomInRange(spawnChunkMin, spawnChunkMax)
		cz = w.randomInRange(spawnChunkMin, spawnChunkMax)
		bx = w.randomInRange(0, ChunkSize-1)
		bz = w.randomInRange(0, ChunkSize-1)

		w.chunks.LoadChunk(cx, cz)
		h = w.chunks.GetChunk(cx, cz).HeightAt(bx, bz)
		if h > minHeight {
			found = true
			break
		}
		if h > best {
			best, bestCX, bestCZ, bestBX, bestBZ = h, cx, cz, bx, bz
		}
		w.chunks.UnloadChunk(cx, cz)
	}

	if !found {
		cx, cz, bx, bz = bestCX, bestCZ, bestBX, bestBZ
		w.chunks.LoadChunk(cx, cz)
		h = w.chunks.GetChunk(cx, cz).HeightAt(bx, bz)
		w.log.Warn("no spawn column above minimum height", "attempts", attempts, "min_height", minHeight, "height", h)
	}

	w.spawnPoint = mgl32.Vec3{
		float32(cx*ChunkSize + bx),
		float32(h + 1),
		float32(cz*ChunkSize + bz),
	}
	for x := cx - 1; x <= cx+1; x++ {
		for z := cz - 1; z <= cz+1; z++ {
			w.chunks.LoadChunk(x, z)
		}
	}

	w.log.Info("spawn point chosen", "attempts", attempts, "chunk_x", cx, "chunk_z", cz, "height", h)
	return w.spawnPoint
}

// SpawnPoint returns the last point chosen by FindSpawnPoint.
func (w *World) SpawnPoint() mgl32.Vec3 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spawnPoint
}

func (w *World) randomInRange(lo, hi int) int {
	return lo + w.rand.Intn(hi-lo+1)
}
