package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestChunkAndBlockXZ(t *testing.T) {
	tests := []struct {
		x, z           int
		chunk          ChunkPos
		blockX, blockZ int
	}{
		{20, 5, ChunkPos{1, 0}, 4, 5},
		{0, 0, ChunkPos{0, 0}, 0, 0},
		{15, 16, ChunkPos{0, 1}, 15, 0},
		{-1, -16, ChunkPos{-1, -1}, 15, 0},
		{-17, -33, ChunkPos{-2, -3}, 15, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.chunk, ChunkXZ(tt.x, tt.z), "chunk of (%d, %d)", tt.x, tt.z)
		bx, bz := BlockXZ(tt.x, tt.z)
		assert.Equal(t, tt.blockX, bx, "block x of %d", tt.x)
		assert.Equal(t, tt.blockZ, bz, "block z of %d", tt.z)
	}
}

func TestChunkOfFloorsNegativePositions(t *testing.T) {
	assert.Equal(t, ChunkPos{-1, 0}, chunkOf(mgl32.Vec3{-0.5, 70, 3}))
	assert.Equal(t, ChunkPos{0, -1}, chunkOf(mgl32.Vec3{15.99, 0, -0.01}))
}

func TestSectionIndexPanicsOutOfRange(t *testing.T) {
	assert.Equal(t, 0, sectionIndex(0, 0, 0))
	assert.Equal(t, ChunkVolume-1, sectionIndex(15, 15, 15))
	assert.Equal(t, 1*ChunkArea+2*ChunkSize+3, sectionIndex(3, 1, 2))
	assert.Panics(t, func() { sectionIndex(16, 0, 0) })
	assert.Panics(t, func() { sectionIndex(0, -1, 0) })
}

func TestForEachInRing(t *testing.T) {
	centre := ChunkPos{3, -2}
	for r := 0; r <= 4; r++ {
		seen := map[ChunkPos]bool{}
		forEachInRing(centre, r, func(x, z int) bool {
			p := ChunkPos{x, z}
			assert.False(t, seen[p], "ring %d visits %v twice", r, p)
			seen[p] = true
			assert.Equal(t, r, chebyshev(p, centre))
			return false
		})
		want := 1
		if r > 0 {
			want = 8 * r
		}
		assert.Len(t, seen, want, "ring %d", r)
	}
}

func TestForEachInRingStopsEarly(t *testing.T) {
	calls := 0
	forEachInRing(ChunkPos{}, 3, func(x, z int) bool {
		calls++
		return calls == 5
	})
	assert.Equal(t, 5, calls)
}
