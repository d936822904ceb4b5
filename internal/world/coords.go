package world

import (
	"blockworld/internal/world/gen"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ChunkSize   = gen.ChunkSize
	ChunkArea   = ChunkSize * ChunkSize
	ChunkVolume = ChunkArea * ChunkSize
	WaterLevel  = gen.WaterLevel
)

// ChunkPos identifies a chunk column.
type ChunkPos struct {
	X, Z int
}

// SectionPos identifies one 16-cube section of a column.
type SectionPos struct {
	X, Y, Z int
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChunkXZ returns the column holding world block (x, z).
func ChunkXZ(x, z int) ChunkPos {
	return ChunkPos{X: floorDiv(x, ChunkSize), Z: floorDiv(z, ChunkSize)}
}

// BlockXZ returns the position of world block (x, z) inside its column.
func BlockXZ(x, z int) (int, int) {
	return mod(x, ChunkSize), mod(z, ChunkSize)
}

// chunkOf returns the column containing a world space point.
func chunkOf(p mgl32.Vec3) ChunkPos {
	return ChunkXZ(int(math.Floor(float64(p.X()))), int(math.Floor(float64(p.Z()))))
}

func inSection(x, y, z int) bool {
	return x >= 0 && x < ChunkSize &&
		y >= 0 && y < ChunkSize &&
		z >= 0 && z < ChunkSize
}

// sectionIndex flattens in-section coordinates, y major then z then x.
// Callers route out of range coordinates elsewhere first; reaching here
// with one is a bug.
func sectionIndex(x, y, z int) int {
	if !inSection(x, y, z) {
		panic(fmt.Sprintf("world: section index out of range (%d, %d, %d)", x, y, z))
	}
	return y*ChunkArea + z*ChunkSize + x
}
