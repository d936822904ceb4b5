package world

import (
	"blockworld/internal/block"
	"blockworld/internal/meshing"
	"blockworld/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkSection is a 16x16x16 cube of blocks and the meshes built from it.
// All methods expect the world lock to be held.
type ChunkSection struct {
	blocks [ChunkVolume]block.ID
	layers [ChunkSize]Layer
	meshes meshing.Collection

	aabb     physics.AABB
	location SectionPos
	world    *World

	hasMesh         bool
	hasBufferedMesh bool
}

func newChunkSection(w *World, x, y, z int) *ChunkSection {
	s := &ChunkSection{
		location: SectionPos{X: x, Y: y, Z: z},
		world:    w,
		aabb:     physics.NewAABB(mgl32.Vec3{ChunkSize, ChunkSize, ChunkSize}),
	}
	s.aabb.Update(s.Origin())
	return s
}

// Location returns the section coordinate (chunk x, section y, chunk z).
func (s *ChunkSection) Location() SectionPos { return s.location }

// Origin is the world position of the section's minimum corner.
func (s *ChunkSection) Origin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(s.location.X * ChunkSize),
		float32(s.location.Y * ChunkSize),
		float32(s.location.Z * ChunkSize),
	}
}

// AABB is the world space box covered by the section.
func (s *ChunkSection) AABB() physics.AABB { return s.aabb }

// GetBlock reads a block by section-local coordinate. Coordinates outside
// the section are resolved through the world.
func (s *ChunkSection) GetBlock(x, y, z int) block.ID {
	if !inSection(x, y, z) {
		wx, wy, wz := s.toWorld(x, y, z)
		return s.world.getBlock(wx, wy, wz)
	}
	return s.blocks[sectionIndex(x, y, z)]
}

// SetBlock writes a block by section-local coordinate. Coordinates outside
// the section are written through the world.
func (s *ChunkSection) SetBlock(x, y, z int, id block.ID) {
	if !inSection(x, y, z) {
		wx, wy, wz := s.toWorld(x, y, z)
		s.world.setBlock(wx, wy, wz, id)
		return
	}

	i := sectionIndex(x, y, z)
	reg := s.world.registry
	s.layers[y].update(reg.IsOpaque(s.blocks[i]), reg.IsOpaque(id))
	s.blocks[i] = id
}

func (s *ChunkSection) toWorld(x, y, z int) (int, int, int) {
	return s.location.X*ChunkSize + x,
		s.location.Y*ChunkSize + y,
		s.location.Z*ChunkSize + z
}

// Layer returns the opacity counter of slice y. y = -1 reads the top slice
// of the section below and y = 16 the bottom slice of the section above;
// missing sections report an empty layer.
func (s *ChunkSection) Layer(y int) Layer {
	switch {
	case y == -1:
		return s.neighbourLayer(s.location.Y-1, ChunkSize-1)
	case y == ChunkSize:
		return s.neighbourLayer(s.location.Y+1, 0)
	case y < -1 || y > ChunkSize:
		panic("world: layer out of range")
	}
	return s.layers[y]
}

func (s *ChunkSection) neighbourLayer(sectionY, y int) Layer {
	c := s.world.chunks.GetChunk(s.location.X, s.location.Z)
	if n := c.Section(sectionY); n != nil {
		return n.layers[y]
	}
	return Layer{}
}

// Adjacent returns the section at the same height in the column offset by
// (dx, dz), or nil when that column is not that tall.
func (s *ChunkSection) Adjacent(dx, dz int) *ChunkSection {
	c := s.world.chunks.GetChunk(s.location.X+dx, s.location.Z+dz)
	return c.Section(s.location.Y)
}

// HasMesh reports whether CPU geometry has been built.
func (s *ChunkSection) HasMesh() bool { return s.hasMesh }

// HasBufferedMesh reports whether the geometry has been handed to the renderer.
func (s *ChunkSection) HasBufferedMesh() bool { return s.hasBufferedMesh }

// Meshes exposes the solid, liquid and flora meshes.
func (s *ChunkSection) Meshes() *meshing.Collection { return &s.meshes }

// MakeMesh rebuilds the section geometry. The previous renderer handles stay
// valid until BufferMesh replaces them.
func (s *ChunkSection) MakeMesh() {
	newMeshBuilder(s).build()
	s.hasMesh = true
	s.hasBufferedMesh = false
}

// BufferMesh uploads the pending geometry. Must run on the render thread.
func (s *ChunkSection) BufferMesh(u meshing.Uploader) {
	for _, m := range s.meshes.All() {
		m.Upload(u)
	}
	s.hasBufferedMesh = true
}

// DeleteMeshes drops geometry and renderer handles.
func (s *ChunkSection) DeleteMeshes() {
	if !s.hasMesh && !s.hasBufferedMesh {
		return
	}
	for _, m := range s.meshes.All() {
		m.Release()
	}
	s.hasMesh = false
	s.hasBufferedMesh = false
}
