package world

import (
	"blockworld/internal/block"
	"blockworld/internal/world/gen"
)

// Chunk is a 16x16 column of sections, lowest section first. The stack only
// grows. All methods expect the world lock to be held.
type Chunk struct {
	sections []*ChunkSection
	highest  [ChunkSize][ChunkSize]int
	location ChunkPos
	world    *World
	loaded   bool
}

func newChunk(w *World, x, z int) *Chunk {
	return &Chunk{location: ChunkPos{X: x, Z: z}, world: w}
}

// Location returns the column coordinate.
func (c *Chunk) Location() (int, int) { return c.location.X, c.location.Z }

// Pos returns the column coordinate as a key.
func (c *Chunk) Pos() ChunkPos { return c.location }

// HasLoaded reports whether terrain generation has run.
func (c *Chunk) HasLoaded() bool { return c.loaded }

// SectionCount is the height of the section stack.
func (c *Chunk) SectionCount() int { return len(c.sections) }

// Section returns section i, or nil when the stack is not that tall.
func (c *Chunk) Section(i int) *ChunkSection {
	if i < 0 || i >= len(c.sections) {
		return nil
	}
	return c.sections[i]
}

func (c *Chunk) outOfBound(x, y, z int) bool {
	return x < 0 || x >= ChunkSize ||
		z < 0 || z >= ChunkSize ||
		y < 0 || y >= len(c.sections)*ChunkSize
}

// GetBlock reads a column-local block; anything outside the stack is air.
func (c *Chunk) GetBlock(x, y, z int) block.ID {
	if c.outOfBound(x, y, z) {
		return block.Air
	}
	return c.sections[y/ChunkSize].GetBlock(x, y%ChunkSize, z)
}

// SetBlock writes a column-local block, growing the stack to reach y.
// Writes outside the 16x16 footprint or below zero are dropped.
func (c *Chunk) SetBlock(x, y, z int, id block.ID) {
	if x < 0 || x >= ChunkSize || z < 0 || z >= ChunkSize || y < 0 {
		return
	}
	c.addSectionsBlockTarget(y)
	c.sections[y/ChunkSize].SetBlock(x, y%ChunkSize, z, id)

	h := &c.highest[x][z]
	opaque := c.world.registry.IsOpaque(id)
	switch {
	case y > *h && opaque:
		*h = y
	case y == *h && !opaque:
		*h = c.scanDown(x, y-1, z)
	}
}

// scanDown finds the highest opaque block at or below y, or 0.
func (c *Chunk) scanDown(x, y, z int) int {
	reg := c.world.registry
	for ; y >= 0; y-- {
		if reg.IsOpaque(c.GetBlock(x, y, z)) {
			return y
		}
	}
	return 0
}

// HeightAt returns the highest opaque block of a column, 0 for none.
func (c *Chunk) HeightAt(x, z int) int {
	return c.highest[x][z]
}

func (c *Chunk) addSection() {
	y := len(c.sections)
	c.sections = append(c.sections, newChunkSection(c.world, c.location.X, y, c.location.Z))
}

func (c *Chunk) addSectionsBlockTarget(y int) {
	for idx := y / ChunkSize; len(c.sections) <= idx; {
		c.addSection()
	}
}

// Load runs the generator once per chunk lifetime. If the generator panics
// the column is emptied again so a later Load starts from scratch.
func (c *Chunk) Load(g gen.TerrainGenerator) {
	if c.loaded {
		return
	}
	defer func() {
		if !c.loaded {
			c.reset()
		}
	}()
	g.GenerateTerrainFor(c)
	c.loaded = true
}

func (c *Chunk) reset() {
	c.DeleteMeshes()
	c.sections = nil
	c.highest = [ChunkSize][ChunkSize]int{}
}

// MakeMesh builds the first unmeshed section visible in f and reports
// whether it did any work.
func (c *Chunk) MakeMesh(f Frustum) bool {
	for _, s := range c.sections {
		if !s.hasMesh && f.IsBoxInFrustum(s.aabb) {
			s.MakeMesh()
			return true
		}
	}
	return false
}

// DeleteMeshes drops all section meshes.
func (c *Chunk) DeleteMeshes() {
	for _, s := range c.sections {
		s.DeleteMeshes()
	}
}

// drawSections uploads any fresh geometry and submits visible sections.
func (c *Chunk) drawSections(r Renderer, f Frustum) {
	for _, s := range c.sections {
		if !s.hasMesh {
			continue
		}
		if !s.hasBufferedMesh {
			s.BufferMesh(r)
		}
		if f.IsBoxInFrustum(s.aabb) {
			r.DrawSection(s)
		}
	}
}
