package world

import (
	"blockworld/internal/block"
	"blockworld/internal/meshing"
	"blockworld/internal/registry"
)

// meshBuilder turns one section's blocks into quads.
type meshBuilder struct {
	section *ChunkSection
	reg     *registry.Registry
	atlas   TextureAtlas
}

func newMeshBuilder(s *ChunkSection) *meshBuilder {
	return &meshBuilder{
		section: s,
		reg:     s.world.registry,
		atlas:   s.world.atlas,
	}
}

type faceDir struct {
	face       *[12]float32
	dx, dy, dz int
	light      float32
	texture    func(*registry.Definition) registry.Cell
}

var (
	topTexture    = func(d *registry.Definition) registry.Cell { return d.TexTop }
	sideTexture   = func(d *registry.Definition) registry.Cell { return d.TexSide }
	bottomTexture = func(d *registry.Definition) registry.Cell { return d.TexBottom }

	topDir    = faceDir{&meshing.TopFace, 0, 1, 0, meshing.LightTop, topTexture}
	bottomDir = faceDir{&meshing.BottomFace, 0, -1, 0, meshing.LightBottom, bottomTexture}

	sideDirs = [4]faceDir{
		{&meshing.LeftFace, -1, 0, 0, meshing.LightX, sideTexture},
		{&meshing.RightFace, 1, 0, 0, meshing.LightX, sideTexture},
		{&meshing.FrontFace, 0, 0, 1, meshing.LightZ, sideTexture},
		{&meshing.BackFace, 0, 0, -1, meshing.LightZ, sideTexture},
	}
)

func (b *meshBuilder) build() {
	s := b.section
	for _, m := range s.meshes.All() {
		m.Reset()
	}

	for y := 0; y < ChunkSize; y++ {
		if !b.shouldMakeLayer(y) {
			continue
		}
		for z := 0; z < ChunkSize; z++ {
			for x := 0; x < ChunkSize; x++ {
				id := s.blocks[sectionIndex(x, y, z)]
				if id == block.Air {
					continue
				}
				b.addBlock(b.reg.Get(id), x, y, z)
			}
		}
	}

	for _, m := range s.meshes.All() {
		m.Flush()
	}
}

func (b *meshBuilder) addBlock(def *registry.Definition, x, y, z int) {
	mesh := b.section.meshes.For(def.Shader)

	if def.Mesh == registry.MeshX {
		uv := b.atlas.TextureCoords(def.TexSide)
		mesh.AddFace(&meshing.XFace1, uv, x, y, z, meshing.LightX)
		mesh.AddFace(&meshing.XFace2, uv, x, y, z, meshing.LightX)
		return
	}

	b.tryAddFace(mesh, def, topDir, x, y, z)
	// nothing is ever visible under the bottom of the world
	if b.section.location.Y != 0 || y != 0 {
		b.tryAddFace(mesh, def, bottomDir, x, y, z)
	}
	for _, d := range sideDirs {
		b.tryAddFace(mesh, def, d, x, y, z)
	}
}

func (b *meshBuilder) tryAddFace(mesh *meshing.Mesh, def *registry.Definition, d faceDir, x, y, z int) {
	neighbour := b.section.GetBlock(x+d.dx, y+d.dy, z+d.dz)
	if !b.shouldMakeFace(def, neighbour) {
		return
	}
	mesh.AddFace(d.face, b.atlas.TextureCoords(d.texture(def)), x, y, z, d.light)
}

// shouldMakeFace culls a face against the same block type, and culls a
// see-through block's face against an opaque neighbour.
func (b *meshBuilder) shouldMakeFace(def *registry.Definition, neighbour block.ID) bool {
	switch {
	case neighbour == block.Air:
		return true
	case neighbour == def.ID:
		return false
	case b.reg.IsOpaque(neighbour) && !def.Opaque:
		return false
	}
	return true
}

// shouldMakeLayer reports whether slice y can show any face. A slice is
// hidden only when it, the slices above and below it, and the same slice of
// the four horizontal neighbours are all fully opaque.
func (b *meshBuilder) shouldMakeLayer(y int) bool {
	s := b.section
	adjacentSolid := func(dx, dz int) bool {
		a := s.Adjacent(dx, dz)
		return a != nil && a.Layer(y).IsAllSolid()
	}

	return !s.Layer(y).IsAllSolid() ||
		!s.Layer(y+1).IsAllSolid() ||
		!s.Layer(y-1).IsAllSolid() ||
		!adjacentSolid(1, 0) ||
		!adjacentSolid(0, 1) ||
		!adjacentSolid(-1, 0) ||
		!adjacentSolid(0, -1)
}
