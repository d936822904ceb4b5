package gen

import "blockworld/internal/block"

type placement struct {
	id      block.ID
	x, y, z int
}

// StructureBuilder stages block writes and applies them to a chunk in one
// pass. Coordinates are chunk-local and may fall outside the chunk; such
// writes are dropped by the chunk.
type StructureBuilder struct {
	blocks []placement
}

// Build writes every staged block into c in insertion order.
func (s *StructureBuilder) Build(c Chunk) {
	for _, b := range s.blocks {
		c.SetBlock(b.x, b.y, b.z, b.id)
	}
}

// Len is the number of staged writes.
func (s *StructureBuilder) Len() int { return len(s.blocks) }

// MakeColumn stages height blocks upwards from yStart.
func (s *StructureBuilder) MakeColumn(x, z, yStart, height int, id block.ID) {
	for y := yStart; y < yStart+height; y++ {
		s.AddBlock(x, y, z, id)
	}
}

// MakeRowX stages xStart..xEnd inclusive.
func (s *StructureBuilder) MakeRowX(xStart, xEnd, y, z int, id block.ID) {
	for x := xStart; x <= xEnd; x++ {
		s.AddBlock(x, y, z, id)
	}
}

// MakeRowZ stages zStart..zEnd inclusive.
func (s *StructureBuilder) MakeRowZ(zStart, zEnd, x, y int, id block.ID) {
	for z := zStart; z <= zEnd; z++ {
		s.AddBlock(x, y, z, id)
	}
}

// Fill stages the horizontal rectangle [xStart,xEnd) x [zStart,zEnd) at y.
func (s *StructureBuilder) Fill(y, xStart, xEnd, zStart, zEnd int, id block.ID) {
	for x := xStart; x < xEnd; x++ {
		for z := zStart; z < zEnd; z++ {
			s.AddBlock(x, y, z, id)
		}
	}
}

// AddBlock stages a single block.
func (s *StructureBuilder) AddBlock(x, y, z int, id block.ID) {
	s.blocks = append(s.blocks, placement{id: id, x: x, y: y, z: z})
}
