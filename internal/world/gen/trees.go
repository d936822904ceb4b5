package gen

import "blockworld/internal/block"

// MakeOakTree grows a 4 to 7 block trunk with a two layer canopy and a
// small cross on top.
func MakeOakTree(c Chunk, r *Random, x, y, z int) {
	var b StructureBuilder

	h := r.IntInRange(4, 7)
	const leafSize = 2

	top := y + h
	b.Fill(top, x-leafSize, x+leafSize, z-leafSize, z+leafSize, block.OakLeaf)
	b.Fill(top-1, x-leafSize, x+leafSize, z-leafSize, z+leafSize, block.OakLeaf)

	for dz := -leafSize + 1; dz <= leafSize-1; dz++ {
		b.AddBlock(x, top+1, z+dz, block.OakLeaf)
	}
	for dx := -leafSize + 1; dx <= leafSize-1; dx++ {
		b.AddBlock(x+dx, top+1, z, block.OakLeaf)
	}

	b.MakeColumn(x, z, y, h, block.OakBark)
	b.Build(c)
}

// MakePalmTree grows a tall trunk topped by a flat cross of leaves.
func MakePalmTree(c Chunk, r *Random, x, y, z int) {
	var b StructureBuilder

	height := r.IntInRange(7, 9)
	diameter := r.IntInRange(4, 6)

	for d := -diameter; d < diameter; d++ {
		b.AddBlock(x+d, y+height, z, block.OakLeaf)
	}
	for d := -diameter; d < diameter; d++ {
		b.AddBlock(x, y+height, z+d, block.OakLeaf)
	}

	b.AddBlock(x, y+height-1, z+diameter, block.OakLeaf)
	b.AddBlock(x, y+height-1, z-diameter, block.OakLeaf)
	b.AddBlock(x+diameter, y+height-1, z, block.OakLeaf)
	b.AddBlock(x-diameter, y+height-1, z, block.OakLeaf)
	b.AddBlock(x, y+height-1, z, block.OakLeaf)

	b.MakeColumn(x, z, y, height, block.OakBark)
	b.Build(c)
}

// MakeCactus picks one of three cactus shapes.
func MakeCactus(c Chunk, r *Random, x, y, z int) {
	switch r.IntInRange(0, 2) {
	case 0:
		makeCactusColumn(c, r, x, y, z)
	case 1:
		makeCactusArms(c, r, x, y, z, false)
	default:
		makeCactusArms(c, r, x, y, z, true)
	}
}

func makeCactusColumn(c Chunk, r *Random, x, y, z int) {
	var b StructureBuilder
	b.MakeColumn(x, z, y, r.IntInRange(4, 7), block.Cactus)
	b.Build(c)
}

// makeCactusArms adds a crossbar halfway up with arms raised either along x
// or, when alongZ is set, off the trunk along z.
func makeCactusArms(c Chunk, r *Random, x, y, z int, alongZ bool) {
	var b StructureBuilder
	height := r.IntInRange(6, 8)
	b.MakeColumn(x, z, y, height, block.Cactus)

	stem := y + height/2
	b.MakeRowX(x-2, x+2, stem, z, block.Cactus)
	if alongZ {
		b.AddBlock(x, stem+1, z-2, block.Cactus)
		b.AddBlock(x, stem+2, z-2, block.Cactus)
		b.AddBlock(x, stem+1, z+2, block.Cactus)
	} else {
		b.AddBlock(x-2, stem+1, z, block.Cactus)
		b.AddBlock(x-2, stem+2, z, block.Cactus)
		b.AddBlock(x+2, stem+1, z, block.Cactus)
	}
	b.Build(c)
}
