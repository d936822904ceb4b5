package gen

import "blockworld/internal/block"

// SuperFlatGenerator lays a fixed five block profile under every column.
type SuperFlatGenerator struct{}

func (SuperFlatGenerator) GenerateTerrainFor(c Chunk) {
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			c.SetBlock(x, 0, z, block.Stone)
			for y := 1; y <= 3; y++ {
				c.SetBlock(x, y, z, block.Dirt)
			}
			c.SetBlock(x, 4, z, block.Grass)
		}
	}
}

func (SuperFlatGenerator) MinimumSpawnHeight() int { return 1 }
