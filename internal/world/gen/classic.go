package gen

import "blockworld/internal/block"

// biome selector thresholds, checked from the top down
const (
	oceanThreshold           = 160
	grassThreshold           = 150
	lightForestThreshold     = 130
	temperateForestThreshold = 120
	lowLightForestThreshold  = 110
	lowGrassThreshold        = 100
)

type point struct{ x, y, z int }

// ClassicOverWorldGenerator produces rolling terrain with five biomes,
// trees and plants. It holds scratch maps between calls and is not safe for
// concurrent use.
type ClassicOverWorldGenerator struct {
	heightMap [ChunkSize][ChunkSize]int
	biomeMap  [ChunkSize + 1][ChunkSize + 1]int

	random     *Random
	biomeNoise *NoiseGenerator

	grassland       *GrasslandBiome
	temperateForest *TemperateForestBiome
	desert          *DesertBiome
	ocean           *OceanBiome
	lightForest     *LightForestBiome
}

// NewClassicOverWorldGenerator builds a generator for the given world seed.
func NewClassicOverWorldGenerator(seed int32) *ClassicOverWorldGenerator {
	biomeNoise := NewNoiseGenerator(seed * 2)
	biomeNoise.SetParameters(NoiseParameters{
		Octaves:      5,
		Amplitude:    120,
		Smoothness:   1035,
		HeightOffset: 0,
		Roughness:    0.75,
	})

	return &ClassicOverWorldGenerator{
		random:          NewRandom(0),
		biomeNoise:      biomeNoise,
		grassland:       NewGrasslandBiome(seed),
		temperateForest: NewTemperateForestBiome(seed),
		desert:          NewDesertBiome(seed),
		ocean:           NewOceanBiome(seed),
		lightForest:     NewLightForestBiome(seed),
	}
}

// GenerateTerrainFor fills c. The random stream is reseeded from the column
// coordinates so a column always generates the same way.
func (g *ClassicOverWorldGenerator) GenerateTerrainFor(c Chunk) {
	cx, cz := c.Location()
	g.random.Seed(int64((cx ^ cz) << 2))

	g.makeBiomeMap(cx, cz)
	g.makeHeightMap(cx, cz)

	maxHeight := WaterLevel
	for x := range g.heightMap {
		for z := range g.heightMap[x] {
			maxHeight = max(maxHeight, g.heightMap[x][z])
		}
	}
	g.setBlocks(c, maxHeight)
}

// MinimumSpawnHeight keeps spawns above the sea.
func (g *ClassicOverWorldGenerator) MinimumSpawnHeight() int {
	return WaterLevel
}

// BiomeAt returns the biome chosen for local column (x, z) by the last
// GenerateTerrainFor call. x and z may be 16 to read the border.
func (g *ClassicOverWorldGenerator) BiomeAt(x, z int) Biome {
	return g.selectBiome(g.biomeMap[x][z])
}

// HeightAt returns the surface height of local column (x, z) from the last
// GenerateTerrainFor call.
func (g *ClassicOverWorldGenerator) HeightAt(x, z int) int {
	return g.heightMap[x][z]
}

// selectBiome buckets a biome noise value. Light forest owns two bands.
func (g *ClassicOverWorldGenerator) selectBiome(v int) Biome {
	switch {
	case v > oceanThreshold:
		return g.ocean
	case v > grassThreshold:
		return g.grassland
	case v > lightForestThreshold:
		return g.lightForest
	case v > temperateForestThreshold:
		return g.temperateForest
	case v > lowLightForestThreshold:
		return g.lightForest
	case v > lowGrassThreshold:
		return g.grassland
	default:
		return g.desert
	}
}

// makeBiomeMap samples the biome field over the column plus a one block
// border on the +x and +z sides.
func (g *ClassicOverWorldGenerator) makeBiomeMap(cx, cz int) {
	for x := 0; x <= ChunkSize; x++ {
		for z := 0; z <= ChunkSize; z++ {
			g.biomeMap[x][z] = int(g.biomeNoise.Height(x, z, cx+10, cz+10))
		}
	}
}

func (g *ClassicOverWorldGenerator) makeHeightMap(cx, cz int) {
	const half = ChunkSize / 2
	g.heightIn(cx, cz, 0, 0, half, half)
	g.heightIn(cx, cz, half, 0, ChunkSize, half)
	g.heightIn(cx, cz, 0, half, half, ChunkSize)
	g.heightIn(cx, cz, half, half, ChunkSize, ChunkSize)
}

// heightIn samples the biome heights at the four corners of a quadrant and
// smooths the interior between them.
func (g *ClassicOverWorldGenerator) heightIn(cx, cz, xMin, zMin, xMax, zMax int) {
	corner := func(x, z int) float32 {
		return float32(g.BiomeAt(x, z).Height(x, z, cx, cz))
	}

	bottomLeft := corner(xMin, zMin)
	bottomRight := corner(xMax, zMin)
	topLeft := corner(xMin, zMax)
	topRight := corner(xMax, zMax)

	for x := xMin; x < xMax; x++ {
		for z := zMin; z < zMax; z++ {
			h := smoothInterpolation(
				bottomLeft, topLeft, bottomRight, topRight,
				float32(xMin), float32(xMax),
				float32(zMin), float32(zMax),
				float32(x), float32(z),
			)
			g.heightMap[x][z] = int(h)
		}
	}
}

func (g *ClassicOverWorldGenerator) setBlocks(c Chunk, maxHeight int) {
	var trees, plants []point

	for y := 0; y <= maxHeight; y++ {
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				height := g.heightMap[x][z]
				biome := g.BiomeAt(x, z)

				switch {
				case y > height:
					if y <= WaterLevel {
						c.SetBlock(x, y, z, block.Water)
					}
				case y == height:
					c.SetBlock(x, y, z, g.surfaceBlock(biome, x, y, z, &trees, &plants))
				case y > height-3:
					c.SetBlock(x, y, z, block.Dirt)
				default:
					c.SetBlock(x, y, z, block.Stone)
				}
			}
		}
	}

	for _, p := range plants {
		c.SetBlock(p.x, p.y, p.z, g.BiomeAt(p.x, p.z).Plant(g.random))
	}
	for _, t := range trees {
		g.BiomeAt(t.x, t.z).MakeTree(g.random, c, t.x, t.y, t.z)
	}
}

// surfaceBlock picks the block at a column's height and queues vegetation
// on dry land away from the beach.
func (g *ClassicOverWorldGenerator) surfaceBlock(biome Biome, x, y, z int, trees, plants *[]point) block.ID {
	if y < WaterLevel {
		return biome.UnderWaterBlock(g.random)
	}
	if y < WaterLevel+4 {
		return biome.BeachBlock(g.random)
	}
	if g.random.IntInRange(0, biome.TreeFrequency()) == 5 {
		*trees = append(*trees, point{x, y + 1, z})
	}
	if g.random.IntInRange(0, biome.PlantFrequency()) == 5 {
		*plants = append(*plants, point{x, y + 1, z})
	}
	return biome.TopBlock(g.random)
}
