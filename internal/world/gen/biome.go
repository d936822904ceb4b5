package gen

import "blockworld/internal/block"

// Biome decides surface blocks, vegetation and height for the columns it
// covers.
type Biome interface {
	Name() string
	Plant(r *Random) block.ID
	TopBlock(r *Random) block.ID
	UnderWaterBlock(r *Random) block.ID
	BeachBlock(r *Random) block.ID
	MakeTree(r *Random, c Chunk, x, y, z int)
	Height(x, z, chunkX, chunkZ int) int
	TreeFrequency() int
	PlantFrequency() int
}

// biomeBase carries the parts every biome shares.
type biomeBase struct {
	heights   *NoiseGenerator
	treeFreq  int
	plantFreq int
}

func newBiomeBase(p NoiseParameters, treeFreq, plantFreq int, seed int32) biomeBase {
	n := NewNoiseGenerator(seed)
	n.SetParameters(p)
	return biomeBase{heights: n, treeFreq: treeFreq, plantFreq: plantFreq}
}

func (b *biomeBase) Height(x, z, chunkX, chunkZ int) int {
	return int(b.heights.Height(x, z, chunkX, chunkZ))
}

func (b *biomeBase) TreeFrequency() int  { return b.treeFreq }
func (b *biomeBase) PlantFrequency() int { return b.plantFreq }

func (b *biomeBase) BeachBlock(*Random) block.ID { return block.Sand }

// roseOr returns a rose when a 0..10 roll beats threshold.
func roseOr(r *Random, threshold int, other block.ID) block.ID {
	if r.IntInRange(0, 10) > threshold {
		return block.Rose
	}
	return other
}

// GrasslandBiome is open, gently rolling grass with scattered oaks.
type GrasslandBiome struct{ biomeBase }

func NewGrasslandBiome(seed int32) *GrasslandBiome {
	p := NoiseParameters{Octaves: 9, Amplitude: 85, Smoothness: 235, HeightOffset: -20, Roughness: 0.51}
	return &GrasslandBiome{newBiomeBase(p, 1000, 20, seed)}
}

func (*GrasslandBiome) Name() string              { return "grassland" }
func (*GrasslandBiome) Plant(r *Random) block.ID  { return roseOr(r, 6, block.TallGrass) }
func (*GrasslandBiome) TopBlock(*Random) block.ID { return block.Grass }

func (*GrasslandBiome) UnderWaterBlock(r *Random) block.ID {
	if r.IntInRange(0, 10) > 6 {
		return block.Dirt
	}
	return block.Sand
}

func (*GrasslandBiome) BeachBlock(r *Random) block.ID {
	if r.IntInRange(0, 10) > 2 {
		return block.Grass
	}
	return block.Dirt
}

func (*GrasslandBiome) MakeTree(r *Random, c Chunk, x, y, z int) { MakeOakTree(c, r, x, y, z) }

// DesertBiome is sand with cacti, and palms close to the shore.
type DesertBiome struct{ biomeBase }

func NewDesertBiome(seed int32) *DesertBiome {
	p := NoiseParameters{Octaves: 9, Amplitude: 80, Smoothness: 335, HeightOffset: -7, Roughness: 0.56}
	return &DesertBiome{newBiomeBase(p, 1350, 500, seed)}
}

func (*DesertBiome) Name() string                     { return "desert" }
func (*DesertBiome) Plant(*Random) block.ID           { return block.DeadShrub }
func (*DesertBiome) TopBlock(*Random) block.ID        { return block.Sand }
func (*DesertBiome) UnderWaterBlock(*Random) block.ID { return block.Sand }

func (*DesertBiome) MakeTree(r *Random, c Chunk, x, y, z int) {
	if y < WaterLevel+15 && r.IntInRange(0, 100) > 75 {
		MakePalmTree(c, r, x, y, z)
		return
	}
	MakeCactus(c, r, x, y, z)
}

// OceanBiome is low, choppy terrain that mostly sits under water.
type OceanBiome struct{ biomeBase }

func NewOceanBiome(seed int32) *OceanBiome {
	p := NoiseParameters{Octaves: 7, Amplitude: 43, Smoothness: 55, HeightOffset: 0, Roughness: 0.50}
	return &OceanBiome{newBiomeBase(p, 50, 100, seed)}
}

func (*OceanBiome) Name() string                     { return "ocean" }
func (*OceanBiome) Plant(r *Random) block.ID         { return roseOr(r, 6, block.TallGrass) }
func (*OceanBiome) TopBlock(*Random) block.ID        { return block.Grass }
func (*OceanBiome) UnderWaterBlock(*Random) block.ID { return block.Sand }

func (*OceanBiome) MakeTree(r *Random, c Chunk, x, y, z int) {
	if r.IntInRange(0, 5) < 3 {
		MakePalmTree(c, r, x, y, z)
		return
	}
	MakeOakTree(c, r, x, y, z)
}

// LightForestBiome is hilly grass with frequent oaks.
type LightForestBiome struct{ biomeBase }

func NewLightForestBiome(seed int32) *LightForestBiome {
	p := NoiseParameters{Octaves: 5, Amplitude: 100, Smoothness: 195, HeightOffset: -32, Roughness: 0.52}
	return &LightForestBiome{newBiomeBase(p, 60, 80, seed)}
}

func (*LightForestBiome) Name() string              { return "light_forest" }
func (*LightForestBiome) Plant(r *Random) block.ID  { return roseOr(r, 8, block.TallGrass) }
func (*LightForestBiome) TopBlock(*Random) block.ID { return block.Grass }

func (*LightForestBiome) UnderWaterBlock(r *Random) block.ID {
	if r.IntInRange(0, 10) > 9 {
		return block.Sand
	}
	return block.Dirt
}

func (*LightForestBiome) MakeTree(r *Random, c Chunk, x, y, z int) { MakeOakTree(c, r, x, y, z) }

// TemperateForestBiome is the densest oak forest, with patchy dirt.
type TemperateForestBiome struct{ biomeBase }

func NewTemperateForestBiome(seed int32) *TemperateForestBiome {
	p := NoiseParameters{Octaves: 5, Amplitude: 100, Smoothness: 195, HeightOffset: -30, Roughness: 0.52}
	return &TemperateForestBiome{newBiomeBase(p, 55, 75, seed)}
}

func (*TemperateForestBiome) Name() string           { return "temperate_forest" }
func (*TemperateForestBiome) Plant(*Random) block.ID { return block.TallGrass }

func (*TemperateForestBiome) TopBlock(r *Random) block.ID {
	if r.IntInRange(0, 10) < 8 {
		return block.Grass
	}
	return block.Dirt
}

func (*TemperateForestBiome) UnderWaterBlock(r *Random) block.ID {
	if r.IntInRange(0, 10) > 8 {
		return block.Dirt
	}
	return block.Sand
}

func (*TemperateForestBiome) MakeTree(r *Random, c Chunk, x, y, z int) { MakeOakTree(c, r, x, y, z) }
