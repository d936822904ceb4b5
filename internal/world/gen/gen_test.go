package gen

import (
	"blockworld/internal/block"
	"crypto/sha256"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testChunk records writes inside one 16x16 footprint.
type testChunk struct {
	x, z   int
	blocks map[[3]int]block.ID
}

func newTestChunk(x, z int) *testChunk {
	return &testChunk{x: x, z: z, blocks: make(map[[3]int]block.ID)}
}

func (c *testChunk) SetBlock(x, y, z int, id block.ID) {
	if x < 0 || x >= ChunkSize || z < 0 || z >= ChunkSize || y < 0 {
		return
	}
	c.blocks[[3]int{x, y, z}] = id
}

func (c *testChunk) Location() (int, int) { return c.x, c.z }

func (c *testChunk) get(x, y, z int) block.ID { return c.blocks[[3]int{x, y, z}] }

func hashBlocks(c *testChunk) [32]byte {
	keys := make([][3]int, 0, len(c.blocks))
	for k := range c.blocks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		if a[2] != b[2] {
			return a[2] < b[2]
		}
		return a[0] < b[0]
	})
	h := sha256.New()
	var buf [13]byte
	for _, k := range keys {
		binary.LittleEndian.PutUint32(buf[0:], uint32(k[0]))
		binary.LittleEndian.PutUint32(buf[4:], uint32(k[1]))
		binary.LittleEndian.PutUint32(buf[8:], uint32(k[2]))
		buf[12] = byte(c.blocks[k])
		h.Write(buf[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

var _ TerrainGenerator = NewClassicOverWorldGenerator(1)
var _ TerrainGenerator = SuperFlatGenerator{}

func TestClassicGenerationIsDeterministic(t *testing.T) {
	for _, loc := range [][2]int{{0, 0}, {3, -2}, {120, 145}} {
		a := newTestChunk(loc[0], loc[1])
		b := newTestChunk(loc[0], loc[1])

		g := NewClassicOverWorldGenerator(6835)
		g.GenerateTerrainFor(a)
		// run the same generator over another column first to dirty its state
		g.GenerateTerrainFor(newTestChunk(loc[0]+1, loc[1]))
		g.GenerateTerrainFor(b)

		require.Equal(t, hashBlocks(a), hashBlocks(b), "column %v", loc)

		fresh := newTestChunk(loc[0], loc[1])
		NewClassicOverWorldGenerator(6835).GenerateTerrainFor(fresh)
		require.Equal(t, hashBlocks(a), hashBlocks(fresh), "column %v with new generator", loc)
	}
}

func TestClassicFillsUpToWaterLevel(t *testing.T) {
	g := NewClassicOverWorldGenerator(6835)
	c := newTestChunk(0, 0)
	g.GenerateTerrainFor(c)

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			h := g.HeightAt(x, z)
			for y := 0; y <= WaterLevel; y++ {
				id := c.get(x, y, z)
				if id == block.Air {
					t.Fatalf("gap at (%d,%d,%d), height %d", x, y, z, h)
				}
				if y > h && id != block.Water {
					t.Fatalf("(%d,%d,%d) above height %d: got %v, want water", x, y, z, h, id)
				}
			}
		}
	}
}

func TestClassicColumnProfile(t *testing.T) {
	g := NewClassicOverWorldGenerator(42)
	c := newTestChunk(7, 9)
	g.GenerateTerrainFor(c)

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			h := g.HeightAt(x, z)
			// structures never reach below the sea surface
			for y := 0; y < min(h, WaterLevel); y++ {
				want := block.Stone
				if y > h-3 {
					want = block.Dirt
				}
				if got := c.get(x, y, z); got != want {
					t.Fatalf("(%d,%d,%d) height %d: got %v, want %v", x, y, z, h, got, want)
				}
			}
			if c.get(x, h, z) == block.Air {
				t.Fatalf("surface (%d,%d,%d) is air", x, h, z)
			}
		}
	}
}

func TestSelectBiomeBands(t *testing.T) {
	g := NewClassicOverWorldGenerator(1)
	tests := []struct {
		value int
		want  string
	}{
		{200, "ocean"},
		{161, "ocean"},
		{160, "grassland"},
		{151, "grassland"},
		{150, "light_forest"},
		{131, "light_forest"},
		{130, "temperate_forest"},
		{121, "temperate_forest"},
		{120, "light_forest"},
		{111, "light_forest"},
		{110, "grassland"},
		{101, "grassland"},
		{100, "desert"},
		{0, "desert"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.selectBiome(tt.value).Name(), "value %d", tt.value)
	}
}

func TestMinimumSpawnHeight(t *testing.T) {
	assert.Equal(t, WaterLevel, NewClassicOverWorldGenerator(1).MinimumSpawnHeight())
	assert.Equal(t, 1, SuperFlatGenerator{}.MinimumSpawnHeight())
}

func TestSuperFlatProfile(t *testing.T) {
	c := newTestChunk(0, 0)
	SuperFlatGenerator{}.GenerateTerrainFor(c)

	want := []block.ID{block.Stone, block.Dirt, block.Dirt, block.Dirt, block.Grass}
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			for y, id := range want {
				require.Equal(t, id, c.get(x, y, z))
			}
			require.Equal(t, block.Air, c.get(x, 5, z))
		}
	}
}

func BenchmarkClassicGenerateTerrain(b *testing.B) {
	g := NewClassicOverWorldGenerator(6835)
	for i := 0; i < b.N; i++ {
		g.GenerateTerrainFor(newTestChunk(i%32, i/32))
	}
}
