package block

// ID is the byte-sized block type stored in every cell of a chunk section.
// The zero value is Air.
type ID uint8

const (
	Air ID = iota
	Grass
	Dirt
	Stone
	OakBark
	OakLeaf
	Sand
	Water
	Cactus
	Rose
	TallGrass
	DeadShrub

	// NumTypes is the number of known block ids.
	NumTypes
)

var names = [NumTypes]string{
	Air:       "air",
	Grass:     "grass",
	Dirt:      "dirt",
	Stone:     "stone",
	OakBark:   "oak_bark",
	OakLeaf:   "oak_leaf",
	Sand:      "sand",
	Water:     "water",
	Cactus:    "cactus",
	Rose:      "rose",
	TallGrass: "tall_grass",
	DeadShrub: "dead_shrub",
}

// String returns the registry name of the id, or "unknown".
func (id ID) String() string {
	if id >= NumTypes {
		return "unknown"
	}
	return names[id]
}

// Valid reports whether id is one of the known block types.
func (id ID) Valid() bool { return id < NumTypes }

// ByName resolves a registry name back to its id.
func ByName(name string) (ID, bool) {
	for i, n := range names {
		if n == name {
			return ID(i), true
		}
	}
	return Air, false
}
