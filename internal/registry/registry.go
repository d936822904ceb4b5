package registry

import (
	"blockworld/internal/block"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingBlock      = errors.New("registry: block not defined")
	ErrDuplicateBlock    = errors.New("registry: block defined twice")
	ErrUnknownBlock      = errors.New("registry: unknown block name")
	ErrUnknownMeshType   = errors.New("registry: unknown mesh type")
	ErrUnknownShaderType = errors.New("registry: unknown shader type")
)

//go:embed blocks.yaml
var defaultBlocks []byte

// MeshType selects how a block is turned into geometry.
type MeshType uint8

const (
	MeshCube MeshType = iota
	MeshX
)

// ShaderType selects which of a section's mesh buffers receives the block.
type ShaderType uint8

const (
	ShaderChunk ShaderType = iota
	ShaderLiquid
	ShaderFlora
)

// Cell is a texture atlas cell coordinate (column, row).
type Cell [2]int

// Definition holds the behavioural data of one block type.
type Definition struct {
	ID         block.ID
	Name       string
	Opaque     bool
	Collidable bool
	Mesh       MeshType
	Shader     ShaderType
	TexTop     Cell
	TexSide    Cell
	TexBottom  Cell
}

// Registry is an immutable lookup table from block id to definition.
type Registry struct {
	defs [block.NumTypes]Definition
}

// Get returns the definition of id. Unknown ids resolve to air.
func (r *Registry) Get(id block.ID) *Definition {
	if !id.Valid() {
		return &r.defs[block.Air]
	}
	return &r.defs[id]
}

// IsOpaque reports whether id hides the faces behind it.
func (r *Registry) IsOpaque(id block.ID) bool {
	return id.Valid() && r.defs[id].Opaque
}

// IsCollidable reports whether id blocks movement.
func (r *Registry) IsCollidable(id block.ID) bool {
	return id.Valid() && r.defs[id].Collidable
}

type fileTextures struct {
	All    *Cell `yaml:"all"`
	Top    *Cell `yaml:"top"`
	Side   *Cell `yaml:"side"`
	Bottom *Cell `yaml:"bottom"`
}

type fileBlock struct {
	Name       string       `yaml:"name"`
	Opaque     bool         `yaml:"opaque"`
	Collidable bool         `yaml:"collidable"`
	Mesh       string       `yaml:"mesh"`
	Shader     string       `yaml:"shader"`
	Texture    fileTextures `yaml:"texture"`
}

type file struct {
	Blocks []fileBlock `yaml:"blocks"`
}

// Default returns the registry built from the embedded block table.
func Default() (*Registry, error) {
	return Parse(defaultBlocks)
}

// LoadFile reads a registry from a YAML file.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open block registry: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a registry from YAML.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read block registry: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML block table. Every known block id must be defined
// exactly once.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode block registry: %w", err)
	}

	reg := &Registry{}
	var seen [block.NumTypes]bool
	for _, fb := range f.Blocks {
		id, ok := block.ByName(fb.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBlock, fb.Name)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBlock, fb.Name)
		}
		def, err := fb.definition(id)
		if err != nil {
			return nil, err
		}
		reg.defs[id] = def
		seen[id] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingBlock, block.ID(i).String())
		}
	}
	return reg, nil
}

func (fb fileBlock) definition(id block.ID) (Definition, error) {
	def := Definition{
		ID:         id,
		Name:       fb.Name,
		Opaque:     fb.Opaque,
		Collidable: fb.Collidable,
	}

	switch fb.Mesh {
	case "", "cube":
		def.Mesh = MeshCube
	case "x":
		def.Mesh = MeshX
	default:
		return def, fmt.Errorf("%w: %q on %q", ErrUnknownMeshType, fb.Mesh, fb.Name)
	}

	switch fb.Shader {
	case "", "chunk":
		def.Shader = ShaderChunk
	case "liquid":
		def.Shader = ShaderLiquid
	case "flora":
		def.Shader = ShaderFlora
	default:
		return def, fmt.Errorf("%w: %q on %q", ErrUnknownShaderType, fb.Shader, fb.Name)
	}

	// "all" seeds every face, specific faces override it
	t := fb.Texture
	if t.All != nil {
		def.TexTop, def.TexSide, def.TexBottom = *t.All, *t.All, *t.All
	}
	if t.Top != nil {
		def.TexTop = *t.Top
	}
	if t.Side != nil {
		def.TexSide = *t.Side
	}
	if t.Bottom != nil {
		def.TexBottom = *t.Bottom
	}
	return def, nil
}
