package meshing

import "blockworld/internal/registry"

// FloatsPerVertex is the stride of Buffer.Vertices: x, y, z, u, v, light.
const FloatsPerVertex = 6

// Buffer is interleaved geometry ready to be copied into GPU memory.
type Buffer struct {
	Vertices []float32
	Indices  []uint32
}

// Empty reports whether the buffer holds no geometry.
func (b Buffer) Empty() bool { return len(b.Indices) == 0 }

// Handle is a renderer-owned resource created from a Buffer.
type Handle interface {
	Release()
}

// Uploader turns CPU geometry into renderer handles. Implementations must
// only be called on the thread owning the rendering context.
type Uploader interface {
	Upload(buf Buffer) Handle
}

// Mesh accumulates quads for one section and one shader class.
type Mesh struct {
	positions []float32
	texCoords []float32
	light     []float32
	indices   []uint32
	indexBase uint32
	faces     int

	pending Buffer
	handle  Handle
}

// AddFace appends one quad. face holds four block-local corners, tex the
// matching UV corners and (x, y, z) the block position inside the section.
func (m *Mesh) AddFace(face *[12]float32, tex [8]float32, x, y, z int, light float32) {
	m.faces++
	m.texCoords = append(m.texCoords, tex[:]...)

	for i := 0; i < 4; i++ {
		m.positions = append(m.positions,
			face[i*3]+float32(x),
			face[i*3+1]+float32(y),
			face[i*3+2]+float32(z),
		)
		m.light = append(m.light, light)
	}

	b := m.indexBase
	m.indices = append(m.indices, b, b+1, b+2, b+2, b+3, b)
	m.indexBase += 4
}

// Faces returns the number of quads added since the last Reset.
func (m *Mesh) Faces() int { return m.faces }

// Flush interleaves the accumulated quads into the pending Buffer and drops
// the scratch lists.
func (m *Mesh) Flush() {
	n := len(m.light)
	buf := Buffer{
		Vertices: make([]float32, 0, n*FloatsPerVertex),
		Indices:  m.indices,
	}
	for v := 0; v < n; v++ {
		buf.Vertices = append(buf.Vertices,
			m.positions[v*3], m.positions[v*3+1], m.positions[v*3+2],
			m.texCoords[v*2], m.texCoords[v*2+1],
			m.light[v],
		)
	}
	m.pending = buf

	m.positions = nil
	m.texCoords = nil
	m.light = nil
	m.indices = nil
	m.indexBase = 0
}

// Pending returns the flushed geometry that has not been uploaded yet.
func (m *Mesh) Pending() Buffer { return m.pending }

// Upload hands the pending geometry to u, replacing any previous handle.
// A mesh without geometry ends up with no handle.
func (m *Mesh) Upload(u Uploader) {
	if m.handle != nil {
		m.handle.Release()
		m.handle = nil
	}
	if !m.pending.Empty() {
		m.handle = u.Upload(m.pending)
	}
	m.pending = Buffer{}
}

// Handle returns the renderer resource, or nil.
func (m *Mesh) Handle() Handle { return m.handle }

// Reset clears geometry but keeps the uploaded handle alive until the next
// Upload or Release.
func (m *Mesh) Reset() {
	m.positions = m.positions[:0]
	m.texCoords = m.texCoords[:0]
	m.light = m.light[:0]
	m.indices = nil
	m.indexBase = 0
	m.faces = 0
	m.pending = Buffer{}
}

// Release frees the renderer handle and all geometry.
func (m *Mesh) Release() {
	if m.handle != nil {
		m.handle.Release()
		m.handle = nil
	}
	m.Reset()
}

// Collection holds the three meshes of a section.
type Collection struct {
	Solid  Mesh
	Liquid Mesh
	Flora  Mesh
}

// For returns the mesh receiving blocks of the given shader class.
func (c *Collection) For(s registry.ShaderType) *Mesh {
	switch s {
	case registry.ShaderLiquid:
		return &c.Liquid
	case registry.ShaderFlora:
		return &c.Flora
	default:
		return &c.Solid
	}
}

// All returns the meshes in draw order: solid, flora, liquid.
func (c *Collection) All() [3]*Mesh {
	return [3]*Mesh{&c.Solid, &c.Flora, &c.Liquid}
}

// Faces is the total quad count across all three meshes.
func (c *Collection) Faces() int {
	return c.Solid.faces + c.Liquid.faces + c.Flora.faces
}
