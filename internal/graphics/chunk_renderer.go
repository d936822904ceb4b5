package graphics

import (
	"blockworld/internal/meshing"
	"blockworld/internal/profiling"
	"blockworld/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const liquidAlpha = 0.75

// glMesh is one uploaded section mesh.
type glMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Release deletes the GL objects. Render thread only.
func (m *glMesh) Release() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.vao, m.vbo, m.ebo, m.count = 0, 0, 0, 0
}

// queuedSection captures a section's handles while the world lock is held.
type queuedSection struct {
	model  mgl32.Mat4
	meshes [3]*glMesh // solid, flora, liquid
}

// ChunkRenderer draws section meshes with the chunk shader. Sections handed
// to DrawSection are queued and drawn by Render in three passes: solid,
// flora, then blended liquid.
type ChunkRenderer struct {
	shader   *Shader
	atlas    uint32
	queue    []queuedSection
	profiler *profiling.Tracker

	drawn int
}

// NewChunkRenderer compiles the chunk program. atlas is a texture from
// UploadAtlas.
func NewChunkRenderer(atlas uint32, profiler *profiling.Tracker) (*ChunkRenderer, error) {
	shader, err := LoadBuiltinShader("chunk")
	if err != nil {
		return nil, err
	}
	gl.Enable(gl.DEPTH_TEST)
	return &ChunkRenderer{shader: shader, atlas: atlas, profiler: profiler}, nil
}

// Upload copies interleaved geometry into a new VAO.
func (r *ChunkRenderer) Upload(buf meshing.Buffer) meshing.Handle {
	m := &glMesh{count: int32(len(buf.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf.Vertices)*4, gl.Ptr(buf.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Indices)*4, gl.Ptr(buf.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, stride, gl.PtrOffset(5*4))

	gl.BindVertexArray(0)
	return m
}

// DrawSection queues s for the next Render.
func (r *ChunkRenderer) DrawSection(s *world.ChunkSection) {
	q := queuedSection{model: mgl32.Translate3D(s.Origin().Elem())}
	for i, m := range s.Meshes().All() {
		q.meshes[i], _ = m.Handle().(*glMesh)
	}
	r.queue = append(r.queue, q)
}

// Render draws and clears the queue.
func (r *ChunkRenderer) Render(view, proj mgl32.Mat4) {
	defer r.profiler.Track("renderer.renderChunks")()

	r.shader.Use()
	r.shader.SetMatrix4("view", &view[0])
	r.shader.SetMatrix4("proj", &proj[0])
	r.shader.SetInt("atlas", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlas)

	r.drawn = len(r.queue)

	r.shader.SetFloat("alpha", 1)
	r.pass(0)
	r.pass(1)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	r.shader.SetFloat("alpha", liquidAlpha)
	r.pass(2)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
	r.queue = r.queue[:0]
}

func (r *ChunkRenderer) pass(i int) {
	for k := range r.queue {
		q := &r.queue[k]
		m := q.meshes[i]
		if m == nil || m.count == 0 {
			continue
		}
		r.shader.SetMatrix4("model", &q.model[0])
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	}
}

// SectionsDrawn is the queue length of the last Render.
func (r *ChunkRenderer) SectionsDrawn() int { return r.drawn }

// Dispose frees the program.
func (r *ChunkRenderer) Dispose() {
	r.shader.Delete()
}
