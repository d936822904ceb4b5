package world

import (
	"blockworld/internal/block"
	"blockworld/internal/config"
	"blockworld/internal/meshing"
	"blockworld/internal/physics"
	"blockworld/internal/profiling"
	"blockworld/internal/registry"
	"blockworld/internal/texture"
	"blockworld/internal/world/gen"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Frustum answers visibility queries for section boxes.
type Frustum interface {
	IsBoxInFrustum(box physics.AABB) bool
}

// Viewer is the camera the world streams and renders around.
type Viewer interface {
	Frustum
	Position() mgl32.Vec3
}

// Renderer uploads section geometry and draws sections.
type Renderer interface {
	meshing.Uploader
	DrawSection(s *ChunkSection)
}

// ReloadTrigger is polled once per Update; true discards every mesh.
type ReloadTrigger interface {
	Pressed() bool
}

// TextureAtlas maps texture cells to quad UVs.
type TextureAtlas interface {
	TextureCoords(c registry.Cell) [8]float32
}

// World owns the chunk map and coordinates the main thread with the
// streaming goroutines. A single mutex guards all chunk state.
type World struct {
	mu       sync.Mutex
	chunks   *ChunkManager
	registry *registry.Registry
	atlas    TextureAtlas
	settings *config.RenderSettings

	eventsMu     sync.Mutex
	events       []Event
	chunkUpdates map[SectionPos]struct{}

	running       atomic.Bool
	loaders       sync.WaitGroup
	loadDistance  atomic.Int32
	startDistance int
	loaderThreads int

	spawnAttempts int
	spawnPoint    mgl32.Vec3
	rand          *rand.Rand

	reload   ReloadTrigger
	id       uuid.UUID
	log      *slog.Logger
	profiler *profiling.Tracker
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the parent logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *World) { w.log = l }
}

// WithAtlas sets the texture atlas used by the mesh builder.
func WithAtlas(a TextureAtlas) Option {
	return func(w *World) { w.atlas = a }
}

// WithReloadTrigger sets the input polled by Update to rebuild all meshes.
func WithReloadTrigger(t ReloadTrigger) Option {
	return func(w *World) { w.reload = t }
}

// WithProfiler records mesh and generation timings.
func WithProfiler(p *profiling.Tracker) Option {
	return func(w *World) { w.profiler = p }
}

// New creates an empty world. cfg is assumed to be validated.
func New(cfg config.World, reg *registry.Registry, generator gen.TerrainGenerator, opts ...Option) *World {
	w := &World{
		registry:      reg,
		settings:      config.NewRenderSettings(cfg.RenderDistance),
		chunkUpdates:  make(map[SectionPos]struct{}),
		startDistance: max(cfg.StartLoadDistance, 1),
		loaderThreads: max(cfg.LoaderThreads, 1),
		spawnAttempts: max(cfg.SpawnAttempts, 1),
		rand:          rand.New(rand.NewSource(int64(cfg.Seed))),
		id:            uuid.New(),
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.atlas == nil {
		a, err := texture.New(256, 16)
		if err != nil {
			panic(err)
		}
		w.atlas = a
	}
	w.log = w.log.With("world", w.id.String())
	w.chunks = newChunkManager(w, generator)
	w.loadDistance.Store(int32(w.startDistance))
	return w
}

// ID identifies this world instance in logs.
func (w *World) ID() uuid.UUID { return w.id }

// Settings returns the live render settings.
func (w *World) Settings() *config.RenderSettings { return w.settings }

// Registry returns the block registry.
func (w *World) Registry() *registry.Registry { return w.registry }

// WithLock runs fn with the world lock held.
func (w *World) WithLock(fn func(m *ChunkManager)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.chunks)
}

// GetBlock reads the block at a world position. Missing columns are created
// empty and read as air.
func (w *World) GetBlock(x, y, z int) block.ID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.getBlock(x, y, z)
}

// SetBlock writes the block at a world position. The bottom layer (y <= 0)
// cannot be changed.
func (w *World) SetBlock(x, y, z int, id block.ID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setBlock(x, y, z, id)
}

func (w *World) getBlock(x, y, z int) block.ID {
	return w.chunks.getBlock(x, y, z)
}

func (w *World) setBlock(x, y, z int, id block.ID) {
	if y <= 0 {
		return
	}
	w.chunks.setBlock(x, y, z, id)
}

// HeightAt returns the highest opaque block of a world column.
func (w *World) HeightAt(x, z int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	pos := ChunkXZ(x, z)
	bx, bz := BlockXZ(x, z)
	return w.chunks.GetChunk(pos.X, pos.Z).HeightAt(bx, bz)
}

// ChunkLoadedAt reports whether column (cx, cz) exists and is generated.
func (w *World) ChunkLoadedAt(cx, cz int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chunks.ChunkLoadedAt(cx, cz)
}

// ChunkExistsAt reports whether column (cx, cz) is in the map.
func (w *World) ChunkExistsAt(cx, cz int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chunks.ChunkExistsAt(cx, cz)
}

// LoadChunk generates column (cx, cz) if needed.
func (w *World) LoadChunk(cx, cz int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chunks.LoadChunk(cx, cz)
}

// UnloadChunk drops column (cx, cz).
func (w *World) UnloadChunk(cx, cz int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chunks.UnloadChunk(cx, cz)
}

// UpdateChunk schedules the section holding (x, y, z) for a rebuild on the
// next Update. Blocks on a section face also schedule the touching section.
func (w *World) UpdateChunk(x, y, z int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pos := ChunkXZ(x, z)
	bx, bz := BlockXZ(x, z)
	by := mod(y, ChunkSize)
	sy := floorDiv(y, ChunkSize)

	add := func(dx, dy, dz int) {
		w.chunkUpdates[SectionPos{X: pos.X + dx, Y: sy + dy, Z: pos.Z + dz}] = struct{}{}
	}
	add(0, 0, 0)
	if bx == 0 {
		add(-1, 0, 0)
	} else if bx == ChunkSize-1 {
		add(1, 0, 0)
	}
	if by == 0 {
		add(0, -1, 0)
	} else if by == ChunkSize-1 {
		add(0, 1, 0)
	}
	if bz == 0 {
		add(0, 0, -1)
	} else if bz == ChunkSize-1 {
		add(0, 0, 1)
	}
}

// PendingUpdates is the number of sections waiting for a rebuild.
func (w *World) PendingUpdates() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.chunkUpdates)
}

// AddEvent queues an event for the next Update. Safe from any goroutine.
func (w *World) AddEvent(e Event) {
	w.eventsMu.Lock()
	w.events = append(w.events, e)
	w.eventsMu.Unlock()
}

// Update runs once per frame on the main thread: it honours the reload
// trigger, applies queued events and rebuilds scheduled sections.
func (w *World) Update() {
	defer w.profiler.Track("world.Update")()

	if w.reload != nil && w.reload.Pressed() {
		w.WithLock((*ChunkManager).DeleteMeshes)
		w.loadDistance.Store(int32(w.startDistance))
		w.log.Info("reloading chunk meshes")
	}

	w.eventsMu.Lock()
	events := w.events
	w.events = nil
	w.eventsMu.Unlock()
	for _, e := range events {
		e.Handle(w)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.updateChunks()
}

func (w *World) updateChunks() {
	for pos := range w.chunkUpdates {
		if !w.chunks.ChunkExistsAt(pos.X, pos.Z) {
			continue
		}
		if s := w.chunks.GetChunk(pos.X, pos.Z).Section(pos.Y); s != nil {
			s.MakeMesh()
		}
	}
	clear(w.chunkUpdates)
}

// RenderWorld submits every visible section to r and evicts columns beyond
// the render distance. Must run on the render thread.
func (w *World) RenderWorld(r Renderer, v Viewer) {
	defer w.profiler.Track("world.RenderWorld")()

	w.mu.Lock()
	defer w.mu.Unlock()

	cam := chunkOf(v.Position())
	rd := w.settings.RenderDistance()

	var evict []ChunkPos
	for pos, c := range w.chunks.chunks {
		if chebyshev(pos, cam) > rd {
			evict = append(evict, pos)
			continue
		}
		c.drawSections(r, v)
	}
	for _, pos := range evict {
		w.chunks.UnloadChunk(pos.X, pos.Z)
	}
	if len(evict) > 0 {
		w.log.Debug("evicted chunks", "count", len(evict), "remaining", w.chunks.Len())
	}
}

func chebyshev(a, b ChunkPos) int {
	return max(abs(a.X-b.X), abs(a.Z-b.Z))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
