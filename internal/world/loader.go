package world

import (
	"runtime/debug"
	"time"
)

// Start launches the streaming goroutines around v. Calling Start on a
// running world does nothing.
func (w *World) Start(v Viewer) {
	if !w.running.CompareAndSwap(false, true) {
		return
	}
	w.log.Info("starting chunk loaders", "threads", w.loaderThreads, "render_distance", w.settings.RenderDistance())
	for i := 0; i < w.loaderThreads; i++ {
		w.loaders.Add(1)
		go func(id int) {
			defer w.loaders.Done()
			w.runLoader(id, v)
		}(i)
	}
}

// Close stops the streaming goroutines and waits for them to exit.
func (w *World) Close() {
	if !w.running.Swap(false) {
		return
	}
	w.loaders.Wait()
	w.log.Info("chunk loaders stopped")
}

// Running reports whether the loaders are active.
func (w *World) Running() bool { return w.running.Load() }

// LoadDistance is the ring radius currently being streamed.
func (w *World) LoadDistance() int { return int(w.loadDistance.Load()) }

func (w *World) runLoader(id int, v Viewer) {
	for w.running.Load() {
		if w.loaderLoop(id, v) {
			return
		}
	}
}

// loaderLoop runs passes until stopped. A panicking pass is logged and the
// loop restarts; the return value is false in that case.
func (w *World) loaderLoop(id int, v Viewer) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("chunk loader panicked", "loader", id, "panic", r, "stack", string(debug.Stack()))
			stopped = false
		}
	}()
	for w.running.Load() {
		if !w.loadPass(v) {
			w.advanceLoadDistance()
		}
	}
	return true
}

// loadPass walks rings outward from the viewer's column up to the current
// load distance and meshes the first section it can. It reports whether any
// work was done.
func (w *World) loadPass(v Viewer) bool {
	cam := chunkOf(v.Position())
	ld := w.LoadDistance()

	for r := 0; r <= ld; r++ {
		if !w.running.Load() {
			return true
		}
		made := false
		forEachInRing(cam, r, func(x, z int) bool {
			made = w.makeMesh(x, z, v)
			return made
		})
		if made {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

// makeMesh runs one ChunkManager.MakeMesh under the world lock. The unlock
// is deferred so a generator panic leaves the world usable.
func (w *World) makeMesh(x, z int, v Viewer) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chunks.MakeMesh(x, z, v)
}

func (w *World) advanceLoadDistance() {
	rd := w.settings.RenderDistance()
	next := w.loadDistance.Add(1)
	if int(next) >= rd {
		w.loadDistance.Store(int32(w.startDistance))
	}
}

// forEachInRing visits the perimeter of the square of radius r around c,
// stopping early when fn returns true.
func forEachInRing(c ChunkPos, r int, fn func(x, z int) bool) {
	if r == 0 {
		fn(c.X, c.Z)
		return
	}
	x0, x1 := c.X-r, c.X+r
	z0, z1 := c.Z-r, c.Z+r

	for x := x0; x <= x1; x++ {
		if fn(x, z0) {
			return
		}
	}
	for z := z0 + 1; z <= z1-1; z++ {
		if fn(x1, z) {
			return
		}
	}
	for x := x1; x >= x0; x-- {
		if fn(x, z1) {
			return
		}
	}
	for z := z1 - 1; z >= z0+1; z-- {
		if fn(x0, z) {
			return
		}
	}
}
