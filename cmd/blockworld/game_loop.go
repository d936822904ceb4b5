package main

import (
	"blockworld/internal/block"
	"blockworld/internal/camera"
	"blockworld/internal/input"
	"blockworld/internal/physics"
	"blockworld/internal/world"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	flySpeed    = 12
	sprintSpeed = 40
)

var (
	eyeOffset = mgl32.Vec3{0.5, 1.6, 0.5}

	// the camera's collision box, relative to the eye
	bodyOffset = mgl32.Vec3{-0.3, -1.5, -0.3}
	bodySize   = mgl32.Vec3{0.6, 1.8, 0.6}
)

func runGameLoop(window *glfw.Window, g *game) {
	lastTime := time.Now()
	lastReport := time.Now()
	frames := 0
	limiter := &fpsLimiter{limit: g.cfg.Window.FPSLimit}

	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		g.handleInput(window, dt)
		g.world.Update()

		g.camera.UpdateFrustum()
		gl.ClearColor(0.53, 0.81, 0.92, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		g.world.RenderWorld(g.renderer, g.camera)
		g.renderer.Render(g.camera.View(), g.camera.Projection())
		frames++

		func() { defer g.profiler.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		g.input.PostUpdate()
		func() { defer g.profiler.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		if time.Since(lastReport) >= time.Second {
			g.log.Debug("frame stats",
				"fps", frames,
				"sections", g.renderer.SectionsDrawn(),
				"load_distance", g.world.LoadDistance(),
				"profile", g.profiler,
			)
			g.profiler.Reset()
			frames = 0
			lastReport = time.Now()
		}
		limiter.Wait(g.paused)
	}
}

func (g *game) handleInput(window *glfw.Window, dt float32) {
	im := g.input
	if im.JustPressed(input.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		}
	}
	if g.paused {
		return
	}

	if im.JustPressed(input.ActionRenderDistanceUp) {
		d := g.world.Settings().AdjustRenderDistance(1)
		g.log.Info("render distance changed", "chunks", d)
	}
	if im.JustPressed(input.ActionRenderDistanceDown) {
		d := g.world.Settings().AdjustRenderDistance(-1)
		g.log.Info("render distance changed", "chunks", d)
	}

	g.move(dt)

	if im.JustPressed(input.ActionBreak) {
		g.dig(world.ActionBreak)
	}
	if im.JustPressed(input.ActionPlace) {
		g.dig(world.ActionPlace)
	}
}

func axis(im *input.InputManager, pos, neg input.Action) float32 {
	var v float32
	if im.IsActive(pos) {
		v++
	}
	if im.IsActive(neg) {
		v--
	}
	return v
}

// move flies the camera, sliding along each axis separately so walls stop
// only the blocked component.
func (g *game) move(dt float32) {
	defer g.profiler.Track("physics.move")()

	im := g.input
	m := camera.Movement{
		Forward: axis(im, input.ActionMoveForward, input.ActionMoveBackward),
		Right:   axis(im, input.ActionMoveRight, input.ActionMoveLeft),
		Up:      axis(im, input.ActionFlyUp, input.ActionFlyDown),
	}
	speed := float32(flySpeed)
	if im.IsActive(input.ActionSprint) {
		speed = sprintSpeed
	}

	from := g.camera.Position()
	to := g.camera.Step(m, speed, dt)
	pos := from
	reg := g.world.Registry()
	for i := 0; i < 3; i++ {
		next := pos
		next[i] = to[i]
		body := physics.NewAABB(bodySize)
		body.Update(next.Add(bodyOffset))
		if !physics.Collides(body, g.world, reg.IsCollidable) {
			pos = next
		}
	}
	g.camera.SetPosition(pos)
}

func (g *game) dig(action world.DigAction) {
	reg := g.world.Registry()
	hit := physics.Raycast(g.camera.Position(), g.camera.Front(),
		physics.MinReachDistance, physics.MaxReachDistance, g.world, func(id block.ID) bool {
			return id != block.Air && id != block.Water
		})
	if !hit.Hit {
		return
	}

	target := hit.HitPosition
	if action == world.ActionPlace {
		target = hit.AdjacentPosition
	}
	ev := world.DigEvent{
		Action:   action,
		Position: mgl32.Vec3{float32(target[0]), float32(target[1]), float32(target[2])},
		Block:    block.Stone,
		OnBreak: func(id block.ID) {
			g.log.Debug("block broken", "block", id, "name", reg.Get(id).Name)
		},
	}
	g.world.AddEvent(ev)
}
