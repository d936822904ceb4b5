package camera

import (
	"blockworld/internal/physics"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultFOV = 70.0
	nearPlane  = 0.1
	farPlane   = 1000.0

	mouseSensitivity = 0.1
	maxPitch         = 89.0
)

// Camera is a free flying first person camera. The render thread moves it
// while the chunk loaders read its position and frustum, so all access is
// guarded.
type Camera struct {
	mu sync.RWMutex

	position   mgl32.Vec3
	yaw, pitch float64 // degrees
	fov        float32
	aspect     float32

	frustum Frustum

	lastX, lastY float64
	firstMouse   bool
}

// New returns a camera at pos looking down +x.
func New(pos mgl32.Vec3, width, height int) *Camera {
	c := &Camera{
		position:   pos,
		fov:        defaultFOV,
		firstMouse: true,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio.
func (c *Camera) SetViewport(width, height int) {
	if height <= 0 {
		height = 1
	}
	c.mu.Lock()
	c.aspect = float32(width) / float32(height)
	c.mu.Unlock()
	c.UpdateFrustum()
}

// SetFOV sets the vertical field of view in degrees.
func (c *Camera) SetFOV(deg float32) {
	c.mu.Lock()
	c.fov = deg
	c.mu.Unlock()
	c.UpdateFrustum()
}

// Position returns the eye position.
func (c *Camera) Position() mgl32.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position
}

// SetPosition teleports the camera.
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	c.position = p
	c.mu.Unlock()
}

// Front is the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.front()
}

func (c *Camera) front() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(c.yaw))
	p := mgl32.DegToRad(float32(c.pitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(p)))
	fy := float32(math.Sin(float64(p)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(p)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// HandleMouseMovement turns the camera by the cursor delta since the last call.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.firstMouse {
		c.lastX, c.lastY = xpos, ypos
		c.firstMouse = false
		return
	}
	dx := (xpos - c.lastX) * mouseSensitivity
	dy := (c.lastY - ypos) * mouseSensitivity
	c.lastX, c.lastY = xpos, ypos

	c.yaw += dx
	c.pitch = max(-maxPitch, min(c.pitch+dy, maxPitch))
}

// Yaw and Pitch return the view angles in degrees.
func (c *Camera) Yaw() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.yaw
}

func (c *Camera) Pitch() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pitch
}

// Movement is the normalised input for one frame.
type Movement struct {
	Forward, Right, Up float32
}

// Step returns where the camera would be after moving for dt seconds at
// speed. Horizontal movement ignores pitch.
func (c *Camera) Step(m Movement, speed, dt float32) mgl32.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f := c.front()
	flat := mgl32.Vec3{f.X(), 0, f.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize()
	}
	right := flat.Cross(mgl32.Vec3{0, 1, 0})

	dir := flat.Mul(m.Forward).Add(right.Mul(m.Right)).Add(mgl32.Vec3{0, m.Up, 0})
	if dir.Len() == 0 {
		return c.position
	}
	return c.position.Add(dir.Normalize().Mul(speed * dt))
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view()
}

func (c *Camera) view() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front()), mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projection()
}

func (c *Camera) projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, nearPlane, farPlane)
}

// UpdateFrustum recomputes the clip planes; call once per frame after moving.
func (c *Camera) UpdateFrustum() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frustum.Update(c.projection().Mul4(c.view()))
}

// IsBoxInFrustum tests box against the frustum from the last UpdateFrustum.
func (c *Camera) IsBoxInFrustum(box physics.AABB) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frustum.IsBoxInFrustum(box)
}
