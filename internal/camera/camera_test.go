package camera

import (
	"blockworld/internal/physics"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func box(x, y, z float32) physics.AABB {
	b := physics.NewAABB(mgl32.Vec3{16, 16, 16})
	b.Update(mgl32.Vec3{x, y, z})
	return b
}

func TestFrustumCullsBehindCamera(t *testing.T) {
	c := New(mgl32.Vec3{0, 70, 0}, 900, 600)

	assert.True(t, c.IsBoxInFrustum(box(32, 62, -8)), "ahead")
	assert.False(t, c.IsBoxInFrustum(box(-64, 62, -8)), "behind")
	assert.False(t, c.IsBoxInFrustum(box(2000, 62, -8)), "past the far plane")
	assert.True(t, c.IsBoxInFrustum(box(-8, 62, -8)), "around the eye")
}

func TestFrustumFollowsYaw(t *testing.T) {
	c := New(mgl32.Vec3{0, 70, 0}, 900, 600)
	ahead := box(-64, 62, -8)
	assert.False(t, c.IsBoxInFrustum(ahead))

	// 180 degrees of yaw at 0.1 degrees per pixel
	c.HandleMouseMovement(0, 0)
	c.HandleMouseMovement(1800, 0)
	c.UpdateFrustum()
	assert.InDelta(t, 180, c.Yaw(), 1e-9)
	assert.True(t, c.IsBoxInFrustum(ahead))
}

func TestPitchIsClamped(t *testing.T) {
	c := New(mgl32.Vec3{}, 100, 100)
	c.HandleMouseMovement(0, 0)
	c.HandleMouseMovement(0, -5000)
	assert.Equal(t, float64(maxPitch), c.Pitch())
	c.HandleMouseMovement(0, 5000)
	assert.Equal(t, float64(-maxPitch), c.Pitch())
}

func TestStepMovesRelativeToYaw(t *testing.T) {
	c := New(mgl32.Vec3{10, 70, 10}, 100, 100)

	p := c.Step(Movement{Forward: 1}, 4, 0.5)
	assert.InDelta(t, 12, p.X(), 1e-4)
	assert.InDelta(t, 10, p.Z(), 1e-4)

	p = c.Step(Movement{Right: 1}, 4, 0.5)
	assert.InDelta(t, 10, p.X(), 1e-4)
	assert.InDelta(t, 12, p.Z(), 1e-4)

	p = c.Step(Movement{Up: -1}, 4, 1)
	assert.InDelta(t, 66, p.Y(), 1e-4)

	assert.Equal(t, c.Position(), c.Step(Movement{}, 4, 1))
}
