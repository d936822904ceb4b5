package physics_test

import (
	"blockworld/internal/block"
	"blockworld/internal/physics"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type grid map[[3]int]block.ID

func (g grid) GetBlock(x, y, z int) block.ID { return g[[3]int{x, y, z}] }

func notAir(id block.ID) bool { return id != block.Air }

func TestRaycast(t *testing.T) {
	g := grid{{5, 0, 0}: block.Stone}
	start := mgl32.Vec3{0.5, 0.5, 0.5}

	result := physics.Raycast(start, mgl32.Vec3{1, 0, 0}, 0.1, 10, g, notAir)
	if !result.Hit {
		t.Fatalf("expected hit, got miss")
	}
	if result.HitPosition != [3]int{5, 0, 0} {
		t.Errorf("hit position: got %v, want {5,0,0}", result.HitPosition)
	}
	if result.AdjacentPosition != [3]int{4, 0, 0} {
		t.Errorf("adjacent position: got %v, want {4,0,0}", result.AdjacentPosition)
	}
	// ray enters x=5 after travelling 4.5
	if result.Distance < 4.49 || result.Distance > 4.53 {
		t.Errorf("distance: got %f, want 4.5", result.Distance)
	}

	if short := physics.Raycast(start, mgl32.Vec3{1, 0, 0}, 0.1, 4, g, notAir); short.Hit {
		t.Errorf("expected miss due to max distance, got hit at %v", short.HitPosition)
	}
	if up := physics.Raycast(start, mgl32.Vec3{0, 1, 0}, 0.1, 10, g, notAir); up.Hit {
		t.Errorf("expected miss looking up, got hit at %v", up.HitPosition)
	}
}

func TestRaycastDiagonal(t *testing.T) {
	g := grid{{2, 2, 2}: block.Stone}
	dir := mgl32.Vec3{1, 1, 1}.Normalize()
	result := physics.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, dir, 0.1, 10, g, notAir)
	if !result.Hit || result.HitPosition != [3]int{2, 2, 2} {
		t.Fatalf("diagonal: got %+v, want hit at {2,2,2}", result)
	}
}

func TestRaycastSkipsNonSolid(t *testing.T) {
	g := grid{{2, 0, 0}: block.Water, {4, 0, 0}: block.Dirt}
	solid := func(id block.ID) bool { return id != block.Air && id != block.Water }
	result := physics.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, 0.1, 10, g, solid)
	if result.HitPosition != [3]int{4, 0, 0} {
		t.Fatalf("got %v, want {4,0,0}", result.HitPosition)
	}
}

func TestCollides(t *testing.T) {
	g := grid{{0, 0, 0}: block.Stone, {3, 0, 0}: block.Water}
	collidable := func(id block.ID) bool { return id == block.Stone }

	box := physics.AABB{Position: mgl32.Vec3{0.5, 0.5, 0.5}, Dimensions: mgl32.Vec3{0.6, 1.8, 0.6}}
	if !physics.Collides(box, g, collidable) {
		t.Errorf("box overlapping stone should collide")
	}

	box.Update(mgl32.Vec3{1.2, 0, 0})
	if physics.Collides(box, g, collidable) {
		t.Errorf("box beside stone should not collide")
	}

	box.Update(mgl32.Vec3{3.1, 0, 0.1})
	if physics.Collides(box, g, collidable) {
		t.Errorf("water is not collidable")
	}
}

func TestAABBCorners(t *testing.T) {
	box := physics.AABB{Position: mgl32.Vec3{16, 32, -16}, Dimensions: mgl32.Vec3{16, 16, 16}}
	if got := box.VP(mgl32.Vec3{1, -1, 1}); got != (mgl32.Vec3{32, 32, 0}) {
		t.Errorf("VP: got %v", got)
	}
	if got := box.VN(mgl32.Vec3{1, -1, 1}); got != (mgl32.Vec3{16, 48, -16}) {
		t.Errorf("VN: got %v", got)
	}
	if got := box.Max(); got != (mgl32.Vec3{32, 48, 0}) {
		t.Errorf("Max: got %v", got)
	}
}
