package physics

import (
	"blockworld/internal/block"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockQuery reads blocks by world coordinate. Blocks occupy the unit cube
// starting at their integer coordinate.
type BlockQuery interface {
	GetBlock(x, y, z int) block.ID
}

// Collides reports whether box overlaps any block for which collidable
// returns true.
func Collides(box AABB, q BlockQuery, collidable func(block.ID) bool) bool {
	lo, hi := box.Min(), box.Max()
	minX, maxX := floorInt(lo.X()), floorInt(hi.X())
	minY, maxY := floorInt(lo.Y()), floorInt(hi.Y())
	minZ, maxZ := floorInt(lo.Z()), floorInt(hi.Z())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if !collidable(q.GetBlock(x, y, z)) {
					continue
				}
				cell := AABB{
					Position:   mgl32.Vec3{float32(x), float32(y), float32(z)},
					Dimensions: mgl32.Vec3{1, 1, 1},
				}
				if box.Intersects(cell) {
					return true
				}
			}
		}
	}
	return false
}

func floorInt(f float32) int {
	return int(math.Floor(float64(f)))
}
