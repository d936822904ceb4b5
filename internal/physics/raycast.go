package physics

import (
	"blockworld/internal/block"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0

	raycastStep = float32(0.02)
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
}

// Raycast marches from start along direction and returns the first block
// accepted by solid, together with the last empty cell before it.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, q BlockQuery, solid func(block.ID) bool) RaycastResult {
	steps := int(maxDist / raycastStep)
	last := cellOf(start)

	for i := 0; i <= steps; i++ {
		dist := float32(i) * raycastStep
		if dist < minDist {
			continue
		}
		cell := cellOf(start.Add(direction.Mul(dist)))
		if solid(q.GetBlock(cell[0], cell[1], cell[2])) {
			return RaycastResult{
				HitPosition:      cell,
				AdjacentPosition: last,
				Distance:         dist,
				Hit:              true,
			}
		}
		last = cell
	}
	return RaycastResult{}
}

func cellOf(p mgl32.Vec3) [3]int {
	return [3]int{floorInt(p.X()), floorInt(p.Y()), floorInt(p.Z())}
}
