package camera

import (
	"blockworld/internal/physics"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// frustumMargin inflates boxes before testing, in blocks.
const frustumMargin float32 = 1.0

type plane struct {
	normal mgl32.Vec3
	d      float32
}

func (p plane) distance(v mgl32.Vec3) float32 {
	return p.normal.Dot(v) + p.d
}

// Frustum is the six clip planes of a projection*view matrix.
type Frustum struct {
	planes [6]plane
}

// Update extracts the planes, in order left, right, bottom, top, near, far.
func (f *Frustum) Update(clip mgl32.Mat4) {
	// mgl32 matrices are column major
	row := func(i int) mgl32.Vec4 {
		return mgl32.Vec4{clip[i], clip[4+i], clip[8+i], clip[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	f.planes[0] = normalizePlane(r3.Add(r0))
	f.planes[1] = normalizePlane(r3.Sub(r0))
	f.planes[2] = normalizePlane(r3.Add(r1))
	f.planes[3] = normalizePlane(r3.Sub(r1))
	f.planes[4] = normalizePlane(r3.Add(r2))
	f.planes[5] = normalizePlane(r3.Sub(r2))
}

func normalizePlane(v mgl32.Vec4) plane {
	n := v.Vec3()
	l := float32(math.Sqrt(float64(n.Dot(n))))
	if l == 0 {
		return plane{normal: n, d: v.W()}
	}
	return plane{normal: n.Mul(1 / l), d: v.W() / l}
}

// IsBoxInFrustum reports whether any part of box may be visible. A box is
// rejected only when its most positive corner lies behind some plane.
func (f *Frustum) IsBoxInFrustum(box physics.AABB) bool {
	box.Position = box.Position.Sub(mgl32.Vec3{frustumMargin, frustumMargin, frustumMargin})
	box.Dimensions = box.Dimensions.Add(mgl32.Vec3{2 * frustumMargin, 2 * frustumMargin, 2 * frustumMargin})

	for _, p := range f.planes {
		if p.distance(box.VP(p.normal)) < 0 {
			return false
		}
	}
	return true
}
