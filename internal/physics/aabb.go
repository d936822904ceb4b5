package physics

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis aligned box anchored at its minimum corner.
type AABB struct {
	Position   mgl32.Vec3
	Dimensions mgl32.Vec3
}

// NewAABB returns a box of the given size with its minimum corner at the origin.
func NewAABB(dimensions mgl32.Vec3) AABB {
	return AABB{Dimensions: dimensions}
}

// Update moves the box so its minimum corner sits at pos.
func (b *AABB) Update(pos mgl32.Vec3) {
	b.Position = pos
}

// Min returns the minimum corner.
func (b AABB) Min() mgl32.Vec3 { return b.Position }

// Max returns the maximum corner.
func (b AABB) Max() mgl32.Vec3 { return b.Position.Add(b.Dimensions) }

// VP returns the corner furthest along normal.
func (b AABB) VP(normal mgl32.Vec3) mgl32.Vec3 {
	res := b.Position
	if normal.X() > 0 {
		res[0] += b.Dimensions.X()
	}
	if normal.Y() > 0 {
		res[1] += b.Dimensions.Y()
	}
	if normal.Z() > 0 {
		res[2] += b.Dimensions.Z()
	}
	return res
}

// VN returns the corner furthest against normal.
func (b AABB) VN(normal mgl32.Vec3) mgl32.Vec3 {
	res := b.Position
	if normal.X() < 0 {
		res[0] += b.Dimensions.X()
	}
	if normal.Y() < 0 {
		res[1] += b.Dimensions.Y()
	}
	if normal.Z() < 0 {
		res[2] += b.Dimensions.Z()
	}
	return res
}

// Intersects reports whether the two boxes overlap with non-zero volume.
func (b AABB) Intersects(o AABB) bool {
	bmin, bmax := b.Min(), b.Max()
	omin, omax := o.Min(), o.Max()
	return bmin.X() < omax.X() && bmax.X() > omin.X() &&
		bmin.Y() < omax.Y() && bmax.Y() > omin.Y() &&
		bmin.Z() < omax.Z() && bmax.Z() > omin.Z()
}
