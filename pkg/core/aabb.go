package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates an AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB spanning two opposite corner points,
// regardless of how the corners are ordered per axis
func NewAABBFromPoints(p1, p2 Vec3) AABB {
	return AABB{
		X: NewInterval(p1.X, p2.X),
		Y: NewInterval(p1.Y, p2.Y),
		Z: NewInterval(p1.Z, p2.Z),
	}
}

// NewAABBFromBoxes returns the union of two boxes
func NewAABBFromBoxes(b1, b2 AABB) AABB {
	return AABB{
		X: UnionIntervals(b1.X, b2.X),
		Y: UnionIntervals(b1.Y, b2.Y),
		Z: UnionIntervals(b1.Z, b2.Z),
	}
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z).
// Any other index is a programming error and panics.
func (b AABB) Axis(n int) Interval {
	switch n {
	case 0:
		return b.X
	case 1:
		return b.Y
	case 2:
		return b.Z
	}
	panic("core: bounding box axis out of range")
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent
func (b AABB) LongestAxis() int {
	if b.X.Size() > b.Y.Size() {
		if b.X.Size() > b.Z.Size() {
			return 0
		}
		return 2
	}
	if b.Y.Size() > b.Z.Size() {
		return 1
	}
	return 2
}

// Hit tests the ray against the box with the slab method, narrowing rayT
// axis by axis. Division by a zero direction component yields ±Inf, which
// the min/max comparisons below handle per IEEE-754.
func (b AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := b.Axis(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv

		if t0 < t1 {
			if t0 > rayT.Min {
				rayT.Min = t0
			}
			if t1 < rayT.Max {
				rayT.Max = t1
			}
		} else {
			if t1 > rayT.Min {
				rayT.Min = t1
			}
			if t0 < rayT.Max {
				rayT.Max = t0
			}
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}
