package core

import "math"

// AABB is an axis-aligned bounding box. An "empty" box (no points
// added yet) is represented by Min holding +Inf and Max holding -Inf
// per axis, so that Union with any real box yields that box.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns a box with no extent, the identity element for Union.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

func NewAABB(min, max Vec3) AABB { return AABB{Min: min, Max: max} }

// NewAABBFromPoints returns the smallest AABB enclosing all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box = box.ExpandPoint(p)
	}
	return box
}

// ExpandPoint returns a box grown to include p.
func (b AABB) ExpandPoint(p Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)},
	}
}

func (b AABB) Centroid() Vec3 { return b.Min.Add(b.Max).Multiply(0.5) }
func (b AABB) Extent() Vec3   { return b.Max.Subtract(b.Min) }

func (b AABB) SurfaceArea() float64 {
	e := b.Extent()
	return 2.0 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// LongestAxis returns 0/1/2 for the axis with the largest extent.
func (b AABB) LongestAxis() int {
	e := b.Extent()
	if e.X > e.Y && e.X > e.Z {
		return 0
	}
	if e.Y > e.Z {
		return 1
	}
	return 2
}

// Axis returns the component of v along the given axis (0=X,1=Y,2=Z).
func Axis(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Expand returns a box grown by amount on every side, used to avoid
// degenerate zero-thickness slabs for axis-aligned primitives (a
// single triangle lying exactly in a plane, for instance).
func (b AABB) Expand(amount float64) AABB {
	pad := Vec3{amount, amount, amount}
	return AABB{Min: b.Min.Subtract(pad), Max: b.Max.Add(pad)}
}

// Hit implements the slab method (spec §4.1). It intentionally does
// NOT clamp the returned interval to [ray.TMin, ray.TMax] — that
// pruning is the caller's responsibility (BVH traversal and the
// primitive Hit routines do it). Division by a zero direction
// component is allowed to produce ±Inf; IEEE semantics on the
// subsequent min/max reduction yield the correct "ray is parallel to
// this slab" behavior without a branch.
func (b AABB) Hit(ray Ray) (tEnter, tExit float64, hit bool) {
	tEnter = math.Inf(-1)
	tExit = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := Axis(ray.Origin, axis)
		d := Axis(ray.Direction, axis)
		lo := Axis(b.Min, axis)
		hi := Axis(b.Max, axis)

		invD := 1.0 / d
		t0 := (lo - o) * invD
		t1 := (hi - o) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tEnter = math.Max(tEnter, t0)
		tExit = math.Min(tExit, t1)
	}

	return tEnter, tExit, tExit > 0 && tEnter < tExit
}

// HitRange is a convenience used by the BVH: it folds the slab test
// together with the caller's current [tMin, tMax] pruning window.
func (b AABB) HitRange(ray Ray, tMin, tMax float64) bool {
	tEnter, tExit, hit := b.Hit(ray)
	if !hit {
		return false
	}
	return tExit > tMin && tEnter < tMax
}

func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}
