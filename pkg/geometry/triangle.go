package geometry

import "github.com/wilhoit/rayforge/pkg/core"

// Triangle is a single triangle primitive defined by three vertices,
// with an optional custom normal and optional per-vertex UVs.
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool
	Material      core.Material
	normal        core.Vec3
	bbox          core.AABB
}

// NewTriangle creates a triangle, computing its normal from vertex
// winding order (counter-clockwise when viewed from the front) and
// caching its bounding box.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithNormal creates a triangle with an explicit normal,
// useful for shading normals that differ from the geometric one.
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material, normal: normal.Normalize()}
	t.computeBoundingBox()
	return t
}

// NewTriangleWithUVs creates a triangle with per-vertex texture coordinates.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: material}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

func (t *Triangle) computeBoundingBox() {
	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Hit implements the Möller–Trumbore ray/triangle intersection test.
func (t *Triangle) Hit(ray core.Ray) (core.Intersection, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return core.Intersection{}, false // ray parallel to the triangle's plane
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.Intersection{}, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < ray.TMin || tParam > ray.TMax {
		return core.Intersection{}, false
	}

	hitPoint := ray.At(tParam)

	var uv core.Vec2
	if t.hasUVs {
		w := 1.0 - u - v
		uv = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		uv = core.NewVec2(u, v)
	}

	isect := core.Intersection{
		T:         tParam,
		Point:     hitPoint,
		UV:        uv,
		Material:  t.Material,
		Primitive: t,
	}
	isect.SetFaceNormal(ray, t.normal)
	return isect, true
}

// BoundingBox returns the cached axis-aligned bounding box.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// GetNormal returns the triangle's (possibly custom) normal.
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
