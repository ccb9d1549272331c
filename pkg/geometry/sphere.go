package geometry

import (
	"math"

	"github.com/wilhoit/rayforge/pkg/core"
)

// Sphere is a sphere primitive defined by center, radius and material.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit solves the quadratic at²+bt+c=0 for the ray/sphere intersection
// and returns the closest root within [ray.TMin, ray.TMax].
func (s *Sphere) Hit(ray core.Ray) (core.Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < ray.TMin || root > ray.TMax {
		root = (-halfB + sqrtD) / a
		if root < ray.TMin || root > ray.TMax {
			return core.Intersection{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	// Spherical UV: theta from the top pole, phi around the equator.
	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	uv := core.NewVec2(phi/(2.0*math.Pi), theta/math.Pi)

	isect := core.Intersection{
		T:         root,
		Point:     point,
		UV:        uv,
		Material:  s.Material,
		Primitive: s,
	}
	isect.SetFaceNormal(ray, outwardNormal)
	return isect, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere.
func (s *Sphere) BoundingBox() core.AABB {
	radius := math.Abs(s.Radius)
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
