package material

import (
	"math"

	"github.com/wilhoit/rayforge/pkg/core"
)

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a Lambertian material with the given reflectance.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter draws a cosine-weighted direction around the surface normal.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.Intersection, sampler core.Sampler) (core.ScatterResult, bool) {
	scatterDirection := core.RandomCosineDirection(hit.Normal, sampler.Get2D())
	scattered := core.NewRay(hit.Point, scatterDirection)

	cosTheta := math.Max(0, scatterDirection.Normalize().Dot(hit.Normal))
	pdf := cosTheta / math.Pi

	attenuation := l.Albedo.Multiply(1.0 / math.Pi)

	return core.ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: attenuation,
		PDF:         pdf,
	}, true
}

// EvaluateBRDF returns the constant Lambertian BRDF albedo/π.
func (l *Lambertian) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	if outgoingDir.Dot(normal) <= 0 {
		return core.Vec3{}
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}

// PDF returns the cosine-weighted sampling density for outgoingDir.
func (l *Lambertian) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	cosTheta := outgoingDir.Normalize().Dot(normal)
	if cosTheta <= 0 {
		return 0, false
	}
	return cosTheta / math.Pi, false
}
