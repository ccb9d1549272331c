package material

import "github.com/wilhoit/rayforge/pkg/core"

// Metal is a specular-reflective material, optionally fuzzy.
type Metal struct {
	Albedo   core.Vec3
	Fuzzness float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzzness to [0,1].
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects the incoming ray, perturbing it by Fuzzness.
func (m *Metal) Scatter(rayIn core.Ray, hit core.Intersection, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		perturbation := core.RandomInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: m.Albedo,
		PDF:         0, // specular: no PDF
	}, scatters
}

// EvaluateBRDF is a delta function: non-zero only at the perfect reflection.
func (m *Metal) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	reflected := reflect(incomingDir, normal)
	if outgoingDir.Subtract(reflected).Length() < 0.001 {
		return m.Albedo
	}
	return core.Vec3{}
}

// PDF reports this as a delta (specular) material.
func (m *Metal) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0.0, true
}
