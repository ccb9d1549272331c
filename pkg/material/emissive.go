package material

import "github.com/wilhoit/rayforge/pkg/core"

// Emissive is a light-emitting surface material; it never scatters,
// it only emits.
type Emissive struct {
	Emission core.Vec3
}

// NewEmissive creates an emissive material with the given radiance.
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter always fails: emissive surfaces absorb, they don't bounce rays.
func (e *Emissive) Scatter(rayIn core.Ray, hit core.Intersection, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted radiance, regardless of the incoming ray.
func (e *Emissive) Emit(rayIn core.Ray) core.Vec3 {
	return e.Emission
}

// EvaluateBRDF is zero: emissive surfaces don't reflect.
func (e *Emissive) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// PDF is zero: emissive surfaces don't scatter.
func (e *Emissive) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0.0, false
}
