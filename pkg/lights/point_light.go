package lights

import "github.com/wilhoit/rayforge/pkg/core"

// PointLight is a delta light: an idealized emitter with zero area,
// radiating Intensity uniformly in all directions from Position.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light at position with the given
// radiant intensity.
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

func (p *PointLight) Type() string      { return "point" }
func (p *PointLight) IsDeltaLight() bool { return true }

// Sample always returns the single point, independent of u: there is
// nothing to importance-sample on a zero-area light. Radiance falls
// off with the inverse square of distance.
func (p *PointLight) Sample(point core.Vec3, u core.Vec2) core.LightSample {
	toLight := p.Position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return core.LightSample{}
	}
	direction := toLight.Multiply(1.0 / distance)
	falloff := 1.0 / (distance * distance)

	return core.LightSample{
		Emission:  p.Intensity.Multiply(falloff),
		Direction: direction,
		Distance:  distance,
		PDF:       1.0, // delta light: a single deterministic sample
	}
}

// PDF is always zero for a delta light: it can never be hit by a
// continuously-distributed BSDF-sampled ray, so it contributes nothing
// to the MIS weight for indirect rays.
func (p *PointLight) PDF(point, direction core.Vec3) float64 {
	return 0.0
}
