package lights

import (
	"math"

	"github.com/wilhoit/rayforge/pkg/core"
	"github.com/wilhoit/rayforge/pkg/geometry"
)

// SphereLight is a spherical area light: a sphere primitive whose
// material emits. It is sampled by the cone subtended at the shading
// point, which concentrates samples on the light's visible cap
// instead of wasting them on its far side.
type SphereLight struct {
	*geometry.Sphere
}

// NewSphereLight creates a spherical area light. material should be
// (or embed) a material.Emissive so the sphere actually radiates.
func NewSphereLight(center core.Vec3, radius float64, emissive core.Material) *SphereLight {
	return &SphereLight{Sphere: geometry.NewSphere(center, radius, emissive)}
}

func (sl *SphereLight) Type() string      { return "area" }
func (sl *SphereLight) IsDeltaLight() bool { return false }

func (sl *SphereLight) emit(direction core.Vec3) core.Vec3 {
	if emitter, ok := sl.Material.(core.Emitter); ok {
		return emitter.Emit(core.NewRay(sl.Center, direction))
	}
	return core.Vec3{}
}

// Sample draws a point on the sphere toward point. If point lies
// inside the sphere, sampling falls back to the full surface; outside,
// it samples uniformly within the cone subtended by the sphere, which
// is the strategy the §4.6 importance-sampling estimator expects from
// an area light collaborator.
func (sl *SphereLight) Sample(point core.Vec3, u core.Vec2) core.LightSample {
	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()

	if distanceToCenter <= sl.Radius {
		return sl.sampleUniform(point, u)
	}
	return sl.sampleVisibleCone(point, u, distanceToCenter, toCenter)
}

func (sl *SphereLight) sampleUniform(point core.Vec3, u core.Vec2) core.LightSample {
	z := 1.0 - 2.0*u.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * u.Y
	localDir := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)

	samplePoint := sl.Center.Add(localDir.Multiply(sl.Radius))
	direction := samplePoint.Subtract(point)
	distance := direction.Length()
	if distance == 0 {
		return core.LightSample{}
	}
	dirNormalized := direction.Multiply(1.0 / distance)

	pdf := 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)
	return core.LightSample{
		Emission:  sl.emit(dirNormalized),
		Direction: dirNormalized,
		Distance:  distance,
		PDF:       pdf,
	}
}

func (sl *SphereLight) sampleVisibleCone(point core.Vec3, u core.Vec2, distanceToCenter float64, toCenter core.Vec3) core.LightSample {
	w := toCenter.Multiply(1.0 / distanceToCenter)
	bu, bv := core.OrthonormalBasis(w)

	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))

	cosTheta := 1.0 - u.X*(1.0-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * u.Y

	direction := bu.Multiply(sinTheta * math.Cos(phi)).
		Add(bv.Multiply(sinTheta * math.Sin(phi))).
		Add(w.Multiply(cosTheta))

	ray := core.NewRay(point, direction)
	isect, hit := sl.Sphere.Hit(ray)
	if !hit {
		return sl.sampleUniform(point, u)
	}

	pdf := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
	return core.LightSample{
		Emission:  sl.emit(direction),
		Direction: direction,
		Distance:  isect.T,
		PDF:       pdf,
	}
}

// PDF returns the cone-sampling density for direction, or 0 if it
// misses the sphere entirely.
func (sl *SphereLight) PDF(point, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	if _, hit := sl.Sphere.Hit(ray); !hit {
		return 0.0
	}

	distanceToCenter := sl.Center.Subtract(point).Length()
	if distanceToCenter <= sl.Radius {
		return 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)
	}

	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))
	return 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
}
