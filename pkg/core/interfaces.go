package core

// Logger is the leveled logging contract consumed by the integrator
// and renderer. Concrete implementations (the root main.go wires a
// zerolog-backed one) decide formatting and destination; the core
// packages never import a logging library directly.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// NopLogger discards everything. Useful as a zero-value default so
// callers never need a nil check.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...interface{}) {}
func (NopLogger) Infof(format string, args ...interface{})  {}

// Primitive is the common contract for intersectable geometry
// (spheres, triangles). BoundingBox must be a cheap, precomputed
// lookup — the BVH calls it on every construction pass.
type Primitive interface {
	// Hit tests the ray against the primitive within [ray.TMin, ray.TMax].
	// On success, the returned Intersection.T lies in that range and
	// the caller should narrow ray.TMax to it before testing further
	// primitives (closest-hit pruning).
	Hit(ray Ray) (Intersection, bool)
	BoundingBox() AABB
}

// Intersection records a successful ray/primitive hit: hit distance,
// a unit normal facing against the incoming ray, and pointers back to
// what was hit and its material — the "Intersection" entity of the
// data model.
type Intersection struct {
	T         float64
	Point     Vec3
	Normal    Vec3 // always points against the incoming ray; FrontFace tells whether that is the outward side
	FrontFace bool
	UV        Vec2
	Primitive Primitive
	Material  Material
}

// SetFaceNormal derives FrontFace/Normal from a geometric outward
// normal: if the ray arrives from outside, Normal is the outward
// normal unchanged; otherwise it's flipped to still oppose the ray.
func (isect *Intersection) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	isect.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if isect.FrontFace {
		isect.Normal = outwardNormal
	} else {
		isect.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is what a Material.Scatter call returns: an outgoing
// ray, its throughput attenuation, and the PDF under which the
// outgoing direction was sampled (0 for a specular/delta bounce).
type ScatterResult struct {
	Incoming    Ray
	Scattered   Ray
	Attenuation Vec3
	PDF         float64
}

// IsSpecular reports whether this scatter event has no well-defined
// PDF (mirror reflection, dielectric refraction) and so cannot be
// explicitly light-sampled.
func (s ScatterResult) IsSpecular() bool { return s.PDF <= 0 }

// Material is the BSDF contract: §6's F/SampleF/GetEmission
// collapsed onto one small interface implemented by pkg/material.
type Material interface {
	// Scatter samples an outgoing direction given an incoming ray and
	// the surface hit, returning the scatter event and whether the
	// ray continues (false means absorbed).
	Scatter(rayIn Ray, hit Intersection, sampler Sampler) (ScatterResult, bool)

	// EvaluateBRDF returns f(wOut, wIn) for explicit light sampling.
	EvaluateBRDF(incomingDir, outgoingDir, normal Vec3) Vec3

	// PDF returns the sampling density for a concrete (incoming,
	// outgoing) pair, and whether this material is a delta
	// distribution (no density, can't be explicitly sampled).
	PDF(incomingDir, outgoingDir, normal Vec3) (pdf float64, isDelta bool)
}

// Emitter is implemented by materials that emit radiance.
// Non-emissive materials simply don't implement it.
type Emitter interface {
	Emit(rayIn Ray) Vec3
}

// Light is the sampling contract for direct-lighting estimation
// (spec §6): sample a direction toward the light from a shading
// point, or query whether it's a delta (point/directional) light
// that only ever needs one sample.
type Light interface {
	Type() string
	IsDeltaLight() bool

	// Sample returns a LightSample for the direction from point
	// toward this light, given two uniform numbers in [0,1)^2 (unused
	// for delta lights).
	Sample(point Vec3, u Vec2) LightSample

	// PDF returns the solid-angle sampling density for the given
	// direction from point toward this light (0 for delta lights,
	// since they have no density).
	PDF(point Vec3, direction Vec3) float64
}

// LightSample is the result of sampling a light for direct lighting:
// emitted radiance, direction toward the light, distance, and the
// sampling density under which Direction was drawn.
type LightSample struct {
	Emission  Vec3
	Direction Vec3
	Distance  float64
	PDF       float64
}

// Sampler is the PRNG contract (spec's Sampler2D, extended to 1D/3D
// since materials and Russian roulette need scalar and unit-sphere
// samples too). Each rendering worker owns a Sampler and never shares
// it across goroutines.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// Camera maps normalized image coordinates to a world-space ray.
type Camera interface {
	GenerateRay(u, v float64, sampler Sampler) Ray
}

// SamplingConfig collects the tunables named in spec §6.
type SamplingConfig struct {
	NsAA                      int     // max samples per pixel (adaptive ceiling)
	NsAreaLight               int     // samples per area light per direct-lighting estimate
	MaxRayDepth               int     // hard bounce cap, a safety backstop over Russian roulette
	RussianRouletteP          float64 // fixed continuation probability p_rr applied at every bounce
	SamplesPerBatch           int     // most samples one pixel takes per TileRenderer call; the stopping rule is still checked before every sample
	MaxTolerance              float64 // relative half-width for the adaptive confidence interval
	Confidence                float64 // z-score for the adaptive confidence interval (e.g. 1.96)
	DirectHemisphereSample    bool    // true: hemisphere direct lighting along directions drawn by Material.Scatter (BSDF-weighted, not uniform); false: light importance sampling
	MaxLeafSize               int     // BVH leaf threshold
}

// Scene bundles everything the integrator needs to estimate radiance
// along a ray: the acceleration structure, the light list, the
// camera, and the sampling configuration.
type Scene interface {
	BVH() *BVH
	Lights() []Light
	Camera() Camera
	SamplingConfig() SamplingConfig
	BackgroundColors() (top, bottom Vec3)
}

// Integrator estimates radiance arriving along a single camera ray.
type Integrator interface {
	EstimateRadiance(ray Ray, scene Scene, sampler Sampler) Vec3
}
