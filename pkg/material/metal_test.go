package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhoit/rayforge/pkg/core"
)

func TestMetalPerfectMirrorReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	sampler := newRNGSampler(1)

	hit := core.Intersection{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, -1).Normalize())

	scatter, didScatter := metal.Scatter(ray, hit, sampler)
	require.True(t, didScatter)
	assert.InDelta(t, 0.0, scatter.PDF, 1e-12, "specular scattering has no PDF")

	expectedReflection := core.NewVec3(1, 0, 1).Normalize()
	assert.True(t, scatter.Scattered.Direction.Normalize().Equals(expectedReflection))
}

func TestMetalFuzznessClampedToUnitRange(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 5.0)
	assert.Equal(t, 1.0, metal.Fuzzness)

	metal = NewMetal(core.NewVec3(1, 1, 1), -5.0)
	assert.Equal(t, 0.0, metal.Fuzzness)
}

func TestMetalAbsorbsRaysBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	sampler := newRNGSampler(7)

	hit := core.Intersection{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	// Grazing incoming ray plus enough fuzz that reflections can dip below the surface.
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, -0.01).Normalize())

	absorbedAtLeastOnce := false
	for i := 0; i < 200; i++ {
		_, didScatter := metal.Scatter(ray, hit, sampler)
		if !didScatter {
			absorbedAtLeastOnce = true
			break
		}
	}
	assert.True(t, absorbedAtLeastOnce, "sufficiently fuzzy grazing reflections should sometimes be absorbed")
}

func TestMetalEvaluateBRDFOnlyAtReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)
	normal := core.NewVec3(0, 0, 1)
	incoming := core.NewVec3(1, 0, -1).Normalize()
	reflected := reflect(incoming, normal)

	brdf := metal.EvaluateBRDF(incoming, reflected, normal)
	assert.True(t, brdf.Equals(metal.Albedo))

	offReflection := core.NewVec3(0, 1, 1).Normalize()
	brdf = metal.EvaluateBRDF(incoming, offReflection, normal)
	assert.True(t, brdf.IsZero())
}

func TestMetalPDFIsDelta(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0)
	pdf, isDelta := metal.PDF(core.Vec3{}, core.Vec3{}, core.NewVec3(0, 0, 1))
	assert.Equal(t, 0.0, pdf)
	assert.True(t, isDelta)
}
