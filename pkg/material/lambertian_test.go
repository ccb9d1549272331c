package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhoit/rayforge/pkg/core"
)

func TestLambertianPDFMatchesScatterDirection(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := newRNGSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := core.Intersection{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		require.True(t, didScatter)

		cosTheta := scatter.Scattered.Direction.Normalize().Dot(normal)
		expectedPDF := cosTheta / math.Pi
		assert.InDelta(t, expectedPDF, scatter.PDF, 1e-10)
	}
}

func TestLambertianEnergyConservation(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := newRNGSampler(42)

	hit := core.Intersection{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	require.True(t, didScatter)

	expectedBRDF := albedo.Multiply(1.0 / math.Pi)
	assert.True(t, scatter.Attenuation.Equals(expectedBRDF))
	assert.LessOrEqual(t, scatter.Attenuation.X, albedo.X)
	assert.LessOrEqual(t, scatter.Attenuation.Y, albedo.Y)
	assert.LessOrEqual(t, scatter.Attenuation.Z, albedo.Z)
}

func TestLambertianEvaluateBRDFZeroBelowSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	normal := core.NewVec3(0, 0, 1)
	below := core.NewVec3(0, 0, -1)
	assert.True(t, lambertian.EvaluateBRDF(core.Vec3{}, below, normal).IsZero())
}

func TestLambertianPDFZeroBelowSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	normal := core.NewVec3(0, 0, 1)
	below := core.NewVec3(0, 0, -1)
	pdf, isDelta := lambertian.PDF(core.Vec3{}, below, normal)
	assert.Equal(t, 0.0, pdf)
	assert.False(t, isDelta)
}
