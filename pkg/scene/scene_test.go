package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhoit/rayforge/pkg/core"
	"github.com/wilhoit/rayforge/pkg/geometry"
	"github.com/wilhoit/rayforge/pkg/material"
	"github.com/wilhoit/rayforge/pkg/renderer"
)

func newTestBuilder() *builder {
	return &builder{
		camera:      renderer.NewCamera(renderer.CameraConfig{Center: core.NewVec3(0, 0, 5), LookAt: core.Vec3{}, Up: core.NewVec3(0, 1, 0), VFov: 40, AspectRatio: 1}),
		aspectRatio: 1,
	}
}

func TestBuilderAddQuadAddsTwoTriangles(t *testing.T) {
	b := newTestBuilder()
	b.addQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), material.NewLambertian(core.NewVec3(1, 1, 1)))
	assert.Len(t, b.primitives, 2)
}

func TestBuilderAddSphereLightAddsPrimitiveAndLight(t *testing.T) {
	b := newTestBuilder()
	b.addSphereLight(core.NewVec3(0, 5, 0), 1, core.NewVec3(10, 10, 10))
	assert.Len(t, b.primitives, 1)
	require.Len(t, b.lights, 1)
	assert.False(t, b.lights[0].IsDeltaLight())
}

func TestBuilderAddPointLightAddsOnlyLight(t *testing.T) {
	b := newTestBuilder()
	b.addPointLight(core.NewVec3(0, 5, 0), core.NewVec3(10, 10, 10))
	assert.Empty(t, b.primitives)
	require.Len(t, b.lights, 1)
	assert.True(t, b.lights[0].IsDeltaLight())
}

func TestBuilderBuildProducesQueryableBVH(t *testing.T) {
	b := newTestBuilder()
	b.samplingConfig = core.SamplingConfig{NsAA: 10}
	b.topColor = core.NewVec3(0.1, 0.2, 0.3)
	b.bottomColor = core.NewVec3(0.9, 0.9, 0.9)
	b.addPrimitive(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	s := b.build()
	require.NotNil(t, s.BVH())

	top, bottom := s.BackgroundColors()
	assert.Equal(t, core.NewVec3(0.1, 0.2, 0.3), top)
	assert.Equal(t, core.NewVec3(0.9, 0.9, 0.9), bottom)
	assert.Equal(t, 1.0, s.AspectRatio())
}
