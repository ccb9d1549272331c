package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilhoit/rayforge/pkg/core"
)

func TestCameraGenerateRayCenterPointsAtLookAt(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
	})

	ray := camera.GenerateRay(0.5, 0.5, NewRandomSampler(1))
	dir := ray.Direction.Normalize()

	assert.InDelta(t, 0.0, dir.X, 1e-6)
	assert.InDelta(t, 0.0, dir.Y, 1e-6)
	assert.Less(t, dir.Z, 0.0)
}

func TestCameraGenerateRayCornersDivergeFromCenter(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        90.0,
	})

	sampler := NewRandomSampler(1)
	center := camera.GenerateRay(0.5, 0.5, sampler).Direction.Normalize()
	corner := camera.GenerateRay(0.0, 0.0, sampler).Direction.Normalize()

	assert.Greater(t, center.Dot(corner), 0.0, "corner ray should still point roughly forward")
	assert.Less(t, center.Dot(corner), 0.999, "corner ray should diverge from the center ray")
}

func TestCameraZeroApertureHasNoOriginJitter(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(1, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
		Aperture:    0.0,
	})

	sampler := NewRandomSampler(7)
	for i := 0; i < 10; i++ {
		ray := camera.GenerateRay(0.3, 0.7, sampler)
		assert.True(t, ray.Origin.Equals(core.NewVec3(1, 2, 3)))
	}
}

func TestCameraNonzeroApertureJittersOrigin(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0,
		VFov:          40.0,
		Aperture:      0.5,
		FocusDistance: 1.0,
	})

	sampler := NewRandomSampler(3)
	first := camera.GenerateRay(0.5, 0.5, sampler).Origin
	second := camera.GenerateRay(0.5, 0.5, sampler).Origin
	assert.False(t, first.Equals(second), "successive lens samples should land at different origins")
}
