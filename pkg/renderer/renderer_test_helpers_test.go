package renderer

import "github.com/wilhoit/rayforge/pkg/core"

// constantIntegrator is a core.Integrator stub returning a fixed
// color for every ray, used to exercise the sampling/stopping-rule
// machinery in isolation from real light transport.
type constantIntegrator struct {
	color core.Vec3
}

func (ci constantIntegrator) EstimateRadiance(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Vec3 {
	return ci.color
}

// fakeScene is a minimal core.Scene for renderer-package tests.
type fakeScene struct {
	camera core.Camera
	config core.SamplingConfig
}

func (s *fakeScene) BVH() *core.BVH                      { return core.NewBVH(nil) }
func (s *fakeScene) Lights() []core.Light                { return nil }
func (s *fakeScene) Camera() core.Camera                 { return s.camera }
func (s *fakeScene) SamplingConfig() core.SamplingConfig { return s.config }
func (s *fakeScene) BackgroundColors() (core.Vec3, core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1)
}

func newFakeScene(config core.SamplingConfig) *fakeScene {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        90.0,
	})
	return &fakeScene{camera: camera, config: config}
}
