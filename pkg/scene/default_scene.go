package scene

import (
	"github.com/wilhoit/rayforge/pkg/core"
	"github.com/wilhoit/rayforge/pkg/geometry"
	"github.com/wilhoit/rayforge/pkg/material"
	"github.com/wilhoit/rayforge/pkg/renderer"
)

// NewDefaultScene builds a showcase scene: a handful of spheres with
// lambertian, metal, and dielectric materials (including a hollow
// glass sphere) standing on a large ground plane, lit by a sphere
// light and a sky/ground background gradient.
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.05,
	}
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	b := &builder{
		camera:      renderer.NewCamera(cameraConfig),
		aspectRatio: cameraConfig.AspectRatio,
		samplingConfig: core.SamplingConfig{
			NsAA:             200,
			NsAreaLight:      1,
			MaxRayDepth:      50,
			RussianRouletteP: 0.6,
			SamplesPerBatch:  8,
			MaxTolerance:     0.01,
			Confidence:       1.96,
		},
		topColor:    core.NewVec3(0.5, 0.7, 1.0),
		bottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	b.addPrimitive(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed))
	b.addPrimitive(geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver))
	b.addPrimitive(geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold))
	b.addPrimitive(geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass))

	// Hollow glass sphere: outer shell plus an inner shell with
	// negative radius (inverted normal) plus a solid core, the
	// classic three-surface "glass bubble" trick.
	b.addPrimitive(geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass))
	b.addPrimitive(geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass))
	b.addPrimitive(geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue))

	// Ground: a single large quad rather than an infinite plane, so
	// it participates in the BVH like every other primitive.
	groundSize := 10000.0
	b.addQuad(
		core.NewVec3(-groundSize/2, 0, -groundSize/2),
		core.NewVec3(groundSize, 0, 0),
		core.NewVec3(0, 0, groundSize),
		lambertianGreen,
	)

	b.addSphereLight(core.NewVec3(30, 30.5, 15), 10, core.NewVec3(15.0, 14.0, 13.0))

	return b.build()
}
