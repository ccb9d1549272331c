package scene

import (
	"github.com/wilhoit/rayforge/pkg/core"
	"github.com/wilhoit/rayforge/pkg/geometry"
	"github.com/wilhoit/rayforge/pkg/material"
	"github.com/wilhoit/rayforge/pkg/renderer"
)

// NewCornellScene builds the classic Cornell box: five triangle-pair
// walls, a sphere light just below the ceiling, and two spheres (one
// metal, one glass) standing in for the original's two boxes.
func NewCornellScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	}

	b := &builder{
		camera:      renderer.NewCamera(cameraConfig),
		aspectRatio: cameraConfig.AspectRatio,
		samplingConfig: core.SamplingConfig{
			NsAA:             150,
			NsAreaLight:      1,
			MaxRayDepth:      40,
			RussianRouletteP: 0.6,
			SamplesPerBatch:  8,
			MaxTolerance:     0.02,
			Confidence:       1.96,
		},
		topColor:    core.Vec3{},
		bottomColor: core.Vec3{},
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	const boxSize = 555.0

	// Floor
	b.addQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// Ceiling
	b.addQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// Back wall
	b.addQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)
	// Left wall (red)
	b.addQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)
	// Right wall (green)
	b.addQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)

	// Ceiling light: a sphere tucked just below the ceiling rather
	// than a flat emissive quad, so the existing area-light sampling
	// strategy (cone sampling toward a sphere) carries over unchanged.
	lightRadius := 65.0
	b.addSphereLight(
		core.NewVec3(boxSize/2, boxSize-lightRadius-1, boxSize/2),
		lightRadius,
		core.NewVec3(15.0, 15.0, 15.0),
	)

	leftSphere := geometry.NewSphere(
		core.NewVec3(185, 82.5, 169),
		82.5,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0),
	)
	rightSphere := geometry.NewSphere(
		core.NewVec3(370, 90, 351),
		90,
		material.NewDielectric(1.5),
	)
	b.addPrimitive(leftSphere)
	b.addPrimitive(rightSphere)

	return b.build()
}
