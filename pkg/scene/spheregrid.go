package scene

import (
	"math"

	"github.com/wilhoit/rayforge/pkg/core"
	"github.com/wilhoit/rayforge/pkg/geometry"
	"github.com/wilhoit/rayforge/pkg/material"
	"github.com/wilhoit/rayforge/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB via OKLAB, used to
// spread a visually uniform set of hues across the sphere grid.
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// NewSphereGridScene builds a grid of metallic spheres over a ground
// quad, their hue and chroma varying across the grid, lit by a single
// bright sun-like sphere light.
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),
		LookAt:      core.NewVec3(4.5, 0.8, 4.5),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
		Aperture:    0.02,
	}
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	b := &builder{
		camera:      renderer.NewCamera(cameraConfig),
		aspectRatio: cameraConfig.AspectRatio,
		samplingConfig: core.SamplingConfig{
			NsAA:             100,
			NsAreaLight:      1,
			MaxRayDepth:      40,
			RussianRouletteP: 0.6,
			SamplesPerBatch:  8,
			MaxTolerance:     0.015,
			Confidence:       1.96,
		},
		topColor:    core.NewVec3(0.5, 0.7, 1.0),
		bottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}

	b.addSphereLight(core.NewVec3(20, 25, 20), 8, core.NewVec3(12.0, 11.5, 10.0))

	groundSize := 40.0
	b.addQuad(
		core.NewVec3(-groundSize/2+4.5, 0, -groundSize/2+4.5),
		core.NewVec3(groundSize, 0, 0),
		core.NewVec3(0, 0, groundSize),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)

	const gridSize = 20
	const targetArea = 9.0
	spacing := targetArea / float64(gridSize-1)

	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	const baseLightness = 0.65
	const minChroma = 0.05
	const maxChroma = 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			y := sphereRadius

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			sphere := geometry.NewSphere(core.NewVec3(x, y, z), sphereRadius, material.NewMetal(color, roughness))
			b.addPrimitive(sphere)
		}
	}

	return b.build()
}
