// Package scene assembles primitives, materials, lights, and a camera
// into a core.Scene ready for the integrator: a handful of builder
// functions (Cornell box, default showcase, sphere grid) plus the
// Scene type that bundles them behind the core.Scene contract.
package scene

import (
	"github.com/wilhoit/rayforge/pkg/core"
	"github.com/wilhoit/rayforge/pkg/geometry"
	"github.com/wilhoit/rayforge/pkg/lights"
	"github.com/wilhoit/rayforge/pkg/material"
	"github.com/wilhoit/rayforge/pkg/renderer"
)

// Scene is the concrete core.Scene implementation built by this
// package's constructors. The BVH is built once at construction time
// from the accumulated primitives and never mutated afterward.
type Scene struct {
	bvh            *core.BVH
	lights         []core.Light
	camera         *renderer.Camera
	aspectRatio    float64
	samplingConfig core.SamplingConfig
	topColor       core.Vec3
	bottomColor    core.Vec3
}

func (s *Scene) BVH() *core.BVH                      { return s.bvh }
func (s *Scene) Lights() []core.Light                { return s.lights }
func (s *Scene) Camera() core.Camera                 { return s.camera }
func (s *Scene) SamplingConfig() core.SamplingConfig { return s.samplingConfig }
func (s *Scene) BackgroundColors() (core.Vec3, core.Vec3) {
	return s.topColor, s.bottomColor
}

// AspectRatio returns the width/height ratio the scene's camera was
// built with, so a caller can derive an output height from a chosen
// width.
func (s *Scene) AspectRatio() float64 { return s.aspectRatio }

// builder accumulates primitives and lights while a scene is being
// constructed, then bakes them into an immutable Scene.
type builder struct {
	primitives     []core.Primitive
	lights         []core.Light
	camera         *renderer.Camera
	aspectRatio    float64
	samplingConfig core.SamplingConfig
	topColor       core.Vec3
	bottomColor    core.Vec3
}

func (b *builder) addPrimitive(p core.Primitive) {
	b.primitives = append(b.primitives, p)
}

// addQuad adds a rectangular wall built from two triangles sharing the
// corner/u/v diagonal, matching the quads the Cornell box and ground
// planes are built from in the source material this package is
// adapted from — expressed here with the sphere/triangle primitive
// set this renderer supports.
func (b *builder) addQuad(corner, u, v core.Vec3, mat core.Material) {
	p0 := corner
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	b.addPrimitive(geometry.NewTriangle(p0, p1, p2, mat))
	b.addPrimitive(geometry.NewTriangle(p0, p2, p3, mat))
}

// addSphereLight adds an emissive sphere both as a hittable primitive
// (so it's visible and can receive BSDF-sampled rays) and as an area
// light collaborator for the integrator's light-importance-sampling
// path.
func (b *builder) addSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	emissive := material.NewEmissive(emission)
	light := lights.NewSphereLight(center, radius, emissive)
	b.addPrimitive(light.Sphere)
	b.lights = append(b.lights, light)
}

// addPointLight adds a delta point light. Point lights have no area,
// so there is no primitive to add to the BVH.
func (b *builder) addPointLight(position, intensity core.Vec3) {
	b.lights = append(b.lights, lights.NewPointLight(position, intensity))
}

func (b *builder) build() *Scene {
	return &Scene{
		bvh:            core.NewBVHWithLeafSize(b.primitives, b.samplingConfig.MaxLeafSize),
		lights:         b.lights,
		camera:         b.camera,
		aspectRatio:    b.aspectRatio,
		samplingConfig: b.samplingConfig,
		topColor:       b.topColor,
		bottomColor:    b.bottomColor,
	}
}
