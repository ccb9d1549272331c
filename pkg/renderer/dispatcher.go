package renderer

import (
	"image"
	"image/color"

	"github.com/wilhoit/rayforge/pkg/core"
)

// Dispatcher is the module's core external surface (spec §6):
// SetFrameSize, RaytracePixel, WriteToFramebuffer, Clear. It renders
// sequentially, pixel by pixel, each call to RaytracePixel sampling
// one pixel up to the adaptive stopping rule or NsAA samples.
// ProgressiveRaytracer/WorkerPool build the parallel, tiled scheduling
// on top of the same TileRenderer for the CLI's actual render path.
type Dispatcher struct {
	scene        core.Scene
	tileRenderer *TileRenderer
	width        int
	height       int
	pixelStats   [][]PixelStats
	sampler      *RandomSampler
}

// NewDispatcher creates a dispatcher against scene/integrator.
func NewDispatcher(scene core.Scene, integrator core.Integrator) *Dispatcher {
	return &Dispatcher{
		scene:        scene,
		tileRenderer: NewTileRenderer(scene, integrator),
		sampler:      NewRandomSampler(1),
	}
}

// SetFrameSize (re)allocates the pixel statistics buffer for a w x h
// frame, discarding any prior accumulated samples.
func (d *Dispatcher) SetFrameSize(w, h int) {
	d.width, d.height = w, h
	d.pixelStats = make([][]PixelStats, h)
	for y := range d.pixelStats {
		d.pixelStats[y] = make([]PixelStats, w)
	}
}

// RaytracePixel samples pixel (x, y) up to the scene's NsAA ceiling,
// subject to the adaptive stopping rule, accumulating into the
// pixel's running statistics. Returns the number of samples taken.
func (d *Dispatcher) RaytracePixel(x, y int) int {
	config := d.scene.SamplingConfig()
	camera := d.scene.Camera()
	ps := &d.pixelStats[y][x]

	initial := ps.SampleCount
	for ps.SampleCount < config.NsAA && !ps.ShouldStop(config) {
		jitter := d.sampler.Get2D()
		u := (float64(x) + jitter.X) / float64(d.width)
		v := 1.0 - (float64(y)+jitter.Y)/float64(d.height)

		ray := camera.GenerateRay(u, v, d.sampler)
		ps.AddSample(d.estimate(ray))
	}
	return ps.SampleCount - initial
}

func (d *Dispatcher) estimate(ray core.Ray) core.Vec3 {
	return d.tileRenderer.integrator.EstimateRadiance(ray, d.scene, d.sampler)
}

// WriteToFramebuffer copies the tone-mapped pixels within [x0,x1)x[y0,y1)
// into img, gamma-correcting and clamping each pixel's running mean color.
func (d *Dispatcher) WriteToFramebuffer(img *image.RGBA, x0, y0, x1, y1 int) {
	for y := y0; y < y1 && y < d.height; y++ {
		for x := x0; x < x1 && x < d.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(d.pixelStats[y][x].GetColor()))
		}
	}
}

// Clear discards all accumulated samples for the current frame size.
func (d *Dispatcher) Clear() {
	for y := range d.pixelStats {
		d.pixelStats[y] = make([]PixelStats, d.width)
	}
}

// vec3ToColor tone-maps a linear radiance value to an 8-bit sRGB-ish
// pixel: gamma 2.0 (matching the teacher), then clamp to [0,1].
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}
