package renderer

import (
	"math"

	"github.com/wilhoit/rayforge/pkg/core"
)

// CameraConfig describes a perspective camera with optional thin-lens
// depth of field, matching how the teacher's scene builders configure
// a camera (lookfrom/lookat/vfov) generalized with aperture/focus
// distance for defocus blur.
type CameraConfig struct {
	Center        core.Vec3 // eye position
	LookAt        core.Vec3 // point the camera faces
	Up            core.Vec3 // world up, used to derive the camera basis
	VFov          float64   // vertical field of view, degrees
	AspectRatio   float64   // width / height
	Aperture      float64   // lens diameter; 0 disables depth of field
	FocusDistance float64   // distance to the focal plane; 0 means use |LookAt-Center|
}

// Camera implements core.Camera: it maps normalized image coordinates
// (u, v) in [0,1]^2 to a world-space ray, sampling the lens aperture
// for defocus blur when configured.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // camera basis: right, up, back
	lensRadius      float64
}

// NewCamera builds a Camera from config.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2.0)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
		if focusDistance <= 0 {
			focusDistance = 1.0
		}
	}

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2.0,
	}
}

// MergeCameraConfig overlays override onto base, field by field: a
// zero-valued override field (the Go zero value, since CameraConfig
// has no explicit "unset" marker) leaves base's value in place. Scene
// builders use this to expose a sensible default camera while still
// letting a caller override just, say, the aspect ratio for a
// different output resolution.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Center != (core.Vec3{}) {
		merged.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}

// GenerateRay implements core.Camera: u, v are normalized image
// coordinates in [0,1]^2, u increasing left to right and v increasing
// bottom to top. When the lens radius is nonzero, sampler draws the
// lens-disk sample for defocus blur.
func (c *Camera) GenerateRay(u, v float64, sampler core.Sampler) core.Ray {
	origin := c.origin

	if c.lensRadius > 0 {
		rd := randomInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v))

	return core.NewRay(origin, target.Subtract(origin))
}

// randomInUnitDisk maps a uniform [0,1)^2 sample to the unit disk via
// the same polar rejection-free transform as RandomCosineDirection's
// radial component.
func randomInUnitDisk(u core.Vec2) core.Vec3 {
	r := math.Sqrt(u.X)
	theta := 2 * math.Pi * u.Y
	return core.Vec3{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: 0}
}
