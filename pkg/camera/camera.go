// Package camera builds rays through a thin-lens camera model: a focal
// plane in sharp focus, with an aperture that blurs everything else
// proportional to distance from it, plus a shutter interval for motion
// blur.
package camera

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

// Config describes a camera's placement and lens parameters.
type Config struct {
	LookFrom     core.Vec3 // Camera position
	LookAt       core.Vec3 // Point the camera is aimed at
	Up           core.Vec3 // World up direction
	Aperture     float64   // Lens diameter; 0 gives a pinhole camera
	FocusDist    float64   // Distance to the plane in perfect focus
	VFov         float64   // Vertical field of view, in degrees
	Aspect       float64   // Viewport width / height
	ShutterOpen  float64   // Ray time sampled uniformly from [ShutterOpen, ShutterClose]
	ShutterClose float64
}

// Camera generates rays for screen coordinates (s, t) in [0, 1] x [0, 1],
// offsetting the ray origin across the lens and stamping a random shutter
// time for motion blur.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
}

// New builds a camera from cfg. The viewport height is derived from VFov
// and a unit focal distance, then scaled out to FocusDist so depth of
// field is centered on the focus plane rather than the near plane.
func New(cfg Config) *Camera {
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := cfg.Aspect * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(cfg.FocusDist * viewportWidth)
	vertical := v.Multiply(cfg.FocusDist * viewportHeight)
	lowerLeftCorner := cfg.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDist))

	return &Camera{
		origin:          cfg.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		shutterOpen:     cfg.ShutterOpen,
		shutterClose:    cfg.ShutterClose,
	}
}

// GetRay casts a ray through screen coordinates (s, t), offsetting its
// origin across the lens disk and stamping a random shutter time drawn
// from sampler.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	lensPoint := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
	offset := c.u.Multiply(lensPoint.X).Add(c.v.Multiply(lensPoint.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.shutterOpen + sampler.Get1D()*(c.shutterClose-c.shutterOpen)
	return core.NewRayAtTime(origin, direction, time)
}
