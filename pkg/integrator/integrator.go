package integrator

import (
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms: given a
// camera ray, estimate the radiance arriving back along it.
type Integrator interface {
	RayColor(ray core.Ray, scene geometry.Shape, lights *geometry.HittableList, background core.Vec3, depth int, sampler core.Sampler) core.Vec3
}
