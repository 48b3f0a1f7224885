package integrator

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/geometry"
	"github.com/dpryor42/gopathtracer/pkg/material"
	"github.com/dpryor42/gopathtracer/pkg/pdf"
)

// PathTracingIntegrator implements unidirectional path tracing. It holds
// no per-render state, so a single instance is shared across every render
// worker.
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a path tracing integrator.
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor estimates the outgoing radiance along ray, recursing up to
// depth bounces. depth is the only termination mechanism: there is no
// Russian Roulette, so every traced path runs the same maximum length
// whether or not it's contributing much light.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene geometry.Shape, lights *geometry.HittableList, background core.Vec3, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.Hit(ray, 0.001, math.Inf(1), sampler)
	if !isHit {
		return background
	}

	colorEmitted := hit.Material.Emitted(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	var colorScattered core.Vec3
	if scatter.IsSpecular {
		colorScattered = pt.calculateSpecularColor(scatter, scene, lights, background, depth, sampler)
	} else {
		colorScattered = pt.calculateScatteredColor(ray, scatter, hit, scene, lights, background, depth, sampler)
	}

	result := colorEmitted.Add(colorScattered)
	if math.IsNaN(result.X) || math.IsNaN(result.Y) || math.IsNaN(result.Z) {
		return colorEmitted
	}
	return result
}

// calculateSpecularColor recurses straight along the specular bounce: a
// mirror or glass surface has no PDF to weight by, so the attenuation just
// multiplies through.
func (pt *PathTracingIntegrator) calculateSpecularColor(scatter material.ScatterRecord, scene geometry.Shape, lights *geometry.HittableList, background core.Vec3, depth int, sampler core.Sampler) core.Vec3 {
	incoming := pt.RayColor(scatter.SpecularRay, scene, lights, background, depth-1, sampler)
	return scatter.Albedo.MultiplyVec(incoming)
}

// calculateScatteredColor handles a non-specular bounce by sampling a
// mixture of the light's importance distribution and the material's own
// scattering distribution — this single mixture sample replaces separate
// next-event-estimation and BRDF-sampling terms with one Monte Carlo
// estimate of the rendering equation.
func (pt *PathTracingIntegrator) calculateScatteredColor(rayIn core.Ray, scatter material.ScatterRecord, hit *material.HitRecord, scene geometry.Shape, lights *geometry.HittableList, background core.Vec3, depth int, sampler core.Sampler) core.Vec3 {
	mixture := pdf.NewMixturePDF(pdf.NewHittablePDF(lights, hit.Point), scatter.PDF)

	direction := mixture.Sample(sampler)
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	pdfVal := mixture.Value(direction)
	if !(pdfVal > 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(rayIn, *hit, scattered)
	incoming := pt.RayColor(scattered, scene, lights, background, depth-1, sampler)

	return scatter.Albedo.MultiplyVec(incoming).Multiply(scatteringPDF / pdfVal)
}
