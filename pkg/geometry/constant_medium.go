package geometry

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// ConstantMedium is a participating medium of uniform density — fog,
// smoke — bounded by an arbitrary shape. Rather than intersecting a
// surface, it probabilistically picks a scattering distance inside the
// boundary: for a ray traveling through matter of density D, the
// probability of scattering within a small distance dl is D*dl, which
// integrates to an exponential distance distribution, sampled here via
// -ln(U)/D.
type ConstantMedium struct {
	Boundary Shape
	Density  float64
	Phase    material.Material
}

// NewConstantMedium wraps boundary as a volume of uniform density,
// scattering isotropically via phase.
func NewConstantMedium(boundary Shape, density float64, phase material.Material) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Phase: phase}
}

// Hit finds where the ray enters and exits the boundary, then rolls a
// random scattering distance inside that span; if the roll lands within
// the span, that point becomes the hit.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, entry.T+0.0001, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	entryT := math.Max(entry.T, tMin)
	exitT := math.Min(exit.T, tMax)
	if entryT >= exitT {
		return nil, false
	}
	entryT = math.Max(entryT, 0)

	rayLength := ray.Direction.Length()
	distanceInBoundary := (exitT - entryT) * rayLength
	hitDistance := -math.Log(sampler.Get1D()) / m.Density

	if hitDistance > distanceInBoundary {
		return nil, false
	}

	hitT := entryT + hitDistance/rayLength
	return &material.HitRecord{
		T:         hitT,
		Point:     ray.At(hitT),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary: Isotropic scattering ignores it
		FrontFace: true,
		Material:  m.Phase,
	}, true
}

// BoundingBox defers to the boundary shape.
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
