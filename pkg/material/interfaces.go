package material

import (
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/pdf"
)

// HitRecord describes a ray/shape intersection: where it happened, which
// way the surface faces, and what material governs scattering there.
type HitRecord struct {
	Point     core.Vec3 // World-space intersection point
	Normal    core.Vec3 // Surface normal, always facing the incoming ray
	T         float64   // Ray parameter at the intersection
	FrontFace bool      // True if the ray hit the outward-facing side
	UV        core.Vec2 // Surface parameterization, for textured materials
	Material  Material
}

// SetFaceNormal orients the normal against the incoming ray and records
// which side of the surface it hit, per the front-face convention: the
// stored normal always points back toward the ray origin.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// ScatterRecord is the result of a material scattering an incoming ray. It
// is a tagged union: a specular bounce populates SpecularRay and leaves PDF
// nil, while a diffuse/glossy bounce populates PDF and leaves SpecularRay
// unused. A material must never populate both.
type ScatterRecord struct {
	IsSpecular  bool
	Albedo      core.Color
	SpecularRay core.Ray
	PDF         pdf.PDF
}

// Material governs how a surface scatters incident light and, for emitters,
// how much light it contributes directly.
type Material interface {
	// Scatter returns how rayIn bounces off the surface at hit. The second
	// return value is false if the material absorbs the ray entirely (as
	// emissive materials do).
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// ScatteringPDF evaluates the material's own density for scattering
	// rayIn into scattered at hit, used to weight samples drawn from a
	// mixture PDF that wasn't necessarily the material's own distribution.
	// Meaningless for specular materials, whose Scatter never returns a PDF.
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64

	// Emitted returns the light emitted toward rayIn's origin at hit. Zero
	// for every non-emissive material.
	Emitted(rayIn core.Ray, hit HitRecord) core.Color
}
