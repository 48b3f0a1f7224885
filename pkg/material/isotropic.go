package material

import (
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/texture"
)

// Isotropic scatters incoming light uniformly in every direction, the way
// a participating medium's particles do. It is modeled as specular rather
// than PDF-driven: since every outgoing direction is equally likely, a
// mixture with light-importance sampling buys nothing, and encoding it as
// specular keeps every non-specular material's ScatterRecord carrying a
// real PDF.
type Isotropic struct {
	Albedo texture.ColorSource
}

// NewIsotropic creates an isotropic scattering material with a uniform color.
func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolidColor(albedo)}
}

// Scatter picks a uniformly random direction on the unit sphere.
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	direction := core.SampleOnUnitSphere(sampler.Get2D())
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	return ScatterRecord{
		IsSpecular:  true,
		Albedo:      i.Albedo.Evaluate(hit.UV, hit.Point),
		SpecularRay: scattered,
	}, true
}

// ScatteringPDF is unused: Isotropic is modeled as specular.
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is always zero: Isotropic doesn't emit light.
func (i *Isotropic) Emitted(rayIn core.Ray, hit HitRecord) core.Color {
	return core.Color{}
}
