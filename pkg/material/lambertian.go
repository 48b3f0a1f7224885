package material

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/pdf"
	"github.com/dpryor42/gopathtracer/pkg/texture"
)

// Lambertian is a perfectly diffuse surface: it scatters incoming light in
// a cosine-weighted distribution around the normal and reflects albedo/π of
// the light it receives from any given direction.
type Lambertian struct {
	Albedo texture.ColorSource
}

// NewLambertian creates a lambertian material with a uniform color.
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material with a spatially
// varying color source.
func NewTexturedLambertian(albedo texture.ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter hands back a cosine-hemisphere PDF rather than sampling a
// direction directly: the integrator mixes this with light sampling before
// drawing a scattered ray, so Lambertian never picks its own.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		IsSpecular: false,
		Albedo:     l.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:        pdf.NewCosineHemispherePDF(hit.Normal),
	}, true
}

// ScatteringPDF is the Lambertian BRDF's own density, cos(theta)/pi.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Emitted is always zero: Lambertian surfaces don't emit light.
func (l *Lambertian) Emitted(rayIn core.Ray, hit HitRecord) core.Color {
	return core.Color{}
}
