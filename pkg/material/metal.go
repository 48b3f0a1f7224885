package material

import "github.com/dpryor42/gopathtracer/pkg/core"

// Metal is a specular reflector, perturbed by Fuzzness to broaden the
// reflection into a glossy lobe instead of a perfect mirror.
type Metal struct {
	Albedo   core.Color
	Fuzzness float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzziness to [0, 1].
func NewMetal(albedo core.Color, fuzzness float64) *Metal {
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects rayIn about the normal, with the reflection direction
// perturbed by a random point in the unit sphere scaled by Fuzzness.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)

	// A fuzzy perturbation can push the reflection below the surface; the
	// ray is absorbed in that case rather than scattering into the object.
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterRecord{
		IsSpecular:  true,
		Albedo:      m.Albedo,
		SpecularRay: scattered,
	}, scatters
}

// ScatteringPDF is unused for specular materials; Metal never returns a PDF.
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is always zero: Metal doesn't emit light.
func (m *Metal) Emitted(rayIn core.Ray, hit HitRecord) core.Color {
	return core.Color{}
}

// reflect calculates the reflection of v off a surface with normal n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
