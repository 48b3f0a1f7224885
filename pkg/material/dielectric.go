package material

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

// Dielectric is a transparent material like glass or water that refracts
// and reflects according to Snell's law and Schlick's Fresnel
// approximation; which one happens on a given sample is chosen randomly.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given refractive
// index (e.g. 1.5 for glass, 1.33 for water).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter picks reflection or refraction per sample, weighted by Schlick
// reflectance, and forces reflection when Snell's law has no real solution
// (total internal reflection).
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	return ScatterRecord{
		IsSpecular:  true,
		Albedo:      attenuation,
		SpecularRay: scattered,
	}, true
}

// ScatteringPDF is unused for specular materials; Dielectric never returns a PDF.
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is always zero: Dielectric doesn't emit light.
func (d *Dielectric) Emitted(rayIn core.Ray, hit HitRecord) core.Color {
	return core.Color{}
}

// refract calculates the refraction of uv through a surface with normal n
// using Snell's law, given the ratio of refractive indices.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance is the Fresnel reflectance via Schlick's approximation.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
