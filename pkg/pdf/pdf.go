// Package pdf implements the probability density functions used by the
// integrator to importance-sample scattered directions: a PDF both draws a
// random direction from its distribution and reports the probability
// density at any given direction, so the integrator can divide the sample's
// contribution by it.
package pdf

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

// PDF is a probability distribution over directions in R^3.
type PDF interface {
	// Sample draws a random direction following the distribution.
	Sample(sampler core.Sampler) core.Vec3
	// Value returns the probability density for the given direction.
	Value(direction core.Vec3) float64
}

// CosineHemispherePDF is a cosine-weighted distribution over the hemisphere
// around a normal, matching the scattering distribution of a Lambertian
// surface so that radiance and the sampling PDF cancel where possible.
type CosineHemispherePDF struct {
	uvw core.ONB
}

// NewCosineHemispherePDF builds a cosine PDF oriented around the given
// surface normal.
func NewCosineHemispherePDF(normal core.Vec3) *CosineHemispherePDF {
	return &CosineHemispherePDF{uvw: core.NewONB(normal)}
}

// Sample draws a cosine-weighted direction in the local hemisphere.
func (p *CosineHemispherePDF) Sample(sampler core.Sampler) core.Vec3 {
	return core.SampleCosineHemisphere(p.uvw.W, sampler.Get2D())
}

// Value returns cos(theta)/pi for directions in the hemisphere, 0 otherwise.
func (p *CosineHemispherePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Target is anything a HittablePDF can importance-sample toward: a light,
// or any shape that knows how to report how likely a ray is to hit it and
// how to produce a random point/direction on its surface. Shapes satisfy
// this structurally, with no import of the pdf package required.
type Target interface {
	// PDFValue returns the probability density of a ray from origin in
	// direction reaching this target, with respect to solid angle at origin.
	PDFValue(origin, direction core.Vec3) float64
	// RandomDirection returns a random direction from origin toward a point
	// on this target's surface.
	RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// HittablePDF importance-samples directions toward a target object (usually
// a light), so rays are more likely to find the one part of the scene that
// actually contributes radiance.
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF builds a PDF that samples directions from origin toward target.
func NewHittablePDF(target Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Sample draws a random direction from origin toward the target's surface.
func (p *HittablePDF) Sample(sampler core.Sampler) core.Vec3 {
	return p.target.RandomDirection(p.origin, sampler)
}

// Value returns the probability that a ray from origin in this direction
// reaches the target.
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// MixturePDF blends two PDFs 50/50, picking one distribution to sample from
// per draw but averaging both densities when evaluating Value. This is what
// lets the integrator combine light importance sampling with BRDF
// importance sampling without ever needing to know which strategy produced
// a given direction.
type MixturePDF struct {
	p0, p1 PDF
}

// NewMixturePDF builds an equal-weight mixture of two PDFs.
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{p0: p0, p1: p1}
}

// Sample picks p0 or p1 with equal probability and draws from it.
func (p *MixturePDF) Sample(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.p0.Sample(sampler)
	}
	return p.p1.Sample(sampler)
}

// Value returns the average of the two component densities at direction.
func (p *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5 * (p.p0.Value(direction) + p.p1.Value(direction))
}
