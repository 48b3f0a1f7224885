package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

func TestLambertian_ScatterIsNonSpecularWithCosinePDF(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, ok := lambertian.Scatter(ray, hit, sampler)
	if !ok {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.IsSpecular {
		t.Fatal("Lambertian scattering should not be specular")
	}
	if scatter.PDF == nil {
		t.Fatal("Lambertian scattering must carry a PDF")
	}
	if scatter.Albedo != albedo {
		t.Errorf("Albedo = %v, want %v", scatter.Albedo, albedo)
	}

	// Directions drawn from the returned PDF must sit in the hemisphere
	// around the normal, and ScatteringPDF must agree with cos(theta)/pi.
	for i := 0; i < 100; i++ {
		dir := scatter.PDF.Sample(sampler)
		scattered := core.NewRay(hit.Point, dir)

		cosTheta := dir.Normalize().Dot(normal)
		want := math.Max(0, cosTheta) / math.Pi
		if got := lambertian.ScatteringPDF(ray, hit, scattered); math.Abs(got-want) > 1e-9 {
			t.Errorf("ScatteringPDF = %v, want %v", got, want)
		}
	}
}

func TestLambertian_Emitted_IsZero(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	if got := lambertian.Emitted(ray, hit); got != (core.Color{}) {
		t.Errorf("Emitted = %v, want zero", got)
	}
}
