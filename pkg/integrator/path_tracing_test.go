package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/geometry"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

func newSingleSphereScene(mat material.Material) (geometry.Shape, *geometry.HittableList) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	return geometry.NewHittableList(sphere), geometry.NewHittableList()
}

func TestRayColor_DepthZeroReturnsBlack(t *testing.T) {
	scene, lights := newSingleSphereScene(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := integrator.RayColor(ray, scene, lights, core.Vec3{}, 0, sampler)

	if color != (core.Vec3{}) {
		t.Errorf("expected black at depth 0, got %v", color)
	}
}

func TestRayColor_MissReturnsBackground(t *testing.T) {
	scene, lights := newSingleSphereScene(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(2)))
	background := core.NewVec3(0.5, 0.7, 1.0)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color := integrator.RayColor(ray, scene, lights, background, 5, sampler)

	if color != background {
		t.Errorf("expected background color %v for a missed ray, got %v", background, color)
	}
}

func TestRayColor_EmissiveMaterialReturnsItsEmission(t *testing.T) {
	emission := core.NewVec3(2.0, 1.0, 0.5)
	scene, lights := newSingleSphereScene(material.NewDiffuseLight(emission))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := integrator.RayColor(ray, scene, lights, core.Vec3{}, 5, sampler)

	if color.X <= color.Y || color.Y <= color.Z {
		t.Errorf("expected emission color pattern R>G>B, got %v", color)
	}
}

func TestRayColor_SpecularBounceRecursesThroughMirror(t *testing.T) {
	scene, lights := newSingleSphereScene(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(4)))
	background := core.NewVec3(0.5, 0.7, 1.0)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := integrator.RayColor(ray, scene, lights, background, 5, sampler)

	if color == (core.Vec3{}) {
		t.Errorf("expected non-black reflection off the mirror sphere")
	}
	if color.X > background.X || color.Y > background.Y || color.Z > background.Z {
		t.Errorf("expected attenuated background reflection, got %v vs background %v", color, background)
	}
}

func TestRayColor_DeterministicForSameSeed(t *testing.T) {
	scene, lights := newSingleSphereScene(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	integrator := NewPathTracingIntegrator()
	background := core.NewVec3(0.5, 0.7, 1.0)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	sampler1 := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	color1 := integrator.RayColor(ray, scene, lights, background, 5, sampler1)

	sampler2 := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	color2 := integrator.RayColor(ray, scene, lights, background, 5, sampler2)

	if color1 != color2 {
		t.Errorf("expected deterministic output for identical seeds, got %v and %v", color1, color2)
	}
}

func TestRayColor_ZeroPDFMixtureYieldsOnlyEmission(t *testing.T) {
	// With an empty light list, the light half of the mixture samples a zero
	// direction whose mixture density is zero; such a sample must degrade to
	// emission rather than dividing by zero. This only checks that no
	// component of the result comes back NaN.
	scene, lights := newSingleSphereScene(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(5)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := integrator.RayColor(ray, scene, lights, core.Vec3{}, 3, sampler)

	if math.IsNaN(color.X) || math.IsNaN(color.Y) || math.IsNaN(color.Z) {
		t.Errorf("expected no NaN components, got %v", color)
	}
}
