package material

import (
	"math/rand"
	"testing"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"valid 0.0", 0.0, 0.0},
		{"valid 0.5", 0.5, 0.5},
		{"valid 1.0", 1.0, 1.0},
		{"clamp above 1.0", 1.5, 1.0},
		{"clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Fuzzness = %v, want %v", metal.Fuzzness, tt.expectedFuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scatter, ok := metal.Scatter(rayIn, hit, sampler)
	if !ok {
		t.Fatal("Metal should scatter")
	}
	if !scatter.IsSpecular {
		t.Error("Metal scattering must be specular")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.SpecularRay.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-9 {
		t.Errorf("reflection direction = %v, want %v", actual, expected)
	}
	if scatter.Albedo != albedo {
		t.Errorf("Albedo = %v, want %v", scatter.Albedo, albedo)
	}
}

func TestMetal_FuzzyReflectionVaries(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	var first core.Vec3
	allSame := true
	for i := 0; i < 10; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, sampler)
		if !ok {
			continue
		}
		dir := scatter.SpecularRay.Direction.Normalize()
		if i == 0 {
			first = dir
		} else if dir.Subtract(first).Length() > 1e-9 {
			allSame = false
		}
	}
	if allSame {
		t.Error("fuzzy metal should produce varying reflection directions")
	}
}

func TestMetal_ScatterAbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(123)))

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		_, ok := metal.Scatter(rayIn, hit, sampler)
		if ok {
			scattered++
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("expected some rays absorbed at grazing angle with high fuzziness")
	}
	if scattered == 0 {
		t.Error("expected some rays scattered")
	}
}

func TestReflectFunction(t *testing.T) {
	tests := []struct {
		name     string
		incident core.Vec3
		normal   core.Vec3
		expected core.Vec3
	}{
		{"45 degree", core.NewVec3(1, 0, -1).Normalize(), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 1).Normalize()},
		{"normal incidence", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1)},
		{"grazing", core.NewVec3(1, 0, -0.01).Normalize(), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0.01).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := reflect(tt.incident, tt.normal)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("reflect = %v, want %v", result, tt.expected)
			}
		})
	}
}
