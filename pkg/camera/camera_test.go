package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

func TestGetRay_PinholeCenterScreenPointsAtLookAt(t *testing.T) {
	cfg := Config{
		LookFrom:     core.NewVec3(0, 0, 5),
		LookAt:       core.NewVec3(0, 0, 0),
		Up:           core.NewVec3(0, 1, 0),
		Aperture:     0,
		FocusDist:    5,
		VFov:         40,
		Aspect:       1,
		ShutterOpen:  0,
		ShutterClose: 0,
	}
	cam := New(cfg)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	ray := cam.GetRay(0.5, 0.5, sampler)
	direction := ray.Direction.Normalize()
	expected := cfg.LookAt.Subtract(cfg.LookFrom).Normalize()

	if math.Abs(direction.X-expected.X) > 1e-9 || math.Abs(direction.Y-expected.Y) > 1e-9 || math.Abs(direction.Z-expected.Z) > 1e-9 {
		t.Errorf("expected center-screen ray to point at LookAt, got direction %v want %v", direction, expected)
	}
}

func TestGetRay_ZeroApertureNeverOffsetsOrigin(t *testing.T) {
	cfg := Config{
		LookFrom: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Aperture: 0, FocusDist: 5, VFov: 40, Aspect: 1,
	}
	cam := New(cfg)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(2)))

	for i := 0; i < 20; i++ {
		ray := cam.GetRay(0.3, 0.7, sampler)
		if ray.Origin != cfg.LookFrom {
			t.Errorf("expected pinhole camera to never offset the origin, got %v", ray.Origin)
		}
	}
}

func TestGetRay_NonzeroApertureScattersOriginWithinLensRadius(t *testing.T) {
	cfg := Config{
		LookFrom: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Aperture: 2, FocusDist: 5, VFov: 40, Aspect: 1,
	}
	cam := New(cfg)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	sawOffset := false
	for i := 0; i < 50; i++ {
		ray := cam.GetRay(0.5, 0.5, sampler)
		if ray.Origin != cfg.LookFrom {
			sawOffset = true
		}
		if ray.Origin.Subtract(cfg.LookFrom).Length() > cfg.Aperture/2+1e-9 {
			t.Errorf("expected origin offset to stay within the lens radius, got %v", ray.Origin)
		}
	}
	if !sawOffset {
		t.Errorf("expected a nonzero aperture to offset the ray origin at least once across 50 samples")
	}
}

func TestGetRay_TimeIsSampledWithinShutterInterval(t *testing.T) {
	cfg := Config{
		LookFrom: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Aperture: 0, FocusDist: 5, VFov: 40, Aspect: 1,
		ShutterOpen: 0.2, ShutterClose: 0.8,
	}
	cam := New(cfg)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(4)))

	for i := 0; i < 50; i++ {
		ray := cam.GetRay(0.5, 0.5, sampler)
		if ray.Time < 0.2 || ray.Time > 0.8 {
			t.Errorf("expected ray time within [0.2, 0.8], got %v", ray.Time)
		}
	}
}
