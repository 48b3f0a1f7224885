package geometry

import (
	"math"
	"testing"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

func TestBox_Hit_EntersThroughNearestFace(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.NewLambertian(core.NewVec3(1, 1, 1)))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := box.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatalf("expected a hit entering the box")
	}
	if math.Abs(hit.Point.Z-1) > 1e-9 {
		t.Errorf("expected entry at z=1, got %v", hit.Point)
	}
}

func TestBox_Hit_MissesWhenRayPassesBeside(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.NewLambertian(core.NewVec3(1, 1, 1)))

	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1))
	if _, ok := box.Hit(ray, 0.001, math.Inf(1), nil); ok {
		t.Errorf("expected a miss for a ray that passes beside the box")
	}
}

func TestBox_BoundingBox_MatchesConstructorCorners(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -2, -3), core.NewVec3(4, 5, 6), material.NewLambertian(core.NewVec3(1, 1, 1)))
	bbox := box.BoundingBox()

	if bbox.Min != core.NewVec3(-1, -2, -3) || bbox.Max != core.NewVec3(4, 5, 6) {
		t.Errorf("expected bounding box to match corners, got %v", bbox)
	}
}

func TestBox_DoesNotImplementLightTarget(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.NewLambertian(core.NewVec3(1, 1, 1)))

	var shape Shape = box
	if _, ok := shape.(lightTarget); ok {
		t.Errorf("Box is assembled from Rects that aren't individually addressable as a single light source, and should not satisfy lightTarget")
	}
}
