package scene

import (
	"testing"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

func TestNewCornellScene_BuildsAllComponents(t *testing.T) {
	s := NewCornellScene()

	if s.Root == nil {
		t.Fatal("expected non-nil Root")
	}
	if s.Camera == nil {
		t.Fatal("expected non-nil Camera")
	}
	if s.Lights == nil || len(s.Lights.Objects) == 0 {
		t.Fatal("expected at least one light")
	}
	if s.Background != (core.Vec3{}) {
		t.Errorf("expected black background for an enclosed box, got %v", s.Background)
	}
}

func TestNewCornellScene_CeilingLightIsSampleable(t *testing.T) {
	s := NewCornellScene()

	origin := core.NewVec3(278, 278, -200)
	direction := s.Lights.RandomDirection(origin, core.NewSeededSampler(1, 0))
	if direction == (core.Vec3{}) {
		t.Fatal("expected a non-zero sampled direction toward the ceiling light")
	}

	density := s.Lights.PDFValue(origin, direction.Normalize())
	if density <= 0 {
		t.Errorf("expected positive PDF density toward a direction the light itself sampled, got %v", density)
	}
}

func TestNewDemoScene_BuildsAllComponents(t *testing.T) {
	s := NewDemoScene()

	if s.Root == nil {
		t.Fatal("expected non-nil Root")
	}
	if s.Camera == nil {
		t.Fatal("expected non-nil Camera")
	}
	if s.Lights == nil || len(s.Lights.Objects) == 0 {
		t.Fatal("expected at least one light")
	}
	if s.Background == (core.Vec3{}) {
		t.Errorf("expected a sky background color, got black")
	}
}

func TestNewDemoScene_SphereLightIsSampleable(t *testing.T) {
	s := NewDemoScene()

	origin := core.NewVec3(0, 1, 0)
	direction := s.Lights.RandomDirection(origin, core.NewSeededSampler(2, 0))
	if direction == (core.Vec3{}) {
		t.Fatal("expected a non-zero sampled direction toward the sphere light")
	}
}

func TestNew_SameSeedProducesSameRootBounds(t *testing.T) {
	s1 := NewCornellScene()
	s2 := NewCornellScene()

	box1 := s1.Root.BoundingBox()
	box2 := s2.Root.BoundingBox()
	if box1.Min != box2.Min || box1.Max != box2.Max {
		t.Errorf("expected identical bounding boxes for identically-seeded scenes, got %v vs %v", box1, box2)
	}
}
