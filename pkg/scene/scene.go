// Package scene assembles geometry, lights, and a camera into a renderable
// Scene, and provides a handful of named scenes used for testing and
// demonstration.
package scene

import (
	"math/rand"

	"github.com/dpryor42/gopathtracer/pkg/camera"
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/geometry"
)

// Scene bundles everything the renderer needs: a BVH-accelerated object
// graph, a list of importance-sampling targets, a background color, and a
// camera.
type Scene struct {
	Root       geometry.Shape
	Lights     *geometry.HittableList
	Background core.Vec3
	Camera     *camera.Camera
}

// New builds a Scene, accelerating objects with a randomly-split BVH
// seeded from seed so that two builds with the same seed produce the same
// tree shape.
func New(objects []geometry.Shape, lights *geometry.HittableList, background core.Vec3, cam *camera.Camera, seed int64) *Scene {
	root := geometry.NewBVH(objects, rand.New(rand.NewSource(seed)))
	return &Scene{Root: root, Lights: lights, Background: background, Camera: cam}
}
