package scene

import (
	"math/rand"

	"github.com/dpryor42/gopathtracer/pkg/camera"
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/geometry"
	"github.com/dpryor42/gopathtracer/pkg/material"
	"github.com/dpryor42/gopathtracer/pkg/texture"
)

// NewDemoScene builds a scene exercising the features the Cornell box
// doesn't: a checkered ground, a motion-blurred sphere, Perlin marble, a
// fogged glass sphere via ConstantMedium, and a sphere light sampled by
// solid angle — the "book 2/3" feature set layered onto a simple tabletop
// arrangement rather than the full final-scene sphere field.
func NewDemoScene() *Scene {
	cam := camera.New(camera.Config{
		LookFrom:     core.NewVec3(13, 3, 4),
		LookAt:       core.NewVec3(0, 0.5, 0),
		Up:           core.NewVec3(0, 1, 0),
		Aperture:     0.1,
		FocusDist:    10,
		VFov:         25,
		Aspect:       16.0 / 9.0,
		ShutterOpen:  0,
		ShutterClose: 1,
	})

	checker := texture.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker))

	marble := texture.NewNoise(rand.New(rand.NewSource(11)), 4)
	marbleSphere := geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1, material.NewTexturedLambertian(marble))

	movingSphere := geometry.NewMovingSphere(
		core.NewVec3(0, 1, 0), core.NewVec3(0, 1.3, 0), 0, 1,
		1, material.NewLambertian(core.NewVec3(0.6, 0.1, 0.1)))

	glassSphere := geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1, material.NewDielectric(1.5))
	fogBoundary := geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1.01, material.NewDielectric(1.5))
	fog := geometry.NewConstantMedium(fogBoundary, 0.4, material.NewIsotropic(core.NewVec3(0.9, 0.9, 1.0)))

	metalSphere := geometry.NewSphere(core.NewVec3(0, 1, 2.6), 1, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1))

	light := geometry.NewSphere(core.NewVec3(0, 6, -2), 1.5, material.NewDiffuseLight(core.NewVec3(8, 8, 8)))

	objects := []geometry.Shape{ground, marbleSphere, movingSphere, glassSphere, fog, metalSphere, light}
	lights := geometry.NewHittableList(light)

	return New(objects, lights, core.NewVec3(0.5, 0.7, 1.0), cam, 7)
}
