package scene

import (
	"github.com/dpryor42/gopathtracer/pkg/camera"
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/geometry"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// NewCornellScene builds the classic Cornell box: a 555-unit white room
// with a red left wall, a green right wall, a small ceiling light, and two
// rotated boxes — the canonical integration test for light sampling,
// shadowing, and instancing.
func NewCornellScene() *Scene {
	cam := camera.New(camera.Config{
		LookFrom:     core.NewVec3(278, 278, -800),
		LookAt:       core.NewVec3(278, 278, 0),
		Up:           core.NewVec3(0, 1, 0),
		Aperture:     0,
		FocusDist:    10,
		VFov:         40,
		Aspect:       1,
		ShutterOpen:  0,
		ShutterClose: 0,
	})

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	lightMat := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	const box = 555.0

	leftWall := geometry.NewYZRect(0, box, 0, box, box, red)     // x=555
	rightWall := geometry.NewYZRect(0, box, 0, box, 0, green)    // x=0
	floor := geometry.NewXZRect(0, box, 0, box, 0, white)        // y=0
	ceiling := geometry.NewXZRect(0, box, 0, box, box, white)    // y=555
	backWall := geometry.NewXYRect(0, box, 0, box, box, white)   // z=555
	ceilingLight := geometry.NewFlip(geometry.NewXZRect(213, 343, 227, 332, 554, lightMat))

	tallBox := geometry.NewTranslate(
		geometry.NewRotate(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			geometry.AxisY, 15),
		core.NewVec3(265, 0, 295))

	shortBox := geometry.NewTranslate(
		geometry.NewRotate(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			geometry.AxisY, -18),
		core.NewVec3(130, 0, 65))

	objects := []geometry.Shape{leftWall, rightWall, floor, ceiling, backWall, ceilingLight, tallBox, shortBox}
	lights := geometry.NewHittableList(ceilingLight)

	return New(objects, lights, core.Vec3{}, cam, 1)
}
