package geometry

import (
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// Box is an axis-aligned rectangular box built from six Rects, one per
// face, the way the book assembles it from a HittableList of rectangles.
type Box struct {
	sides *HittableList
	bbox  core.AABB
}

// NewBox creates an axis-aligned box spanning the corners p0 and p1.
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	sides := NewHittableList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat),
	)

	return &Box{sides: sides, bbox: core.NewAABBFromPoints(p0, p1)}
}

// Hit tests the ray against all six faces and keeps the closest.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box's axis-aligned bounds.
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
