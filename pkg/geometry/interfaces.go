// Package geometry implements the shapes the renderer intersects rays
// against: spheres, axis-aligned rectangles, boxes, participating media,
// instancing wrappers, and the BVH that accelerates traversal over all of
// them.
package geometry

import (
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// Shape is anything a ray can be tested against. Hit takes a Sampler
// because ConstantMedium needs randomness to pick a scattering distance;
// every other shape's intersection test is deterministic and ignores it.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
