package geometry

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// Translate wraps a shape, offsetting it in space. Rather than transforming
// the shape's own geometry, it transforms the incoming ray by -offset and
// transforms the hit point back by +offset, which works for any Shape
// without needing to know its geometry.
type Translate struct {
	Object Shape
	Offset core.Vec3
}

// NewTranslate offsets obj by offset.
func NewTranslate(obj Shape, offset core.Vec3) *Translate {
	return &Translate{Object: obj, Offset: offset}
}

// Hit tests the ray, translated into the object's local space.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	translated := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(translated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox shifts the wrapped shape's box by Offset.
func (t *Translate) BoundingBox() core.AABB {
	box := t.Object.BoundingBox()
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

// RotationAxis selects which axis a Rotate wrapper spins around.
type RotationAxis int

const (
	AxisX RotationAxis = iota
	AxisY
	AxisZ
)

// axisPair returns the two coordinate indices that rotate around Axis,
// matching the book's uniform ax1/ax2 formula, which spins ax2 into ax1:
// X rotation spins Z into Y, Y rotation spins Z into X (so Y stays put),
// Z rotation spins Y into X.
func (a RotationAxis) axisPair() (ax1, ax2 int) {
	switch a {
	case AxisX:
		return 1, 2
	case AxisY:
		return 0, 2
	default:
		return 0, 1
	}
}

// Rotate wraps a shape, rotating it by Angle degrees around Axis. Like
// Translate, it works by rotating the incoming ray by -angle and rotating
// the resulting hit point and normal back by +angle, so it never needs the
// wrapped shape's geometry.
type Rotate struct {
	Object   Shape
	Axis     RotationAxis
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotate wraps obj, rotating it by angleDegrees around axis, and
// recomputes a tight axis-aligned bounding box by rotating all 8 corners
// of the object's original box.
func NewRotate(obj Shape, axis RotationAxis, angleDegrees float64) *Rotate {
	theta := angleDegrees * math.Pi / 180
	r := &Rotate{Object: obj, Axis: axis, sinTheta: math.Sin(theta), cosTheta: math.Cos(theta)}

	box := obj.BoundingBox()

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerp(box.Min.X, box.Max.X, i)
				y := lerp(box.Min.Y, box.Max.Y, j)
				z := lerp(box.Min.Z, box.Max.Z, k)

				corner := core.NewVec3(x, y, z)
				rotated := r.rotateForward(corner)

				min = core.NewVec3(math.Min(min.X, rotated.X), math.Min(min.Y, rotated.Y), math.Min(min.Z, rotated.Z))
				max = core.NewVec3(math.Max(max.X, rotated.X), math.Max(max.Y, rotated.Y), math.Max(max.Z, rotated.Z))
			}
		}
	}

	r.bbox = core.NewAABB(min, max)
	return r
}

func lerp(min, max float64, i int) float64 {
	if i == 1 {
		return max
	}
	return min
}

// rotateForward rotates a vector by +theta around Axis.
func (r *Rotate) rotateForward(v core.Vec3) core.Vec3 {
	ax1, ax2 := r.Axis.axisPair()
	components := [3]float64{v.X, v.Y, v.Z}

	a1, a2 := components[ax1], components[ax2]
	components[ax1] = r.cosTheta*a1 + r.sinTheta*a2
	components[ax2] = -r.sinTheta*a1 + r.cosTheta*a2

	return core.NewVec3(components[0], components[1], components[2])
}

// rotateBackward rotates a vector by -theta around Axis — the inverse of
// rotateForward, applied to incoming rays before testing the wrapped shape.
func (r *Rotate) rotateBackward(v core.Vec3) core.Vec3 {
	ax1, ax2 := r.Axis.axisPair()
	components := [3]float64{v.X, v.Y, v.Z}

	a1, a2 := components[ax1], components[ax2]
	components[ax1] = r.cosTheta*a1 - r.sinTheta*a2
	components[ax2] = r.sinTheta*a1 + r.cosTheta*a2

	return core.NewVec3(components[0], components[1], components[2])
}

// Hit rotates the incoming ray by -theta, tests the wrapped object, then
// rotates the resulting point and normal back by +theta.
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	origin := r.rotateBackward(ray.Origin)
	direction := r.rotateBackward(ray.Direction)
	rotatedRay := core.NewRayAtTime(origin, direction, ray.Time)

	hit, ok := r.Object.Hit(rotatedRay, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	point := r.rotateForward(hit.Point)
	normal := r.rotateForward(hit.Normal)

	// The wrapped shape already oriented the normal against the rotated ray
	// and set FrontFace; rotation preserves that relationship.
	hit.Point = point
	hit.Normal = normal

	return hit, true
}

// BoundingBox returns the precomputed axis-aligned box around the rotated shape.
func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}

// Flip wraps a shape and inverts which side is considered the front face —
// useful for light panels that should emit into an enclosure rather than
// out of it.
type Flip struct {
	Object Shape
}

// NewFlip wraps obj with its front/back face inverted.
func NewFlip(obj Shape) *Flip {
	return &Flip{Object: obj}
}

// Hit delegates to the wrapped shape and inverts FrontFace.
func (f *Flip) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox defers to the wrapped shape.
func (f *Flip) BoundingBox() core.AABB {
	return f.Object.BoundingBox()
}

// PDFValue and RandomDirection pass through to the wrapped shape when it
// supports light sampling, letting a Flip-wrapped light still be importance
// sampled.
func (f *Flip) PDFValue(origin, direction core.Vec3) float64 {
	if target, ok := f.Object.(lightTarget); ok {
		return target.PDFValue(origin, direction)
	}
	return 0
}

func (f *Flip) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if target, ok := f.Object.(lightTarget); ok {
		return target.RandomDirection(origin, sampler)
	}
	return core.Vec3{}
}
