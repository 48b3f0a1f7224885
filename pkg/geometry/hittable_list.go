package geometry

import (
	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// lightTarget is anything HittableList can importance-sample toward, a
// narrower view of Shape plus the PDF-related methods that only matter for
// light sampling. Sphere and Rect implement it directly.
type lightTarget interface {
	Shape
	PDFValue(origin, direction core.Vec3) float64
	RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// HittableList is an unordered collection of shapes, hit by testing each
// member and keeping the closest intersection. It also serves as a light
// list: PDFValue averages the density across every member, and
// RandomDirection picks a member uniformly at random before sampling it.
type HittableList struct {
	Objects []Shape
}

// NewHittableList builds an empty list, optionally seeded with shapes.
func NewHittableList(objects ...Shape) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends a shape to the list.
func (l *HittableList) Add(shape Shape) {
	l.Objects = append(l.Objects, shape)
}

// Hit tests every member and returns the closest intersection, narrowing
// the valid t-range as closer hits are found so later shapes can reject
// quickly.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestT := tMax

	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(ray, tMin, closestT, sampler); ok {
			closestT = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the box surrounding every member.
func (l *HittableList) BoundingBox() core.AABB {
	if len(l.Objects) == 0 {
		return core.AABB{}
	}

	box := l.Objects[0].BoundingBox()
	for _, obj := range l.Objects[1:] {
		box = box.Surround(obj.BoundingBox())
	}
	return box
}

// PDFValue averages the per-member PDF density, so sampling the list as a
// whole is equivalent to sampling one member chosen uniformly at random.
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	target, ok := asLightTarget(l.Objects)
	if !ok {
		return 0
	}

	sum := 0.0
	for _, obj := range target {
		sum += obj.PDFValue(origin, direction)
	}
	return sum / float64(len(target))
}

// RandomDirection picks a member uniformly at random and samples a
// direction toward it.
func (l *HittableList) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	target, ok := asLightTarget(l.Objects)
	if !ok || len(target) == 0 {
		return core.Vec3{}
	}

	index := sampler.GetInt(len(target))
	return target[index].RandomDirection(origin, sampler)
}

func asLightTarget(objects []Shape) ([]lightTarget, bool) {
	targets := make([]lightTarget, 0, len(objects))
	for _, obj := range objects {
		t, ok := obj.(lightTarget)
		if !ok {
			return nil, false
		}
		targets = append(targets, t)
	}
	return targets, true
}
