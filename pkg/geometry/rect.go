package geometry

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// rectPlane identifies which two axes a Rect spans.
type rectPlane int

const (
	PlaneXY rectPlane = iota
	PlaneXZ
	PlaneYZ
)

// Rect is an axis-aligned rectangle spanning [A0,A1] x [B0,B1] at a fixed
// coordinate K on the third axis — the book's Rectangle<ax0,ax1>, used for
// walls, floors, and light panels.
type Rect struct {
	Plane          rectPlane
	A0, A1, B0, B1 float64
	K              float64
	Material       material.Material
}

// NewXYRect creates a rectangle in the XY plane at Z=k.
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle in the XZ plane at Y=k.
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle in the YZ plane at X=k.
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

func (r *Rect) normal() core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// axisValues extracts (origin-on-K-axis, a, b) from a point according to
// which plane this rectangle lies in.
func (r *Rect) axisValues(p core.Vec3) (k, a, b float64) {
	switch r.Plane {
	case PlaneXY:
		return p.Z, p.X, p.Y
	case PlaneXZ:
		return p.Y, p.X, p.Z
	default:
		return p.X, p.Y, p.Z
	}
}

func (r *Rect) pointFrom(k, a, b float64) core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(a, b, k)
	case PlaneXZ:
		return core.NewVec3(a, k, b)
	default:
		return core.NewVec3(k, a, b)
	}
}

// Hit intersects the ray with the rectangle's plane, then checks the hit
// point against the rectangle's bounds.
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	kOrigin, _, _ := r.axisValues(ray.Origin)
	kDir, _, _ := r.axisValues(ray.Direction)

	if math.Abs(kDir) < 1e-10 {
		return nil, false
	}

	t := (r.K - kOrigin) / kDir
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	_, a, b := r.axisValues(point)

	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    point,
		Material: r.Material,
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
	}
	hit.SetFaceNormal(ray, r.normal())

	return hit, true
}

// BoundingBox pads the degenerate axis by a small amount, so the rectangle
// has a nonzero-volume box the BVH can split on.
func (r *Rect) BoundingBox() core.AABB {
	const pad = 0.0001
	min := r.pointFrom(r.K-pad, r.A0, r.B0)
	max := r.pointFrom(r.K+pad, r.A1, r.B1)
	return core.NewAABBFromPoints(min, max)
}

// PDFValue converts the rectangle's uniform-area density into solid-angle
// density: pdf = d^2 / (cos(alpha) * area), where d is the distance to the
// hit point and alpha the angle between the ray and the rectangle's normal.
func (r *Rect) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	hit, ok := r.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}

	area := (r.A1 - r.A0) * (r.B1 - r.B0)
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * area)
}

// RandomDirection samples a uniform random point on the rectangle and
// returns the direction from origin toward it.
func (r *Rect) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	a := r.A0 + s.X*(r.A1-r.A0)
	b := r.B0 + s.Y*(r.B1-r.B0)
	point := r.pointFrom(r.K, a, b)
	return point.Subtract(origin)
}
