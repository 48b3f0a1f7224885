package geometry

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// Sphere is a sphere whose center moves linearly between Center0 at Time0
// and Center1 at Time1, giving motion blur when Center0 == Center1 is
// false. A static sphere simply sets both centers equal.
type Sphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewSphere creates a static sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center0: center, Center1: center, Time0: 0, Time1: 1, Radius: radius, Material: mat}
}

// NewMovingSphere creates a sphere whose center interpolates linearly
// between center0 at time0 and center1 at time1.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// centerAt returns the sphere's center at the given ray time.
func (s *Sphere) centerAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit solves the ray/sphere quadratic at the ray's time-interpolated center.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	hit := &material.HitRecord{T: root, Point: point, Material: s.Material}
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to (u, v) texture coordinates.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox surrounds the sphere's full motion path.
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center0.Subtract(radius), s.Center0.Add(radius))
	box1 := core.NewAABB(s.Center1.Subtract(radius), s.Center1.Add(radius))
	return box0.Surround(box1)
}

// PDFValue returns the probability density, with respect to solid angle at
// origin, of a ray in direction hitting the sphere — the reciprocal of the
// solid angle the sphere subtends as seen from origin.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	if _, ok := s.Hit(ray, 0.001, math.Inf(1), nil); !ok {
		return 0
	}

	center := s.centerAt(ray.Time)
	distanceSquared := center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// RandomDirection samples a direction from origin uniformly over the cone
// subtended by the sphere, concentrating samples on the visible cap instead
// of wasting them on directions that can never hit it.
func (s *Sphere) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	center := s.centerAt(0)
	direction := center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)

	return core.SampleConeTowardSphere(direction, cosThetaMax, sampler.Get2D())
}
