package core

// Ray represents a ray with an origin, direction and the shutter time at
// which it was cast. Direction is not required to be unit length; callers
// that need a normalized direction call Normalize() explicitly.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a ray at time 0. Most geometry tests only need this form;
// the camera is the only component that stamps a nonzero Time.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtTime creates a ray cast at the given shutter time.
func NewRayAtTime(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
