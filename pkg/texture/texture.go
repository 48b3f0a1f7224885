// Package texture provides spatially-varying color sources for materials:
// solid colors, checker patterns, Perlin noise, and sampled images.
package texture

import (
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials. UV is used
// by image textures, point by procedural ones; most sources only need one.
type ColorSource interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor returns the same color everywhere.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor wraps a constant color as a ColorSource.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position.
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two sources based on the sign of
// sin(10x)*sin(10y)*sin(10z), producing a 3D checkerboard pattern that
// follows surfaces through space rather than being mapped onto UV.
type Checker struct {
	Even, Odd ColorSource
}

// NewChecker builds a checker pattern from two color sources.
func NewChecker(even, odd ColorSource) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerColors is a convenience constructor taking two solid colors.
func NewCheckerColors(c1, c2 core.Vec3) *Checker {
	return &Checker{Even: NewSolidColor(c1), Odd: NewSolidColor(c2)}
}

// Evaluate picks Even or Odd based on the sign of the 3D sine product.
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines > 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
