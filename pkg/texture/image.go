package texture

import "github.com/dpryor42/gopathtracer/pkg/core"

// Image provides color sampled from a 2D in-memory RGB image, addressed by
// UV coordinates.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3 // row-major: Pixels[y*Width+x], linear [0,1] color
}

// NewImage wraps a decoded pixel buffer as a ColorSource.
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Evaluate samples the image with nearest-neighbor filtering. UV is clamped
// to [0,1] and V is flipped so that V=0 addresses the bottom row of the
// image, matching the book's texture coordinate convention.
func (t *Image) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if len(t.Pixels) == 0 {
		return core.Vec3{}
	}

	u := clamp01(uv.X)
	v := 1.0 - clamp01(uv.Y)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
