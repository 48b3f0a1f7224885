package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

// Image is a row-major RGB framebuffer with one accumulated radiance value
// per pixel, addressed (row, col) with row 0 at the top.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewImage allocates a black framebuffer of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// Set stores the averaged, not-yet-gamma-corrected radiance at (row, col).
func (img *Image) Set(row, col int, color core.Vec3) {
	img.Pixels[row*img.Width+col] = color
}

// WritePPM encodes the image as ASCII PPM (P3), gamma-correcting,
// clamping, and replacing any NaN channel with zero as it goes, per the
// pixel driver's finalization step.
func (img *Image) WritePPM(w io.Writer) error {
	buffered := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	for _, pixel := range img.Pixels {
		r, g, b := toneMap(pixel)
		if _, err := fmt.Fprintf(buffered, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}

	return buffered.Flush()
}

// toneMap applies the pixel driver's finalization: NaN channels become
// zero, gamma correction approximates γ=2 via componentwise sqrt, and the
// result is clamped to [0, 0.999] before scaling to an 8-bit channel.
func toneMap(color core.Vec3) (r, g, b int) {
	color = scrubNaN(color)
	color = color.Sqrt()
	color = color.Clamp(0, 0.999)

	return int(256 * color.X), int(256 * color.Y), int(256 * color.Z)
}

func scrubNaN(v core.Vec3) core.Vec3 {
	if math.IsNaN(v.X) {
		v.X = 0
	}
	if math.IsNaN(v.Y) {
		v.Y = 0
	}
	if math.IsNaN(v.Z) {
		v.Z = 0
	}
	return v
}
