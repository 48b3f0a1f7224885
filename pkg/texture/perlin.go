package texture

import (
	"math"
	"math/rand"

	"github.com/dpryor42/gopathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient-noise generator: a lattice of random unit vectors is
// interpolated with Hermite smoothing between cells, and summed over
// octaves (turbulence) to produce a marbled, non-periodic pattern.
type Perlin struct {
	ranvec              []core.Vec3
	permX, permY, permZ []int
}

// NewPerlin builds a Perlin noise generator seeded from random.
func NewPerlin(random *rand.Rand) *Perlin {
	ranvec := make([]core.Vec3, perlinPointCount)
	for i := range ranvec {
		v := core.NewVec3(
			random.Float64()*2-1,
			random.Float64()*2-1,
			random.Float64()*2-1,
		)
		ranvec[i] = v.Normalize()
	}

	return &Perlin{
		ranvec: ranvec,
		permX:  perlinGeneratePermutation(random),
		permY:  perlinGeneratePermutation(random),
		permZ:  perlinGeneratePermutation(random),
	}
}

func perlinGeneratePermutation(random *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	random.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Noise returns the interpolated gradient-noise value at p.
func (pn *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var weight [2][2][2]core.Vec3
	for dx := 0; dx < 2; dx++ {
		for dy := 0; dy < 2; dy++ {
			for dz := 0; dz < 2; dz++ {
				idx := pn.permX[(i+dx)&255] ^ pn.permY[(j+dy)&255] ^ pn.permZ[(k+dz)&255]
				weight[dx][dy][dz] = pn.ranvec[idx]
			}
		}
	}

	return perlinInterp(weight, u, v, w)
}

// Turbulence sums Noise over depth octaves at halving amplitude, producing
// the marbled composite pattern used by procedural solid textures.
func (pn *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	sum := 0.0
	amplitude := 1.0
	temp := p

	for i := 0; i < depth; i++ {
		sum += amplitude * pn.Noise(temp)
		amplitude *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(sum)
}

func perlinInterp(weight [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	sum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				dist := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				weightI := float64(i)*uu + float64(1-i)*(1-uu)
				weightJ := float64(j)*vv + float64(1-j)*(1-vv)
				weightK := float64(k)*ww + float64(1-k)*(1-ww)
				sum += weightI * weightJ * weightK * weight[i][j][k].Dot(dist)
			}
		}
	}

	return sum
}

// Noise is a procedural marble-like texture driven by Perlin turbulence:
// color oscillates with sin(scale*z + 10*turbulence(p)).
type Noise struct {
	perlin *Perlin
	Scale  float64
}

// NewNoise builds a noise texture at the given frequency scale.
func NewNoise(random *rand.Rand, scale float64) *Noise {
	return &Noise{perlin: NewPerlin(random), Scale: scale}
}

// Evaluate returns a grayscale color modulated by turbulent noise.
func (n *Noise) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	intensity := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.perlin.Turbulence(point, 7)))
	return core.NewVec3(intensity, intensity, intensity)
}
