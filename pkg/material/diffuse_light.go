package material

import "github.com/dpryor42/gopathtracer/pkg/core"

// DiffuseLight emits a constant color from its front face and absorbs
// every incoming ray; it never scatters.
type DiffuseLight struct {
	Emission core.Color
}

// NewDiffuseLight creates an emissive material with the given emission color.
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter always fails: emissive surfaces absorb every incoming ray.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is unused: DiffuseLight never scatters.
func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission color, but only from the front face: a light
// panel facing away from the ray contributes nothing.
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Color{}
	}
	return e.Emission
}
