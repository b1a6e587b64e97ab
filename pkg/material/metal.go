package material

import (
	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection.
// Fuzz blurs the reflection: 0 is a perfect mirror, values beyond 1 are
// permitted and look increasingly diffuse.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal creates a new metal material. Fuzz must be non-negative.
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz < 0 {
		panic("material: metal fuzz must be >= 0")
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter mirrors the incoming unit direction off the surface and, when
// fuzz is configured, perturbs the reflection by a scaled random unit
// vector. A perturbed reflection may point below the surface; it is not
// rejected, which is an accepted visual artifact.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal).Normalize()

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.SampleUnitVector(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)

	return ScatterRecord{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}
