package material

import (
	"math"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent refractive material like glass.
// It never darkens a path: attenuation is always white.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter reflects or refracts the incoming ray. Total internal reflection
// forces a mirror reflection; otherwise one uniform draw against the
// Schlick reflectance decides between the two.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	// Entering the material crosses from air into it, exiting the reverse
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex
	} else {
		refractionRatio = d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || d.reflectance(cosTheta) > sampler.Get1D() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)

	return ScatterRecord{
		Scattered:   scattered,
		Attenuation: core.NewVec3(1.0, 1.0, 1.0),
	}, true
}

// reflectance estimates the Fresnel reflectance fraction with Schlick's
// approximation
func (d *Dielectric) reflectance(cosine float64) float64 {
	r0 := (1.0 - d.RefractionIndex) / (1.0 + d.RefractionIndex)
	r0 = r0 * r0
	return r0 + (1.0-r0)*math.Pow(1.0-cosine, 5)
}
