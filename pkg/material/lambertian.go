package material

import (
	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base reflective color
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray in the direction of the surface normal plus a
// uniformly sampled unit vector. When the two nearly cancel, the normal
// itself is used to avoid a degenerate zero-length direction.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	scatterDirection := hit.Normal.Add(core.SampleUnitVector(sampler))

	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.NewRayAt(hit.Point, scatterDirection, rayIn.Time)

	return ScatterRecord{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
