package material

import (
	"math"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
)

// Material interface for surfaces that can scatter rays.
// Scatter returns false when the ray is absorbed, terminating the path.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool)
}

// ScatterRecord contains the outgoing ray and color attenuation produced
// by a successful scatter
type ScatterRecord struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// HitRecord contains information about a ray-object intersection.
// Normal always stores the outward unit normal of the surface, never
// flipped toward the ray; FrontFace records which side was hit instead.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Outward unit normal at the intersection
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front (outside) face
	Material  Material  // Material of the hit object
}

// NewHitRecord creates a hit record for an intersection at parameter t.
// outwardNormal must be a unit vector pointing away from the surface.
func NewHitRecord(point, outwardNormal core.Vec3, ray core.Ray, mat Material, t float64) *HitRecord {
	return &HitRecord{
		Point:     point,
		Normal:    outwardNormal,
		T:         t,
		FrontFace: ray.Direction.Dot(outwardNormal) < 0,
		Material:  mat,
	}
}

// reflect calculates the mirror reflection of v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract calculates the refraction of unit vector uv through a surface
// with normal n using Snell's law, decomposed into perpendicular and
// parallel components
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
