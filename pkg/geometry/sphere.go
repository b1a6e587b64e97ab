package geometry

import (
	"math"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
	"github.com/rtwknd/go-weekend-raytracer/pkg/material"
)

// Sphere is a hittable primitive. Its center is stored as a ray so a
// moving sphere can interpolate linearly between its t=0 and t=1
// positions; a stationary sphere has a zero direction.
type Sphere struct {
	center core.Ray
	radius float64
	mat    material.Material
	bbox   core.AABB
}

// NewSphere creates a stationary sphere. Radius must be non-negative.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	if radius < 0 {
		panic("geometry: sphere radius must be >= 0")
	}
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		center: core.NewRay(center, core.NewVec3(0, 0, 0)),
		radius: radius,
		mat:    mat,
		bbox:   core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere that moves from center at t=0 to
// targetCenter at t=1. Its bounding box spans both endpoints.
func NewMovingSphere(center, targetCenter core.Vec3, radius float64, mat material.Material) *Sphere {
	if radius < 0 {
		panic("geometry: sphere radius must be >= 0")
	}
	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec))
	box1 := core.NewAABBFromPoints(targetCenter.Subtract(rvec), targetCenter.Add(rvec))
	return &Sphere{
		center: core.NewRay(center, targetCenter.Subtract(center)),
		radius: radius,
		mat:    mat,
		bbox:   core.NewAABBFromBoxes(box0, box1),
	}
}

// Center returns the sphere's center at the given time
func (s *Sphere) Center(time float64) core.Vec3 {
	return s.center.At(time)
}

// Radius returns the sphere's radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Hit solves the ray-sphere quadratic t²(d·d) - 2t(d·oc) + (oc·oc - r²) = 0
// using the half-b substitution h = d·oc, so the discriminant is h² - a*c.
// The smaller root is tried first; the larger one only if it is rejected,
// preserving nearest-hit semantics.
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	currentCenter := s.center.At(ray.Time)

	oc := currentCenter.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitPoint := ray.At(root)
	// Division by the radius makes this a unit vector pointing outward
	outwardNormal := hitPoint.Subtract(currentCenter).Multiply(1 / s.radius)

	return material.NewHitRecord(hitPoint, outwardNormal, ray, s.mat, root), true
}

// BoundingBox returns the precomputed bounds
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}
