package geometry

import (
	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
	"github.com/rtwknd/go-weekend-raytracer/pkg/material"
)

// Hittable is anything a ray can be tested against for intersection
type Hittable interface {
	// Hit returns the nearest intersection with a parameter strictly
	// inside rayT, or false when the ray misses
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over its whole
	// lifetime (t=0 through t=1 for moving objects)
	BoundingBox() core.AABB
}

// List is an unordered composite of hittables. Its bounding box is the
// union of its children's, maintained incrementally as objects are added.
type List struct {
	objects []Hittable
	bbox    core.AABB
}

// NewList creates an empty list
func NewList() *List {
	return &List{}
}

// Add appends an object to the list and grows the list's bounds
func (l *List) Add(object Hittable) {
	if len(l.objects) == 0 {
		l.bbox = object.BoundingBox()
	} else {
		l.bbox = core.NewAABBFromBoxes(l.bbox, object.BoundingBox())
	}
	l.objects = append(l.objects, object)
}

// Len returns the number of objects in the list
func (l *List) Len() int {
	return len(l.objects)
}

// Objects exposes the underlying slice. BVH construction partitions it in
// place, so the list must not be queried concurrently with a build.
func (l *List) Objects() []Hittable {
	return l.objects
}

// Hit scans every child and keeps the closest hit, shrinking the upper
// bound of the search interval to the current best t after each match
func (l *List) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, core.Interval{Min: rayT.Min, Max: closestSoFar}); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all children's bounds
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}
