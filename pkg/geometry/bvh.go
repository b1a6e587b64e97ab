package geometry

import (
	"sort"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
	"github.com/rtwknd/go-weekend-raytracer/pkg/material"
)

// BVHNode is a node of a bounding volume hierarchy built once over a scene
// list. Interior nodes bound their two subtrees; a single-object span
// stores that object as both children, so intersecting either yields the
// same result.
type BVHNode struct {
	left  Hittable
	right Hittable
	bbox  core.AABB
}

// NewBVH builds a hierarchy over the objects of a list. Construction
// partitions the list's underlying slice in place and must complete before
// the tree or the list is queried.
func NewBVH(list *List) *BVHNode {
	objects := list.Objects()
	if len(objects) == 0 {
		panic("geometry: cannot build a BVH over an empty list")
	}
	return buildBVH(objects, 0, len(objects))
}

// buildBVH builds the subtree for the half-open index range [start, end)
func buildBVH(objects []Hittable, start, end int) *BVHNode {
	node := &BVHNode{}

	span := end - start
	switch span {
	case 1:
		node.left = objects[start]
		node.right = objects[start]
	case 2:
		node.left = objects[start]
		node.right = objects[start+1]
	default:
		// Split along the widest axis of the range's combined bounds so
		// tree shape is reproducible across runs
		axis := rangeBounds(objects[start:end]).LongestAxis()

		sub := objects[start:end]
		sort.Slice(sub, func(i, j int) bool {
			return sub[i].BoundingBox().Axis(axis).Min < sub[j].BoundingBox().Axis(axis).Min
		})

		mid := (start + end) / 2
		node.left = buildBVH(objects, start, mid)
		node.right = buildBVH(objects, mid, end)
	}

	node.bbox = core.NewAABBFromBoxes(node.left.BoundingBox(), node.right.BoundingBox())
	return node
}

// rangeBounds returns the union of the bounding boxes of all objects
func rangeBounds(objects []Hittable) core.AABB {
	bounds := objects[0].BoundingBox()
	for _, object := range objects[1:] {
		bounds = core.NewAABBFromBoxes(bounds, object.BoundingBox())
	}
	return bounds
}

// Hit prunes the subtree when the node's box misses the ray. Otherwise the
// left subtree is searched over the full interval and any hit narrows the
// interval for the right search, so a right-side hit is never farther than
// the left one and wins when both subtrees report.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, leftOk := n.left.Hit(ray, rayT)

	rightT := rayT
	if leftOk {
		rightT = core.Interval{Min: rayT.Min, Max: leftHit.T}
	}
	rightHit, rightOk := n.right.Hit(ray, rightT)

	if rightOk {
		return rightHit, true
	}
	return leftHit, leftOk
}

// BoundingBox returns the union of the two children's boxes, computed once
// at construction
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
