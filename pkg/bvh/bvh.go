// Package bvh builds and queries a bounding volume hierarchy over a list of
// primitives so ray intersection cost grows logarithmically with scene size
// instead of linearly.
package bvh

import (
	"sort"

	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/material"
	"github.com/tjrivera/pathtracer/pkg/primitive"
)

// Node is a BVH node: either a leaf wrapping a single primitive, or an
// internal node with two children, recursively splitting the scene's
// primitives along the axis with the greatest centroid extent.
type Node struct {
	box   core.AABB
	leaf  *primitive.Primitive
	left  *Node
	right *Node
}

// Build constructs a BVH over prims by recursively splitting on the longest
// axis of the primitives' centroid bounds. prims is sorted in place as part
// of the build; callers that need the original order should pass a copy.
func Build(prims []*primitive.Primitive) *Node {
	n := len(prims)
	if n == 0 {
		return &Node{box: core.AABB{}}
	}
	if n == 1 {
		return &Node{box: prims[0].BoundingBox(), leaf: prims[0]}
	}

	axis := centroidBounds(prims).LongestAxis()
	sort.Slice(prims, func(i, j int) bool {
		return prims[i].BoundingBox().Center().Axis(axis) < prims[j].BoundingBox().Center().Axis(axis)
	})

	if n == 2 {
		left := &Node{box: prims[0].BoundingBox(), leaf: prims[0]}
		right := &Node{box: prims[1].BoundingBox(), leaf: prims[1]}
		return &Node{box: left.box.Union(right.box), left: left, right: right}
	}

	mid := n / 2
	left := Build(prims[:mid])
	right := Build(prims[mid:])
	return &Node{box: left.box.Union(right.box), left: left, right: right}
}

// centroidBounds returns the AABB enclosing every primitive's centroid,
// which is what decides the split axis (not the primitives' own extents).
func centroidBounds(prims []*primitive.Primitive) core.AABB {
	centers := make([]core.Vec3, len(prims))
	for i, p := range prims {
		centers[i] = p.BoundingBox().Center()
	}
	return core.NewAABBFromPoints(centers...)
}

// BoundingBox returns the node's enclosing box.
func (n *Node) BoundingBox() core.AABB {
	return n.box
}

// Hit finds the nearest intersection within (tMin, tMax), narrowing tMax as
// nearer hits are found so the farther side of each split is culled early.
func (n *Node) Hit(ray core.Ray, tMin, tMax float64, s *core.Sampler) (material.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return material.HitRecord{}, false
	}

	if n.leaf != nil {
		return n.leaf.Hit(ray, tMin, tMax, s)
	}
	if n.left == nil && n.right == nil {
		// Empty tree (Build with zero primitives): the degenerate zero-size
		// box above should already have failed the slab test, but a
		// ray both originating and pointing at the exact zero vector turns
		// the slab test's (min-o)*invD into 0*Inf = NaN, which makes every
		// comparison false and falls through to a true hit. Guard here
		// rather than rely on the box test alone.
		return material.HitRecord{}, false
	}

	leftHit, leftOK := n.left.Hit(ray, tMin, tMax, s)
	if leftOK {
		tMax = leftHit.T
	}
	rightHit, rightOK := n.right.Hit(ray, tMin, tMax, s)
	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}
