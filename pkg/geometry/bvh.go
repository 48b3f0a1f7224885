package geometry

import (
	"math/rand"
	"sort"

	"github.com/dpryor42/gopathtracer/pkg/core"
	"github.com/dpryor42/gopathtracer/pkg/material"
)

// BVHNode is one node of a bounding volume hierarchy. A leaf stores a single
// shape directly; an internal node stores two children whose boxes it
// surrounds. Unlike a balanced median-split tree, the split axis at each
// node is chosen at random, which is cheap to build and, averaged over many
// nodes, performs close to a cost-based split without needing one.
type BVHNode struct {
	box   core.AABB
	left  Shape
	right Shape
	leaf  Shape
}

// NewBVH builds a tree over shapes, splitting recursively: pick a random
// axis, sort the span by that axis's box minimum, and split it in half.
func NewBVH(shapes []Shape, random *rand.Rand) Shape {
	if len(shapes) == 0 {
		return &HittableList{}
	}

	span := make([]Shape, len(shapes))
	copy(span, shapes)

	return buildBVH(span, random)
}

func buildBVH(span []Shape, random *rand.Rand) Shape {
	switch len(span) {
	case 1:
		return &BVHNode{box: span[0].BoundingBox(), leaf: span[0]}
	case 2:
		axis := random.Intn(3)
		if boxMin(span[0], axis) <= boxMin(span[1], axis) {
			return newInternalNode(span[0], span[1])
		}
		return newInternalNode(span[1], span[0])
	}

	axis := random.Intn(3)
	sort.Slice(span, func(i, j int) bool {
		return boxMin(span[i], axis) < boxMin(span[j], axis)
	})

	mid := len(span) / 2
	left := buildBVH(span[:mid], random)
	right := buildBVH(span[mid:], random)
	return newInternalNode(left, right)
}

func newInternalNode(left, right Shape) *BVHNode {
	return &BVHNode{box: left.BoundingBox().Surround(right.BoundingBox()), left: left, right: right}
}

func boxMin(s Shape, axis int) float64 {
	box := s.BoundingBox()
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

// Hit descends the tree, skipping any subtree whose box the ray misses.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if n.leaf != nil {
		return n.leaf.Hit(ray, tMin, tMax, sampler)
	}

	leftHit, leftOK := n.left.Hit(ray, tMin, tMax, sampler)
	closest := tMax
	if leftOK {
		closest = leftHit.T
	}

	rightHit, rightOK := n.right.Hit(ray, tMin, closest, sampler)
	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

// BoundingBox returns the box surrounding this node's subtree.
func (n *BVHNode) BoundingBox() core.AABB {
	return n.box
}
