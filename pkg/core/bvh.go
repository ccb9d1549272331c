package core

import "sync/atomic"

// BVHNode is a node in the bounding-volume hierarchy. A node is a
// leaf iff both children are nil; a leaf's [start, end) range
// indexes into the BVH's shared, permuted primitive slice.
type BVHNode struct {
	BoundingBox AABB
	Left, Right *BVHNode
	Start, End  int // valid only on leaves
}

func (n *BVHNode) isLeaf() bool { return n.Left == nil && n.Right == nil }

// BVH accelerates ray/primitive queries over a fixed primitive set.
// A pointer tree is used rather than an index-arena (the arena form
// is a valid alternative that trades a little construction
// simplicity for better cache locality — see DESIGN.md); the
// primitives slice itself is built once, permuted in place during
// construction, and never reordered again for the life of the BVH.
type BVH struct {
	Root       *BVHNode
	primitives []Primitive

	// TotalIsects counts every primitive-level Hit test performed by
	// this BVH, across all goroutines that traverse it concurrently
	// during a render. Diagnostic only (spec §4.4).
	TotalIsects atomic.Int64
}

// leaf ranges of this size or smaller stop recursing (spec §4.3 step 3).
const defaultMaxLeafSize = 4

// NewBVH builds a BVH over primitives using the default leaf size.
func NewBVH(primitives []Primitive) *BVH {
	return NewBVHWithLeafSize(primitives, defaultMaxLeafSize)
}

// NewBVHWithLeafSize builds a BVH, permuting a private copy of
// primitives in place as it partitions (spec §4.3 step 5).
func NewBVHWithLeafSize(primitives []Primitive, maxLeafSize int) *BVH {
	if maxLeafSize <= 0 {
		maxLeafSize = defaultMaxLeafSize
	}
	owned := make([]Primitive, len(primitives))
	copy(owned, primitives)

	bvh := &BVH{primitives: owned}
	if len(owned) == 0 {
		return bvh
	}
	bvh.Root = build(owned, 0, len(owned), maxLeafSize)
	return bvh
}

// centroidStats holds running sums for mean/variance of centroids
// along each axis, computed in a single pass over [start, end).
type centroidStats struct {
	n          int
	sum, sumSq Vec3
}

func (s *centroidStats) add(c Vec3) {
	s.n++
	s.sum = s.sum.Add(c)
	s.sumSq = s.sumSq.Add(c.MultiplyVec(c))
}

func (s centroidStats) mean() Vec3 {
	if s.n == 0 {
		return Vec3{}
	}
	return s.sum.Multiply(1.0 / float64(s.n))
}

// variance returns per-axis population variance: E[c^2] - E[c]^2.
func (s centroidStats) variance() Vec3 {
	if s.n == 0 {
		return Vec3{}
	}
	m := s.mean()
	meanSq := s.sumSq.Multiply(1.0 / float64(s.n))
	return Vec3{
		X: meanSq.X - m.X*m.X,
		Y: meanSq.Y - m.Y*m.Y,
		Z: meanSq.Z - m.Z*m.Z,
	}
}

// maxVarianceAxis returns the axis (0/1/2) whose centroid variance is
// largest. This is the split-axis rule fixed by DESIGN.md's Open
// Question decision: variance, not bounding-box extent, so the split
// adapts to clustering even when the box itself is roughly cubic.
func maxVarianceAxis(v Vec3) int {
	if v.X >= v.Y && v.X >= v.Z {
		return 0
	}
	if v.Y >= v.Z {
		return 1
	}
	return 2
}

// build recursively constructs the subtree over primitives[start:end],
// partitioning the shared slice in place (spec §4.3).
func build(primitives []Primitive, start, end, maxLeafSize int) *BVHNode {
	bounds := EmptyAABB()
	var stats centroidStats
	for i := start; i < end; i++ {
		b := primitives[i].BoundingBox()
		bounds = bounds.Union(b)
		stats.add(b.Centroid())
	}

	if end-start <= maxLeafSize {
		return &BVHNode{BoundingBox: bounds, Start: start, End: end}
	}

	axis := maxVarianceAxis(stats.variance())
	mid := Axis(stats.mean(), axis)

	splitIdx := partition(primitives, start, end, axis, mid)

	// Degenerate split (every centroid landed on the same side):
	// stop recursing rather than looping forever on an unsplittable range.
	if splitIdx == start || splitIdx == end {
		return &BVHNode{BoundingBox: bounds, Start: start, End: end}
	}

	return &BVHNode{
		BoundingBox: bounds,
		Left:        build(primitives, start, splitIdx, maxLeafSize),
		Right:       build(primitives, splitIdx, end, maxLeafSize),
	}
}

// partition performs an in-place, single-pass (Lomuto-style)
// partition of primitives[start:end] into "centroid[axis] <= mid"
// (left) and "centroid[axis] > mid" (right), returning the boundary
// index. This is a pure permutation of the range — no allocation, no
// copy outside the range — satisfying spec §4.3 step 5.
func partition(primitives []Primitive, start, end, axis int, mid float64) int {
	i := start
	for j := start; j < end; j++ {
		if Axis(primitives[j].BoundingBox().Centroid(), axis) <= mid {
			primitives[i], primitives[j] = primitives[j], primitives[i]
			i++
		}
	}
	return i
}

// HasIntersection reports whether ray hits any primitive within
// [ray.TMin, ray.TMax], short-circuiting on the first hit (spec §4.4).
func (bvh *BVH) HasIntersection(ray Ray) bool {
	if bvh.Root == nil {
		return false
	}
	return bvh.hasIntersection(bvh.Root, ray)
}

func (bvh *BVH) hasIntersection(node *BVHNode, ray Ray) bool {
	if !node.BoundingBox.HitRange(ray, ray.TMin, ray.TMax) {
		return false
	}
	if node.isLeaf() {
		for i := node.Start; i < node.End; i++ {
			bvh.TotalIsects.Add(1)
			if _, hit := bvh.primitives[i].Hit(ray); hit {
				return true
			}
		}
		return false
	}
	// Short-circuit is fine here: existence doesn't need the closest hit.
	return bvh.hasIntersection(node.Left, ray) || bvh.hasIntersection(node.Right, ray)
}

// Intersect finds the closest hit along ray within [ray.TMin,
// ray.TMax] (spec §4.4). Both children of an internal node are
// always visited — closest-hit search cannot short-circuit — with
// the caller's tMax narrowed to the closest hit found so far so later
// subtrees prune against it.
func (bvh *BVH) Intersect(ray Ray) (Intersection, bool) {
	if bvh.Root == nil {
		return Intersection{}, false
	}
	return bvh.intersect(bvh.Root, ray)
}

func (bvh *BVH) intersect(node *BVHNode, ray Ray) (Intersection, bool) {
	if !node.BoundingBox.HitRange(ray, ray.TMin, ray.TMax) {
		return Intersection{}, false
	}

	if node.isLeaf() {
		var closest Intersection
		found := false
		tMax := ray.TMax
		for i := node.Start; i < node.End; i++ {
			bvh.TotalIsects.Add(1)
			if isect, hit := bvh.primitives[i].Hit(ray.WithTMax(tMax)); hit {
				found = true
				tMax = isect.T
				closest = isect
			}
		}
		return closest, found
	}

	leftHit, leftFound := bvh.intersect(node.Left, ray)
	tMax := ray.TMax
	if leftFound {
		tMax = leftHit.T
	}
	rightHit, rightFound := bvh.intersect(node.Right, ray.WithTMax(tMax))

	switch {
	case rightFound:
		return rightHit, true
	case leftFound:
		return leftHit, true
	default:
		return Intersection{}, false
	}
}

// PrimitiveCount returns the number of primitives indexed by this BVH.
func (bvh *BVH) PrimitiveCount() int { return len(bvh.primitives) }

// WorldBounds returns the bounding box of the whole hierarchy, or an
// empty box if it has no primitives.
func (bvh *BVH) WorldBounds() AABB {
	if bvh.Root == nil {
		return EmptyAABB()
	}
	return bvh.Root.BoundingBox
}
