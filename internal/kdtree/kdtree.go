// Package kdtree implements a minimal static k-d tree over 3D points, keyed
// by dense integer slots 0..n-1 — the same "kd-tree library is keyed by
// dense 0..n-1 slots" shape spec.md §3 calls out for the mapper's spatial
// neighbor index, and which registration's correspondence search and
// pointcloud's radius-outlier filter also need.
//
// This is a from-scratch, self-contained implementation rather than a thin
// wrapper over gonum.org/v1/gonum/spatial/kdtree: that package's Interface
// requires implementing a median-partition Pivot method against its
// internal sort contract, which this module cannot safely get right without
// a build-and-test loop. gonum remains the library of choice everywhere
// else in this module (quat, mat); see DESIGN.md for this one
// exception.
package kdtree

import (
	"math"

	"github.com/golang/geo/r3"
)

// Tree is a static balanced k-d tree over a fixed point set. Slot i of the
// tree corresponds to Points()[i] — callers keep their own slot -> payload
// side table, as spec.md §4.4 describes for the mapper's neighbor index.
type Tree struct {
	points []r3.Vector
	nodes  []node
	root   int
}

type node struct {
	slot        int
	left, right int // index into nodes, or -1
}

const nilNode = -1

// New builds a k-d tree over points. The returned tree's slot numbering
// matches the input slice order (Points()[i] is slot i), even though the
// tree internally reorders a working copy to build a balanced structure.
func New(points []r3.Vector) *Tree {
	t := &Tree{points: points}
	if len(points) == 0 {
		t.root = nilNode
		return t
	}
	slots := make([]int, len(points))
	for i := range slots {
		slots[i] = i
	}
	t.nodes = make([]node, 0, len(points))
	t.root = t.build(slots, 0)
	return t
}

func (t *Tree) build(slots []int, depth int) int {
	if len(slots) == 0 {
		return nilNode
	}
	axis := depth % 3
	sortSlotsByAxis(slots, t.points, axis)
	mid := len(slots) / 2

	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{slot: slots[mid], left: nilNode, right: nilNode})
	left := t.build(slots[:mid], depth+1)
	right := t.build(slots[mid+1:], depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// sortSlotsByAxis sorts slots in place by the given coordinate axis of
// points, using a simple insertion sort for every input size —
// deterministic and easy to audit rather than fastest.
func sortSlotsByAxis(slots []int, points []r3.Vector, axis int) {
	coord := func(i int) float64 {
		switch axis {
		case 0:
			return points[i].X
		case 1:
			return points[i].Y
		default:
			return points[i].Z
		}
	}
	for i := 1; i < len(slots); i++ {
		j := i
		for j > 0 && coord(slots[j-1]) > coord(slots[j]) {
			slots[j-1], slots[j] = slots[j], slots[j-1]
			j--
		}
	}
}

// Points returns the tree's backing point slice. Slot i is Points()[i].
func (t *Tree) Points() []r3.Vector {
	return t.points
}

// RadiusSearch returns every slot within radius of query, in unspecified
// order (spec §4.4: "Returns the list of vertex handles in unspecified
// order").
func (t *Tree) RadiusSearch(query r3.Vector, radius float64) []int {
	var out []int
	if t.root == nilNode {
		return out
	}
	r2 := radius * radius
	t.radiusSearch(t.root, query, r2, 0, &out)
	return out
}

func (t *Tree) radiusSearch(idx int, query r3.Vector, r2 float64, depth int, out *[]int) {
	if idx == nilNode {
		return
	}
	n := t.nodes[idx]
	p := t.points[n.slot]
	if p.Sub(query).Norm2() <= r2 {
		*out = append(*out, n.slot)
	}

	axis := depth % 3
	diff := axisDiff(query, p, axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.radiusSearch(near, query, r2, depth+1, out)
	if diff*diff <= r2 {
		t.radiusSearch(far, query, r2, depth+1, out)
	}
}

// CountWithinRadius returns the number of points within radius of query,
// excluding query's own slot when selfSlot >= 0 (pointcloud's radius
// outlier filter, spec §4.1, counts neighbors of a point excluding itself).
func (t *Tree) CountWithinRadius(query r3.Vector, radius float64, selfSlot int) int {
	count := 0
	for _, slot := range t.RadiusSearch(query, radius) {
		if slot == selfSlot {
			continue
		}
		count++
	}
	return count
}

// NearestWithin returns the slot of the point nearest query that is at most
// maxDist away, and whether any such point exists. Used by registration's
// correspondence search (spec component D), which needs a single nearest
// neighbor bounded by max_correspondence_distance.
func (t *Tree) NearestWithin(query r3.Vector, maxDist float64) (slot int, dist float64, ok bool) {
	if t.root == nilNode {
		return 0, 0, false
	}
	bestSlot := -1
	bestDist2 := maxDist * maxDist
	t.nearest(t.root, query, 0, &bestSlot, &bestDist2)
	if bestSlot < 0 {
		return 0, 0, false
	}
	return bestSlot, math.Sqrt(bestDist2), true
}

func (t *Tree) nearest(idx int, query r3.Vector, depth int, bestSlot *int, bestDist2 *float64) {
	if idx == nilNode {
		return
	}
	n := t.nodes[idx]
	p := t.points[n.slot]
	d2 := p.Sub(query).Norm2()
	if d2 <= *bestDist2 {
		*bestDist2 = d2
		*bestSlot = n.slot
	}

	axis := depth % 3
	diff := axisDiff(query, p, axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.nearest(near, query, depth+1, bestSlot, bestDist2)
	if diff*diff <= *bestDist2 {
		t.nearest(far, query, depth+1, bestSlot, bestDist2)
	}
}

func axisDiff(a, b r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return a.X - b.X
	case 1:
		return a.Y - b.Y
	default:
		return a.Z - b.Z
	}
}

