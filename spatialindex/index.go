// Package spatialindex implements spec component F: a per-sensor spatial
// neighbor index over the current corrected poses of a pose graph,
// proposing loop-closure candidates for the mapper.
//
// Grounded on original_source/src/GraphMapper.cpp's explicit
// rebuild-then-query policy (spec §4.4: the index is never auto-invalidated
// on graph mutation; callers rebuild before querying) and built on
// internal/kdtree rather than gonum.org/v1/gonum/spatial/kdtree — see
// DESIGN.md for why the generic gonum kdtree.Interface contract was not
// used here.
package spatialindex

import (
	"github.com/golang/geo/r3"

	"go.viam.com/slam3d/internal/kdtree"
	"go.viam.com/slam3d/posegraph"
)

// Index is a snapshot of one sensor's vertex translations, queryable for
// spatial neighbors. It is immutable once built; the mapper discards and
// rebuilds it after graph mutations (spec §4.4).
type Index struct {
	tree       *kdtree.Tree
	slotToVert []uint64 // slotToVert[slot] is the vertex id at that kd-tree slot
}

// Build snapshots the corrected-pose translations of every vertex produced
// by sensorName into a fresh index. The returned Index is a point-in-time
// view; it does not see vertices added after Build returns (spec §4.4).
func Build(graph *posegraph.Graph, sensorName string) *Index {
	vertices := graph.VerticesFromSensor(sensorName)

	points := make([]r3.Vector, len(vertices))
	slotToVert := make([]uint64, len(vertices))
	for i, v := range vertices {
		points[i] = v.CorrectedPose.Translation
		slotToVert[i] = v.ID
	}

	return &Index{
		tree:       kdtree.New(points),
		slotToVert: slotToVert,
	}
}

// Query returns the ids of every indexed vertex within radius of center,
// excluding the vertices named in exclude.
func (idx *Index) Query(center r3.Vector, radius float64, exclude ...uint64) []uint64 {
	excluded := make(map[uint64]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	var out []uint64
	for _, slot := range idx.tree.RadiusSearch(center, radius) {
		id := idx.slotToVert[slot]
		if !excluded[id] {
			out = append(out, id)
		}
	}
	return out
}

// Size returns the number of vertices snapshotted into the index.
func (idx *Index) Size() int { return len(idx.slotToVert) }
