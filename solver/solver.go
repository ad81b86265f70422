// Package solver declares the external pose-graph optimizer collaborator
// spec §6 names. Only the boundary is specified here; a concrete
// implementation (e.g. a g2o or Ceres binding, per
// original_source/src/G2oSolver.cpp) is out of scope (spec §1 non-goals).
package solver

import (
	"gonum.org/v1/gonum/mat"

	"go.viam.com/slam3d/spatialmath"
)

// Solver is the backend optimizer interface spec §6 requires.
type Solver interface {
	// AddVertex registers a vertex at its current pose estimate.
	AddVertex(id uint64, initialPose spatialmath.Pose)
	// AddEdge registers a constraint between two vertices, with the
	// information matrix (the inverse of the edge's covariance).
	AddEdge(sourceID, targetID uint64, transform spatialmath.Pose, information *mat.Dense)
	// AddFixed anchors a vertex so the optimizer does not move it — the
	// mapper calls this for the graph's first vertex (spec §4.5).
	AddFixed(id uint64)
	// Compute runs the optimization and reports whether it converged.
	Compute() bool
	// VertexPose returns a vertex's optimized pose. Only valid after a
	// successful Compute.
	VertexPose(id uint64) (spatialmath.Pose, error)
}
