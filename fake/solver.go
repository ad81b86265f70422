package fake

import (
	"gonum.org/v1/gonum/mat"

	"go.viam.com/slam3d/solver"
	"go.viam.com/slam3d/spatialmath"
)

// edgeRecord is one AddEdge call recorded by Solver, for tests to inspect
// what the mapper streamed to the backend (spec §4.5 optimize()).
type edgeRecord struct {
	SourceID, TargetID uint64
	Transform          spatialmath.Pose
	Information        *mat.Dense
}

// Solver is a solver.Solver test double that returns its vertices
// unmodified on Compute — a "null optimizer" useful for asserting the
// mapper streams the graph correctly without depending on a real
// optimization backend. ComputeResult overrides what Compute reports;
// ComputeResult defaults to true.
type Solver struct {
	vertices map[uint64]spatialmath.Pose
	fixed    map[uint64]bool
	edges    []edgeRecord

	ComputeResult bool
	computeCalled bool
}

// NewSolver returns a Solver that reports success from Compute.
func NewSolver() *Solver {
	return &Solver{
		vertices:      make(map[uint64]spatialmath.Pose),
		fixed:         make(map[uint64]bool),
		ComputeResult: true,
	}
}

// AddVertex records id's initial pose.
func (s *Solver) AddVertex(id uint64, initialPose spatialmath.Pose) {
	s.vertices[id] = initialPose
}

// AddEdge records a constraint between two vertices.
func (s *Solver) AddEdge(sourceID, targetID uint64, transform spatialmath.Pose, information *mat.Dense) {
	s.edges = append(s.edges, edgeRecord{SourceID: sourceID, TargetID: targetID, Transform: transform, Information: information})
}

// AddFixed marks id as anchored.
func (s *Solver) AddFixed(id uint64) {
	s.fixed[id] = true
}

// Compute reports ComputeResult and marks the solver as having run.
func (s *Solver) Compute() bool {
	s.computeCalled = true
	return s.ComputeResult
}

// VertexPose returns the pose last recorded for id via AddVertex (this
// fake performs no actual optimization).
func (s *Solver) VertexPose(id uint64) (spatialmath.Pose, error) {
	pose, ok := s.vertices[id]
	if !ok {
		return spatialmath.Pose{}, solver.ErrUnknownVertex
	}
	return pose, nil
}

// VertexCount returns how many vertices AddVertex has recorded.
func (s *Solver) VertexCount() int { return len(s.vertices) }

// EdgeCount returns how many edges AddEdge has recorded.
func (s *Solver) EdgeCount() int { return len(s.edges) }

// FixedCount returns how many vertices AddFixed has recorded.
func (s *Solver) FixedCount() int { return len(s.fixed) }

// ComputeCalled reports whether Compute has been invoked.
func (s *Solver) ComputeCalled() bool { return s.computeCalled }
