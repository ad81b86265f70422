// Package posegraph implements spec component E: the pose graph store —
// VertexObject and EdgeObject arenas with id/uuid/sensor indices.
//
// Grounded on original_source/include/slam3d/PoseGraph.hpp's arena-of-
// vertices-and-edges shape (spec §9 "Cyclic pointer graphs": "arena-style
// storage of vertices and edges in contiguous containers with stable
// integer ids used as references") and on the teacher's id/name registry
// pattern in services/slam/fake/slam.go.
package posegraph

import (
	"github.com/google/uuid"

	"go.viam.com/slam3d/measurement"
	"go.viam.com/slam3d/spatialmath"
)

// Vertex is spec.md's VertexObject. Id is dense and monotonically
// increasing in insertion order; CorrectedPose is mutable only by the
// mapper, on insertion and after optimization (spec §3).
type Vertex struct {
	ID            uint64
	UUID          uuid.UUID
	Measurement   *measurement.Measurement
	CorrectedPose spatialmath.Pose
}

// Edge is spec.md's EdgeObject: the directed claim "applying Transform to
// SourceID's pose yields TargetID's pose" within Covariance (spec §3).
type Edge struct {
	SourceID   uint64
	TargetID   uint64
	Transform  spatialmath.Pose
	Covariance spatialmath.Covariance
	Sensor     string
	Label      string
}

// Graph is the directed multigraph of Vertex and Edge described in spec §3.
// Vertices are never deleted; ids form a contiguous [1, N] range.
type Graph struct {
	vertices []*Vertex // vertices[i] has ID == i+1
	byUUID   map[uuid.UUID]*Vertex
	edges    []*Edge
}

// New returns an empty pose graph.
func New() *Graph {
	return &Graph{byUUID: make(map[uuid.UUID]*Vertex)}
}

// AddVertex inserts a new vertex holding m at correctedPose, assigning it
// the next dense id. Id assignment is atomic with insertion and the uuid
// index is updated in the same step (spec §4.3).
func (g *Graph) AddVertex(m *measurement.Measurement, correctedPose spatialmath.Pose) *Vertex {
	v := &Vertex{
		ID:            uint64(len(g.vertices)) + 1,
		UUID:          m.ID(),
		Measurement:   m,
		CorrectedPose: correctedPose,
	}
	g.vertices = append(g.vertices, v)
	g.byUUID[v.UUID] = v
	return v
}

// AddEdge inserts a directed edge from src to tgt. Fails with
// ErrBadElementType if either endpoint does not exist (spec §8 invariant:
// "For every edge e ... get_vertex(e.source) and get_vertex(e.target)
// succeed").
func (g *Graph) AddEdge(src, tgt uint64, transform spatialmath.Pose, covariance spatialmath.Covariance, sensor, label string) (*Edge, error) {
	if _, ok := g.GetVertex(src); !ok {
		return nil, ErrBadElementType
	}
	if _, ok := g.GetVertex(tgt); !ok {
		return nil, ErrBadElementType
	}
	e := &Edge{
		SourceID:   src,
		TargetID:   tgt,
		Transform:  transform,
		Covariance: covariance,
		Sensor:     sensor,
		Label:      label,
	}
	g.edges = append(g.edges, e)
	return e, nil
}

// GetVertex returns the vertex with the given id.
func (g *Graph) GetVertex(id uint64) (*Vertex, bool) {
	if id < 1 || id > uint64(len(g.vertices)) {
		return nil, false
	}
	return g.vertices[id-1], true
}

// GetVertexByUUID returns the vertex whose measurement has the given uuid,
// used by add_external_reading to detect duplicates (spec §4.3).
func (g *Graph) GetVertexByUUID(id uuid.UUID) (*Vertex, bool) {
	v, ok := g.byUUID[id]
	return v, ok
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// FirstVertex returns the earliest-inserted vertex, the anchor of the map
// frame (spec §3). Ok is false only for an empty graph.
func (g *Graph) FirstVertex() (*Vertex, bool) {
	if len(g.vertices) == 0 {
		return nil, false
	}
	return g.vertices[0], true
}

// VerticesFromSensor returns every vertex whose measurement was produced by
// the named sensor, in insertion order (spec §4.3, a derivable view).
func (g *Graph) VerticesFromSensor(name string) []*Vertex {
	var out []*Vertex
	for _, v := range g.vertices {
		if v.Measurement.SensorName() == name {
			out = append(out, v)
		}
	}
	return out
}

// EdgesFromSensor returns every edge tagged with the named sensor, in
// insertion order.
func (g *Graph) EdgesFromSensor(name string) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Sensor == name {
			out = append(out, e)
		}
	}
	return out
}

// Edges returns every edge in the graph, in insertion order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// Vertices returns every vertex in the graph, in insertion (id) order.
func (g *Graph) Vertices() []*Vertex {
	return g.vertices
}
