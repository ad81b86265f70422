package posegraph

import (
	"testing"
	"time"

	"go.viam.com/test"

	"go.viam.com/slam3d/measurement"
	"go.viam.com/slam3d/pointcloud"
	"go.viam.com/slam3d/spatialmath"
)

func newTestMeasurement(sensor string) *measurement.Measurement {
	return measurement.NewPointCloud("robot1", sensor, spatialmath.Identity(), time.Unix(0, 0), pointcloud.New())
}

func TestAddVertexAssignsContiguousIDs(t *testing.T) {
	g := New()
	v1 := g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())
	v2 := g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())
	v3 := g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())

	test.That(t, v1.ID, test.ShouldEqual, uint64(1))
	test.That(t, v2.ID, test.ShouldEqual, uint64(2))
	test.That(t, v3.ID, test.ShouldEqual, uint64(3))
	test.That(t, g.VertexCount(), test.ShouldEqual, 3)
}

func TestUUIDIndexCardinalityMatchesVertexCount(t *testing.T) {
	g := New()
	for i := 0; i < 5; i++ {
		g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())
	}
	test.That(t, len(g.byUUID), test.ShouldEqual, g.VertexCount())
}

func TestGetVertexByUUIDRoundTrips(t *testing.T) {
	g := New()
	m := newTestMeasurement("lidar0")
	v := g.AddVertex(m, spatialmath.Identity())

	got, ok := g.GetVertexByUUID(m.ID())
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, got.ID, test.ShouldEqual, v.ID)
}

func TestGetVertexOutOfRangeFails(t *testing.T) {
	g := New()
	g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())

	_, ok := g.GetVertex(0)
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = g.GetVertex(2)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestAddEdgeRejectsUnknownEndpoints(t *testing.T) {
	g := New()
	v1 := g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())

	_, err := g.AddEdge(v1.ID, 99, spatialmath.Identity(), spatialmath.IdentityCovariance(1), "lidar0", "odom")
	test.That(t, err, test.ShouldEqual, ErrBadElementType)

	_, err = g.AddEdge(99, v1.ID, spatialmath.Identity(), spatialmath.IdentityCovariance(1), "lidar0", "odom")
	test.That(t, err, test.ShouldEqual, ErrBadElementType)
}

func TestAddEdgeSucceedsBetweenExistingVertices(t *testing.T) {
	g := New()
	v1 := g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())
	v2 := g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())

	e, err := g.AddEdge(v1.ID, v2.ID, spatialmath.Identity(), spatialmath.IdentityCovariance(1), "lidar0", "odom")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, e.SourceID, test.ShouldEqual, v1.ID)
	test.That(t, e.TargetID, test.ShouldEqual, v2.ID)
	test.That(t, len(g.Edges()), test.ShouldEqual, 1)
}

func TestFirstVertexIsEarliestInserted(t *testing.T) {
	g := New()
	_, ok := g.FirstVertex()
	test.That(t, ok, test.ShouldBeFalse)

	v1 := g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())
	g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())

	first, ok := g.FirstVertex()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, first.ID, test.ShouldEqual, v1.ID)
}

func TestVerticesAndEdgesFilterBySensor(t *testing.T) {
	g := New()
	v1 := g.AddVertex(newTestMeasurement("lidar0"), spatialmath.Identity())
	v2 := g.AddVertex(newTestMeasurement("lidar1"), spatialmath.Identity())
	_, _ = g.AddEdge(v1.ID, v2.ID, spatialmath.Identity(), spatialmath.IdentityCovariance(1), "lidar0", "loop_closure")

	test.That(t, len(g.VerticesFromSensor("lidar0")), test.ShouldEqual, 1)
	test.That(t, len(g.VerticesFromSensor("lidar1")), test.ShouldEqual, 1)
	test.That(t, len(g.EdgesFromSensor("lidar0")), test.ShouldEqual, 1)
	test.That(t, len(g.EdgesFromSensor("lidar1")), test.ShouldEqual, 0)
}
