package pointcloud

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRemoveOutliersEmptyCloud(t *testing.T) {
	out := RemoveOutliers(New(), 1.0, 2)
	test.That(t, out.Size(), test.ShouldEqual, 0)
}

func TestRemoveOutliersDropsIsolatedPoints(t *testing.T) {
	pc := New()
	// A tight cluster of 4 points near the origin.
	_ = pc.Set(r3.Vector{X: 0, Y: 0, Z: 0}, nil)
	_ = pc.Set(r3.Vector{X: 0.1, Y: 0, Z: 0}, nil)
	_ = pc.Set(r3.Vector{X: 0, Y: 0.1, Z: 0}, nil)
	_ = pc.Set(r3.Vector{X: 0.1, Y: 0.1, Z: 0}, nil)
	// An isolated far-away point.
	_ = pc.Set(r3.Vector{X: 100, Y: 100, Z: 100}, nil)

	out := RemoveOutliers(pc, 0.5, 2)
	test.That(t, out.Size(), test.ShouldEqual, 4)
	_, ok := out.At(r3.Vector{X: 100, Y: 100, Z: 100})
	test.That(t, ok, test.ShouldBeFalse)
}
