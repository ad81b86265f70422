package kdtree

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func samplePoints() []r3.Vector {
	return []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 5, Y: 5, Z: 5},
		{X: 10, Y: 10, Z: 10},
	}
}

func TestRadiusSearchFindsNearbySlots(t *testing.T) {
	tree := New(samplePoints())
	got := tree.RadiusSearch(r3.Vector{X: 0, Y: 0, Z: 0}, 1.5)
	test.That(t, len(got), test.ShouldEqual, 3) // slots 0, 1, 2
}

func TestRadiusSearchEmptyTree(t *testing.T) {
	tree := New(nil)
	got := tree.RadiusSearch(r3.Vector{}, 10)
	test.That(t, len(got), test.ShouldEqual, 0)
}

func TestCountWithinRadiusExcludesSelf(t *testing.T) {
	tree := New(samplePoints())
	count := tree.CountWithinRadius(r3.Vector{X: 0, Y: 0, Z: 0}, 1.5, 0)
	test.That(t, count, test.ShouldEqual, 2)
}

func TestNearestWithin(t *testing.T) {
	tree := New(samplePoints())
	slot, dist, ok := tree.NearestWithin(r3.Vector{X: 5, Y: 5, Z: 4.5}, 2)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, slot, test.ShouldEqual, 3)
	test.That(t, dist, test.ShouldAlmostEqual, 0.5, 1e-9)
}

func TestNearestWithinNoneInRange(t *testing.T) {
	tree := New(samplePoints())
	_, _, ok := tree.NearestWithin(r3.Vector{X: 100, Y: 100, Z: 100}, 1)
	test.That(t, ok, test.ShouldBeFalse)
}
