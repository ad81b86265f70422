package pointcloud

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestDownsampleEmptyCloud(t *testing.T) {
	out := Downsample(New(), 1.0)
	test.That(t, out.Size(), test.ShouldEqual, 0)
}

func TestDownsampleMergesPointsInSameVoxel(t *testing.T) {
	pc := New()
	_ = pc.Set(r3.Vector{X: 0.1, Y: 0.1, Z: 0.1}, nil)
	_ = pc.Set(r3.Vector{X: 0.2, Y: 0.2, Z: 0.2}, nil)
	_ = pc.Set(r3.Vector{X: 5, Y: 5, Z: 5}, nil)

	out := Downsample(pc, 1.0)
	test.That(t, out.Size(), test.ShouldEqual, 2)
}

func TestDownsampleCentroid(t *testing.T) {
	pc := New()
	_ = pc.Set(r3.Vector{X: 0.0, Y: 0.0, Z: 0.0}, nil)
	_ = pc.Set(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}, nil)

	out := Downsample(pc, 1.0)
	test.That(t, out.Size(), test.ShouldEqual, 1)

	var found r3.Vector
	out.Iterate(func(p r3.Vector, d Data) bool {
		found = p
		return true
	})
	test.That(t, found.X, test.ShouldAlmostEqual, 0.25, 1e-9)
	test.That(t, found.Y, test.ShouldAlmostEqual, 0.25, 1e-9)
	test.That(t, found.Z, test.ShouldAlmostEqual, 0.25, 1e-9)
}

// TestDownsampleIdempotentWithinFactor is the "downsample idempotence"
// law from spec.md §8: downsampling twice with the same leaf should produce
// a point count within ±1 of the single-pass result.
func TestDownsampleIdempotentWithinFactor(t *testing.T) {
	pc := New()
	for i := 0; i < 200; i++ {
		_ = pc.Set(r3.Vector{X: float64(i) * 0.05, Y: 0, Z: 0}, nil)
	}
	once := Downsample(pc, 0.3)
	twice := Downsample(once, 0.3)
	diff := once.Size() - twice.Size()
	if diff < 0 {
		diff = -diff
	}
	test.That(t, diff, test.ShouldBeLessThanOrEqualTo, 1)
}

func TestDownsampleNonPositiveLeafPassesThrough(t *testing.T) {
	pc := New()
	_ = pc.Set(r3.Vector{X: 1, Y: 1, Z: 1}, nil)
	out := Downsample(pc, 0)
	test.That(t, out.Size(), test.ShouldEqual, 1)
}
