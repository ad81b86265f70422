package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestIdentityRoundTrip(t *testing.T) {
	p := Identity()
	inv := Inverse(p)
	test.That(t, AlmostEqual(Compose(p, inv), Identity(), 1e-9), test.ShouldBeTrue)
}

func TestRoundTripTransform(t *testing.T) {
	cases := []Pose{
		NewPose(r3.Vector{X: 1, Y: 2, Z: 3}, R4AA{Theta: math.Pi / 3, RX: 0, RY: 0, RZ: 1}.Quat()),
		NewPose(r3.Vector{X: -5, Y: 0.5, Z: 10}, R4AA{Theta: math.Pi / 2, RX: 1, RY: 1, RZ: 0}.Quat()),
		NewPose(r3.Vector{X: 0, Y: 0, Z: 0}, R4AA{Theta: 2.5, RX: 0.2, RY: -0.4, RZ: 0.9}.Quat()),
	}
	for _, tf := range cases {
		inv := Inverse(tf)
		test.That(t, AlmostEqual(Compose(tf, inv), Identity(), 1e-9), test.ShouldBeTrue)
		test.That(t, AlmostEqual(Compose(inv, tf), Identity(), 1e-9), test.ShouldBeTrue)
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	a := NewPose(r3.Vector{X: 1, Y: 0, Z: 0}, R4AA{Theta: math.Pi / 2, RX: 0, RY: 0, RZ: 1}.Quat())
	b := NewPose(r3.Vector{X: 0, Y: 1, Z: 0}, R4AA{Theta: math.Pi / 4, RX: 1, RY: 0, RZ: 0}.Quat())
	point := r3.Vector{X: 2, Y: 3, Z: 4}

	viaCompose := Compose(a, b).Apply(point)
	viaSequential := a.Apply(b.Apply(point))

	test.That(t, viaCompose.X, test.ShouldAlmostEqual, viaSequential.X, 1e-9)
	test.That(t, viaCompose.Y, test.ShouldAlmostEqual, viaSequential.Y, 1e-9)
	test.That(t, viaCompose.Z, test.ShouldAlmostEqual, viaSequential.Z, 1e-9)
}

func TestRotationAngle(t *testing.T) {
	p := NewPose(r3.Vector{}, R4AA{Theta: 1.2, RX: 0, RY: 0, RZ: 1}.Quat())
	test.That(t, p.RotationAngle(), test.ShouldAlmostEqual, 1.2, 1e-9)

	test.That(t, Identity().RotationAngle(), test.ShouldAlmostEqual, 0, 1e-9)
}

func TestQuatR4AARoundTrip(t *testing.T) {
	r4 := R4AA{Theta: 0.77, RX: 0.1, RY: 0.2, RZ: 0.97}
	back := QuatToR4AA(r4.Quat())
	test.That(t, back.Theta, test.ShouldAlmostEqual, r4.Theta, 1e-6)
}

func TestAlmostEqualRejectsDivergence(t *testing.T) {
	a := NewPoseFromPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	b := NewPoseFromPoint(r3.Vector{X: 1, Y: 0, Z: 0})
	test.That(t, AlmostEqual(a, b, 1e-9), test.ShouldBeFalse)
	test.That(t, AlmostEqual(a, b, 2), test.ShouldBeTrue)
}

func TestApplyIdentity(t *testing.T) {
	point := r3.Vector{X: 3, Y: -2, Z: 7}
	test.That(t, Identity().Apply(point), test.ShouldResemble, point)
}

func TestNewPoseNormalizes(t *testing.T) {
	p := NewPose(r3.Vector{}, quat.Number{Real: 2})
	n := quat.Abs(p.Orientation)
	test.That(t, n, test.ShouldAlmostEqual, 1.0, 1e-9)
}
