package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestR4AAQuatRoundTrip(t *testing.T) {
	cases := []R4AA{
		{Theta: 0, RX: 1, RY: 0, RZ: 0},
		{Theta: math.Pi, RX: 0, RY: 1, RZ: 0},
		{Theta: math.Pi / 6, RX: 1, RY: 1, RZ: 1},
	}
	for _, r4 := range cases {
		q := r4.Quat()
		back := QuatToR4AA(q)
		test.That(t, back.Theta, test.ShouldAlmostEqual, r4.Theta, 1e-6)
	}
}

func TestQuatToR4AAZeroAngle(t *testing.T) {
	r4 := QuatToR4AA(identityQuat)
	test.That(t, r4.Theta, test.ShouldAlmostEqual, 0, 1e-9)
}
