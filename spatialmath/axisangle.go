package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// R4AA is an axis-angle rotation: a unit axis (RX, RY, RZ) and a rotation
// Theta (radians) about it. See
// https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation.
//
// Adapted from the teacher's spatialmath.R4AA. Kept here specifically
// because spec.md's minimum-rotation gate (§4.5 step 5) and the mapper's
// rotation-angle check are defined in terms of this representation, per
// original_source/src/GraphMapper.cpp's angle-of-delta-orientation gate.
type R4AA struct {
	Theta float64
	RX    float64
	RY    float64
	RZ    float64
}

// QuatToR4AA converts a unit quaternion to an axis-angle rotation.
func QuatToR4AA(q quat.Number) R4AA {
	q = quat.Normalize(q)
	theta := 2 * math.Acos(clamp(q.Real, -1, 1))
	s := math.Sqrt(1 - q.Real*q.Real)
	if s < 1e-12 {
		// Angle is ~0; axis is arbitrary.
		return R4AA{Theta: 0, RX: 1, RY: 0, RZ: 0}
	}
	return R4AA{
		Theta: theta,
		RX:    q.Imag / s,
		RY:    q.Jmag / s,
		RZ:    q.Kmag / s,
	}
}

// Quat converts the axis-angle rotation back to a unit quaternion.
func (r4 R4AA) Quat() quat.Number {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm < 1e-12 {
		return quat.Number{Real: 1}
	}
	half := r4.Theta / 2
	sinHalf := math.Sin(half)
	return quat.Number{
		Real: math.Cos(half),
		Imag: (r4.RX / norm) * sinHalf,
		Jmag: (r4.RY / norm) * sinHalf,
		Kmag: (r4.RZ / norm) * sinHalf,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
