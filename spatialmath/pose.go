// Package spatialmath implements the SE(3) rigid-body transforms and
// covariances used throughout the pose graph (spec component A).
//
// Adapted from the teacher's go.viam.com/rdk/spatialmath package: a
// quaternion holds orientation (gonum.org/v1/gonum/num/quat, as in the
// teacher's orientation.go/axisAngle.go) and an r3.Vector holds translation
// (github.com/golang/geo/r3, as in the teacher's axisAngle.go/box.go).
package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose is a rigid-body transform: p' = R*p + T. All poses in this module
// live in a single map frame unless a comment says otherwise (spec §3).
//
// Composition is right-multiplicative: Compose(A, B) applies B first, then
// A, matching a 4x4-homogeneous-matrix product A*B.
type Pose struct {
	Orientation quat.Number
	Translation r3.Vector
}

// NewPose builds a Pose from a translation and a unit-quaternion orientation.
func NewPose(translation r3.Vector, orientation quat.Number) Pose {
	return Pose{Orientation: quat.Normalize(orientation), Translation: translation}
}

// NewPoseFromPoint builds a Pose with identity orientation at the given
// translation.
func NewPoseFromPoint(p r3.Vector) Pose {
	return Pose{Orientation: identityQuat, Translation: p}
}

var identityQuat = quat.Number{Real: 1}

// Identity returns the identity pose (spec §4.5 step 2: "first vertex at
// identity pose").
func Identity() Pose {
	return Pose{Orientation: identityQuat}
}

// Compose returns a "then" b, i.e. the transform that first applies b, then
// applies a — the analogue of the 4x4 matrix product a*b. This is the
// operation spec.md writes as "·", e.g. "last_vertex.corrected_pose ·
// odom_delta" (spec §4.5 step 4).
func Compose(a, b Pose) Pose {
	return Pose{
		Orientation: quat.Mul(a.Orientation, b.Orientation),
		Translation: a.Translation.Add(rotateVector(a.Orientation, b.Translation)),
	}
}

// Inverse returns the pose T such that Compose(p, T) and Compose(T, p) both
// equal Identity() to within floating-point error (spec §8 round-trip law).
func Inverse(p Pose) Pose {
	invOrientation := quat.Conj(p.Orientation)
	return Pose{
		Orientation: invOrientation,
		Translation: rotateVector(invOrientation, p.Translation).Mul(-1),
	}
}

// Apply transforms a point from the frame this pose is expressed in into the
// parent frame: p' = R*point + T.
func (p Pose) Apply(point r3.Vector) r3.Vector {
	return p.Translation.Add(rotateVector(p.Orientation, point))
}

// RotationAngle returns the axis-angle magnitude of the pose's orientation,
// in radians. This is the "rotation-angle(odom_delta)" of spec §4.5 step 5,
// resolved per SPEC_FULL.md §3.1 to match original_source's GraphMapper.cpp
// gate (angle of the delta's axis-angle representation, not a per-axis Euler
// decomposition).
func (p Pose) RotationAngle() float64 {
	return QuatToR4AA(p.Orientation).Theta
}

// AlmostEqual reports whether two poses are equal to within eps in both
// translation (Euclidean distance) and orientation (angle between them).
func AlmostEqual(a, b Pose, eps float64) bool {
	if a.Translation.Sub(b.Translation).Norm() > eps {
		return false
	}
	delta := Compose(Inverse(a), b)
	return delta.RotationAngle() <= eps
}

// rotateVector rotates v by the unit quaternion q: q*v*conj(q), taking the
// imaginary part of the result. See the teacher's angular_velocity.go /
// axisAngle.go for the same quat.Number field convention
// (Real/Imag/Jmag/Kmag).
func rotateVector(q quat.Number, v r3.Vector) r3.Vector {
	qv := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, qv), quat.Conj(q))
	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
