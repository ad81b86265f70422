package fake

import (
	"sort"
	"time"

	"go.viam.com/slam3d/odometry"
	"go.viam.com/slam3d/spatialmath"
)

// Odometry is an odometry.Source backed by a fixed set of (timestamp,
// pose) samples, interpolating nothing: PoseAt returns the pose of the
// latest sample at or before t, or ErrUnavailable if t precedes every
// sample.
type Odometry struct {
	timestamps []time.Time
	poses      []spatialmath.Pose
}

// NewOdometry returns an Odometry with no samples; use AddSample to build
// up a trajectory.
func NewOdometry() *Odometry {
	return &Odometry{}
}

// AddSample records a pose at timestamp t. Samples may be added out of
// order; PoseAt always searches by timestamp.
func (o *Odometry) AddSample(t time.Time, pose spatialmath.Pose) {
	idx := sort.Search(len(o.timestamps), func(i int) bool { return !o.timestamps[i].Before(t) })
	o.timestamps = append(o.timestamps, time.Time{})
	o.poses = append(o.poses, spatialmath.Pose{})
	copy(o.timestamps[idx+1:], o.timestamps[idx:])
	copy(o.poses[idx+1:], o.poses[idx:])
	o.timestamps[idx] = t
	o.poses[idx] = pose
}

// PoseAt returns the latest sample at or before t.
func (o *Odometry) PoseAt(t time.Time) (spatialmath.Pose, error) {
	idx := sort.Search(len(o.timestamps), func(i int) bool { return o.timestamps[i].After(t) }) - 1
	if idx < 0 {
		return spatialmath.Pose{}, odometry.ErrUnavailable
	}
	return o.poses[idx], nil
}
