// Package odometry declares the external odometry collaborator spec §6
// names: a borrowed source of continuous pose estimates the mapper
// consults but never owns.
package odometry

import (
	"time"

	"go.viam.com/slam3d/spatialmath"
)

// Source is the odometry interface spec §6 requires: a pose lookup at an
// arbitrary timestamp. Implementations are external collaborators (wheel
// encoders, an IMU integrator, a motion-capture bridge); this module
// specifies only the boundary.
type Source interface {
	// PoseAt returns the odometric pose estimate at t. Failure surfaces to
	// the mapper as ErrUnavailable (spec §7 OdometryUnavailable).
	PoseAt(t time.Time) (spatialmath.Pose, error)
}
