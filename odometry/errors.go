package odometry

import "github.com/pkg/errors"

// ErrUnavailable is spec.md's OdometryUnavailable: a Source's PoseAt lookup
// failed. The mapper skips odometry-dependent steps of the current
// insertion rather than treating this as fatal (spec §7).
var ErrUnavailable = errors.New("odometry: pose unavailable")
