package mapper

// Options holds the mapper's per-sensor-independent thresholds (spec §4.5,
// §6's mapper configuration row).
type Options struct {
	// NeighborRadius bounds the loop-closure candidate search (spec §4.4).
	NeighborRadius float64
	// MinTranslation is the minimum-distance gate's translation threshold.
	MinTranslation float64
	// MinRotation is the minimum-distance gate's rotation threshold, in radians.
	MinRotation float64
	// AddOdometryEdges controls whether sequential insertions get an
	// odometry-derived edge in addition to any matched constraint.
	AddOdometryEdges bool
}

// DefaultOptions returns thresholds suitable for a typical indoor mapping
// sensor.
func DefaultOptions() Options {
	return Options{
		NeighborRadius:   2.0,
		MinTranslation:   0.1,
		MinRotation:      0.1,
		AddOdometryEdges: true,
	}
}
