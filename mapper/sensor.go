package mapper

import (
	"github.com/pkg/errors"

	"go.viam.com/slam3d/measurement"
	"go.viam.com/slam3d/posegraph"
	"go.viam.com/slam3d/registration"
	"go.viam.com/slam3d/spatialmath"
)

// ErrCombinedMeasurementUnsupported is returned by CreateCombinedMeasurement
// implementations that don't support map assembly (spec §6 marks it
// optional).
var ErrCombinedMeasurementUnsupported = errors.New("mapper: sensor does not support combined measurements")

// Sensor is the external capability set spec §6 requires the mapper to be
// able to call for a registered sensor.
type Sensor interface {
	// Name identifies the sensor; measurements are routed to a Sensor by
	// matching Measurement.SensorName().
	Name() string
	// SensorPose returns the sensor's fixed robot-frame mounting transform.
	SensorPose() spatialmath.Pose
	// CreateConstraint runs scan registration between two measurements
	// produced by this sensor (spec §4.2).
	CreateConstraint(source, target *measurement.Measurement, odomGuess spatialmath.Pose, isLoop bool) (registration.Constraint, error)
	// CreateCombinedMeasurement assembles a single measurement from several
	// vertices, for map building. Optional: implementations that don't
	// support it return ErrCombinedMeasurementUnsupported.
	CreateCombinedMeasurement(vertices []*posegraph.Vertex, pose spatialmath.Pose) (*measurement.Measurement, error)
}
