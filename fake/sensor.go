// Package fake provides in-memory Sensor, odometry.Source, and
// solver.Solver test doubles, adapted from the teacher's fake-service
// idiom (services/slam/fake/slam.go's pattern of a plain struct
// implementing an external-collaborator interface with deterministic,
// canned behavior) for use in mapper tests.
package fake

import (
	"go.viam.com/slam3d/measurement"
	"go.viam.com/slam3d/mapper"
	"go.viam.com/slam3d/posegraph"
	"go.viam.com/slam3d/registration"
	"go.viam.com/slam3d/spatialmath"
)

// Sensor is a mapper.Sensor backed by a real registration.Registrar, so
// tests exercise the actual alignment code path rather than a canned
// transform.
type Sensor struct {
	name       string
	sensorPose spatialmath.Pose
	registrar  *registration.Registrar
}

// NewSensor returns a Sensor named name, mounted at sensorPose, using
// registrar for create_constraint.
func NewSensor(name string, sensorPose spatialmath.Pose, registrar *registration.Registrar) *Sensor {
	return &Sensor{name: name, sensorPose: sensorPose, registrar: registrar}
}

// Name returns the sensor's name.
func (s *Sensor) Name() string { return s.name }

// SensorPose returns the sensor's fixed mounting transform.
func (s *Sensor) SensorPose() spatialmath.Pose { return s.sensorPose }

// CreateConstraint delegates to the wrapped registrar.
func (s *Sensor) CreateConstraint(source, target *measurement.Measurement, odomGuess spatialmath.Pose, isLoop bool) (registration.Constraint, error) {
	return s.registrar.CreateConstraint(source, target, odomGuess, isLoop)
}

// CreateCombinedMeasurement is unsupported by this fake; map assembly goes
// through mapbuilder.Accumulate instead.
func (s *Sensor) CreateCombinedMeasurement(vertices []*posegraph.Vertex, pose spatialmath.Pose) (*measurement.Measurement, error) {
	return nil, mapper.ErrCombinedMeasurementUnsupported
}
