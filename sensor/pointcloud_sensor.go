// Package sensor provides PointCloudSensor, the concrete mapper.Sensor
// implementation for point-cloud-producing sensors (spec component D/H
// boundary): scan registration via a registration.Registrar, and combined-
// measurement construction for map assembly (spec §6
// create_combined_measurement, optional).
//
// Grounded on original_source/src/PointCloudSensor.cpp's use in building
// keyframe maps (see SPEC_FULL.md §3.5). fake.Sensor remains the test
// double used by mapper's own tests; PointCloudSensor is what a real
// deployment registers.
package sensor

import (
	"time"

	"go.viam.com/slam3d/mapbuilder"
	"go.viam.com/slam3d/measurement"
	"go.viam.com/slam3d/posegraph"
	"go.viam.com/slam3d/registration"
	"go.viam.com/slam3d/spatialmath"
)

// PointCloudSensor is a named point-cloud sensor collaborator: it knows its
// fixed robot-frame-to-sensor-frame transform and delegates scan
// registration to a Registrar (spec §4.2).
type PointCloudSensor struct {
	name       string
	sensorPose spatialmath.Pose
	registrar  *registration.Registrar
}

// New returns a PointCloudSensor named name, mounted at sensorPose, using
// registrar for scan registration.
func New(name string, sensorPose spatialmath.Pose, registrar *registration.Registrar) *PointCloudSensor {
	return &PointCloudSensor{name: name, sensorPose: sensorPose, registrar: registrar}
}

// Name returns the sensor's registry key (spec §4.5 "registered sensors").
func (s *PointCloudSensor) Name() string { return s.name }

// SensorPose returns the fixed robot-frame-to-sensor-frame transform.
func (s *PointCloudSensor) SensorPose() spatialmath.Pose { return s.sensorPose }

// CreateConstraint registers source against target and returns the
// resulting pose-graph edge constraint (spec §4.2).
func (s *PointCloudSensor) CreateConstraint(source, target *measurement.Measurement, odomGuess spatialmath.Pose, isLoop bool) (registration.Constraint, error) {
	return s.registrar.CreateConstraint(source, target, odomGuess, isLoop)
}

// CreateCombinedMeasurement accumulates vertices' point clouds into a single
// KindCombined measurement anchored at pose, for map assembly consumers that
// want to re-insert a summarized keyframe into the graph (spec §6, optional).
func (s *PointCloudSensor) CreateCombinedMeasurement(vertices []*posegraph.Vertex, pose spatialmath.Pose) (*measurement.Measurement, error) {
	cloud, err := mapbuilder.Accumulate(vertices)
	if err != nil {
		return nil, err
	}
	robotName := ""
	timestamp := time.Time{}
	for _, v := range vertices {
		if v.Measurement.Timestamp().After(timestamp) {
			timestamp = v.Measurement.Timestamp()
			robotName = v.Measurement.RobotName()
		}
	}
	return measurement.NewCombined(robotName, s.name, pose, timestamp, cloud), nil
}
