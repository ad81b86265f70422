// Package measurement implements spec component B: typed sensor
// measurements carrying a unique id, sensor tag, and sensor-pose metadata.
//
// Adapted from the teacher's capability-set idiom (spec §3 describes
// Measurement as "polymorphic over the capability set {kind_tag, unique_id,
// robot_name, sensor_name, sensor_pose, timestamp}"); original_source's
// Measurement.hpp uses a base-class pointer with a kind enum and runtime
// downcast, which this module replaces with a tagged struct and typed
// accessors (spec §9 "Dynamic dispatch on measurements").
package measurement

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/slam3d/pointcloud"
	"go.viam.com/slam3d/spatialmath"
)

// Kind tags which payload a Measurement carries.
type Kind int

const (
	// KindPointCloud carries a single sensor reading's point cloud.
	KindPointCloud Kind = iota
	// KindOrientationPrior carries a unit-quaternion orientation reading,
	// e.g. from an IMU (original_source/src/g2o/edge_direction_prior.cpp).
	KindOrientationPrior
	// KindCombined carries a point cloud accumulated from several vertices
	// (spec §4.1 accumulate, §4.6 map builder).
	KindCombined
)

func (k Kind) String() string {
	switch k {
	case KindPointCloud:
		return "point_cloud"
	case KindOrientationPrior:
		return "orientation_prior"
	case KindCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// Measurement is the tagged variant over the measurement kinds named in
// spec §3. Its id is assigned at construction and never reused.
type Measurement struct {
	id         uuid.UUID
	kind       Kind
	robotName  string
	sensorName string
	sensorPose spatialmath.Pose
	timestamp  time.Time

	cloud       pointcloud.PointCloud
	orientation quat.Number
}

// NewPointCloud constructs a KindPointCloud measurement.
func NewPointCloud(robotName, sensorName string, sensorPose spatialmath.Pose, timestamp time.Time, cloud pointcloud.PointCloud) *Measurement {
	return &Measurement{
		id:         uuid.New(),
		kind:       KindPointCloud,
		robotName:  robotName,
		sensorName: sensorName,
		sensorPose: sensorPose,
		timestamp:  timestamp,
		cloud:      cloud,
	}
}

// NewCombined constructs a KindCombined measurement from an
// already-accumulated point cloud (spec §4.1 accumulate, §4.6 map builder).
func NewCombined(robotName, sensorName string, sensorPose spatialmath.Pose, timestamp time.Time, cloud pointcloud.PointCloud) *Measurement {
	return &Measurement{
		id:         uuid.New(),
		kind:       KindCombined,
		robotName:  robotName,
		sensorName: sensorName,
		sensorPose: sensorPose,
		timestamp:  timestamp,
		cloud:      cloud,
	}
}

// NewOrientationPrior constructs a KindOrientationPrior measurement.
func NewOrientationPrior(robotName, sensorName string, sensorPose spatialmath.Pose, timestamp time.Time, orientation quat.Number) *Measurement {
	return &Measurement{
		id:          uuid.New(),
		kind:        KindOrientationPrior,
		robotName:   robotName,
		sensorName:  sensorName,
		sensorPose:  sensorPose,
		timestamp:   timestamp,
		orientation: quat.Normalize(orientation),
	}
}

// ID returns the measurement's unique id (spec §3 unique_id).
func (m *Measurement) ID() uuid.UUID { return m.id }

// Kind returns the measurement's kind tag.
func (m *Measurement) Kind() Kind { return m.kind }

// RobotName returns the owning robot's name.
func (m *Measurement) RobotName() string { return m.robotName }

// SensorName returns the producing sensor's name (spec §3 sensor_name).
func (m *Measurement) SensorName() string { return m.sensorName }

// SensorPose returns the fixed robot-frame-to-sensor-frame transform (spec
// §3 sensor_pose, §4.4 glossary "Sensor pose").
func (m *Measurement) SensorPose() spatialmath.Pose { return m.sensorPose }

// Timestamp returns the measurement's capture time.
func (m *Measurement) Timestamp() time.Time { return m.timestamp }

// PointCloud returns the measurement's point cloud, or ErrBadMeasurementType
// if this measurement is not KindPointCloud or KindCombined (both carry an
// owned point set, spec §3).
func (m *Measurement) PointCloud() (pointcloud.PointCloud, error) {
	if m.kind != KindPointCloud && m.kind != KindCombined {
		return nil, ErrBadMeasurementType
	}
	return m.cloud, nil
}

// Orientation returns the measurement's unit-quaternion orientation, or
// ErrBadMeasurementType if this measurement is not KindOrientationPrior.
func (m *Measurement) Orientation() (quat.Number, error) {
	if m.kind != KindOrientationPrior {
		return quat.Number{}, ErrBadMeasurementType
	}
	return m.orientation, nil
}
