package sensor

import (
	"testing"
	"time"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/slam3d/mapper"
	"go.viam.com/slam3d/measurement"
	"go.viam.com/slam3d/pointcloud"
	"go.viam.com/slam3d/posegraph"
	"go.viam.com/slam3d/registration"
	"go.viam.com/slam3d/spatialmath"
)

func gridCloud(n int, spacing float64) pointcloud.PointCloud {
	pc := pointcloud.NewWithPrealloc(n * n * n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := r3.Vector{X: float64(i) * spacing, Y: float64(j) * spacing, Z: float64(k) * spacing}
				_ = pc.Set(p, nil)
			}
		}
	}
	return pc
}

func testRegistrar() *registration.Registrar {
	coarse := registration.DefaultGICPConfig()
	coarse.MaxFitnessScore = 1.0
	fine := registration.DefaultGICPConfig()
	fine.MaxFitnessScore = 1.0
	return &registration.Registrar{Coarse: coarse, Fine: fine}
}

func TestPointCloudSensorSatisfiesMapperSensor(t *testing.T) {
	var _ mapper.Sensor = New("lidar0", spatialmath.Identity(), testRegistrar())
}

func TestCreateCombinedMeasurementAccumulatesLatestTimestampRobot(t *testing.T) {
	s := New("lidar0", spatialmath.Identity(), testRegistrar())

	m1 := measurement.NewPointCloud("robot1", "lidar0", spatialmath.Identity(), time.Unix(0, 0), gridCloud(3, 0.1))
	m2 := measurement.NewPointCloud("robot2", "lidar0", spatialmath.Identity(), time.Unix(10, 0), gridCloud(3, 0.1))
	v1 := &posegraph.Vertex{ID: 1, UUID: m1.ID(), Measurement: m1, CorrectedPose: spatialmath.Identity()}
	v2 := &posegraph.Vertex{ID: 2, UUID: m2.ID(), Measurement: m2, CorrectedPose: spatialmath.Identity()}

	combined, err := s.CreateCombinedMeasurement([]*posegraph.Vertex{v1, v2}, spatialmath.Identity())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, combined.Kind(), test.ShouldEqual, measurement.KindCombined)
	test.That(t, combined.RobotName(), test.ShouldEqual, "robot2")
	test.That(t, combined.Timestamp().Equal(time.Unix(10, 0)), test.ShouldBeTrue)

	cloud, err := combined.PointCloud()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cloud.Size() > 0, test.ShouldBeTrue)
}
