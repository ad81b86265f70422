package measurement

import (
	"testing"
	"time"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/slam3d/pointcloud"
	"go.viam.com/slam3d/spatialmath"
)

func TestPointCloudMeasurementAccessors(t *testing.T) {
	cloud := pointcloud.New()
	m := NewPointCloud("robot1", "lidar0", spatialmath.Identity(), time.Unix(0, 0), cloud)

	test.That(t, m.Kind(), test.ShouldEqual, KindPointCloud)
	test.That(t, m.SensorName(), test.ShouldEqual, "lidar0")
	got, err := m.PointCloud()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got, test.ShouldEqual, cloud)

	_, err = m.Orientation()
	test.That(t, err, test.ShouldEqual, ErrBadMeasurementType)
}

func TestOrientationPriorAccessors(t *testing.T) {
	m := NewOrientationPrior("robot1", "imu0", spatialmath.Identity(), time.Unix(0, 0), quat.Number{Real: 1})

	test.That(t, m.Kind(), test.ShouldEqual, KindOrientationPrior)
	o, err := m.Orientation()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.Real, test.ShouldAlmostEqual, 1.0, 1e-9)

	_, err = m.PointCloud()
	test.That(t, err, test.ShouldEqual, ErrBadMeasurementType)
}

func TestCombinedCountsAsPointCloud(t *testing.T) {
	m := NewCombined("robot1", "lidar0", spatialmath.Identity(), time.Unix(0, 0), pointcloud.New())
	_, err := m.PointCloud()
	test.That(t, err, test.ShouldBeNil)
}

func TestUniqueIDsNeverRepeat(t *testing.T) {
	a := NewPointCloud("r", "s", spatialmath.Identity(), time.Unix(0, 0), pointcloud.New())
	b := NewPointCloud("r", "s", spatialmath.Identity(), time.Unix(0, 0), pointcloud.New())
	test.That(t, a.ID(), test.ShouldNotEqual, b.ID())
}
