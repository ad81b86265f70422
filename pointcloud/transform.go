package pointcloud

import (
	"github.com/golang/geo/r3"

	"go.viam.com/slam3d/spatialmath"
)

// Transform applies a rigid transform to every point in cloud, returning a
// new cloud (spec §4.1). Each point's Data is carried over unchanged.
func Transform(cloud PointCloud, tf spatialmath.Pose) PointCloud {
	out := NewWithPrealloc(cloud.Size())
	cloud.Iterate(func(p r3.Vector, d Data) bool {
		_ = out.Set(tf.Apply(p), d)
		return true
	})
	return out
}
