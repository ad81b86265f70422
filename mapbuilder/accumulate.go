// Package mapbuilder implements spec component I: accumulating vertex
// point clouds into a single map and running the outlier-removal/
// downsample pipeline over the result.
//
// accumulate lives here rather than in pointcloud because it needs
// posegraph.Vertex, and pointcloud must not import posegraph (posegraph
// already imports measurement, which imports pointcloud — see DESIGN.md).
package mapbuilder

import (
	"github.com/golang/geo/r3"

	"go.viam.com/slam3d/pointcloud"
	"go.viam.com/slam3d/posegraph"
	"go.viam.com/slam3d/spatialmath"
)

// Accumulate implements spec §4.1's accumulate(vertices): each vertex's
// cloud is transformed by corrected_pose · sensor_pose and concatenated
// into a single cloud. Iteration proceeds latest-to-oldest and a position
// already filled by a newer vertex's point is not overwritten, so where
// clouds coincide exactly the newer point (and its Data) is kept. The voxel
// centroid Downsample computes is a mean and does not depend on this order.
// Fails with
// measurement.ErrBadMeasurementType if any vertex's measurement is not a
// point cloud.
func Accumulate(vertices []*posegraph.Vertex) (pointcloud.PointCloud, error) {
	out := pointcloud.New()
	for i := len(vertices) - 1; i >= 0; i-- {
		v := vertices[i]
		cloud, err := v.Measurement.PointCloud()
		if err != nil {
			return nil, err
		}
		frame := spatialmath.Compose(v.CorrectedPose, v.Measurement.SensorPose())
		pointcloud.Transform(cloud, frame).Iterate(func(p r3.Vector, d pointcloud.Data) bool {
			if _, exists := out.At(p); !exists {
				_ = out.Set(p, d)
			}
			return true
		})
	}
	return out, nil
}
