package mapbuilder

import (
	"go.viam.com/slam3d/pointcloud"
	"go.viam.com/slam3d/posegraph"
)

// Params holds the sensor-level map-build configuration spec §6 names:
// map_resolution, map_outlier_radius, map_outlier_neighbors.
type Params struct {
	MapResolution       float64
	MapOutlierRadius    float64
	MapOutlierNeighbors int
}

// BuildMap implements spec §4.6's build_map(vertices): accumulate, then
// radius-outlier-remove, then voxel-downsample.
func BuildMap(vertices []*posegraph.Vertex, params Params) (pointcloud.PointCloud, error) {
	accumulated, err := Accumulate(vertices)
	if err != nil {
		return nil, err
	}
	cleaned := pointcloud.RemoveOutliers(accumulated, params.MapOutlierRadius, params.MapOutlierNeighbors)
	return pointcloud.Downsample(cleaned, params.MapResolution), nil
}
