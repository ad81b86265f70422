package pointcloud

import (
	"github.com/golang/geo/r3"

	"go.viam.com/slam3d/internal/kdtree"
)

// RemoveOutliers implements spec §4.1's radius outlier filter: every point
// with fewer than minNeighbors neighbors within radius is dropped. An empty
// input cloud yields an empty output cloud.
func RemoveOutliers(cloud PointCloud, radius float64, minNeighbors int) PointCloud {
	out := New()
	if cloud.Size() == 0 {
		return out
	}

	points := make([]r3.Vector, 0, cloud.Size())
	datas := make([]Data, 0, cloud.Size())
	cloud.Iterate(func(p r3.Vector, d Data) bool {
		points = append(points, p)
		datas = append(datas, d)
		return true
	})

	tree := kdtree.New(points)
	for i, p := range points {
		if tree.CountWithinRadius(p, radius, i) >= minNeighbors {
			_ = out.Set(p, datas[i])
		}
	}
	return out
}
