package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"
)

// VoxelCoords keys a cubic voxel on a regular grid, in the same style as the
// teacher's pointcloud.VoxelCoords (voxel.go).
type VoxelCoords struct {
	I, J, K int64
}

func voxelCoordsForPoint(p r3.Vector, leaf float64) VoxelCoords {
	return VoxelCoords{
		I: int64(math.Floor(p.X / leaf)),
		J: int64(math.Floor(p.Y / leaf)),
		K: int64(math.Floor(p.Z / leaf)),
	}
}

// Downsample implements spec §4.1's voxel-grid filter: the cloud is
// partitioned into cubic voxels of side leaf, and each non-empty voxel is
// represented in the output by the centroid of the points it contains. An
// empty input cloud yields an empty output cloud; leaf <= 0 returns the
// input cloud unchanged (no filtering requested).
func Downsample(cloud PointCloud, leaf float64) PointCloud {
	out := New()
	if cloud.Size() == 0 {
		return out
	}
	if leaf <= 0 {
		cloud.Iterate(func(p r3.Vector, d Data) bool {
			_ = out.Set(p, d)
			return true
		})
		return out
	}

	type voxelAccum struct {
		sum   r3.Vector
		count int
		data  Data
	}
	voxels := make(map[VoxelCoords]*voxelAccum)
	cloud.Iterate(func(p r3.Vector, d Data) bool {
		key := voxelCoordsForPoint(p, leaf)
		v, ok := voxels[key]
		if !ok {
			v = &voxelAccum{}
			voxels[key] = v
		}
		v.sum = v.sum.Add(p)
		v.count++
		if v.data == nil {
			v.data = d
		}
		return true
	})

	for _, v := range voxels {
		centroid := v.sum.Mul(1.0 / float64(v.count))
		_ = out.Set(centroid, v.data)
	}
	return out
}
