// Package pointcloud implements spec component C: voxel-grid downsampling,
// radius outlier removal, rigid transform, and the point-cloud container
// those operations share.
//
// Adapted from the teacher's go.viam.com/rdk/pointcloud package (the
// dictionary/map-backed PointCloud, the Data payload in point.go, and the
// VoxelCoords grid-key idiom from voxel.go), simplified to the subset the
// registration and mapper packages actually exercise.
package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"
)

// MetaData summarizes what a PointCloud holds: whether any point carries
// color/value data, and the cloud's axis-aligned bounding box.
type MetaData struct {
	HasColor bool
	HasValue bool

	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewMetaData returns a MetaData ready to be grown by Merge, with bounds
// inverted so the first merged point always widens them.
func NewMetaData() MetaData {
	return MetaData{
		MinX: math.Inf(1), MinY: math.Inf(1), MinZ: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1), MaxZ: math.Inf(-1),
	}
}

// Merge grows the meta data's bounding box and color/value flags to include p.
func (m *MetaData) Merge(p r3.Vector, d Data) {
	if d != nil {
		if d.HasColor() {
			m.HasColor = true
		}
		if d.HasValue() {
			m.HasValue = true
		}
	}
	if p.X < m.MinX {
		m.MinX = p.X
	}
	if p.X > m.MaxX {
		m.MaxX = p.X
	}
	if p.Y < m.MinY {
		m.MinY = p.Y
	}
	if p.Y > m.MaxY {
		m.MaxY = p.Y
	}
	if p.Z < m.MinZ {
		m.MinZ = p.Z
	}
	if p.Z > m.MaxZ {
		m.MaxZ = p.Z
	}
}

// PointCloud is a general-purpose container of 3D points, each with
// optional Data. Implementations need not dictate sparse vs dense storage;
// the basic implementation here is a position-keyed map (spec §3 "carries an
// owned point set").
type PointCloud interface {
	// Size returns the number of points in the cloud.
	Size() int

	// MetaData returns the cloud's bounding box / payload summary.
	MetaData() MetaData

	// Set places a point at p, overwriting any existing point at the same
	// position.
	Set(p r3.Vector, d Data) error

	// At returns the data stored at p, if a point exists there.
	At(p r3.Vector) (Data, bool)

	// Iterate calls fn for every point in the cloud, stopping early if fn
	// returns false.
	Iterate(fn func(p r3.Vector, d Data) bool)
}

type basicPointCloud struct {
	points map[r3.Vector]Data
	meta   MetaData
}

// New returns an empty PointCloud.
func New() PointCloud {
	return NewWithPrealloc(0)
}

// NewWithPrealloc returns an empty PointCloud whose backing map is
// preallocated for size points, avoiding rehashing for known-size scans.
func NewWithPrealloc(size int) PointCloud {
	return &basicPointCloud{
		points: make(map[r3.Vector]Data, size),
		meta:   NewMetaData(),
	}
}

func (c *basicPointCloud) Size() int { return len(c.points) }

func (c *basicPointCloud) MetaData() MetaData { return c.meta }

func (c *basicPointCloud) At(p r3.Vector) (Data, bool) {
	d, ok := c.points[p]
	return d, ok
}

func (c *basicPointCloud) Set(p r3.Vector, d Data) error {
	_, existed := c.points[p]
	c.points[p] = d
	if !existed {
		c.meta.Merge(p, d)
	}
	return nil
}

func (c *basicPointCloud) Iterate(fn func(p r3.Vector, d Data) bool) {
	for p, d := range c.points {
		if !fn(p, d) {
			return
		}
	}
}

// Points collects every position in the cloud into a slice. Useful for
// feeding a kd-tree (registration, spatialindex) or a simple transform pass.
func Points(pc PointCloud) []r3.Vector {
	pts := make([]r3.Vector, 0, pc.Size())
	pc.Iterate(func(p r3.Vector, d Data) bool {
		pts = append(pts, p)
		return true
	})
	return pts
}
