package pointcloud

import (
	"image/color"

	"github.com/golang/geo/r3"
)

// Vectors is a series of three-dimensional vectors, sortable by position.
// Adapted from the teacher's pointcloud.Vectors.
type Vectors []r3.Vector

// Len returns the number of vectors.
func (vs Vectors) Len() int { return len(vs) }

// Swap swaps two vectors positionally.
func (vs Vectors) Swap(i, j int) { vs[i], vs[j] = vs[j], vs[i] }

// Less orders vectors by r3.Vector.Cmp.
func (vs Vectors) Less(i, j int) bool {
	return vs[i].Cmp(vs[j]) < 0
}

// Data carries the optional per-point payload a dense LIDAR/depth-camera
// scan attaches to a position: a display color and/or a scalar value such as
// return intensity. Neither is required by registration or preprocessing;
// both round-trip through downsample/outlier-removal/transform unchanged
// when present on the representative point a voxel or filter keeps.
type Data interface {
	HasColor() bool
	RGB255() (uint8, uint8, uint8)
	Color() color.Color
	SetColor(c color.NRGBA) Data

	HasValue() bool
	Value() int
	SetValue(v int) Data
}

type basicData struct {
	hasColor bool
	c        color.NRGBA

	hasValue bool
	value    int
}

// NewBasicData returns Data with no color or value set.
func NewBasicData() Data {
	return &basicData{}
}

// NewColoredData returns Data carrying only a display color.
func NewColoredData(c color.NRGBA) Data {
	return &basicData{c: c, hasColor: true}
}

// NewValueData returns Data carrying only a scalar value (e.g. intensity).
func NewValueData(v int) Data {
	return &basicData{value: v, hasValue: true}
}

func (bp *basicData) SetColor(c color.NRGBA) Data {
	bp.c = c
	bp.hasColor = true
	return bp
}

func (bp *basicData) HasColor() bool { return bp.hasColor }

func (bp *basicData) RGB255() (uint8, uint8, uint8) { return bp.c.R, bp.c.G, bp.c.B }

func (bp *basicData) Color() color.Color { return &bp.c }

func (bp *basicData) SetValue(v int) Data {
	bp.hasValue = true
	bp.value = v
	return bp
}

func (bp *basicData) HasValue() bool { return bp.hasValue }

func (bp *basicData) Value() int { return bp.value }
