package physics

import (
	"math"
	"sort"

	"github.com/automoto/wallrun/shared/leveldata"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
)

// Broadphase narrows the polygons worth testing against a box.
type Broadphase interface {
	// Query appends to dst the indices of polygons that may overlap bb, in
	// ascending order.
	Query(bb cp.BB, dst []int) []int
}

// LinearBroadphase returns every polygon.
type LinearBroadphase struct {
	Count int
}

func (l LinearBroadphase) Query(_ cp.BB, dst []int) []int {
	for i := 0; i < l.Count; i++ {
		dst = append(dst, i)
	}
	return dst
}

const (
	tagSolid = "solid"
	tagProbe = "probe"

	// spacePadding is the number of empty cells around the level so agents
	// slightly outside it still map into the space.
	spacePadding = 2
)

// SpatialIndex buckets polygon bounding boxes in a resolv.Space. resolv
// works in Y-down coordinates starting at zero, so world boxes are flipped
// and shifted by the level's top left corner.
type SpatialIndex struct {
	space  *resolv.Space
	probe  *resolv.Object
	left   float64
	top    float64
	margin float64
}

// NewSpatialIndex indexes the polygons of lvl with cells of the level's
// grid size.
func NewSpatialIndex(lvl *leveldata.Level) *SpatialIndex {
	cell := int(math.Max(1, math.Round(lvl.GridSize)))
	margin := float64(cell * spacePadding)
	width := int(math.Ceil(lvl.Bounds.R-lvl.Bounds.L)) + 2*cell*spacePadding
	height := int(math.Ceil(lvl.Bounds.T-lvl.Bounds.B)) + 2*cell*spacePadding

	s := &SpatialIndex{
		space:  resolv.NewSpace(width, height, cell, cell),
		left:   lvl.Bounds.L,
		top:    lvl.Bounds.T,
		margin: margin,
	}

	for i, poly := range lvl.Polygons {
		x, y, w, h := s.rect(poly.AABB)
		obj := resolv.NewObject(x, y, w, h, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = i
		s.space.Add(obj)
	}

	s.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	s.space.Add(s.probe)
	return s
}

func (s *SpatialIndex) rect(bb cp.BB) (x, y, w, h float64) {
	return bb.L - s.left + s.margin, s.top - bb.T + s.margin, bb.R - bb.L, bb.T - bb.B
}

// Query moves the probe object over bb and collects the polygons sharing
// its cells. The result may include polygons that do not overlap bb.
func (s *SpatialIndex) Query(bb cp.BB, dst []int) []int {
	x, y, w, h := s.rect(bb)
	// resolv maps the far edge to X+W-1; grow the probe so boxes that only
	// touch bb still share a cell with it.
	s.probe.X, s.probe.Y, s.probe.W, s.probe.H = x-1, y-1, w+2, h+2
	s.probe.Update()

	check := s.probe.Check(0, 0, tagSolid)
	if check == nil {
		return dst
	}
	start := len(dst)
	for _, obj := range check.Objects {
		if idx, ok := obj.Data.(int); ok {
			dst = append(dst, idx)
		}
	}
	found := dst[start:]
	sort.Ints(found)
	return dst
}
