package gamemath

import (
	"math"

	"github.com/jakecoffman/cp"
)

// AABBFromPointRadius is the box [c-r, c+r].
func AABBFromPointRadius(c cp.Vector, r float64) cp.BB {
	return cp.NewBBForCircle(c, r)
}

// ExpandBB widens every side of bb by a.
func ExpandBB(bb cp.BB, a float64) cp.BB {
	return cp.BB{L: bb.L - a, B: bb.B - a, R: bb.R + a, T: bb.T + a}
}

// Overlaps is the inclusive interval overlap test on both axes.
func Overlaps(a, b cp.BB) bool {
	return a.L <= b.R && b.L <= a.R && a.B <= b.T && b.B <= a.T
}

// BoundsOf returns the componentwise min/max of points. An empty slice gives
// the zero box.
func BoundsOf(points []cp.Vector) cp.BB {
	if len(points) == 0 {
		return cp.BB{}
	}
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, p := range points {
		bb.L = math.Min(bb.L, p.X)
		bb.B = math.Min(bb.B, p.Y)
		bb.R = math.Max(bb.R, p.X)
		bb.T = math.Max(bb.T, p.Y)
	}
	return bb
}

// ContainsPoint reports whether p lies inside bb, edges included.
func ContainsPoint(bb cp.BB, p cp.Vector) bool {
	return bb.L <= p.X && p.X <= bb.R && bb.B <= p.Y && p.Y <= bb.T
}
