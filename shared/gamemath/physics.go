package gamemath

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Sign returns -1, 0 or +1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// MaxAbs returns whichever of a and b has the larger magnitude. Ties keep a.
func MaxAbs(a, b float64) float64 {
	if math.Abs(b) > math.Abs(a) {
		return b
	}
	return a
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no usable length.
func NormalizeOrZero(v cp.Vector) cp.Vector {
	l := math.Hypot(v.X, v.Y)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether v is exactly the zero vector.
func IsZero(v cp.Vector) bool {
	return v.X == 0 && v.Y == 0
}
