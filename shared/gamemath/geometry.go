// Package gamemath holds the pure 2D math used by the level builder and the
// character physics. Vectors are cp.Vector, boxes are cp.BB.
package gamemath

import (
	"math"

	"github.com/jakecoffman/cp"
)

// DistanceRadiusMultiplier inflates the squared distance reported for points
// that project outside a segment, so callers treat them as out of range.
const DistanceRadiusMultiplier = 2.0

// Cross is the 2D cross product a.x*b.y - a.y*b.x.
func Cross(a, b cp.Vector) float64 {
	return a.X*b.Y - a.Y*b.X
}

// SideOfLine reports which side of the line a->b the point p lies on.
func SideOfLine(a, b, p cp.Vector) float64 {
	return Sign((b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X))
}

// LineIntersect intersects the finite segments p1-p2 and p3-p4. Parallel and
// collinear segments report no intersection.
func LineIntersect(p1, p2, p3, p4 cp.Vector) (cp.Vector, bool) {
	r := p2.Sub(p1)
	s := p4.Sub(p3)
	denom := Cross(r, s)
	qp := p3.Sub(p1)
	t := Cross(qp, s) / denom
	u := Cross(qp, r) / denom
	// NaN and Inf fail these comparisons.
	if !(t >= 0 && t <= 1 && u >= 0 && u <= 1) {
		return cp.Vector{}, false
	}
	return p1.Add(r.Mult(t)), true
}

// ProjectPointToSegment returns the squared distance from p to the segment
// a-b and the projected point. When p projects beyond either end the distance
// to that endpoint is returned inflated by 2r; the projection onto the
// infinite line is still returned. A zero-length segment is degenerate and
// always reports the inflated distance to a.
func ProjectPointToSegment(a, b, p cp.Vector, r float64) (float64, cp.Vector) {
	ab := b.Sub(a)
	dir := NormalizeOrZero(ab)
	if IsZero(dir) {
		return p.Sub(a).LengthSq() + DistanceRadiusMultiplier*r, a
	}

	t := p.Sub(a).Dot(dir)
	proj := a.Add(dir.Mult(t))
	switch {
	case t < 0:
		return p.Sub(a).LengthSq() + DistanceRadiusMultiplier*r, proj
	case t*t > ab.LengthSq():
		return p.Sub(b).LengthSq() + DistanceRadiusMultiplier*r, proj
	}
	return p.Sub(proj).LengthSq(), proj
}

// WindingSum is the shoelace variant sum of (x2-x1)(y2+y1) over consecutive
// vertices, wrapping from the last vertex back to the first. A ring that
// already repeats its first vertex contributes a zero-length closing edge.
// With Y up the sum is positive for clockwise rings.
func WindingSum(points []cp.Vector) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		sum += (p2.X - p1.X) * (p2.Y + p1.Y)
	}
	return sum
}

// RayParity counts how many edges of ring the segment p -> p+dir crosses.
// ring is a closed vertex sequence (first vertex repeated at the end).
func RayParity(p cp.Vector, ring []cp.Vector, dir cp.Vector) int {
	end := p.Add(dir)
	hits := 0
	for i := 1; i < len(ring); i++ {
		if _, ok := LineIntersect(ring[i-1], ring[i], p, end); ok {
			hits++
		}
	}
	return hits
}

// PointInRing reports whether p is inside the closed ring by odd ray parity.
func PointInRing(p cp.Vector, ring []cp.Vector, dir cp.Vector) bool {
	return RayParity(p, ring, dir)%2 == 1
}

// NearlyParallel reports whether two non-zero directions are parallel or
// antiparallel within a relative tolerance.
func NearlyParallel(d1, d2 cp.Vector) bool {
	l := d1.Length() * d2.Length()
	if l == 0 {
		return false
	}
	return math.Abs(Cross(d1, d2)) <= 1e-9*l
}
