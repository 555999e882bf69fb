package physics

import (
	"math"

	"github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/gamemath"
	"github.com/automoto/wallrun/shared/leveldata"
	"github.com/jakecoffman/cp"
)

// rayDirection is scaled by CollisionConfig.RayLength for the parity test.
var rayDirection = cp.Vector{X: 2, Y: 1}

// Contact is the outcome of one resolver pass.
type Contact struct {
	Normal     cp.Vector
	Adjustment cp.Vector
	// Rescued is set when the agent was snapped back to PrevPosition.
	Rescued bool
	// Candidates is the number of polygons that passed the broad phase.
	Candidates int
}

// Resolver runs the collision pass against one level. It keeps a scratch
// buffer, so one Resolver must not be shared between goroutines.
type Resolver struct {
	Polygons   []leveldata.Polygon
	Broadphase Broadphase
	scratch    []int
}

// NewResolver returns a resolver over polys. A nil broad phase tests every
// polygon.
func NewResolver(polys []leveldata.Polygon, bp Broadphase) *Resolver {
	if bp == nil {
		bp = LinearBroadphase{Count: len(polys)}
	}
	return &Resolver{Polygons: polys, Broadphase: bp}
}

// Resolve pushes b out of the level polygons, composes its contact normal,
// cancels velocity into the surfaces and re-arms the contact timers in j.
func (r *Resolver) Resolve(b *Body, j *JumpState, cfg config.CollisionConfig) Contact {
	var c Contact

	pos := b.Position
	radius := b.Radius
	expanded := gamemath.ExpandBB(gamemath.AABBFromPointRadius(pos, radius), radius*cfg.BroadphaseExpansion)
	radiusSq := radius * radius
	touchSq := (radius + cfg.TouchThreshold) * (radius + cfg.TouchThreshold)
	ray := rayDirection.Mult(cfg.RayLength)

	var adjustment, normal cp.Vector

	r.scratch = r.Broadphase.Query(expanded, r.scratch[:0])
	for _, idx := range r.scratch {
		poly := &r.Polygons[idx]
		if !gamemath.Overlaps(expanded, poly.AABB) {
			continue
		}
		c.Candidates++

		inside := gamemath.PointInRing(pos, poly.Points, ray)
		if poly.Hole {
			inside = !inside
		}
		freeSide := poly.FreeSide()
		colliding := false

		for i := 1; i < len(poly.Points); i++ {
			start, end := poly.Points[i-1], poly.Points[i]
			if gamemath.SideOfLine(start, end, b.PrevPosition) != freeSide {
				continue
			}

			distSq, proj := gamemath.ProjectPointToSegment(start, end, pos, radius)
			hit := distSq <= radiusSq
			colliding = colliding || hit

			if distSq <= touchSq {
				// n points from the surface to the agent.
				n := gamemath.NormalizeOrZero(pos.Sub(proj))
				if n.Y >= cfg.CeilingNormalY {
					normal = normal.Sub(n)

					if math.Abs(n.X) >= cfg.NormalDotThreshold {
						j.WallTimer = cfg.MaxWalledTimer
						j.WallDirection = gamemath.Sign(n.X)
						j.LastWallNormal = n
						j.HasWallNormal = true
						j.HasWallJumped = false
					}
					if n.Y > cfg.GroundNormalY {
						j.GroundedTimer = cfg.MaxGroundedTimer
						j.IsGrounded = true
						j.WallTimer = 0
						j.WallDirection = 0
						j.HasWallJumped = false
					}
				}
			}

			if hit {
				delta := gamemath.NormalizeOrZero(pos.Sub(proj))
				if delta.Y < cfg.CeilingNormalY {
					b.Velocity.Y = 0
				}
				delta = delta.Mult(radius - math.Sqrt(distSq))
				adjustment.X = gamemath.MaxAbs(adjustment.X, delta.X)
				adjustment.Y = gamemath.MaxAbs(adjustment.Y, delta.Y)
			}
		}

		if colliding && inside {
			c.Rescued = true
		}
	}

	normal = gamemath.NormalizeOrZero(normal)
	b.Normal = normal
	b.Velocity = b.Velocity.Sub(normal.Mult(b.Velocity.Dot(normal)))

	if c.Rescued {
		b.Position = b.PrevPosition
	} else {
		b.Position = b.Position.Add(adjustment)
		c.Adjustment = adjustment
	}
	c.Normal = normal
	return c
}

// TouchNormal is a debug line from an agent toward a touched surface.
type TouchNormal struct {
	From cp.Vector
	To   cp.Vector
}

// TouchNormals returns a line of the given length for every edge the body
// touches, pointing from its centre toward the surface. Ceilings are left
// out, as they are by the resolver.
func (r *Resolver) TouchNormals(b *Body, cfg config.CollisionConfig, length float64) []TouchNormal {
	pos := b.Position
	radius := b.Radius
	expanded := gamemath.ExpandBB(gamemath.AABBFromPointRadius(pos, radius), radius*cfg.BroadphaseExpansion)
	touchSq := (radius + cfg.TouchThreshold) * (radius + cfg.TouchThreshold)

	var lines []TouchNormal
	r.scratch = r.Broadphase.Query(expanded, r.scratch[:0])
	for _, idx := range r.scratch {
		poly := &r.Polygons[idx]
		if !gamemath.Overlaps(expanded, poly.AABB) {
			continue
		}
		for i := 1; i < len(poly.Points); i++ {
			distSq, proj := gamemath.ProjectPointToSegment(poly.Points[i-1], poly.Points[i], pos, radius)
			if distSq > touchSq {
				continue
			}
			n := gamemath.NormalizeOrZero(pos.Sub(proj))
			if n.Y < cfg.CeilingNormalY {
				continue
			}
			lines = append(lines, TouchNormal{From: pos, To: pos.Sub(n.Mult(length))})
		}
	}
	return lines
}

// Resolve is a one-off resolver pass over polys.
func Resolve(b *Body, j *JumpState, polys []leveldata.Polygon, bp Broadphase, cfg config.CollisionConfig) Contact {
	return NewResolver(polys, bp).Resolve(b, j, cfg)
}
