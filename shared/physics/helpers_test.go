package physics

import (
	"testing"

	"github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/leveldata"
	"github.com/jakecoffman/cp"
)

const dt60 = 1.0 / 60.0

func box(l, b, r, t float64) leveldata.Polygon {
	return leveldata.NewPolygon([]cp.Vector{{X: l, Y: t}, {X: r, Y: t}, {X: r, Y: b}, {X: l, Y: b}})
}

// sim runs the per-tick pipeline for one agent.
type sim struct {
	body Body
	jump JumpState
	res  *Resolver
	mv   config.MovementConfig
	col  config.CollisionConfig
}

func newSim(polys []leveldata.Polygon, pos cp.Vector, radius float64) *sim {
	return &sim{
		body: NewBody(pos, radius),
		res:  NewResolver(polys, nil),
		mv:   config.Movement,
		col:  config.Collision,
	}
}

func (s *sim) tick(in Intent, dt float64) (Step, Contact) {
	dt = ClampTimestep(dt, s.mv.MaxTimestep)
	step := Integrate(&s.body, &s.jump, in, dt, s.mv)
	contact := s.res.Resolve(&s.body, &s.jump, s.col)
	TickTimers(&s.jump, dt)
	return step, contact
}

// settle lets the agent come to rest.
func (s *sim) settle(t *testing.T, ticks int) {
	t.Helper()
	for i := 0; i < ticks; i++ {
		s.tick(Intent{}, dt60)
	}
}

var (
	right = cp.Vector{X: 1, Y: 0}
	left  = cp.Vector{X: -1, Y: 0}
)
