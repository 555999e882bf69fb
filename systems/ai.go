package systems

import (
	"math"

	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/gamemath"
	"github.com/automoto/wallrun/shared/navgrid"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/automoto/wallrun/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxPlanAttempts caps the goals tried per route plan.
const maxPlanAttempts = 8

// UpdatePursuers switches pursuit agents between wandering and pursuing the
// player and writes their intent for this tick.
func UpdatePursuers(ecs *ecs.ECS) {
	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	var target cp.Vector
	if hasPlayer {
		target = components.Physics.Get(playerEntry).Position
	}
	rangeSq := cfg.AI.DetectionRange * cfg.AI.DetectionRange

	var nav *navgrid.Grid
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		nav = components.Level.Get(levelEntry).Nav
	}

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		pursuer := components.Pursuer.Get(e)
		body := components.Physics.Get(e)
		jump := components.Jumper.Get(e)

		detected := hasPlayer && body.Position.Sub(target).LengthSq() <= rangeSq
		switch pursuer.State {
		case components.Wander:
			if detected {
				pursuer.State = components.Pursue
			}
		default:
			if !detected {
				pursuer.State = components.Wander
				pursuer.PlanTicks = 0
			}
		}

		var intent physics.Intent
		if pursuer.State == components.Wander {
			intent = wander(pursuer, body, jump, nav)
		} else {
			intent = pursue(pursuer, body, jump, target)
		}
		components.Intent.SetValue(e, intent)
	})
}

// wander walks a route to one standable cell after another. Without a route
// it walks until it hits a wall and turns around.
func wander(p *components.PursuerData, b *physics.Body, j *physics.JumpState, nav *navgrid.Grid) physics.Intent {
	if nav == nil {
		return bounce(p, j)
	}

	if p.PlanTicks <= 0 || (len(p.Path) > 0 && p.Waypoint >= len(p.Path)) {
		planRoute(p, b.Position, nav)
	}
	p.PlanTicks--
	if p.Waypoint >= len(p.Path) {
		return bounce(p, j)
	}

	delta := p.Path[p.Waypoint].Sub(b.Position)
	if math.Abs(delta.X) <= nav.CellSize/2 && math.Abs(delta.Y) <= nav.CellSize {
		p.Waypoint++
		if p.Waypoint >= len(p.Path) {
			return physics.Intent{}
		}
		delta = p.Path[p.Waypoint].Sub(b.Position)
	}
	if s := gamemath.Sign(delta.X); s != 0 {
		p.Heading = s
	}

	blocked := j.WallTimer > 0 && j.WallDirection == -p.Heading
	climb := delta.Y > nav.CellSize/2 && (j.IsGrounded || j.WallTimer > 0)

	return physics.Intent{
		Direction:   cp.Vector{X: p.Heading * cfg.AI.WanderInput},
		JumpPressed: blocked || climb,
	}
}

// planRoute picks the next goal in turn and plans a route to it. Goals that
// cannot be reached are skipped, a few per call.
func planRoute(p *components.PursuerData, pos cp.Vector, nav *navgrid.Grid) {
	p.Path, p.Waypoint = nil, 0
	p.PlanTicks = cfg.AI.ReplanTicks

	goals := len(nav.Standable)
	for attempt := 0; attempt < min(goals, maxPlanAttempts); attempt++ {
		p.Goal = (p.Goal + 1) % goals
		path := nav.FindPath(pos, nav.Center(nav.Standable[p.Goal]))
		if len(path) > 1 {
			// The first cell is the one the agent is in.
			p.Path, p.Waypoint = path, 1
			return
		}
	}
}

func bounce(p *components.PursuerData, j *physics.JumpState) physics.Intent {
	// WallDirection points away from the wall just touched.
	if j.WallTimer > 0 && j.WallDirection != 0 {
		p.Heading = j.WallDirection
	}
	return physics.Intent{
		Direction: cp.Vector{X: p.Heading * cfg.AI.WanderInput},
	}
}

func pursue(p *components.PursuerData, b *physics.Body, j *physics.JumpState, target cp.Vector) physics.Intent {
	delta := target.Sub(b.Position)
	if s := gamemath.Sign(delta.X); s != 0 {
		p.Heading = s
	}

	blocked := j.WallTimer > 0 && j.WallDirection == -p.Heading
	above := delta.Y > cfg.AI.JumpHeightTrigger && (j.IsGrounded || j.WallTimer > 0)

	return physics.Intent{
		Direction:   cp.Vector{X: p.Heading * cfg.AI.PursueInput},
		JumpPressed: blocked || above,
	}
}
