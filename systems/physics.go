package systems

import (
	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates every agent's intent into velocity and position.
func UpdateMovement(ecs *ecs.ECS) {
	dt := tickDt(ecs)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		jump := components.Jumper.Get(e)
		intent := components.Intent.Get(e)

		step := physics.Integrate(body, jump, *intent, dt, cfg.Movement)
		components.Agent.Get(e).LastStep = step
	})
}

// UpdateTimers decays the contact timers and tracks the derived contact
// state. Runs after UpdateCollisions.
func UpdateTimers(ecs *ecs.ECS) {
	dt := tickDt(ecs)
	components.Jumper.Each(ecs.World, func(e *donburi.Entry) {
		physics.TickTimers(components.Jumper.Get(e), dt)

		body := components.Physics.Get(e)
		state := components.State.Get(e)
		next := physics.ContactStateOf(body.Normal, cfg.Collision.GroundNormalY, cfg.Collision.NormalDotThreshold)
		if next != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = next
			state.StateTimer = 0
		} else {
			state.StateTimer++
		}
	})
}

func tickDt(ecs *ecs.ECS) float64 {
	clock, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(clock).Dt
}
