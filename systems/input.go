package systems

import (
	"github.com/automoto/wallrun/components"
	"github.com/automoto/wallrun/shared/gamemath"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/automoto/wallrun/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput applies the host input record: the debug toggle, the quit
// request and the player's intent.
// Must run BEFORE UpdatePursuers and UpdateMovement in the system order.
func UpdateInput(ecs *ecs.ECS) {
	session, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(session)
	settings := components.Settings.Get(session)

	if input.ToggleDebug {
		settings.DebugVisible = !settings.DebugVisible
	}
	if input.QuitRequested {
		settings.ExitRequested = true
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Intent.SetValue(e, physics.Intent{
			Direction:    clampUnit(input.Direction),
			JumpPressed:  input.JumpPressed,
			JumpReleased: input.JumpReleased,
		})
	})
}

// clampUnit scales v down to length 1. NaN and Inf become zero.
func clampUnit(v cp.Vector) cp.Vector {
	if v.LengthSq() <= 1 {
		return v
	}
	return gamemath.NormalizeOrZero(v)
}
