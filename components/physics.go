package components

import (
	"github.com/automoto/wallrun/shared/physics"
	"github.com/yohamta/donburi"
)

// Physics is written by the movement system, then by the collision system.
var Physics = donburi.NewComponentType[physics.Body]()

// Jumper holds the jump buffer, coyote and wall-stick timers.
var Jumper = donburi.NewComponentType[physics.JumpState]()

// Intent is the directional input an agent acts on this tick. The player's
// comes from the host, pursuit agents write their own.
var Intent = donburi.NewComponentType[physics.Intent]()
