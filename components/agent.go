package components

import (
	"image/color"

	"github.com/automoto/wallrun/shared/physics"
	"github.com/yohamta/donburi"
)

// AgentData is per-agent bookkeeping shared by the player and pursuit agents.
type AgentData struct {
	ID          int
	Color       color.RGBA
	LastStep    physics.Step
	LastContact physics.Contact
}

var Agent = donburi.NewComponentType[AgentData]()
