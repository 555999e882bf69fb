package components

import (
	"github.com/automoto/wallrun/shared/physics"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  physics.ContactState
	PreviousState physics.ContactState
	StateTimer    int // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
