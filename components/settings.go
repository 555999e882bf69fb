package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	DebugVisible  bool
	ExitRequested bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// ClockData is the step size every system uses this tick.
type ClockData struct {
	Dt   float64
	Tick uint64
}

var Clock = donburi.NewComponentType[ClockData]()
