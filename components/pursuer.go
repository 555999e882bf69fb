package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

type PursueState int

const (
	Wander PursueState = iota
	Pursue
	// Search and Attack are reserved; they steer like Pursue.
	Search
	Attack
)

func (s PursueState) String() string {
	switch s {
	case Wander:
		return "wander"
	case Pursue:
		return "pursue"
	case Search:
		return "search"
	case Attack:
		return "attack"
	}
	return "unknown"
}

type PursuerData struct {
	State PursueState
	// Heading is -1 or +1, the horizontal direction of travel.
	Heading float64

	// Wander route. Goal indexes the level's standable cells.
	Goal      int
	Path      []cp.Vector
	Waypoint  int
	PlanTicks int // ticks left before the route is planned again
}

var Pursuer = donburi.NewComponentType[PursuerData]()
