// Package physics advances circular agents through static level polygons:
// the movement integrator, the collision resolver and the contact timers.
// One tick runs Integrate, then Resolve, then TickTimers.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// epsilon is the squared length below which input and normals count as zero.
const epsilon = 1e-6

// Body is the physical state of one agent.
type Body struct {
	Position cp.Vector
	// PrevPosition is the position before the last integration step.
	PrevPosition cp.Vector
	Velocity     cp.Vector
	Acceleration cp.Vector
	Radius       float64
	// Normal is the composite contact normal from the last resolve. It
	// points from the agent into the surface and is zero while airborne.
	Normal cp.Vector
}

// NewBody returns a resting body at pos.
func NewBody(pos cp.Vector, radius float64) Body {
	return Body{Position: pos, PrevPosition: pos, Radius: radius}
}

// Airborne reports whether the body touched nothing on the last resolve.
func (b *Body) Airborne() bool {
	return b.Normal.LengthSq() < epsilon
}

// JumpState holds the timers and latches that gate jumping.
type JumpState struct {
	JumpTimer     float64 // jump buffer
	GroundedTimer float64 // coyote time
	WallTimer     float64 // wall stick
	WallDirection float64 // -1, 0 or +1, pointing away from the wall
	HasWallJumped bool
	IsGrounded    bool

	// LastWallNormal points from the last touched wall to the agent.
	LastWallNormal cp.Vector
	HasWallNormal  bool
}

// Intent is one tick of directional input for an agent.
type Intent struct {
	Direction    cp.Vector // length <= 1, Y up
	JumpPressed  bool
	JumpReleased bool
}

// ContactState is derived from the contact normal each tick.
type ContactState int

const (
	Airborne ContactState = iota
	Grounded
	Walled
	Ceiling
)

func (s ContactState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Walled:
		return "walled"
	case Ceiling:
		return "ceiling"
	}
	return "airborne"
}

// ContactStateOf classifies a contact normal. Floors win over walls, walls
// over ceilings.
func ContactStateOf(normal cp.Vector, groundY, wallDot float64) ContactState {
	if normal.LengthSq() < epsilon {
		return Airborne
	}
	outward := normal.Neg()
	switch {
	case outward.Y > groundY:
		return Grounded
	case math.Abs(outward.X) >= wallDot:
		return Walled
	}
	return Ceiling
}
