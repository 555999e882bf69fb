package physics

import (
	"math"

	"github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/gamemath"
	"github.com/jakecoffman/cp"
)

// Step reports what the integrator did on one tick.
type Step struct {
	// EffectiveInput is the input after rotation onto the contact surface.
	EffectiveInput cp.Vector
	MovingOffWall  bool
	Jumped         bool
	WallJumped     bool
	JumpCut        bool
}

// ClampTimestep limits dt to [0, max].
func ClampTimestep(dt, max float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return math.Min(dt, max)
}

// Integrate turns input into acceleration, applies gravity and jump impulses,
// then advances velocity and position with semi-implicit Euler.
func Integrate(b *Body, j *JumpState, in Intent, dt float64, cfg config.MovementConfig) Step {
	dt = ClampTimestep(dt, cfg.MaxTimestep)
	var step Step

	if in.JumpPressed {
		j.JumpTimer = cfg.MaxJumpTimer
	}

	airborne := b.Airborne()
	noInput := in.Direction.LengthSq() < epsilon
	n := b.Normal

	// Run along whatever surface the agent is stuck to.
	eff := in.Direction
	if !noInput && !airborne && math.Abs(in.Direction.Dot(n)) < cfg.NormalDotThreshold {
		tangent := cp.Vector{X: n.Y, Y: -n.X}
		if tangent.Dot(in.Direction) < 0 {
			tangent = tangent.Neg()
		}
		eff = tangent
	}
	step.EffectiveInput = eff

	step.MovingOffWall = math.Abs(n.X) >= cfg.NormalDotThreshold &&
		math.Abs(eff.X) >= cfg.NormalDotThreshold &&
		gamemath.Sign(n.X) != gamemath.Sign(eff.X)

	k := cfg.Acceleration
	if noInput {
		k = cfg.Deceleration
	}
	accel := eff.Mult(cfg.MaxSpeed).Sub(b.Velocity).Mult(k)
	if j.HasWallJumped {
		accel = accel.Mult(cfg.WallJumpAccelMultiplier)
	}
	if airborne {
		accel.Y = 0
	}
	if !step.MovingOffWall {
		accel = accel.Sub(n.Mult(accel.Dot(n)))
	}
	b.Acceleration = accel

	if step.MovingOffWall || airborne {
		b.Velocity.Y -= cfg.Gravity * dt
	} else {
		b.Velocity = b.Velocity.Add(n.Mult(cfg.Gravity * dt))
	}

	if j.JumpTimer > 0 {
		switch {
		case j.GroundedTimer > 0:
			b.Velocity.Y = cfg.JumpVelocity
			j.JumpTimer = 0
			j.GroundedTimer = 0
			step.Jumped = true
		case j.WallTimer > 0:
			b.Velocity.Y = cfg.WallJumpVelocityY
			b.Velocity.X = j.WallDirection * cfg.WallJumpVelocityX
			j.JumpTimer = 0
			j.WallTimer = 0
			j.WallDirection = 0
			j.HasWallJumped = true
			step.WallJumped = true
		}
	}

	if in.JumpReleased && b.Velocity.Y > epsilon {
		b.Velocity.Y /= cfg.JumpReleaseDivisor
		step.JumpCut = true
	}

	b.PrevPosition = b.Position
	b.Velocity = b.Velocity.Add(accel.Mult(dt))
	b.Position = b.Position.Add(b.Velocity.Mult(dt))

	return step
}
