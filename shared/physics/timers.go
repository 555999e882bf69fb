package physics

// TickTimers decays the jump buffer, coyote and wall-stick timers by dt.
func TickTimers(j *JumpState, dt float64) {
	j.JumpTimer = decay(j.JumpTimer, dt)

	j.GroundedTimer = decay(j.GroundedTimer, dt)
	j.IsGrounded = j.GroundedTimer > 0

	if j.WallTimer > 0 {
		j.WallTimer = decay(j.WallTimer, dt)
		if j.WallTimer == 0 {
			j.WallDirection = 0
		}
	}
}

func decay(t, dt float64) float64 {
	if t <= 0 {
		return 0
	}
	t -= dt
	if t < 0 {
		return 0
	}
	return t
}
