package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickTimers(t *testing.T) {
	tests := []struct {
		name string
		in   JumpState
		dt   float64
		want JumpState
	}{
		{
			name: "decays all timers",
			in:   JumpState{JumpTimer: 0.1, GroundedTimer: 0.15, WallTimer: 0.12, WallDirection: 1},
			dt:   0.05,
			want: JumpState{JumpTimer: 0.1 - 0.05, GroundedTimer: 0.15 - 0.05, WallTimer: 0.12 - 0.05, WallDirection: 1, IsGrounded: true},
		},
		{
			name: "clamps at zero and clears derived state",
			in:   JumpState{JumpTimer: 0.01, GroundedTimer: 0.01, WallTimer: 0.01, WallDirection: -1, IsGrounded: true},
			dt:   0.05,
			want: JumpState{},
		},
		{
			name: "zero timers stay zero",
			in:   JumpState{HasWallJumped: true},
			dt:   0.05,
			want: JumpState{HasWallJumped: true},
		},
		{
			name: "zero dt keeps grounded",
			in:   JumpState{GroundedTimer: 0.1},
			dt:   0,
			want: JumpState{GroundedTimer: 0.1, IsGrounded: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := tt.in
			TickTimers(&j, tt.dt)
			assert.InDelta(t, tt.want.JumpTimer, j.JumpTimer, 1e-12)
			assert.InDelta(t, tt.want.GroundedTimer, j.GroundedTimer, 1e-12)
			assert.InDelta(t, tt.want.WallTimer, j.WallTimer, 1e-12)
			assert.Equal(t, tt.want.WallDirection, j.WallDirection)
			assert.Equal(t, tt.want.IsGrounded, j.IsGrounded)
			assert.Equal(t, tt.want.HasWallJumped, j.HasWallJumped)
		})
	}
}

func TestTickTimersMonotonic(t *testing.T) {
	j := JumpState{JumpTimer: 0.166, GroundedTimer: 0.1, WallTimer: 0.05, WallDirection: 1}
	for i := 0; i < 20; i++ {
		before := j
		TickTimers(&j, dt60)
		assert.Equal(t, max(0, before.JumpTimer-dt60), j.JumpTimer)
		assert.Equal(t, max(0, before.GroundedTimer-dt60), j.GroundedTimer)
		assert.Equal(t, max(0, before.WallTimer-dt60), j.WallTimer)
		assert.Equal(t, j.GroundedTimer > 0, j.IsGrounded)
		if j.WallTimer == 0 {
			assert.Zero(t, j.WallDirection)
		}
	}
}
