package systems

import (
	"testing"

	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/leveldata"
	"github.com/automoto/wallrun/shared/navgrid"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/automoto/wallrun/systems/factory"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func buildLevel(t *testing.T, grid leveldata.Grid) *leveldata.Level {
	t.Helper()
	lvl, err := leveldata.Build(grid, 32)
	require.NoError(t, err)
	return lvl
}

var flatRoom = leveldata.Grid{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

var stepRoom = leveldata.Grid{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 1, 1, 1, 1},
	{1, 0, 0, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

func TestWanderBouncesWithoutNavigation(t *testing.T) {
	p := &components.PursuerData{Heading: 1}
	body := physics.NewBody(cp.Vector{}, 8)

	in := wander(p, &body, &physics.JumpState{}, nil)
	assert.Equal(t, cfg.AI.WanderInput, in.Direction.X)

	in = wander(p, &body, &physics.JumpState{WallTimer: 0.1, WallDirection: -1}, nil)
	assert.Equal(t, -1.0, p.Heading)
	assert.Equal(t, -cfg.AI.WanderInput, in.Direction.X)
	assert.False(t, in.JumpPressed)
}

func TestPlanRouteCyclesGoals(t *testing.T) {
	nav := navgrid.New(buildLevel(t, flatRoom))
	require.Len(t, nav.Standable, 6)

	p := &components.PursuerData{}
	start := nav.Center(nav.At(1, 3))
	planRoute(p, start, nav)

	assert.Equal(t, 1, p.Goal)
	assert.Equal(t, 1, p.Waypoint)
	assert.Equal(t, cfg.AI.ReplanTicks, p.PlanTicks)
	require.Len(t, p.Path, 2)
	assert.Equal(t, nav.Center(nav.At(2, 3)), p.Path[1])

	// Goal 0 is the start cell itself, so the next plan skips past it.
	p.Goal = 5
	planRoute(p, start, nav)
	assert.Equal(t, 1, p.Goal)
}

func TestWanderSteersAlongRoute(t *testing.T) {
	nav := navgrid.New(buildLevel(t, flatRoom))
	p := &components.PursuerData{Heading: -1}
	body := physics.NewBody(cp.Vector{X: -80, Y: -40}, 8)
	jump := &physics.JumpState{IsGrounded: true}

	in := wander(p, &body, jump, nav)

	assert.Equal(t, 1.0, p.Heading)
	assert.Equal(t, cfg.AI.WanderInput, in.Direction.X)
	assert.False(t, in.JumpPressed)
	assert.Equal(t, cfg.AI.ReplanTicks-1, p.PlanTicks)
}

func TestWanderJumpsToHigherWaypoint(t *testing.T) {
	nav := navgrid.New(buildLevel(t, stepRoom))
	p := &components.PursuerData{
		Heading:   1,
		Path:      []cp.Vector{nav.Center(nav.At(3, 4)), nav.Center(nav.At(4, 2))},
		Waypoint:  1,
		PlanTicks: 100,
	}
	body := physics.NewBody(cp.Vector{X: -16, Y: -56}, 8)

	in := wander(p, &body, &physics.JumpState{IsGrounded: true}, nav)
	assert.True(t, in.JumpPressed)
	assert.Equal(t, 1, p.Waypoint)

	// Airborne with no wall contact: no jump press.
	in = wander(p, &body, &physics.JumpState{}, nav)
	assert.False(t, in.JumpPressed)
}

func TestWanderReachesEndOfRoute(t *testing.T) {
	nav := navgrid.New(buildLevel(t, flatRoom))
	p := &components.PursuerData{
		Heading:   1,
		Path:      []cp.Vector{nav.Center(nav.At(1, 3)), nav.Center(nav.At(2, 3))},
		Waypoint:  1,
		PlanTicks: 50,
	}
	body := physics.NewBody(cp.Vector{X: -48, Y: -40}, 8)
	jump := &physics.JumpState{IsGrounded: true}

	assert.Equal(t, physics.Intent{}, wander(p, &body, jump, nav))
	assert.Equal(t, 2, p.Waypoint)

	// The finished route is replaced on the next tick.
	wander(p, &body, jump, nav)
	assert.Equal(t, 1, p.Waypoint)
	assert.Equal(t, cfg.AI.ReplanTicks-1, p.PlanTicks)
}

func TestPursuerWandersAroundRoom(t *testing.T) {
	lvl := buildLevel(t, flatRoom)
	world := ecs.NewECS(donburi.NewWorld())
	world.AddSystem(UpdatePursuers)
	world.AddSystem(UpdateMovement)
	world.AddSystem(UpdateCollisions)
	world.AddSystem(UpdateTimers)

	factory.CreateLevel(world, lvl, nil)
	session := factory.CreateSession(world)
	components.Clock.Get(session).Dt = 1.0 / 60.0
	agent := factory.CreatePursuer(world, cp.Vector{X: -80, Y: -32})

	minX, maxX := 1e9, -1e9
	for i := 0; i < 900; i++ {
		world.Update()
		pos := components.Physics.Get(agent).Position
		require.False(t, lvl.InsideSolid(pos), "tick %d at %v", i, pos)
		minX = min(minX, pos.X)
		maxX = max(maxX, pos.X)
	}

	assert.Equal(t, components.Wander, components.Pursuer.Get(agent).State)
	assert.Greater(t, maxX-minX, 64.0)
}
