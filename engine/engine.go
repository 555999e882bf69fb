// Package engine runs the character-controller pipeline over one level:
// input, pursuit AI, movement, collision and timers, in that order.
package engine

import (
	"errors"
	"fmt"

	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/leveldata"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/automoto/wallrun/systems"
	"github.com/automoto/wallrun/systems/factory"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoLevel             = errors.New("engine: no level")
	ErrSpawnInsideGeometry = errors.New("engine: spawn position inside level geometry")
)

// HostInput is the input the host samples once per tick.
type HostInput = components.InputData

// Snapshot is a read-only copy of the world for rendering.
type Snapshot = systems.Snapshot

type Options struct {
	PlayerSpawn cp.Vector
	// NoPlayer skips spawning the player.
	NoPlayer    bool
	AgentSpawns []cp.Vector
	// Broadphase overrides the resolv spatial index.
	Broadphase physics.Broadphase
}

// DefaultOptions spawns the player and one pursuit agent at the configured
// positions.
func DefaultOptions() Options {
	return Options{
		PlayerSpawn: cp.Vector{X: cfg.Agent.PlayerSpawnX, Y: cfg.Agent.PlayerSpawnY},
		AgentSpawns: []cp.Vector{{X: cfg.Agent.AISpawnX, Y: cfg.Agent.AISpawnY}},
	}
}

// SpawnOptions places the player at the first level spawn and a pursuit
// agent at each of the others. Spawns are in tile units, Y down. With no
// spawns it returns DefaultOptions.
func SpawnOptions(level *leveldata.Level, spawns []cp.Vector) Options {
	if len(spawns) == 0 {
		return DefaultOptions()
	}
	opts := Options{PlayerSpawn: level.TileToWorld(spawns[0])}
	for _, s := range spawns[1:] {
		opts.AgentSpawns = append(opts.AgentSpawns, level.TileToWorld(s))
	}
	return opts
}

type Engine struct {
	ecs     *ecs.ECS
	level   *leveldata.Level
	session *donburi.Entry
}

func New(level *leveldata.Level, opts Options) (*Engine, error) {
	if level == nil {
		return nil, ErrNoLevel
	}

	e := &Engine{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		level: level,
	}

	e.ecs.AddSystem(systems.UpdateInput)
	e.ecs.AddSystem(systems.UpdatePursuers)
	e.ecs.AddSystem(systems.UpdateMovement)
	e.ecs.AddSystem(systems.UpdateCollisions)
	e.ecs.AddSystem(systems.UpdateTimers)

	factory.CreateLevel(e.ecs, level, opts.Broadphase)
	e.session = factory.CreateSession(e.ecs)

	if !opts.NoPlayer {
		if err := e.checkSpawn(opts.PlayerSpawn); err != nil {
			return nil, fmt.Errorf("player: %w", err)
		}
		factory.CreatePlayer(e.ecs, opts.PlayerSpawn)
	}
	for _, pos := range opts.AgentSpawns {
		if err := e.SpawnAgent(pos); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// SpawnAgent adds a pursuit agent at pos.
func (e *Engine) SpawnAgent(pos cp.Vector) error {
	if err := e.checkSpawn(pos); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	factory.CreatePursuer(e.ecs, pos)
	return nil
}

func (e *Engine) checkSpawn(pos cp.Vector) error {
	if e.level.InsideSolid(pos) {
		return fmt.Errorf("%w: %v", ErrSpawnInsideGeometry, pos)
	}
	return nil
}

// Step advances the world by one tick. dt is clamped to
// [0, MaxTimestep] once and every phase uses the clamped value.
func (e *Engine) Step(dt float64, in HostInput) {
	clock := components.Clock.Get(e.session)
	clock.Dt = physics.ClampTimestep(dt, cfg.Movement.MaxTimestep)
	clock.Tick++

	components.Input.SetValue(e.session, in)
	e.ecs.Update()
}

func (e *Engine) Snapshot() Snapshot {
	return systems.BuildSnapshot(e.ecs)
}

// ShouldExit reports whether the host asked to quit.
func (e *Engine) ShouldExit() bool {
	return components.Settings.Get(e.session).ExitRequested
}

func (e *Engine) DebugVisible() bool {
	return components.Settings.Get(e.session).DebugVisible
}

func (e *Engine) Level() *leveldata.Level {
	return e.level
}

// Tick is the number of steps taken so far.
func (e *Engine) Tick() uint64 {
	return components.Clock.Get(e.session).Tick
}
