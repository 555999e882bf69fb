package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/automoto/wallrun/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PolygonView is a read-only copy of one level polygon.
type PolygonView struct {
	Points []cp.Vector // closed ring
	Color  color.RGBA
	Hole   bool
}

// AgentView is a read-only copy of one agent's transform and contact state.
type AgentView struct {
	ID       int
	Player   bool
	Position cp.Vector
	Velocity cp.Vector
	Radius   float64
	Color    color.RGBA
	State    physics.ContactState
	Pursuit  components.PursueState
}

// NormalLine is a debug line from an agent toward a touched surface.
type NormalLine struct {
	From, To cp.Vector
}

// Snapshot is everything a host needs to draw one tick.
type Snapshot struct {
	Tick         uint64
	Polygons     []PolygonView
	Agents       []AgentView
	Normals      []NormalLine
	DebugVisible bool
	Bounds       cp.BB
}

// BuildSnapshot copies the renderable state out of the world. Agents are
// ordered by ID. Normals are only collected while the debug overlay is on.
func BuildSnapshot(ecs *ecs.ECS) Snapshot {
	var snap Snapshot

	if clock, ok := components.Clock.First(ecs.World); ok {
		snap.Tick = components.Clock.Get(clock).Tick
	}
	if session, ok := components.Settings.First(ecs.World); ok {
		snap.DebugVisible = components.Settings.Get(session).DebugVisible
	}

	levelEntry, hasLevel := components.Level.First(ecs.World)
	var level *components.LevelData
	if hasLevel {
		level = components.Level.Get(levelEntry)
		snap.Bounds = level.Level.Bounds
		snap.Polygons = make([]PolygonView, len(level.Level.Polygons))
		for i, poly := range level.Level.Polygons {
			snap.Polygons[i] = PolygonView{
				Points: append([]cp.Vector(nil), poly.Points...),
				Color:  poly.Color,
				Hole:   poly.Hole,
			}
		}
	}

	components.Agent.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		body := components.Physics.Get(e)
		view := AgentView{
			ID:       agent.ID,
			Player:   e.HasComponent(tags.Player),
			Position: body.Position,
			Velocity: body.Velocity,
			Radius:   body.Radius,
			Color:    agent.Color,
			State:    components.State.Get(e).CurrentState,
		}
		if e.HasComponent(components.Pursuer) {
			view.Pursuit = components.Pursuer.Get(e).State
		}
		snap.Agents = append(snap.Agents, view)

		if snap.DebugVisible && hasLevel {
			for _, n := range level.Resolver.TouchNormals(body, cfg.Collision, cfg.Debug.NormalLineLength) {
				snap.Normals = append(snap.Normals, NormalLine{From: n.From, To: n.To})
			}
		}
	})
	sort.Slice(snap.Agents, func(i, j int) bool {
		return snap.Agents[i].ID < snap.Agents[j].ID
	})

	return snap
}
