package factory

import (
	"github.com/automoto/wallrun/archetypes"
	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, pos cp.Vector) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Agent.SetValue(player, components.AgentData{
		ID:    nextAgentID(ecs),
		Color: cfg.Debug.PlayerColor,
	})
	components.Physics.SetValue(player, physics.NewBody(pos, cfg.Agent.PlayerRadius))

	return player
}

// nextAgentID counts the agents already spawned, including the new one.
func nextAgentID(ecs *ecs.ECS) int {
	n := 0
	components.Agent.Each(ecs.World, func(*donburi.Entry) {
		n++
	})
	return n - 1
}
