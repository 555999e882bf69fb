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

// CreatePursuer spawns an AI agent that starts out pursuing the player.
func CreatePursuer(ecs *ecs.ECS, pos cp.Vector) *donburi.Entry {
	agent := archetypes.Pursuer.Spawn(ecs)

	components.Agent.SetValue(agent, components.AgentData{
		ID:    nextAgentID(ecs),
		Color: cfg.Debug.AIColor,
	})
	components.Pursuer.SetValue(agent, components.PursuerData{
		State:   components.Pursue,
		Heading: 1,
	})
	components.Physics.SetValue(agent, physics.NewBody(pos, cfg.AI.Radius))

	return agent
}
