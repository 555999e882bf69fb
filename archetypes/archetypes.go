package archetypes

import (
	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Agent,
		components.Physics,
		components.Jumper,
		components.Intent,
		components.State,
	)
	Pursuer = newArchetype(
		tags.Agent,
		components.Agent,
		components.Pursuer,
		components.Physics,
		components.Jumper,
		components.Intent,
		components.State,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Input,
		components.Settings,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
