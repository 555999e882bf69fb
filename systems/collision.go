package systems

import (
	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions pushes every agent out of the level geometry and re-arms
// its contact timers. Agents do not collide with each other.
func UpdateCollisions(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	resolver := components.Level.Get(levelEntry).Resolver

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		jump := components.Jumper.Get(e)

		contact := resolver.Resolve(body, jump, cfg.Collision)
		components.Agent.Get(e).LastContact = contact
	})
}
