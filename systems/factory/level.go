package factory

import (
	"github.com/automoto/wallrun/archetypes"
	"github.com/automoto/wallrun/components"
	"github.com/automoto/wallrun/shared/leveldata"
	"github.com/automoto/wallrun/shared/navgrid"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores a built level with its resolver and navigation grid. A
// nil broad phase indexes the polygons in a resolv space.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level, bp physics.Broadphase) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if bp == nil {
		bp = physics.NewSpatialIndex(lvl)
	}
	components.Level.SetValue(level, components.LevelData{
		Level:    lvl,
		Resolver: physics.NewResolver(lvl.Polygons, bp),
		Nav:      navgrid.New(lvl),
	})

	return level
}
