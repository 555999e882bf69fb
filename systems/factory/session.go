package factory

import (
	"github.com/automoto/wallrun/archetypes"
	"github.com/automoto/wallrun/components"
	cfg "github.com/automoto/wallrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding host input, settings and the
// tick clock.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Settings.SetValue(session, components.SettingsData{
		DebugVisible: cfg.Debug.ShowNormals,
	})

	return session
}
