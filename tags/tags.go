package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	// Agent marks pursuit agents driven by the AI system.
	Agent = donburi.NewTag().SetName("Agent")
)
