package components

import (
	"github.com/automoto/wallrun/shared/leveldata"
	"github.com/automoto/wallrun/shared/navgrid"
	"github.com/automoto/wallrun/shared/physics"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level    *leveldata.Level
	Resolver *physics.Resolver
	Nav      *navgrid.Grid
}

var Level = donburi.NewComponentType[LevelData]()
