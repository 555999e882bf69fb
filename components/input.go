package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// InputData is the host input record for the current tick. Edges are
// sampled by the host; the core never polls devices.
type InputData struct {
	Direction     cp.Vector // Y up, any length; clamped to 1
	JumpPressed   bool
	JumpReleased  bool
	QuitRequested bool
	ToggleDebug   bool
}

var Input = donburi.NewComponentType[InputData]()
