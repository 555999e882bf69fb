package config

// ActionID represents a logical host action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionMoveUp:      "move_up",
	ActionMoveDown:    "move_down",
	ActionJump:        "jump",
	ActionToggleDebug: "toggle_debug",
	ActionQuit:        "quit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputBinding lists the keyboard keys bound to an action. Keys are ebiten
// key names ("ArrowLeft", "A", "Space").
type InputBinding struct {
	Keys []string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {Keys: []string{"ArrowLeft", "A"}},
			ActionMoveRight:   {Keys: []string{"ArrowRight", "D"}},
			ActionMoveUp:      {Keys: []string{"ArrowUp", "W"}},
			ActionMoveDown:    {Keys: []string{"ArrowDown", "S"}},
			ActionJump:        {Keys: []string{"Space"}},
			ActionToggleDebug: {Keys: []string{"G"}},
			ActionQuit:        {Keys: []string{"Escape"}},
		},
	}
}
