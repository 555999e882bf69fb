package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/automoto/wallrun/assets"
	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/engine"
)

// WorldScene runs the engine at the window's tick rate and draws its
// snapshots.
type WorldScene struct {
	engine   *engine.Engine
	level    assets.Level
	camera   *Camera
	snapshot engine.Snapshot
	keys     map[cfg.ActionID][]ebiten.Key

	tuningPath string
	watcher    *cfg.TuningWatcher
}

// NewWorldScene builds an engine over level. When tuningPath is set the file
// is watched and re-applied whenever it changes.
func NewWorldScene(level assets.Level, tuningPath string) (*WorldScene, error) {
	keys, err := resolveBindings(cfg.Input)
	if err != nil {
		return nil, err
	}

	opts := engine.SpawnOptions(level.Geometry, level.Source.Spawns)
	eng, err := engine.New(level.Geometry, opts)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}

	ws := &WorldScene{
		engine:     eng,
		level:      level,
		camera:     NewCamera(opts.PlayerSpawn),
		keys:       keys,
		tuningPath: tuningPath,
	}
	ws.snapshot = eng.Snapshot()

	if tuningPath != "" {
		w, err := cfg.NewTuningWatcher(tuningPath)
		if err != nil {
			log.Printf("Warning: not watching %s: %v", tuningPath, err)
		} else {
			ws.watcher = w
		}
	}

	return ws, nil
}

// resolveBindings turns configured key names into ebiten keys.
func resolveBindings(in cfg.InputConfig) (map[cfg.ActionID][]ebiten.Key, error) {
	keys := make(map[cfg.ActionID][]ebiten.Key, len(in.Bindings))
	for action, binding := range in.Bindings {
		for _, name := range binding.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("binding %s: %w", action, err)
			}
			keys[action] = append(keys[action], k)
		}
	}
	return keys, nil
}

func (ws *WorldScene) Update() error {
	ws.reloadTuning()

	dt := 1 / float64(ebiten.TPS())
	ws.engine.Step(dt, ws.sampleInput())
	if ws.engine.ShouldExit() {
		ws.Close()
		return ebiten.Termination
	}

	ws.snapshot = ws.engine.Snapshot()
	for _, a := range ws.snapshot.Agents {
		if a.Player {
			ws.camera.Update(a.Position, dt)
			break
		}
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.ClearColor)
	drawSnapshot(screen, ws.camera, ws.snapshot)
	drawHUD(screen, ws.level.Name, ws.snapshot)
}

// Close stops watching the tuning file.
func (ws *WorldScene) Close() {
	if ws.watcher != nil {
		_ = ws.watcher.Close()
		ws.watcher = nil
	}
}

func (ws *WorldScene) sampleInput() engine.HostInput {
	var in engine.HostInput
	if ws.held(cfg.ActionMoveLeft) {
		in.Direction.X--
	}
	if ws.held(cfg.ActionMoveRight) {
		in.Direction.X++
	}
	if ws.held(cfg.ActionMoveUp) {
		in.Direction.Y++
	}
	if ws.held(cfg.ActionMoveDown) {
		in.Direction.Y--
	}
	in.JumpPressed = ws.justPressed(cfg.ActionJump)
	in.JumpReleased = ws.justReleased(cfg.ActionJump)
	in.ToggleDebug = ws.justPressed(cfg.ActionToggleDebug)
	in.QuitRequested = ws.justPressed(cfg.ActionQuit)
	return in
}

func (ws *WorldScene) held(action cfg.ActionID) bool {
	for _, k := range ws.keys[action] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (ws *WorldScene) justPressed(action cfg.ActionID) bool {
	for _, k := range ws.keys[action] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (ws *WorldScene) justReleased(action cfg.ActionID) bool {
	for _, k := range ws.keys[action] {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// reloadTuning applies the watched tuning file once per change. A bad file
// is logged and the previous values stay in effect.
func (ws *WorldScene) reloadTuning() {
	if ws.watcher == nil {
		return
	}
	select {
	case <-ws.watcher.Events:
		t, err := cfg.LoadTuningFile(ws.tuningPath)
		if err != nil {
			log.Printf("Tuning reload failed: %v", err)
			return
		}
		cfg.ApplyTuning(t)
		log.Printf("Tuning reloaded from %s", ws.tuningPath)
	case err := <-ws.watcher.Errors:
		log.Printf("Tuning watcher error: %v", err)
	default:
	}
}
