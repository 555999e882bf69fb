package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the part of the configuration a YAML document may override.
type Tuning struct {
	Movement  MovementConfig  `yaml:"movement"`
	Collision CollisionConfig `yaml:"collision"`
	AI        AIConfig        `yaml:"ai"`
	Agent     AgentConfig     `yaml:"agent"`
	Level     LevelConfig     `yaml:"level"`
	Debug     DebugConfig     `yaml:"debug"`
	Camera    CameraConfig    `yaml:"camera"`
}

// Current returns a copy of the global tuning values.
func Current() Tuning {
	return Tuning{
		Movement:  Movement,
		Collision: Collision,
		AI:        AI,
		Agent:     Agent,
		Level:     Level,
		Debug:     Debug,
		Camera:    Camera,
	}
}

// ParseTuning decodes data over base. Keys missing from data keep the base
// value; unknown keys are an error.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file from fsys over the current globals.
func LoadTuning(fsys fs.FS, path string) (Tuning, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Current(), fmt.Errorf("tuning: load %s: %w", path, err)
	}
	t, err := ParseTuning(data, Current())
	if err != nil {
		return Current(), fmt.Errorf("tuning: %s: %w", path, err)
	}
	return t, nil
}

// LoadTuningFile reads a tuning file from disk over the current globals.
func LoadTuningFile(path string) (Tuning, error) {
	return LoadTuning(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// ApplyTuning replaces the global tuning values.
func ApplyTuning(t Tuning) {
	Movement = t.Movement
	Collision = t.Collision
	AI = t.AI
	Agent = t.Agent
	Level = t.Level
	Debug = t.Debug
	Camera = t.Camera
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{t.Movement.MaxSpeed > 0, "movement.max_speed"},
		{t.Movement.Acceleration >= 0, "movement.acceleration"},
		{t.Movement.Deceleration >= 0, "movement.deceleration"},
		{t.Movement.Gravity >= 0, "movement.gravity"},
		{t.Movement.JumpReleaseDivisor >= 1, "movement.jump_release_divisor"},
		{t.Movement.NormalDotThreshold > 0 && t.Movement.NormalDotThreshold <= 1, "movement.normal_dot_threshold"},
		{t.Movement.MaxJumpTimer >= 0, "movement.max_jump_timer"},
		{t.Movement.MaxTimestep > 0, "movement.max_timestep"},
		{t.Collision.TouchThreshold >= 0, "collision.touch_threshold"},
		{t.Collision.NormalDotThreshold > 0 && t.Collision.NormalDotThreshold <= 1, "collision.normal_dot_threshold"},
		{t.Collision.BroadphaseExpansion >= 0, "collision.broadphase_expansion"},
		{t.Collision.RayLength > 0, "collision.ray_length"},
		{t.Collision.MaxGroundedTimer >= 0, "collision.max_grounded_timer"},
		{t.Collision.MaxWalledTimer >= 0, "collision.max_walled_timer"},
		{t.AI.DetectionRange >= 0, "ai.detection_range"},
		{t.AI.Radius > 0, "ai.radius"},
		{t.AI.MaxFallCells >= 0, "ai.max_fall_cells"},
		{t.AI.ReplanTicks > 0, "ai.replan_ticks"},
		{t.Agent.PlayerRadius > 0, "agent.player_radius"},
		{t.Level.GridSize > 0, "level.grid_size"},
		{t.Camera.FollowSmoothing > 0 && t.Camera.FollowSmoothing <= 1, "camera.follow_smoothing"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidTuning, c.name)
		}
	}
	return nil
}
