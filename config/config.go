package config

import "image/color"

// MovementConfig contains the movement integrator tuning. Units are world
// units and seconds.
type MovementConfig struct {
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"` // per second, while input is held
	Deceleration float64 `yaml:"deceleration"` // per second, with no input

	Gravity           float64 `yaml:"gravity"`
	JumpVelocity      float64 `yaml:"jump_velocity"`
	WallJumpVelocityX float64 `yaml:"wall_jump_velocity_x"`
	WallJumpVelocityY float64 `yaml:"wall_jump_velocity_y"`

	WallJumpAccelMultiplier float64 `yaml:"wall_jump_accel_multiplier"`
	JumpReleaseDivisor      float64 `yaml:"jump_release_divisor"`

	// Input mostly aligned with the contact normal is not rotated onto the surface.
	NormalDotThreshold float64 `yaml:"normal_dot_threshold"`

	// Jump buffer window armed by a jump press.
	MaxJumpTimer float64 `yaml:"max_jump_timer"`

	// Longest step the integrator accepts.
	MaxTimestep float64 `yaml:"max_timestep"`
}

// CollisionConfig contains the collision resolver tuning.
type CollisionConfig struct {
	TouchThreshold      float64 `yaml:"touch_threshold"`
	NormalDotThreshold  float64 `yaml:"normal_dot_threshold"`
	GroundNormalY       float64 `yaml:"ground_normal_y"`
	CeilingNormalY      float64 `yaml:"ceiling_normal_y"`
	BroadphaseExpansion float64 `yaml:"broadphase_expansion"` // times radius
	RayLength           float64 `yaml:"ray_length"`

	// Coyote window and wall-stick window re-armed on contact.
	MaxGroundedTimer float64 `yaml:"max_grounded_timer"`
	MaxWalledTimer   float64 `yaml:"max_walled_timer"`
}

// AIConfig contains pursuit agent tuning.
type AIConfig struct {
	DetectionRange    float64 `yaml:"detection_range"`
	JumpHeightTrigger float64 `yaml:"jump_height_trigger"`
	WanderInput       float64 `yaml:"wander_input"` // input magnitude while wandering
	PursueInput       float64 `yaml:"pursue_input"`
	Radius            float64 `yaml:"radius"`

	// Wander navigation over the tile grid.
	MaxFallCells int `yaml:"max_fall_cells"`
	ReplanTicks  int `yaml:"replan_ticks"` // give up on a waypoint after this long
}

// AgentConfig contains spawn defaults for the player.
type AgentConfig struct {
	PlayerRadius float64 `yaml:"player_radius"`
	PlayerSpawnX float64 `yaml:"player_spawn_x"`
	PlayerSpawnY float64 `yaml:"player_spawn_y"`
	AISpawnX     float64 `yaml:"ai_spawn_x"`
	AISpawnY     float64 `yaml:"ai_spawn_y"`
}

// LevelConfig contains level loading defaults.
type LevelConfig struct {
	GridSize float64 `yaml:"grid_size"`
	Path     string  `yaml:"path"`
}

// DebugConfig contains debug overlay options.
type DebugConfig struct {
	ShowNormals      bool       `yaml:"show_normals"`
	NormalLineLength float64    `yaml:"normal_line_length"`
	NormalColor      color.RGBA `yaml:"-"`
	PlayerColor      color.RGBA `yaml:"-"`
	AIColor          color.RGBA `yaml:"-"`
}

// CameraConfig contains host camera behavior.
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 0.0-1.0
	IntroZoomFrom   float64 `yaml:"intro_zoom_from"`
	IntroZoomTo     float64 `yaml:"intro_zoom_to"`
	IntroSeconds    float64 `yaml:"intro_seconds"`
}

// Config holds general window configuration
type Config struct {
	Width      int
	Height     int
	TickRate   int
	Title      string
	ClearColor color.RGBA
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Collision CollisionConfig
var AI AIConfig
var Agent AgentConfig
var Level LevelConfig
var Debug DebugConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Night = color.RGBA{R: 16, G: 18, B: 28, A: 255}
)

func init() {
	C = &Config{
		Width:      1280,
		Height:     720,
		TickRate:   60,
		Title:      "wallrun",
		ClearColor: Night,
	}

	Movement = MovementConfig{
		MaxSpeed:     300.0,
		Acceleration: 12.0,
		Deceleration: 24.0,

		Gravity:           1800.0,
		JumpVelocity:      540.0, // 9 px/frame at 60 FPS
		WallJumpVelocityX: 468.0,
		WallJumpVelocityY: 270.0,

		WallJumpAccelMultiplier: 0.5,
		JumpReleaseDivisor:      3.0,

		NormalDotThreshold: 0.8, // ~37 degrees

		MaxJumpTimer: 0.166,
		MaxTimestep:  1.0 / 30.0,
	}

	Collision = CollisionConfig{
		TouchThreshold:      0.5,
		NormalDotThreshold:  0.8,
		GroundNormalY:       0.01,
		CeilingNormalY:      -0.01,
		BroadphaseExpansion: 0.5,
		RayLength:           10000.0,

		MaxGroundedTimer: 0.166,
		MaxWalledTimer:   0.166,
	}

	AI = AIConfig{
		DetectionRange:    500.0,
		JumpHeightTrigger: 48.0,
		WanderInput:       0.5,
		PursueInput:       1.0,
		Radius:            8.0,

		MaxFallCells: 3,
		ReplanTicks:  180,
	}

	Agent = AgentConfig{
		PlayerRadius: 12.0,
		PlayerSpawnX: 0,
		PlayerSpawnY: -50,
		AISpawnX:     0,
		AISpawnY:     -250,
	}

	Level = LevelConfig{
		GridSize: 32.0,
		Path:     "levels/default.json",
	}

	Debug = DebugConfig{
		ShowNormals:      true,
		NormalLineLength: 12.0,
		NormalColor:      White,
		PlayerColor:      White,
		AIColor:          Red,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		IntroZoomFrom:   0.5,
		IntroZoomTo:     1.0,
		IntroSeconds:    1.2,
	}
}
