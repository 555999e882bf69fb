package scenes

import (
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"

	cfg "github.com/automoto/wallrun/config"
)

// Camera follows a world position. World Y points up, screen Y down.
type Camera struct {
	Position math.Vec2
	Zoom     float64

	intro *gween.Tween
}

func NewCamera(start cp.Vector) *Camera {
	return &Camera{
		Position: math.NewVec2(start.X, start.Y),
		Zoom:     cfg.Camera.IntroZoomFrom,
		intro: gween.New(
			float32(cfg.Camera.IntroZoomFrom),
			float32(cfg.Camera.IntroZoomTo),
			float32(cfg.Camera.IntroSeconds),
			ease.OutCubic,
		),
	}
}

// Update eases toward target and advances the intro zoom by dt seconds.
func (c *Camera) Update(target cp.Vector, dt float64) {
	c.Position.X += (target.X - c.Position.X) * cfg.Camera.FollowSmoothing
	c.Position.Y += (target.Y - c.Position.Y) * cfg.Camera.FollowSmoothing

	if c.intro != nil {
		zoom, done := c.intro.Update(float32(dt))
		c.Zoom = float64(zoom)
		if done {
			c.intro = nil
		}
	}
}

// ToScreen maps a world point onto a screen of the given size.
func (c *Camera) ToScreen(p cp.Vector, width, height int) (float32, float32) {
	x := (p.X-c.Position.X)*c.Zoom + float64(width)/2
	y := -(p.Y-c.Position.Y)*c.Zoom + float64(height)/2
	return float32(x), float32(y)
}
