package scenes

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/engine"
)

const (
	edgeWidth   = 2
	normalWidth = 1
)

func drawSnapshot(screen *ebiten.Image, cam *Camera, snap engine.Snapshot) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	for _, poly := range snap.Polygons {
		for i := 1; i < len(poly.Points); i++ {
			x0, y0 := cam.ToScreen(poly.Points[i-1], w, h)
			x1, y1 := cam.ToScreen(poly.Points[i], w, h)
			vector.StrokeLine(screen, x0, y0, x1, y1, edgeWidth, poly.Color, true)
		}
	}

	for _, a := range snap.Agents {
		x, y := cam.ToScreen(a.Position, w, h)
		vector.DrawFilledCircle(screen, x, y, float32(a.Radius*cam.Zoom), a.Color, true)
	}

	if !snap.DebugVisible {
		return
	}
	for _, n := range snap.Normals {
		x0, y0 := cam.ToScreen(n.From, w, h)
		x1, y1 := cam.ToScreen(n.To, w, h)
		vector.StrokeLine(screen, x0, y0, x1, y1, normalWidth, cfg.Debug.NormalColor, true)
	}
}

func drawHUD(screen *ebiten.Image, levelName string, snap engine.Snapshot) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  tick %d  %.0f tps\n", levelName, snap.Tick, ebiten.ActualTPS())
	for _, a := range snap.Agents {
		if a.Player {
			fmt.Fprintf(&b, "player %-8s pos %7.1f %7.1f  vel %7.1f %7.1f\n",
				a.State, a.Position.X, a.Position.Y, a.Velocity.X, a.Velocity.Y)
			continue
		}
		fmt.Fprintf(&b, "agent %d %-8s %s\n", a.ID, a.State, a.Pursuit)
	}
	if snap.DebugVisible {
		b.WriteString("normals on (G)")
	}
	ebitenutil.DebugPrint(screen, b.String())
}
