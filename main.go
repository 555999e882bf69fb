package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/wallrun/assets"
	"github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/scenes"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "", "Embedded level name or path to a .json/.tmx level (empty = default)")
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded on change (empty = embedded defaults)")
	flag.Parse()

	if err := loadTuning(*tuningPath); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	level, err := assets.NewLevelLoader().Resolve(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	scene, err := scenes.NewWorldScene(level, *tuningPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer scene.Close()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

func loadTuning(path string) error {
	var (
		t   config.Tuning
		err error
	)
	if path == "" {
		t, err = assets.LoadDefaultTuning()
	} else {
		t, err = config.LoadTuningFile(path)
	}
	if err != nil {
		return err
	}
	config.ApplyTuning(t)
	return nil
}
