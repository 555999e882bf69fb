// Command headless runs a level without a window, driving the player with a
// scripted input and logging agent transforms.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jakecoffman/cp"

	"github.com/automoto/wallrun/assets"
	"github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/engine"
)

func main() {
	levelName := flag.String("level", "", "Embedded level name or path to a .json/.tmx level (empty = default)")
	tuningPath := flag.String("tuning", "", "YAML tuning file (empty = embedded defaults)")
	ticks := flag.Uint64("ticks", 600, "Ticks to run (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 60, "Ticks per second")
	logEvery := flag.Uint64("log-every", 60, "Log agent transforms every N ticks (0 = never)")
	runX := flag.Float64("run", 1, "Scripted horizontal input, -1 to 1")
	jumpEvery := flag.Uint64("jump-every", 90, "Press jump every N ticks (0 = never)")
	flag.Parse()

	var (
		tuning config.Tuning
		err    error
	)
	if *tuningPath == "" {
		tuning, err = assets.LoadDefaultTuning()
	} else {
		tuning, err = config.LoadTuningFile(*tuningPath)
	}
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	config.ApplyTuning(tuning)

	level, err := assets.NewLevelLoader().Resolve(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	eng, err := engine.New(level.Geometry, engine.SpawnOptions(level.Geometry, level.Source.Spawns))
	if err != nil {
		log.Fatalf("Failed to start level %s: %v", level.Name, err)
	}

	script := engine.Script{
		Direction: cp.Vector{X: *runX},
		JumpEvery: *jumpEvery,
		HoldTicks: 12,
	}
	loop := engine.NewGameLoop(eng, script, *tickRate)
	loop.MaxTicks = *ticks
	if *logEvery > 0 {
		loop.OnTick = func(snap engine.Snapshot) {
			if snap.Tick%*logEvery != 0 {
				return
			}
			for _, a := range snap.Agents {
				log.Printf("tick %d agent %d player=%t %s pursuit=%s pos=(%.2f, %.2f) vel=(%.2f, %.2f)",
					snap.Tick, a.ID, a.Player, a.State, a.Pursuit,
					a.Position.X, a.Position.Y, a.Velocity.X, a.Velocity.Y)
			}
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Running level %q (%dx%d tiles, %d polygons)",
		level.Name, level.Geometry.Cols, level.Geometry.Rows, len(level.Geometry.Polygons))
	loop.Run()
}
