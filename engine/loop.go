package engine

import (
	"log"
	"sync"
	"time"

	"github.com/jakecoffman/cp"
)

// InputSource supplies the host input for a tick.
type InputSource interface {
	Next(tick uint64) HostInput
}

// InputFunc adapts a function to InputSource.
type InputFunc func(tick uint64) HostInput

func (f InputFunc) Next(tick uint64) HostInput { return f(tick) }

// Script holds a direction and taps jump every JumpEvery ticks, releasing
// it HoldTicks later.
type Script struct {
	Direction cp.Vector
	JumpEvery uint64
	HoldTicks uint64
}

func (s Script) Next(tick uint64) HostInput {
	in := HostInput{Direction: s.Direction}
	if s.JumpEvery == 0 {
		return in
	}
	phase := tick % s.JumpEvery
	in.JumpPressed = phase == 0
	in.JumpReleased = s.HoldTicks > 0 && phase == s.HoldTicks%s.JumpEvery
	return in
}

// GameLoop steps an engine on a fixed ticker without a window.
type GameLoop struct {
	engine   *Engine
	input    InputSource
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	// MaxTicks stops the loop after that many ticks; zero runs until Stop
	// or a quit request.
	MaxTicks uint64
	// OnTick, if set, receives a snapshot after every tick.
	OnTick func(Snapshot)
}

func NewGameLoop(engine *Engine, input InputSource, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		engine:   engine,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if !g.tick() {
				log.Printf("Game loop finished after %d ticks", g.engine.Tick())
				return
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// tick reports whether the loop should keep going.
func (g *GameLoop) tick() bool {
	in := g.input.Next(g.engine.Tick())
	g.engine.Step(1/float64(g.tickRate), in)

	if g.OnTick != nil {
		g.OnTick(g.engine.Snapshot())
	}
	if g.engine.ShouldExit() {
		return false
	}
	return g.MaxTicks == 0 || g.engine.Tick() < g.MaxTicks
}
