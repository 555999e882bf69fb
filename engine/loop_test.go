package engine

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript(t *testing.T) {
	s := Script{Direction: cp.Vector{X: 1}, JumpEvery: 10, HoldTicks: 4}
	tests := []struct {
		tick     uint64
		pressed  bool
		released bool
	}{
		{0, true, false},
		{1, false, false},
		{4, false, true},
		{10, true, false},
		{14, false, true},
	}
	for _, tt := range tests {
		in := s.Next(tt.tick)
		assert.Equal(t, tt.pressed, in.JumpPressed, "tick %d", tt.tick)
		assert.Equal(t, tt.released, in.JumpReleased, "tick %d", tt.tick)
		assert.Equal(t, s.Direction, in.Direction)
	}

	assert.Equal(t, HostInput{}, Script{}.Next(3))
}

func runWithTimeout(t *testing.T, g *GameLoop) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		g.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		g.Stop()
		t.Fatal("game loop did not finish")
	}
}

func TestGameLoopMaxTicks(t *testing.T) {
	e := newEngine(t, defaultLevel(t), DefaultOptions())
	g := NewGameLoop(e, Script{}, 1000)
	g.MaxTicks = 5

	var seen []uint64
	g.OnTick = func(s Snapshot) { seen = append(seen, s.Tick) }

	runWithTimeout(t, g)
	assert.Equal(t, uint64(5), e.Tick())
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, seen)
}

func TestGameLoopStopsOnQuit(t *testing.T) {
	e := newEngine(t, defaultLevel(t), DefaultOptions())
	quitAt := InputFunc(func(tick uint64) HostInput {
		return HostInput{QuitRequested: tick == 3}
	})
	g := NewGameLoop(e, quitAt, 1000)

	runWithTimeout(t, g)
	assert.True(t, e.ShouldExit())
	assert.Equal(t, uint64(4), e.Tick())
}

func TestGameLoopStop(t *testing.T) {
	e := newEngine(t, defaultLevel(t), DefaultOptions())
	g := NewGameLoop(e, Script{}, 200)

	done := make(chan struct{})
	go func() {
		g.Run()
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	g.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.Fail(t, "game loop ignored Stop")
	}
}

func TestGameLoopStopTwice(t *testing.T) {
	e := newEngine(t, defaultLevel(t), DefaultOptions())
	g := NewGameLoop(e, Script{}, 200)

	assert.NotPanics(t, func() {
		g.Stop()
		g.Stop()
	})
	runWithTimeout(t, g)
	assert.Equal(t, uint64(0), e.Tick())
}
