package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.NoError(t, Current().Validate())
	assert.Equal(t, 300.0, Movement.MaxSpeed)
	assert.Equal(t, 1800.0, Movement.Gravity)
	assert.Equal(t, 540.0, Movement.JumpVelocity)
	assert.InDelta(t, 1.0/30.0, Movement.MaxTimestep, 1e-12)
	assert.Equal(t, 0.166, Collision.MaxGroundedTimer)
	assert.Equal(t, 500.0, AI.DetectionRange)
}

func TestParseTuningOverridesSubset(t *testing.T) {
	base := Current()
	got, err := ParseTuning([]byte("movement:\n  gravity: 0\n  max_speed: 150\nai:\n  radius: 10\n"), base)
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.Movement.Gravity)
	assert.Equal(t, 150.0, got.Movement.MaxSpeed)
	assert.Equal(t, 10.0, got.AI.Radius)
	assert.Equal(t, base.Movement.JumpVelocity, got.Movement.JumpVelocity)
	assert.Equal(t, base.Collision, got.Collision)
	assert.Equal(t, base.Debug.NormalColor, got.Debug.NormalColor)
}

func TestParseTuningEmpty(t *testing.T) {
	got, err := ParseTuning(nil, Current())
	require.NoError(t, err)
	assert.Equal(t, Current(), got)
}

func TestParseTuningErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "movement:\n  warp_speed: 9\n"},
		{"bad type", "movement:\n  gravity: lots\n"},
		{"zero speed", "movement:\n  max_speed: 0\n"},
		{"zero timestep", "movement:\n  max_timestep: 0\n"},
		{"bad grid", "level:\n  grid_size: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Current()
			got, err := ParseTuning([]byte(tt.data), base)
			assert.Error(t, err)
			assert.Equal(t, base, got)
		})
	}

	_, err := ParseTuning([]byte("movement:\n  max_speed: -3\n"), Current())
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestLoadTuning(t *testing.T) {
	fsys := fstest.MapFS{
		"tuning.yaml": {Data: []byte("collision:\n  touch_threshold: 1.5\n")},
	}
	got, err := LoadTuning(fsys, "tuning.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.Collision.TouchThreshold)

	_, err = LoadTuning(fsys, "missing.yaml")
	assert.Error(t, err)
}

func TestLoadTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai:\n  replan_ticks: 60\n"), 0o644))

	got, err := LoadTuningFile(path)
	require.NoError(t, err)
	assert.Equal(t, 60, got.AI.ReplanTicks)
	assert.Equal(t, AI.DetectionRange, got.AI.DetectionRange)

	require.NoError(t, os.WriteFile(path, []byte("ai:\n  replan_ticks: 0\n"), 0o644))
	_, err = LoadTuningFile(path)
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestApplyTuning(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { ApplyTuning(saved) })

	next := saved
	next.Movement.Gravity = 900
	ApplyTuning(next)
	assert.Equal(t, 900.0, Movement.Gravity)
}

func TestTuningWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movement: {}\n"), 0o644))

	w, err := NewTuningWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// Writes to other files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("movement:\n  gravity: 10\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for tuning file")
	}
}

func TestTuningWatcherReportsLastWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai:\n  replan_ticks: 10\n"), 0o644))

	w, err := NewTuningWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	for _, ticks := range []string{"20", "30", "40"} {
		require.NoError(t, os.WriteFile(path, []byte("ai:\n  replan_ticks: "+ticks+"\n"), 0o644))
	}

	select {
	case name := <-w.Events:
		got, err := LoadTuningFile(name)
		require.NoError(t, err)
		assert.Equal(t, 40, got.AI.ReplanTicks)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for tuning file")
	}

	select {
	case <-w.Events:
		t.Fatal("burst reported more than once")
	case <-time.After(3 * watchDebounce):
	}
}
