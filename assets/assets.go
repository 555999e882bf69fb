package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/leveldata"
)

var (
	//go:embed levels
	assetFS embed.FS

	//go:embed tuning.yaml
	tuningFS embed.FS
)

var ErrLevelNotFound = errors.New("level not found")

// TuningFile is the embedded default tuning document.
const TuningFile = "tuning.yaml"

// Level is a level source together with the geometry built from it.
type Level struct {
	Name     string
	Source   *leveldata.Source
	Geometry *leveldata.Level
}

type LevelLoader struct {
	GridSize float64
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{GridSize: config.Level.GridSize}
}

// LoadLevel reads one JSON or TMX level from fsys and builds its polygons.
func (l *LevelLoader) LoadLevel(fsys fs.FS, levelPath string) (Level, error) {
	src, err := leveldata.Load(fsys, levelPath)
	if err != nil {
		return Level{}, err
	}
	return l.build(src)
}

func (l *LevelLoader) build(src *leveldata.Source) (Level, error) {
	geom, err := leveldata.Build(src.Grid, l.GridSize)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", src.Name, err)
	}
	return Level{Name: src.Name, Source: src, Geometry: geom}, nil
}

// LoadLevels builds every embedded level, sorted by name.
func (l *LevelLoader) LoadLevels() ([]Level, error) {
	sources, names, err := leveldata.LoadAll(assetFS, "levels")
	if err != nil {
		return nil, err
	}
	levels := make([]Level, 0, len(names))
	for _, name := range names {
		level, err := l.build(sources[name])
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func (l *LevelLoader) MustLoadLevels() []Level {
	levels, err := l.LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}
	return levels
}

// MustLoadDefault loads the embedded level named by config.Level.Path.
func (l *LevelLoader) MustLoadDefault() Level {
	level, err := l.LoadLevel(assetFS, config.Level.Path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load %s: %v", config.Level.Path, err))
	}
	return level
}

// Resolve returns the embedded level called name, or loads name as a file
// path when no embedded level matches. An empty name is the default level.
func (l *LevelLoader) Resolve(name string) (Level, error) {
	if name == "" {
		return l.LoadLevel(assetFS, config.Level.Path)
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return Level{}, err
	}
	for _, level := range levels {
		if level.Name == name {
			return level, nil
		}
	}

	if _, err := os.Stat(name); err == nil {
		return l.LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
}

// LoadDefaultTuning reads the embedded tuning document over the current
// configuration.
func LoadDefaultTuning() (config.Tuning, error) {
	return config.LoadTuning(tuningFS, TuningFile)
}
