package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/lafriks/go-tiled"
)

// DefaultTileLayer is the TMX tile layer read for collision geometry.
const DefaultTileLayer = "wg-tiles"

// Tiled tile property values that select a ramp tile.
const (
	SlopeUpRight = "45_up_right"
	SlopeUpLeft  = "45_up_left"
)

// LoadTMX parses a Tiled map and converts one tile layer into a Grid. A tile
// with an int "kind" property uses that tile code, a "slope" property selects
// a ramp, and any other tile is a full square. Points of the "PlayerSpawn"
// object group become spawns, sorted left to right.
func LoadTMX(fsys fs.FS, tmxPath, layerName string) (*Source, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == layerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: no tile layer %q", tmxPath, layerName)
	}

	grid := make(Grid, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		grid[y] = make([]uint32, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			grid[y][x] = tileCode(layer.Tiles[y*levelMap.Width+x])
		}
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	src := &Source{Name: stem(tmxPath), Grid: grid}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			src.Spawns = append(src.Spawns, cp.Vector{X: o.X / tileW, Y: o.Y / tileH})
		}
	}
	sort.Slice(src.Spawns, func(i, j int) bool {
		return src.Spawns[i].X < src.Spawns[j].X
	})

	return src, nil
}

func tileCode(tile *tiled.LayerTile) uint32 {
	if tile == nil || tile.IsNil() {
		return TileEmpty
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil || tilesetTile == nil {
		return TileSquare
	}
	if kind := tilesetTile.Properties.GetInt("kind"); kind > 0 {
		return uint32(kind)
	}
	switch tilesetTile.Properties.GetString("slope") {
	case SlopeUpRight:
		return TileTriBottomRight
	case SlopeUpLeft:
		return TileTriBottomLeft
	}
	return TileSquare
}

// LoadAll discovers every .json and .tmx level in dir and returns them keyed
// by file stem, plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Source, []string, error) {
	var matches []string
	for _, pattern := range []string{dir + "/*.json", dir + "/*.tmx"} {
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no levels found in %s", dir)
	}

	levels := make(map[string]*Source, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		src, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		if _, dup := levels[src.Name]; dup {
			return nil, nil, fmt.Errorf("load %s: duplicate level name %q", p, src.Name)
		}
		levels[src.Name] = src
		names = append(names, src.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
