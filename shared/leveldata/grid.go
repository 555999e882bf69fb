package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"
)

// ParseGrid decodes a JSON array of arrays of tile codes.
func ParseGrid(data []byte) (Grid, error) {
	if !utf8.Valid(data) {
		return nil, ErrNotUTF8
	}

	var grid Grid
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, err)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

// Validate checks that g is non-empty and rectangular.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGrid
	}
	cols := len(g[0])
	for y, row := range g {
		if len(row) == 0 {
			return fmt.Errorf("row %d: %w", y, ErrEmptyRow)
		}
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, want %d: %w", y, len(row), cols, ErrNotRectangular)
		}
	}
	return nil
}

// LoadGrid reads a JSON grid from fsys. It takes an fs.FS so callers can pass
// the embedded assets or os.DirFS.
func LoadGrid(fsys fs.FS, p string) (*Source, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", p, err)
	}
	grid, err := ParseGrid(data)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", p, err)
	}
	return &Source{Name: stem(p), Grid: grid}, nil
}

// Load picks the loader from the file extension: .tmx files go through
// LoadTMX with the default tile layer, anything else is read as JSON.
func Load(fsys fs.FS, p string) (*Source, error) {
	if strings.EqualFold(path.Ext(p), ".tmx") {
		return LoadTMX(fsys, p, DefaultTileLayer)
	}
	return LoadGrid(fsys, p)
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
