// Package leveldata loads tile grids and turns them into the static collision
// polygons of a level. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"errors"
	"image/color"

	"github.com/jakecoffman/cp"
)

// Tile codes. 6..9 are isosceles triangles and reserved; they produce no
// geometry, and neither does any other unknown code.
const (
	TileEmpty uint32 = iota
	TileSquare
	TileTriBottomLeft
	TileTriBottomRight
	TileTriTopLeft
	TileTriTopRight
)

var (
	ErrNotUTF8         = errors.New("level grid is not valid UTF-8")
	ErrMalformedGrid   = errors.New("level grid is not a JSON array of arrays of non-negative integers")
	ErrEmptyGrid       = errors.New("level grid has no rows")
	ErrEmptyRow        = errors.New("level grid has an empty row")
	ErrNotRectangular  = errors.New("level grid rows differ in length")
	ErrInvalidGridSize = errors.New("grid size must be positive")
)

// Grid is a row-major tile grid. Row 0 is the top of the level.
type Grid [][]uint32

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns of a rectangular grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the tile at column x, row y. Out of bounds reads are empty.
func (g Grid) At(x, y int) uint32 {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return TileEmpty
	}
	return g[y][x]
}

// Source is a loaded level before geometry is built. Spawns are in tile
// units with Y down, matching the grid.
type Source struct {
	Name   string
	Grid   Grid
	Spawns []cp.Vector
}

// Polygon is one closed collision ring. Points repeats its first vertex at
// the end, so edges are Points[i-1]..Points[i].
type Polygon struct {
	Points []cp.Vector
	// CollisionSide is the sign of the ring's winding sum. For a ring that
	// bounds solid ground it is the side of every edge facing open space.
	CollisionSide float64
	AABB          cp.BB
	// Hole marks a ring nested inside an odd number of other rings: it
	// bounds an empty pocket, so open space lies inside it.
	Hole  bool
	Color color.RGBA
}

// FreeSide is the edge side an agent must come from for the edge to collide.
func (p *Polygon) FreeSide() float64 {
	if p.Hole {
		return -p.CollisionSide
	}
	return p.CollisionSide
}

// Edges returns the number of edges in the ring.
func (p *Polygon) Edges() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 1
}

// Level is the immutable result of Build.
type Level struct {
	Polygons []Polygon
	// Grid is the tile grid the polygons were built from.
	Grid     Grid
	// Bounds covers the whole grid in world space.
	Bounds   cp.BB
	GridSize float64
	Rows     int
	Cols     int
}
