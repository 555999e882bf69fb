package leveldata

import (
	"testing"

	"github.com/automoto/wallrun/shared/gamemath"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, grid Grid) *Level {
	t.Helper()
	lvl, err := Build(grid, 32)
	require.NoError(t, err)
	return lvl
}

func distinct(p Polygon) int {
	return len(p.Points) - 1
}

func TestBuildOneCellFloor(t *testing.T) {
	lvl := build(t, Grid{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})

	require.Len(t, lvl.Polygons, 1)
	poly := lvl.Polygons[0]
	assert.Equal(t, 4, distinct(poly))
	assert.Equal(t, poly.Points[0], poly.Points[len(poly.Points)-1])
	assert.NotZero(t, poly.CollisionSide)
	assert.False(t, poly.Hole)
	assert.Equal(t, cp.BB{L: -16, B: -16, R: 16, T: 16}, poly.AABB)
	assert.Equal(t, cp.BB{L: -48, B: -48, R: 48, T: 48}, lvl.Bounds)
}

func TestBuildCollinearCollapse(t *testing.T) {
	lvl := build(t, Grid{{1, 1, 1}})

	require.Len(t, lvl.Polygons, 1)
	poly := lvl.Polygons[0]
	assert.Equal(t, 4, distinct(poly))
	assert.Equal(t, cp.BB{L: -48, B: -16, R: 48, T: 16}, poly.AABB)
}

func TestBuildRamp(t *testing.T) {
	lvl := build(t, Grid{
		{0, TileTriBottomRight},
		{1, 1},
	})

	require.Len(t, lvl.Polygons, 1)
	poly := lvl.Polygons[0]
	assert.Equal(t, 5, distinct(poly))
	assert.Contains(t, poly.Points, cp.Vector{X: 32, Y: 32})
	assert.Contains(t, poly.Points, cp.Vector{X: 0, Y: 0})
	assert.Contains(t, poly.Points, cp.Vector{X: -32, Y: 0})
	assert.NotContains(t, poly.Points, cp.Vector{X: 32, Y: 0})
}

func TestBuildTriangles(t *testing.T) {
	for _, tile := range []uint32{TileTriBottomLeft, TileTriBottomRight, TileTriTopLeft, TileTriTopRight} {
		lvl := build(t, Grid{{tile}})
		require.Len(t, lvl.Polygons, 1, "tile %d", tile)
		assert.Equal(t, 3, distinct(lvl.Polygons[0]), "tile %d", tile)
	}
}

func TestBuildReservedTilesHaveNoGeometry(t *testing.T) {
	lvl := build(t, Grid{{6, 7, 8, 9, 42}})
	assert.Empty(t, lvl.Polygons)

	// A square next to a reserved tile still closes.
	lvl = build(t, Grid{{1, 7}})
	require.Len(t, lvl.Polygons, 1)
	assert.Equal(t, 4, distinct(lvl.Polygons[0]))
}

func TestBuildPinchSplitsRings(t *testing.T) {
	lvl := build(t, Grid{{1, 0}, {0, 1}})

	require.Len(t, lvl.Polygons, 2)
	for _, poly := range lvl.Polygons {
		assert.Equal(t, 4, distinct(poly))
		assert.False(t, poly.Hole)
	}
}

func TestBuildEnclosedRoom(t *testing.T) {
	lvl := build(t, Grid{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}})

	require.Len(t, lvl.Polygons, 2)
	var holes int
	for _, poly := range lvl.Polygons {
		assert.Equal(t, 4, distinct(poly))
		if poly.Hole {
			holes++
			assert.Equal(t, cp.BB{L: -16, B: -16, R: 16, T: 16}, poly.AABB)
			assert.Equal(t, -poly.CollisionSide, poly.FreeSide())
		}
	}
	assert.Equal(t, 1, holes)

	assert.False(t, lvl.InsideSolid(cp.Vector{X: 0, Y: 0}))
	assert.True(t, lvl.InsideSolid(cp.Vector{X: -40, Y: 0}))
	assert.False(t, lvl.InsideSolid(cp.Vector{X: -60, Y: 0}))
}

func TestInsideSolidRayThroughCorner(t *testing.T) {
	// An L whose inner corner sits at the origin, with the empty cell above
	// and to the right of it.
	lvl := build(t, Grid{
		{1, 0},
		{1, 1},
	})

	// The ray from here runs exactly through the inner corner, leaving the
	// solid there.
	p := cp.Vector{X: -40, Y: -20}
	require.Zero(t, gamemath.Cross(ParityRay, cp.Vector{}.Sub(p)))
	assert.False(t, lvl.InsideSolid(p))

	assert.True(t, lvl.InsideSolid(cp.Vector{X: -16, Y: -16}))
	assert.False(t, lvl.InsideSolid(cp.Vector{X: 16, Y: 16}))
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(Grid{}, 32)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = Build(Grid{{1}}, 0)
	assert.ErrorIs(t, err, ErrInvalidGridSize)

	_, err = Build(Grid{{1, 1}, {1}}, 32)
	assert.ErrorIs(t, err, ErrNotRectangular)
}

func TestTileToWorld(t *testing.T) {
	lvl := build(t, Grid{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})
	assert.Equal(t, cp.Vector{X: -48, Y: 48}, lvl.TileToWorld(cp.Vector{}))
	assert.Equal(t, cp.Vector{X: 0, Y: 0}, lvl.TileToWorld(cp.Vector{X: 1.5, Y: 1.5}))
	assert.Equal(t, cp.Vector{X: 2.25, Y: 0.5}, lvl.WorldToTile(lvl.TileToWorld(cp.Vector{X: 2.25, Y: 0.5})))
	assert.Equal(t, Grid{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, lvl.Grid)
}

func TestHasGeometry(t *testing.T) {
	for tile := uint32(0); tile < 10; tile++ {
		assert.Equal(t, tile >= TileSquare && tile <= TileTriTopRight, HasGeometry(tile), "tile %d", tile)
	}
}

var mixedGrid = Grid{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 0, 0, 5, 1, 4, 0},
	{0, 1, 0, 1, 0, 0, 0, 1, 0, 0},
	{0, 1, 1, 1, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 2, 1, 1, 1, 3, 0, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

func TestBuildWindingMatchesCollisionSide(t *testing.T) {
	lvl := build(t, mixedGrid)
	require.NotEmpty(t, lvl.Polygons)

	for i, poly := range lvl.Polygons {
		assert.NotZero(t, poly.CollisionSide, "polygon %d", i)
		assert.Equal(t, gamemath.Sign(gamemath.WindingSum(poly.Points)), poly.CollisionSide, "polygon %d", i)
		assert.Equal(t, gamemath.BoundsOf(poly.Points), poly.AABB, "polygon %d", i)
	}
}

func TestBuildLeavesNoCollinearPairs(t *testing.T) {
	lvl := build(t, mixedGrid)

	type seg struct{ a, b cp.Vector }
	var segs []seg
	degree := map[cp.Vector]int{}
	for _, poly := range lvl.Polygons {
		for i := 1; i < len(poly.Points); i++ {
			s := seg{poly.Points[i-1], poly.Points[i]}
			segs = append(segs, s)
			degree[s.a]++
			degree[s.b]++
		}
	}

	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			var shared []cp.Vector
			for _, p := range []cp.Vector{a.a, a.b} {
				if p == b.a || p == b.b {
					shared = append(shared, p)
				}
			}
			if len(shared) != 1 || degree[shared[0]] > 2 {
				continue
			}
			assert.False(t, gamemath.NearlyParallel(a.b.Sub(a.a), b.b.Sub(b.a)),
				"edges %v and %v are collinear at %v", a, b, shared[0])
		}
	}
}

func TestBuildRayParity(t *testing.T) {
	lvl := build(t, mixedGrid)

	// Cell centres of solid squares are inside solid, empty cells are not.
	for y, row := range mixedGrid {
		for x, tile := range row {
			p := lvl.TileToWorld(cp.Vector{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			switch tile {
			case TileSquare:
				assert.True(t, lvl.InsideSolid(p), "cell %d,%d", x, y)
			case TileEmpty:
				assert.False(t, lvl.InsideSolid(p), "cell %d,%d", x, y)
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := build(t, mixedGrid)
	b := build(t, mixedGrid)
	assert.Equal(t, a, b)
}
