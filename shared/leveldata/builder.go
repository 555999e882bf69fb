package leveldata

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/wallrun/shared/gamemath"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// holeProbe is how far along a ring's first edge the nesting probe sits. It is
// irrational so the probe ray never passes through a grid vertex.
const holeProbe = 0.3819660112501051

// ParityRay is the ray cast from a point for inside/outside tests.
var ParityRay = cp.Vector{X: 2, Y: 1}.Mult(10000)

// solidNudge moves InsideSolid's query off the lattice the ParityRay would
// otherwise hit exactly from grid-aligned points.
var solidNudge = cp.Vector{X: 1e-4 * holeProbe, Y: 1e-4 * (1 - holeProbe) / 3}

var palette = []color.RGBA{
	colornames.Steelblue,
	colornames.Seagreen,
	colornames.Indianred,
	colornames.Goldenrod,
	colornames.Slateblue,
	colornames.Darkcyan,
	colornames.Sienna,
	colornames.Olivedrab,
	colornames.Palevioletred,
	colornames.Cadetblue,
}

// vertex is a grid corner in tile units, Y down.
type vertex struct{ x, y int }

type edge struct{ a, b vertex }

func (e edge) other(v vertex) vertex {
	if e.a == v {
		return e.b
	}
	return e.a
}

func (e edge) dir() vertex { return vertex{e.b.x - e.a.x, e.b.y - e.a.y} }

type side uint8

const (
	sideLeft side = 1 << iota
	sideRight
	sideTop
	sideBottom
)

// fullSides returns which cell sides a tile covers completely.
func fullSides(tile uint32) side {
	switch tile {
	case TileSquare:
		return sideLeft | sideRight | sideTop | sideBottom
	case TileTriBottomLeft:
		return sideBottom | sideLeft
	case TileTriBottomRight:
		return sideBottom | sideRight
	case TileTriTopLeft:
		return sideTop | sideLeft
	case TileTriTopRight:
		return sideTop | sideRight
	}
	return 0
}

// HasGeometry reports whether a tile produces collision edges.
func HasGeometry(tile uint32) bool {
	return fullSides(tile) != 0
}

// Build turns a tile grid into the level's collision polygons.
func Build(grid Grid, gridSize float64) (*Level, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if !(gridSize > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGridSize, gridSize)
	}

	edges := emitEdges(grid)
	edges = mergeCollinear(edges)
	rings := assemble(edges)

	rows, cols := grid.Rows(), grid.Cols()
	offset := cp.Vector{X: -float64(cols) * gridSize / 2, Y: float64(rows) * gridSize / 2}

	lvl := &Level{
		Grid:     grid,
		Bounds:   cp.BB{L: offset.X, B: -offset.Y, R: -offset.X, T: offset.Y},
		GridSize: gridSize,
		Rows:     rows,
		Cols:     cols,
	}
	for _, ring := range rings {
		points := make([]cp.Vector, len(ring))
		for i, v := range ring {
			points[i] = cp.Vector{
				X: float64(v.x)*gridSize + offset.X,
				Y: -float64(v.y)*gridSize + offset.Y,
			}
		}
		lvl.Polygons = append(lvl.Polygons, NewPolygon(points))
	}
	markHoles(lvl.Polygons)
	for i := range lvl.Polygons {
		lvl.Polygons[i].Color = palette[i%len(palette)]
	}

	return lvl, nil
}

// NewPolygon builds a polygon from a vertex ring, closing it if the last
// vertex does not repeat the first.
func NewPolygon(points []cp.Vector) Polygon {
	if n := len(points); n > 0 && points[0] != points[n-1] {
		points = append(points[:n:n], points[0])
	}
	return Polygon{
		Points:        points,
		CollisionSide: gamemath.Sign(gamemath.WindingSum(points)),
		AABB:          gamemath.BoundsOf(points),
	}
}

// emitEdges emits every cell side that borders a cell not covering it, plus
// each triangle's hypotenuse. A side facing a reserved tile or a triangle's
// open side is emitted too, not only sides facing empty cells.
func emitEdges(grid Grid) []edge {
	var edges []edge
	for y := range grid {
		for x := range grid[y] {
			tile := grid[y][x]
			full := fullSides(tile)
			if full == 0 {
				continue
			}

			tl, tr := vertex{x, y}, vertex{x + 1, y}
			bl, br := vertex{x, y + 1}, vertex{x + 1, y + 1}

			if full&sideTop != 0 && fullSides(grid.At(x, y-1))&sideBottom == 0 {
				edges = append(edges, edge{tl, tr})
			}
			if full&sideRight != 0 && fullSides(grid.At(x+1, y))&sideLeft == 0 {
				edges = append(edges, edge{tr, br})
			}
			if full&sideBottom != 0 && fullSides(grid.At(x, y+1))&sideTop == 0 {
				edges = append(edges, edge{br, bl})
			}
			if full&sideLeft != 0 && fullSides(grid.At(x-1, y))&sideRight == 0 {
				edges = append(edges, edge{bl, tl})
			}

			switch tile {
			case TileTriBottomLeft, TileTriTopRight:
				edges = append(edges, edge{tl, br})
			case TileTriBottomRight, TileTriTopLeft:
				edges = append(edges, edge{tr, bl})
			}
		}
	}
	return edges
}

func incidence(edges []edge) map[vertex][]int {
	inc := make(map[vertex][]int, len(edges)*2)
	for i, e := range edges {
		inc[e.a] = append(inc[e.a], i)
		inc[e.b] = append(inc[e.b], i)
	}
	return inc
}

// mergeCollinear collapses pairs of parallel edges that meet at a vertex only
// they touch, until no such pair remains.
func mergeCollinear(edges []edge) []edge {
	for {
		i, j, shared, ok := findCollinear(edges)
		if !ok {
			return edges
		}
		merged := edge{edges[i].other(shared), edges[j].other(shared)}

		out := make([]edge, 0, len(edges)-1)
		for k, e := range edges {
			if k != i && k != j {
				out = append(out, e)
			}
		}
		edges = append(out, merged)
	}
}

func findCollinear(edges []edge) (int, int, vertex, bool) {
	inc := incidence(edges)
	for i, e := range edges {
		for _, v := range [2]vertex{e.a, e.b} {
			touching := inc[v]
			if len(touching) != 2 {
				continue
			}
			j := touching[0]
			if j == i {
				j = touching[1]
			}
			o := edges[j]
			farI, farJ := e.other(v), o.other(v)
			if farI == farJ {
				continue
			}
			d1, d2 := e.dir(), o.dir()
			if d1.x*d2.y-d1.y*d2.x != 0 {
				continue
			}
			// Both far ends must lie on opposite sides of v.
			if (farI.x-v.x)*(farJ.x-v.x)+(farI.y-v.y)*(farJ.y-v.y) >= 0 {
				continue
			}
			return i, j, v, true
		}
	}
	return 0, 0, vertex{}, false
}

// assemble chains edges into closed rings. A walk that comes back to one of
// its own vertices splits that loop off as a separate ring.
func assemble(edges []edge) [][]vertex {
	inc := incidence(edges)
	used := make([]bool, len(edges))

	next := func(v vertex) (int, bool) {
		for _, k := range inc[v] {
			if !used[k] {
				return k, true
			}
		}
		return 0, false
	}

	var rings [][]vertex
	emit := func(ring []vertex) {
		if len(ring)-1 < 3 {
			log.Printf("leveldata: dropping degenerate ring with %d vertices", len(ring)-1)
			return
		}
		rings = append(rings, ring)
	}

	for start := range edges {
		if used[start] {
			continue
		}
		used[start] = true
		path := []vertex{edges[start].a, edges[start].b}
		seen := map[vertex]int{path[0]: 0, path[1]: 1}

		for {
			cur := path[len(path)-1]
			k, ok := next(cur)
			if !ok {
				log.Printf("leveldata: dropping open chain of %d edges starting at %v", len(path)-1, path[0])
				break
			}
			used[k] = true
			far := edges[k].other(cur)

			if far == path[0] {
				emit(append(path, far))
				break
			}
			if at, ok := seen[far]; ok {
				loop := append(append([]vertex(nil), path[at:]...), far)
				log.Printf("leveldata: splitting ring at pinch vertex %v", far)
				emit(loop)
				for _, v := range path[at+1:] {
					delete(seen, v)
				}
				path = path[:at+1]
				continue
			}
			seen[far] = len(path)
			path = append(path, far)
		}
	}
	return rings
}

// markHoles flags rings nested inside an odd number of other rings.
func markHoles(polys []Polygon) {
	for i := range polys {
		a, b := polys[i].Points[0], polys[i].Points[1]
		probe := a.Add(b.Sub(a).Mult(holeProbe))
		depth := 0
		for j := range polys {
			if j == i || !gamemath.ContainsPoint(polys[j].AABB, probe) {
				continue
			}
			if gamemath.PointInRing(probe, polys[j].Points, ParityRay) {
				depth++
			}
		}
		polys[i].Hole = depth%2 == 1
	}
}

// InsideSolid reports whether p lies inside solid ground: inside an odd
// number of rings. The ray starts a hair away from p so it never runs
// through a ring vertex.
func (l *Level) InsideSolid(p cp.Vector) bool {
	p = p.Add(solidNudge)
	depth := 0
	for i := range l.Polygons {
		if gamemath.PointInRing(p, l.Polygons[i].Points, ParityRay) {
			depth++
		}
	}
	return depth%2 == 1
}

// WorldToTile is the inverse of TileToWorld.
func (l *Level) WorldToTile(p cp.Vector) cp.Vector {
	return cp.Vector{
		X: (p.X + float64(l.Cols)*l.GridSize/2) / l.GridSize,
		Y: (float64(l.Rows)*l.GridSize/2 - p.Y) / l.GridSize,
	}
}

// TileToWorld converts a point in tile units (Y down, origin at the grid's
// top left corner) to world space.
func (l *Level) TileToWorld(p cp.Vector) cp.Vector {
	return cp.Vector{
		X: p.X*l.GridSize - float64(l.Cols)*l.GridSize/2,
		Y: -p.Y*l.GridSize + float64(l.Rows)*l.GridSize/2,
	}
}
