// Package navgrid plans routes for AI agents over a level's tile grid.
package navgrid

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/jakecoffman/cp"

	cfg "github.com/automoto/wallrun/config"
	"github.com/automoto/wallrun/shared/leveldata"
)

// searchRadius bounds the square searched for a standable cell around a
// point that is not standable itself.
const searchRadius = 10

// Grid marks where an agent can stand in a level.
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node // indexed [y][x]
	// Standable lists every standable node, row by row.
	Standable     []*Node

	level *leveldata.Level

	// Jump envelope in cells.
	riseCells  int
	reachCells int
	fallCells  int

	jumpSpeed float64
	gravity   float64
	runSpeed  float64
}

// Node is one grid cell. It implements astar.Pather.
type Node struct {
	X, Y      int
	Open      bool // an agent fits in the cell
	Standable bool // open, with ground under it
	Grid      *Grid
}

// New builds the navigation grid of a level using the current movement
// tuning for the jump envelope.
func New(level *leveldata.Level) *Grid {
	g := &Grid{
		Width:     level.Cols,
		Height:    level.Rows,
		CellSize:  level.GridSize,
		Nodes:     make([][]*Node, level.Rows),
		level:     level,
		fallCells: cfg.AI.MaxFallCells,
		jumpSpeed: cfg.Movement.JumpVelocity,
		gravity:   cfg.Movement.Gravity,
		runSpeed:  cfg.Movement.MaxSpeed,
	}
	if g.gravity > 0 {
		apex := g.jumpSpeed * g.jumpSpeed / (2 * g.gravity)
		g.riseCells = int(apex / g.CellSize)
		g.reachCells = int(g.runSpeed*2*g.jumpSpeed/g.gravity/g.CellSize) - 1
	}

	for y := 0; y < g.Height; y++ {
		g.Nodes[y] = make([]*Node, g.Width)
		for x := 0; x < g.Width; x++ {
			g.Nodes[y][x] = &Node{
				X:    x,
				Y:    y,
				Open: open(level.Grid.At(x, y)),
				Grid: g,
			}
		}
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			n := g.Nodes[y][x]
			tile := level.Grid.At(x, y)
			n.Standable = n.Open && (ramp(tile) || leveldata.HasGeometry(level.Grid.At(x, y+1)))
			if n.Standable {
				g.Standable = append(g.Standable, n)
			}
		}
	}

	return g
}

func ramp(tile uint32) bool {
	return tile == leveldata.TileTriBottomLeft || tile == leveldata.TileTriBottomRight
}

// open reports whether an agent can occupy a cell with this tile. Ramps
// leave their upper half free; ceiling triangles do not.
func open(tile uint32) bool {
	return !leveldata.HasGeometry(tile) || ramp(tile)
}

// At returns the node at column x, row y, or nil outside the grid.
func (g *Grid) At(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// Center returns the world position of a node's centre.
func (g *Grid) Center(n *Node) cp.Vector {
	return g.level.TileToWorld(cp.Vector{X: float64(n.X) + 0.5, Y: float64(n.Y) + 0.5})
}

// NodeAt returns the node containing a world position, clamped to the grid.
func (g *Grid) NodeAt(p cp.Vector) *Node {
	t := g.level.WorldToTile(p)
	x := clampInt(int(math.Floor(t.X)), 0, g.Width-1)
	y := clampInt(int(math.Floor(t.Y)), 0, g.Height-1)
	return g.Nodes[y][x]
}

// FindPath returns the world positions of the cells on a route from one
// point to another, starting cell first. Points that are not standable are
// moved to the nearest standable cell. It returns nil when no route exists.
func (g *Grid) FindPath(from, to cp.Vector) []cp.Vector {
	start := g.nearestStandable(g.NodeAt(from))
	goal := g.nearestStandable(g.NodeAt(to))
	if start == nil || goal == nil {
		return nil
	}
	if start == goal {
		return []cp.Vector{g.Center(start)}
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil
	}

	// go-astar returns the goal first.
	points := make([]cp.Vector, len(path))
	for i, p := range path {
		points[len(path)-1-i] = g.Center(p.(*Node))
	}
	return points
}

// nearestStandable searches expanding squares around n.
func (g *Grid) nearestStandable(n *Node) *Node {
	if n.Standable {
		return n
	}
	for radius := 1; radius < searchRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if c := g.At(n.X+dx, n.Y+dy); c != nil && c.Standable {
					return c
				}
			}
		}
	}
	return nil
}

// PathNeighbors returns the standable cells reachable by walking one cell
// or by a single jump or drop.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather

	for dy := -1; dy <= 1; dy++ {
		for _, dx := range [...]int{-1, 1} {
			t := n.Grid.At(n.X+dx, n.Y+dy)
			if t == nil || !t.Standable {
				continue
			}
			// A diagonal step needs the corner it cuts through to be free.
			switch dy {
			case -1:
				if c := n.Grid.At(n.X, n.Y-1); c == nil || !c.Open {
					continue
				}
			case 1:
				if c := n.Grid.At(n.X+dx, n.Y); c == nil || !c.Open {
					continue
				}
			}
			neighbors = append(neighbors, t)
		}
	}

	return append(neighbors, n.jumpTargets()...)
}

// PathNeighborCost implements astar.Pather.
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	t := to.(*Node)
	dx := float64(t.X - n.X)
	dy := float64(t.Y - n.Y)

	cost := math.Sqrt(dx*dx + dy*dy)
	if dy < 0 {
		cost *= 1.5
	}
	return cost
}

// PathEstimatedCost implements astar.Pather.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	dx := float64(t.X - n.X)
	dy := float64(t.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (n *Node) jumpTargets() []astar.Pather {
	g := n.Grid
	var targets []astar.Pather

	for dy := -g.riseCells; dy <= g.fallCells; dy++ {
		for dx := -g.reachCells; dx <= g.reachCells; dx++ {
			// Walking covers these.
			if absInt(dx) <= 1 && absInt(dy) <= 1 {
				continue
			}
			t := g.At(n.X+dx, n.Y+dy)
			if t == nil || !t.Standable {
				continue
			}
			if !g.reachable(dx, dy) || !g.clear(n, t) {
				continue
			}
			targets = append(targets, t)
		}
	}

	return targets
}

// reachable checks a jump of dx, dy cells against the jump arc: the gap
// between the cells must be coverable at full run speed before the arc falls
// back through the target's height.
func (g *Grid) reachable(dx, dy int) bool {
	if g.gravity <= 0 {
		return false
	}
	rise := -float64(dy) * g.CellSize
	disc := g.jumpSpeed*g.jumpSpeed - 2*g.gravity*rise
	if disc < 0 {
		return false
	}
	airTime := (g.jumpSpeed + math.Sqrt(disc)) / g.gravity
	gap := math.Max(0, float64(absInt(dx))-1) * g.CellSize
	return gap <= g.runSpeed*airTime
}

// clear checks the cells a jump passes through. Rising jumps go up the start
// column and then across the target row; flat jumps and drops go across the
// start row and then down the target column.
func (g *Grid) clear(from, to *Node) bool {
	turnX, turnY := from.X, to.Y
	if to.Y >= from.Y {
		turnX, turnY = to.X, from.Y
	}
	return g.openLine(from.X, from.Y, turnX, turnY) && g.openLine(turnX, turnY, to.X, to.Y)
}

// openLine reports whether every cell on an axis-aligned run is open.
func (g *Grid) openLine(x0, y0, x1, y1 int) bool {
	dx, dy := sign(x1-x0), sign(y1-y0)
	for x, y := x0, y0; ; x, y = x+dx, y+dy {
		if c := g.At(x, y); c == nil || !c.Open {
			return false
		}
		if x == x1 && y == y1 {
			return true
		}
	}
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
