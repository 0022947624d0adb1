// pkg/maze/map.go
package maze

import (
	"math/rand"
	"strings"

	"go-maze-defense/pkg/utils"
)

// CellType — тип клетки лабиринта
type CellType uint8

const (
	Wall CellType = iota
	Path
)

// Cell addresses a grid cell by column and row.
type Cell struct {
	Col, Row int
}

// Grid is a rectangular wall/path grid. Cells[row][col].
type Grid struct {
	Rows, Cols int
	Cells      [][]CellType
}

// Origin — стартовая клетка генерации, из неё достижима любая клетка PATH
var Origin = Cell{Col: 0, Row: 0}

var directions = [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// NewGrid returns a grid filled with walls.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]CellType, rows)
	for r := range cells {
		cells[r] = make([]CellType, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}
}

// Generate carves a maze with randomized recursive backtracking from (0,0).
// Dimensions of 1 or less in either axis collapse to a single walkable cell.
func Generate(rows, cols int, rng *rand.Rand) *Grid {
	if rows <= 1 || cols <= 1 {
		g := NewGrid(1, 1)
		g.Cells[0][0] = Path
		return g
	}

	g := NewGrid(rows, cols)
	g.Cells[Origin.Row][Origin.Col] = Path

	// Явный стек вместо рекурсии: каждый кадр хранит свой перемешанный порядок направлений
	type frame struct {
		cell Cell
		dirs [4]Cell
		next int
	}
	shuffled := func() [4]Cell {
		d := directions
		rng.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
		return d
	}

	stack := []frame{{cell: Origin, dirs: shuffled()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		target := Cell{Col: top.cell.Col + 2*d.Col, Row: top.cell.Row + 2*d.Row}
		if !g.InBounds(target) || g.Cells[target.Row][target.Col] == Path {
			continue
		}
		connector := Cell{Col: top.cell.Col + d.Col, Row: top.cell.Row + d.Row}
		g.Cells[connector.Row][connector.Col] = Path
		g.Cells[target.Row][target.Col] = Path
		stack = append(stack, frame{cell: target, dirs: shuffled()})
	}
	return g
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// IsPath reports whether c is an in-bounds walkable cell.
func (g *Grid) IsPath(c Cell) bool {
	return g.InBounds(c) && g.Cells[c.Row][c.Col] == Path
}

// Flip toggles a single cell. Used by puzzle triggers; callers must rebuild wall segments.
func (g *Grid) Flip(c Cell) {
	if !g.InBounds(c) {
		return
	}
	if g.Cells[c.Row][c.Col] == Path {
		g.Cells[c.Row][c.Col] = Wall
	} else {
		g.Cells[c.Row][c.Col] = Path
	}
}

// Neighbors returns the in-bounds walkable cardinal neighbours of c.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range directions {
		n := Cell{Col: c.Col + d.Col, Row: c.Row + d.Row}
		if g.IsPath(n) {
			out = append(out, n)
		}
	}
	return out
}

// PathCells lists every walkable cell in row-major order.
func (g *Grid) PathCells() []Cell {
	var cells []Cell
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c] == Path {
				cells = append(cells, Cell{Col: c, Row: r})
			}
		}
	}
	return cells
}

// Reachable returns the set of walkable cells connected to from (BFS).
func (g *Grid) Reachable(from Cell) map[Cell]bool {
	visited := make(map[Cell]bool)
	if !g.IsPath(from) {
		return visited
	}
	visited[from] = true
	queue := []Cell{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(curr) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Nearest returns the walkable cell closest to c by grid distance, searching outward ring by ring.
func (g *Grid) Nearest(c Cell) (Cell, bool) {
	if g.IsPath(c) {
		return c, true
	}
	limit := g.Rows + g.Cols
	for radius := 1; radius <= limit; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			dc := radius - utils.Abs(dr)
			for _, cand := range []Cell{{c.Col + dc, c.Row + dr}, {c.Col - dc, c.Row + dr}} {
				if g.IsPath(cand) {
					return cand, true
				}
			}
		}
	}
	return Cell{}, false
}

// CellAt converts a world position into the cell under it.
func (g *Grid) CellAt(x, y, tile float64) Cell {
	if tile <= 0 {
		return Cell{}
	}
	col := int(x / tile)
	row := int(y / tile)
	if x < 0 {
		col = -1
	}
	if y < 0 {
		row = -1
	}
	return Cell{Col: col, Row: row}
}

// CellCenter returns the world-space centre of c.
func CellCenter(c Cell, tile float64) (float64, float64) {
	return (float64(c.Col) + 0.5) * tile, (float64(c.Row) + 0.5) * tile
}

// BoxOnPath reports whether every corner of the axis-aligned box centred at (cx, cy)
// sits on a walkable cell.
func (g *Grid) BoxOnPath(cx, cy, w, h, tile float64) bool {
	hw, hh := w/2, h/2
	corners := [4][2]float64{
		{cx - hw, cy - hh}, {cx + hw, cy - hh},
		{cx - hw, cy + hh}, {cx + hw, cy + hh},
	}
	for _, p := range corners {
		if !g.IsPath(g.CellAt(p[0], p[1], tile)) {
			return false
		}
	}
	return true
}

// String renders the grid one row per line: '#' for walls, '.' for path cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for _, row := range g.Cells {
		for _, c := range row {
			if c == Path {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
