// internal/app/maze_management.go
package app

import (
	"fmt"

	"go-maze-defense/internal/component"
	"go-maze-defense/pkg/maze"
)

// FlipCell toggles one cell between wall and path and rebuilds everything derived
// from the grid: wall segments, the collision index and the spawn paths. Enemies keep
// the paths they already walk.
func (g *Game) FlipCell(cell maze.Cell) error {
	if !g.Grid.InBounds(cell) {
		return fmt.Errorf("%w: (%d,%d) is outside the maze", ErrCellBlocked, cell.Col, cell.Row)
	}
	if cell == g.reactorCell || g.anchored(cell) {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, cell.Col, cell.Row)
	}
	g.Grid.Flip(cell)
	g.rebuildMaze()
	g.Logger.Info("cell flipped", "col", cell.Col, "row", cell.Row, "path", g.Grid.IsPath(cell))
	return nil
}

// RegenerateMaze replaces the maze wholesale with a fresh one from the session PRNG.
// Only allowed during the build phase. The reactor, the craft and turrets are snapped
// to the nearest path cell of the new maze.
func (g *Game) RegenerateMaze() error {
	if g.WaveSystem.Phase() != component.PhaseBuild {
		return ErrNotBuildPhase
	}
	g.Grid = maze.Generate(g.Config.Arena.Rows, g.Config.Arena.Cols, g.Rng.Rand())
	g.reactorCell = g.resolveCell(g.Config.Reactor.Cell)
	for i, sp := range g.Config.Waves.SpawnPoints {
		g.spawnCells[i] = g.resolveCell(sp)
	}
	g.rebuildMaze()

	tile := g.Config.Arena.TileSize
	for _, c := range g.ECS.Combatants() {
		if !c.Alive || c.Path != nil {
			continue
		}
		cell := g.Grid.CellAt(c.X, c.Y, tile)
		if c.Handle == g.ReactorID {
			cell = g.reactorCell
		}
		if nearest, ok := g.Grid.Nearest(cell); ok {
			c.X, c.Y = maze.CellCenter(nearest, tile)
		}
	}
	g.Logger.Info("maze regenerated", "segments", len(g.Index.Segments()))
	return nil
}

func (g *Game) rebuildMaze() {
	cfg := g.Config
	g.Index = maze.NewIndex(maze.ExtractWallSegments(g.Grid, cfg.Arena.TileSize), cfg.Collision.WallThickness, cfg.Collision.MinWallThickness)
	g.CombatSystem.SetIndex(g.Index)
	g.MovementSystem.SetMaze(g.Grid, g.Index)
	g.computeSpawnPaths()
}

// anchored reports whether the craft or a stationary combatant stands on cell.
func (g *Game) anchored(cell maze.Cell) bool {
	tile := g.Config.Arena.TileSize
	for _, c := range g.ECS.Combatants() {
		if !c.Alive {
			continue
		}
		if c.Kind != component.KindCraft && c.Control != component.ControlStationary {
			continue
		}
		if g.Grid.CellAt(c.X, c.Y, tile) == cell {
			return true
		}
	}
	return false
}
