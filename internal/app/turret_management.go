// internal/app/turret_management.go
package app

import (
	"fmt"
	"math"
	"slices"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/types"
	"go-maze-defense/pkg/maze"
)

// turretTurnSpeed — скорость поворота ствола, радианы в секунду
const turretTurnSpeed = math.Pi

// PlaceTurret buys a turret and puts it on cell during the build phase.
func (g *Game) PlaceTurret(cell maze.Cell) (types.Handle, error) {
	if err := g.canPlaceTurret(cell); err != nil {
		return types.NilHandle, err
	}
	tc := g.Config.Turret
	def, ok := g.Library.Weapons[tc.Weapon]
	if !ok {
		return types.NilHandle, fmt.Errorf("turret: %w: %s", defs.ErrUnknownWeapon, tc.Weapon)
	}
	if !g.StateSystem.Spend(tc.Cost) {
		return types.NilHandle, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, tc.Cost, g.ECS.GameState.Currency)
	}

	h := g.createTurretEntity(cell, def)
	g.Logger.Info("turret placed", "col", cell.Col, "row", cell.Row, "cost", tc.Cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TurretPlaced, Data: event.TurretEvent{
		Handle: h,
		Col:    cell.Col,
		Row:    cell.Row,
		Cost:   tc.Cost,
	}})
	return h, nil
}

// PlaceTurretAt places a turret on the cell under world position (x, y).
func (g *Game) PlaceTurretAt(x, y float64) (types.Handle, error) {
	return g.PlaceTurret(g.Grid.CellAt(x, y, g.Config.Arena.TileSize))
}

func (g *Game) canPlaceTurret(cell maze.Cell) error {
	if g.WaveSystem.Phase() != component.PhaseBuild {
		return ErrNotBuildPhase
	}
	if !g.Grid.IsPath(cell) {
		return fmt.Errorf("%w: (%d,%d)", ErrCellBlocked, cell.Col, cell.Row)
	}
	if g.occupied(cell) {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, cell.Col, cell.Row)
	}
	if g.onRoute(cell) {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOnRoute, cell.Col, cell.Row)
	}
	return nil
}

// onRoute reports whether cell is on any spawn point's path to the reactor.
// Turrets go on side passages and never on the cells enemies walk.
func (g *Game) onRoute(cell maze.Cell) bool {
	for _, path := range g.spawnPaths {
		if slices.Contains(path, cell) {
			return true
		}
	}
	return false
}

// occupied reports whether a stationary combatant already stands on cell.
func (g *Game) occupied(cell maze.Cell) bool {
	tile := g.Config.Arena.TileSize
	for _, c := range g.ECS.Combatants() {
		if !c.Alive || c.Control != component.ControlStationary {
			continue
		}
		if g.Grid.CellAt(c.X, c.Y, tile) == cell {
			return true
		}
	}
	return false
}

func (g *Game) createTurretEntity(cell maze.Cell, def defs.WeaponDefinition) types.Handle {
	tc := g.Config.Turret
	x, y := maze.CellCenter(cell, g.Config.Arena.TileSize)
	return g.ECS.Add(&component.Combatant{
		Kind:      component.KindTurret,
		Faction:   component.FactionTurret,
		Control:   component.ControlStationary,
		DefID:     "TURRET",
		Position:  component.Position{X: x, Y: y},
		Width:     tc.Size,
		Height:    tc.Size,
		Health:    tc.Health,
		MaxHealth: tc.Health,
		Alive:     true,
		Weapon:    &component.Weapon{Def: def},
		Turret:    &component.TurretComponent{TurnSpeed: turretTurnSpeed},
		Render:    component.Renderable{Color: config.TurretColor, Radius: float32(tc.Size / 2), HasStroke: true},
	})
}
