// internal/system/movement.go
package system

import (
	"math"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/entity"
	"go-maze-defense/pkg/maze"
)

// MovementSystem ведёт врагов по их путям и двигает корабль игрока по лабиринту.
type MovementSystem struct {
	ecs         *entity.ECS
	grid        *maze.Grid
	index       *maze.Index
	tile        float64
	hitboxScale float64
}

func NewMovementSystem(ecs *entity.ECS, grid *maze.Grid, index *maze.Index, cfg config.Config) *MovementSystem {
	return &MovementSystem{
		ecs:         ecs,
		grid:        grid,
		index:       index,
		tile:        cfg.Arena.TileSize,
		hitboxScale: cfg.Collision.HitboxScale,
	}
}

// SetMaze swaps the maze after regeneration or a flip.
func (s *MovementSystem) SetMaze(grid *maze.Grid, index *maze.Index) {
	s.grid = grid
	s.index = index
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.ecs.Each(func(c *component.Combatant) {
		if !c.Alive || c.Path.Done() {
			return
		}
		if c.Control != component.ControlPathFollow && c.Control != component.ControlBoss {
			return
		}
		s.follow(c, c.Speed*deltaTime)
	})
}

func (s *MovementSystem) follow(c *component.Combatant, moveDistance float64) {
	for moveDistance > 0 && !c.Path.Done() {
		tx, ty := maze.CellCenter(c.Path.Cells[c.Path.CurrentIndex], s.tile)
		dx, dy := tx-c.X, ty-c.Y
		dist := math.Hypot(dx, dy)
		if dist <= moveDistance {
			c.X, c.Y = tx, ty
			c.Path.CurrentIndex++
			moveDistance -= dist
			continue
		}
		c.X += dx / dist * moveDistance
		c.Y += dy / dist * moveDistance
		c.Heading = math.Atan2(dy, dx)
		return
	}
}

// MovePlayer moves c by the input direction (dx, dy) for deltaTime seconds. Each axis
// is tried separately so the craft slides along walls instead of sticking.
func (s *MovementSystem) MovePlayer(c *component.Combatant, dx, dy, deltaTime float64) {
	if c == nil || !c.Alive {
		return
	}
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	step := c.Speed * deltaTime / length
	c.Heading = math.Atan2(dy, dx)
	if nx := c.X + dx*step; s.CanOccupy(c, nx, c.Y) {
		c.X = nx
	}
	if ny := c.Y + dy*step; s.CanOccupy(c, c.X, ny) {
		c.Y = ny
	}
}

// CanOccupy reports whether c's hit-box fits at (x, y): inside path cells and clear of
// every wall segment.
func (s *MovementSystem) CanOccupy(c *component.Combatant, x, y float64) bool {
	w, h := c.Width*s.hitboxScale, c.Height*s.hitboxScale
	if !s.grid.BoxOnPath(x, y, w, h, s.tile) {
		return false
	}
	if s.index == nil {
		return true
	}
	_, blocked := s.index.IsBlocked(x, y, w, h)
	return !blocked
}
