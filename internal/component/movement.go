// internal/component/movement.go
package component

import "go-maze-defense/pkg/maze"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Path — компонент пути по клеткам лабиринта
type Path struct {
	Cells        []maze.Cell
	CurrentIndex int
}

// Done reports whether the final cell has been reached.
func (p *Path) Done() bool {
	return p == nil || p.CurrentIndex >= len(p.Cells)
}
