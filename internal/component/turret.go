// internal/component/turret.go
package component

import "go-maze-defense/internal/types"

// TurretComponent отвечает за вращение "головы" турели.
type TurretComponent struct {
	// CurrentAngle - текущий угол поворота в радианах.
	CurrentAngle float64
	// TargetAngle - угол, к которому стремится турель.
	TargetAngle float64
	// TurnSpeed - скорость поворота в радианах в секунду.
	TurnSpeed float64
	// Target - цель, на которую наведена турель.
	Target types.Handle
}
