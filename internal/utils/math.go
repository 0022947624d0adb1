// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// AngleDiff возвращает кратчайшую разницу to-from в диапазоне [-π, π]
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(NormalizeAngle(to) - NormalizeAngle(from))
}

// TurnToward rotates from toward to by at most maxStep radians.
func TurnToward(from, to, maxStep float64) float64 {
	diff := AngleDiff(from, to)
	if diff > maxStep {
		diff = maxStep
	} else if diff < -maxStep {
		diff = -maxStep
	}
	return NormalizeAngle(from + diff)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// DistSq — квадрат расстояния между точками
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}
