// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект ещё активен
	Duration float64 // Общая продолжительность эффекта
}

// Explosion is a purely visual effect requested by a death event.
type Explosion struct {
	X, Y      float64
	MaxRadius float64
	Radius    float64
	Timer     float64
	Duration  float64
}
