// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
)

// StateIndicator — кружок в углу экрана, цвет которого показывает фазу волны.
// Клик по нему в фазе постройки досрочно начинает волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.WavePhase) {
	r := i.Radius * pulse(time.Since(i.LastClickTime).Seconds())
	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.IndicatorStroke, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(mx, my float32) bool {
	return inCircle(mx, my, i.X, i.Y, i.Radius)
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

// PhaseColor maps a wave phase to its indicator color.
func PhaseColor(phase component.WavePhase) color.RGBA {
	switch phase {
	case component.PhaseCombat:
		return config.WaveStateColor
	case component.PhaseAllCleared:
		return config.ClearedColor
	default:
		return config.BuildStateColor
	}
}
