// internal/ui/health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-maze-defense/internal/config"
)

const (
	healthBarWidth  = 160
	healthBarHeight = 12
	healthBorder    = 1
)

// HealthIndicator — подписанная полоса здоровья (корабль, реактор).
type HealthIndicator struct {
	X, Y  float32
	Label string
	Fill  color.RGBA
	face  font.Face
}

func NewHealthIndicator(x, y float32, label string, fill color.RGBA, face font.Face) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y, Label: label, Fill: fill, face: face}
}

func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, healthBorder, config.IndicatorStroke, true)
	if w := float32(healthBarWidth-2*healthBorder) * HealthRatio(health, maxHealth); w > 0 {
		vector.DrawFilledRect(screen, i.X+healthBorder, i.Y+healthBorder, w, healthBarHeight-2*healthBorder, i.Fill, true)
	}
	label := fmt.Sprintf("%s %d/%d", i.Label, max(health, 0), maxHealth)
	text.Draw(screen, label, i.face, int(i.X)+healthBarWidth+8, int(i.Y)+healthBarHeight-1, config.TextLightColor)
}

// HealthRatio is health/maxHealth clamped to [0, 1].
func HealthRatio(health, maxHealth int) float32 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return 1
	}
	return float32(health) / float32(maxHealth)
}
