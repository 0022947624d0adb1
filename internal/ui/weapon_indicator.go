// internal/ui/weapon_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
)

const (
	slotWidth  = 72
	slotHeight = 28
	slotGap    = 8
)

// WeaponIndicator рисует слоты арсенала игрока: выбранный обведён,
// перезарядка показана заполнением снизу вверх.
type WeaponIndicator struct {
	X, Y float32
	face font.Face
}

func NewWeaponIndicator(x, y float32, face font.Face) *WeaponIndicator {
	return &WeaponIndicator{X: x, Y: y, face: face}
}

func (i *WeaponIndicator) Draw(screen *ebiten.Image, arsenal []*component.Weapon, selected *component.Weapon) {
	for j, w := range arsenal {
		x := i.X + float32(j)*(slotWidth+slotGap)
		clr, ok := config.ProjectileColors[string(w.Def.Variant)]
		if !ok {
			clr = config.TextLightColor
		}
		dim := clr
		dim.A = 70
		vector.DrawFilledRect(screen, x, i.Y, slotWidth, slotHeight, dim, true)

		if ready := CooldownRatio(w); ready < 1 {
			h := slotHeight * (1 - ready)
			vector.DrawFilledRect(screen, x, i.Y+slotHeight-h, slotWidth, h, config.BackgroundColor, true)
		}
		stroke := float32(1)
		if w == selected {
			stroke = 3
		}
		vector.StrokeRect(screen, x, i.Y, slotWidth, slotHeight, stroke, clr, true)

		label := strconv.Itoa(j+1) + " " + w.Def.Name
		text.Draw(screen, label, i.face, int(x)+4, int(i.Y)+slotHeight/2+4, config.TextLightColor)
	}
}

// CooldownRatio is 1 when w can fire and falls towards 0 right after a shot.
func CooldownRatio(w *component.Weapon) float32 {
	if w == nil || w.Cooldown <= 0 || w.Def.Cooldown <= 0 {
		return 1
	}
	r := 1 - w.Cooldown/w.Def.Cooldown
	if r < 0 {
		return 0
	}
	return float32(r)
}
