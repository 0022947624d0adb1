// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// lockedPartAlpha — прозрачность частей босса, ещё не открытых для попаданий
const lockedPartAlpha = 90

// RenderSystem рисует бойцов, снаряды и эффекты поверх карты.
// Координаты мира сдвигаются на (offsetX, offsetY).
type RenderSystem struct {
	ecs              *entity.ECS
	offsetX, offsetY float32
}

func NewRenderSystem(ecs *entity.ECS, offsetX, offsetY float32) *RenderSystem {
	return &RenderSystem{ecs: ecs, offsetX: offsetX, offsetY: offsetY}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Сначала снаряды, чтобы бойцы были поверх
	s.ecs.Each(func(c *component.Combatant) {
		for _, p := range c.Projectiles {
			if p.Alive {
				s.drawProjectile(screen, p)
			}
		}
	})

	s.ecs.Each(func(c *component.Combatant) {
		if !c.Alive {
			return
		}
		s.drawCombatant(screen, c)
	})

	for _, ex := range s.ecs.Explosions {
		clr := config.ExplosionColor
		clr.A = uint8(utils.Lerp(float64(clr.A), 0, ex.Timer/ex.Duration))
		vector.DrawFilledCircle(screen, s.x(ex.X), s.y(ex.Y), float32(ex.Radius), clr, true)
	}
}

func (s *RenderSystem) drawCombatant(screen *ebiten.Image, c *component.Combatant) {
	x, y := s.x(c.X), s.y(c.Y)
	body := c.Render.Color
	if c.Flash != nil {
		body = config.FlashColor
	}

	if c.Boss != nil {
		s.drawBoss(screen, c, body)
		return
	}

	if c.Render.HasStroke {
		vector.DrawFilledCircle(screen, x, y, c.Render.Radius+2, config.IndicatorStroke, true)
	}
	vector.DrawFilledCircle(screen, x, y, c.Render.Radius, body, true)

	if t := c.Turret; t != nil {
		s.drawBarrel(screen, x, y, t.CurrentAngle, c.Render.Radius*1.4)
	} else if c.Kind == component.KindCraft {
		s.drawBarrel(screen, x, y, c.Heading, c.Render.Radius*1.2)
	}
	if c.Kind != component.KindCraft && c.Health < c.MaxHealth {
		s.drawHealthBar(screen, x, y-c.Render.Radius-6, c.Render.Radius*2, c.Health, c.MaxHealth)
	}
}

func (s *RenderSystem) drawBoss(screen *ebiten.Image, c *component.Combatant, body color.RGBA) {
	hull := c.VisualBox()
	vector.DrawFilledRect(screen, s.x(hull.MinX), s.y(hull.MinY), float32(hull.Width()), float32(hull.Height()), body, true)
	vector.StrokeRect(screen, s.x(hull.MinX), s.y(hull.MinY), float32(hull.Width()), float32(hull.Height()), 2, config.IndicatorStroke, true)

	for _, p := range c.Boss.Parts {
		box := p.Box(c.X, c.Y, 1)
		var clr color.RGBA
		switch p.Status {
		case component.PartDestroyed:
			vector.StrokeRect(screen, s.x(box.MinX), s.y(box.MinY), float32(box.Width()), float32(box.Height()), 1, config.BackgroundColor, true)
			continue
		case component.PartDamaged:
			clr = config.DamagedPartColor
		default:
			clr = config.EnemyColor
		}
		if !c.Boss.Targetable(p) {
			clr.A = lockedPartAlpha
		}
		vector.DrawFilledRect(screen, s.x(box.MinX), s.y(box.MinY), float32(box.Width()), float32(box.Height()), clr, true)
	}
	s.drawHealthBar(screen, s.x(c.X), s.y(hull.MinY)-8, float32(hull.Width()), c.Health, c.MaxHealth)
}

func (s *RenderSystem) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	clr, ok := config.ProjectileColors[string(p.Variant())]
	if !ok {
		clr = config.TextLightColor
	}
	if beam, ok := p.Behavior.(*component.Beam); ok {
		clr = config.BeamColor
		vector.StrokeLine(screen, s.x(beam.StartX), s.y(beam.StartY), s.x(beam.EndX), s.y(beam.EndY), float32(max(p.Size, 1)), clr, true)
		return
	}
	vector.DrawFilledCircle(screen, s.x(p.X), s.y(p.Y), float32(p.Size/2), clr, true)
}

func (s *RenderSystem) drawBarrel(screen *ebiten.Image, x, y float32, angle float64, length float32) {
	dx, dy := unitVector(angle)
	vector.StrokeLine(screen, x, y, x+dx*length, y+dy*length, 3, config.IndicatorStroke, true)
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, cx, top, width float32, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	frac := float32(max(health, 0)) / float32(maxHealth)
	vector.DrawFilledRect(screen, cx-width/2, top, width, 3, config.WallColor, false)
	vector.DrawFilledRect(screen, cx-width/2, top, width*frac, 3, config.ClearedColor, false)
}

func (s *RenderSystem) x(wx float64) float32 { return float32(wx) + s.offsetX }
func (s *RenderSystem) y(wy float64) float32 { return float32(wy) + s.offsetY }

func unitVector(angle float64) (float32, float32) {
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}
