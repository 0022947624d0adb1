// internal/system/visual_effect.go
package system

import (
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
)

const (
	explosionDuration = 0.4
	partExplosionSize = 24.0
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона и взрывы.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	dispatcher.Subscribe(s, event.CombatantDestroyed, event.BossPartDestroyed)
	return s
}

// OnEvent превращает запросы на взрыв в эффекты.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.DeathEvent:
		s.addExplosion(data.X, data.Y, data.Size)
	case event.BossPartEvent:
		s.addExplosion(data.X, data.Y, partExplosionSize)
	}
}

func (s *VisualEffectSystem) addExplosion(x, y, size float64) {
	s.ecs.Explosions = append(s.ecs.Explosions, &component.Explosion{
		X:         x,
		Y:         y,
		MaxRadius: size,
		Duration:  explosionDuration,
	})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	s.ecs.Each(func(c *component.Combatant) {
		if c.Flash == nil {
			return
		}
		c.Flash.Timer -= deltaTime
		if c.Flash.Timer <= 0 {
			c.Flash = nil
		}
	})

	live := s.ecs.Explosions[:0]
	for _, ex := range s.ecs.Explosions {
		ex.Timer += deltaTime
		if ex.Timer >= ex.Duration {
			continue
		}
		ex.Radius = ex.Timer / ex.Duration * ex.MaxRadius
		live = append(live, ex)
	}
	for i := len(live); i < len(s.ecs.Explosions); i++ {
		s.ecs.Explosions[i] = nil
	}
	s.ecs.Explosions = live
}
