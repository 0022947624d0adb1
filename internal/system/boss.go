// internal/system/boss.go
package system

import (
	"log/slog"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/event"
)

// BossSystem ведёт части босса и его фазы. Фаза равна числу уничтоженных частей
// и никогда не зависит от времени.
type BossSystem struct {
	dispatcher *event.Dispatcher
	weapons    map[string]defs.WeaponDefinition
	logger     *slog.Logger
}

func NewBossSystem(dispatcher *event.Dispatcher, weapons map[string]defs.WeaponDefinition, logger *slog.Logger) *BossSystem {
	return &BossSystem{
		dispatcher: dispatcher,
		weapons:    weapons,
		logger:     logger.With("system", "boss"),
	}
}

// DamageComponent reduces part id of boss by amount. It returns true exactly on the
// call that first brings the part to zero health; destroyed parts ignore damage.
func (s *BossSystem) DamageComponent(boss *component.Combatant, id string, amount int) bool {
	if boss == nil || boss.Boss == nil || amount <= 0 {
		return false
	}
	part := boss.Boss.Part(id)
	if part == nil || part.Status == component.PartDestroyed {
		return false
	}

	part.Health -= amount
	boss.Flash = &component.DamageFlash{Timer: DamageFlashDuration, Duration: DamageFlashDuration}
	justDestroyed := false
	switch {
	case part.Health <= 0:
		part.Health = 0
		part.Status = component.PartDestroyed
		justDestroyed = true
	case part.Health <= part.DamagedThreshold:
		part.Status = component.PartDamaged
	}
	boss.Health = s.totalHealth(boss.Boss)

	if !justDestroyed {
		return false
	}
	s.dispatch(event.BossPartDestroyed, event.BossPartEvent{
		Boss:   boss.Handle,
		PartID: part.ID,
		X:      boss.X + part.OffsetX,
		Y:      boss.Y + part.OffsetY,
	})
	s.updatePhase(boss)
	if boss.Boss.AllDestroyed() && boss.Alive {
		kill(s.dispatcher, boss)
	}
	return true
}

func (s *BossSystem) updatePhase(boss *component.Combatant) {
	phase := boss.Boss.DestroyedCount()
	if phase == boss.Boss.Phase {
		return
	}
	boss.Boss.Phase = phase

	weaponID := boss.Boss.PhaseWeapon()
	if def, ok := s.weapons[weaponID]; ok {
		boss.Weapon = &component.Weapon{Def: def}
	} else if weaponID != "" {
		s.logger.Warn("unknown phase weapon", "weapon", weaponID, "phase", phase)
	}
	s.logger.Debug("phase changed", "boss", boss.Handle, "phase", phase, "weapon", weaponID)
	s.dispatch(event.BossPhaseChanged, event.BossPhaseEvent{Boss: boss.Handle, Phase: phase, Weapon: weaponID})
}

func (s *BossSystem) totalHealth(b *component.Boss) int {
	total := 0
	for _, p := range b.Parts {
		total += p.Health
	}
	return total
}

func (s *BossSystem) dispatch(t event.EventType, data interface{}) {
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
