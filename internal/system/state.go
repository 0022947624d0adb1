// internal/system/state.go
package system

import (
	"log/slog"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
)

// StateSystem ведёт счёт и валюту по событиям ядра. Ядро само ничего не сохраняет.
type StateSystem struct {
	ecs    *entity.ECS
	logger *slog.Logger
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, startingCurrency int, logger *slog.Logger) *StateSystem {
	ss := &StateSystem{
		ecs:    ecs,
		logger: logger.With("system", "state"),
	}
	ss.ecs.GameState.Currency = startingCurrency
	eventDispatcher.Subscribe(ss,
		event.CombatantDestroyed,
		event.BuildStarted,
		event.WaveStarted,
		event.WaveCleared,
		event.AllWavesCleared,
	)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	gs := s.ecs.GameState
	switch e.Type {
	case event.CombatantDestroyed:
		death, ok := e.Data.(event.DeathEvent)
		if !ok {
			return
		}
		gs.Score += death.ScoreDelta
		gs.Currency += death.CurrencyDelta
		if death.Kind == component.KindEnemy || death.Kind == component.KindBoss {
			gs.Kills++
		}
		if death.Kind == component.KindReactor || death.Kind == component.KindCraft {
			gs.GameOver = true
			s.logger.Info("game over", "lost", death.Kind.String(), "score", gs.Score)
		}
	case event.BuildStarted:
		gs.Phase = component.PhaseBuild
		if w, ok := e.Data.(event.WaveEvent); ok {
			gs.Wave = w.Wave
		}
	case event.WaveStarted:
		gs.Phase = component.PhaseCombat
		if w, ok := e.Data.(event.WaveEvent); ok {
			gs.Wave = w.Wave
		}
	case event.WaveCleared:
		if w, ok := e.Data.(event.WaveEvent); ok {
			gs.Currency += w.Reward
		}
	case event.AllWavesCleared:
		gs.Phase = component.PhaseAllCleared
	}
}

// Spend deducts amount if the player can afford it.
func (s *StateSystem) Spend(amount int) bool {
	if amount < 0 || s.ecs.GameState.Currency < amount {
		return false
	}
	s.ecs.GameState.Currency -= amount
	return true
}

func (s *StateSystem) Current() component.GameState {
	return *s.ecs.GameState
}
