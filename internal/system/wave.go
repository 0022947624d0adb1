// internal/system/wave.go
package system

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/interfaces"
	"go-maze-defense/internal/types"
)

// WaveSystem — оркестратор волн: IDLE → BUILD → COMBAT → BUILD … → ALL_CLEARED.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	game            interfaces.GameContext
	library         *defs.Library
	cfg             config.WaveConfig
	logger          *slog.Logger

	phase     component.WavePhase
	wave      int
	buildLeft time.Duration

	// Курсор по группам текущей волны
	group        int
	groupElapsed time.Duration
	spawned      int
	handles      []types.Handle
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, game interfaces.GameContext, library *defs.Library, cfg config.WaveConfig, logger *slog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		game:            game,
		library:         library,
		cfg:             cfg,
		logger:          logger.With("system", "wave"),
		phase:           component.PhaseIdle,
	}
}

// Start validates the wave definitions and enters the first build phase.
// Malformed definitions fail here rather than being skipped later.
func (s *WaveSystem) Start() error {
	if s.phase != component.PhaseIdle {
		return fmt.Errorf("wave orchestrator already started (phase %s)", s.phase)
	}
	if err := s.library.ValidateWaves(len(s.cfg.SpawnPoints)); err != nil {
		return fmt.Errorf("failed to start waves: %w", err)
	}
	s.wave = 0
	s.enterBuild()
	return nil
}

// Update advances the orchestrator by deltaTime seconds, rounded to the nanosecond
// so that a run of fixed ticks does not lose time to truncation.
func (s *WaveSystem) Update(deltaTime float64) {
	s.Advance(time.Duration(math.Round(deltaTime * float64(time.Second))))
}

// Advance advances the orchestrator by d.
func (s *WaveSystem) Advance(d time.Duration) {
	switch s.phase {
	case component.PhaseBuild:
		s.buildLeft -= d
		if s.buildLeft <= 0 {
			s.enterCombat()
		}
	case component.PhaseCombat:
		s.advanceCombat(d)
	}
}

// SkipBuild forces BUILD→COMBAT, dropping the rest of the countdown.
func (s *WaveSystem) SkipBuild() bool {
	if s.phase != component.PhaseBuild {
		return false
	}
	s.logger.Info("build phase skipped", "wave", s.wave, "remaining", s.buildLeft)
	s.enterCombat()
	return true
}

func (s *WaveSystem) Phase() component.WavePhase { return s.phase }

// Wave is the zero-based index of the current wave.
func (s *WaveSystem) Wave() int { return s.wave }

func (s *WaveSystem) WaveCount() int { return len(s.library.Waves) }

func (s *WaveSystem) BuildRemaining() time.Duration {
	if s.phase != component.PhaseBuild {
		return 0
	}
	return s.buildLeft
}

// AliveSpawned counts enemies of the current wave still alive.
func (s *WaveSystem) AliveSpawned() int {
	n := 0
	for _, h := range s.handles {
		if s.ecs.Live(h) != nil {
			n++
		}
	}
	return n
}

func (s *WaveSystem) enterBuild() {
	s.phase = component.PhaseBuild
	s.buildLeft = time.Duration(s.cfg.BuildPhaseMs) * time.Millisecond
	s.logger.Info("build phase", "wave", s.wave, "duration", s.buildLeft)
	s.dispatch(event.BuildStarted, event.WaveEvent{Wave: s.wave, BuildFor: s.buildLeft.Seconds()})
}

func (s *WaveSystem) enterCombat() {
	s.phase = component.PhaseCombat
	s.buildLeft = 0
	s.group = 0
	s.groupElapsed = 0
	s.spawned = 0
	s.handles = s.handles[:0]
	s.logger.Info("wave started", "wave", s.wave)
	s.dispatch(event.WaveStarted, event.WaveEvent{Wave: s.wave})
}

func (s *WaveSystem) advanceCombat(d time.Duration) {
	groups := s.library.Waves[s.wave].Groups
	if s.group < len(groups) {
		s.groupElapsed += d
	}
	for s.group < len(groups) {
		g := groups[s.group]
		delay := time.Duration(g.SpawnDelayMs) * time.Millisecond
		for s.spawned < g.Count && s.groupElapsed >= delay*time.Duration(s.spawned+1) {
			s.spawn(g)
			s.spawned++
		}
		if s.spawned < g.Count {
			return
		}
		end := delay * time.Duration(g.Count)
		// Пауза после последней группы ничего не ждёт
		if s.group < len(groups)-1 {
			end += time.Duration(g.GroupDelayMs) * time.Millisecond
		}
		if s.groupElapsed < end {
			return
		}
		s.groupElapsed -= end
		s.group++
		s.spawned = 0
	}

	if s.AliveSpawned() > 0 {
		return
	}
	s.clearWave()
}

func (s *WaveSystem) spawn(g defs.SpawnGroup) {
	h, err := s.game.SpawnEnemy(g.EnemyID, g.SpawnPoint)
	if err != nil {
		// Считаем попытку, иначе волна никогда не закончится
		s.logger.Error("spawn failed", "enemy", g.EnemyID, "spawn_point", g.SpawnPoint, "err", err)
		return
	}
	s.handles = append(s.handles, h)
	s.dispatch(event.EnemySpawned, event.SpawnEvent{Handle: h, EnemyID: g.EnemyID, Wave: s.wave, Group: s.group})
}

func (s *WaveSystem) clearWave() {
	reward := s.cfg.RewardBase + s.cfg.RewardPerWave*s.wave
	s.logger.Info("wave cleared", "wave", s.wave, "reward", reward)
	s.dispatch(event.WaveCleared, event.WaveEvent{Wave: s.wave, Reward: reward})

	if s.wave+1 >= len(s.library.Waves) {
		s.phase = component.PhaseAllCleared
		s.dispatch(event.AllWavesCleared, event.WaveEvent{Wave: s.wave})
		return
	}
	s.wave++
	s.enterBuild()
}

func (s *WaveSystem) dispatch(t event.EventType, data interface{}) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
