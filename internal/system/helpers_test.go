package system

import (
	"io"
	"log/slog"
	"testing"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/pkg/maze"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testConfig is a 10x10 arena of 32px tiles (320x320).
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Arena.Rows = 10
	cfg.Arena.Cols = 10
	cfg.Arena.TileSize = 32
	return cfg
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) of(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type rig struct {
	cfg         config.Config
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	log         *eventLog
	boss        *BossSystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
}

func newRig(t *testing.T, index *maze.Index) *rig {
	t.Helper()
	cfg := testConfig()
	r := &rig{
		cfg:        cfg,
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		log:        &eventLog{},
	}
	r.dispatcher.Subscribe(r.log,
		event.CombatantDestroyed, event.BossPartDestroyed, event.BossPhaseChanged,
		event.BuildStarted, event.WaveStarted, event.EnemySpawned,
		event.WaveCleared, event.AllWavesCleared,
	)
	r.boss = NewBossSystem(r.dispatcher, defs.Default().Weapons, testLogger())
	r.combat = NewCombatSystem(r.ecs, r.dispatcher, r.boss, index, cfg, testLogger())
	r.projectiles = NewProjectileSystem(r.ecs, cfg)
	return r
}

func (r *rig) add(kind component.Kind, faction component.Faction, x, y, size float64, health int) *component.Combatant {
	c := &component.Combatant{
		Kind:      kind,
		Faction:   faction,
		Position:  component.Position{X: x, Y: y},
		Width:     size,
		Height:    size,
		Health:    health,
		MaxHealth: health,
		Alive:     true,
	}
	r.ecs.Add(c)
	return c
}

func (r *rig) enemy(x, y float64, health int) *component.Combatant {
	return r.add(component.KindEnemy, component.FactionEnemy, x, y, 20, health)
}

func (r *rig) player(x, y float64) *component.Combatant {
	return r.add(component.KindCraft, component.FactionPlayer, x, y, 20, 100)
}

func (r *rig) bossAt(x, y float64) *component.Combatant {
	def := defs.Default().Enemies["ENEMY_BOSS"]
	c := r.add(component.KindBoss, component.FactionBoss, x, y, def.Size, 0)
	c.Boss = component.NewBoss(def.Boss)
	c.Control = component.ControlBoss
	for _, p := range c.Boss.Parts {
		c.Health += p.Health
	}
	c.MaxHealth = c.Health
	return c
}

func shot(owner *component.Combatant, x, y, heading, speed float64, damage int, b component.Behavior) *component.Projectile {
	return NewProjectile(owner, ProjectileSpec{
		X:        x,
		Y:        y,
		Heading:  heading,
		Damage:   damage,
		Speed:    speed,
		Lifetime: 10,
		Size:     4,
		Behavior: b,
	})
}
