package app

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/system"
	"go-maze-defense/internal/types"
	"go-maze-defense/pkg/maze"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Arena = config.ArenaConfig{Rows: 11, Cols: 11, TileSize: 32, Seed: 7}
	cfg.Reactor.Cell = config.CellConfig{Col: 5, Row: 5}
	cfg.Waves.SpawnPoints = []config.CellConfig{{Col: 10, Row: 0}, {Col: 0, Row: 10}, {Col: 10, Row: 10}}
	return cfg
}

func newTestGame(t *testing.T, mutate func(*config.Config, *defs.Library)) *Game {
	t.Helper()
	cfg := testConfig()
	lib := defs.Default()
	if mutate != nil {
		mutate(&cfg, lib)
	}
	g, err := NewGame(cfg, lib, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return g
}

type recorder struct{ events []event.Event }

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func TestNewGame_PlacesPlayerAndReactor(t *testing.T) {
	g := newTestGame(t, nil)

	assert.NotEqual(t, uuid.Nil, g.SessionID)

	player := g.Player()
	require.NotNil(t, player)
	assert.Equal(t, component.KindCraft, player.Kind)
	assert.Equal(t, component.ControlPlayer, player.Control)
	assert.Len(t, player.Arsenal, 5)
	require.NotNil(t, player.Weapon)
	assert.Equal(t, "BLASTER", player.Weapon.Def.ID)

	reactor := g.Reactor()
	require.NotNil(t, reactor)
	assert.Equal(t, component.KindReactor, reactor.Kind)
	assert.True(t, g.Grid.IsPath(g.ReactorCell()))

	assert.Equal(t, component.PhaseBuild, g.WaveSystem.Phase())
	assert.Equal(t, component.PhaseBuild, g.State().Phase)
	assert.Equal(t, g.Config.Waves.StartingCurrency, g.State().Currency)

	require.Len(t, g.SpawnCells(), 3)
	for i, c := range g.SpawnCells() {
		assert.True(t, g.Grid.IsPath(c), "spawn %d", i)
		path := g.spawnPaths[i]
		require.NotEmpty(t, path, "spawn %d", i)
		assert.Equal(t, c, path[0])
		assert.Equal(t, g.ReactorCell(), path[len(path)-1])
	}
}

func TestNewGame_FailsLoudlyOnBadDefinitions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config, *defs.Library)
		want   error
	}{
		{"no waves", func(_ *config.Config, l *defs.Library) { l.Waves = nil }, defs.ErrNoWaves},
		{"empty wave", func(_ *config.Config, l *defs.Library) { l.Waves[1].Groups = nil }, defs.ErrEmptyWave},
		{"unknown player weapon", func(c *config.Config, _ *defs.Library) { c.Player.Weapons = []string{"NOPE"} }, defs.ErrUnknownWeapon},
		{"bad spawn point", func(_ *config.Config, l *defs.Library) { l.Waves[0].Groups[0].SpawnPoint = 9 }, defs.ErrBadSpawnPoint},
		{"bad hitbox scale", func(c *config.Config, _ *defs.Library) { c.Collision.HitboxScale = 0 }, config.ErrInvalidCombat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			lib := defs.Default()
			tc.mutate(&cfg, lib)
			_, err := NewGame(cfg, lib, slog.New(slog.NewTextHandler(io.Discard, nil)))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGame_SpawnEnemy(t *testing.T) {
	g := newTestGame(t, nil)

	h, err := g.SpawnEnemy("ENEMY_NORMAL", 0)
	require.NoError(t, err)
	c := g.ECS.Live(h)
	require.NotNil(t, c)

	x, y := maze.CellCenter(g.SpawnCells()[0], g.Config.Arena.TileSize)
	assert.Equal(t, component.Position{X: x, Y: y}, c.Position)
	assert.Equal(t, component.FactionEnemy, c.Faction)
	assert.Equal(t, component.ControlPathFollow, c.Control)
	require.NotNil(t, c.Path)
	assert.Equal(t, 1, c.Path.CurrentIndex)
	require.NotNil(t, c.Weapon)
	assert.Equal(t, "ENEMY_SPIT", c.Weapon.Def.ID)

	_, err = g.SpawnEnemy("GHOST", 0)
	assert.ErrorIs(t, err, defs.ErrUnknownEnemy)
	_, err = g.SpawnEnemy("ENEMY_NORMAL", 3)
	assert.ErrorIs(t, err, defs.ErrBadSpawnPoint)
}

func TestGame_SpawnBoss(t *testing.T) {
	g := newTestGame(t, nil)

	h, err := g.SpawnEnemy("ENEMY_BOSS", 2)
	require.NoError(t, err)
	boss := g.ECS.Live(h)
	require.NotNil(t, boss)

	assert.Equal(t, component.KindBoss, boss.Kind)
	assert.Equal(t, component.FactionBoss, boss.Faction)
	require.NotNil(t, boss.Boss)
	assert.Len(t, boss.Boss.Parts, 3)
	assert.Equal(t, 490, boss.Health)
	assert.Equal(t, 490, boss.MaxHealth)
	require.NotNil(t, boss.Weapon)
	assert.Equal(t, "BOSS_SPRAY", boss.Weapon.Def.ID)
}

func TestGame_SkipBuildStartsSpawning(t *testing.T) {
	g := newTestGame(t, nil)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(rec, event.EnemySpawned)

	require.True(t, g.SkipBuild())
	assert.Equal(t, component.PhaseCombat, g.State().Phase)
	assert.False(t, g.SkipBuild())

	g.Update(0.5)
	assert.Empty(t, rec.events)

	g.Update(0.31)
	require.Len(t, rec.events, 1)
	assert.Equal(t, 1, g.WaveSystem.AliveSpawned())
}

// sideCells returns path cells off every enemy route, excluding the reactor.
func sideCells(g *Game) []maze.Cell {
	var out []maze.Cell
	for _, c := range g.Grid.PathCells() {
		if c != g.ReactorCell() && !g.onRoute(c) {
			out = append(out, c)
		}
	}
	return out
}

func TestGame_PlaceTurret(t *testing.T) {
	g := newTestGame(t, nil)

	free := sideCells(g)
	require.GreaterOrEqual(t, len(free), 2)
	cell, spare := free[0], free[1]

	var wall maze.Cell
	foundWall := false
	for row := 0; row < g.Grid.Rows && !foundWall; row++ {
		for col := 0; col < g.Grid.Cols; col++ {
			if c := (maze.Cell{Col: col, Row: row}); !g.Grid.IsPath(c) {
				wall, foundWall = c, true
				break
			}
		}
	}
	require.True(t, foundWall)

	before := g.State().Currency
	h, err := g.PlaceTurret(cell)
	require.NoError(t, err)
	turret := g.ECS.Live(h)
	require.NotNil(t, turret)
	assert.Equal(t, component.KindTurret, turret.Kind)
	assert.NotNil(t, turret.Turret)
	assert.Equal(t, before-g.Config.Turret.Cost, g.State().Currency)

	_, err = g.PlaceTurret(cell)
	assert.ErrorIs(t, err, ErrCellOccupied)
	_, err = g.PlaceTurret(g.ReactorCell())
	assert.ErrorIs(t, err, ErrCellOccupied)
	_, err = g.PlaceTurret(wall)
	assert.ErrorIs(t, err, ErrCellBlocked)

	g.ECS.GameState.Currency = 0
	_, err = g.PlaceTurret(spare)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	g.SkipBuild()
	_, err = g.PlaceTurret(spare)
	assert.ErrorIs(t, err, ErrNotBuildPhase)
}

func TestGame_PlaceTurretRejectsEnemyRoute(t *testing.T) {
	g := newTestGame(t, nil)

	for i, path := range g.spawnPaths {
		require.GreaterOrEqual(t, len(path), 2, "spawn %d", i)
		// Последняя клетка маршрута занята реактором, проверяем остальные
		for _, c := range path[:len(path)-1] {
			_, err := g.PlaceTurret(c)
			assert.ErrorIs(t, err, ErrCellOnRoute, "spawn %d cell (%d,%d)", i, c.Col, c.Row)
		}
	}
	assert.Equal(t, g.Config.Waves.StartingCurrency, g.State().Currency, "nothing was bought")
}

func TestGame_FirePlayerRespectsCooldown(t *testing.T) {
	g := newTestGame(t, nil)
	p := g.Player()

	require.True(t, g.FirePlayer(p.X+100, p.Y))
	assert.Equal(t, 1, p.LiveProjectiles())
	assert.False(t, g.FirePlayer(p.X+100, p.Y))

	require.True(t, g.SelectWeapon("RAY"))
	assert.Equal(t, "RAY", p.Weapon.Def.ID)
	assert.False(t, g.SelectWeapon("NOPE"))
}

func TestGame_SpawnProjectile(t *testing.T) {
	g := newTestGame(t, nil)

	_, err := g.SpawnProjectile(types.NilHandle, system.ProjectileSpec{Speed: 100, Lifetime: 1})
	assert.ErrorIs(t, err, ErrUnknownCombatant)

	p := g.Player()
	proj, err := g.SpawnProjectile(g.PlayerID, system.ProjectileSpec{X: p.X, Y: p.Y, Speed: 100, Lifetime: 1, Size: 4, Damage: 1})
	require.NoError(t, err)
	assert.True(t, proj.Alive)
	assert.Equal(t, defs.VariantStraight, proj.Variant())
	assert.Equal(t, component.FactionPlayer, proj.Faction)
}

func TestGame_KillAwardsScoreAndSweeps(t *testing.T) {
	g := newTestGame(t, nil)
	h, err := g.SpawnEnemy("ENEMY_NORMAL_WEAK", 0)
	require.NoError(t, err)
	before := g.State()

	assert.True(t, system.ApplyDamage(g.EventDispatcher, g.ECS.Live(h), 100))
	g.Update(config.FixedStep)

	st := g.State()
	assert.Equal(t, before.Score+10, st.Score)
	assert.Equal(t, before.Currency+5, st.Currency)
	assert.Equal(t, before.Kills+1, st.Kills)
	assert.Nil(t, g.ECS.Get(h))
}

func TestGame_ReactorLossEndsGame(t *testing.T) {
	g := newTestGame(t, nil)

	system.ApplyDamage(g.EventDispatcher, g.Reactor(), 10000)
	assert.True(t, g.State().GameOver)

	g.Update(0.1)
	assert.Zero(t, g.GameTime())
}

func TestGame_PauseAndSpeed(t *testing.T) {
	g := newTestGame(t, nil)

	g.HandlePauseClick()
	assert.True(t, g.IsPaused())
	g.Update(1)
	assert.Zero(t, g.GameTime())

	g.HandlePauseClick()
	g.HandleSpeedClick()
	assert.Equal(t, 2.0, g.SpeedMultiplier)
	g.Update(0.5)
	assert.InDelta(t, 1.0, g.GameTime(), 1e-9)

	g.HandleSpeedClick()
	assert.Equal(t, 4.0, g.SpeedMultiplier)
	g.HandleSpeedClick()
	assert.Equal(t, 1.0, g.SpeedMultiplier)
}

func TestGame_UpdateRunsFixedTicks(t *testing.T) {
	g := newTestGame(t, nil)

	g.Update(config.FixedStep / 2)
	assert.Zero(t, g.GameTime(), "less than one tick is carried over")
	g.Update(config.FixedStep / 2)
	assert.InDelta(t, config.FixedStep, g.GameTime(), 1e-9)

	g.SpeedMultiplier = 4
	g.Update(config.FixedStep)
	assert.InDelta(t, 5*config.FixedStep, g.GameTime(), 1e-9)
}

func TestGame_FastForwardShotStillStopsAtWall(t *testing.T) {
	g := newTestGame(t, nil)
	tile := g.Config.Arena.TileSize

	// Клетка пути со стеной слева: западная грань даёт вертикальный сегмент
	var cell maze.Cell
	found := false
	for _, c := range g.Grid.PathCells() {
		if c.Col >= 2 && !g.Grid.IsPath(maze.Cell{Col: c.Col - 1, Row: c.Row}) {
			cell, found = c, true
			break
		}
	}
	require.True(t, found)
	wallX := float64(cell.Col) * tile
	x, y := maze.CellCenter(cell, tile)

	proj, err := g.SpawnProjectile(g.PlayerID, system.ProjectileSpec{
		X: x, Y: y, Heading: math.Pi, Speed: 520, Lifetime: 1, Size: 8, Damage: 1,
	})
	require.NoError(t, err)

	g.SpeedMultiplier = 4
	g.Update(config.FixedStep)

	assert.False(t, proj.Alive, "shot tunnelled through the wall at x=%v", wallX)
	assert.Greater(t, proj.X, wallX-tile/2)
}

func TestGame_FlipCellRebuildsDerivedState(t *testing.T) {
	g := newTestGame(t, nil)

	var target maze.Cell
	found := false
	for row := 0; row < g.Grid.Rows && !found; row++ {
		for col := 0; col < g.Grid.Cols; col++ {
			if c := (maze.Cell{Col: col, Row: row}); !g.Grid.IsPath(c) {
				target, found = c, true
				break
			}
		}
	}
	require.True(t, found)

	oldIndex := g.Index
	require.NoError(t, g.FlipCell(target))
	assert.True(t, g.Grid.IsPath(target))
	assert.NotSame(t, oldIndex, g.Index)

	assert.ErrorIs(t, g.FlipCell(g.ReactorCell()), ErrCellOccupied)
	assert.ErrorIs(t, g.FlipCell(maze.Cell{Col: -1, Row: 0}), ErrCellBlocked)
}

func TestGame_RegenerateMaze(t *testing.T) {
	g := newTestGame(t, nil)

	require.NoError(t, g.RegenerateMaze())
	tile := g.Config.Arena.TileSize
	reactor := g.Reactor()
	assert.Equal(t, g.ReactorCell(), g.Grid.CellAt(reactor.X, reactor.Y, tile))
	assert.True(t, g.Grid.IsPath(g.Grid.CellAt(g.Player().X, g.Player().Y, tile)))

	g.SkipBuild()
	assert.ErrorIs(t, g.RegenerateMaze(), ErrNotBuildPhase)
}
