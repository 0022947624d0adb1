package system

import (
	"errors"
	"testing"
	"time"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpawner struct {
	ecs   *entity.ECS
	calls []string
	fail  bool
}

func (f *fakeSpawner) SpawnEnemy(enemyID string, spawnPoint int) (types.Handle, error) {
	f.calls = append(f.calls, enemyID)
	if f.fail {
		return types.NilHandle, errors.New("no path")
	}
	return f.ecs.Add(&component.Combatant{Kind: component.KindEnemy, Faction: component.FactionEnemy, DefID: enemyID, Health: 1, Alive: true}), nil
}

func (f *fakeSpawner) killAll() {
	f.ecs.Each(func(c *component.Combatant) { c.Alive = false })
}

func waveRig(t *testing.T, waves []defs.WaveDefinition) (*WaveSystem, *fakeSpawner, *eventLog) {
	t.Helper()
	lib := defs.Default()
	lib.Waves = waves
	cfg := config.Default().Waves
	cfg.BuildPhaseMs = 5000
	cfg.RewardBase = 100
	cfg.RewardPerWave = 25

	ecs := entity.NewECS()
	d := event.NewDispatcher()
	log := &eventLog{}
	d.Subscribe(log, event.BuildStarted, event.WaveStarted, event.EnemySpawned, event.WaveCleared, event.AllWavesCleared)
	sp := &fakeSpawner{ecs: ecs}
	return NewWaveSystem(ecs, d, sp, lib, cfg, testLogger()), sp, log
}

func oneGroup(count, delayMs int) []defs.WaveDefinition {
	return []defs.WaveDefinition{{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_FAST", Count: count, SpawnDelayMs: delayMs}}}}
}

func TestWave_SpawnTiming(t *testing.T) {
	ws, sp, _ := waveRig(t, oneGroup(3, 1000))
	require.NoError(t, ws.Start())
	require.True(t, ws.SkipBuild())
	require.Equal(t, component.PhaseCombat, ws.Phase())

	ws.Advance(0)
	assert.Len(t, sp.calls, 0, "t=0ms")

	ws.Advance(999 * time.Millisecond)
	assert.Len(t, sp.calls, 0, "t=999ms")

	ws.Advance(1 * time.Millisecond)
	assert.Len(t, sp.calls, 1, "t=1000ms")

	ws.Advance(2000 * time.Millisecond)
	assert.Len(t, sp.calls, 3, "t=3000ms")

	ws.Advance(10 * time.Second)
	assert.Len(t, sp.calls, 3, "no further spawn attempts")
	assert.Equal(t, component.PhaseCombat, ws.Phase(), "spawned enemies still alive")
}

func TestWave_BuildCountdown(t *testing.T) {
	ws, sp, log := waveRig(t, oneGroup(1, 0))
	assert.Equal(t, component.PhaseIdle, ws.Phase())
	ws.Update(10)
	assert.Equal(t, component.PhaseIdle, ws.Phase(), "idle until started")

	require.NoError(t, ws.Start())
	assert.Equal(t, component.PhaseBuild, ws.Phase())
	assert.Equal(t, 5*time.Second, ws.BuildRemaining())
	assert.Equal(t, 1, log.count(event.BuildStarted))

	ws.Advance(4999 * time.Millisecond)
	assert.Equal(t, component.PhaseBuild, ws.Phase())
	assert.Empty(t, sp.calls, "no spawns during build")

	ws.Advance(time.Millisecond)
	assert.Equal(t, component.PhaseCombat, ws.Phase())
	assert.Equal(t, 1, log.count(event.WaveStarted))
	assert.False(t, ws.SkipBuild())
}

func TestWave_ClearRewardsAndAdvances(t *testing.T) {
	waves := []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_FAST", Count: 2, SpawnDelayMs: 100}}},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_TOUGH", Count: 1, SpawnDelayMs: 100}}},
	}
	ws, sp, log := waveRig(t, waves)
	require.NoError(t, ws.Start())
	ws.SkipBuild()

	ws.Advance(200 * time.Millisecond)
	require.Len(t, sp.calls, 2)
	assert.Equal(t, 2, ws.AliveSpawned())
	assert.Equal(t, 0, log.count(event.WaveCleared))

	sp.killAll()
	ws.Advance(16 * time.Millisecond)
	require.Equal(t, 1, log.count(event.WaveCleared))
	assert.Equal(t, event.WaveEvent{Wave: 0, Reward: 100}, log.of(event.WaveCleared)[0].Data)
	assert.Equal(t, component.PhaseBuild, ws.Phase())
	assert.Equal(t, 1, ws.Wave())

	ws.SkipBuild()
	ws.Advance(100 * time.Millisecond)
	sp.killAll()
	ws.Advance(16 * time.Millisecond)

	cleared := log.of(event.WaveCleared)
	require.Len(t, cleared, 2)
	assert.Equal(t, 125, cleared[1].Data.(event.WaveEvent).Reward)
	assert.Equal(t, component.PhaseAllCleared, ws.Phase())
	assert.Equal(t, 1, log.count(event.AllWavesCleared))
	assert.Equal(t, []string{"ENEMY_FAST", "ENEMY_FAST", "ENEMY_TOUGH"}, sp.calls)
}

func TestWave_GroupDelay(t *testing.T) {
	waves := []defs.WaveDefinition{{Groups: []defs.SpawnGroup{
		{EnemyID: "ENEMY_FAST", Count: 2, SpawnDelayMs: 500, GroupDelayMs: 2000},
		{EnemyID: "ENEMY_TOUGH", Count: 1, SpawnDelayMs: 1000},
	}}}
	ws, sp, log := waveRig(t, waves)
	require.NoError(t, ws.Start())
	ws.SkipBuild()

	ws.Advance(1000 * time.Millisecond)
	assert.Len(t, sp.calls, 2)

	// Вторая группа стартует через 1000+2000 мс и спавнит через ещё 1000
	ws.Advance(2500 * time.Millisecond)
	assert.Len(t, sp.calls, 2)
	ws.Advance(499 * time.Millisecond)
	assert.Len(t, sp.calls, 2)
	ws.Advance(1 * time.Millisecond)
	assert.Len(t, sp.calls, 3)

	spawns := log.of(event.EnemySpawned)
	require.Len(t, spawns, 3)
	assert.Equal(t, 1, spawns[2].Data.(event.SpawnEvent).Group)
}

func TestWave_ClearWaitsForAllGroups(t *testing.T) {
	waves := []defs.WaveDefinition{{Groups: []defs.SpawnGroup{
		{EnemyID: "ENEMY_FAST", Count: 1, SpawnDelayMs: 0, GroupDelayMs: 1000},
		{EnemyID: "ENEMY_FAST", Count: 1, SpawnDelayMs: 0},
	}}}
	ws, sp, log := waveRig(t, waves)
	require.NoError(t, ws.Start())
	ws.SkipBuild()

	ws.Advance(0)
	require.Len(t, sp.calls, 1)
	sp.killAll()
	ws.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, log.count(event.WaveCleared), "second group has not spawned yet")

	ws.Advance(500 * time.Millisecond)
	assert.Len(t, sp.calls, 2)
	sp.killAll()
	ws.Advance(time.Millisecond)
	assert.Equal(t, 1, log.count(event.WaveCleared))
}

func TestWave_TrailingGroupDelayDoesNotHoldClear(t *testing.T) {
	waves := []defs.WaveDefinition{{Groups: []defs.SpawnGroup{
		{EnemyID: "ENEMY_FAST", Count: 1, SpawnDelayMs: 1000, GroupDelayMs: 5000},
	}}}
	ws, sp, log := waveRig(t, waves)
	require.NoError(t, ws.Start())
	ws.SkipBuild()

	ws.Advance(1000 * time.Millisecond)
	require.Len(t, sp.calls, 1)
	ws.Advance(100 * time.Millisecond)
	assert.Equal(t, 0, log.count(event.WaveCleared), "enemy still alive")

	sp.killAll()
	ws.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, log.count(event.WaveCleared))
	assert.Equal(t, component.PhaseAllCleared, ws.Phase())
}

func TestWave_FailedSpawnStillCounts(t *testing.T) {
	ws, sp, log := waveRig(t, oneGroup(2, 100))
	sp.fail = true
	require.NoError(t, ws.Start())
	ws.SkipBuild()

	ws.Advance(300 * time.Millisecond)
	assert.Len(t, sp.calls, 2)
	assert.Equal(t, 1, log.count(event.WaveCleared))
	assert.Equal(t, 0, log.count(event.EnemySpawned))
}

func TestWave_StartFailsLoudly(t *testing.T) {
	tests := []struct {
		name  string
		waves []defs.WaveDefinition
		want  error
	}{
		{"no waves", nil, defs.ErrNoWaves},
		{"empty wave", []defs.WaveDefinition{{}}, defs.ErrEmptyWave},
		{"unknown enemy", []defs.WaveDefinition{{Groups: []defs.SpawnGroup{{EnemyID: "GHOST", Count: 1}}}}, defs.ErrUnknownEnemy},
		{"bad spawn point", []defs.WaveDefinition{{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_FAST", Count: 1, SpawnPoint: 9}}}}, defs.ErrBadSpawnPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, _, _ := waveRig(t, tt.waves)
			err := ws.Start()
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, component.PhaseIdle, ws.Phase())
		})
	}

	ws, _, _ := waveRig(t, oneGroup(1, 0))
	require.NoError(t, ws.Start())
	assert.Error(t, ws.Start(), "second start is rejected")
}
