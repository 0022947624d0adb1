package system

import (
	"math"
	"testing"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/defs"
	"go-maze-defense/pkg/maze"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weaponFor(t *testing.T, id string) *component.Weapon {
	t.Helper()
	def, ok := defs.Default().Weapons[id]
	require.True(t, ok, id)
	return &component.Weapon{Def: def}
}

func TestWeapon_AIFiresWithCooldown(t *testing.T) {
	r := newRig(t, nil)
	ws := NewWeaponSystem(r.ecs, r.combat, r.cfg.Arena.TileSize, testLogger())
	r.player(100, 100)
	enemy := r.enemy(150, 100, 10)
	enemy.Control = component.ControlStationary
	enemy.Weapon = weaponFor(t, "ENEMY_SPIT")

	ws.Update(0.016)
	require.Len(t, enemy.Projectiles, 1)
	p := enemy.Projectiles[0]
	assert.Equal(t, component.FactionEnemy, p.Faction)
	assert.Equal(t, enemy.Handle, p.Owner)
	assert.Less(t, p.VX, 0.0, "fired toward the player")

	ws.Update(0.016)
	assert.Len(t, enemy.Projectiles, 1, "still cooling down")

	ws.Update(enemy.Weapon.Def.Cooldown)
	assert.Len(t, enemy.Projectiles, 2)
}

func TestWeapon_AIOutOfRangeHoldsFire(t *testing.T) {
	r := newRig(t, nil)
	ws := NewWeaponSystem(r.ecs, r.combat, r.cfg.Arena.TileSize, testLogger())
	r.player(10, 10)
	turret := r.add(component.KindTurret, component.FactionTurret, 300, 300, 20, 10)
	turret.Control = component.ControlStationary
	turret.Weapon = weaponFor(t, "TURRET_GUN")

	ws.Update(0.016)
	assert.Empty(t, turret.Projectiles)
}

func TestWeapon_TurretTurnsBeforeFiring(t *testing.T) {
	r := newRig(t, nil)
	ws := NewWeaponSystem(r.ecs, r.combat, r.cfg.Arena.TileSize, testLogger())
	turret := r.add(component.KindTurret, component.FactionTurret, 100, 100, 20, 10)
	turret.Control = component.ControlStationary
	turret.Weapon = weaponFor(t, "TURRET_GUN")
	turret.Turret = &component.TurretComponent{CurrentAngle: 0, TurnSpeed: math.Pi}
	enemy := r.enemy(100, 200, 10)

	ws.Update(0.1)
	assert.Empty(t, turret.Projectiles)
	assert.Equal(t, enemy.Handle, turret.Turret.Target)
	assert.InDelta(t, math.Pi*0.1, turret.Turret.CurrentAngle, 1e-9)

	for i := 0; i < 5 && len(turret.Projectiles) == 0; i++ {
		ws.Update(0.1)
	}
	require.Len(t, turret.Projectiles, 1)
	assert.Greater(t, turret.Projectiles[0].VY, 0.0)
}

func TestWeapon_PlayerFireAndSelect(t *testing.T) {
	r := newRig(t, nil)
	ws := NewWeaponSystem(r.ecs, r.combat, r.cfg.Arena.TileSize, testLogger())
	player := r.player(100, 100)
	player.Control = component.ControlPlayer
	player.Arsenal = []*component.Weapon{weaponFor(t, "BLASTER"), weaponFor(t, "RICOCHET")}
	player.Weapon = player.Arsenal[0]
	r.enemy(200, 200, 10)

	ws.Update(1)
	assert.Empty(t, player.Projectiles, "player weapons never fire on their own")

	assert.True(t, ws.Fire(player, "", 0))
	assert.False(t, ws.Fire(player, "", 0), "cooldown")
	assert.True(t, ws.Fire(player, "RICOCHET", math.Pi))
	assert.False(t, ws.Fire(player, "NOPE", 0))

	require.Len(t, player.Projectiles, 2)
	assert.IsType(t, &component.Straight{}, player.Projectiles[0].Behavior)
	assert.IsType(t, &component.Bounce{}, player.Projectiles[1].Behavior)

	assert.True(t, ws.SelectWeapon(player, "RICOCHET"))
	assert.Equal(t, "RICOCHET", player.Weapon.Def.ID)
	assert.False(t, ws.SelectWeapon(player, "NOPE"))
}

func TestWeapon_SpawnBeamResolvesImmediately(t *testing.T) {
	r := newRig(t, nil)
	ws := NewWeaponSystem(r.ecs, r.combat, r.cfg.Arena.TileSize, testLogger())
	player := r.player(100, 100)
	enemy := r.enemy(150, 100, 50)

	def := defs.Default().Weapons["RAY"]
	p := ws.Spawn(player, SpecFromWeapon(def, player.X, player.Y, 0))
	assert.IsType(t, &component.Beam{}, p.Behavior)
	assert.Equal(t, 50-def.Damage, enemy.Health)
}

func TestPredictPosition_LeadsAlongPath(t *testing.T) {
	tile := 32.0
	target := &component.Combatant{
		Position: component.Position{X: 16, Y: 16},
		Speed:    32,
		Path: &component.Path{Cells: []maze.Cell{
			{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 3, Row: 0},
		}},
	}
	from := component.Position{X: 16, Y: 116}

	aim := predictPosition(target, from, 100, tile)
	assert.Greater(t, aim.X, 16.0)
	assert.InDelta(t, 16, aim.Y, 1e-9)

	target.Path = nil
	assert.Equal(t, target.Position, predictPosition(target, from, 100, tile))
}
