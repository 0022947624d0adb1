// internal/app/spawn.go
package app

import (
	"fmt"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/system"
	"go-maze-defense/internal/types"
	"go-maze-defense/pkg/maze"
)

// SpawnEnemy creates enemyID at spawn point spawnPoint, already walking its path to
// the reactor. Enemies with a boss definition become bosses.
func (g *Game) SpawnEnemy(enemyID string, spawnPoint int) (types.Handle, error) {
	def, ok := g.Library.Enemies[enemyID]
	if !ok {
		return types.NilHandle, fmt.Errorf("%w: %s", defs.ErrUnknownEnemy, enemyID)
	}
	if spawnPoint < 0 || spawnPoint >= len(g.spawnPaths) {
		return types.NilHandle, fmt.Errorf("%w: %d", defs.ErrBadSpawnPoint, spawnPoint)
	}
	path := g.spawnPaths[spawnPoint]
	if len(path) == 0 {
		return types.NilHandle, fmt.Errorf("%w: %d", ErrNoSpawnPath, spawnPoint)
	}

	x, y := maze.CellCenter(path[0], g.Config.Arena.TileSize)
	radiusFactor := def.Visuals.RadiusFactor
	if radiusFactor <= 0 {
		radiusFactor = 0.5
	}
	c := &component.Combatant{
		Kind:          component.KindEnemy,
		Faction:       component.FactionEnemy,
		Control:       component.ControlPathFollow,
		DefID:         def.ID,
		Position:      component.Position{X: x, Y: y},
		Width:         def.Size,
		Height:        def.Size,
		Speed:         def.Speed,
		Health:        def.Health,
		MaxHealth:     def.Health,
		Alive:         true,
		ContactDamage: def.ContactDamage,
		Score:         def.Score,
		Currency:      def.Currency,
		// Первая клетка пути — клетка спавна
		Path: &component.Path{Cells: append([]maze.Cell(nil), path...), CurrentIndex: 1},
		Render: component.Renderable{
			Color:     def.Visuals.Color,
			Radius:    float32(def.Size * radiusFactor),
			HasStroke: def.Visuals.StrokeWidth > 0,
		},
	}
	if def.Weapon != "" {
		c.Weapon = &component.Weapon{Def: g.Library.Weapons[def.Weapon]}
	}
	if def.Boss != nil {
		g.makeBoss(c, def.Boss)
	}

	h := g.ECS.Add(c)
	g.Logger.Debug("enemy spawned", "enemy", enemyID, "handle", h, "spawn_point", spawnPoint)
	return h, nil
}

func (g *Game) makeBoss(c *component.Combatant, def *defs.BossDefinition) {
	c.Kind = component.KindBoss
	c.Faction = component.FactionBoss
	c.Control = component.ControlBoss
	c.Boss = component.NewBoss(def)
	c.Health, c.MaxHealth = 0, 0
	for _, p := range c.Boss.Parts {
		c.Health += p.Health
	}
	c.MaxHealth = c.Health
	if c.Render.Color.A == 0 {
		c.Render.Color = config.BossColor
	}
	c.Weapon = nil
	if wd, ok := g.Library.Weapons[c.Boss.PhaseWeapon()]; ok {
		c.Weapon = &component.Weapon{Def: wd}
	}
}

// SpawnProjectile fires spec on behalf of owner. Beams are resolved immediately.
func (g *Game) SpawnProjectile(owner types.Handle, spec system.ProjectileSpec) (*component.Projectile, error) {
	c := g.ECS.Live(owner)
	if c == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCombatant, owner)
	}
	return g.WeaponSystem.Spawn(c, spec), nil
}

// Fire shoots owner's weapon weaponID along heading, honouring its cooldown.
// An empty weaponID means the selected weapon.
func (g *Game) Fire(owner types.Handle, weaponID string, heading float64) bool {
	return g.WeaponSystem.Fire(g.ECS.Live(owner), weaponID, heading)
}
