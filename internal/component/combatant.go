// internal/component/combatant.go
package component

import (
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/types"
)

// Kind — роль бойца на арене
type Kind uint8

const (
	KindCraft Kind = iota
	KindEnemy
	KindTurret
	KindReactor
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindCraft:
		return "craft"
	case KindEnemy:
		return "enemy"
	case KindTurret:
		return "turret"
	case KindReactor:
		return "reactor"
	case KindBoss:
		return "boss"
	}
	return "unknown"
}

// Faction decides which projectile–target pairs are valid.
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
	FactionTurret
	FactionBoss
)

func (f Faction) hostile() bool {
	return f == FactionEnemy || f == FactionBoss
}

// Opposes reports whether f and o fight each other. Player and turrets share a side,
// enemies and bosses share the other.
func (f Faction) Opposes(o Faction) bool {
	return f.hostile() != o.hostile()
}

// Control selects how a combatant is driven.
type Control uint8

const (
	ControlPlayer Control = iota
	ControlPathFollow
	ControlStationary
	ControlBoss
)

// Weapon — оружие бойца и его перезарядка
type Weapon struct {
	Def      defs.WeaponDefinition
	Cooldown float64 // Оставшееся время до следующего выстрела
}

// Ready reports whether the weapon can fire.
func (w *Weapon) Ready() bool {
	return w != nil && w.Cooldown <= 0
}

// Combatant is anything with health on the arena: the player craft, enemies, turrets,
// the reactor and bosses. Behaviour is selected by Control, not by type.
type Combatant struct {
	Handle  types.Handle
	Kind    Kind
	Faction Faction
	Control Control
	DefID   string

	Position
	Width, Height float64
	Speed         float64
	Heading       float64

	Health, MaxHealth int
	Alive             bool

	ContactDamage   int
	ContactCooldown float64

	// Награда за уничтожение
	Score    int
	Currency int

	Path    *Path
	Weapon  *Weapon
	Turret  *TurretComponent
	Boss    *Boss
	Render  Renderable
	Flash   *DamageFlash
	Arsenal []*Weapon // Оружие игрока, переключается через SelectWeapon

	// Projectiles fired by this combatant. They outlive it until they finish.
	Projectiles []*Projectile
}

// VisualBox is the full drawn extent.
func (c *Combatant) VisualBox() Box {
	return BoxAt(c.X, c.Y, c.Width, c.Height)
}

// HitBox is the visual box shrunk by scale around the centre.
func (c *Combatant) HitBox(scale float64) Box {
	return BoxAt(c.X, c.Y, c.Width*scale, c.Height*scale)
}

// LiveProjectiles counts owned projectiles still in flight.
func (c *Combatant) LiveProjectiles() int {
	n := 0
	for _, p := range c.Projectiles {
		if p.Alive {
			n++
		}
	}
	return n
}

// PruneProjectiles drops finished projectiles in place.
func (c *Combatant) PruneProjectiles() {
	live := c.Projectiles[:0]
	for _, p := range c.Projectiles {
		if p.Alive {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(c.Projectiles); i++ {
		c.Projectiles[i] = nil
	}
	c.Projectiles = live
}
