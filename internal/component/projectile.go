// internal/component/projectile.go
package component

import (
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/types"
)

// Projectile представляет летящий снаряд. Принадлежит бойцу, который его выпустил.
type Projectile struct {
	X, Y     float64
	VX, VY   float64 // Пиксели в секунду
	Speed    float64
	Lifetime float64 // Оставшееся время жизни в секундах
	Damage   int
	Size     float64
	Faction  Faction
	Owner    types.Handle
	WeaponID string
	Behavior Behavior
	Alive    bool
}

// Box returns the projectile's collision square.
func (p *Projectile) Box() Box {
	return BoxAt(p.X, p.Y, p.Size, p.Size)
}

// Variant is a shortcut for p.Behavior.Variant().
func (p *Projectile) Variant() defs.Variant {
	return p.Behavior.Variant()
}

// Consume applies the variant's rule for a successful hit on target.
// PIERCE counts the pass-through; every other variant terminates.
func (p *Projectile) Consume(target HitKey) {
	if pb, ok := p.Behavior.(*Pierce); ok {
		pb.Used++
		pb.markHit(target)
		if pb.Used > pb.Max {
			p.Alive = false
		}
		return
	}
	p.Alive = false
}

// CanHit is false only for PIERCE shots that already passed through target.
func (p *Projectile) CanHit(target HitKey) bool {
	if pb, ok := p.Behavior.(*Pierce); ok {
		_, seen := pb.hit[target]
		return !seen
	}
	return true
}

// HitKey identifies a hit target: a combatant or one of a boss's parts.
type HitKey struct {
	Handle types.Handle
	Part   string
}

// Behavior is the closed set of projectile variants.
type Behavior interface {
	Variant() defs.Variant
	behavior()
}

// Straight flies along its initial heading.
type Straight struct{}

// Bounce reflects off walls and arena bounds until Used exceeds Max.
type Bounce struct {
	Used, Max int
}

// Pierce passes through targets until Used exceeds Max.
type Pierce struct {
	Used, Max    int
	StopsAtWalls bool
	hit          map[HitKey]struct{}
}

// Homing steers toward the nearest opposing combatant.
type Homing struct {
	TurnRate     float64 // Радианы в секунду
	AcquireRange float64 // 0 = без ограничения
	Target       types.Handle
	StopsAtWalls bool
}

// Beam is resolved instantly at creation and only lingers for display.
type Beam struct {
	StartX, StartY float64
	EndX, EndY     float64
	Target         types.Handle
	Applied        bool
}

func (*Straight) Variant() defs.Variant { return defs.VariantStraight }
func (*Bounce) Variant() defs.Variant   { return defs.VariantBounce }
func (*Pierce) Variant() defs.Variant   { return defs.VariantPierce }
func (*Homing) Variant() defs.Variant   { return defs.VariantHoming }
func (*Beam) Variant() defs.Variant     { return defs.VariantBeam }

func (*Straight) behavior() {}
func (*Bounce) behavior()   {}
func (*Pierce) behavior()   {}
func (*Homing) behavior()   {}
func (*Beam) behavior()     {}

func (p *Pierce) markHit(k HitKey) {
	if p.hit == nil {
		p.hit = make(map[HitKey]struct{})
	}
	p.hit[k] = struct{}{}
}

// NewBehavior builds the variant payload described by a weapon definition.
func NewBehavior(def defs.WeaponDefinition) Behavior {
	switch def.Variant {
	case defs.VariantBounce:
		return &Bounce{Max: def.MaxBounces}
	case defs.VariantPierce:
		return &Pierce{Max: def.MaxPierces, StopsAtWalls: def.StopsAtWalls}
	case defs.VariantHoming:
		return &Homing{TurnRate: def.TurnRate, AcquireRange: def.AcquireRange, StopsAtWalls: def.StopsAtWalls}
	case defs.VariantBeam:
		return &Beam{}
	}
	return &Straight{}
}
