// internal/system/combat.go
package system

import (
	"log/slog"
	"math"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/utils"
	"go-maze-defense/pkg/maze"
)

// CombatSystem разбирает попадания снарядов и контактный урон.
// Вызывается после того, как все сущности сдвинулись в этом тике.
type CombatSystem struct {
	ecs             *entity.ECS
	dispatcher      *event.Dispatcher
	bossSystem      *BossSystem
	index           *maze.Index
	hitboxScale     float64
	contactDamage   int
	contactCooldown float64
	bounceEpsilon   float64
	logger          *slog.Logger
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, bossSystem *BossSystem, index *maze.Index, cfg config.Config, logger *slog.Logger) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		dispatcher:      dispatcher,
		bossSystem:      bossSystem,
		index:           index,
		hitboxScale:     cfg.Collision.HitboxScale,
		contactDamage:   cfg.Combat.ContactDamage,
		contactCooldown: cfg.Combat.ContactCooldown,
		bounceEpsilon:   cfg.Combat.BounceEpsilon,
		logger:          logger.With("system", "combat"),
	}
}

// SetIndex swaps the wall index after the maze was regenerated or flipped.
func (s *CombatSystem) SetIndex(index *maze.Index) {
	s.index = index
}

// partTarget — часть босса, уязвимая на начало тика
type partTarget struct {
	boss *component.Combatant
	part *component.BossPart
}

// tickTargets is the target set frozen at the start of ResolveTick.
type tickTargets struct {
	combatants []*component.Combatant
	parts      []partTarget
}

func (s *CombatSystem) snapshot() tickTargets {
	var t tickTargets
	s.ecs.Each(func(c *component.Combatant) {
		if !c.Alive {
			return
		}
		t.combatants = append(t.combatants, c)
		if c.Boss == nil {
			return
		}
		for _, p := range c.Boss.Parts {
			if c.Boss.Targetable(p) {
				t.parts = append(t.parts, partTarget{boss: c, part: p})
			}
		}
	})
	return t
}

// ResolveTick tests every live projectile against the opposing targets and walls.
// Targets, including which boss parts are vulnerable, are frozen at the start of the
// call, so no projectile's outcome depends on the order projectiles are visited in.
func (s *CombatSystem) ResolveTick() {
	targets := s.snapshot()
	s.ecs.Each(func(owner *component.Combatant) {
		for _, p := range owner.Projectiles {
			if !p.Alive {
				continue
			}
			if _, beam := p.Behavior.(*component.Beam); beam {
				continue
			}
			if s.hitTargets(p, targets) {
				continue
			}
			s.hitWalls(p)
		}
	})
}

// hitTargets applies at most one hit to p and reports whether it hit anything.
func (s *CombatSystem) hitTargets(p *component.Projectile, t tickTargets) bool {
	box := p.Box()

	// Сначала части боссов
	for _, pt := range t.parts {
		if !p.Faction.Opposes(pt.boss.Faction) {
			continue
		}
		key := component.HitKey{Handle: pt.boss.Handle, Part: pt.part.ID}
		if !p.CanHit(key) || !box.Overlaps(pt.part.Box(pt.boss.X, pt.boss.Y, s.hitboxScale)) {
			continue
		}
		s.bossSystem.DamageComponent(pt.boss, pt.part.ID, p.Damage)
		p.Consume(key)
		return true
	}

	// Первое попадание выигрывает
	for _, c := range t.combatants {
		if !p.Faction.Opposes(c.Faction) {
			continue
		}
		key := component.HitKey{Handle: c.Handle}
		if !p.CanHit(key) || !box.Overlaps(c.HitBox(s.hitboxScale)) {
			continue
		}
		if c.Boss == nil {
			ApplyDamage(s.dispatcher, c, p.Damage)
		}
		// Корпус босса поглощает снаряд без урона
		p.Consume(key)
		return true
	}
	return false
}

func (s *CombatSystem) hitWalls(p *component.Projectile) {
	if s.index == nil {
		return
	}
	hits := s.index.Hits(p.X, p.Y, p.Size, p.Size)
	if len(hits) == 0 {
		return
	}
	switch b := p.Behavior.(type) {
	case *component.Bounce:
		flipX, flipY := reflectionAxes(p, hits)
		if flipX || flipY {
			reflect(p, b, flipX, flipY, s.bounceEpsilon)
		}
	case *component.Straight:
		p.Alive = false
	case *component.Pierce:
		if b.StopsAtWalls {
			p.Alive = false
		}
	case *component.Homing:
		if b.StopsAtWalls {
			p.Alive = false
		}
	}
}

// reflectionAxes picks the velocity components to flip for the walls p overlaps.
// A vertical wall flips dx, a horizontal one dy, a corner both. Walls the projectile
// is already moving away from are ignored so a shot never bounces twice off one wall.
func reflectionAxes(p *component.Projectile, hits []maze.Segment) (flipX, flipY bool) {
	for _, seg := range hits {
		switch seg.Orientation {
		case maze.Vertical:
			if (seg.A.X-p.X)*p.VX > 0 {
				flipX = true
			}
		case maze.Horizontal:
			if (seg.A.Y-p.Y)*p.VY > 0 {
				flipY = true
			}
		}
	}
	return flipX, flipY
}

// ResolveContacts applies contact damage between overlapping opposing combatants.
// Each side takes the other's contact damage unless it is still on cooldown.
func (s *CombatSystem) ResolveContacts(deltaTime float64) {
	var live []*component.Combatant
	s.ecs.Each(func(c *component.Combatant) {
		if c.ContactCooldown > 0 {
			c.ContactCooldown -= deltaTime
		}
		if c.Alive {
			live = append(live, c)
		}
	})

	pending := make(map[*component.Combatant]int)
	for i, a := range live {
		for _, b := range live[i+1:] {
			if !a.Faction.Opposes(b.Faction) {
				continue
			}
			if !a.HitBox(s.hitboxScale).Overlaps(b.HitBox(s.hitboxScale)) {
				continue
			}
			if a.ContactCooldown <= 0 {
				pending[a] += s.contactFrom(b)
			}
			if b.ContactCooldown <= 0 {
				pending[b] += s.contactFrom(a)
			}
		}
	}
	// Порядок обхода live, чтобы события шли детерминированно
	for _, c := range live {
		dmg, ok := pending[c]
		if !ok {
			continue
		}
		c.ContactCooldown = s.contactCooldown
		ApplyDamage(s.dispatcher, c, dmg)
	}
}

func (s *CombatSystem) contactFrom(c *component.Combatant) int {
	if c.ContactDamage > 0 {
		return c.ContactDamage
	}
	return s.contactDamage
}

// FireBeam creates a beam for owner and applies its damage immediately. The beam ends
// at the nearest opposing target within spec.Range, or at the forward point at that
// range when nothing is in reach. A boss target takes the damage on its nearest
// vulnerable part; with none open the hull absorbs it.
func (s *CombatSystem) FireBeam(owner *component.Combatant, spec ProjectileSpec) *component.Projectile {
	beam := &component.Beam{StartX: spec.X, StartY: spec.Y}
	beam.EndX = spec.X + math.Cos(spec.Heading)*spec.Range
	beam.EndY = spec.Y + math.Sin(spec.Heading)*spec.Range

	if h := AcquireTarget(s.ecs, spec.X, spec.Y, owner.Faction, spec.Range); !h.IsNil() {
		target := s.ecs.Get(h)
		beam.Target = h
		beam.EndX, beam.EndY = target.X, target.Y
		if target.Boss != nil {
			if part := s.nearestPart(target, spec.X, spec.Y); part != nil {
				beam.EndX, beam.EndY = target.X+part.OffsetX, target.Y+part.OffsetY
				s.bossSystem.DamageComponent(target, part.ID, spec.Damage)
			}
		} else {
			ApplyDamage(s.dispatcher, target, spec.Damage)
		}
	}
	if beam.Target.IsNil() {
		s.logger.Debug("beam found no target", "owner", owner.Handle, "weapon", spec.WeaponID)
	}
	beam.Applied = true

	p := &component.Projectile{
		X:        spec.X,
		Y:        spec.Y,
		Lifetime: spec.Lifetime,
		Damage:   spec.Damage,
		Size:     spec.Size,
		Faction:  owner.Faction,
		Owner:    owner.Handle,
		WeaponID: spec.WeaponID,
		Behavior: beam,
		Alive:    true,
	}
	owner.Projectiles = append(owner.Projectiles, p)
	return p
}

func (s *CombatSystem) nearestPart(boss *component.Combatant, x, y float64) *component.BossPart {
	var best *component.BossPart
	bestDist := math.Inf(1)
	for _, p := range boss.Boss.Parts {
		if !boss.Boss.Targetable(p) {
			continue
		}
		if d := utils.DistSq(x, y, boss.X+p.OffsetX, boss.Y+p.OffsetY); d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

