// internal/system/projectile.go
package system

import (
	"math"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/types"
	"go-maze-defense/internal/utils"
)

// ProjectileSpec describes one shot for the projectile factory.
type ProjectileSpec struct {
	X, Y     float64
	Heading  float64 // Радианы
	Damage   int
	Speed    float64
	Lifetime float64
	Size     float64
	Range    float64 // Только для лучей
	WeaponID string
	Behavior component.Behavior
}

// ProjectileSystem двигает снаряды. Попадания разбирает CombatSystem.
type ProjectileSystem struct {
	ecs           *entity.ECS
	width, height float64
	bounceEpsilon float64
}

func NewProjectileSystem(ecs *entity.ECS, cfg config.Config) *ProjectileSystem {
	w, h := cfg.ArenaSize()
	return &ProjectileSystem{
		ecs:           ecs,
		width:         w,
		height:        h,
		bounceEpsilon: cfg.Combat.BounceEpsilon,
	}
}

// NewProjectile creates a live projectile for owner and attaches it to the owner's
// collection. Beams must go through CombatSystem.FireBeam instead.
func NewProjectile(owner *component.Combatant, spec ProjectileSpec) *component.Projectile {
	p := &component.Projectile{
		X:        spec.X,
		Y:        spec.Y,
		VX:       math.Cos(spec.Heading) * spec.Speed,
		VY:       math.Sin(spec.Heading) * spec.Speed,
		Speed:    spec.Speed,
		Lifetime: spec.Lifetime,
		Damage:   spec.Damage,
		Size:     spec.Size,
		Faction:  owner.Faction,
		Owner:    owner.Handle,
		WeaponID: spec.WeaponID,
		Behavior: spec.Behavior,
		Alive:    true,
	}
	if p.Behavior == nil {
		p.Behavior = &component.Straight{}
	}
	owner.Projectiles = append(owner.Projectiles, p)
	return p
}

// Update steps every live projectile, including those of dead owners.
func (s *ProjectileSystem) Update(deltaTime float64) {
	s.ecs.Each(func(c *component.Combatant) {
		for _, p := range c.Projectiles {
			s.Step(p, deltaTime)
		}
	})
}

// Step advances one projectile by deltaTime seconds.
func (s *ProjectileSystem) Step(p *component.Projectile, deltaTime float64) {
	if !p.Alive {
		return
	}
	p.Lifetime -= deltaTime

	switch b := p.Behavior.(type) {
	case *component.Beam:
		// Луч неподвижен, живёт только для отрисовки
		if p.Lifetime <= 0 {
			p.Alive = false
		}
		return
	case *component.Homing:
		s.steer(p, b, deltaTime)
	}

	p.X += p.VX * deltaTime
	p.Y += p.VY * deltaTime

	if p.Lifetime <= 0 {
		p.Alive = false
		return
	}

	outX := p.X < 0 || p.X > s.width
	outY := p.Y < 0 || p.Y > s.height
	if !outX && !outY {
		return
	}
	b, ok := p.Behavior.(*component.Bounce)
	if !ok {
		p.Alive = false
		return
	}
	// Зеркалим позицию обратно через пересечённую границу
	if p.X < 0 {
		p.X = -p.X
	} else if p.X > s.width {
		p.X = 2*s.width - p.X
	}
	if p.Y < 0 {
		p.Y = -p.Y
	} else if p.Y > s.height {
		p.Y = 2*s.height - p.Y
	}
	reflect(p, b, outX, outY, s.bounceEpsilon)
}

func (s *ProjectileSystem) steer(p *component.Projectile, h *component.Homing, deltaTime float64) {
	target := s.ecs.Live(h.Target)
	if target == nil {
		h.Target = AcquireTarget(s.ecs, p.X, p.Y, p.Faction, h.AcquireRange)
		target = s.ecs.Live(h.Target)
	}
	if target == nil {
		return
	}
	desired := math.Atan2(target.Y-p.Y, target.X-p.X)
	heading := utils.TurnToward(math.Atan2(p.VY, p.VX), desired, h.TurnRate*deltaTime)
	p.VX = math.Cos(heading) * p.Speed
	p.VY = math.Sin(heading) * p.Speed
}

// AcquireTarget returns the nearest live combatant opposing faction by squared distance.
// Only a strictly closer candidate replaces the current best, so ties go to the earlier
// slot. maxRange <= 0 means unlimited.
func AcquireTarget(ecs *entity.ECS, x, y float64, faction component.Faction, maxRange float64) types.Handle {
	best := types.NilHandle
	bestDist := math.Inf(1)
	if maxRange > 0 {
		bestDist = maxRange*maxRange + 1e-9
	}
	ecs.Each(func(c *component.Combatant) {
		if !c.Alive || !faction.Opposes(c.Faction) {
			return
		}
		if d := utils.DistSq(x, y, c.X, c.Y); d < bestDist {
			bestDist = d
			best = c.Handle
		}
	})
	return best
}

// reflect flips the chosen velocity components, counts the bounce and nudges the
// projectile along its new velocity. The projectile dies once the budget is exceeded.
func reflect(p *component.Projectile, b *component.Bounce, flipX, flipY bool, epsilon float64) {
	if flipX {
		p.VX = -p.VX
	}
	if flipY {
		p.VY = -p.VY
	}
	b.Used++
	if b.Used > b.Max {
		p.Alive = false
		return
	}
	if speed := math.Hypot(p.VX, p.VY); speed > 0 {
		p.X += p.VX / speed * epsilon
		p.Y += p.VY / speed * epsilon
	}
}
