// internal/system/weapon.go
package system

import (
	"log/slog"
	"math"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/utils"
	"go-maze-defense/pkg/maze"
)

// aimTolerance — допустимое отклонение ствола турели от цели при выстреле, радианы
const aimTolerance = 0.15

// WeaponSystem перезаряжает оружие и стреляет за бойцов под управлением ИИ.
// Игрок стреляет через Fire.
type WeaponSystem struct {
	ecs    *entity.ECS
	combat *CombatSystem
	tile   float64
	logger *slog.Logger
}

func NewWeaponSystem(ecs *entity.ECS, combat *CombatSystem, tile float64, logger *slog.Logger) *WeaponSystem {
	return &WeaponSystem{
		ecs:    ecs,
		combat: combat,
		tile:   tile,
		logger: logger.With("system", "weapon"),
	}
}

func (s *WeaponSystem) Update(deltaTime float64) {
	s.ecs.Each(func(c *component.Combatant) {
		if c.Weapon != nil && c.Weapon.Cooldown > 0 {
			c.Weapon.Cooldown -= deltaTime
		}
		for _, w := range c.Arsenal {
			if w != c.Weapon && w.Cooldown > 0 {
				w.Cooldown -= deltaTime
			}
		}
		if !c.Alive || c.Control == component.ControlPlayer || c.Weapon == nil {
			return
		}
		s.aiFire(c, deltaTime)
	})
}

func (s *WeaponSystem) aiFire(c *component.Combatant, deltaTime float64) {
	def := c.Weapon.Def
	target := s.ecs.Live(AcquireTarget(s.ecs, c.X, c.Y, c.Faction, def.Range))
	if target == nil {
		return
	}

	aim := target.Position
	if def.Variant != defs.VariantBeam && def.Variant != defs.VariantHoming {
		aim = predictPosition(target, c.Position, def.Speed, s.tile)
	}
	heading := math.Atan2(aim.Y-c.Y, aim.X-c.X)

	// Турель сначала доворачивает ствол
	if t := c.Turret; t != nil {
		t.Target = target.Handle
		t.TargetAngle = heading
		t.CurrentAngle = utils.TurnToward(t.CurrentAngle, heading, t.TurnSpeed*deltaTime)
		if math.Abs(utils.AngleDiff(t.CurrentAngle, heading)) > aimTolerance {
			return
		}
		heading = t.CurrentAngle
	}
	if !c.Weapon.Ready() {
		return
	}
	s.fire(c, c.Weapon, heading)
}

// Fire shoots owner's weapon weaponID along heading if it is off cooldown.
// An empty weaponID means the currently selected weapon.
func (s *WeaponSystem) Fire(owner *component.Combatant, weaponID string, heading float64) bool {
	if owner == nil || !owner.Alive {
		return false
	}
	w := owner.Weapon
	if weaponID != "" {
		w = findWeapon(owner, weaponID)
	}
	if w == nil {
		s.logger.Warn("fire with unknown weapon", "owner", owner.Handle, "weapon", weaponID)
		return false
	}
	if !w.Ready() {
		return false
	}
	s.fire(owner, w, heading)
	return true
}

// SelectWeapon makes weaponID from the owner's arsenal the active weapon.
func (s *WeaponSystem) SelectWeapon(owner *component.Combatant, weaponID string) bool {
	if w := findWeapon(owner, weaponID); w != nil {
		owner.Weapon = w
		return true
	}
	return false
}

// Spawn is the projectile factory: beams resolve instantly, everything else flies.
func (s *WeaponSystem) Spawn(owner *component.Combatant, spec ProjectileSpec) *component.Projectile {
	if _, ok := spec.Behavior.(*component.Beam); ok {
		return s.combat.FireBeam(owner, spec)
	}
	return NewProjectile(owner, spec)
}

func (s *WeaponSystem) fire(owner *component.Combatant, w *component.Weapon, heading float64) {
	owner.Heading = heading
	s.Spawn(owner, SpecFromWeapon(w.Def, owner.X, owner.Y, heading))
	w.Cooldown = w.Def.Cooldown
}

// SpecFromWeapon fills a projectile spec from a weapon definition.
func SpecFromWeapon(def defs.WeaponDefinition, x, y, heading float64) ProjectileSpec {
	return ProjectileSpec{
		X:        x,
		Y:        y,
		Heading:  heading,
		Damage:   def.Damage,
		Speed:    def.Speed,
		Lifetime: def.Lifetime,
		Size:     def.Size,
		Range:    def.Range,
		WeaponID: def.ID,
		Behavior: component.NewBehavior(def),
	}
}

func findWeapon(owner *component.Combatant, id string) *component.Weapon {
	if owner.Weapon != nil && owner.Weapon.Def.ID == id {
		return owner.Weapon
	}
	for _, w := range owner.Arsenal {
		if w.Def.ID == id {
			return w
		}
	}
	return nil
}

// predictPosition ищет точку упреждения для цели, идущей по пути.
// Итеративно уточняем время полёта снаряда, пока оно не сойдётся.
func predictPosition(target *component.Combatant, from component.Position, projSpeed, tile float64) component.Position {
	if target.Path.Done() || projSpeed <= 0 || target.Speed <= 0 {
		return target.Position
	}

	const maxIterations = 5
	timeToHit := 0.0
	for iter := 0; iter < maxIterations; iter++ {
		predicted := simulatePathMovement(target.Position, target.Path, target.Speed, timeToHit, tile)
		newTimeToHit := math.Sqrt(utils.DistSq(from.X, from.Y, predicted.X, predicted.Y)) / projSpeed
		if math.Abs(newTimeToHit-timeToHit) < 0.01 {
			return predicted
		}
		timeToHit = newTimeToHit
	}
	return simulatePathMovement(target.Position, target.Path, target.Speed, timeToHit, tile)
}

func simulatePathMovement(start component.Position, path *component.Path, speed, duration, tile float64) component.Position {
	current := start
	remaining := duration
	index := path.CurrentIndex

	for index < len(path.Cells) && remaining > 0 {
		tx, ty := maze.CellCenter(path.Cells[index], tile)
		dx, dy := tx-current.X, ty-current.Y
		distToNext := math.Hypot(dx, dy)
		if distToNext < 0.01 {
			index++
			continue
		}
		timeToNext := distToNext / speed
		if timeToNext >= remaining {
			fraction := remaining / timeToNext
			current.X += dx * fraction
			current.Y += dy * fraction
			break
		}
		current.X, current.Y = tx, ty
		index++
		remaining -= timeToNext
	}
	return current
}
