// internal/entity/ecs.go
package entity

import (
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/types"
)

type slot struct {
	gen uint32
	c   *component.Combatant
}

// ECS — арена бойцов. Хэндлы проверяются по поколению слота, поэтому
// ссылка на удалённого бойца никогда не указывает на нового.
type ECS struct {
	GameTime   float64
	slots      []slot
	free       []uint32
	count      int
	Explosions []*component.Explosion
	GameState  *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		GameState: &component.GameState{Phase: component.PhaseIdle},
	}
}

// Add stores c and assigns its handle.
func (e *ECS) Add(c *component.Combatant) types.Handle {
	var idx uint32
	if n := len(e.free); n > 0 {
		idx = e.free[n-1]
		e.free = e.free[:n-1]
	} else {
		idx = uint32(len(e.slots))
		e.slots = append(e.slots, slot{})
	}
	s := &e.slots[idx]
	s.gen++
	s.c = c
	e.count++
	c.Handle = types.Handle{Index: idx, Gen: s.gen}
	return c.Handle
}

// Get returns the combatant behind h, dead or alive, or nil if h is stale.
func (e *ECS) Get(h types.Handle) *component.Combatant {
	if h.IsNil() || int(h.Index) >= len(e.slots) {
		return nil
	}
	s := e.slots[h.Index]
	if s.gen != h.Gen || s.c == nil {
		return nil
	}
	return s.c
}

// Live is Get restricted to alive combatants.
func (e *ECS) Live(h types.Handle) *component.Combatant {
	if c := e.Get(h); c != nil && c.Alive {
		return c
	}
	return nil
}

// Remove frees the slot. The handle and all its copies become stale.
func (e *ECS) Remove(h types.Handle) bool {
	if e.Get(h) == nil {
		return false
	}
	e.slots[h.Index].c = nil
	e.free = append(e.free, h.Index)
	e.count--
	return true
}

// Combatants returns every stored combatant in slot order.
func (e *ECS) Combatants() []*component.Combatant {
	out := make([]*component.Combatant, 0, e.count)
	for _, s := range e.slots {
		if s.c != nil {
			out = append(out, s.c)
		}
	}
	return out
}

// Each calls fn for every stored combatant in slot order.
func (e *ECS) Each(fn func(c *component.Combatant)) {
	for _, s := range e.slots {
		if s.c != nil {
			fn(s.c)
		}
	}
}

// ByFaction returns the alive combatants of faction f.
func (e *ECS) ByFaction(f component.Faction) []*component.Combatant {
	var out []*component.Combatant
	e.Each(func(c *component.Combatant) {
		if c.Alive && c.Faction == f {
			out = append(out, c)
		}
	})
	return out
}

// Count is the number of stored combatants.
func (e *ECS) Count() int {
	return e.count
}

// Sweep prunes finished projectiles and removes dead combatants whose projectiles
// have all finished. It returns the removed handles.
func (e *ECS) Sweep() []types.Handle {
	var removed []types.Handle
	for i := range e.slots {
		c := e.slots[i].c
		if c == nil {
			continue
		}
		c.PruneProjectiles()
		if !c.Alive && len(c.Projectiles) == 0 {
			removed = append(removed, c.Handle)
		}
	}
	for _, h := range removed {
		e.Remove(h)
	}
	return removed
}
