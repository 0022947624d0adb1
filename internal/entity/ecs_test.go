package entity

import (
	"testing"

	"go-maze-defense/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGetRemove(t *testing.T) {
	ecs := NewECS()
	a := &component.Combatant{Alive: true}
	h := ecs.Add(a)

	assert.False(t, h.IsNil())
	assert.Same(t, a, ecs.Get(h))
	assert.Same(t, a, ecs.Live(h))
	assert.Equal(t, 1, ecs.Count())

	require.True(t, ecs.Remove(h))
	assert.Nil(t, ecs.Get(h))
	assert.False(t, ecs.Remove(h))
	assert.Equal(t, 0, ecs.Count())
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	ecs := NewECS()
	old := ecs.Add(&component.Combatant{Alive: true})
	ecs.Remove(old)

	b := &component.Combatant{Alive: true}
	fresh := ecs.Add(b)

	assert.Equal(t, old.Index, fresh.Index)
	assert.NotEqual(t, old.Gen, fresh.Gen)
	assert.Nil(t, ecs.Get(old))
	assert.Same(t, b, ecs.Get(fresh))
}

func TestLiveIgnoresDead(t *testing.T) {
	ecs := NewECS()
	h := ecs.Add(&component.Combatant{Alive: false})
	assert.NotNil(t, ecs.Get(h))
	assert.Nil(t, ecs.Live(h))
}

func TestSweepWaitsForProjectiles(t *testing.T) {
	ecs := NewECS()
	shot := &component.Projectile{Alive: true}
	dead := &component.Combatant{Alive: false, Projectiles: []*component.Projectile{shot}}
	h := ecs.Add(dead)
	alive := ecs.Add(&component.Combatant{Alive: true})

	assert.Empty(t, ecs.Sweep())
	assert.NotNil(t, ecs.Get(h))

	shot.Alive = false
	assert.Equal(t, 1, len(ecs.Sweep()))
	assert.Nil(t, ecs.Get(h))
	assert.NotNil(t, ecs.Get(alive))
}

func TestByFactionAndOrder(t *testing.T) {
	ecs := NewECS()
	e1 := ecs.Add(&component.Combatant{Alive: true, Faction: component.FactionEnemy})
	ecs.Add(&component.Combatant{Alive: true, Faction: component.FactionPlayer})
	e2 := ecs.Add(&component.Combatant{Alive: true, Faction: component.FactionEnemy})
	ecs.Add(&component.Combatant{Alive: false, Faction: component.FactionEnemy})

	enemies := ecs.ByFaction(component.FactionEnemy)
	require.Len(t, enemies, 2)
	assert.Equal(t, e1, enemies[0].Handle)
	assert.Equal(t, e2, enemies[1].Handle)
	assert.Len(t, ecs.Combatants(), 4)
}
