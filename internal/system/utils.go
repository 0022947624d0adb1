// internal/system/utils.go
package system

import (
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/event"
)

// DamageFlashDuration — длительность вспышки при получении урона, секунды
const DamageFlashDuration = 0.12

// ApplyDamage наносит урон бойцу: health -= amount, при health <= 0 боец погибает.
// Урон копится и после смерти в том же тике, но событие смерти отправляется один раз.
// Возвращает true, если боец погиб именно сейчас. Боссы получают урон только по частям.
func ApplyDamage(dispatcher *event.Dispatcher, c *component.Combatant, amount int) bool {
	if c == nil || c.Boss != nil || amount <= 0 {
		return false
	}
	c.Health -= amount
	c.Flash = &component.DamageFlash{Timer: DamageFlashDuration, Duration: DamageFlashDuration}
	if c.Health > 0 || !c.Alive {
		return false
	}
	kill(dispatcher, c)
	return true
}

// kill помечает бойца мёртвым и рассылает событие смерти.
func kill(dispatcher *event.Dispatcher, c *component.Combatant) {
	c.Alive = false
	if dispatcher == nil {
		return
	}
	dispatcher.Dispatch(event.Event{Type: event.CombatantDestroyed, Data: event.DeathEvent{
		Handle:        c.Handle,
		Kind:          c.Kind,
		Faction:       c.Faction,
		DefID:         c.DefID,
		ScoreDelta:    c.Score,
		CurrencyDelta: c.Currency,
		X:             c.X,
		Y:             c.Y,
		Size:          c.Width,
	}})
}
