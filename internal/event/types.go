// internal/event/types.go
package event

import (
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/types"
)

const (
	CombatantDestroyed EventType = "CombatantDestroyed" // Боец уничтожен
	BossPartDestroyed  EventType = "BossPartDestroyed"
	BossPhaseChanged   EventType = "BossPhaseChanged"
	BuildStarted       EventType = "BuildStarted" // Началась фаза строительства
	WaveStarted        EventType = "WaveStarted"
	EnemySpawned       EventType = "EnemySpawned"
	WaveCleared        EventType = "WaveCleared" // Волна зачищена, выдана награда
	AllWavesCleared    EventType = "AllWavesCleared"
	TurretPlaced       EventType = "TurretPlaced"
)

// DeathEvent is the payload of CombatantDestroyed.
type DeathEvent struct {
	Handle        types.Handle
	Kind          component.Kind
	Faction       component.Faction
	DefID         string
	ScoreDelta    int
	CurrencyDelta int
	// Explosion request
	X, Y, Size float64
}

// BossPartEvent is the payload of BossPartDestroyed.
type BossPartEvent struct {
	Boss   types.Handle
	PartID string
	X, Y   float64
}

// BossPhaseEvent is the payload of BossPhaseChanged.
type BossPhaseEvent struct {
	Boss   types.Handle
	Phase  int
	Weapon string
}

// WaveEvent is the payload of the wave cycle events. Wave is zero-based.
type WaveEvent struct {
	Wave     int
	Reward   int
	BuildFor float64 // Секунды, только для BuildStarted
}

// SpawnEvent is the payload of EnemySpawned.
type SpawnEvent struct {
	Handle  types.Handle
	EnemyID string
	Wave    int
	Group   int
}

// TurretEvent is the payload of TurretPlaced.
type TurretEvent struct {
	Handle   types.Handle
	Col, Row int
	Cost     int
}
