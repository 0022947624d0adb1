// internal/interfaces/game_context.go
package interfaces

import "go-maze-defense/internal/types"

// GameContext is what the wave orchestrator needs from the game: a way to put an
// enemy on the arena at a configured spawn point, already routed to the reactor.
type GameContext interface {
	SpawnEnemy(enemyID string, spawnPoint int) (types.Handle, error)
}
