// internal/defs/waves.go
package defs

// SpawnGroup spawns Count enemies of one type, one per SpawnDelayMs, then waits GroupDelayMs.
type SpawnGroup struct {
	EnemyID      string `json:"enemy_id"`
	Count        int    `json:"count"`
	SpawnDelayMs int    `json:"spawn_delay_ms"`
	GroupDelayMs int    `json:"group_delay_ms"`
	SpawnPoint   int    `json:"spawn_point"` // Index into waves.spawn_points
}

// WaveDefinition описывает одну волну: упорядоченный список групп.
type WaveDefinition struct {
	Groups []SpawnGroup `json:"groups"`
}
