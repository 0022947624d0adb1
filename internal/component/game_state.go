// internal/component/game_state.go
package component

// GameState — счёт, валюта и текущая фаза для отображения
type GameState struct {
	Phase    WavePhase
	Wave     int
	Score    int
	Currency int
	Kills    int
	GameOver bool
}
