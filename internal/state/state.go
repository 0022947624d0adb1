// internal/state/state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — экран приложения: меню, игра, пауза
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Exit старого вызывается до Enter нового.
type StateMachine struct {
	current State
	logger  *slog.Logger
}

func NewStateMachine(logger *slog.Logger) *StateMachine {
	return &StateMachine{logger: logger}
}

func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.logger.Debug("state changed", "from", stateName(sm.current), "to", stateName(newState))
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
