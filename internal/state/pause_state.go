// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-maze-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var pauseOverlay = color.RGBA{0, 0, 0, 128}

// PauseState замораживает симуляцию и рисует предыдущее состояние под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(float32(mx), float32(my))
	}
	if !unpause {
		return
	}
	// Снимаем паузу с самой симуляции, кнопку отожмёт GameState.Enter
	s.previousState.GetGame().HandlePauseClick()
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, pauseOverlay, false)

	const label = "PAUSED"
	bounds := text.BoundString(s.face, label)
	text.Draw(screen, label, s.face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
