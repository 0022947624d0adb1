// internal/state/menu_state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
)

// MenuState — стартовый экран и экран итогов партии. SPACE начинает новую партию.
type MenuState struct {
	sm      *StateMachine
	cfg     config.Config
	library *defs.Library
	logger  *slog.Logger
	face    font.Face

	// Итог прошлой партии, nil на старте
	last *component.GameState
	err  error
}

func NewMenuState(sm *StateMachine, cfg config.Config, lib *defs.Library, logger *slog.Logger, last *component.GameState) *MenuState {
	return &MenuState{
		sm:      sm,
		cfg:     cfg,
		library: lib,
		logger:  logger,
		face:    basicfont.Face7x13,
		last:    last,
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.cfg, m.library, m.logger)
	if err != nil {
		m.err = err
		m.logger.Error("failed to start game", "err", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	lines := []string{"MAZE DEFENSE", "", "WASD move   LMB fire   1-5 weapon   RMB turret   SPACE start wave   P pause"}
	if m.last != nil {
		outcome := "REACTOR LOST"
		if !m.last.GameOver {
			outcome = "ALL WAVES CLEARED"
		}
		lines = append(lines, "", outcome, fmt.Sprintf("score %d   kills %d   wave %d", m.last.Score, m.last.Kills, m.last.Wave+1))
	}
	lines = append(lines, "", "press SPACE to start")
	if m.err != nil {
		lines = append(lines, "", m.err.Error())
	}

	y := config.ScreenHeight/2 - len(lines)*config.HUDLineHeight/2
	for _, line := range lines {
		bounds := text.BoundString(m.face, line)
		text.Draw(screen, line, m.face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}

func (m *MenuState) Exit() {}
