// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	game "go-maze-defense/internal/app"
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/system"
	"go-maze-defense/internal/ui"
	"go-maze-defense/pkg/render"
)

const (
	hudTop        = 60
	clickCooldown = 150 * time.Millisecond
	buttonSize    = 10
)

var weaponKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — основное состояние: ввод, симуляция и отрисовка одной партии.
type GameState struct {
	sm      *StateMachine
	game    *game.Game
	logger  *slog.Logger
	cfg     config.Config
	library *defs.Library
	face    font.Face

	offsetX, offsetY float64
	renderer         *render.MazeRenderer
	renderSystem     *system.RenderSystem

	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	waveIndicator *ui.WaveIndicator
	craftHealth   *ui.HealthIndicator
	reactorHealth *ui.HealthIndicator
	weapons       *ui.WeaponIndicator

	message       string
	messageExpiry time.Time
}

func NewGameState(sm *StateMachine, cfg config.Config, lib *defs.Library, logger *slog.Logger) (*GameState, error) {
	g, err := game.NewGame(cfg, lib, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	w, h := cfg.ArenaSize()
	offsetX := max((config.ScreenWidth-w)/2, 0)
	offsetY := max((config.ScreenHeight-h)/2, hudTop)

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		WallColor:       config.WallColor,
		BoundaryColor:   config.BoundaryColor,
		SpawnColor:      config.EnemyColor,
		ReactorColor:    config.ReactorColor,
		StrokeWidth:     float32(cfg.Collision.WallThickness),
	}
	face := basicfont.Face7x13

	gs := &GameState{
		sm:           sm,
		game:         g,
		logger:       g.Logger,
		cfg:          cfg,
		library:      lib,
		face:         face,
		offsetX:      offsetX,
		offsetY:      offsetY,
		renderer:     render.NewMazeRenderer(cfg.Arena.TileSize, offsetX, offsetY, mapColors),
		renderSystem: system.NewRenderSystem(g.ECS, float32(offsetX), float32(offsetY)),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		speedButton: ui.NewSpeedButton(float32(config.ScreenWidth-config.IndicatorOffsetX*3), float32(config.IndicatorOffsetX), buttonSize,
			[]color.RGBA{config.BuildStateColor, config.TurretColor, config.WaveStateColor}),
		pauseButton:   ui.NewPauseButton(float32(config.ScreenWidth-config.IndicatorOffsetX*5), float32(config.IndicatorOffsetX), buttonSize, config.BuildStateColor, config.ClearedColor),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.IndicatorOffsetX+4, face),
		craftHealth:   ui.NewHealthIndicator(20, 12, "CRAFT", config.PlayerColor, face),
		reactorHealth: ui.NewHealthIndicator(20, 32, "REACTOR", config.ReactorColor, face),
		weapons:       ui.NewWeaponIndicator(20, float32(config.ScreenHeight-36), face),
	}
	gs.redrawMap()
	return gs, nil
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}

	g.handleKeys(deltaTime)
	g.handleMouse()

	g.game.Update(deltaTime)

	st := g.game.State()
	if st.GameOver || st.Phase == component.PhaseAllCleared {
		g.logger.Info("session finished", "won", !st.GameOver, "score", st.Score, "kills", st.Kills, "wave", st.Wave+1)
		g.sm.SetState(NewMenuState(g.sm, g.cfg, g.library, g.logger, &st))
	}
}

func (g *GameState) handleKeys(deltaTime float64) {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	g.game.MovePlayer(dx, dy, deltaTime)

	if p := g.game.Player(); p != nil {
		for i, key := range weaponKeys {
			if i < len(p.Arsenal) && inpututil.IsKeyJustPressed(key) {
				g.game.SelectWeapon(p.Arsenal[i].Def.ID)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.game.SkipBuild() {
		g.indicator.HandleClick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.game.RegenerateMaze(); err != nil {
			g.flash(err.Error())
		} else {
			g.redrawMap()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		x, y := g.cursorWorld()
		if err := g.game.FlipCell(g.game.Grid.CellAt(x, y, g.cfg.Arena.TileSize)); err != nil {
			g.flash(err.Error())
		} else {
			g.redrawMap()
		}
	}
}

func (g *GameState) handleMouse() {
	mx, my := ebiten.CursorPosition()
	fx, fy := float32(mx), float32(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.handleUIClick(fx, fy) {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !g.isClickOnUI(fx, fy) {
		x, y := g.cursorWorld()
		g.game.FirePlayer(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := g.cursorWorld()
		if _, err := g.game.PlaceTurretAt(x, y); err != nil {
			g.flash(err.Error())
		}
	}
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(mx, my float32) bool {
	return g.indicator.IsClicked(mx, my) || g.speedButton.IsClicked(mx, my) || g.pauseButton.IsClicked(mx, my)
}

// handleUIClick обрабатывает клики по UI и сообщает, был ли клик поглощён
func (g *GameState) handleUIClick(mx, my float32) bool {
	switch {
	case g.speedButton.IsClicked(mx, my):
		if time.Since(g.speedButton.LastToggleTime) >= clickCooldown {
			g.game.HandleSpeedClick()
			g.speedButton.ToggleState()
		}
	case g.pauseButton.IsClicked(mx, my):
		if time.Since(g.pauseButton.LastToggleTime) >= clickCooldown {
			g.pause()
		}
	case g.indicator.IsClicked(mx, my):
		if time.Since(g.indicator.LastClickTime) >= clickCooldown && g.game.SkipBuild() {
			g.indicator.HandleClick()
		}
	default:
		return false
	}
	return true
}

func (g *GameState) pause() {
	g.game.HandlePauseClick()
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g, g.face))
}

func (g *GameState) cursorWorld() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	return float64(mx) - g.offsetX, float64(my) - g.offsetY
}

func (g *GameState) redrawMap() {
	g.renderer.RenderMapImage(g.game.Grid, g.game.Segments(), g.game.SpawnCells(), g.game.ReactorCell())
}

func (g *GameState) flash(msg string) {
	g.message = msg
	g.messageExpiry = time.Now().Add(2 * time.Second)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.renderSystem)

	st := g.game.State()
	g.indicator.Draw(screen, g.game.WaveSystem.Phase())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, st.Wave+1, g.game.WaveSystem.WaveCount(), g.bossWave(st.Wave))

	if p := g.game.Player(); p != nil {
		g.craftHealth.Draw(screen, p.Health, p.MaxHealth)
		g.weapons.Draw(screen, p.Arsenal, p.Weapon)
	} else {
		g.craftHealth.Draw(screen, 0, g.cfg.Player.Health)
	}
	if r := g.game.Reactor(); r != nil {
		g.reactorHealth.Draw(screen, r.Health, r.MaxHealth)
	} else {
		g.reactorHealth.Draw(screen, 0, g.cfg.Reactor.Health)
	}

	status := fmt.Sprintf("SCORE %d   CREDITS %d   KILLS %d", st.Score, st.Currency, st.Kills)
	if left := g.game.WaveSystem.BuildRemaining(); left > 0 {
		status += fmt.Sprintf("   BUILD %.0fs  [SPACE] start  [RMB] turret $%d", left.Seconds(), g.cfg.Turret.Cost)
	}
	text.Draw(screen, status, g.face, 360, 22, config.TextLightColor)
	if g.message != "" && time.Now().Before(g.messageExpiry) {
		text.Draw(screen, g.message, g.face, 360, 42, config.WaveStateColor)
	}
}

func (g *GameState) bossWave(wave int) bool {
	if wave < 0 || wave >= len(g.library.Waves) {
		return false
	}
	for _, grp := range g.library.Waves[wave].Groups {
		if def, ok := g.library.Enemies[grp.EnemyID]; ok && def.Boss != nil {
			return true
		}
	}
	return false
}

func (g *GameState) Exit() {}

// GetGame используется PauseState, чтобы снять паузу с симуляции.
func (g *GameState) GetGame() *game.Game {
	return g.game
}
