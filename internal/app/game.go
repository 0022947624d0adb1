// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/entity"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/system"
	"go-maze-defense/internal/types"
	"go-maze-defense/internal/utils"
	"go-maze-defense/pkg/maze"
)

var (
	ErrUnknownCombatant  = errors.New("unknown or destroyed combatant")
	ErrNoSpawnPath       = errors.New("spawn point has no path to the reactor")
	ErrNotBuildPhase     = errors.New("turrets can only be placed during the build phase")
	ErrCellBlocked       = errors.New("cell is not a path cell")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrCellOnRoute       = errors.New("cell lies on an enemy route")
	ErrInsufficientFunds = errors.New("not enough currency")
)

// maxSpeedMultiplier — предел ускорения симуляции (1x → 2x → 4x → 1x)
const maxSpeedMultiplier = 4

// tickEpsilon absorbs float drift so that n·FixedStep of input yields n ticks.
const tickEpsilon = 1e-9

// Game owns one running simulation: the maze, every combatant and the systems that
// advance them. It has no rendering or input dependencies.
type Game struct {
	Config  config.Config
	Library *defs.Library
	Logger  *slog.Logger

	// SessionID identifies this run in logs.
	SessionID uuid.UUID
	Rng       *utils.PRNGService

	Grid  *maze.Grid
	Index *maze.Index

	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher

	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	BossSystem         *system.BossSystem
	CombatSystem       *system.CombatSystem
	WeaponSystem       *system.WeaponSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	PlayerID  types.Handle
	ReactorID types.Handle

	reactorCell maze.Cell
	spawnCells  []maze.Cell
	spawnPaths  [][]maze.Cell

	gameTime        float64
	accumulator     float64 // несыгранный остаток времени, меньше одного тика
	isPaused        bool
	SpeedMultiplier float64
}

// NewGame validates cfg and lib, generates the maze, places the player craft and the
// reactor and starts the wave orchestrator in its first build phase.
func NewGame(cfg config.Config, lib *defs.Library, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}

	rng := utils.NewPRNGService(cfg.Arena.Seed)
	g := &Game{
		Config:          cfg,
		Library:         lib,
		SessionID:       uuid.New(),
		Rng:             rng,
		ECS:             entity.NewECS(),
		EventDispatcher: event.NewDispatcher(),
		SpeedMultiplier: 1,
	}
	g.Logger = logger.With("session", g.SessionID.String())

	g.Grid = maze.Generate(cfg.Arena.Rows, cfg.Arena.Cols, rng.Rand())
	g.Index = maze.NewIndex(maze.ExtractWallSegments(g.Grid, cfg.Arena.TileSize), cfg.Collision.WallThickness, cfg.Collision.MinWallThickness)

	g.MovementSystem = system.NewMovementSystem(g.ECS, g.Grid, g.Index, cfg)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, cfg)
	g.BossSystem = system.NewBossSystem(g.EventDispatcher, lib.Weapons, g.Logger)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.EventDispatcher, g.BossSystem, g.Index, cfg, g.Logger)
	g.WeaponSystem = system.NewWeaponSystem(g.ECS, g.CombatSystem, cfg.Arena.TileSize, g.Logger)
	g.StateSystem = system.NewStateSystem(g.ECS, g.EventDispatcher, cfg.Waves.StartingCurrency, g.Logger)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.ECS, g.EventDispatcher)
	g.WaveSystem = system.NewWaveSystem(g.ECS, g.EventDispatcher, g, lib, cfg.Waves, g.Logger)

	g.reactorCell = g.resolveCell(cfg.Reactor.Cell)
	g.spawnCells = make([]maze.Cell, len(cfg.Waves.SpawnPoints))
	for i, sp := range cfg.Waves.SpawnPoints {
		g.spawnCells[i] = g.resolveCell(sp)
	}
	g.computeSpawnPaths()

	if err := g.createPlayerEntity(); err != nil {
		return nil, err
	}
	g.createReactorEntity()

	if err := g.WaveSystem.Start(); err != nil {
		return nil, err
	}
	g.Logger.Info("game created",
		"seed", rng.Seed(),
		"rows", g.Grid.Rows,
		"cols", g.Grid.Cols,
		"segments", len(g.Index.Segments()),
		"waves", len(lib.Waves))
	return g, nil
}

// Update advances the simulation by deltaTime seconds of wall time. The time is
// played out as whole ticks of config.FixedStep; SpeedMultiplier runs more ticks,
// never longer ones. A remainder shorter than one tick carries over to the next call.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.ECS.GameState.GameOver {
		return
	}
	g.accumulator += deltaTime * g.SpeedMultiplier
	for g.accumulator+tickEpsilon >= config.FixedStep {
		g.accumulator -= config.FixedStep
		g.tick(config.FixedStep)
		if g.ECS.GameState.GameOver {
			g.accumulator = 0
			return
		}
	}
}

// tick runs one simulation step. Systems run in a fixed order: weapons, movement,
// projectile kinematics, hit resolution, contact damage, cleanup, waves and finally
// visual effects.
func (g *Game) tick(dt float64) {
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.WeaponSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.CombatSystem.ResolveTick()
	g.CombatSystem.ResolveContacts(dt)
	g.cleanupDestroyedEntities()
	g.WaveSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
}

func (g *Game) cleanupDestroyedEntities() {
	if removed := g.ECS.Sweep(); len(removed) > 0 {
		g.Logger.Debug("combatants removed", "count", len(removed), "live", g.ECS.Count())
	}
}

// resolveCell clamps a configured cell into the grid and snaps it to the nearest
// path cell.
func (g *Game) resolveCell(cc config.CellConfig) maze.Cell {
	c := maze.Cell{
		Col: min(max(cc.Col, 0), g.Grid.Cols-1),
		Row: min(max(cc.Row, 0), g.Grid.Rows-1),
	}
	if nearest, ok := g.Grid.Nearest(c); ok {
		return nearest
	}
	return maze.Origin
}

func (g *Game) computeSpawnPaths() {
	g.spawnPaths = make([][]maze.Cell, len(g.spawnCells))
	for i, c := range g.spawnCells {
		g.spawnPaths[i] = maze.AStar(c, g.reactorCell, g.Grid)
		if g.spawnPaths[i] == nil {
			g.Logger.Warn("spawn point cannot reach the reactor", "spawn_point", i, "cell", c)
		}
	}
}

func (g *Game) createPlayerEntity() error {
	pc := g.Config.Player
	start := g.resolveCell(pc.Start)
	x, y := maze.CellCenter(start, g.Config.Arena.TileSize)

	craft := &component.Combatant{
		Kind:      component.KindCraft,
		Faction:   component.FactionPlayer,
		Control:   component.ControlPlayer,
		DefID:     "PLAYER",
		Position:  component.Position{X: x, Y: y},
		Width:     pc.Size,
		Height:    pc.Size,
		Speed:     pc.Speed,
		Health:    pc.Health,
		MaxHealth: pc.Health,
		Alive:     true,
		Render:    component.Renderable{Color: config.PlayerColor, Radius: float32(pc.Size / 2), HasStroke: true},
	}
	for _, id := range pc.Weapons {
		def, ok := g.Library.Weapons[id]
		if !ok {
			return fmt.Errorf("player arsenal: %w: %s", defs.ErrUnknownWeapon, id)
		}
		craft.Arsenal = append(craft.Arsenal, &component.Weapon{Def: def})
	}
	if len(craft.Arsenal) > 0 {
		craft.Weapon = craft.Arsenal[0]
	}
	g.PlayerID = g.ECS.Add(craft)
	return nil
}

func (g *Game) createReactorEntity() {
	rc := g.Config.Reactor
	x, y := maze.CellCenter(g.reactorCell, g.Config.Arena.TileSize)
	g.ReactorID = g.ECS.Add(&component.Combatant{
		Kind:      component.KindReactor,
		Faction:   component.FactionPlayer,
		Control:   component.ControlStationary,
		DefID:     "REACTOR",
		Position:  component.Position{X: x, Y: y},
		Width:     rc.Size,
		Height:    rc.Size,
		Health:    rc.Health,
		MaxHealth: rc.Health,
		Alive:     true,
		Render:    component.Renderable{Color: config.ReactorColor, Radius: float32(rc.Size / 2), HasStroke: true},
	})
}

// --- Public Accessors & Mutators ---

// Player returns the player craft, or nil once it is destroyed.
func (g *Game) Player() *component.Combatant {
	return g.ECS.Live(g.PlayerID)
}

func (g *Game) Reactor() *component.Combatant {
	return g.ECS.Live(g.ReactorID)
}

// State is a copy of the score ledger.
func (g *Game) State() component.GameState {
	return g.StateSystem.Current()
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

func (g *Game) Segments() []maze.Segment {
	return g.Index.Segments()
}

// SpawnCells returns the resolved spawn cells in spawn point order.
func (g *Game) SpawnCells() []maze.Cell {
	return g.spawnCells
}

func (g *Game) ReactorCell() maze.Cell {
	return g.reactorCell
}

// MovePlayer moves the craft along the input direction for deltaTime seconds.
func (g *Game) MovePlayer(dx, dy, deltaTime float64) {
	if g.isPaused {
		return
	}
	g.MovementSystem.MovePlayer(g.Player(), dx, dy, deltaTime*g.SpeedMultiplier)
}

// FirePlayer fires the craft's selected weapon towards (x, y).
func (g *Game) FirePlayer(x, y float64) bool {
	p := g.Player()
	if p == nil || g.isPaused {
		return false
	}
	return g.WeaponSystem.Fire(p, "", math.Atan2(y-p.Y, x-p.X))
}

// SelectWeapon switches the craft to weaponID from its arsenal.
func (g *Game) SelectWeapon(weaponID string) bool {
	p := g.Player()
	if p == nil {
		return false
	}
	return g.WeaponSystem.SelectWeapon(p, weaponID)
}

// SkipBuild ends the build countdown early.
func (g *Game) SkipBuild() bool {
	return g.WaveSystem.SkipBuild()
}

func (g *Game) HandleSpeedClick() {
	g.SpeedMultiplier *= 2
	if g.SpeedMultiplier > maxSpeedMultiplier {
		g.SpeedMultiplier = 1
	}
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}
