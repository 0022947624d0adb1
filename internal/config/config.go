// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Шаг симуляции. Game.Update проигрывает время только целыми тиками.
const (
	TicksPerSecond = 60
	FixedStep      = 1.0 / TicksPerSecond
)

// Константы окна просмотра. Симуляция их не читает.
const (
	ScreenWidth      = 1200
	ScreenHeight     = 900
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	HUDLineHeight    = 16
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	WallColor        = color.RGBA{150, 70, 70, 220}
	BoundaryColor    = color.RGBA{240, 240, 240, 255}
	BuildStateColor  = color.RGBA{70, 130, 180, 220}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	ClearedColor     = color.RGBA{50, 205, 50, 255}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PlayerColor      = color.RGBA{80, 200, 255, 255}
	ReactorColor     = color.RGBA{50, 205, 50, 255}
	TurretColor      = color.RGBA{255, 215, 0, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	BossColor        = color.RGBA{180, 50, 230, 255}
	DamagedPartColor = color.RGBA{255, 140, 0, 255}
	FlashColor       = color.RGBA{255, 255, 255, 255}
	ExplosionColor   = color.RGBA{255, 200, 80, 160}
	BeamColor        = color.RGBA{255, 255, 0, 200}
	ProjectileColors = map[string]color.RGBA{
		"STRAIGHT": {240, 240, 240, 255},
		"BOUNCE":   {50, 255, 50, 255},
		"PIERCE":   {50, 100, 255, 255},
		"HOMING":   {255, 50, 50, 255},
		"BEAM":     {255, 255, 0, 255},
	}
)

var (
	ErrInvalidArena   = errors.New("invalid arena")
	ErrInvalidCombat  = errors.New("invalid combat settings")
	ErrInvalidWaves   = errors.New("invalid wave settings")
	ErrInvalidPlayer  = errors.New("invalid player settings")
	ErrInvalidReactor = errors.New("invalid reactor settings")
)

// CellConfig addresses a maze cell.
type CellConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// ArenaConfig describes the generated maze.
type ArenaConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	TileSize float64 `yaml:"tile_size"`
	Seed     int64   `yaml:"seed"` // 0 = время
}

// CollisionConfig tunes wall thickness and hit-box shrink.
type CollisionConfig struct {
	WallThickness    float64 `yaml:"wall_thickness"`
	MinWallThickness float64 `yaml:"min_wall_thickness"`
	HitboxScale      float64 `yaml:"hitbox_scale"` // доля визуального бокса, 0.7–0.8
}

// CombatConfig holds contact damage and bounce tuning.
type CombatConfig struct {
	ContactDamage   int     `yaml:"contact_damage"`
	ContactCooldown float64 `yaml:"contact_cooldown"` // секунды
	BounceEpsilon   float64 `yaml:"bounce_epsilon"`
}

// PlayerConfig describes the player craft.
type PlayerConfig struct {
	Health  int        `yaml:"health"`
	Speed   float64    `yaml:"speed"`
	Size    float64    `yaml:"size"`
	Weapons []string   `yaml:"weapons"`
	Start   CellConfig `yaml:"start"`
}

// ReactorConfig describes the defended objective.
type ReactorConfig struct {
	Health int        `yaml:"health"`
	Size   float64    `yaml:"size"`
	Cell   CellConfig `yaml:"cell"`
}

// TurretConfig describes turrets placed during the build phase.
type TurretConfig struct {
	Cost   int     `yaml:"cost"`
	Health int     `yaml:"health"`
	Size   float64 `yaml:"size"`
	Weapon string  `yaml:"weapon"`
}

// WaveConfig paces the build/combat cycle.
type WaveConfig struct {
	BuildPhaseMs     int          `yaml:"build_phase_ms"`
	RewardBase       int          `yaml:"reward_base"`
	RewardPerWave    int          `yaml:"reward_per_wave"`
	StartingCurrency int          `yaml:"starting_currency"`
	SpawnPoints      []CellConfig `yaml:"spawn_points"`
}

// Config is the immutable simulation configuration handed to every constructor.
type Config struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Collision CollisionConfig `yaml:"collision"`
	Combat    CombatConfig    `yaml:"combat"`
	Player    PlayerConfig    `yaml:"player"`
	Reactor   ReactorConfig   `yaml:"reactor"`
	Turret    TurretConfig    `yaml:"turret"`
	Waves     WaveConfig      `yaml:"waves"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Arena: ArenaConfig{Rows: 25, Cols: 33, TileSize: 32},
		Collision: CollisionConfig{
			WallThickness:    4,
			MinWallThickness: 2,
			HitboxScale:      0.75,
		},
		Combat: CombatConfig{
			ContactDamage:   10,
			ContactCooldown: 0.5,
			BounceEpsilon:   0.5,
		},
		Player: PlayerConfig{
			Health:  100,
			Speed:   160,
			Size:    18,
			Weapons: []string{"BLASTER", "RICOCHET", "LANCE", "SEEKER", "RAY"},
			Start:   CellConfig{Col: 0, Row: 0},
		},
		Reactor: ReactorConfig{Health: 500, Size: 28, Cell: CellConfig{Col: 16, Row: 12}},
		Turret:  TurretConfig{Cost: 50, Health: 60, Size: 20, Weapon: "TURRET_GUN"},
		Waves: WaveConfig{
			BuildPhaseMs:     30000,
			RewardBase:       100,
			RewardPerWave:    25,
			StartingCurrency: 150,
			SpawnPoints: []CellConfig{
				{Col: 32, Row: 0},
				{Col: 0, Row: 24},
				{Col: 32, Row: 24},
			},
		},
	}
}

// Load reads a YAML file and overlays it on Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
// Arena dimensions are not checked here: degenerate sizes collapse to a 1x1 maze.
func (c Config) Validate() error {
	if c.Arena.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size must be positive, got %v", ErrInvalidArena, c.Arena.TileSize)
	}
	if c.Collision.HitboxScale <= 0 || c.Collision.HitboxScale > 1 {
		return fmt.Errorf("%w: hitbox_scale must be in (0,1], got %v", ErrInvalidCombat, c.Collision.HitboxScale)
	}
	if c.Combat.ContactDamage < 0 || c.Combat.ContactCooldown < 0 {
		return fmt.Errorf("%w: contact damage and cooldown must not be negative", ErrInvalidCombat)
	}
	if c.Waves.BuildPhaseMs < 0 {
		return fmt.Errorf("%w: build_phase_ms must not be negative", ErrInvalidWaves)
	}
	if len(c.Waves.SpawnPoints) == 0 {
		return fmt.Errorf("%w: at least one spawn point is required", ErrInvalidWaves)
	}
	if c.Player.Health <= 0 || c.Player.Size <= 0 {
		return fmt.Errorf("%w: health and size must be positive", ErrInvalidPlayer)
	}
	if c.Reactor.Health <= 0 || c.Reactor.Size <= 0 {
		return fmt.Errorf("%w: health and size must be positive", ErrInvalidReactor)
	}
	return nil
}

// ArenaSize returns the world-space width and height of the maze.
func (c Config) ArenaSize() (float64, float64) {
	rows, cols := c.Arena.Rows, c.Arena.Cols
	if rows <= 1 || cols <= 1 {
		rows, cols = 1, 1
	}
	return float64(cols) * c.Arena.TileSize, float64(rows) * c.Arena.TileSize
}
