// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrUnknownVariant    = errors.New("unknown projectile variant")
	ErrUnknownWeapon     = errors.New("unknown weapon")
	ErrUnknownEnemy      = errors.New("unknown enemy type")
	ErrInvalidDefinition = errors.New("invalid definition")
	ErrNoWaves           = errors.New("no waves defined")
	ErrEmptyWave         = errors.New("wave has no spawn groups")
	ErrBadGroup          = errors.New("malformed spawn group")
	ErrBadSpawnPoint     = errors.New("spawn point out of range")
)

// Library holds every definition the simulation needs, keyed by ID.
type Library struct {
	Weapons map[string]WeaponDefinition
	Enemies map[string]EnemyDefinition
	Waves   []WaveDefinition
}

// LoadWeaponDefinitions reads a JSON array of weapon definitions.
func LoadWeaponDefinitions(path string) (map[string]WeaponDefinition, error) {
	var list []WeaponDefinition
	if err := readJSON(path, &list); err != nil {
		return nil, fmt.Errorf("failed to load weapon definitions: %w", err)
	}
	weapons := make(map[string]WeaponDefinition, len(list))
	for _, def := range list {
		v, err := ParseVariant(string(def.Variant))
		if err != nil {
			return nil, fmt.Errorf("weapon %s: %w", def.ID, err)
		}
		def.Variant = v
		weapons[def.ID] = def
	}
	return weapons, nil
}

// LoadEnemyDefinitions reads a JSON array of enemy definitions.
func LoadEnemyDefinitions(path string) (map[string]EnemyDefinition, error) {
	var list []EnemyDefinition
	if err := readJSON(path, &list); err != nil {
		return nil, fmt.Errorf("failed to load enemy definitions: %w", err)
	}
	enemies := make(map[string]EnemyDefinition, len(list))
	for _, def := range list {
		enemies[def.ID] = def
	}
	return enemies, nil
}

// LoadWaveDefinitions reads a JSON array of waves.
func LoadWaveDefinitions(path string) ([]WaveDefinition, error) {
	var waves []WaveDefinition
	if err := readJSON(path, &waves); err != nil {
		return nil, fmt.Errorf("failed to load wave definitions: %w", err)
	}
	return waves, nil
}

// LoadLibrary reads weapons.json, enemies.json and waves.json from dir and validates them.
func LoadLibrary(dir string) (*Library, error) {
	weapons, err := LoadWeaponDefinitions(filepath.Join(dir, "weapons.json"))
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemyDefinitions(filepath.Join(dir, "enemies.json"))
	if err != nil {
		return nil, err
	}
	waves, err := LoadWaveDefinitions(filepath.Join(dir, "waves.json"))
	if err != nil {
		return nil, err
	}
	lib := &Library{Weapons: weapons, Enemies: enemies, Waves: waves}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Validate checks weapons and enemies and the references between them.
// Waves are validated separately by ValidateWaves when the orchestrator starts.
func (l *Library) Validate() error {
	for id, w := range l.Weapons {
		if _, err := ParseVariant(string(w.Variant)); err != nil {
			return fmt.Errorf("weapon %s: %w", id, err)
		}
		if w.Damage < 0 || w.Lifetime <= 0 || w.Size < 0 {
			return fmt.Errorf("%w: weapon %s needs non-negative damage and positive lifetime", ErrInvalidDefinition, id)
		}
		if w.Variant != VariantBeam && w.Speed <= 0 {
			return fmt.Errorf("%w: weapon %s needs a positive speed", ErrInvalidDefinition, id)
		}
		if w.MaxBounces < 0 || w.MaxPierces < 0 {
			return fmt.Errorf("%w: weapon %s has a negative budget", ErrInvalidDefinition, id)
		}
	}
	for id, e := range l.Enemies {
		if e.Health <= 0 && e.Boss == nil {
			return fmt.Errorf("%w: enemy %s needs positive health", ErrInvalidDefinition, id)
		}
		if e.Weapon != "" {
			if _, ok := l.Weapons[e.Weapon]; !ok {
				return fmt.Errorf("enemy %s: %w: %s", id, ErrUnknownWeapon, e.Weapon)
			}
		}
		if e.Boss != nil {
			if err := l.validateBoss(id, e.Boss); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Library) validateBoss(id string, b *BossDefinition) error {
	if len(b.Parts) == 0 {
		return fmt.Errorf("%w: boss %s has no parts", ErrInvalidDefinition, id)
	}
	seen := make(map[string]bool, len(b.Parts))
	for _, p := range b.Parts {
		if p.ID == "" || seen[p.ID] {
			return fmt.Errorf("%w: boss %s has a missing or duplicate part id %q", ErrInvalidDefinition, id, p.ID)
		}
		seen[p.ID] = true
		if p.Health <= 0 {
			return fmt.Errorf("%w: boss %s part %s needs positive health", ErrInvalidDefinition, id, p.ID)
		}
	}
	for _, w := range b.PhaseWeapons {
		if _, ok := l.Weapons[w]; !ok {
			return fmt.Errorf("boss %s: %w: %s", id, ErrUnknownWeapon, w)
		}
	}
	return nil
}

// ValidateWaves fails on anything that would desync the clear condition: no waves,
// empty waves, unknown enemy types, non-positive counts or bad spawn point indices.
func (l *Library) ValidateWaves(spawnPoints int) error {
	if len(l.Waves) == 0 {
		return ErrNoWaves
	}
	for i, w := range l.Waves {
		if len(w.Groups) == 0 {
			return fmt.Errorf("wave %d: %w", i+1, ErrEmptyWave)
		}
		for j, g := range w.Groups {
			if _, ok := l.Enemies[g.EnemyID]; !ok {
				return fmt.Errorf("wave %d group %d: %w: %q", i+1, j+1, ErrUnknownEnemy, g.EnemyID)
			}
			if g.Count <= 0 || g.SpawnDelayMs < 0 || g.GroupDelayMs < 0 {
				return fmt.Errorf("wave %d group %d: %w", i+1, j+1, ErrBadGroup)
			}
			if g.SpawnPoint < 0 || g.SpawnPoint >= spawnPoints {
				return fmt.Errorf("wave %d group %d: %w: %d", i+1, j+1, ErrBadSpawnPoint, g.SpawnPoint)
			}
		}
	}
	return nil
}
