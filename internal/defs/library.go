// internal/defs/library.go
package defs

import "image/color"

// Default returns the built-in definitions used when no data directory is given.
func Default() *Library {
	weapons := []WeaponDefinition{
		{ID: "BLASTER", Name: "Blaster", Variant: VariantStraight, Cooldown: 0.2, Damage: 10, Speed: 480, Lifetime: 1.5, Size: 6},
		{ID: "RICOCHET", Name: "Ricochet", Variant: VariantBounce, Cooldown: 0.35, Damage: 8, Speed: 420, Lifetime: 3, Size: 6, MaxBounces: 3},
		{ID: "LANCE", Name: "Lance", Variant: VariantPierce, Cooldown: 0.5, Damage: 14, Speed: 520, Lifetime: 1.2, Size: 8, MaxPierces: 2},
		{ID: "SEEKER", Name: "Seeker", Variant: VariantHoming, Cooldown: 0.6, Damage: 12, Speed: 300, Lifetime: 3, Size: 6, TurnRate: 4, AcquireRange: 400},
		{ID: "RAY", Name: "Ray", Variant: VariantBeam, Cooldown: 0.8, Damage: 20, Lifetime: 0.15, Size: 3, Range: 320},
		{ID: "TURRET_GUN", Name: "Turret gun", Variant: VariantStraight, Cooldown: 0.7, Damage: 8, Speed: 360, Lifetime: 1.5, Size: 5, Range: 220},
		{ID: "ENEMY_SPIT", Name: "Spit", Variant: VariantStraight, Cooldown: 1.5, Damage: 5, Speed: 220, Lifetime: 2, Size: 5, Range: 200},
		{ID: "BOSS_SPRAY", Name: "Spray", Variant: VariantBounce, Cooldown: 0.9, Damage: 6, Speed: 260, Lifetime: 3, Size: 7, Range: 420, MaxBounces: 2},
		{ID: "BOSS_SEEKER", Name: "Boss seeker", Variant: VariantHoming, Cooldown: 1.1, Damage: 10, Speed: 220, Lifetime: 4, Size: 8, Range: 480, TurnRate: 2.5, AcquireRange: 600},
		{ID: "BOSS_RAY", Name: "Boss ray", Variant: VariantBeam, Cooldown: 1.4, Damage: 15, Lifetime: 0.3, Size: 4, Range: 360},
	}
	enemies := []EnemyDefinition{
		{ID: "ENEMY_NORMAL_WEAK", Name: "Drone", Health: 20, Speed: 70, Size: 16, Score: 10, Currency: 5,
			Visuals: Visuals{Color: color.RGBA{220, 60, 60, 255}, RadiusFactor: 0.5}},
		{ID: "ENEMY_NORMAL", Name: "Gunner", Health: 40, Speed: 60, Size: 18, Weapon: "ENEMY_SPIT", Score: 20, Currency: 10,
			Visuals: Visuals{Color: color.RGBA{230, 120, 40, 255}, RadiusFactor: 0.55}},
		{ID: "ENEMY_FAST", Name: "Dart", Health: 15, Speed: 130, Size: 12, Score: 15, Currency: 5,
			Visuals: Visuals{Color: color.RGBA{255, 90, 160, 255}, RadiusFactor: 0.4}},
		{ID: "ENEMY_TOUGH", Name: "Brute", Health: 120, Speed: 40, Size: 24, ContactDamage: 25, Score: 40, Currency: 20,
			Visuals: Visuals{Color: color.RGBA{140, 30, 30, 255}, RadiusFactor: 0.7, StrokeWidth: 2}},
		{ID: "ENEMY_BOSS", Name: "Warden", Speed: 25, Size: 64, ContactDamage: 40, Score: 500, Currency: 200,
			Boss: &BossDefinition{
				Parts: []BossPartDefinition{
					{ID: "left_cannon", OffsetX: -28, OffsetY: 0, Width: 16, Height: 16, Health: 120, DamagedThreshold: 60},
					{ID: "right_cannon", OffsetX: 28, OffsetY: 0, Width: 16, Height: 16, Health: 120, DamagedThreshold: 60},
					{ID: "core", OffsetX: 0, OffsetY: 0, Width: 20, Height: 20, Health: 250, DamagedThreshold: 100, VulnerablePhase: 2},
				},
				PhaseWeapons: []string{"BOSS_SPRAY", "BOSS_SEEKER", "BOSS_RAY"},
			},
			Visuals: Visuals{Color: color.RGBA{180, 50, 230, 255}, RadiusFactor: 1, StrokeWidth: 3}},
	}

	lib := &Library{
		Weapons: make(map[string]WeaponDefinition, len(weapons)),
		Enemies: make(map[string]EnemyDefinition, len(enemies)),
		Waves: []WaveDefinition{
			{Groups: []SpawnGroup{
				{EnemyID: "ENEMY_NORMAL_WEAK", Count: 5, SpawnDelayMs: 800, GroupDelayMs: 0, SpawnPoint: 0},
			}},
			{Groups: []SpawnGroup{
				{EnemyID: "ENEMY_NORMAL_WEAK", Count: 5, SpawnDelayMs: 800, GroupDelayMs: 2000, SpawnPoint: 0},
				{EnemyID: "ENEMY_NORMAL", Count: 3, SpawnDelayMs: 1000, SpawnPoint: 1},
			}},
			{Groups: []SpawnGroup{
				{EnemyID: "ENEMY_FAST", Count: 8, SpawnDelayMs: 500, GroupDelayMs: 1500, SpawnPoint: 2},
				{EnemyID: "ENEMY_TOUGH", Count: 3, SpawnDelayMs: 1000, SpawnPoint: 0},
			}},
			{Groups: []SpawnGroup{
				{EnemyID: "ENEMY_NORMAL", Count: 6, SpawnDelayMs: 700, GroupDelayMs: 1000, SpawnPoint: 1},
				{EnemyID: "ENEMY_FAST", Count: 6, SpawnDelayMs: 400, GroupDelayMs: 1000, SpawnPoint: 2},
				{EnemyID: "ENEMY_TOUGH", Count: 4, SpawnDelayMs: 900, SpawnPoint: 0},
			}},
			{Groups: []SpawnGroup{
				{EnemyID: "ENEMY_NORMAL_WEAK", Count: 4, SpawnDelayMs: 600, GroupDelayMs: 3000, SpawnPoint: 0},
				{EnemyID: "ENEMY_BOSS", Count: 1, SpawnDelayMs: 1000, SpawnPoint: 2},
			}},
		},
	}
	for _, w := range weapons {
		lib.Weapons[w.ID] = w
	}
	for _, e := range enemies {
		lib.Enemies[e.ID] = e
	}
	return lib
}
