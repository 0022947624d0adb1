// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Health        int             `json:"health"`
	Speed         float64         `json:"speed"`
	Size          float64         `json:"size"`
	Weapon        string          `json:"weapon,omitempty"`
	ContactDamage int             `json:"contact_damage,omitempty"` // 0 = combat.contact_damage
	Score         int             `json:"score"`
	Currency      int             `json:"currency"`
	Boss          *BossDefinition `json:"boss,omitempty"`
	Visuals       Visuals         `json:"visuals"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}
