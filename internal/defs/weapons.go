// internal/defs/weapons.go
package defs

// WeaponDefinition holds the static data for one weapon. Behaviour-specific fields are
// ignored by variants that do not use them.
type WeaponDefinition struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Variant  Variant `json:"variant"`
	Cooldown float64 `json:"cooldown"` // Seconds between shots
	Damage   int     `json:"damage"`
	Speed    float64 `json:"speed"`    // Pixels per second
	Lifetime float64 `json:"lifetime"` // Seconds; visual lifetime for beams
	Size     float64 `json:"size"`
	Range    float64 `json:"range"` // Targeting range for AI owners and beams

	// BOUNCE / PIERCE budgets
	MaxBounces int `json:"max_bounces,omitempty"`
	MaxPierces int `json:"max_pierces,omitempty"`

	// HOMING
	TurnRate     float64 `json:"turn_rate,omitempty"` // Radians per second
	AcquireRange float64 `json:"acquire_range,omitempty"`

	// StopsAtWalls makes PIERCE and HOMING shots die on walls instead of passing through.
	StopsAtWalls bool `json:"stops_at_walls,omitempty"`
}
