// internal/defs/bosses.go
package defs

// BossDefinition lists the independently destructible parts of a boss.
// PhaseWeapons[i] is fired while i parts are destroyed; the last entry repeats.
type BossDefinition struct {
	Parts        []BossPartDefinition `json:"parts"`
	PhaseWeapons []string             `json:"phase_weapons"`
}

// BossPartDefinition describes one sub-component, positioned relative to the boss anchor.
type BossPartDefinition struct {
	ID               string  `json:"id"`
	OffsetX          float64 `json:"offset_x"`
	OffsetY          float64 `json:"offset_y"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	Health           int     `json:"health"`
	DamagedThreshold int     `json:"damaged_threshold"` // Health at or below which the part reads as damaged
	VulnerablePhase  int     `json:"vulnerable_phase"`  // Phase from which the part can be hit
}
