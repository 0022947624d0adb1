// internal/component/boss.go
package component

import "go-maze-defense/internal/defs"

// PartStatus — состояние части босса
type PartStatus uint8

const (
	PartIntact PartStatus = iota
	PartDamaged
	PartDestroyed
)

func (s PartStatus) String() string {
	switch s {
	case PartIntact:
		return "intact"
	case PartDamaged:
		return "damaged"
	case PartDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// BossPart is one independently destructible sub-component.
type BossPart struct {
	ID               string
	OffsetX, OffsetY float64
	Width, Height    float64
	Health           int
	MaxHealth        int
	DamagedThreshold int
	VulnerablePhase  int
	Status           PartStatus
}

// Box places the part relative to the boss anchor.
func (p *BossPart) Box(anchorX, anchorY, scale float64) Box {
	return BoxAt(anchorX+p.OffsetX, anchorY+p.OffsetY, p.Width*scale, p.Height*scale)
}

// Boss holds the part list and the phase derived from it.
type Boss struct {
	Parts        []*BossPart
	Phase        int
	PhaseWeapons []string
}

// NewBoss creates all parts intact at full health.
func NewBoss(def *defs.BossDefinition) *Boss {
	b := &Boss{PhaseWeapons: append([]string(nil), def.PhaseWeapons...)}
	for _, pd := range def.Parts {
		b.Parts = append(b.Parts, &BossPart{
			ID:               pd.ID,
			OffsetX:          pd.OffsetX,
			OffsetY:          pd.OffsetY,
			Width:            pd.Width,
			Height:           pd.Height,
			Health:           pd.Health,
			MaxHealth:        pd.Health,
			DamagedThreshold: pd.DamagedThreshold,
			VulnerablePhase:  pd.VulnerablePhase,
		})
	}
	return b
}

// Part looks a part up by id.
func (b *Boss) Part(id string) *BossPart {
	for _, p := range b.Parts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// DestroyedCount is the number of destroyed parts. It is also the phase.
func (b *Boss) DestroyedCount() int {
	n := 0
	for _, p := range b.Parts {
		if p.Status == PartDestroyed {
			n++
		}
	}
	return n
}

// AllDestroyed reports whether every part is gone.
func (b *Boss) AllDestroyed() bool {
	return b.DestroyedCount() == len(b.Parts)
}

// Targetable reports whether p can currently take hits.
func (b *Boss) Targetable(p *BossPart) bool {
	return p.Status != PartDestroyed && b.Phase >= p.VulnerablePhase
}

// PhaseWeapon returns the weapon for the current phase; the last entry repeats.
func (b *Boss) PhaseWeapon() string {
	if len(b.PhaseWeapons) == 0 {
		return ""
	}
	i := b.Phase
	if i >= len(b.PhaseWeapons) {
		i = len(b.PhaseWeapons) - 1
	}
	return b.PhaseWeapons[i]
}
