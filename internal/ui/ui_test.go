package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestHealthRatio(t *testing.T) {
	assert.Equal(t, float32(0), HealthRatio(-5, 100))
	assert.Equal(t, float32(0), HealthRatio(10, 0))
	assert.Equal(t, float32(0.5), HealthRatio(50, 100))
	assert.Equal(t, float32(1), HealthRatio(120, 100))
}

func TestCooldownRatio(t *testing.T) {
	w := &component.Weapon{Def: defs.WeaponDefinition{Cooldown: 2}}
	assert.Equal(t, float32(1), CooldownRatio(w))
	w.Cooldown = 1.5
	assert.InDelta(t, 0.25, CooldownRatio(w), 1e-6)
	assert.Equal(t, float32(1), CooldownRatio(nil))
}

func TestPhaseColor(t *testing.T) {
	assert.Equal(t, config.BuildStateColor, PhaseColor(component.PhaseBuild))
	assert.Equal(t, config.WaveStateColor, PhaseColor(component.PhaseCombat))
	assert.Equal(t, config.ClearedColor, PhaseColor(component.PhaseAllCleared))
}

func TestButtonsHitTest(t *testing.T) {
	sb := NewSpeedButton(100, 100, 10, []color.RGBA{config.BuildStateColor, config.WaveStateColor})
	assert.True(t, sb.IsClicked(110, 105))
	assert.False(t, sb.IsClicked(130, 100))
	sb.ToggleState()
	assert.Equal(t, 1, sb.CurrentState)
	sb.ToggleState()
	assert.Equal(t, 0, sb.CurrentState)

	pb := NewPauseButton(50, 50, 10, config.BuildStateColor, config.ClearedColor)
	pb.TogglePause()
	assert.True(t, pb.IsPaused)
	assert.True(t, pb.IsClicked(50, 60))

	ind := NewStateIndicator(20, 20, 10)
	assert.True(t, ind.IsClicked(25, 25))
	assert.False(t, ind.IsClicked(35, 20))
}
