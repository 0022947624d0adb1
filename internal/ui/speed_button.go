// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-maze-defense/internal/config"
)

// SpeedButton переключает множитель скорости 1x → 2x → 4x.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * pulse(time.Since(b.LastClickTime).Seconds())
	clr := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8

	// Два треугольника «перемотки»
	fillPolygon(screen, [][2]float32{
		{b.X - width, b.Y - height/2}, {b.X, b.Y}, {b.X - width, b.Y + height/2},
	}, clr, config.IndicatorStroke)
	fillPolygon(screen, [][2]float32{
		{b.X - width + offset, b.Y - height/2}, {b.X + offset, b.Y}, {b.X - width + offset, b.Y + height/2},
	}, clr, config.IndicatorStroke)
}

// IsClicked uses a circle for the hit test since the shape is irregular.
func (b *SpeedButton) IsClicked(mx, my float32) bool {
	return inCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
