// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-maze-defense/internal/config"
)

type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	size := b.Size * pulse(time.Since(b.LastClickTime).Seconds())

	if b.IsPaused {
		// Треугольник (play)
		fillPolygon(screen, [][2]float32{
			{b.X - size, b.Y - size*1.2}, {b.X + size, b.Y}, {b.X - size, b.Y + size*1.2},
		}, b.PlayColor, config.IndicatorStroke)
		return
	}

	// Два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, config.IndicatorStroke, true)
	}
}

func (b *PauseButton) IsClicked(mx, my float32) bool {
	return inCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
