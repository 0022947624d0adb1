// pkg/render/maze_renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-maze-defense/internal/system"
	"go-maze-defense/pkg/maze"
)

// MazeRenderer рисует лабиринт в кэшированное изображение и выводит его со сдвигом.
type MazeRenderer struct {
	tile             float64
	offsetX, offsetY float64
	colors           *MapColors
	mapImage         *ebiten.Image // Предрендеренная карта
}

func NewMazeRenderer(tile, offsetX, offsetY float64, colors *MapColors) *MazeRenderer {
	return &MazeRenderer{
		tile:    tile,
		offsetX: offsetX,
		offsetY: offsetY,
		colors:  colors,
	}
}

// RenderMapImage перерисовывает задник. Вызывать после генерации или изменения лабиринта.
func (r *MazeRenderer) RenderMapImage(grid *maze.Grid, segments []maze.Segment, spawns []maze.Cell, reactor maze.Cell) {
	w, h := int(float64(grid.Cols)*r.tile), int(float64(grid.Rows)*r.tile)
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(max(w, 1), max(h, 1))
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	ts := float32(r.tile)
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			clr := r.colors.WallColor
			if grid.Cells[row][col] == maze.Path {
				clr = r.colors.PathColor
			}
			vector.DrawFilledRect(r.mapImage, float32(col)*ts, float32(row)*ts, ts, ts, clr, false)
		}
	}

	for _, c := range spawns {
		vector.StrokeRect(r.mapImage, float32(c.Col)*ts+2, float32(c.Row)*ts+2, ts-4, ts-4, 2, r.colors.SpawnColor, false)
	}
	vector.StrokeRect(r.mapImage, float32(reactor.Col)*ts+1, float32(reactor.Row)*ts+1, ts-2, ts-2, 2, r.colors.ReactorColor, false)

	for _, s := range segments {
		clr := r.colors.WallColor
		if s.Kind == maze.Boundary {
			clr = r.colors.BoundaryColor
		} else {
			clr = DarkenColor(clr)
		}
		vector.StrokeLine(r.mapImage, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), r.colors.StrokeWidth, clr, true)
	}
}

// Draw выводит карту и поверх неё динамические сущности.
func (r *MazeRenderer) Draw(screen *ebiten.Image, renderSystem *system.RenderSystem) {
	if r.mapImage != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.offsetX, r.offsetY)
		screen.DrawImage(r.mapImage, op)
	}
	renderSystem.Draw(screen)
}
