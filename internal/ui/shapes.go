// internal/ui/shapes.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
)

// fillPolygon заливает выпуклый многоугольник цветом clr и обводит его.
func fillPolygon(screen *ebiten.Image, points [][2]float32, clr, stroke color.RGBA) {
	if len(points) < 3 {
		return
	}
	if fillImg == nil {
		fillImg = ebiten.NewImage(1, 1)
		fillImg.Fill(color.White)
	}

	path := vector.Path{}
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	fillVs, fillIs = path.AppendVerticesAndIndicesForFilling(fillVs[:0], fillIs[:0])
	for i := range fillVs {
		fillVs[i].ColorR = float32(clr.R) / 255
		fillVs[i].ColorG = float32(clr.G) / 255
		fillVs[i].ColorB = float32(clr.B) / 255
		fillVs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(fillVs, fillIs, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(screen, p[0], p[1], q[0], q[1], 1, stroke, true)
	}
}

// pulse — масштаб «отскока» после клика, затухает за ~0.3 с
func pulse(elapsed float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

// inCircle проверяет попадание точки в круг.
func inCircle(mx, my, cx, cy, r float32) bool {
	dx, dy := mx-cx, my-cy
	return dx*dx+dy*dy <= r*r
}
