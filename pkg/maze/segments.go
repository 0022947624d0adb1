// pkg/maze/segments.go
package maze

// Orientation tells which axis a wall runs along; it decides the reflection axis.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Kind separates interior walls from the arena perimeter.
type Kind uint8

const (
	Interior Kind = iota
	Boundary
)

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Segment is one collidable wall edge.
type Segment struct {
	A, B        Point
	Orientation Orientation
	Kind        Kind
}

// ExtractWallSegments derives the collidable wall set from the grid: a north edge for every
// path cell on the top row or under a wall, a west edge for every path cell on the leftmost
// column or right of a wall, plus the full east and south perimeter once.
func ExtractWallSegments(g *Grid, tile float64) []Segment {
	var segments []Segment
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c] != Path {
				continue
			}
			x0, y0 := float64(c)*tile, float64(r)*tile
			x1, y1 := x0+tile, y0+tile

			if r == 0 || g.Cells[r-1][c] == Wall {
				segments = append(segments, Segment{
					A:           Point{x0, y0},
					B:           Point{x1, y0},
					Orientation: Horizontal,
					Kind:        kindFor(r == 0),
				})
			}
			if c == 0 || g.Cells[r][c-1] == Wall {
				segments = append(segments, Segment{
					A:           Point{x0, y0},
					B:           Point{x0, y1},
					Orientation: Vertical,
					Kind:        kindFor(c == 0),
				})
			}
		}
	}

	w, h := float64(g.Cols)*tile, float64(g.Rows)*tile
	segments = append(segments,
		Segment{A: Point{w, 0}, B: Point{w, h}, Orientation: Vertical, Kind: Boundary},
		Segment{A: Point{0, h}, B: Point{w, h}, Orientation: Horizontal, Kind: Boundary},
	)
	return segments
}

func kindFor(boundary bool) Kind {
	if boundary {
		return Boundary
	}
	return Interior
}
