// pkg/maze/collision.go
package maze

import "math"

// DefaultMinThickness keeps zero-width axis-aligned segments collidable in the broad phase.
const DefaultMinThickness = 2.0

type rect struct {
	minX, minY, maxX, maxY float64
}

func (r rect) overlaps(o rect) bool {
	return r.minX < o.maxX && o.minX < r.maxX && r.minY < o.maxY && o.minY < r.maxY
}

// Index answers box-versus-wall queries against a fixed segment set.
// It is read-only after construction and safe for concurrent queries.
type Index struct {
	segments      []Segment
	inflated      []rect
	halfThickness float64
}

// NewIndex precomputes inflated bounding rectangles for every segment.
func NewIndex(segments []Segment, thickness, minThickness float64) *Index {
	if minThickness <= 0 {
		minThickness = DefaultMinThickness
	}
	if thickness < 0 {
		thickness = 0
	}
	pad := math.Max(thickness, minThickness) / 2

	inflated := make([]rect, len(segments))
	for i, s := range segments {
		inflated[i] = rect{
			minX: math.Min(s.A.X, s.B.X) - pad,
			minY: math.Min(s.A.Y, s.B.Y) - pad,
			maxX: math.Max(s.A.X, s.B.X) + pad,
			maxY: math.Max(s.A.Y, s.B.Y) + pad,
		}
	}
	return &Index{
		segments:      segments,
		inflated:      inflated,
		halfThickness: thickness / 2,
	}
}

// Segments exposes the indexed geometry for rendering.
func (ix *Index) Segments() []Segment {
	return ix.segments
}

// IsBlocked reports the first wall intersecting the box centred at (cx, cy).
func (ix *Index) IsBlocked(cx, cy, w, h float64) (Segment, bool) {
	box := boxRect(cx, cy, w, h)
	for i := range ix.segments {
		if ix.hit(i, box) {
			return ix.segments[i], true
		}
	}
	return Segment{}, false
}

// Hits returns every wall intersecting the box. Corner contacts yield both orientations.
func (ix *Index) Hits(cx, cy, w, h float64) []Segment {
	box := boxRect(cx, cy, w, h)
	var out []Segment
	for i := range ix.segments {
		if ix.hit(i, box) {
			out = append(out, ix.segments[i])
		}
	}
	return out
}

func (ix *Index) hit(i int, box rect) bool {
	if !ix.inflated[i].overlaps(box) {
		return false
	}
	s := ix.segments[i]
	grown := rect{
		minX: box.minX - ix.halfThickness,
		minY: box.minY - ix.halfThickness,
		maxX: box.maxX + ix.halfThickness,
		maxY: box.maxY + ix.halfThickness,
	}
	return clipSegment(s.A.X, s.A.Y, s.B.X, s.B.Y, grown)
}

func boxRect(cx, cy, w, h float64) rect {
	return rect{minX: cx - w/2, minY: cy - h/2, maxX: cx + w/2, maxY: cy + h/2}
}

// clipSegment is a Liang–Barsky test: true when any part of the segment lies within r.
func clipSegment(x0, y0, x1, y1 float64, r rect) bool {
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - r.minX, r.maxX - x0, y0 - r.minY, r.maxY - y0}

	t0, t1 := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return t0 <= t1
}
