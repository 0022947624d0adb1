package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_IsBlocked(t *testing.T) {
	wall := Segment{A: Point{10, 0}, B: Point{10, 20}, Orientation: Vertical, Kind: Interior}
	ix := NewIndex([]Segment{wall}, 0, 2)

	tests := []struct {
		name    string
		cx, cy  float64
		w, h    float64
		blocked bool
	}{
		{"straddles wall", 10, 5, 2, 2, true},
		{"touches wall edge", 9, 5, 2, 2, true},
		{"clear of wall", 15, 5, 2, 2, false},
		{"beyond segment end", 10, 25, 2, 2, false},
		{"zero-size point on wall", 10, 10, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, ok := ix.IsBlocked(tt.cx, tt.cy, tt.w, tt.h)
			assert.Equal(t, tt.blocked, ok)
			if ok {
				assert.Equal(t, Vertical, seg.Orientation)
			}
		})
	}
}

func TestIndex_ExactClipRejectsInflationFalsePositive(t *testing.T) {
	diagonal := Segment{A: Point{0, 0}, B: Point{10, 10}}
	ix := NewIndex([]Segment{diagonal}, 0, 2)

	// Box sits inside the diagonal's bounding rectangle but away from the line itself.
	_, ok := ix.IsBlocked(8, 2, 2, 2)
	assert.False(t, ok)

	_, ok = ix.IsBlocked(5, 5, 1, 1)
	assert.True(t, ok)
}

func TestIndex_ThicknessGrowsExactTest(t *testing.T) {
	wall := Segment{A: Point{0, 10}, B: Point{20, 10}, Orientation: Horizontal}
	thin := NewIndex([]Segment{wall}, 0, 2)
	thick := NewIndex([]Segment{wall}, 6, 2)

	// Box bottom at y=8: two units above the wall line.
	_, ok := thin.IsBlocked(5, 7, 2, 2)
	assert.False(t, ok)
	seg, ok := thick.IsBlocked(5, 7, 2, 2)
	require.True(t, ok)
	assert.Equal(t, Horizontal, seg.Orientation)
}

func TestIndex_HitsReportsCorner(t *testing.T) {
	segs := []Segment{
		{A: Point{0, 0}, B: Point{10, 0}, Orientation: Horizontal, Kind: Boundary},
		{A: Point{0, 0}, B: Point{0, 10}, Orientation: Vertical, Kind: Boundary},
	}
	ix := NewIndex(segs, 0, 2)

	hits := ix.Hits(0.5, 0.5, 2, 2)
	require.Len(t, hits, 2)
	assert.ElementsMatch(t, []Orientation{Horizontal, Vertical}, []Orientation{hits[0].Orientation, hits[1].Orientation})

	assert.Empty(t, ix.Hits(5, 5, 2, 2))
}

func TestIndex_GeneratedMazePerimeterBlocks(t *testing.T) {
	g := Generate(10, 10, testRNG(11))
	ix := NewIndex(ExtractWallSegments(g, 16), 0, 2)

	seg, ok := ix.IsBlocked(160, 80, 4, 4)
	require.True(t, ok)
	assert.Equal(t, Boundary, seg.Kind)

	seg, ok = ix.IsBlocked(8, 0, 4, 4)
	require.True(t, ok)
	assert.Equal(t, Boundary, seg.Kind)
}
