package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTick_IPieceFallsToFloor(t *testing.T) {
	pf, rec := newTestPlayfield(20, 10, FamilyI)
	require.Equal(t, SettleResult{}, pf.SpawnNext())

	var results []SettleResult
	for i := 0; i < 19; i++ {
		results = append(results, pf.Tick())
	}

	for i, res := range results[:18] {
		assert.Equal(t, SettleResult{}, res, "tick %d", i+1)
	}
	assert.Equal(t, SettleResult{Locked: true}, results[18])
	assert.False(t, pf.HasActivePiece())
	for col := 0; col < 10; col++ {
		want := col >= 3 && col <= 6
		assert.Equal(t, want, pf.IsFixed(19, col), "col %d", col)
		if want {
			assert.Equal(t, FamilyI.Color(), pf.Cell(19, col).Color)
		}
	}
	assert.Equal(t, 19, pf.FreeRowsFromTop())
	assert.Empty(t, rec.cleared)
	assert.Zero(t, rec.gameOvers)
}

func TestTick_OPieceRestsOnStack(t *testing.T) {
	pf, rec := newTestPlayfield(20, 10, FamilyO)
	fillRow(pf, 19, 5)
	pf.SpawnNext()

	var locked int
	for i := 1; i <= 17; i++ {
		if pf.Tick().Locked {
			locked = i
		}
	}

	assert.Equal(t, 17, locked)
	for _, p := range []Point{{17, 4}, {17, 5}, {18, 4}, {18, 5}} {
		assert.True(t, pf.IsFixed(p.Row, p.Col), "cell %s", p)
		assert.Equal(t, FamilyO.Color(), pf.ColorAt(p.Row, p.Col))
	}
	assert.False(t, pf.IsFixed(19, 5))
	assert.Empty(t, rec.cleared)
	assert.False(t, pf.IsOver())
}

func TestSettle_LocksOnlyOnLowestCell(t *testing.T) {
	tests := []struct {
		name  string
		fixed []Point
		want  bool
	}{
		{name: "nothing below", want: false},
		{name: "under stem", fixed: []Point{{7, 4}}, want: true},
		{name: "under left arm", fixed: []Point{{6, 3}}, want: true},
		{name: "below gap under arm", fixed: []Point{{7, 3}}, want: false},
		{name: "diagonal only", fixed: []Point{{7, 6}}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, _ := newTestPlayfield(20, 10)
			// T orientation 3 occupies (5,3),(5,4),(5,5),(6,4)
			place(pf, FamilyT, 3, 5, 3)
			for _, p := range tt.fixed {
				fill(pf, p.Row, p.Col)
			}
			assert.Equal(t, tt.want, pf.Settle().Locked)
		})
	}
}

func TestSettle_OverlapEndsGame(t *testing.T) {
	pf, rec := newTestPlayfield(20, 10)
	place(pf, FamilyO, 1, 5, 3)
	fill(pf, 6, 5)

	res := pf.Settle()

	assert.Equal(t, SettleResult{GameOver: true}, res)
	assert.True(t, pf.IsOver())
	assert.True(t, pf.HasActivePiece())
	assert.Equal(t, 1, rec.gameOvers)
	assert.False(t, pf.IsFixed(5, 4))
}

func TestClearFullRows(t *testing.T) {
	tests := []struct {
		name      string
		full      []int
		partial   map[int][]int
		wantFixed []Point
		cleared   int
	}{
		{
			name:      "single",
			full:      []int{5},
			wantFixed: []Point{{3, 3}, {4, 3}, {5, 3}},
			cleared:   1,
		},
		{
			name:      "adjacent",
			full:      []int{4, 5},
			wantFixed: []Point{{4, 3}, {5, 3}},
			cleared:   2,
		},
		{
			name:      "three adjacent",
			full:      []int{3, 4, 5},
			wantFixed: []Point{{5, 3}},
			cleared:   3,
		},
		{
			name:      "non adjacent",
			full:      []int{3, 5},
			partial:   map[int][]int{4: {0, 1}},
			wantFixed: []Point{{4, 3}, {5, 0}, {5, 1}, {5, 3}},
			cleared:   2,
		},
		{
			name:      "none",
			partial:   map[int][]int{5: {0, 1}},
			wantFixed: []Point{{2, 3}, {3, 3}, {4, 3}, {5, 0}, {5, 1}, {5, 3}},
			cleared:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, rec := newTestPlayfield(6, 4)
			for _, row := range tt.full {
				fill(pf, row, 0, 1, 2)
			}
			for row, cols := range tt.partial {
				fill(pf, row, cols...)
			}
			// vertical I in column 3, rows 2 to 5
			place(pf, FamilyI, 2, 2, 2)

			res := pf.Settle()

			require.True(t, res.Locked)
			assert.Equal(t, tt.cleared, res.RowsCleared)
			if tt.cleared > 0 {
				assert.Equal(t, []int{tt.cleared}, rec.cleared)
			} else {
				assert.Empty(t, rec.cleared)
			}

			var fixed []Point
			for row := 0; row < pf.Rows(); row++ {
				for col := 0; col < pf.Columns(); col++ {
					if pf.IsFixed(row, col) {
						fixed = append(fixed, Point{Row: row, Col: col})
					}
				}
			}
			assert.ElementsMatch(t, tt.wantFixed, fixed)
			for r := 0; r < pf.Rows(); r++ {
				assert.False(t, pf.rowFull(r), "row %d still full", r)
			}
		})
	}
}

func TestClearFullRows_KeepsColours(t *testing.T) {
	pf, _ := newTestPlayfield(6, 4)
	fill(pf, 5, 0, 1, 2)
	place(pf, FamilyI, 2, 2, 2)

	pf.Settle()

	assert.Equal(t, FamilyI.Color(), pf.Cell(5, 3).Color)
	assert.Equal(t, ColorNone, pf.Cell(5, 0).Color)
	assert.Equal(t, ColorNone, pf.Cell(0, 3).Color)
	assert.Equal(t, 5, pf.Cell(5, 3).Row())
}
