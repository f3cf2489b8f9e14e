package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayfield(t *testing.T) {
	pf, _ := newTestPlayfield(20, 10)

	assert.Equal(t, 20, pf.Rows())
	assert.Equal(t, 10, pf.Columns())
	assert.False(t, pf.HasActivePiece())
	assert.False(t, pf.IsOver())
	assert.Equal(t, Family(0), pf.Next())
	assert.Equal(t, 20, pf.FreeRowsFromTop())

	cell := pf.Cell(7, 3)
	assert.Equal(t, 7, cell.Row())
	assert.Equal(t, 3, cell.Column())
	assert.False(t, cell.Fixed)
	assert.Equal(t, ColorNone, cell.Color)
}

func TestPlayfield_OutOfRange(t *testing.T) {
	pf, _ := newTestPlayfield(6, 4)

	for _, p := range []Point{{-1, 0}, {6, 0}, {0, -1}, {0, 4}} {
		requirePanicIs(t, ErrBoardOutOfRange, func() { pf.Cell(p.Row, p.Col) })
		requirePanicIs(t, ErrBoardOutOfRange, func() { pf.IsFixed(p.Row, p.Col) })
		requirePanicIs(t, ErrBoardOutOfRange, func() { pf.ColorAt(p.Row, p.Col) })
	}
	requirePanicIs(t, ErrNoActivePiece, func() { pf.ActivePiece() })
}

func TestPlayfield_ColorAt(t *testing.T) {
	pf, _ := newTestPlayfield(20, 10, FamilyT)
	fill(pf, 19, 0)
	pf.SpawnNext()

	assert.Equal(t, ColorGarbage, pf.ColorAt(19, 0))
	assert.Equal(t, FamilyT.Color(), pf.ColorAt(0, 4))
	assert.Equal(t, FamilyT.Color(), pf.ColorAt(1, 3))
	// inside the mask footprint but not occupied
	assert.Equal(t, ColorNone, pf.ColorAt(0, 3))
	assert.Equal(t, ColorNone, pf.ColorAt(10, 4))
	assert.False(t, pf.IsFixed(0, 4))
}

func TestPlayfield_ActivePieceIsCopy(t *testing.T) {
	pf, _ := newTestPlayfield(20, 10, FamilyL)
	pf.SpawnNext()

	p := pf.ActivePiece()
	p.AdvanceOrientation()
	p.move(down)

	assert.Equal(t, 1, pf.ActivePiece().Orientation())
	assert.Equal(t, Point{Row: 0, Col: 3}, pf.ActivePiece().Offset())
}

func TestPlayfield_ActivePieceQueriesOnReturnValue(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		want   []Point
	}{
		{name: "O", family: FamilyO, want: []Point{{0, 4}, {0, 5}, {1, 4}, {1, 5}}},
		{name: "I", family: FamilyI, want: []Point{{0, 3}, {0, 4}, {0, 5}, {0, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, _ := newTestPlayfield(20, 10, tt.family)
			pf.SpawnNext()

			assert.Equal(t, tt.family, pf.ActivePiece().Family())
			assert.Equal(t, 0, pf.ActivePiece().Orientation())
			assert.ElementsMatch(t, tt.want, pf.ActivePiece().Cells())
			assert.True(t, pf.ActivePiece().OccupiedAt(0, 1))
		})
	}
}

func TestPlayfield_FreeRowsFromTop(t *testing.T) {
	tests := []struct {
		name  string
		fixed []Point
		want  int
	}{
		{name: "empty", want: 6},
		{name: "bottom", fixed: []Point{{5, 0}}, want: 5},
		{name: "middle", fixed: []Point{{5, 2}, {3, 1}}, want: 3},
		{name: "top", fixed: []Point{{0, 3}}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, _ := newTestPlayfield(6, 4)
			for _, p := range tt.fixed {
				fill(pf, p.Row, p.Col)
			}
			assert.Equal(t, tt.want, pf.FreeRowsFromTop())
		})
	}
}

func TestListenerFuncs_NilCallbacks(t *testing.T) {
	var cleared int
	l := ListenerFuncs{OnRowsCleared: func(count int) { cleared += count }}

	require.NotPanics(t, func() {
		l.GameOver()
		l.NewPiece(FamilyI, FamilyO)
		l.RowsCleared(2)
	})
	assert.Equal(t, 2, cleared)
}
