package tetris

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// sequenceSource replays fixed families and integers, repeating the last value
// of each once exhausted.
type sequenceSource struct {
	families []Family
	ints     []int
}

func (s *sequenceSource) NextFamily() Family {
	f := s.families[0]
	if len(s.families) > 1 {
		s.families = s.families[1:]
	}
	return f
}

func (s *sequenceSource) IntN(n int) int {
	v := 0
	if len(s.ints) > 0 {
		v = s.ints[0]
		if len(s.ints) > 1 {
			s.ints = s.ints[1:]
		}
	}
	return v % n
}

type recorder struct {
	cleared   []int
	gameOvers int
	spawns    [][2]Family
}

func (r *recorder) RowsCleared(count int) {
	r.cleared = append(r.cleared, count)
}

func (r *recorder) GameOver() {
	r.gameOvers++
}

func (r *recorder) NewPiece(current, next Family) {
	r.spawns = append(r.spawns, [2]Family{current, next})
}

func newTestPlayfield(rows, columns int, families ...Family) (*Playfield, *recorder) {
	if len(families) == 0 {
		families = []Family{FamilyO}
	}
	rec := &recorder{}
	pf := NewPlayfield(NewPlayfieldOptions{
		Rows:      rows,
		Columns:   columns,
		Source:    &sequenceSource{families: families},
		Listeners: []Listener{rec},
	})
	return pf, rec
}

func fill(pf *Playfield, row int, cols ...int) {
	for _, col := range cols {
		pf.cells[row][col].Fixed = true
		pf.cells[row][col].Color = ColorGarbage
	}
}

func fillRow(pf *Playfield, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, col := range except {
		skip[col] = true
	}
	for col := 0; col < pf.columns; col++ {
		if !skip[col] {
			fill(pf, row, col)
		}
	}
}

func place(pf *Playfield, f Family, orientation int, row, col int) {
	pf.piece = &Piece{family: f, orientation: orientation, offset: Point{Row: row, Col: col}}
}

// requirePanicIs runs fn and requires it to panic with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	var recovered interface{}
	func() {
		defer func() {
			recovered = recover()
		}()
		fn()
	}()
	require.NotNil(t, recovered, "expected panic")
	err, ok := recovered.(error)
	require.True(t, ok, fmt.Sprintf("panic value %v is not an error", recovered))
	require.True(t, errors.Is(err, target), "panic %v is not %v", err, target)
}

// assertValidPiece fails if any occupied cell of the active piece is off the
// board or on a fixed cell.
func assertValidPiece(t *testing.T, pf *Playfield) {
	t.Helper()
	for _, p := range pf.piece.Cells() {
		require.True(t, pf.inBounds(p), "cell %s out of bounds", p)
		require.False(t, pf.cells[p.Row][p.Col].Fixed, "cell %s overlaps a fixed cell", p)
	}
}
