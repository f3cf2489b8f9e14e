package tetris

import (
	"math/rand/v2"
	"time"
)

// Source picks the family of each spawned piece and the column used by
// the garbage helpers.
type Source interface {
	NextFamily() Family
	IntN(n int) int
}

// RandomSource draws every family independently and uniformly.
type RandomSource struct {
	rng *rand.Rand
}

var _ Source = &RandomSource{}

// NewRandomSource creates a RandomSource seeded from the clock.
func NewRandomSource() *RandomSource {
	seed := uint64(time.Now().UnixNano())
	return NewSeededSource(seed, seed>>1)
}

// NewSeededSource creates a reproducible RandomSource.
func NewSeededSource(seed1, seed2 uint64) *RandomSource {
	return &RandomSource{
		rng: rand.New(rand.NewPCG(seed1, seed2)),
	}
}

func (s *RandomSource) NextFamily() Family {
	return Families[s.rng.IntN(len(Families))]
}

func (s *RandomSource) IntN(n int) int {
	return s.rng.IntN(n)
}

// SpawnNext makes the lookahead family the active piece (a random family on
// the first call), draws a new lookahead, and places the piece at orientation
// 1, horizontally centred on row 0. Listeners get a new-piece notification and
// the piece is settled immediately, so a spawn onto fixed cells ends the game.
// An active piece is replaced.
func (pf *Playfield) SpawnNext() SettleResult {
	if pf.over {
		return SettleResult{}
	}

	current := pf.next
	if current == 0 {
		current = pf.source.NextFamily()
	}
	pf.next = pf.source.NextFamily()

	piece := NewPiece(current)
	piece.offset = Point{Row: 0, Col: (pf.columns - MaskSize) / 2}
	pf.piece = piece

	pf.notifyNewPiece(current, pf.next)
	return pf.Settle()
}

// AddGarbageCell fixes a single garbage cell on top of a random column whose
// top row is still free. It returns false when every column is full at row 0.
func (pf *Playfield) AddGarbageCell() bool {
	if pf.over {
		return false
	}
	var open []int
	for col := 0; col < pf.columns; col++ {
		if !pf.cells[0][col].Fixed {
			open = append(open, col)
		}
	}
	if len(open) == 0 {
		return false
	}

	col := open[pf.source.IntN(len(open))]
	for row := pf.rows - 1; row >= 0; row-- {
		cell := &pf.cells[row][col]
		if !cell.Fixed {
			cell.Fixed = true
			cell.Color = ColorGarbage
			return true
		}
	}
	return false
}

// AddIncompleteRow pushes every fixed cell up one row and fills the bottom row
// with garbage except for one random column. If row 0 held a fixed cell it is
// pushed off the board and the game ends; the return value reports that.
func (pf *Playfield) AddIncompleteRow() bool {
	if pf.over {
		return false
	}
	overflow := false
	for col := 0; col < pf.columns; col++ {
		if pf.cells[0][col].Fixed {
			overflow = true
			break
		}
	}

	for row := 0; row < pf.rows-1; row++ {
		for col := 0; col < pf.columns; col++ {
			pf.cells[row][col].copyState(pf.cells[row+1][col])
		}
	}
	gap := pf.source.IntN(pf.columns)
	for col := 0; col < pf.columns; col++ {
		cell := &pf.cells[pf.rows-1][col]
		if col == gap {
			cell.clear()
			continue
		}
		cell.Fixed = true
		cell.Color = ColorGarbage
	}

	if overflow {
		pf.over = true
		pf.notifyGameOver()
	}
	return overflow
}
