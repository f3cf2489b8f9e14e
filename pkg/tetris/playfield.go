package tetris

import (
	"fmt"
)

// Playfield is the grid of fixed cells plus the single active piece. It owns
// every collision, locking and line-clearing decision.
//
// A Playfield is not safe for concurrent use; the driver must serialize calls.
type Playfield struct {
	rows    int
	columns int
	cells   [][]Cell
	// piece is the falling piece, nil between a lock and the next spawn.
	piece *Piece
	// next is the lookahead family, zero until the first spawn.
	next Family
	// over is set once a settle detects overlap; the board is frozen after that.
	over      bool
	source    Source
	listeners []Listener
}

// NewPlayfieldOptions contains options for creating a new Playfield.
type NewPlayfieldOptions struct {
	// Rows and Columns must each be at least 4 for any piece to fit.
	Rows    int
	Columns int
	// Source picks spawned families. Defaults to a uniform random source.
	Source Source
	// Listeners are subscribed before any command runs.
	Listeners []Listener
}

func NewPlayfield(opts NewPlayfieldOptions) *Playfield {
	source := opts.Source
	if source == nil {
		source = NewRandomSource()
	}

	cells := make([][]Cell, opts.Rows)
	for row := range cells {
		cells[row] = make([]Cell, opts.Columns)
		for col := range cells[row] {
			cells[row][col] = Cell{row: row, column: col}
		}
	}

	pf := &Playfield{
		rows:    opts.Rows,
		columns: opts.Columns,
		cells:   cells,
		source:  source,
	}
	for _, l := range opts.Listeners {
		pf.Subscribe(l)
	}
	return pf
}

// Subscribe registers a listener for rows-cleared, game-over and new-piece
// notifications. Listeners are called synchronously in registration order.
func (pf *Playfield) Subscribe(l Listener) {
	pf.listeners = append(pf.listeners, l)
}

func (pf *Playfield) Rows() int {
	return pf.rows
}

func (pf *Playfield) Columns() int {
	return pf.columns
}

// Cell returns a copy of the board cell at (row, col).
func (pf *Playfield) Cell(row, col int) Cell {
	return *pf.cellAt(Point{Row: row, Col: col})
}

// IsFixed reports whether the board cell at (row, col) holds a locked block.
func (pf *Playfield) IsFixed(row, col int) bool {
	return pf.cellAt(Point{Row: row, Col: col}).Fixed
}

// ColorAt returns the colour to paint at (row, col): the fixed cell's colour,
// else the active piece's colour if it covers the cell, else ColorNone.
func (pf *Playfield) ColorAt(row, col int) Color {
	cell := pf.cellAt(Point{Row: row, Col: col})
	if cell.Fixed {
		return cell.Color
	}
	if pf.piece == nil {
		return ColorNone
	}
	local, ok := pf.piece.ToLocal(Point{Row: row, Col: col})
	if ok && pf.piece.OccupiedAt(local.Row, local.Col) {
		return pf.piece.Color()
	}
	return ColorNone
}

func (pf *Playfield) HasActivePiece() bool {
	return pf.piece != nil
}

// ActivePiece returns a copy of the falling piece. It panics with
// ErrNoActivePiece when there is none.
func (pf *Playfield) ActivePiece() Piece {
	if pf.piece == nil {
		panic(fmt.Errorf("%w: query on empty playfield", ErrNoActivePiece))
	}
	return *pf.piece
}

// Next returns the lookahead family, or zero before the first spawn.
func (pf *Playfield) Next() Family {
	return pf.next
}

// IsOver reports whether a settle has detected the game-over overlap.
func (pf *Playfield) IsOver() bool {
	return pf.over
}

// FreeRowsFromTop counts the completely empty rows from row 0 down to the
// first row holding a fixed cell.
func (pf *Playfield) FreeRowsFromTop() int {
	free := 0
	for row := 0; row < pf.rows; row++ {
		for col := 0; col < pf.columns; col++ {
			if pf.cells[row][col].Fixed {
				return free
			}
		}
		free++
	}
	return free
}

func (pf *Playfield) inBounds(p Point) bool {
	return p.Row >= 0 && p.Row < pf.rows && p.Col >= 0 && p.Col < pf.columns
}

func (pf *Playfield) cellAt(p Point) *Cell {
	if !pf.inBounds(p) {
		panic(fmt.Errorf("%w: %s on %dx%d board", ErrBoardOutOfRange, p, pf.rows, pf.columns))
	}
	return &pf.cells[p.Row][p.Col]
}

// blocked reports whether a board coordinate is outside the board or fixed.
func (pf *Playfield) blocked(p Point) bool {
	return !pf.inBounds(p) || pf.cells[p.Row][p.Col].Fixed
}
