package types

import (
	"github.com/cbodonnell/stackfall/pkg/tetris"
)

// BoardState is a point-in-time snapshot of a session, suitable for rendering
// and for sending over the wire.
type BoardState struct {
	// Timestamp is the time at which the snapshot was taken, in unix milliseconds
	Timestamp int64  `json:"timestamp"`
	SessionID string `json:"sessionID"`
	Rows      int    `json:"rows"`
	Columns   int    `json:"columns"`
	// Cells holds the colour to paint at each position, row-major, with the
	// active piece already merged in.
	Cells   []tetris.Color `json:"cells"`
	Current tetris.Family  `json:"current"`
	Next    tetris.Family  `json:"next"`
	Paused  bool           `json:"paused"`
	Over    bool           `json:"over"`
	Stats   Stats          `json:"stats"`
}

// Stats are the running counters of a session.
type Stats struct {
	RowsCleared   int `json:"rowsCleared"`
	PiecesSpawned int `json:"piecesSpawned"`
	GarbageRows   int `json:"garbageRows"`
}

// NewBoardState snapshots the playfield.
func NewBoardState(pf *tetris.Playfield) *BoardState {
	state := &BoardState{
		Rows:    pf.Rows(),
		Columns: pf.Columns(),
		Cells:   make([]tetris.Color, pf.Rows()*pf.Columns()),
		Next:    pf.Next(),
		Over:    pf.IsOver(),
	}
	for row := 0; row < pf.Rows(); row++ {
		for col := 0; col < pf.Columns(); col++ {
			state.Cells[row*pf.Columns()+col] = pf.ColorAt(row, col)
		}
	}
	if pf.HasActivePiece() {
		state.Current = pf.ActivePiece().Family()
	}
	return state
}

// ColorAt returns the colour at (row, col). Out of range coordinates are empty.
func (s *BoardState) ColorAt(row, col int) tetris.Color {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Columns {
		return tetris.ColorNone
	}
	return s.Cells[row*s.Columns+col]
}

// Copy returns a deep copy of the snapshot.
func (s *BoardState) Copy() *BoardState {
	c := *s
	c.Cells = make([]tetris.Color, len(s.Cells))
	copy(c.Cells, s.Cells)
	return &c
}

// Equal reports whether two snapshots describe the same board.
func (s *BoardState) Equal(other *BoardState) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Timestamp != other.Timestamp ||
		s.SessionID != other.SessionID ||
		s.Rows != other.Rows ||
		s.Columns != other.Columns ||
		s.Current != other.Current ||
		s.Next != other.Next ||
		s.Paused != other.Paused ||
		s.Over != other.Over ||
		s.Stats != other.Stats ||
		len(s.Cells) != len(other.Cells) {
		return false
	}
	for i := range s.Cells {
		if s.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}
