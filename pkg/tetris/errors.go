package tetris

import "errors"

// Contract violations. The playfield and piece panic with these (wrapped with
// context), so recovered values can be matched with errors.Is.
var (
	ErrLocalOutOfRange    = errors.New("local coordinate out of range")
	ErrBoardOutOfRange    = errors.New("board coordinate out of range")
	ErrNoActivePiece      = errors.New("no active piece")
	ErrUnknownFamily      = errors.New("unknown piece family")
	ErrUnknownOrientation = errors.New("unknown orientation")
)
