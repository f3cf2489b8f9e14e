package tetris

import "fmt"

// Piece is the falling tetromino: a fixed family, a 1-based orientation and the
// board offset of its mask's top-left corner.
type Piece struct {
	family      Family
	orientation int
	offset      Point
}

// NewPiece creates a piece of family f at orientation 1 and offset (0,0).
func NewPiece(f Family) *Piece {
	if !f.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownFamily, f))
	}
	return &Piece{
		family:      f,
		orientation: 1,
	}
}

func (p Piece) Family() Family {
	return p.family
}

func (p Piece) Color() Color {
	return p.family.Color()
}

// Orientation returns the current 1-based orientation index.
func (p Piece) Orientation() int {
	return p.orientation
}

func (p Piece) OrientationCount() int {
	return OrientationCount(p.family)
}

// Offset returns the board position of the mask's top-left corner.
func (p Piece) Offset() Point {
	return p.offset
}

// Mask returns the occupancy mask of the current orientation.
func (p Piece) Mask() Mask {
	return ShapeMask(p.family, p.orientation)
}

// NextOrientationMask returns the mask the piece would have after
// AdvanceOrientation, without changing it.
func (p Piece) NextOrientationMask() Mask {
	return ShapeMask(p.family, p.nextOrientation())
}

// AdvanceOrientation commits the next orientation, wrapping back to 1.
// It does not check for collisions.
func (p *Piece) AdvanceOrientation() {
	p.orientation = p.nextOrientation()
}

func (p Piece) nextOrientation() int {
	next := p.orientation + 1
	if next > p.OrientationCount() {
		next = 1
	}
	return next
}

// OccupiedAt reports whether the current mask is set at a local coordinate.
// Coordinates outside [0,3]x[0,3] panic with ErrLocalOutOfRange.
func (p Piece) OccupiedAt(localRow, localCol int) bool {
	if !inMask(Point{Row: localRow, Col: localCol}) {
		panic(fmt.Errorf("%w: %d,%d", ErrLocalOutOfRange, localRow, localCol))
	}
	return p.Mask()[localRow][localCol]
}

// ToBoard translates a local mask coordinate to a board coordinate.
func (p Piece) ToBoard(local Point) Point {
	return local.Add(p.offset)
}

// ToLocal translates a board coordinate to a local mask coordinate. The second
// result is false when the coordinate lies outside the piece's 4x4 footprint.
func (p Piece) ToLocal(board Point) (Point, bool) {
	local := board.Sub(p.offset)
	return local, inMask(local)
}

// Cells returns the board coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	return p.cellsOf(p.Mask(), none)
}

func (p Piece) cellsOf(mask Mask, shift Point) []Point {
	points := mask.Occupied()
	for i := range points {
		points[i] = p.ToBoard(points[i]).Add(shift)
	}
	return points
}

func (p *Piece) move(delta Point) {
	p.offset = p.offset.Add(delta)
}
