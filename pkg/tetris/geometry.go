package tetris

import "fmt"

// Point is a (row, column) coordinate, either board-relative or local to a piece mask.
type Point struct {
	Row int
	Col int
}

func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

func (p Point) Sub(q Point) Point {
	return Point{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// inMask reports whether p is a valid local mask coordinate.
func inMask(p Point) bool {
	return p.Row >= 0 && p.Row < MaskSize && p.Col >= 0 && p.Col < MaskSize
}

var (
	left  = Point{Col: -1}
	right = Point{Col: 1}
	down  = Point{Row: 1}
	none  = Point{}
)
