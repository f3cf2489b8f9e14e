package tetris

// Color is the identity tag of a board cell. Family pieces lock with their
// family's colour; the drivers map tags to actual colours.
type Color uint8

const (
	ColorNone Color = 0
	// ColorGarbage marks cells injected by AddGarbageCell and AddIncompleteRow.
	ColorGarbage Color = 8
)

// Family returns the family a colour belongs to, if any.
func (c Color) Family() (Family, bool) {
	f := Family(c)
	return f, f.Valid()
}

// Cell is one board position. Row and column never change; fixed state and
// colour change only when pieces lock or rows shift.
type Cell struct {
	row    int
	column int
	Fixed  bool
	Color  Color
}

func (c Cell) Row() int {
	return c.row
}

func (c Cell) Column() int {
	return c.column
}

func (c *Cell) copyState(from Cell) {
	c.Fixed = from.Fixed
	c.Color = from.Color
}

func (c *Cell) clear() {
	c.Fixed = false
	c.Color = ColorNone
}
