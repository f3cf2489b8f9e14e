package tetris

import "fmt"

// Family identifies one of the seven tetromino shapes.
type Family uint8

const (
	FamilyI Family = iota + 1
	FamilyO
	FamilyT
	FamilyZ
	FamilyS
	FamilyL
	FamilyJ
)

// Families lists every family in table order.
var Families = []Family{FamilyI, FamilyO, FamilyT, FamilyZ, FamilyS, FamilyL, FamilyJ}

func (f Family) String() string {
	switch f {
	case FamilyI:
		return "I"
	case FamilyO:
		return "O"
	case FamilyT:
		return "T"
	case FamilyZ:
		return "Z"
	case FamilyS:
		return "S"
	case FamilyL:
		return "L"
	case FamilyJ:
		return "J"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the seven families.
func (f Family) Valid() bool {
	return f >= FamilyI && f <= FamilyJ
}

// Color returns the colour tag cells take when a piece of this family locks.
func (f Family) Color() Color {
	return Color(f)
}

// ParseFamily parses a single-letter family name.
func ParseFamily(s string) (Family, error) {
	for _, f := range Families {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// MaskSize is the side length of every orientation mask.
const MaskSize = 4

// Mask is the occupancy of a 4x4 local grid, indexed [row][col].
type Mask [MaskSize][MaskSize]bool

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for row := 0; row < MaskSize; row++ {
		for col := 0; col < MaskSize; col++ {
			if m[row][col] {
				n++
			}
		}
	}
	return n
}

// Occupied returns the local coordinates of every occupied cell in row-major order.
func (m Mask) Occupied() []Point {
	points := make([]Point, 0, 4)
	for row := 0; row < MaskSize; row++ {
		for col := 0; col < MaskSize; col++ {
			if m[row][col] {
				points = append(points, Point{Row: row, Col: col})
			}
		}
	}
	return points
}

func (m Mask) String() string {
	b := make([]byte, 0, MaskSize*(MaskSize+1))
	for row := 0; row < MaskSize; row++ {
		for col := 0; col < MaskSize; col++ {
			if m[row][col] {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}

// shapes maps a family to its orientation masks; index 0 is orientation 1.
// Orientation 1 of every family occupies local row 0; the I piece starts horizontal.
var shapes = map[Family][]Mask{
	FamilyI: {
		parseMask("1111", "0000", "0000", "0000"),
		parseMask("0100", "0100", "0100", "0100"),
	},
	FamilyO: {
		parseMask("0110", "0110", "0000", "0000"),
	},
	FamilyT: {
		parseMask("0100", "1110", "0000", "0000"),
		parseMask("0100", "0110", "0100", "0000"),
		parseMask("1110", "0100", "0000", "0000"),
		parseMask("0100", "1100", "0100", "0000"),
	},
	FamilyZ: {
		parseMask("0010", "0110", "0100", "0000"),
		parseMask("0110", "0011", "0000", "0000"),
	},
	FamilyS: {
		parseMask("0100", "0110", "0010", "0000"),
		parseMask("0011", "0110", "0000", "0000"),
	},
	FamilyL: {
		parseMask("0100", "0100", "0110", "0000"),
		parseMask("0111", "0100", "0000", "0000"),
		parseMask("0110", "0010", "0010", "0000"),
		parseMask("0001", "0111", "0000", "0000"),
	},
	FamilyJ: {
		parseMask("0010", "0010", "0110", "0000"),
		parseMask("0100", "0111", "0000", "0000"),
		parseMask("0110", "0100", "0100", "0000"),
		parseMask("0111", "0001", "0000", "0000"),
	},
}

func parseMask(rows ...string) Mask {
	if len(rows) != MaskSize {
		panic(fmt.Sprintf("mask needs %d rows, got %d", MaskSize, len(rows)))
	}
	var m Mask
	for row, s := range rows {
		if len(s) != MaskSize {
			panic(fmt.Sprintf("mask row %q must be %d wide", s, MaskSize))
		}
		for col := 0; col < MaskSize; col++ {
			m[row][col] = s[col] == '1'
		}
	}
	return m
}

// OrientationCount returns how many distinct orientations f has.
func OrientationCount(f Family) int {
	return len(orientations(f))
}

// ShapeMask returns the mask of f at a 1-based orientation.
func ShapeMask(f Family, orientation int) Mask {
	masks := orientations(f)
	if orientation < 1 || orientation > len(masks) {
		panic(fmt.Errorf("%w: family %s has no orientation %d", ErrUnknownOrientation, f, orientation))
	}
	return masks[orientation-1]
}

func orientations(f Family) []Mask {
	masks, ok := shapes[f]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownFamily, f))
	}
	return masks
}
