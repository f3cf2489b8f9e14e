package objects

import (
	"image/color"

	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.NRGBA{R: 20, G: 20, B: 28, A: 255}
	gridColor       = color.NRGBA{R: 40, G: 40, B: 52, A: 255}
	borderColor     = color.NRGBA{R: 170, G: 170, B: 180, A: 255}

	palette = map[tetris.Color]color.NRGBA{
		tetris.Color(tetris.FamilyI): {R: 0, G: 220, B: 220, A: 255},
		tetris.Color(tetris.FamilyO): {R: 230, G: 220, B: 0, A: 255},
		tetris.Color(tetris.FamilyT): {R: 160, G: 0, B: 220, A: 255},
		tetris.Color(tetris.FamilyZ): {R: 220, G: 30, B: 30, A: 255},
		tetris.Color(tetris.FamilyS): {R: 30, G: 200, B: 30, A: 255},
		tetris.Color(tetris.FamilyL): {R: 240, G: 140, B: 0, A: 255},
		tetris.Color(tetris.FamilyJ): {R: 30, G: 60, B: 230, A: 255},
		tetris.ColorGarbage:          {R: 110, G: 110, B: 120, A: 255},
	}
)

// CellColor maps a cell tag to the colour it is painted with. Empty and
// unknown tags are transparent.
func CellColor(c tetris.Color) color.NRGBA {
	return palette[c]
}

// BoardObject paints the latest BoardState with its top left corner at (X, Y).
type BoardObject struct {
	*BaseObject

	x        float32
	y        float32
	cellSize float32
	state    *types.BoardState
}

type NewBoardObjectOptions struct {
	X        float32
	Y        float32
	CellSize float32
	ZIndex   int
}

func NewBoardObject(id string, opts NewBoardObjectOptions) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		x:          opts.X,
		y:          opts.Y,
		cellSize:   opts.CellSize,
	}
}

// SetGeometry moves and rescales the board.
func (o *BoardObject) SetGeometry(x, y, cellSize float32) {
	o.x, o.y, o.cellSize = x, y, cellSize
}

func (o *BoardObject) SetState(state *types.BoardState) {
	o.state = state
}

func (o *BoardObject) State() *types.BoardState {
	return o.state
}

// Size returns the on-screen size of the board, or zero before the first state.
func (o *BoardObject) Size() (width, height float32) {
	if o.state == nil {
		return 0, 0
	}
	return float32(o.state.Columns) * o.cellSize, float32(o.state.Rows) * o.cellSize
}

// CellRect returns the on-screen rectangle of a board cell.
func (o *BoardObject) CellRect(row, col int) (x, y, size float32) {
	return o.x + float32(col)*o.cellSize, o.y + float32(row)*o.cellSize, o.cellSize
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	if o.state == nil {
		return
	}
	w, h := o.Size()
	vector.DrawFilledRect(screen, o.x, o.y, w, h, backgroundColor, false)
	for row := 0; row < o.state.Rows; row++ {
		for col := 0; col < o.state.Columns; col++ {
			x, y, size := o.CellRect(row, col)
			c := o.state.ColorAt(row, col)
			if c == tetris.ColorNone {
				vector.StrokeRect(screen, x, y, size, size, 1, gridColor, false)
				continue
			}
			vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, CellColor(c), false)
		}
	}
	vector.StrokeRect(screen, o.x-1, o.y-1, w+2, h+2, 2, borderColor, false)
}
