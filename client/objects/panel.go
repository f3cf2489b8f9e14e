package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/stackfall/client/fonts"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PanelObject draws the next piece preview, the session counters and any
// status lines set by the scene.
type PanelObject struct {
	*BaseObject

	x        float32
	y        float32
	cellSize float32
	state    *types.BoardState
	status   []string
}

func NewPanelObject(id string, x, y, cellSize float32) *PanelObject {
	return &PanelObject{
		BaseObject: NewBaseObject(id, nil),
		x:          x,
		y:          y,
		cellSize:   cellSize,
	}
}

// SetGeometry moves the panel and rescales the preview.
func (o *PanelObject) SetGeometry(x, y, cellSize float32) {
	o.x, o.y, o.cellSize = x, y, cellSize
}

func (o *PanelObject) SetState(state *types.BoardState) {
	o.state = state
}

func (o *PanelObject) SetStatus(lines ...string) {
	o.status = lines
}

// StatsLines formats the counters shown under the preview.
func StatsLines(state *types.BoardState) []string {
	if state == nil {
		return nil
	}
	return []string{
		fmt.Sprintf("Rows: %d", state.Stats.RowsCleared),
		fmt.Sprintf("Pieces: %d", state.Stats.PiecesSpawned),
		fmt.Sprintf("Garbage: %d", state.Stats.GarbageRows),
	}
}

func (o *PanelObject) Draw(screen *ebiten.Image) {
	x, y := int(o.x), int(o.y)
	text.Draw(screen, "NEXT", fonts.TTFBoldFont, x, y+18, color.White)

	previewY := o.y + 30
	if o.state != nil && o.state.Next.Valid() {
		mask := tetris.ShapeMask(o.state.Next, 1)
		clr := CellColor(o.state.Next.Color())
		for _, p := range mask.Occupied() {
			cx := o.x + float32(p.Col)*o.cellSize
			cy := previewY + float32(p.Row)*o.cellSize
			vector.DrawFilledRect(screen, cx+1, cy+1, o.cellSize-2, o.cellSize-2, clr, false)
		}
	}

	lineY := int(previewY+float32(tetris.MaskSize)*o.cellSize) + 24
	for _, line := range StatsLines(o.state) {
		text.Draw(screen, line, fonts.TTFSmallFont, x, lineY, color.White)
		lineY += 22
	}
	lineY += 12
	for _, line := range o.status {
		text.Draw(screen, line, fonts.TTFSmallFont, x, lineY, color.NRGBA{R: 170, G: 170, B: 180, A: 255})
		lineY += 22
	}
}
