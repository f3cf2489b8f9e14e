package main

import (
	"fmt"

	"github.com/cbodonnell/stackfall/client/drivers"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

const (
	// cellWidth is the number of terminal columns per board column, which
	// keeps cells roughly square.
	cellWidth = 2
	// boardLeft and boardTop place the board inside the terminal.
	boardLeft = 2
	boardTop  = 1
)

var palette = map[tetris.Color]termbox.Attribute{
	tetris.Color(tetris.FamilyI): termbox.ColorCyan,
	tetris.Color(tetris.FamilyO): termbox.ColorYellow,
	tetris.Color(tetris.FamilyT): termbox.ColorMagenta,
	tetris.Color(tetris.FamilyZ): termbox.ColorRed,
	tetris.Color(tetris.FamilyS): termbox.ColorGreen,
	tetris.Color(tetris.FamilyL): termbox.ColorLightRed,
	tetris.Color(tetris.FamilyJ): termbox.ColorBlue,
	tetris.ColorGarbage:          termbox.ColorDarkGray,
}

// cellAttribute returns the background of a cell tag, ColorDefault for empty.
func cellAttribute(c tetris.Color) termbox.Attribute {
	if attr, ok := palette[c]; ok {
		return attr
	}
	return termbox.ColorDefault
}

// action is what a key press asks of the terminal client.
type action int

const (
	actionNone action = iota
	actionCommand
	actionNewGame
	actionQuit
)

// keyAction maps a key event to a client action and, for actionCommand, the
// command to apply.
func keyAction(ev termbox.Event) (action, types.Command) {
	switch ev.Key {
	case termbox.KeyArrowLeft:
		return actionCommand, types.CommandMoveLeft
	case termbox.KeyArrowRight:
		return actionCommand, types.CommandMoveRight
	case termbox.KeyArrowUp:
		return actionCommand, types.CommandRotate
	case termbox.KeyArrowDown, termbox.KeySpace:
		return actionCommand, types.CommandDrop
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return actionQuit, 0
	}
	switch ev.Ch {
	case 'a', 'A':
		return actionCommand, types.CommandMoveLeft
	case 'd', 'D':
		return actionCommand, types.CommandMoveRight
	case 'w', 'W', 'x', 'X':
		return actionCommand, types.CommandRotate
	case 's', 'S':
		return actionCommand, types.CommandDrop
	case 'p', 'P':
		return actionCommand, types.CommandPause
	case 'r', 'R':
		return actionCommand, types.CommandResume
	case 'n', 'N':
		return actionNewGame, 0
	case 'q', 'Q':
		return actionQuit, 0
	}
	return actionNone, 0
}

// togglePause turns a pause request into resume when the session is paused.
func togglePause(cmd types.Command, state *types.BoardState) types.Command {
	if cmd == types.CommandPause && state != nil && state.Paused {
		return types.CommandResume
	}
	return cmd
}

// drawText writes s starting at (x, y) and returns the column after it.
func drawText(x, y int, s string, fg, bg termbox.Attribute) int {
	for _, r := range s {
		termbox.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawCentered writes s centred on the span [left, left+width).
func drawCentered(left, width, y int, s string, fg, bg termbox.Attribute) {
	x := left + (width-runewidth.StringWidth(s))/2
	if x < left {
		x = left
	}
	drawText(x, y, s, fg, bg)
}

// screen is what the terminal shows besides the board.
type screen struct {
	message string
}

func (s *screen) notice(n drivers.Notice) {
	switch n.Type {
	case drivers.NoticeRowsCleared:
		s.message = fmt.Sprintf("%d row(s) cleared!", n.Count)
	case drivers.NoticeGameOver:
		s.message = "GAME OVER"
	case drivers.NoticeNewPiece:
	}
}

func (s *screen) draw(state *types.BoardState) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("failed to clear terminal: %v", err)
	}
	if state == nil {
		drawText(boardLeft, boardTop, "Starting...", termbox.ColorDefault, termbox.ColorDefault)
		return termbox.Flush()
	}

	boardWidth := state.Columns * cellWidth
	for row := -1; row <= state.Rows; row++ {
		termbox.SetCell(boardLeft-1, boardTop+row, '|', termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCell(boardLeft+boardWidth, boardTop+row, '|', termbox.ColorWhite, termbox.ColorDefault)
	}
	for x := boardLeft - 1; x <= boardLeft+boardWidth; x++ {
		termbox.SetCell(x, boardTop-1, '-', termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCell(x, boardTop+state.Rows, '-', termbox.ColorWhite, termbox.ColorDefault)
	}

	for row := 0; row < state.Rows; row++ {
		for col := 0; col < state.Columns; col++ {
			bg := cellAttribute(state.ColorAt(row, col))
			ch := ' '
			if bg == termbox.ColorDefault {
				ch = '.'
			}
			for i := 0; i < cellWidth; i++ {
				termbox.SetCell(boardLeft+col*cellWidth+i, boardTop+row, ch, termbox.ColorDarkGray, bg)
			}
		}
	}

	panelLeft := boardLeft + boardWidth + 3
	y := boardTop
	drawText(panelLeft, y, "NEXT", termbox.ColorWhite|termbox.AttrBold, termbox.ColorDefault)
	y++
	if state.Next.Valid() {
		bg := cellAttribute(state.Next.Color())
		for _, p := range tetris.ShapeMask(state.Next, 1).Occupied() {
			for i := 0; i < cellWidth; i++ {
				termbox.SetCell(panelLeft+p.Col*cellWidth+i, y+p.Row, ' ', termbox.ColorDefault, bg)
			}
		}
	}
	y += tetris.MaskSize + 1

	lines := []string{
		fmt.Sprintf("Rows:    %d", state.Stats.RowsCleared),
		fmt.Sprintf("Pieces:  %d", state.Stats.PiecesSpawned),
		fmt.Sprintf("Garbage: %d", state.Stats.GarbageRows),
		"",
		"arrows/wasd move",
		"space drop, p pause",
		"n new game, q quit",
	}
	for _, line := range lines {
		drawText(panelLeft, y, line, termbox.ColorDefault, termbox.ColorDefault)
		y++
	}

	status := s.message
	if state.Paused {
		status = "PAUSED"
	}
	if state.Over {
		status = "GAME OVER - n to play again"
	}
	if status != "" {
		drawCentered(boardLeft, boardWidth, boardTop+state.Rows/2, status, termbox.ColorWhite|termbox.AttrBold, termbox.ColorBlack)
	}

	return termbox.Flush()
}
