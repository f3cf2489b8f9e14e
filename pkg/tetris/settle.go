package tetris

// SettleResult describes what a settle evaluation did.
type SettleResult struct {
	// Locked is true when the piece was merged into the fixed cells.
	Locked bool
	// GameOver is true when the piece overlapped fixed cells.
	GameOver bool
	// RowsCleared is the number of full rows removed after locking.
	RowsCleared int
}

// Tick is the drop-one-row-or-settle step. It settles first, so commands
// applied since the last settle are accounted for; if the piece is still
// falling it moves down one row without a feasibility check and settles again.
// It does nothing when no piece is active or the game is over.
func (pf *Playfield) Tick() SettleResult {
	if pf.piece == nil || pf.over {
		return SettleResult{}
	}
	if res := pf.Settle(); res.Locked || res.GameOver {
		return res
	}
	pf.piece.move(down)
	return pf.Settle()
}

// Settle evaluates the active piece: overlap ends the game, otherwise the piece
// locks if any of its columns is resting on the floor or on a fixed cell, and
// full rows are cleared.
func (pf *Playfield) Settle() SettleResult {
	if pf.piece == nil || pf.over {
		return SettleResult{}
	}

	if pf.overlaps() {
		pf.over = true
		pf.notifyGameOver()
		return SettleResult{GameOver: true}
	}

	if !pf.resting() {
		return SettleResult{}
	}

	pf.lock()
	cleared := pf.clearFullRows()
	return SettleResult{Locked: true, RowsCleared: cleared}
}

func (pf *Playfield) overlaps() bool {
	for _, p := range pf.piece.Cells() {
		if pf.blocked(p) {
			return true
		}
	}
	return false
}

// resting checks, for each local column, only the lowest occupied cell: the
// piece must lock if that cell is on the last row or above a fixed cell.
func (pf *Playfield) resting() bool {
	mask := pf.piece.Mask()
	for col := 0; col < MaskSize; col++ {
		for row := MaskSize - 1; row >= 0; row-- {
			if !mask[row][col] {
				continue
			}
			p := pf.piece.ToBoard(Point{Row: row, Col: col})
			if p.Row == pf.rows-1 || pf.cells[p.Row+1][p.Col].Fixed {
				return true
			}
			break
		}
	}
	return false
}

func (pf *Playfield) lock() {
	color := pf.piece.Color()
	for _, p := range pf.piece.Cells() {
		cell := &pf.cells[p.Row][p.Col]
		cell.Fixed = true
		cell.Color = color
	}
	pf.piece = nil
}

// clearFullRows removes every full row and notifies listeners with the count.
// Rows are found bottom to top; each deletion shifts everything above it down
// one row, so later (higher) indices are offset by the deletions before them.
func (pf *Playfield) clearFullRows() int {
	full := pf.fullRows()
	if len(full) == 0 {
		return 0
	}
	for deleted, row := range full {
		pf.deleteRow(row + deleted)
	}
	pf.notifyRowsCleared(len(full))
	return len(full)
}

func (pf *Playfield) fullRows() []int {
	var full []int
	for row := pf.rows - 1; row >= 0; row-- {
		if pf.rowFull(row) {
			full = append(full, row)
		}
	}
	return full
}

func (pf *Playfield) rowFull(row int) bool {
	for col := 0; col < pf.columns; col++ {
		if !pf.cells[row][col].Fixed {
			return false
		}
	}
	return true
}

// deleteRow copies every row above target one row down and empties row 0.
func (pf *Playfield) deleteRow(target int) {
	for row := target; row >= 1; row-- {
		for col := 0; col < pf.columns; col++ {
			pf.cells[row][col].copyState(pf.cells[row-1][col])
		}
	}
	for col := 0; col < pf.columns; col++ {
		pf.cells[0][col].clear()
	}
}
