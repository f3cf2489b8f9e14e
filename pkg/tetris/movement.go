package tetris

// fits reports whether every occupied cell of mask, placed at the piece's
// offset shifted by delta, lands inside the board on a cell that is not fixed.
func (pf *Playfield) fits(mask Mask, delta Point) bool {
	for _, p := range pf.piece.cellsOf(mask, delta) {
		if pf.blocked(p) {
			return false
		}
	}
	return true
}

func (pf *Playfield) canShift(delta Point) bool {
	if pf.piece == nil || pf.over {
		return false
	}
	return pf.fits(pf.piece.Mask(), delta)
}

func (pf *Playfield) CanMoveLeft() bool {
	return pf.canShift(left)
}

// MoveLeft shifts the piece one column left if CanMoveLeft allows it.
func (pf *Playfield) MoveLeft() bool {
	if !pf.CanMoveLeft() {
		return false
	}
	pf.piece.move(left)
	return true
}

func (pf *Playfield) CanMoveRight() bool {
	return pf.canShift(right)
}

// MoveRight shifts the piece one column right if CanMoveRight allows it.
func (pf *Playfield) MoveRight() bool {
	if !pf.CanMoveRight() {
		return false
	}
	pf.piece.move(right)
	return true
}

// CanRotate checks the next orientation's mask at the current offset. There is
// no kick search: a blocked rotation simply fails.
func (pf *Playfield) CanRotate() bool {
	if pf.piece == nil || pf.over {
		return false
	}
	return pf.fits(pf.piece.NextOrientationMask(), none)
}

// Rotate advances the piece's orientation if CanRotate allows it.
func (pf *Playfield) Rotate() bool {
	if !pf.CanRotate() {
		return false
	}
	pf.piece.AdvanceOrientation()
	return true
}
