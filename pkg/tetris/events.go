package tetris

// Listener receives playfield notifications.
type Listener interface {
	// RowsCleared is called once per lock that completed rows, with the number
	// of rows removed.
	RowsCleared(count int)
	// GameOver is called when a settle finds the piece overlapping fixed cells.
	GameOver()
	// NewPiece is called on every spawn with the spawned and lookahead families.
	NewPiece(current, next Family)
}

// ListenerFuncs adapts optional callbacks to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnRowsCleared func(count int)
	OnGameOver    func()
	OnNewPiece    func(current, next Family)
}

var _ Listener = ListenerFuncs{}

func (l ListenerFuncs) RowsCleared(count int) {
	if l.OnRowsCleared != nil {
		l.OnRowsCleared(count)
	}
}

func (l ListenerFuncs) GameOver() {
	if l.OnGameOver != nil {
		l.OnGameOver()
	}
}

func (l ListenerFuncs) NewPiece(current, next Family) {
	if l.OnNewPiece != nil {
		l.OnNewPiece(current, next)
	}
}

func (pf *Playfield) notifyRowsCleared(count int) {
	for _, l := range pf.listeners {
		l.RowsCleared(count)
	}
}

func (pf *Playfield) notifyGameOver() {
	for _, l := range pf.listeners {
		l.GameOver()
	}
}

func (pf *Playfield) notifyNewPiece(current, next Family) {
	for _, l := range pf.listeners {
		l.NewPiece(current, next)
	}
}
