package game

import (
	"github.com/cbodonnell/stackfall/pkg/game/constants"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
)

// EventType identifies a playfield notification collected by a Controller.
type EventType uint8

const (
	EventNewPiece EventType = iota + 1
	EventRowsCleared
	EventGameOver
)

// Event is a playfield notification buffered until the driver drains it.
type Event struct {
	Type        EventType
	RowsCleared int
	Current     tetris.Family
	Next        tetris.Family
}

// Controller drives a single playfield: it applies commands, steps the piece
// down, spawns after every lock and keeps session statistics. It is not safe
// for concurrent use.
type Controller struct {
	playfield *tetris.Playfield
	started   bool
	stopped   bool
	paused    bool
	stats     types.Stats
	events    []Event
}

// NewControllerOptions contains options for creating a new Controller.
type NewControllerOptions struct {
	Rows    int
	Columns int
	// Source picks spawned families. Defaults to a random source.
	Source tetris.Source
}

func NewController(opts NewControllerOptions) *Controller {
	if opts.Rows == 0 {
		opts.Rows = constants.DefaultRows
	}
	if opts.Columns == 0 {
		opts.Columns = constants.DefaultColumns
	}
	c := &Controller{}
	c.playfield = tetris.NewPlayfield(tetris.NewPlayfieldOptions{
		Rows:      opts.Rows,
		Columns:   opts.Columns,
		Source:    opts.Source,
		Listeners: []tetris.Listener{c},
	})
	return c
}

var _ tetris.Listener = &Controller{}

func (c *Controller) RowsCleared(count int) {
	c.stats.RowsCleared += count
	c.events = append(c.events, Event{Type: EventRowsCleared, RowsCleared: count})
}

func (c *Controller) GameOver() {
	c.events = append(c.events, Event{Type: EventGameOver})
}

func (c *Controller) NewPiece(current, next tetris.Family) {
	c.stats.PiecesSpawned++
	c.events = append(c.events, Event{Type: EventNewPiece, Current: current, Next: next})
}

// Playfield exposes the board for queries. Callers must not issue commands on
// it directly.
func (c *Controller) Playfield() *tetris.Playfield {
	return c.playfield
}

func (c *Controller) Stats() types.Stats {
	return c.stats
}

func (c *Controller) Paused() bool {
	return c.paused
}

// Running reports whether the session accepts commands and steps.
func (c *Controller) Running() bool {
	return c.started && !c.stopped && !c.playfield.IsOver()
}

// Done reports whether the session has ended, by game over or Stop.
func (c *Controller) Done() bool {
	return c.stopped || c.playfield.IsOver()
}

// Start spawns the first piece. It does nothing on a started controller.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	c.spawn()
}

// Stop ends the session without a game over. Further commands are ignored.
func (c *Controller) Stop() {
	c.stopped = true
}

// Pause suspends stepping and movement until Resume.
func (c *Controller) Pause() {
	if c.Running() {
		c.paused = true
	}
}

func (c *Controller) Resume() {
	c.paused = false
}

// Apply runs one command and reports whether it changed the session. A
// successful move or rotation is settled right away, so sliding onto a ledge
// can lock the piece.
func (c *Controller) Apply(cmd types.Command) bool {
	switch cmd {
	case types.CommandPause:
		if c.paused || !c.Running() {
			return false
		}
		c.Pause()
		return true
	case types.CommandResume:
		if !c.paused {
			return false
		}
		c.Resume()
		return true
	}

	if !c.Running() || c.paused {
		return false
	}

	var moved bool
	switch cmd {
	case types.CommandMoveLeft:
		moved = c.playfield.MoveLeft()
	case types.CommandMoveRight:
		moved = c.playfield.MoveRight()
	case types.CommandRotate:
		moved = c.playfield.Rotate()
	case types.CommandDrop:
		c.Step()
		return true
	default:
		return false
	}
	if moved {
		c.afterSettle(c.playfield.Settle())
	}
	return moved
}

// Step is one gravity tick: spawn when the board is empty, otherwise drop the
// piece one row, spawning the next piece in the same step if it locked.
func (c *Controller) Step() tetris.SettleResult {
	if !c.Running() || c.paused {
		return tetris.SettleResult{}
	}
	if !c.playfield.HasActivePiece() {
		return c.spawn()
	}
	res := c.playfield.Tick()
	c.afterSettle(res)
	return res
}

// AddIncompleteRow pushes a garbage row with one gap onto the bottom of the
// board and reports whether it ended the game.
func (c *Controller) AddIncompleteRow() bool {
	if !c.Running() {
		return false
	}
	c.stats.GarbageRows++
	if c.playfield.AddIncompleteRow() {
		return true
	}
	// the raised stack may now overlap or support the falling piece
	if c.playfield.HasActivePiece() {
		c.afterSettle(c.playfield.Settle())
	}
	return c.playfield.IsOver()
}

// DrainEvents returns and clears the buffered notifications.
func (c *Controller) DrainEvents() []Event {
	events := c.events
	c.events = nil
	return events
}

// Snapshot returns the current board state.
func (c *Controller) Snapshot() *types.BoardState {
	state := types.NewBoardState(c.playfield)
	state.Paused = c.paused
	state.Over = c.Done()
	state.Stats = c.stats
	return state
}

func (c *Controller) afterSettle(res tetris.SettleResult) {
	if res.Locked && !c.playfield.IsOver() {
		c.spawn()
	}
}

// spawn brings in the next piece. A spawn can lock straight onto the stack
// without ending the game, so it retries, at most once per board cell; a piece
// that locks and clears its own row would otherwise respawn forever.
func (c *Controller) spawn() tetris.SettleResult {
	limit := c.playfield.Rows() * c.playfield.Columns()
	var res tetris.SettleResult
	for i := 0; i < limit; i++ {
		res = c.playfield.SpawnNext()
		if !res.Locked {
			return res
		}
	}
	return res
}
