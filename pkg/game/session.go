package game

import (
	"time"

	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/repositories/models"
	"github.com/google/uuid"
)

// Session is one client's game: a controller plus the bookkeeping the game
// loop needs to step it and to record its result.
type Session struct {
	ID         uuid.UUID
	ClientID   uint32
	UserID     string
	StartedAt  time.Time
	controller *Controller

	lastStep    time.Time
	lastGarbage time.Time
	// dirty is set when the board changed since the last published snapshot
	dirty bool
	// saved is set once the result has been handed to the save worker
	saved bool
}

// NewSession wraps a controller. The step and garbage clocks start at t.
func NewSession(clientID uint32, userID string, controller *Controller, t time.Time) *Session {
	return &Session{
		ID:          uuid.New(),
		ClientID:    clientID,
		UserID:      userID,
		StartedAt:   t,
		controller:  controller,
		lastStep:    t,
		lastGarbage: t,
		dirty:       true,
	}
}

func (s *Session) Controller() *Controller {
	return s.controller
}

// Apply runs a command at time t and reports whether it changed the board.
// Drop and Resume restart the step clock.
func (s *Session) Apply(cmd types.Command, t time.Time) bool {
	if !s.controller.Apply(cmd) {
		return false
	}
	s.dirty = true
	if cmd == types.CommandDrop || cmd == types.CommandResume {
		s.lastStep = t
	}
	return true
}

// Advance steps the piece once stepInterval has elapsed and injects a garbage
// row once garbageInterval has elapsed. A zero garbageInterval disables
// garbage. A paused session keeps its clocks at t. It reports whether the
// board changed.
func (s *Session) Advance(t time.Time, stepInterval, garbageInterval time.Duration) bool {
	c := s.controller
	if !c.Running() {
		return false
	}
	if c.Paused() {
		s.lastStep = t
		s.lastGarbage = t
		return false
	}
	changed := false
	if t.Sub(s.lastStep) >= stepInterval {
		c.Step()
		s.lastStep = t
		changed = true
	}
	if garbageInterval > 0 && c.Running() && t.Sub(s.lastGarbage) >= garbageInterval {
		c.AddIncompleteRow()
		s.lastGarbage = t
		changed = true
	}
	if changed {
		s.dirty = true
	}
	return changed
}

// Snapshot returns the board state stamped with t and the session ID.
func (s *Session) Snapshot(t time.Time) *types.BoardState {
	state := s.controller.Snapshot()
	state.Timestamp = t.UnixMilli()
	state.SessionID = s.ID.String()
	return state
}

// result summarizes the session as it ends.
func (s *Session) result(reason models.EndReason, t time.Time) *models.SessionResult {
	stats := s.controller.Stats()
	pf := s.controller.Playfield()
	return &models.SessionResult{
		ID:            s.ID.String(),
		UserID:        s.UserID,
		StartedAt:     s.StartedAt.UnixMilli(),
		EndedAt:       t.UnixMilli(),
		Rows:          pf.Rows(),
		Columns:       pf.Columns(),
		RowsCleared:   stats.RowsCleared,
		PiecesSpawned: stats.PiecesSpawned,
		GarbageRows:   stats.GarbageRows,
		Reason:        reason,
	}
}
