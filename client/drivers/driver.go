package drivers

import (
	"time"

	"github.com/cbodonnell/stackfall/pkg/game/types"
)

// NoticeType identifies a session notification shown by the game scene.
type NoticeType uint8

const (
	NoticeNewPiece NoticeType = iota + 1
	NoticeRowsCleared
	NoticeGameOver
)

// Notice is a session notification. Count is set for NoticeRowsCleared and
// Stats for NoticeGameOver.
type Notice struct {
	Type  NoticeType
	Count int
	Stats types.Stats
}

// Driver runs the session shown by the game scene, either in process or on a
// remote server.
type Driver interface {
	// Update advances the session to now and collects pending notifications.
	Update(now time.Time) error
	// Apply sends a player command.
	Apply(cmd types.Command) error
	// NewGame ends the current session and starts another.
	NewGame() error
	// State returns the latest board state, or nil before the first one.
	State() *types.BoardState
	// Notices returns and clears the notifications collected so far.
	Notices() []Notice
	// Stop ends the session.
	Stop()
	// Status returns extra lines for the side panel.
	Status() []string
}
