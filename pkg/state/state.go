package state

import (
	"context"
	"errors"

	gametypes "github.com/cbodonnell/stackfall/pkg/game/types"
)

// ErrNotFound is returned when no snapshot exists for a session.
var ErrNotFound = errors.New("session not found")

// StateManager provides shared access to live session snapshots.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the latest snapshot of a session.
	Get(ctx context.Context, sessionID string) (*gametypes.BoardState, error)
	// Set stores the latest snapshot of a session.
	Set(ctx context.Context, boardState *gametypes.BoardState) error
	// Delete removes a session's snapshot.
	Delete(ctx context.Context, sessionID string) error
	// List returns the IDs of every live session.
	List(ctx context.Context) ([]string, error)
}
