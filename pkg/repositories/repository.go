package repositories

import (
	"context"

	"github.com/cbodonnell/stackfall/pkg/repositories/models"
)

// DefaultListLimit caps list queries when the caller passes a non-positive limit.
const DefaultListLimit = 50

type Repository interface {
	Close(ctx context.Context) error
	SaveSessionResult(ctx context.Context, result *models.SessionResult) error
	// GetSessionResult returns ErrNotFound when no result has the ID.
	GetSessionResult(ctx context.Context, id string) (*models.SessionResult, error)
	// ListSessionResults returns the best results, most rows cleared first.
	ListSessionResults(ctx context.Context, limit int) ([]*models.SessionResult, error)
	// ListUserSessionResults returns a user's results, most recent first.
	ListUserSessionResults(ctx context.Context, userID string, limit int) ([]*models.SessionResult, error)
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}
