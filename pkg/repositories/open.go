package repositories

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
)

const DefaultDatabaseURL = "sqlite://stackfall.db"

// OpenRepository opens the repository named by a connection URL, either
// sqlite://<path> or postgresql://..., and applies the migrations found under
// migrationsDir/<backend>.
func OpenRepository(ctx context.Context, connStr string, migrationsDir string) (Repository, error) {
	if connStr == "" {
		connStr = DefaultDatabaseURL
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		repository, err := NewSQLiteRepository(ctx, u.Host+u.Path, filepath.Join(migrationsDir, "sqlite"))
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite repository: %v", err)
		}
		return repository, nil
	case "postgres", "postgresql":
		repository, err := NewPostgresRepository(ctx, u.String(), filepath.Join(migrationsDir, "postgres"))
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres repository: %v", err)
		}
		return repository, nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
