package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and applies every migration
// file in the migrations directory in name order.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to query database: %v", err)
	}
	log.Info("Connected to %s as %s", database, username)

	if err := migratePostgres(ctx, pool, migrations); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func migratePostgres(ctx context.Context, pool *pgxpool.Pool, migrations string) error {
	dir, err := os.ReadDir(migrations)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(dir, func(i, j int) bool {
		return dir[i].Name() < dir[j].Name()
	})

	for _, entry := range dir {
		if entry.IsDir() {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := pool.Exec(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) SaveSessionResult(ctx context.Context, result *models.SessionResult) error {
	id, err := uuid.Parse(result.ID)
	if err != nil {
		return fmt.Errorf("failed to parse session result ID: %v", err)
	}

	q := `
	INSERT INTO session_results
	(id, user_id, started_at, ended_at, board_rows, board_columns, rows_cleared, pieces_spawned, garbage_rows, reason)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO UPDATE SET
		ended_at = $4, rows_cleared = $7, pieces_spawned = $8, garbage_rows = $9, reason = $10;
	`
	_, err = r.pool.Exec(ctx, q,
		id,
		result.UserID,
		result.StartedAt,
		result.EndedAt,
		result.Rows,
		result.Columns,
		result.RowsCleared,
		result.PiecesSpawned,
		result.GarbageRows,
		string(result.Reason),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session result: %v", err)
	}

	return nil
}

const postgresSelectResult = `
SELECT id::text, user_id, started_at, ended_at, board_rows, board_columns, rows_cleared, pieces_spawned, garbage_rows, reason
FROM session_results
`

func (r *PostgresRepository) GetSessionResult(ctx context.Context, id string) (*models.SessionResult, error) {
	// the id column is a UUID, so anything else can never match
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, &ErrNotFound{ID: id}
	}

	q := postgresSelectResult + `WHERE id = $1;`
	result, err := scanSessionResult(r.pool.QueryRow(ctx, q, parsed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to scan session result: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListSessionResults(ctx context.Context, limit int) ([]*models.SessionResult, error) {
	q := postgresSelectResult + `ORDER BY rows_cleared DESC, ended_at ASC LIMIT $1;`
	rows, err := r.pool.Query(ctx, q, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query session results: %v", err)
	}
	defer rows.Close()

	return scanPgxSessionResults(rows)
}

func (r *PostgresRepository) ListUserSessionResults(ctx context.Context, userID string, limit int) ([]*models.SessionResult, error) {
	q := postgresSelectResult + `WHERE user_id = $1 ORDER BY ended_at DESC LIMIT $2;`
	rows, err := r.pool.Query(ctx, q, userID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query session results: %v", err)
	}
	defer rows.Close()

	return scanPgxSessionResults(rows)
}

func scanPgxSessionResults(rows pgx.Rows) ([]*models.SessionResult, error) {
	results := make([]*models.SessionResult, 0)
	for rows.Next() {
		result, err := scanSessionResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session result: %v", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session results: %v", err)
	}
	return results, nil
}
