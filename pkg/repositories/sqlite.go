package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cbodonnell/stackfall/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies every migration
// file in the migrations directory in name order.
func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// sqlite allows a single writer; this also keeps :memory: databases on one connection
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db, migrations); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func migrate(ctx context.Context, db *sql.DB, migrations string) error {
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

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSessionResult(ctx context.Context, result *models.SessionResult) error {
	q := `
	INSERT OR REPLACE INTO session_results
	(id, user_id, started_at, ended_at, board_rows, board_columns, rows_cleared, pieces_spawned, garbage_rows, reason)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q,
		result.ID,
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

const sqliteSelectResult = `
SELECT id, user_id, started_at, ended_at, board_rows, board_columns, rows_cleared, pieces_spawned, garbage_rows, reason
FROM session_results
`

func (r *SQLiteRepository) GetSessionResult(ctx context.Context, id string) (*models.SessionResult, error) {
	q := sqliteSelectResult + `WHERE id = ?;`
	result, err := scanSessionResult(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to scan session result: %v", err)
	}

	return result, nil
}

func (r *SQLiteRepository) ListSessionResults(ctx context.Context, limit int) ([]*models.SessionResult, error) {
	q := sqliteSelectResult + `ORDER BY rows_cleared DESC, ended_at ASC LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query session results: %v", err)
	}
	defer rows.Close()

	return scanSessionResults(rows)
}

func (r *SQLiteRepository) ListUserSessionResults(ctx context.Context, userID string, limit int) ([]*models.SessionResult, error) {
	q := sqliteSelectResult + `WHERE user_id = ? ORDER BY ended_at DESC LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, userID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query session results: %v", err)
	}
	defer rows.Close()

	return scanSessionResults(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSessionResult(row rowScanner) (*models.SessionResult, error) {
	result := &models.SessionResult{}
	var reason string
	err := row.Scan(
		&result.ID,
		&result.UserID,
		&result.StartedAt,
		&result.EndedAt,
		&result.Rows,
		&result.Columns,
		&result.RowsCleared,
		&result.PiecesSpawned,
		&result.GarbageRows,
		&reason,
	)
	if err != nil {
		return nil, err
	}
	result.Reason = models.EndReason(reason)
	return result, nil
}

func scanSessionResults(rows *sql.Rows) ([]*models.SessionResult, error) {
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
