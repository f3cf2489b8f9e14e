package repositories

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRepository(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "stackfall.db")

	tests := []struct {
		name    string
		connStr string
		wantErr bool
	}{
		{name: "sqlite file", connStr: "sqlite://" + dbPath},
		{name: "unknown scheme", connStr: "mysql://localhost/stackfall", wantErr: true},
		{name: "bad url", connStr: "::", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository, err := OpenRepository(ctx, tt.connStr, "../../migrations")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer repository.Close(ctx)

			result := newResult("alice", 5000, 2)
			require.NoError(t, repository.SaveSessionResult(ctx, result))
			got, err := repository.GetSessionResult(ctx, result.ID)
			require.NoError(t, err)
			assert.Equal(t, result.RowsCleared, got.RowsCleared)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "not found", err: &ErrNotFound{ID: "abc"}, want: true},
		{name: "wrapped", err: fmt.Errorf("failed to get result: %w", &ErrNotFound{}), want: true},
		{name: "other", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
	assert.Equal(t, "session result abc not found", (&ErrNotFound{ID: "abc"}).Error())
}
