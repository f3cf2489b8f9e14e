package state

import (
	"context"
	"testing"

	gametypes "github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	board := &gametypes.BoardState{SessionID: "b", Rows: 1, Columns: 2, Cells: []tetris.Color{0, 1}}
	require.NoError(t, m.Set(ctx, board))
	require.NoError(t, m.Set(ctx, &gametypes.BoardState{SessionID: "a"}))

	// later writes to the caller's value do not leak into the store
	board.Cells[0] = tetris.ColorGarbage

	got, err := m.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []tetris.Color{0, 1}, got.Cells)

	got.Cells[1] = tetris.ColorGarbage
	again, err := m.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, tetris.Color(1), again.Cells[1])

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, m.Delete(ctx, "b"))
	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStateManager_SetValidation(t *testing.T) {
	m := NewInMemoryStateManager()
	assert.Error(t, m.Set(context.Background(), nil))
	assert.Error(t, m.Set(context.Background(), &gametypes.BoardState{}))
}
