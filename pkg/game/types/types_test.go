package types

import (
	"testing"

	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	for c := CommandMoveLeft; c <= CommandResume; c++ {
		got, err := ParseCommand(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCommand("hold")
	assert.Error(t, err)
}

func TestNewBoardState(t *testing.T) {
	pf := tetris.NewPlayfield(tetris.NewPlayfieldOptions{
		Rows:    6,
		Columns: 4,
		Source:  tetris.NewSeededSource(1, 2),
	})
	pf.SpawnNext()

	state := NewBoardState(pf)

	assert.Equal(t, 6, state.Rows)
	assert.Equal(t, 4, state.Columns)
	assert.Len(t, state.Cells, 24)
	assert.Equal(t, pf.ActivePiece().Family(), state.Current)
	assert.Equal(t, pf.Next(), state.Next)
	for row := 0; row < 6; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, pf.ColorAt(row, col), state.ColorAt(row, col))
		}
	}
	assert.Equal(t, tetris.ColorNone, state.ColorAt(6, 0))
}

func TestBoardState_CopyIsDeep(t *testing.T) {
	state := &BoardState{Rows: 1, Columns: 2, Cells: []tetris.Color{1, 2}}
	c := state.Copy()
	require.True(t, state.Equal(c))

	c.Cells[0] = tetris.ColorGarbage
	assert.False(t, state.Equal(c))
	assert.Equal(t, tetris.Color(1), state.Cells[0])
}
