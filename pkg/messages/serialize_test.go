package messages

import (
	"encoding/json"
	"testing"

	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeMessage(t *testing.T) {
	command, err := json.Marshal(&ClientCommand{Command: types.CommandRotate})
	require.NoError(t, err)

	tests := []struct {
		name    string
		message *Message
	}{
		{
			name: "client command",
			message: &Message{
				ClientID: 42,
				Type:     MessageTypeClientCommand,
				Payload:  command,
			},
		},
		{
			name: "server pong without payload",
			message: &Message{
				Type: MessageTypeServerPong,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeMessage(tt.message)
			require.NoError(t, err)

			got, err := DeserializeMessage(b)
			require.NoError(t, err)

			assert.Equal(t, tt.message.ClientID, got.ClientID)
			assert.Equal(t, tt.message.Type, got.Type)
			assert.Equal(t, len(tt.message.Payload), len(got.Payload))
			if len(tt.message.Payload) > 0 {
				assert.Equal(t, tt.message.Payload, got.Payload)
			}
		})
	}
}

func TestDeserializeMessage_NotCompressed(t *testing.T) {
	_, err := DeserializeMessage([]byte("not zstd"))
	assert.Error(t, err)
}

func TestDeserializeMessage_DecodedSizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "small payload", size: 1 << 10},
		{name: "payload over the limit", size: MaxDecodedSize + 1<<20, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeMessage(&Message{
				Type:    MessageTypeServerBoardState,
				Payload: make([]byte, tt.size),
			})
			require.NoError(t, err)
			require.Less(t, len(b), MaxDecodedSize)

			got, err := DeserializeMessage(b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got.Payload, tt.size)
		})
	}
}

func TestSerializeDeserializeBoardState(t *testing.T) {
	pf := tetris.NewPlayfield(tetris.NewPlayfieldOptions{
		Rows:    20,
		Columns: 10,
		Source:  tetris.NewSeededSource(3, 4),
	})
	pf.SpawnNext()
	pf.AddGarbageCell()

	state := types.NewBoardState(pf)
	state.Timestamp = 1700000000000
	state.SessionID = "5b7c1c1e-0c57-4c38-9a39-7d1f8c1d6a10"
	state.Paused = true
	state.Stats = types.Stats{RowsCleared: 12, PiecesSpawned: 40, GarbageRows: 3}

	b, err := SerializeBoardState(state)
	require.NoError(t, err)

	got, err := DeserializeBoardState(b)
	require.NoError(t, err)
	assert.True(t, state.Equal(got), "got %+v, want %+v", got, state)
}

func TestSerializeBoardState_CellCountMismatch(t *testing.T) {
	_, err := SerializeBoardState(&types.BoardState{Rows: 2, Columns: 2, Cells: make([]tetris.Color, 3)})
	assert.Error(t, err)
}

func TestMessageType_String(t *testing.T) {
	assert.Equal(t, "ClientCommand", MessageTypeClientCommand.String())
	assert.Equal(t, "Unknown", MessageType(0).String())
}
