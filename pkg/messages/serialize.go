package messages

import (
	"bytes"
	"fmt"
	"io"

	boardfb "github.com/cbodonnell/stackfall/flatbuffers/board"
	messagefb "github.com/cbodonnell/stackfall/flatbuffers/message"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

const (
	// MaxDecodedSize bounds the decompressed size of a single message
	MaxDecodedSize = 4 << 20
	// maxWindowSize bounds the zstd window on both ends of the wire
	maxWindowSize = 1 << 20
)

func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithWindowSize(maxWindowSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderMaxWindow(maxWindowSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(io.LimitReader(compReader, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}
	if len(b) > MaxDecodedSize {
		return nil, fmt.Errorf("decompressed message exceeds %d bytes", MaxDecodedSize)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)

	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddClientId(builder, m.ClientID)
	messagefb.MessageAddType(builder, byte(m.Type))
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)
	b := builder.FinishedBytes()

	return b, nil
}

func DeserializeMessageFlatbuffer(b []byte) (m *Message, err error) {
	// the generated accessors index the buffer without bounds checks
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("malformed message buffer: %v", r)
		}
	}()

	message := &Message{}
	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	message.ClientID = messageFlatbuffer.ClientId()
	message.Type = MessageType(messageFlatbuffer.Type())
	message.Payload = messageFlatbuffer.PayloadBytes()

	return message, nil
}

func SerializeBoardState(state *types.BoardState) ([]byte, error) {
	if state.Rows*state.Columns != len(state.Cells) {
		return nil, fmt.Errorf("board state has %d cells, want %d", len(state.Cells), state.Rows*state.Columns)
	}

	builder := flatbuffers.NewBuilder(256)
	boardState := SerializeBoardStateFlatbuffer(builder, state)
	builder.Finish(boardState)
	return builder.FinishedBytes(), nil
}

func SerializeBoardStateFlatbuffer(builder *flatbuffers.Builder, state *types.BoardState) flatbuffers.UOffsetT {
	sessionID := builder.CreateString(state.SessionID)

	cells := make([]byte, len(state.Cells))
	for i, c := range state.Cells {
		cells[i] = byte(c)
	}
	cellsVector := builder.CreateByteVector(cells)

	boardfb.BoardStateStart(builder)
	boardfb.BoardStateAddTimestamp(builder, state.Timestamp)
	boardfb.BoardStateAddSessionId(builder, sessionID)
	boardfb.BoardStateAddRows(builder, uint16(state.Rows))
	boardfb.BoardStateAddColumns(builder, uint16(state.Columns))
	boardfb.BoardStateAddCells(builder, cellsVector)
	boardfb.BoardStateAddCurrent(builder, byte(state.Current))
	boardfb.BoardStateAddNext(builder, byte(state.Next))
	boardfb.BoardStateAddPaused(builder, state.Paused)
	boardfb.BoardStateAddOver(builder, state.Over)
	stats := boardfb.CreateStats(builder,
		int32(state.Stats.RowsCleared),
		int32(state.Stats.PiecesSpawned),
		int32(state.Stats.GarbageRows),
	)
	boardfb.BoardStateAddStats(builder, stats)
	return boardfb.BoardStateEnd(builder)
}

func DeserializeBoardState(b []byte) (*types.BoardState, error) {
	state, err := DeserializeBoardStateFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize board state: %v", err)
	}

	return state, nil
}

func DeserializeBoardStateFlatbuffer(b []byte) (state *types.BoardState, err error) {
	defer func() {
		if r := recover(); r != nil {
			state, err = nil, fmt.Errorf("malformed board state buffer: %v", r)
		}
	}()

	fb := boardfb.GetRootAsBoardState(b, 0)
	state = &types.BoardState{
		Timestamp: fb.Timestamp(),
		SessionID: string(fb.SessionId()),
		Rows:      int(fb.Rows()),
		Columns:   int(fb.Columns()),
		Current:   tetris.Family(fb.Current()),
		Next:      tetris.Family(fb.Next()),
		Paused:    fb.Paused(),
		Over:      fb.Over(),
	}

	cells := fb.CellsBytes()
	if len(cells) != state.Rows*state.Columns {
		return nil, fmt.Errorf("board state has %d cells, want %d", len(cells), state.Rows*state.Columns)
	}
	state.Cells = make([]tetris.Color, len(cells))
	for i, c := range cells {
		state.Cells[i] = tetris.Color(c)
	}

	if stats := fb.Stats(nil); stats != nil {
		state.Stats = types.Stats{
			RowsCleared:   int(stats.RowsCleared()),
			PiecesSpawned: int(stats.PiecesSpawned()),
			GarbageRows:   int(stats.GarbageRows()),
		}
	}

	return state, nil
}
