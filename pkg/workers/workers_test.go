package workers

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	gametypes "github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/messages"
	"github.com/cbodonnell/stackfall/pkg/network"
	"github.com/cbodonnell/stackfall/pkg/queue"
	"github.com/cbodonnell/stackfall/pkg/repositories"
	"github.com/cbodonnell/stackfall/pkg/repositories/models"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	lock      sync.Mutex
	sent      map[uint32][]*messages.Message
	broadcast []*messages.Message
	err       error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(map[uint32][]*messages.Message)}
}

func (s *fakeSender) SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent[clientID] = append(s.sent[clientID], msg)
	return nil
}

func (s *fakeSender) SendMessageToAll(ctx context.Context, msg *messages.Message) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.broadcast = append(s.broadcast, msg)
}

type fakeRepository struct {
	lock    sync.Mutex
	results []*models.SessionResult
	err     error
}

var _ repositories.Repository = &fakeRepository{}

func (r *fakeRepository) Close(ctx context.Context) error { return nil }

func (r *fakeRepository) SaveSessionResult(ctx context.Context, result *models.SessionResult) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.err != nil {
		return r.err
	}
	r.results = append(r.results, result)
	return nil
}

func (r *fakeRepository) GetSessionResult(ctx context.Context, id string) (*models.SessionResult, error) {
	return nil, &repositories.ErrNotFound{}
}

func (r *fakeRepository) ListSessionResults(ctx context.Context, limit int) ([]*models.SessionResult, error) {
	return nil, nil
}

func (r *fakeRepository) ListUserSessionResults(ctx context.Context, userID string, limit int) ([]*models.SessionResult, error) {
	return nil, nil
}

func (r *fakeRepository) saved() []*models.SessionResult {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]*models.SessionResult(nil), r.results...)
}

func TestConnectionEventWorker(t *testing.T) {
	events := make(chan network.ConnectionEvent, 2)
	sessionEvents := queue.NewInMemoryQueue(4)
	w := NewConnectionEventWorker(NewConnectionEventWorkerOptions{
		ConnectionEventChan: events,
		SessionEventQueue:   sessionEvents,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	events <- network.ConnectionEvent{ClientID: 3, Type: network.ConnectionEventTypeConnect, UserID: "ada"}
	events <- network.ConnectionEvent{ClientID: 3, Type: network.ConnectionEventTypeDisconnect, UserID: "ada"}

	assert.Equal(t, &gametypes.StartSessionEvent{ClientID: 3, UserID: "ada"}, sessionEvents.Dequeue())
	assert.Equal(t, &gametypes.EndSessionEvent{ClientID: 3}, sessionEvents.Dequeue())
}

func TestServerMessageWorker_HandleServerMessage(t *testing.T) {
	pf := tetris.NewPlayfield(tetris.NewPlayfieldOptions{
		Rows:    4,
		Columns: 4,
		Source:  tetris.NewSeededSource(1, 2),
	})
	pf.SpawnNext()
	boardState := gametypes.NewBoardState(pf)

	tests := []struct {
		name    string
		msg     ServerMessage
		wantErr bool
		check   func(t *testing.T, payload []byte)
	}{
		{
			name: "board state",
			msg:  ServerMessage{ClientID: 9, Type: messages.MessageTypeServerBoardState, Message: boardState},
			check: func(t *testing.T, payload []byte) {
				got, err := messages.DeserializeBoardState(payload)
				require.NoError(t, err)
				assert.True(t, boardState.Equal(got))
			},
		},
		{
			name: "rows cleared",
			msg:  ServerMessage{ClientID: 9, Type: messages.MessageTypeServerRowsCleared, Message: &messages.ServerRowsCleared{Count: 2, Total: 5}},
			check: func(t *testing.T, payload []byte) {
				got := &messages.ServerRowsCleared{}
				require.NoError(t, json.Unmarshal(payload, got))
				assert.Equal(t, &messages.ServerRowsCleared{Count: 2, Total: 5}, got)
			},
		},
		{
			name:    "wrong payload type",
			msg:     ServerMessage{ClientID: 9, Type: messages.MessageTypeServerNewPiece, Message: &messages.ServerRowsCleared{}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			msg:     ServerMessage{ClientID: 9, Type: messages.MessageTypeClientPing},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := newFakeSender()
			w := NewServerMessageWorker(NewServerMessageWorkerOptions{Sender: sender})

			err := w.handleServerMessage(context.Background(), tt.msg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, sender.sent)
				return
			}
			require.NoError(t, err)
			require.Len(t, sender.sent[9], 1)
			assert.Equal(t, tt.msg.Type, sender.sent[9][0].Type)
			tt.check(t, sender.sent[9][0].Payload)
		})
	}
}

func TestServerMessageWorker_Broadcast(t *testing.T) {
	sender := newFakeSender()
	w := NewServerMessageWorker(NewServerMessageWorkerOptions{Sender: sender})

	err := w.handleServerMessage(context.Background(), ServerMessage{
		Type:    messages.MessageTypeServerGameOver,
		Message: &messages.ServerGameOver{SessionID: "abc"},
	})
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
	require.Len(t, sender.broadcast, 1)
	assert.Equal(t, messages.MessageTypeServerGameOver, sender.broadcast[0].Type)
}

func TestServerMessageWorker_SendError(t *testing.T) {
	sender := newFakeSender()
	sender.err = errors.New("client gone")
	w := NewServerMessageWorker(NewServerMessageWorkerOptions{Sender: sender})

	err := w.handleServerMessage(context.Background(), ServerMessage{
		ClientID: 4,
		Type:     messages.MessageTypeServerNewPiece,
		Message:  &messages.ServerNewPiece{Current: tetris.FamilyI, Next: tetris.FamilyO},
	})
	assert.Error(t, err)
}

func TestSaveResultWorker(t *testing.T) {
	repo := &fakeRepository{}
	requests := make(chan SaveResultRequest, 4)
	w := NewSaveResultWorker(NewSaveResultWorkerOptions{
		Repository:     repo,
		SaveResultChan: requests,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	requests <- SaveResultRequest{Result: &models.SessionResult{ID: "a", UserID: "ada", Reason: models.EndReasonGameOver}}
	requests <- SaveResultRequest{}
	requests <- SaveResultRequest{Result: &models.SessionResult{ID: "b", UserID: "ada", Reason: models.EndReasonStopped}}

	require.Eventually(t, func() bool { return len(repo.saved()) == 2 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	saved := repo.saved()
	assert.Equal(t, "a", saved[0].ID)
	assert.Equal(t, "b", saved[1].ID)
}

func TestSaveResultWorker_FlushOnStop(t *testing.T) {
	repo := &fakeRepository{}
	requests := make(chan SaveResultRequest, 4)
	w := NewSaveResultWorker(NewSaveResultWorkerOptions{
		Repository:     repo,
		SaveResultChan: requests,
	})

	requests <- SaveResultRequest{Result: &models.SessionResult{ID: "a"}}
	requests <- SaveResultRequest{Result: &models.SessionResult{ID: "b"}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	// select picks randomly between a ready request and a done context, so
	// the first request may be saved by either path
	assert.Len(t, repo.saved(), 2)
}
