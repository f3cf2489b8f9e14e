package game

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cbodonnell/stackfall/pkg/game/constants"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
	"github.com/cbodonnell/stackfall/pkg/queue"
	"github.com/cbodonnell/stackfall/pkg/repositories/models"
	"github.com/cbodonnell/stackfall/pkg/state"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/cbodonnell/stackfall/pkg/workers"
)

type GameManager struct {
	clientMessageQueue queue.Queue
	sessionEventQueue  queue.Queue
	stateManager       state.StateManager
	saveResultChan     chan<- workers.SaveResultRequest
	serverMessageChan  chan<- workers.ServerMessage
	gameLoopInterval   time.Duration
	stepInterval       time.Duration
	garbageInterval    time.Duration
	rows               int
	columns            int
	newSource          func() tetris.Source
	sessions           map[uint32]*Session
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	ClientMessageQueue queue.Queue
	SessionEventQueue  queue.Queue
	StateManager       state.StateManager
	SaveResultChan     chan<- workers.SaveResultRequest
	ServerMessageChan  chan<- workers.ServerMessage
	GameLoopInterval   time.Duration
	// StepInterval is how often the active piece of every session falls one row
	StepInterval time.Duration
	// GarbageInterval is how often a garbage row is pushed onto every board.
	// Zero disables garbage.
	GarbageInterval time.Duration
	Rows            int
	Columns         int
	// NewSource creates the piece source of each new session. Defaults to a
	// random source.
	NewSource func() tetris.Source
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	if opts.GameLoopInterval == 0 {
		opts.GameLoopInterval = constants.DefaultLoopInterval
	}
	if opts.StepInterval == 0 {
		opts.StepInterval = constants.DefaultStepInterval
	}
	if opts.NewSource == nil {
		opts.NewSource = func() tetris.Source { return tetris.NewRandomSource() }
	}
	return &GameManager{
		clientMessageQueue: opts.ClientMessageQueue,
		sessionEventQueue:  opts.SessionEventQueue,
		stateManager:       opts.StateManager,
		saveResultChan:     opts.SaveResultChan,
		serverMessageChan:  opts.ServerMessageChan,
		gameLoopInterval:   opts.GameLoopInterval,
		stepInterval:       opts.StepInterval,
		garbageInterval:    opts.GarbageInterval,
		rows:               opts.Rows,
		columns:            opts.Columns,
		newSource:          opts.NewSource,
		sessions:           make(map[uint32]*Session),
	}
}

// Start starts the game loop. Sessions still running when ctx is cancelled
// are recorded as stopped.
func (gm *GameManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			gm.stop(time.Now())
			return nil
		case t := <-ticker.C:
			gm.gameTick(ctx, t)
		}
	}
}

// Session returns the live session of a client.
func (gm *GameManager) Session(clientID uint32) (*Session, bool) {
	s, ok := gm.sessions[clientID]
	return s, ok
}

func (gm *GameManager) stop(t time.Time) {
	for clientID := range gm.sessions {
		gm.endSession(context.Background(), clientID, models.EndReasonStopped, t)
	}
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context, t time.Time) {
	gm.processSessionEvents(ctx, t)
	gm.processClientMessages(ctx, t)
	gm.stepSessions(t)
	gm.publishSessions(ctx, t)
}

// processSessionEvents starts and ends sessions as clients connect and
// disconnect.
func (gm *GameManager) processSessionEvents(ctx context.Context, t time.Time) {
	for _, item := range gm.sessionEventQueue.ReadAllMessages() {
		switch event := item.(type) {
		case *types.StartSessionEvent:
			gm.startSession(ctx, event.ClientID, event.UserID, t)
		case *types.EndSessionEvent:
			gm.endSession(ctx, event.ClientID, models.EndReasonDisconnected, t)
		default:
			log.Error("Unhandled session event type: %T", event)
		}
	}
}

// processClientMessages applies all pending client messages in the order
// they arrived.
func (gm *GameManager) processClientMessages(ctx context.Context, t time.Time) {
	for _, item := range gm.clientMessageQueue.ReadAllMessages() {
		message, ok := item.(*messages.Message)
		if !ok {
			log.Error("Failed to cast message to messages.Message")
			continue
		}

		switch message.Type {
		case messages.MessageTypeClientCommand:
			session, ok := gm.sessions[message.ClientID]
			if !ok {
				log.Warn("Command from client %d without a session", message.ClientID)
				continue
			}
			clientCommand := &messages.ClientCommand{}
			if err := json.Unmarshal(message.Payload, clientCommand); err != nil {
				log.Error("Failed to unmarshal client command: %v", err)
				continue
			}
			if session.Apply(clientCommand.Command, t) {
				log.Trace("Client %d applied %s", message.ClientID, clientCommand.Command)
			}
		case messages.MessageTypeClientNewGame:
			session, ok := gm.sessions[message.ClientID]
			if !ok {
				log.Warn("New game request from client %d without a session", message.ClientID)
				continue
			}
			userID := session.UserID
			gm.endSession(ctx, message.ClientID, models.EndReasonStopped, t)
			gm.startSession(ctx, message.ClientID, userID, t)
		default:
			log.Error("Unhandled client message type: %s", message.Type)
		}
	}
}

// stepSessions applies gravity and garbage to every running session.
func (gm *GameManager) stepSessions(t time.Time) {
	for _, session := range gm.sessions {
		session.Advance(t, gm.stepInterval, gm.garbageInterval)
	}
}

// publishSessions forwards the notifications and the snapshot of every session
// that changed, and records sessions that just ended.
func (gm *GameManager) publishSessions(ctx context.Context, t time.Time) {
	for _, session := range gm.sessions {
		gm.forwardEvents(ctx, session)
		if !session.dirty {
			continue
		}
		session.dirty = false
		gm.publishSnapshot(ctx, session, t)
		if session.controller.Playfield().IsOver() && !session.saved {
			gm.saveResult(session, models.EndReasonGameOver, t)
		}
	}
}

func (gm *GameManager) startSession(ctx context.Context, clientID uint32, userID string, t time.Time) {
	if _, ok := gm.sessions[clientID]; ok {
		gm.endSession(ctx, clientID, models.EndReasonStopped, t)
	}

	controller := NewController(NewControllerOptions{
		Rows:    gm.rows,
		Columns: gm.columns,
		Source:  gm.newSource(),
	})
	session := NewSession(clientID, userID, controller, t)
	gm.sessions[clientID] = session
	log.Info("Started session %s for client %d", session.ID, clientID)

	pf := controller.Playfield()
	gm.sendServerMessage(ctx, workers.ServerMessage{
		ClientID: clientID,
		Type:     messages.MessageTypeServerSessionStart,
		Message: &messages.ServerSessionStart{
			SessionID: session.ID.String(),
			Rows:      pf.Rows(),
			Columns:   pf.Columns(),
		},
	})
	controller.Start()
}

// endSession removes a client's session, saving its result unless the
// game over already did.
func (gm *GameManager) endSession(ctx context.Context, clientID uint32, reason models.EndReason, t time.Time) {
	session, ok := gm.sessions[clientID]
	if !ok {
		return
	}
	delete(gm.sessions, clientID)

	c := session.controller
	if c.Playfield().IsOver() {
		reason = models.EndReasonGameOver
	}
	c.Stop()
	if !session.saved {
		gm.saveResult(session, reason, t)
	}

	if err := gm.stateManager.Delete(ctx, session.ID.String()); err != nil {
		log.Error("Failed to delete state of session %s: %v", session.ID, err)
	}
	log.Info("Ended session %s for client %d: %s", session.ID, clientID, reason)
}

func (gm *GameManager) forwardEvents(ctx context.Context, session *Session) {
	for _, event := range session.controller.DrainEvents() {
		var msg workers.ServerMessage
		switch event.Type {
		case EventNewPiece:
			msg = workers.ServerMessage{
				Type:    messages.MessageTypeServerNewPiece,
				Message: &messages.ServerNewPiece{Current: event.Current, Next: event.Next},
			}
		case EventRowsCleared:
			msg = workers.ServerMessage{
				Type: messages.MessageTypeServerRowsCleared,
				Message: &messages.ServerRowsCleared{
					Count: event.RowsCleared,
					Total: session.controller.Stats().RowsCleared,
				},
			}
		case EventGameOver:
			msg = workers.ServerMessage{
				Type: messages.MessageTypeServerGameOver,
				Message: &messages.ServerGameOver{
					SessionID: session.ID.String(),
					Stats:     session.controller.Stats(),
				},
			}
		default:
			log.Error("Unhandled controller event type: %v", event.Type)
			continue
		}
		msg.ClientID = session.ClientID
		session.dirty = true
		gm.sendServerMessage(ctx, msg)
	}
}

func (gm *GameManager) publishSnapshot(ctx context.Context, session *Session, t time.Time) {
	snapshot := session.Snapshot(t)

	if err := gm.stateManager.Set(ctx, snapshot); err != nil {
		log.Error("Failed to set state of session %s: %v", session.ID, err)
	}
	gm.sendServerMessage(ctx, workers.ServerMessage{
		ClientID: session.ClientID,
		Type:     messages.MessageTypeServerBoardState,
		Message:  snapshot,
	})
}

func (gm *GameManager) sendServerMessage(ctx context.Context, msg workers.ServerMessage) {
	select {
	case gm.serverMessageChan <- msg:
	case <-ctx.Done():
	}
}

func (gm *GameManager) saveResult(session *Session, reason models.EndReason, t time.Time) {
	session.saved = true
	select {
	case gm.saveResultChan <- workers.SaveResultRequest{Result: session.result(reason, t)}:
	default:
		log.Error("Dropped result of session %s: save queue is full", session.ID)
	}
}
