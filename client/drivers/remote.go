package drivers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
	"github.com/cbodonnell/stackfall/pkg/queue"
)

// Connection is the logged in link to the game server.
type Connection interface {
	ServerMessageQueue() queue.Queue
	SendCommand(cmd types.Command) error
	SendNewGame() error
	Ping() float64
	Stop()
}

// RemoteDriver mirrors a session run by the game server.
type RemoteDriver struct {
	conn      Connection
	sessionID string
	state     *types.BoardState
	notices   []Notice
}

var _ Driver = &RemoteDriver{}

func NewRemoteDriver(conn Connection) *RemoteDriver {
	return &RemoteDriver{
		conn: conn,
	}
}

// Update applies every message received since the last call, in order.
func (d *RemoteDriver) Update(now time.Time) error {
	for _, item := range d.conn.ServerMessageQueue().ReadAllMessages() {
		msg, ok := item.(*messages.Message)
		if !ok {
			log.Error("Failed to cast message to messages.Message")
			continue
		}
		if err := d.handleMessage(msg); err != nil {
			log.Error("Failed to handle %s message: %v", msg.Type, err)
		}
	}
	return nil
}

func (d *RemoteDriver) handleMessage(msg *messages.Message) error {
	switch msg.Type {
	case messages.MessageTypeServerSessionStart:
		sessionStart := &messages.ServerSessionStart{}
		if err := json.Unmarshal(msg.Payload, sessionStart); err != nil {
			return fmt.Errorf("failed to unmarshal session start: %v", err)
		}
		d.sessionID = sessionStart.SessionID
		d.state = nil
		log.Debug("Joined session %s", d.sessionID)
	case messages.MessageTypeServerBoardState:
		state, err := messages.DeserializeBoardState(msg.Payload)
		if err != nil {
			return fmt.Errorf("failed to deserialize board state: %v", err)
		}
		if state.SessionID != d.sessionID {
			log.Debug("Dropping board state of stale session %s", state.SessionID)
			return nil
		}
		if d.state != nil && state.Timestamp < d.state.Timestamp {
			return nil
		}
		d.state = state
	case messages.MessageTypeServerNewPiece:
		d.notices = append(d.notices, Notice{Type: NoticeNewPiece})
	case messages.MessageTypeServerRowsCleared:
		rowsCleared := &messages.ServerRowsCleared{}
		if err := json.Unmarshal(msg.Payload, rowsCleared); err != nil {
			return fmt.Errorf("failed to unmarshal rows cleared: %v", err)
		}
		d.notices = append(d.notices, Notice{Type: NoticeRowsCleared, Count: rowsCleared.Count})
	case messages.MessageTypeServerGameOver:
		gameOver := &messages.ServerGameOver{}
		if err := json.Unmarshal(msg.Payload, gameOver); err != nil {
			return fmt.Errorf("failed to unmarshal game over: %v", err)
		}
		if gameOver.SessionID != d.sessionID {
			return nil
		}
		d.notices = append(d.notices, Notice{Type: NoticeGameOver, Stats: gameOver.Stats})
	default:
		return fmt.Errorf("unexpected message type")
	}
	return nil
}

func (d *RemoteDriver) Apply(cmd types.Command) error {
	return d.conn.SendCommand(cmd)
}

func (d *RemoteDriver) NewGame() error {
	return d.conn.SendNewGame()
}

func (d *RemoteDriver) State() *types.BoardState {
	return d.state
}

func (d *RemoteDriver) Notices() []Notice {
	notices := d.notices
	d.notices = nil
	return notices
}

func (d *RemoteDriver) Stop() {
	d.conn.Stop()
}

func (d *RemoteDriver) Status() []string {
	return []string{"Online", fmt.Sprintf("Ping: %0.0fms", d.conn.Ping())}
}
