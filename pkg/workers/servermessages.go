package workers

import (
	"context"
	"encoding/json"
	"fmt"

	gametypes "github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
	"github.com/cbodonnell/stackfall/pkg/network"
)

// MessageSender delivers serialized messages to connected clients.
type MessageSender interface {
	SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error
	SendMessageToAll(ctx context.Context, msg *messages.Message)
}

var _ MessageSender = &network.NetworkManager{}

type ServerMessageWorker struct {
	sender            MessageSender
	serverMessageChan <-chan ServerMessage
}

// ServerMessage is a message produced by the game loop. A ClientID of 0
// addresses every connected client.
type ServerMessage struct {
	ClientID uint32
	Type     messages.MessageType
	Message  interface{}
}

type NewServerMessageWorkerOptions struct {
	Sender            MessageSender
	ServerMessageChan <-chan ServerMessage
}

func NewServerMessageWorker(opts NewServerMessageWorkerOptions) *ServerMessageWorker {
	return &ServerMessageWorker{
		sender:            opts.Sender,
		serverMessageChan: opts.ServerMessageChan,
	}
}

func (w *ServerMessageWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-w.serverMessageChan:
			if err := w.handleServerMessage(ctx, msg); err != nil {
				log.Error("Failed to handle %s message for client %d: %v", msg.Type, msg.ClientID, err)
			}
		}
	}
}

func (w *ServerMessageWorker) handleServerMessage(ctx context.Context, msg ServerMessage) error {
	var payload []byte
	var err error
	switch msg.Type {
	case messages.MessageTypeServerBoardState:
		payload, err = serializeBoardState(msg)
	case messages.MessageTypeServerSessionStart:
		payload, err = marshalPayload[messages.ServerSessionStart](msg)
	case messages.MessageTypeServerNewPiece:
		payload, err = marshalPayload[messages.ServerNewPiece](msg)
	case messages.MessageTypeServerRowsCleared:
		payload, err = marshalPayload[messages.ServerRowsCleared](msg)
	case messages.MessageTypeServerGameOver:
		payload, err = marshalPayload[messages.ServerGameOver](msg)
	default:
		return fmt.Errorf("unknown server message type: %v", msg.Type)
	}
	if err != nil {
		return err
	}

	message := &messages.Message{
		ClientID: 0,
		Type:     msg.Type,
		Payload:  payload,
	}

	if msg.ClientID == 0 {
		w.sender.SendMessageToAll(ctx, message)
		return nil
	}
	return w.sender.SendMessageToClient(ctx, msg.ClientID, message)
}

func serializeBoardState(msg ServerMessage) ([]byte, error) {
	boardState, ok := msg.Message.(*gametypes.BoardState)
	if !ok {
		return nil, fmt.Errorf("failed to cast server board state message")
	}

	payload, err := messages.SerializeBoardState(boardState)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize board state: %v", err)
	}
	return payload, nil
}

func marshalPayload[T any](msg ServerMessage) ([]byte, error) {
	m, ok := msg.Message.(*T)
	if !ok {
		return nil, fmt.Errorf("failed to cast %s message", msg.Type)
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s message: %v", msg.Type, err)
	}
	return payload, nil
}
