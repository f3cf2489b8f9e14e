package messages

import (
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
)

const (
	// MessageBufferSize represents the maximum size of a message
	MessageBufferSize = 4096
)

// MessageType identifies the payload carried by a Message.
type MessageType uint8

// Message types
const (
	MessageTypeClientPing MessageType = iota + 1
	MessageTypeServerPong
	MessageTypeClientLogin
	MessageTypeServerLoginSuccess
	MessageTypeServerLoginFailure
	MessageTypeClientCommand
	MessageTypeClientNewGame
	MessageTypeServerSessionStart
	MessageTypeServerBoardState
	MessageTypeServerNewPiece
	MessageTypeServerRowsCleared
	MessageTypeServerGameOver
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeClientPing:
		return "ClientPing"
	case MessageTypeServerPong:
		return "ServerPong"
	case MessageTypeClientLogin:
		return "ClientLogin"
	case MessageTypeServerLoginSuccess:
		return "ServerLoginSuccess"
	case MessageTypeServerLoginFailure:
		return "ServerLoginFailure"
	case MessageTypeClientCommand:
		return "ClientCommand"
	case MessageTypeClientNewGame:
		return "ClientNewGame"
	case MessageTypeServerSessionStart:
		return "ServerSessionStart"
	case MessageTypeServerBoardState:
		return "ServerBoardState"
	case MessageTypeServerNewPiece:
		return "ServerNewPiece"
	case MessageTypeServerRowsCleared:
		return "ServerRowsCleared"
	case MessageTypeServerGameOver:
		return "ServerGameOver"
	default:
		return "Unknown"
	}
}

// Message represents a generic message for serialization/deserialization
type Message struct {
	// ClientID is 0 for messages sent by the server
	ClientID uint32
	Type     MessageType
	Payload  []byte
}

type ClientLogin struct {
	Token string `json:"token"`
}

type ServerLoginSuccess struct {
	ClientID uint32 `json:"clientID"`
}

type ServerLoginFailure struct {
	Reason string `json:"reason"`
}

type ClientCommand struct {
	Command types.Command `json:"command"`
}

type ServerSessionStart struct {
	SessionID string `json:"sessionID"`
	Rows      int    `json:"rows"`
	Columns   int    `json:"columns"`
}

type ServerNewPiece struct {
	Current tetris.Family `json:"current"`
	Next    tetris.Family `json:"next"`
}

type ServerRowsCleared struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

type ServerGameOver struct {
	SessionID string      `json:"sessionID"`
	Stats     types.Stats `json:"stats"`
}
