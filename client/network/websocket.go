package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
	pkgnetwork "github.com/cbodonnell/stackfall/pkg/network"
	"nhooyr.io/websocket"
)

// WSClient represents a WebSocket client.
type WSClient struct {
	serverURL string
	conn      *websocket.Conn
}

var _ Client = &WSClient{}

// NewWSClient creates a new WebSocket client.
func NewWSClient(serverURL string) *WSClient {
	return &WSClient{
		serverURL: serverURL,
	}
}

// Connect establishes a connection to the WebSocket server.
func (c *WSClient) Connect(ctx context.Context) error {
	log.Info("Connecting to WebSocket server at %s", c.serverURL)
	conn, _, err := websocket.Dial(ctx, c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	conn.SetReadLimit(pkgnetwork.MaxFrameSize)
	c.conn = conn
	return nil
}

func (c *WSClient) ReadMessage(ctx context.Context) (*messages.Message, error) {
	msg, err := pkgnetwork.ReadMessageFromWS(ctx, c.conn)
	if err != nil {
		var closeErr websocket.CloseError
		if errors.As(err, &closeErr) {
			return nil, &ErrConnectionClosed{}
		}
		return nil, err
	}
	return msg, nil
}

// SendMessage sends a message to the WebSocket server. Concurrent writers are
// serialized by the connection.
func (c *WSClient) SendMessage(ctx context.Context, msg *messages.Message) error {
	return pkgnetwork.WriteMessageToWS(ctx, c.conn, msg)
}

// Close closes the WebSocket connection.
func (c *WSClient) Close() error {
	if c.conn == nil {
		log.Warn("WebSocket connection was never opened")
		return nil
	}
	return c.conn.Close(websocket.StatusNormalClosure, "")
}
