package network

import (
	"context"
	"fmt"
	"net"

	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
	pkgnetwork "github.com/cbodonnell/stackfall/pkg/network"
)

// TCPClient speaks the length-prefixed framing of the game server's TCP listener.
type TCPClient struct {
	serverAddr string
	conn       net.Conn
}

var _ Client = &TCPClient{}

// NewTCPClient creates a new TCP client.
func NewTCPClient(serverAddr string) *TCPClient {
	return &TCPClient{
		serverAddr: serverAddr,
	}
}

func (c *TCPClient) Connect(ctx context.Context) error {
	log.Info("Connecting to TCP server at %s", c.serverAddr)
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", c.serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	c.conn = conn
	return nil
}

// ReadMessage blocks until a frame arrives. Closing the client unblocks it;
// the context is not consulted.
func (c *TCPClient) ReadMessage(ctx context.Context) (*messages.Message, error) {
	msg, err := pkgnetwork.ReadMessageFromTCP(c.conn)
	if err != nil {
		if _, ok := err.(*pkgnetwork.ErrConnectionClosed); ok {
			return nil, &ErrConnectionClosed{}
		}
		return nil, err
	}
	return msg, nil
}

func (c *TCPClient) SendMessage(ctx context.Context, msg *messages.Message) error {
	return pkgnetwork.WriteMessageToTCP(c.conn, msg)
}

// Close closes the TCP connection.
func (c *TCPClient) Close() error {
	if c.conn == nil {
		log.Warn("TCP connection was never opened")
		return nil
	}
	return c.conn.Close()
}
