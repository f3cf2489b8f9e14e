package network

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
)

const (
	// frameHeaderSize is the length prefix in front of every TCP frame
	frameHeaderSize = 4
	// MaxFrameSize bounds the payload of a single TCP frame
	MaxFrameSize = 1 << 20
)

// TCPServer represents a TCP server.
type TCPServer struct {
	port     int
	listener net.Listener
	ready    chan struct{}
	once     sync.Once
}

type NewTCPServerOptions struct {
	Port int
}

// NewTCPServer creates a new TCP server.
func NewTCPServer(opts NewTCPServerOptions) *TCPServer {
	return &TCPServer{
		port:  opts.Port,
		ready: make(chan struct{}),
	}
}

// Addr blocks until Start has either bound its listener or failed, and returns
// the listening address. It returns nil when Start failed to listen.
func (s *TCPServer) Addr() net.Addr {
	<-s.ready
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *TCPServer) markReady() {
	s.once.Do(func() { close(s.ready) })
}

// Start starts the TCP server. It returns when ctx is cancelled.
func (s *TCPServer) Start(ctx context.Context, disconnectHandler ControlDisconnectHandler, messageHandler ControlMessageHandler) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		s.markReady()
		return fmt.Errorf("failed to listen on TCP port %d: %v", s.port, err)
	}
	s.listener = listener
	s.markReady()
	defer listener.Close()

	log.Info("TCP server listening on %s", listener.Addr().String())

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				log.Info("TCP server closed")
				return nil
			}
			log.Error("Failed to accept TCP connection: %v", err)
			continue
		}

		log.Debug("New TCP connection from %s", conn.RemoteAddr().String())
		go s.handleTCPConnection(ctx, conn, disconnectHandler, messageHandler)
	}
}

// handleTCPConnection handles a TCP connection.
func (s *TCPServer) handleTCPConnection(ctx context.Context, conn net.Conn, disconnectHandler ControlDisconnectHandler, messageHandler ControlMessageHandler) {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	defer func() {
		cancel()
		disconnectHandler(conn, nil)
	}()

	for {
		message, err := ReadMessageFromTCP(conn)
		if err != nil {
			if _, ok := err.(*ErrConnectionClosed); ok {
				log.Trace("Connection closed for %s", conn.RemoteAddr().String())
				return
			}
			log.Error("Error reading TCP message from %s: %v", conn.RemoteAddr().String(), err)
			return
		}

		messageHandler(ctx, conn, nil, message)
	}
}

// WriteMessageToTCP writes a length-prefixed Message to a TCP connection
func WriteMessageToTCP(conn net.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}
	if len(b) > MaxFrameSize {
		return fmt.Errorf("message of %d bytes exceeds the maximum frame size", len(b))
	}

	// one Write per frame so concurrent writers never interleave
	frame := make([]byte, frameHeaderSize+len(b))
	binary.BigEndian.PutUint32(frame, uint32(len(b)))
	copy(frame[frameHeaderSize:], b)

	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("failed to write message to TCP connection: %v", err)
	}

	return nil
}

// ErrConnectionClosed is returned when the TCP connection is closed
type ErrConnectionClosed struct{}

func (e *ErrConnectionClosed) Error() string {
	return "connection closed"
}

// ReadMessageFromTCP reads a length-prefixed Message from a TCP connection
func ReadMessageFromTCP(conn net.Conn) (*messages.Message, error) {
	header := make([]byte, frameHeaderSize)
	if _, err := io.ReadFull(conn, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
			return nil, &ErrConnectionClosed{}
		}
		return nil, fmt.Errorf("failed to read frame header from TCP connection: %v", err)
	}

	size := binary.BigEndian.Uint32(header)
	if size > MaxFrameSize {
		return nil, fmt.Errorf("frame of %d bytes exceeds the maximum frame size", size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(conn, buf); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return nil, &ErrConnectionClosed{}
		}
		return nil, fmt.Errorf("failed to read message from TCP connection: %v", err)
	}

	msg, err := messages.DeserializeMessage(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return msg, nil
}
