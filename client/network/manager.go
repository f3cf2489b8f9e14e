package network

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
	"github.com/cbodonnell/stackfall/pkg/queue"
)

const (
	DefaultServerHostname = "localhost"
	DefaultServerTCPPort  = 8888
	DefaultServerWSPort   = 8889

	// LoginTimeout bounds connecting plus waiting for the login reply.
	LoginTimeout = 5 * time.Second
	// PingInterval is how often the round trip time is sampled.
	PingInterval = 5 * time.Second
)

// Client is a connection to the game server over one transport.
type Client interface {
	Connect(ctx context.Context) error
	ReadMessage(ctx context.Context) (*messages.Message, error)
	SendMessage(ctx context.Context, msg *messages.Message) error
	Close() error
}

// NetworkManager logs in to the game server, forwards session messages to a
// queue read by the game scene and sends player commands.
type NetworkManager struct {
	serverMessageQueue queue.Queue
	newClient          func() Client
	client             Client
	clientErrChan      chan error
	cancelClientCtx    context.CancelFunc
	clientWaitGroup    *sync.WaitGroup
	clientID           uint32
	clientIDMutex      sync.Mutex
	pingMutex          sync.Mutex
	pingSentAt         time.Time
	ping               float64
	rtts               rttWindow
}

type NewNetworkManagerOptions struct {
	// ServerHostname and TCPPort address the TCP listener.
	ServerHostname string
	TCPPort        int
	// WSURL selects the WebSocket transport when set, e.g. ws://localhost:8889/.
	WSURL string
	// MessageQueue receives every session message from the server.
	MessageQueue queue.Queue
}

// NewNetworkManager creates a new network manager.
func NewNetworkManager(opts NewNetworkManagerOptions) *NetworkManager {
	if opts.ServerHostname == "" {
		opts.ServerHostname = DefaultServerHostname
	}
	if opts.TCPPort == 0 {
		opts.TCPPort = DefaultServerTCPPort
	}

	newClient := func() Client {
		return NewTCPClient(fmt.Sprintf("%s:%d", opts.ServerHostname, opts.TCPPort))
	}
	if opts.WSURL != "" {
		newClient = func() Client {
			return NewWSClient(opts.WSURL)
		}
	}

	return &NetworkManager{
		serverMessageQueue: opts.MessageQueue,
		newClient:          newClient,
		clientWaitGroup:    &sync.WaitGroup{},
	}
}

// Start connects and logs in with idToken. It returns once the server has
// accepted or rejected the login.
func (m *NetworkManager) Start(idToken string) error {
	if m.IsConnected() {
		return fmt.Errorf("network manager already started")
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelClientCtx = cancel
	m.clientErrChan = make(chan error, 1)

	connectCtx, cancelConnect := context.WithTimeout(ctx, LoginTimeout)
	defer cancelConnect()

	client := m.newClient()
	if err := client.Connect(connectCtx); err != nil {
		cancel()
		m.cancelClientCtx = nil
		return err
	}
	m.client = client

	clientIDChan := make(chan uint32, 1)
	loginErrChan := make(chan error, 1)

	m.clientWaitGroup.Add(1)
	go func() {
		defer m.clientWaitGroup.Done()
		if err := m.handleMessages(ctx, clientIDChan, loginErrChan); err != nil {
			m.clientErrChan <- err
		}
	}()

	if err := m.sendLogin(connectCtx, idToken); err != nil {
		m.Stop()
		return fmt.Errorf("failed to send login: %v", err)
	}

	select {
	case clientID := <-clientIDChan:
		m.setClientID(clientID)
		log.Info("Connected to server with client ID %d", clientID)
	case err := <-loginErrChan:
		m.Stop()
		return err
	case err := <-m.clientErrChan:
		m.Stop()
		return fmt.Errorf("connection failed during login: %v", err)
	case <-connectCtx.Done():
		m.Stop()
		return fmt.Errorf("timed out waiting for login response")
	}

	m.clientWaitGroup.Add(1)
	go func() {
		defer m.clientWaitGroup.Done()
		m.pingLoop(ctx)
	}()

	return nil
}

func (m *NetworkManager) sendLogin(ctx context.Context, idToken string) error {
	payload, err := json.Marshal(&messages.ClientLogin{
		Token: idToken,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal client login: %v", err)
	}
	return m.client.SendMessage(ctx, &messages.Message{
		Type:    messages.MessageTypeClientLogin,
		Payload: payload,
	})
}

// handleMessages reads until the connection fails or ctx is cancelled.
// Messages are handled in arrival order.
func (m *NetworkManager) handleMessages(ctx context.Context, clientIDChan chan<- uint32, loginErrChan chan<- error) error {
	for {
		msg, err := m.client.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := m.handleMessage(msg, clientIDChan, loginErrChan); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

func (m *NetworkManager) handleMessage(msg *messages.Message, clientIDChan chan<- uint32, loginErrChan chan<- error) error {
	log.Trace("Received message from server of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerLoginSuccess:
		loginSuccess := &messages.ServerLoginSuccess{}
		if err := json.Unmarshal(msg.Payload, loginSuccess); err != nil {
			return fmt.Errorf("failed to deserialize server login success message: %v", err)
		}
		select {
		case clientIDChan <- loginSuccess.ClientID:
		default:
			log.Warn("Ignoring repeated login success")
		}
	case messages.MessageTypeServerLoginFailure:
		loginFailure := &messages.ServerLoginFailure{}
		if err := json.Unmarshal(msg.Payload, loginFailure); err != nil {
			return fmt.Errorf("failed to deserialize server login failure message: %v", err)
		}
		select {
		case loginErrChan <- &ErrLoginFailed{Reason: loginFailure.Reason}:
		default:
			log.Warn("Ignoring repeated login failure: %s", loginFailure.Reason)
		}
	case messages.MessageTypeServerPong:
		m.recordPong(time.Now())
	case messages.MessageTypeServerSessionStart,
		messages.MessageTypeServerBoardState,
		messages.MessageTypeServerNewPiece,
		messages.MessageTypeServerRowsCleared,
		messages.MessageTypeServerGameOver:
		if err := m.serverMessageQueue.Enqueue(msg); err != nil {
			return fmt.Errorf("failed to enqueue message: %v", err)
		}
	default:
		return fmt.Errorf("received unexpected message type from server: %s", msg.Type)
	}

	return nil
}

func (m *NetworkManager) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(PingInterval)
	defer ticker.Stop()

	if err := m.sendPing(ctx); err != nil {
		log.Warn("Failed to send ping: %v", err)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.sendPing(ctx); err != nil {
				log.Warn("Failed to send ping: %v", err)
			}
		}
	}
}

func (m *NetworkManager) sendPing(ctx context.Context) error {
	m.pingMutex.Lock()
	m.pingSentAt = time.Now()
	m.pingMutex.Unlock()
	return m.send(ctx, messages.MessageTypeClientPing, nil)
}

// recordPong folds the round trip of the outstanding ping into the average.
func (m *NetworkManager) recordPong(now time.Time) {
	m.pingMutex.Lock()
	defer m.pingMutex.Unlock()
	if m.pingSentAt.IsZero() {
		return
	}
	rtt := now.Sub(m.pingSentAt).Milliseconds()
	m.pingSentAt = time.Time{}

	m.ping = m.rtts.add(rtt)
	log.Trace("Ping: %0.1fms", m.ping)
}

// Stop closes the connection, waits for the reader to exit and clears the
// server message queue.
func (m *NetworkManager) Stop() {
	if m.cancelClientCtx == nil {
		log.Warn("Network manager already stopped")
		return
	}
	m.cancelClientCtx()

	if m.client != nil {
		if err := m.client.Close(); err != nil {
			log.Debug("Failed to close client: %v", err)
		}
	}

	log.Debug("Waiting for client to stop")
	m.clientWaitGroup.Wait()
	m.serverMessageQueue.ClearQueue()

	m.setClientID(0)
	m.client = nil
	m.cancelClientCtx = nil
	m.pingMutex.Lock()
	m.pingSentAt = time.Time{}
	m.rtts.reset()
	m.ping = 0
	m.pingMutex.Unlock()

	log.Info("Network manager stopped")
}

func (m *NetworkManager) IsConnected() bool {
	return m.cancelClientCtx != nil && m.ClientID() != 0
}

func (m *NetworkManager) ServerMessageQueue() queue.Queue {
	return m.serverMessageQueue
}

// ClientErrChan receives the error that ended the connection.
func (m *NetworkManager) ClientErrChan() <-chan error {
	return m.clientErrChan
}

// Ping returns the average round trip time in milliseconds.
func (m *NetworkManager) Ping() float64 {
	m.pingMutex.Lock()
	defer m.pingMutex.Unlock()
	return m.ping
}

func (m *NetworkManager) ClientID() uint32 {
	m.clientIDMutex.Lock()
	defer m.clientIDMutex.Unlock()
	return m.clientID
}

func (m *NetworkManager) setClientID(clientID uint32) {
	m.clientIDMutex.Lock()
	defer m.clientIDMutex.Unlock()
	m.clientID = clientID
}

// SendCommand sends a player command for the current session.
func (m *NetworkManager) SendCommand(cmd types.Command) error {
	payload, err := json.Marshal(&messages.ClientCommand{
		Command: cmd,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal client command: %v", err)
	}
	return m.send(context.Background(), messages.MessageTypeClientCommand, payload)
}

// SendNewGame asks the server to end the current session and start another.
func (m *NetworkManager) SendNewGame() error {
	return m.send(context.Background(), messages.MessageTypeClientNewGame, nil)
}

func (m *NetworkManager) send(ctx context.Context, t messages.MessageType, payload []byte) error {
	client := m.client
	if client == nil {
		return fmt.Errorf("not connected")
	}
	msg := &messages.Message{
		ClientID: m.ClientID(),
		Type:     t,
		Payload:  payload,
	}
	if err := client.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s message: %v", t, err)
	}
	return nil
}
