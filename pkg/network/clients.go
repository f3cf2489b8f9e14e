package network

import (
	"fmt"
	"math/rand/v2"
	"net"
	"sync"

	"github.com/kamstrup/intmap"
	"nhooyr.io/websocket"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// ConnectionEventChannelSize represents the size of the connection event channel
	ConnectionEventChannelSize = 1024
)

// ConnectionType is the transport a client is connected over.
type ConnectionType uint8

const (
	ConnectionTypeTCP ConnectionType = iota + 1
	ConnectionTypeWebSocket
)

func (t ConnectionType) String() string {
	switch t {
	case ConnectionTypeTCP:
		return "tcp"
	case ConnectionTypeWebSocket:
		return "websocket"
	default:
		return "unknown"
	}
}

// Client represents a connected client
type Client struct {
	ID             uint32
	UserID         string
	ConnectionType ConnectionType
	TCPConn        net.Conn
	WSConn         *websocket.Conn
}

// ConnectionEvent represents an event that happened to a client
type ConnectionEvent struct {
	ClientID uint32
	Type     ConnectionEventType
	UserID   string
}

// ConnectionEventType represents the type of a connection event
type ConnectionEventType int

const (
	ConnectionEventTypeConnect ConnectionEventType = iota
	ConnectionEventTypeDisconnect
)

// ClientManager manages connected clients
type ClientManager struct {
	lock sync.RWMutex
	// clients indexes connected clients by ID
	clients *intmap.Map[uint32, *Client]
	// order keeps connection order for iteration
	order               []uint32
	connectionEventChan chan ConnectionEvent
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients:             intmap.New[uint32, *Client](64),
		connectionEventChan: make(chan ConnectionEvent, ConnectionEventChannelSize),
	}
}

// GetConnectionEventChan returns a one-way channel for receiving connection events
func (cm *ClientManager) GetConnectionEventChan() <-chan ConnectionEvent {
	return cm.connectionEventChan
}

// GetClients returns a slice with a copy of all connected clients.
func (cm *ClientManager) GetClients() []*Client {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	clients := make([]*Client, 0, len(cm.order))
	for _, id := range cm.order {
		client, ok := cm.clients.Get(id)
		if !ok {
			continue
		}
		c := *client
		clients = append(clients, &c)
	}
	return clients
}

// GetClient returns a copy of a connected client.
func (cm *ClientManager) GetClient(clientID uint32) (*Client, error) {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	client, ok := cm.clients.Get(clientID)
	if !ok {
		return nil, fmt.Errorf("client %d not found", clientID)
	}
	c := *client
	return &c, nil
}

// ConnectClient adds a new client to the manager and returns its ID.
// Exactly one of tcpConn and wsConn must be set.
func (cm *ClientManager) ConnectClient(tcpConn net.Conn, wsConn *websocket.Conn, userID string) (uint32, error) {
	var connectionType ConnectionType
	switch {
	case tcpConn != nil && wsConn == nil:
		connectionType = ConnectionTypeTCP
	case wsConn != nil && tcpConn == nil:
		connectionType = ConnectionTypeWebSocket
	default:
		return 0, fmt.Errorf("exactly one connection must be provided")
	}

	cm.lock.Lock()
	defer cm.lock.Unlock()

	for _, id := range cm.order {
		client, _ := cm.clients.Get(id)
		if (tcpConn != nil && client.TCPConn == tcpConn) || (wsConn != nil && client.WSConn == wsConn) {
			return 0, fmt.Errorf("connection is already logged in as client %d", id)
		}
	}

	clientID, err := cm.generateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	cm.clients.Put(clientID, &Client{
		ID:             clientID,
		UserID:         userID,
		ConnectionType: connectionType,
		TCPConn:        tcpConn,
		WSConn:         wsConn,
	})
	cm.order = append(cm.order, clientID)

	cm.connectionEventChan <- ConnectionEvent{
		ClientID: clientID,
		Type:     ConnectionEventTypeConnect,
		UserID:   userID,
	}

	return clientID, nil
}

// GetClientIDByTCPConn returns the ID of a client by its TCP connection.
// Returns 0 if the client is not found
func (cm *ClientManager) GetClientIDByTCPConn(conn net.Conn) uint32 {
	if conn == nil {
		return 0
	}
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	for _, id := range cm.order {
		if client, _ := cm.clients.Get(id); client.TCPConn == conn {
			return id
		}
	}
	return 0
}

// GetClientIDByWSConn returns the ID of a client by its WebSocket connection.
// Returns 0 if the client is not found
func (cm *ClientManager) GetClientIDByWSConn(conn *websocket.Conn) uint32 {
	if conn == nil {
		return 0
	}
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	for _, id := range cm.order {
		if client, _ := cm.clients.Get(id); client.WSConn == conn {
			return id
		}
	}
	return 0
}

// DisconnectClient removes a client from the manager
func (cm *ClientManager) DisconnectClient(clientID uint32) {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	client, ok := cm.clients.Get(clientID)
	if !ok {
		return
	}
	cm.clients.Del(clientID)
	for i, id := range cm.order {
		if id == clientID {
			cm.order = append(cm.order[:i], cm.order[i+1:]...)
			break
		}
	}

	cm.connectionEventChan <- ConnectionEvent{
		ClientID: client.ID,
		Type:     ConnectionEventTypeDisconnect,
		UserID:   client.UserID,
	}
}

func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	_, ok := cm.clients.Get(clientID)
	return ok
}

// Len returns the number of connected clients.
func (cm *ClientManager) Len() int {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	return len(cm.order)
}

// generateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := rand.Uint32()
		if id == 0 {
			continue
		}
		if _, ok := cm.clients.Get(id); !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
