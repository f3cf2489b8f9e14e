package network

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	authproviders "github.com/cbodonnell/stackfall/pkg/auth/providers"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
	"github.com/cbodonnell/stackfall/pkg/queue"
	"nhooyr.io/websocket"
)

type NetworkManager struct {
	AuthProvider  authproviders.AuthProvider
	ClientManager *ClientManager
	MessageQueue  queue.Queue
	TCPServer     *TCPServer
	WSServer      *WSServer
}

type NewNetworkManagerOptions struct {
	AuthProvider  authproviders.AuthProvider
	ClientManager *ClientManager
	MessageQueue  queue.Queue
	TCPPort       int
	WSPort        int
	WSServerTLS   *TLSConfig
}

func NewNetworkManager(options NewNetworkManagerOptions) *NetworkManager {
	return &NetworkManager{
		AuthProvider:  options.AuthProvider,
		ClientManager: options.ClientManager,
		MessageQueue:  options.MessageQueue,
		TCPServer: NewTCPServer(NewTCPServerOptions{
			Port: options.TCPPort,
		}),
		WSServer: NewWSServer(NewWSServerOptions{
			Port: options.WSPort,
			TLS:  options.WSServerTLS,
		}),
	}
}

func (n *NetworkManager) Start(ctx context.Context) {
	go func() {
		if err := n.TCPServer.Start(ctx, n.handleControlDisconnect, n.handleControlMessage); err != nil {
			log.Error("TCP server stopped: %v", err)
		}
	}()
	go func() {
		if err := n.WSServer.Start(ctx, n.handleControlDisconnect, n.handleControlMessage); err != nil {
			log.Error("WebSocket server stopped: %v", err)
		}
	}()
}

type ControlDisconnectHandler func(tcpConn net.Conn, wsConn *websocket.Conn)

func (n *NetworkManager) handleControlDisconnect(conn net.Conn, wsConn *websocket.Conn) {
	clientID := n.clientIDForConn(conn, wsConn)
	if clientID == 0 {
		log.Debug("Connection closed before login")
		return
	}
	n.ClientManager.DisconnectClient(clientID)
	log.Info("Client %d disconnected", clientID)
}

type ControlMessageHandler func(ctx context.Context, tcpConn net.Conn, wsConn *websocket.Conn, message *messages.Message)

func (n *NetworkManager) handleControlMessage(ctx context.Context, tcpConn net.Conn, wsConn *websocket.Conn, message *messages.Message) {
	if message.Type == messages.MessageTypeClientLogin {
		n.handleClientLoginMessage(ctx, tcpConn, wsConn, message)
		return
	}

	// the connection, not the message, decides who is talking
	clientID := n.clientIDForConn(tcpConn, wsConn)
	if clientID == 0 {
		log.Warn("Received %s from a connection that has not logged in", message.Type)
		return
	}
	if message.ClientID != clientID {
		log.Warn("Client %d sent a message claiming to be client %d", clientID, message.ClientID)
		return
	}

	switch message.Type {
	case messages.MessageTypeClientPing:
		if err := n.handleClientPing(ctx, clientID); err != nil {
			log.Error("Failed to handle client ping: %v", err)
		}
	case messages.MessageTypeClientCommand, messages.MessageTypeClientNewGame:
		if err := n.MessageQueue.Enqueue(message); err != nil {
			log.Error("Failed to enqueue message from client %d: %v", clientID, err)
		}
	default:
		log.Warn("Unhandled message type %s from client %d", message.Type, clientID)
	}
}

func (n *NetworkManager) handleClientLoginMessage(ctx context.Context, tcpConn net.Conn, wsConn *websocket.Conn, message *messages.Message) {
	clientID, err := n.handleClientLogin(ctx, tcpConn, wsConn, message)
	if err != nil {
		log.Error("Failed to handle client login: %v", err)
		if err := n.sendServerLoginFailure(ctx, tcpConn, wsConn, err.Error()); err != nil {
			log.Error("Failed to send server login failure: %v", err)
		}
		return
	}
	log.Info("Client %d connected", clientID)
	if err := n.sendServerLoginSuccess(ctx, clientID); err != nil {
		log.Error("Failed to send server login success: %v", err)
	}
}

// handleClientLogin handles a client login message.
func (n *NetworkManager) handleClientLogin(ctx context.Context, tcpConn net.Conn, wsConn *websocket.Conn, message *messages.Message) (uint32, error) {
	clientLogin := &messages.ClientLogin{}
	if err := json.Unmarshal(message.Payload, clientLogin); err != nil {
		return 0, fmt.Errorf("failed to unmarshal client login: %v", err)
	}

	token, err := n.AuthProvider.VerifyToken(ctx, clientLogin.Token)
	if err != nil {
		return 0, fmt.Errorf("failed to verify token: %v", err)
	}

	clientID, err := n.ClientManager.ConnectClient(tcpConn, wsConn, token.UID)
	if err != nil {
		return 0, fmt.Errorf("failed to connect client: %v", err)
	}

	return clientID, nil
}

func (n *NetworkManager) sendServerLoginSuccess(ctx context.Context, clientID uint32) error {
	payload, err := json.Marshal(&messages.ServerLoginSuccess{
		ClientID: clientID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal server login success: %v", err)
	}

	msg := &messages.Message{
		ClientID: 0,
		Type:     messages.MessageTypeServerLoginSuccess,
		Payload:  payload,
	}

	if err := n.SendMessageToClient(ctx, clientID, msg); err != nil {
		return fmt.Errorf("failed to send server login success: %v", err)
	}

	return nil
}

// sendServerLoginFailure answers on the raw connection, since a failed login
// has no client ID to address.
func (n *NetworkManager) sendServerLoginFailure(ctx context.Context, tcpConn net.Conn, wsConn *websocket.Conn, reason string) error {
	payload, err := json.Marshal(&messages.ServerLoginFailure{
		Reason: reason,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal server login failure: %v", err)
	}

	msg := &messages.Message{
		ClientID: 0,
		Type:     messages.MessageTypeServerLoginFailure,
		Payload:  payload,
	}

	if tcpConn != nil {
		return WriteMessageToTCP(tcpConn, msg)
	}
	return WriteMessageToWS(ctx, wsConn, msg)
}

func (n *NetworkManager) handleClientPing(ctx context.Context, clientID uint32) error {
	msg := &messages.Message{
		ClientID: 0,
		Type:     messages.MessageTypeServerPong,
	}

	if err := n.SendMessageToClient(ctx, clientID, msg); err != nil {
		return fmt.Errorf("failed to write pong message to client: %v", err)
	}

	return nil
}

func (n *NetworkManager) clientIDForConn(tcpConn net.Conn, wsConn *websocket.Conn) uint32 {
	if tcpConn != nil {
		return n.ClientManager.GetClientIDByTCPConn(tcpConn)
	}
	return n.ClientManager.GetClientIDByWSConn(wsConn)
}

func (n *NetworkManager) sendMessageToClient(ctx context.Context, client *Client, msg *messages.Message) error {
	switch client.ConnectionType {
	case ConnectionTypeTCP:
		if err := WriteMessageToTCP(client.TCPConn, msg); err != nil {
			return fmt.Errorf("failed to write message to TCP connection for client %d: %v", client.ID, err)
		}
	case ConnectionTypeWebSocket:
		if err := WriteMessageToWS(ctx, client.WSConn, msg); err != nil {
			return fmt.Errorf("failed to write message to WebSocket connection for client %d: %v", client.ID, err)
		}
	default:
		return fmt.Errorf("unknown connection type for client %d: %v", client.ID, client.ConnectionType)
	}

	return nil
}

// SendMessageToClient writes a message to a connected client.
func (n *NetworkManager) SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error {
	client, err := n.ClientManager.GetClient(clientID)
	if err != nil {
		return fmt.Errorf("failed to get client %d: %v", clientID, err)
	}

	if err := n.sendMessageToClient(ctx, client, msg); err != nil {
		return fmt.Errorf("failed to send message to client %d: %v", clientID, err)
	}

	return nil
}

// SendMessageToAll writes a message to every connected client.
func (n *NetworkManager) SendMessageToAll(ctx context.Context, msg *messages.Message) {
	for _, client := range n.ClientManager.GetClients() {
		if err := n.sendMessageToClient(ctx, client, msg); err != nil {
			log.Error("Failed to send message to client %d: %v", client.ID, err)
		}
	}
}
