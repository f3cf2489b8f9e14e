package network

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientManager_ConnectDisconnect(t *testing.T) {
	cm := NewClientManager()
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	id, err := cm.ConnectClient(server, nil, "user-1")
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.True(t, cm.Exists(id))
	assert.Equal(t, 1, cm.Len())
	assert.Equal(t, id, cm.GetClientIDByTCPConn(server))
	assert.Zero(t, cm.GetClientIDByTCPConn(client))

	got, err := cm.GetClient(id)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, ConnectionTypeTCP, got.ConnectionType)

	event := <-cm.GetConnectionEventChan()
	assert.Equal(t, ConnectionEvent{ClientID: id, Type: ConnectionEventTypeConnect, UserID: "user-1"}, event)

	cm.DisconnectClient(id)
	assert.False(t, cm.Exists(id))
	assert.Zero(t, cm.Len())

	event = <-cm.GetConnectionEventChan()
	assert.Equal(t, ConnectionEvent{ClientID: id, Type: ConnectionEventTypeDisconnect, UserID: "user-1"}, event)

	// a second disconnect is a no-op
	cm.DisconnectClient(id)
	assert.Len(t, cm.GetConnectionEventChan(), 0)
}

func TestClientManager_ConnectClientErrors(t *testing.T) {
	cm := NewClientManager()
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	_, err := cm.ConnectClient(nil, nil, "nobody")
	assert.Error(t, err)

	_, err = cm.ConnectClient(server, nil, "user-1")
	require.NoError(t, err)

	_, err = cm.ConnectClient(server, nil, "user-1")
	assert.Error(t, err, "the same connection cannot log in twice")
	assert.Equal(t, 1, cm.Len())
}

func TestClientManager_GetClientsKeepsOrder(t *testing.T) {
	cm := NewClientManager()
	var ids []uint32
	for i := 0; i < 3; i++ {
		server, client := net.Pipe()
		defer server.Close()
		defer client.Close()
		id, err := cm.ConnectClient(server, nil, "user")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	clients := cm.GetClients()
	require.Len(t, clients, 3)
	for i, c := range clients {
		assert.Equal(t, ids[i], c.ID)
	}

	// copies do not alias the managed clients
	clients[0].UserID = "changed"
	got, err := cm.GetClient(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "user", got.UserID)

	_, err = cm.GetClient(0)
	assert.Error(t, err)
}
