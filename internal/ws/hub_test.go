package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hubServer upgrades every request, registers the connection on the hub and
// hands the server-side conn to the test.
func hubServer(t *testing.T, hub *Hub) (*httptest.Server, chan *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	serverConns := make(chan *websocket.Conn, 4)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(conn)
		serverConns <- conn
	}))
	t.Cleanup(server.Close)

	return server, serverConns
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) string {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(data)
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	server, serverConns := hubServer(t, hub)

	first := dial(t, server)
	second := dial(t, server)
	<-serverConns
	<-serverConns

	hub.Broadcast(Message{Type: "participants_changed"})

	assert.JSONEq(t, `{"type":"participants_changed"}`, readMessage(t, first))
	assert.JSONEq(t, `{"type":"participants_changed"}`, readMessage(t, second))
}

func TestHubBroadcastCarriesData(t *testing.T) {
	hub := NewHub()
	server, serverConns := hubServer(t, hub)

	client := dial(t, server)
	<-serverConns

	hub.Broadcast(Message{Type: "participants_changed", Data: map[string]string{"id": "p-1"}})

	assert.JSONEq(t, `{"type":"participants_changed","data":{"id":"p-1"}}`, readMessage(t, client))
}

func TestHubPrunesDeadConnections(t *testing.T) {
	hub := NewHub()
	server, serverConns := hubServer(t, hub)

	dead := dial(t, server)
	deadServerSide := <-serverConns
	live := dial(t, server)
	<-serverConns

	// Kill the first connection server-side; broadcasting must drop it and
	// keep delivering to the survivor.
	deadServerSide.Close()
	dead.Close()

	hub.Broadcast(Message{Type: "participants_changed"})
	hub.Broadcast(Message{Type: "participants_changed"})

	assert.JSONEq(t, `{"type":"participants_changed"}`, readMessage(t, live))
	assert.JSONEq(t, `{"type":"participants_changed"}`, readMessage(t, live))
}

func TestHubRemoveConnectionIsIdempotent(t *testing.T) {
	hub := NewHub()
	server, serverConns := hubServer(t, hub)

	client := dial(t, server)
	serverSide := <-serverConns

	hub.RemoveConnection(serverSide)
	hub.RemoveConnection(serverSide)

	// The removed client gets nothing; broadcast must not panic.
	hub.Broadcast(Message{Type: "participants_changed"})

	require.NoError(t, client.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := client.ReadMessage()
	assert.Error(t, err)
}
