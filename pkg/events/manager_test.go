package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T) (*Broker, *httptest.Server) {
	t.Helper()

	broker := NewBroker(slog.Default())
	manager := NewConnectionManager(broker, 5*time.Second, slog.Default())
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return broker, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// readUntilType reads messages until one of the given type arrives, returning
// everything read including it. The subscription pump and the confirmation
// share the socket, so message order around a subscribe is not deterministic.
func readUntilType(t *testing.T, conn *websocket.Conn, msgType string) []map[string]interface{} {
	t.Helper()
	var seen []map[string]interface{}
	for i := 0; i < 20; i++ {
		msg := readJSON(t, conn)
		seen = append(seen, msg)
		if msg["type"] == msgType {
			return seen
		}
	}
	t.Fatalf("no %q message after %d reads", msgType, len(seen))
	return nil
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeWithoutLastSeqIsLiveOnly(t *testing.T) {
	broker, server := setupTestManager(t)

	// History published before the client ever connects.
	for i := 0; i < 5; i++ {
		broker.Publish("debate-1", TypeUtterance, nil)
	}

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", DebateID: "debate-1"})
	seen := readUntilType(t, conn, "subscription.confirmed")

	// Once confirmed, the broker registration is done; publish a live event.
	live := broker.Publish("debate-1", TypeUtterance, nil)
	seen = append(seen, readUntilType(t, conn, TypeUtterance)...)

	for _, msg := range seen {
		if msg["type"] == TypeUtterance {
			assert.Equal(t, float64(live.Seq), msg["seq"], "only the live event is delivered, nothing replayed")
		}
		assert.NotEqual(t, TypeResyncRequired, msg["type"])
	}
}

func TestConnectionManager_SubscribeWithLastSeqReplays(t *testing.T) {
	broker, server := setupTestManager(t)

	for i := 0; i < 5; i++ {
		broker.Publish("debate-1", TypeUtterance, nil)
	}

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	lastSeq := int64(3)
	writeJSON(t, conn, ClientMessage{Action: "subscribe", DebateID: "debate-1", LastSeq: &lastSeq})

	var replayed []float64
	for _, msg := range readUntilType(t, conn, "subscription.confirmed") {
		if msg["type"] == TypeUtterance {
			replayed = append(replayed, msg["seq"].(float64))
		}
	}
	// The pump may still be flushing when the confirmation lands.
	for len(replayed) < 2 {
		msg := readJSON(t, conn)
		if msg["type"] == TypeUtterance {
			replayed = append(replayed, msg["seq"].(float64))
		}
	}
	assert.Equal(t, []float64{4, 5}, replayed)
}

func TestConnectionManager_Ping(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}
