package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// ConnectionManager bridges WebSocket clients to the Broker. Each connection
// may subscribe to any number of debates; one pump goroutine per subscription
// forwards broker events to the socket.
type ConnectionManager struct {
	broker *Broker
	log    *slog.Logger

	mu          sync.RWMutex
	connections map[string]*Connection

	// writeTimeout bounds a single WebSocket send.
	writeTimeout time.Duration
}

// Connection is one WebSocket client.
//
// subscriptions is only touched from the connection's own read loop and its
// deferred cleanup, so it needs no lock.
type Connection struct {
	ID            string
	conn          *websocket.Conn
	subscriptions map[string]*Subscription // debate_id → subscription
	ctx           context.Context
	cancel        context.CancelFunc

	writeMu sync.Mutex
}

// NewConnectionManager creates a manager over the given broker.
func NewConnectionManager(broker *Broker, writeTimeout time.Duration, log *slog.Logger) *ConnectionManager {
	return &ConnectionManager{
		broker:       broker,
		log:          log,
		connections:  make(map[string]*Connection),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection runs the lifecycle of one upgraded WebSocket connection.
// Blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.NewString(),
		conn:          conn,
		subscriptions: make(map[string]*Subscription),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			m.log.Warn("invalid WebSocket message", "connection_id", c.ID, "error", err)
			continue
		}
		m.handleClientMessage(c, &msg)
	}
}

// ActiveConnections returns the live connection count.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

func (m *ConnectionManager) handleClientMessage(c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.DebateID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "debate_id is required for subscribe"})
			return
		}
		// Replay only happens when the client names a position; a fresh
		// subscriber without last_seq gets live events only.
		lastSeq := int64(-1)
		if msg.LastSeq != nil {
			lastSeq = *msg.LastSeq
		}
		m.subscribe(c, msg.DebateID, lastSeq)
		m.sendJSON(c, map[string]string{
			"type":      "subscription.confirmed",
			"debate_id": msg.DebateID,
		})

	case "unsubscribe":
		if msg.DebateID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "debate_id is required for unsubscribe"})
			return
		}
		if sub, ok := c.subscriptions[msg.DebateID]; ok {
			delete(c.subscriptions, msg.DebateID)
			m.broker.Unsubscribe(sub)
		}

	case "catchup":
		// Re-subscribing from last_seq replays the retained window.
		if msg.DebateID == "" || msg.LastSeq == nil {
			m.sendJSON(c, map[string]string{"type": "error", "message": "debate_id and last_seq are required for catchup"})
			return
		}
		if sub, ok := c.subscriptions[msg.DebateID]; ok {
			delete(c.subscriptions, msg.DebateID)
			m.broker.Unsubscribe(sub)
		}
		m.subscribe(c, msg.DebateID, *msg.LastSeq)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers with the broker and starts the pump goroutine that
// forwards events until the subscription channel closes.
func (m *ConnectionManager) subscribe(c *Connection, debateID string, lastSeq int64) {
	if prev, ok := c.subscriptions[debateID]; ok {
		m.broker.Unsubscribe(prev)
	}
	sub := m.broker.Subscribe(debateID, lastSeq)
	c.subscriptions[debateID] = sub

	go func() {
		for event := range sub.C {
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if err := m.sendRaw(c, data); err != nil {
				m.broker.Unsubscribe(sub)
				return
			}
		}
		if sub.Dropped() {
			m.sendJSON(c, map[string]string{
				"type":      "subscription.dropped",
				"debate_id": debateID,
				"message":   "subscriber too slow; resubscribe with last_seq",
			})
		}
	}()
}

func (m *ConnectionManager) register(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregister(c *Connection) {
	for debateID, sub := range c.subscriptions {
		delete(c.subscriptions, debateID)
		m.broker.Unsubscribe(sub)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Warn("failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		m.log.Warn("failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

// sendRaw serialises writes per connection; coder/websocket allows only one
// concurrent writer.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
