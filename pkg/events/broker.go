package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup response.
// If more events are missed, a catchup.overflow message tells the client to
// replay over the REST stream endpoint instead.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when subscribing to
// a new PG channel. Without this, a stalled connection would block the
// subscribing goroutine (and thus the client's read loop) indefinitely.
const listenTimeout = 10 * time.Second

// localSubBuffer is the channel capacity of an in-process subscriber.
// A subscriber that falls this far behind is closed; its consumer
// reconnects and replays from its last seen sequence id.
const localSubBuffer = 256

// CatchupQuerier queries stored events for catchup. Implemented by
// services.EventService.
type CatchupQuerier interface {
	GetEventsSince(ctx context.Context, crID string, afterSeq int64, limit int) ([]*Event, error)
}

// Broker fans NOTIFY payloads out to WebSocket connections and
// in-process subscribers (the SSE handler and StreamFrom). Each Go
// process (pod) has one Broker instance.
type Broker struct {
	// Active WebSocket connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel → set of connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	// In-process subscribers: channel → set of subscriber channels
	locals  map[string]map[*localSub]bool
	localMu sync.Mutex

	catchupQuerier CatchupQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex

	// Write timeout for WebSocket sends
	writeTimeout time.Duration
}

type localSub struct {
	ch     chan *Event
	closed bool
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all reads and
// writes (subscribe, unsubscribe, unregisterConnection) happen on the single
// goroutine that owns this connection (HandleConnection's read loop and its
// deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool // channels this connection is subscribed to
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewBroker creates a Broker.
func NewBroker(catchupQuerier CatchupQuerier, writeTimeout time.Duration) *Broker {
	return &Broker{
		connections:    make(map[string]*Connection),
		channels:       make(map[string]map[string]bool),
		locals:         make(map[string]map[*localSub]bool),
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Broker and NotifyListener are created.
func (m *Broker) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// Subscribe registers an in-process subscriber for a CR's channel.
// The underlying PG LISTEN is established synchronously before this
// returns, so an event appended after Subscribe returns is guaranteed
// to reach the returned channel. The cancel function must be called
// exactly once; the event channel is closed on cancel or overflow.
func (m *Broker) Subscribe(ctx context.Context, crID string) (<-chan *Event, func(), error) {
	channel := CRChannel(crID)
	if err := m.ensureListen(channel); err != nil {
		return nil, nil, err
	}

	sub := &localSub{ch: make(chan *Event, localSubBuffer)}
	m.localMu.Lock()
	if m.locals[channel] == nil {
		m.locals[channel] = make(map[*localSub]bool)
	}
	m.locals[channel][sub] = true
	m.localMu.Unlock()

	cancel := func() {
		m.localMu.Lock()
		defer m.localMu.Unlock()
		if subs, ok := m.locals[channel]; ok {
			if subs[sub] {
				delete(subs, sub)
				if !sub.closed {
					sub.closed = true
					close(sub.ch)
				}
			}
			if len(subs) == 0 {
				delete(m.locals, channel)
				m.maybeUnlisten(channel)
			}
		}
	}
	return sub.ch, cancel, nil
}

// ensureListen starts PG LISTEN on a channel if no one listens yet.
func (m *Broker) ensureListen(channel string) error {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return nil // No listener wired (single-process tests)
	}
	listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()
	if err := l.Subscribe(listenCtx, channel); err != nil {
		return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
	}
	return nil
}

// maybeUnlisten drops the PG LISTEN when neither WebSocket nor local
// subscribers remain on the channel. Called with localMu held.
func (m *Broker) maybeUnlisten(channel string) {
	m.channelMu.RLock()
	_, wsActive := m.channels[channel]
	m.channelMu.RUnlock()
	if wsActive {
		return
	}
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		// Re-check: a rapid unsubscribe/resubscribe cycle may have
		// re-added the channel; skipping UNLISTEN then keeps the
		// subscription live.
		m.localMu.Lock()
		_, localActive := m.locals[channel]
		m.localMu.Unlock()
		m.channelMu.RLock()
		_, wsActive := m.channels[channel]
		m.channelMu.RUnlock()
		if localActive || wsActive {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *Broker) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	// Send connection established message
	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	// Read loop — process client messages until connection closes
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Connection closed or error — exit read loop
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast delivers a NOTIFY payload to every subscriber of the
// channel: WebSocket connections receive the raw envelope; in-process
// subscribers receive the decoded Event. Unknown event types are
// logged and dropped at this boundary.
func (m *Broker) Broadcast(channel string, payload []byte) {
	// In-process subscribers first: the executor-side consumers (SSE,
	// StreamFrom) must not starve behind slow WebSocket writes.
	event, err := DecodeEvent(payload)
	if err != nil {
		if channel != GlobalRunsChannel {
			slog.Warn("Dropping undecodable event", "channel", channel, "error", err)
		}
		event = nil
	}
	if event != nil {
		m.localMu.Lock()
		for sub := range m.locals[channel] {
			select {
			case sub.ch <- event:
			default:
				// Subscriber too slow: close it so its consumer
				// reconnects and replays from its last sequence id.
				slog.Warn("Closing slow event subscriber", "channel", channel)
				delete(m.locals[channel], sub)
				sub.closed = true
				close(sub.ch)
			}
		}
		m.localMu.Unlock()
	}

	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	// Copy IDs to avoid holding lock during sends
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers under the lock, then release before
	// sending. This avoids holding mu.RLock during potentially slow
	// writes (up to writeTimeout per connection), which would stall
	// connection register/unregister operations.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, payload); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *Broker) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of WebSocket subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (m *Broker) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *Broker) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if err := m.subscribeWS(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up: deliver all prior events so late subscribers don't miss anything.
		m.handleCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribeWS(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribeWS registers a WebSocket connection for a channel and starts LISTEN
// if it is the first subscriber. LISTEN is synchronous so it completes before
// subscribeWS returns — this guarantees that the subsequent auto-catchup runs
// with LISTEN already active, closing the gap where events published between
// catchup and LISTEN would be lost.
func (m *Broker) subscribeWS(c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		if err := m.ensureListen(channel); err != nil {
			slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
			m.cleanupFailedChannel(c, channel)
			return err
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// cleanupFailedChannel removes ALL subscribers from a channel after a LISTEN
// failure and notifies every affected connection (except the triggering one,
// which is notified by the caller via the returned error).
//
// Between unlocking channelMu (after creating the channel entry) and LISTEN
// completing, other goroutines may have subscribed to the same channel. Because
// they saw the channel already existed they skipped LISTEN and returned success.
// Those connections are now orphaned — they received subscription.confirmed but
// the underlying PG LISTEN was never established. This helper cleans them up.
// Clients MUST treat subscription.error as authoritative: discard any previously
// received events for that channel and either re-subscribe (with back-off) or
// fall back to the REST stream.
func (m *Broker) cleanupFailedChannel(triggering *Connection, channel string) {
	// Collect all affected connection IDs and delete the channel entirely.
	m.channelMu.Lock()
	affectedIDs := make([]string, 0, len(m.channels[channel]))
	for connID := range m.channels[channel] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	// Look up connection pointers (without holding channelMu).
	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	// Notify each affected connection that the subscription failed.
	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "channel", channel)
		m.sendJSON(conn, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribeWS removes a connection from a channel and stops LISTEN if it was
// the last subscriber (WebSocket and in-process alike).
func (m *Broker) unsubscribeWS(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			m.localMu.Lock()
			m.maybeUnlisten(channel)
			m.localMu.Unlock()
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// handleCatchup sends missed events since lastEventID to the client.
func (m *Broker) handleCatchup(ctx context.Context, c *Connection, channel string, lastEventID int64) {
	if m.catchupQuerier == nil {
		return
	}
	crID, ok := crIDFromChannel(channel)
	if !ok {
		return // Global channels have no persistent backlog
	}

	// Query events from DB since lastEventID (capped at catchupLimit + 1 to detect overflow)
	missed, err := m.catchupQuerier.GetEventsSince(ctx, crID, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	// Check if more events exist beyond the limit
	hasMore := len(missed) > catchupLimit
	if hasMore {
		missed = missed[:catchupLimit]
	}

	// Send missed events in order, as the same envelope NOTIFY uses.
	for _, evt := range missed {
		payload, err := json.Marshal(evt)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	// If more events were missed than the catchup limit, tell the client
	// to replay via the REST stream instead of paginating catchup requests.
	if hasMore {
		m.sendJSON(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// crIDFromChannel extracts the CR id from a "cr:{cr_id}" channel name.
func crIDFromChannel(channel string) (string, bool) {
	const prefix = "cr:"
	if len(channel) > len(prefix) && channel[:len(prefix)] == prefix {
		return channel[len(prefix):], true
	}
	return "", false
}

// registerConnection adds a connection to the tracking map.
func (m *Broker) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *Broker) unregisterConnection(c *Connection) {
	// Remove from all channel subscriptions
	for ch := range c.subscriptions {
		m.unsubscribeWS(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *Broker) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *Broker) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
