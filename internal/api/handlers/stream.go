package handlers

import (
	"net/http"
	"sync"
	"time"

	"battery-atlas/internal/api/models"
	"battery-atlas/internal/observability"
	"battery-atlas/internal/selection"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamSendBuffer   = 8
)

// StreamHub fans selection events out to connected websocket clients so
// the map and list views stay consistent without polling. Origin checking
// is delegated to the CORS middleware in front of the upgrade.
type StreamHub struct {
	upgrader websocket.Upgrader
	metrics  *observability.Collector

	mu      sync.RWMutex
	clients map[uuid.UUID]*streamClient
}

type streamClient struct {
	conn *websocket.Conn
	send chan models.SelectionEvent
	once sync.Once
	done chan struct{}
}

func NewStreamHub(metrics *observability.Collector) *StreamHub {
	return &StreamHub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		metrics: metrics,
		clients: make(map[uuid.UUID]*streamClient),
	}
}

// Broadcast queues a selection event for every connected client. Clients
// that cannot keep up are dropped rather than blocking the mutation path.
func (h *StreamHub) Broadcast(axis selection.Axis, s selection.State) {
	ev := models.SelectionEvent{
		Type:      "selection",
		Axis:      axis,
		Selection: models.NewSelectionResponse(s),
		Timestamp: time.Now().UTC(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, cl := range h.clients {
		select {
		case cl.send <- ev:
		default:
			logrus.Warnf("stream client %s too slow, disconnecting", id)
			cl.close()
		}
	}
}

// ServeWS handles GET /api/v1/stream
func (h *StreamHub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.Errorf("websocket upgrade failed: %v", err)
		return
	}

	id := uuid.New()
	cl := &streamClient{
		conn: conn,
		send: make(chan models.SelectionEvent, streamSendBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[id] = cl
	h.mu.Unlock()
	if h.metrics != nil {
		h.metrics.StreamClients.Inc()
	}
	logrus.Debugf("stream client %s connected", id)

	go h.writeLoop(cl)
	h.readLoop(cl)

	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
	if h.metrics != nil {
		h.metrics.StreamClients.Dec()
	}
	logrus.Debugf("stream client %s disconnected", id)
}

// CloseAll disconnects every client, for server shutdown.
func (h *StreamHub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, cl := range h.clients {
		cl.close()
		delete(h.clients, id)
	}
}

// ClientCount reports the number of connected clients.
func (h *StreamHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *StreamHub) writeLoop(cl *streamClient) {
	for {
		select {
		case ev := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := cl.conn.WriteJSON(ev); err != nil {
				cl.close()
				return
			}
		case <-cl.done:
			return
		}
	}
}

// readLoop drains inbound frames; the stream is push-only, so reads exist
// to notice the peer going away.
func (h *StreamHub) readLoop(cl *streamClient) {
	defer cl.close()
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (cl *streamClient) close() {
	cl.once.Do(func() {
		close(cl.done)
		cl.conn.Close()
	})
}
