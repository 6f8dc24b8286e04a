// Package ws pushes live order events to sellers over WebSocket. Each store
// has its own subscriber set; a committed placement publishes one event to
// the store's feed.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/warungku/warung/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins by default — restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SetCheckOrigin replaces the default (allow-all) origin checker.
func SetCheckOrigin(fn func(r *http.Request) bool) {
	upgrader.CheckOrigin = fn
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Feed fans order events out to the subscribers of each store.
type Feed struct {
	mu   sync.RWMutex
	subs map[uint]map[*client]struct{}
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[uint]map[*client]struct{})}
}

// OrderFeed is the process-wide feed the order service publishes to.
var OrderFeed = NewFeed()

// Subscribe upgrades the connection and streams the store's order events
// until the client disconnects.
func (f *Feed) Subscribe(w http.ResponseWriter, r *http.Request, storeID uint) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{conn: conn, send: make(chan []byte, 16)}

	f.mu.Lock()
	if f.subs[storeID] == nil {
		f.subs[storeID] = make(map[*client]struct{})
	}
	f.subs[storeID][c] = struct{}{}
	f.mu.Unlock()

	go c.writePump()
	go f.readPump(c, storeID)
	return nil
}

// Publish sends v (as JSON) to every subscriber of storeID. Slow clients
// are skipped rather than blocking the placement path.
func (f *Feed) Publish(storeID uint, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("ws: marshal event", "error", err)
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for c := range f.subs[storeID] {
		select {
		case c.send <- data:
		default:
		}
	}
}

func (f *Feed) remove(c *client, storeID uint) {
	f.mu.Lock()
	if set, ok := f.subs[storeID]; ok {
		if _, member := set[c]; member {
			delete(set, c)
			close(c.send)
		}
		if len(set) == 0 {
			delete(f.subs, storeID)
		}
	}
	f.mu.Unlock()
}

// readPump discards inbound frames; its job is noticing the disconnect.
func (f *Feed) readPump(c *client, storeID uint) {
	defer func() {
		f.remove(c, storeID)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("ws: unexpected close", "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
