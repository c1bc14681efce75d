package ws

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kim-el/basic-pos/entity"
)

// Status ของลิงก์ระหว่างจอกับเรลย์ (จอเอาไปแสดง indicator)
type Status string

const (
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
	StatusError        Status = "error"
)

const defaultRetry = 500 * time.Millisecond

// OrderClient คือฝั่งจอของ order channel: cashier/kitchen/customer ใช้ตัวเดียวกัน
// ต่อ socket, join ห้องร้าน, รับ snapshot ใหม่ และ (เฉพาะแคชเชียร์) publish
//
// Connection and restaurant id are re-read under the mutex on every call:
// a reconnect swaps the conn and the restaurant id can arrive late from
// routing, so nothing here may hold on to values captured at creation.
type OrderClient struct {
	url   string
	retry time.Duration

	mu           sync.Mutex
	conn         *websocket.Conn
	restaurantID string
	status       Status
	lastItems    []entity.CartItem
	closed       bool

	writeMu sync.Mutex // one writer at a time on the socket

	updates chan []entity.CartItem
	done    chan struct{}
}

// NewOrderClient dials url in the background and keeps the link alive.
// The restaurant id may still be unknown at this point; joining waits
// until SetRestaurant delivers a non-blank one.
func NewOrderClient(url string) *OrderClient {
	c := &OrderClient{
		url:     url,
		retry:   defaultRetry,
		status:  StatusDisconnected,
		updates: make(chan []entity.CartItem, 16),
		done:    make(chan struct{}),
	}
	go c.run()
	return c
}

// SetRestaurant switches the client to a restaurant's room. Blank ids are
// ignored (routing may not have resolved yet); the join is re-attempted
// as soon as a real id shows up or the link comes back.
func (c *OrderClient) SetRestaurant(restaurantID string) {
	restaurantID = strings.TrimSpace(restaurantID)

	c.mu.Lock()
	c.restaurantID = restaurantID
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return
	}
	c.sendJoin(conn)
}

// sendJoin re-reads the restaurant id under the write lock so that when a
// join from the dial path races one from SetRestaurant, both frames carry
// the newest id and the relay converges on the right room.
func (c *OrderClient) sendJoin(conn *websocket.Conn) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	restaurantID := c.restaurantID
	c.mu.Unlock()
	if restaurantID == "" {
		return
	}
	if err := conn.WriteJSON(Envelope{Event: EventJoinRestaurant, RestaurantID: restaurantID}); err != nil {
		log.Printf("ws client write error: %v", err)
	}
}

// Publish ส่ง snapshot ทั้งลิสต์แทนของเดิม (ใช้โดยแคชเชียร์เท่านั้น)
// No-op while disconnected or before the restaurant id is known: the UI
// may call this before routing resolves and must not blow up.
func (c *OrderClient) Publish(items []entity.CartItem) {
	c.mu.Lock()
	conn, restaurantID := c.conn, c.restaurantID
	c.mu.Unlock()

	if conn == nil || restaurantID == "" {
		log.Printf("ws client: publish skipped (connected=%v restaurantId=%q)", conn != nil, restaurantID)
		return
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	c.write(conn, Envelope{Event: EventUpdateOrder, RestaurantID: restaurantID, Items: items})
}

// Updates streams incoming snapshots in arrival order; each one replaces
// the previous in full. If the consumer lags, older snapshots are dropped
// in favour of the newest.
func (c *OrderClient) Updates() <-chan []entity.CartItem {
	return c.updates
}

// Items returns the last snapshot received. While disconnected this stays
// at the stale-but-present value rather than being cleared.
func (c *OrderClient) Items() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshotCopy(c.lastItems)
}

func (c *OrderClient) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Close tears the link down for good.
func (c *OrderClient) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	conn := c.conn
	c.mu.Unlock()

	close(c.done)
	if conn != nil {
		conn.Close()
	}
}

// run dials, joins, reads until the conn drops, then starts over. A new
// connection has no memory of the old membership, so the join is
// re-issued every time and the relay replays current state.
func (c *OrderClient) run() {
	for {
		select {
		case <-c.done:
			return
		default:
		}

		c.setStatus(StatusConnecting)
		conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
		if err != nil {
			c.setStatus(StatusError)
			if !c.sleep() {
				return
			}
			continue
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			conn.Close()
			return
		}
		c.conn = conn
		c.status = StatusConnected
		c.mu.Unlock()

		c.sendJoin(conn)
		c.readLoop(conn)

		c.mu.Lock()
		if c.conn == conn {
			c.conn = nil
		}
		c.status = StatusDisconnected
		c.mu.Unlock()
		conn.Close()

		if !c.sleep() {
			return
		}
	}
}

func (c *OrderClient) readLoop(conn *websocket.Conn) {
	for {
		var msg Envelope
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Event != EventOrderUpdated {
			continue
		}

		items := msg.Items
		if items == nil {
			items = []entity.CartItem{}
		}

		c.mu.Lock()
		c.lastItems = items
		c.mu.Unlock()

		// single producer: safe to make room by dropping the oldest
		select {
		case c.updates <- items:
		default:
			select {
			case <-c.updates:
			default:
			}
			c.updates <- items
		}
	}
}

func (c *OrderClient) write(conn *websocket.Conn, msg Envelope) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("ws client write error: %v", err)
	}
}

func (c *OrderClient) setStatus(s Status) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

// sleep waits out the retry delay; false means the client was closed.
func (c *OrderClient) sleep() bool {
	select {
	case <-c.done:
		return false
	case <-time.After(c.retry):
		return true
	}
}
