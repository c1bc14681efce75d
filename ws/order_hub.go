package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kim-el/basic-pos/entity"
)

// Events on the order channel.
const (
	EventJoinRestaurant = "join-restaurant"
	EventUpdateOrder    = "update-order"
	EventOrderUpdated   = "order-updated"
)

// Envelope คือ frame JSON ของทุกข้อความบน socket
type Envelope struct {
	Event        string            `json:"event"`
	RestaurantID string            `json:"restaurantId,omitempty"`
	Items        []entity.CartItem `json:"items"`
}

// OrderHub คือศูนย์กลางกระจายออเดอร์สดของแต่ละร้าน:
// แคชเชียร์ส่ง snapshot ทั้งลิสต์เข้ามา ทุกจอในร้าน (รวมแคชเชียร์เอง)
// ได้รับลิสต์ใหม่ และจอที่เพิ่ง join จะได้สถานะล่าสุดทันที
type OrderHub struct {
	mu     sync.Mutex
	rooms  map[string]map[*websocket.Conn]bool // restaurantID -> set of members
	conns  map[*websocket.Conn]string          // member -> restaurantID (อย่างมากหนึ่งห้อง)
	orders map[string][]entity.CartItem        // restaurantID -> snapshot ล่าสุด

	join    chan subscription
	leave   chan *websocket.Conn
	publish chan orderUpdate
}

// Subscription = ขอเข้าห้องของร้านหนึ่ง (1 connection ต่อ 1 ห้อง)
type subscription struct {
	Conn         *websocket.Conn
	RestaurantID string
}

type orderUpdate struct {
	RestaurantID string
	Items        []entity.CartItem
}

// สร้าง OrderHub ใหม่ (ไม่มี global: composition root เป็นคนถือ)
func NewOrderHub() *OrderHub {
	return &OrderHub{
		rooms:   make(map[string]map[*websocket.Conn]bool),
		conns:   make(map[*websocket.Conn]string),
		orders:  make(map[string][]entity.CartItem),
		join:    make(chan subscription),
		leave:   make(chan *websocket.Conn),
		publish: make(chan orderUpdate),
	}
}

// Run processes join/publish/disconnect strictly in arrival order. A
// joiner therefore either sees the snapshot from before an in-flight
// publish and then the broadcast, or the one after it: never neither,
// never both.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.join:
			h.handleJoin(sub)
		case conn := <-h.leave:
			h.handleLeave(conn)
		case upd := <-h.publish:
			h.handlePublish(upd)
		}
	}
}

func (h *OrderHub) handleJoin(sub subscription) {
	if sub.RestaurantID == "" {
		log.Printf("ws: join-restaurant with empty id dropped")
		return
	}

	h.mu.Lock()
	// หนึ่ง connection อยู่ได้แค่ห้องเดียว: join ห้องใหม่ = ย้ายห้อง
	if prev, ok := h.conns[sub.Conn]; ok && prev != sub.RestaurantID {
		delete(h.rooms[prev], sub.Conn)
	}
	if h.rooms[sub.RestaurantID] == nil {
		h.rooms[sub.RestaurantID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[sub.RestaurantID][sub.Conn] = true
	h.conns[sub.Conn] = sub.RestaurantID
	items := snapshotCopy(h.orders[sub.RestaurantID])
	h.mu.Unlock()

	// catch-up: ส่งสถานะล่าสุดให้สมาชิกใหม่คนเดียว ไม่ broadcast
	h.send(sub.RestaurantID, sub.Conn, items)
}

func (h *OrderHub) handleLeave(conn *websocket.Conn) {
	h.mu.Lock()
	if room, ok := h.conns[conn]; ok {
		delete(h.rooms[room], conn)
		delete(h.conns, conn)
	}
	h.mu.Unlock()
	conn.Close()
}

func (h *OrderHub) handlePublish(upd orderUpdate) {
	if upd.RestaurantID == "" {
		log.Printf("ws: update-order with empty restaurant id dropped")
		return
	}

	items := snapshotCopy(upd.Items)

	h.mu.Lock()
	h.orders[upd.RestaurantID] = items // last write wins
	members := make([]*websocket.Conn, 0, len(h.rooms[upd.RestaurantID]))
	for conn := range h.rooms[upd.RestaurantID] {
		members = append(members, conn)
	}
	h.mu.Unlock()

	// ห้องว่างก็ไม่เป็นไร snapshot รอสมาชิกคนถัดไปอยู่ใน store แล้ว
	// ผู้ส่งได้รับด้วย: จอแคชเชียร์เรนเดอร์ผ่าน path เดียวกับจออื่น
	for _, conn := range members {
		h.send(upd.RestaurantID, conn, items)
	}
}

// send writes one order-updated frame. A dead member is dropped so the
// rest of the room still gets the update.
func (h *OrderHub) send(restaurantID string, conn *websocket.Conn, items []entity.CartItem) {
	msg := Envelope{Event: EventOrderUpdated, RestaurantID: restaurantID, Items: items}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("ws write error: %v", err)
		h.mu.Lock()
		if room, ok := h.conns[conn]; ok {
			delete(h.rooms[room], conn)
			delete(h.conns, conn)
		}
		h.mu.Unlock()
		conn.Close()
	}
}

// Order returns the latest published snapshot for a restaurant, empty if
// nothing was ever published.
func (h *OrderHub) Order(restaurantID string) []entity.CartItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	return snapshotCopy(h.orders[restaurantID])
}

// Members reports how many displays are watching a restaurant.
func (h *OrderHub) Members(restaurantID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[restaurantID])
}

func snapshotCopy(items []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, len(items))
	copy(out, items)
	return out
}
