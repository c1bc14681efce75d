package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	go h.listen(conn)
}

// listen pumps one connection's frames into the hub until it drops.
// The room is chosen by an explicit join-restaurant message, not by the
// URL: a reconnected client has to re-join.
func (h *OrderHub) listen(conn *websocket.Conn) {
	defer func() { h.leave <- conn }()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg Envelope
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("ws invalid payload: %v", err)
			continue
		}

		switch msg.Event {
		case EventJoinRestaurant:
			h.join <- subscription{Conn: conn, RestaurantID: msg.RestaurantID}
		case EventUpdateOrder:
			h.publish <- orderUpdate{RestaurantID: msg.RestaurantID, Items: msg.Items}
		default:
			log.Printf("ws unknown event %q", msg.Event)
		}
	}
}
