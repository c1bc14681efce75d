package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kim-el/basic-pos/entity"
)

func newHubServer(t *testing.T) (*OrderHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewOrderHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/orders", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
}

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func joinRoom(t *testing.T, conn *websocket.Conn, restaurantID string) {
	t.Helper()
	if err := conn.WriteJSON(Envelope{Event: EventJoinRestaurant, RestaurantID: restaurantID}); err != nil {
		t.Fatalf("join: %v", err)
	}
}

func publishOrder(t *testing.T, conn *websocket.Conn, restaurantID string, items []entity.CartItem) {
	t.Helper()
	if items == nil {
		items = []entity.CartItem{}
	}
	if err := conn.WriteJSON(Envelope{Event: EventUpdateOrder, RestaurantID: restaurantID, Items: items}); err != nil {
		t.Fatalf("publish: %v", err)
	}
}

func readUpdate(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Envelope
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Event != EventOrderUpdated {
		t.Fatalf("got event %q, want %q", msg.Event, EventOrderUpdated)
	}
	return msg
}

// expectSilence fails if anything arrives on conn within the window.
// The conn is unusable afterwards; call it last.
func expectSilence(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var msg Envelope
	if err := conn.ReadJSON(&msg); err == nil {
		t.Fatalf("unexpected delivery: %+v", msg)
	}
}

func waitForOrder(t *testing.T, hub *OrderHub, restaurantID string, want int) []entity.CartItem {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		items := hub.Order(restaurantID)
		if len(items) == want {
			return items
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("order for %q never reached %d item(s)", restaurantID, want)
	return nil
}

func burgerItem() entity.CartItem {
	p := entity.Product{Name: "Burger", Price: 18.99, Category: "Food", IsActive: true}
	p.ID = 1
	return entity.CartItem{Product: p, Quantity: 1}
}

func TestJoinEmptyRoomDeliversEmptyCatchUp(t *testing.T) {
	_, srv := newHubServer(t)
	conn := dialHub(t, srv)

	joinRoom(t, conn, "1")
	msg := readUpdate(t, conn)
	if len(msg.Items) != 0 {
		t.Errorf("catch-up for fresh room has %d items, want 0", len(msg.Items))
	}
	if msg.Items == nil {
		t.Error("catch-up items are null, want empty list")
	}
}

func TestPublishFansOutToAllMembersIncludingPublisher(t *testing.T) {
	_, srv := newHubServer(t)
	cashier := dialHub(t, srv)
	kitchen := dialHub(t, srv)

	joinRoom(t, cashier, "42")
	readUpdate(t, cashier)
	joinRoom(t, kitchen, "42")
	readUpdate(t, kitchen)

	publishOrder(t, cashier, "42", []entity.CartItem{burgerItem()})

	for name, conn := range map[string]*websocket.Conn{"cashier": cashier, "kitchen": kitchen} {
		msg := readUpdate(t, conn)
		if len(msg.Items) != 1 || msg.Items[0].Product.Name != "Burger" || msg.Items[0].Quantity != 1 {
			t.Errorf("%s got %+v, want one Burger x1", name, msg.Items)
		}
	}
}

func TestLateJoinerReceivesLatestSnapshot(t *testing.T) {
	hub, srv := newHubServer(t)
	cashier := dialHub(t, srv)
	joinRoom(t, cashier, "42")
	readUpdate(t, cashier)

	publishOrder(t, cashier, "42", []entity.CartItem{burgerItem()})
	readUpdate(t, cashier)
	waitForOrder(t, hub, "42", 1)

	late := dialHub(t, srv)
	joinRoom(t, late, "42")
	msg := readUpdate(t, late)
	if len(msg.Items) != 1 || msg.Items[0].Product.Name != "Burger" {
		t.Fatalf("late joiner caught up with %+v, want the Burger snapshot", msg.Items)
	}
}

func TestPublishWithNoMembersStoresSnapshot(t *testing.T) {
	hub, srv := newHubServer(t)
	conn := dialHub(t, srv)

	// not joined anywhere: still a legal publish
	publishOrder(t, conn, "77", []entity.CartItem{burgerItem()})

	items := waitForOrder(t, hub, "77", 1)
	if items[0].Product.Name != "Burger" {
		t.Errorf("stored %+v, want Burger", items[0])
	}
}

func TestLastWriteWins(t *testing.T) {
	hub, srv := newHubServer(t)
	conn := dialHub(t, srv)
	joinRoom(t, conn, "42")
	readUpdate(t, conn)

	first := []entity.CartItem{burgerItem()}
	second := []entity.CartItem{burgerItem(), {Product: entity.Product{Name: "Latte", Price: 5.25}, Quantity: 2}}
	publishOrder(t, conn, "42", first)
	publishOrder(t, conn, "42", second)

	// delivered in issue order, no merge
	if msg := readUpdate(t, conn); len(msg.Items) != 1 {
		t.Fatalf("first delivery has %d items, want 1", len(msg.Items))
	}
	if msg := readUpdate(t, conn); len(msg.Items) != 2 {
		t.Fatalf("second delivery has %d items, want 2", len(msg.Items))
	}

	items := waitForOrder(t, hub, "42", 2)
	if items[1].Product.Name != "Latte" {
		t.Errorf("stored snapshot is %+v, want the second publish", items)
	}
}

func TestEmptySnapshotClearsOrder(t *testing.T) {
	hub, srv := newHubServer(t)
	conn := dialHub(t, srv)
	joinRoom(t, conn, "42")
	readUpdate(t, conn)

	publishOrder(t, conn, "42", []entity.CartItem{burgerItem()})
	readUpdate(t, conn)

	publishOrder(t, conn, "42", nil) // sale completed
	msg := readUpdate(t, conn)
	if len(msg.Items) != 0 {
		t.Errorf("clear delivered %d items, want 0", len(msg.Items))
	}
	if items := hub.Order("42"); len(items) != 0 {
		t.Errorf("stored snapshot still has %d items after clear", len(items))
	}
}

func TestPublishIsIsolatedPerRestaurant(t *testing.T) {
	_, srv := newHubServer(t)
	a := dialHub(t, srv)
	b := dialHub(t, srv)

	joinRoom(t, a, "1")
	readUpdate(t, a)
	joinRoom(t, b, "2")
	readUpdate(t, b)

	publishOrder(t, a, "1", []entity.CartItem{burgerItem()})
	readUpdate(t, a)

	expectSilence(t, b)
}

func TestJoinIsIdempotent(t *testing.T) {
	_, srv := newHubServer(t)
	member := dialHub(t, srv)
	cashier := dialHub(t, srv)

	joinRoom(t, member, "5")
	readUpdate(t, member)
	joinRoom(t, member, "5") // re-join must not duplicate membership
	readUpdate(t, member)

	joinRoom(t, cashier, "5")
	readUpdate(t, cashier)
	publishOrder(t, cashier, "5", []entity.CartItem{burgerItem()})

	if msg := readUpdate(t, member); len(msg.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(msg.Items))
	}
	expectSilence(t, member)
}

func TestJoinMovesConnectionBetweenRooms(t *testing.T) {
	_, srv := newHubServer(t)
	conn := dialHub(t, srv)
	cashier := dialHub(t, srv)

	joinRoom(t, conn, "1")
	readUpdate(t, conn)
	joinRoom(t, conn, "2") // a connection belongs to at most one room
	readUpdate(t, conn)

	joinRoom(t, cashier, "1")
	readUpdate(t, cashier)
	publishOrder(t, cashier, "1", []entity.CartItem{burgerItem()})
	readUpdate(t, cashier)

	expectSilence(t, conn)
}

func TestEmptyRestaurantIDIsDroppedWithoutCrashing(t *testing.T) {
	hub, srv := newHubServer(t)
	conn := dialHub(t, srv)

	joinRoom(t, conn, "")
	publishOrder(t, conn, "", []entity.CartItem{burgerItem()})

	// hub must still be serving
	joinRoom(t, conn, "9")
	msg := readUpdate(t, conn)
	if len(msg.Items) != 0 {
		t.Errorf("catch-up has %d items, want 0", len(msg.Items))
	}
	if items := hub.Order(""); len(items) != 0 {
		t.Errorf("empty-id publish was stored: %+v", items)
	}
}

func TestDisconnectedMemberDoesNotBlockFanOut(t *testing.T) {
	_, srv := newHubServer(t)
	gone := dialHub(t, srv)
	kitchen := dialHub(t, srv)
	cashier := dialHub(t, srv)

	joinRoom(t, gone, "42")
	readUpdate(t, gone)
	joinRoom(t, kitchen, "42")
	readUpdate(t, kitchen)
	joinRoom(t, cashier, "42")
	readUpdate(t, cashier)

	gone.Close()

	publishOrder(t, cashier, "42", []entity.CartItem{burgerItem()})
	if msg := readUpdate(t, kitchen); len(msg.Items) != 1 {
		t.Fatalf("kitchen got %d items, want 1", len(msg.Items))
	}
	if msg := readUpdate(t, cashier); len(msg.Items) != 1 {
		t.Fatalf("cashier got %d items, want 1", len(msg.Items))
	}
}

// The demo flow end to end: cashier rings up a burger, kitchen sees it,
// customer display joins late and still sees it, then the sale completes.
func TestRestaurant42Scenario(t *testing.T) {
	hub, srv := newHubServer(t)

	cashier := dialHub(t, srv)
	kitchen := dialHub(t, srv)
	joinRoom(t, cashier, "42")
	readUpdate(t, cashier)
	joinRoom(t, kitchen, "42")
	readUpdate(t, kitchen)

	publishOrder(t, cashier, "42", []entity.CartItem{burgerItem()})
	if msg := readUpdate(t, kitchen); len(msg.Items) != 1 || msg.Items[0].Product.Price != 18.99 {
		t.Fatalf("kitchen got %+v, want one Burger at 18.99", msg.Items)
	}
	readUpdate(t, cashier)

	customer := dialHub(t, srv)
	joinRoom(t, customer, "42")
	if msg := readUpdate(t, customer); len(msg.Items) != 1 || msg.Items[0].Product.Name != "Burger" {
		t.Fatalf("customer caught up with %+v, want the Burger, not an empty list", msg.Items)
	}

	publishOrder(t, cashier, "42", nil)
	for name, conn := range map[string]*websocket.Conn{"kitchen": kitchen, "customer": customer} {
		if msg := readUpdate(t, conn); len(msg.Items) != 0 {
			t.Errorf("%s still shows %d items after sale completed", name, len(msg.Items))
		}
	}
	if items := hub.Order("42"); len(items) != 0 {
		t.Errorf("stored snapshot not cleared: %+v", items)
	}
}
