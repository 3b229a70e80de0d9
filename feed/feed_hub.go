package feed

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/foodtruck-order-app/models"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

// Event types pushed to connected staff clients.
const (
	EventOrderCreated = "order_created"
	EventOrderAmended = "order_amended"
	EventStockReset   = "stock_reset"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans order events out to the staff dashboards watching a venue's order
// log live.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> venue filter ("" = all)
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection, optionally filtered to one venue code.
func RegisterClient(conn *websocket.Conn, venueCode string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = venueCode
}

func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastOrderCreated(order models.Order) {
	broadcast(order.VenueCode, Message{Event: EventOrderCreated, Data: order})
}

func BroadcastOrderAmended(order models.Order) {
	broadcast(order.VenueCode, Message{Event: EventOrderAmended, Data: order})
}

func BroadcastStockReset(venueCode string) {
	broadcast(venueCode, Message{Event: EventStockReset, Data: map[string]string{"venue": venueCode}})
}

func broadcast(venueCode string, msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for conn, filter := range hub.clients {
		if filter != "" && filter != venueCode {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			utils.ErrorLogger.Printf("feed write failed, dropping client: %v", err)
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
