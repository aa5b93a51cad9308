package hub

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tastetrack/ordering/models"
	"github.com/tastetrack/ordering/utils"
)

// Event types pushed to subscribed frontends.
const (
	EventOrderPlaced = "order_placed"
	EventOrderStatus = "order_status"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// StatusHub fans order events out to websocket subscribers so tracking
// views refresh without manual polling. Subscribers are keyed by session so
// a client only sees its own orders; an empty session key subscribes to
// everything (admin dashboards).
type StatusHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string
}

func NewStatusHub() *StatusHub {
	return &StatusHub{clients: make(map[*websocket.Conn]string)}
}

// Register adds a connection scoped to a session key.
func (h *StatusHub) Register(conn *websocket.Conn, sessionKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = sessionKey
}

// Unregister drops and closes a connection.
func (h *StatusHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// BroadcastOrderPlaced announces a freshly confirmed order.
func (h *StatusHub) BroadcastOrderPlaced(order *models.Order) {
	h.broadcast(order.SessionKey, Message{Event: EventOrderPlaced, Data: order})
}

// BroadcastStatusChange announces that the monitor observed a new status for
// an order.
func (h *StatusHub) BroadcastStatusChange(order *models.Order) {
	h.broadcast(order.SessionKey, Message{Event: EventOrderStatus, Data: order})
}

func (h *StatusHub) broadcast(sessionKey string, msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling hub message: %v", err)
		return
	}

	for conn, key := range h.clients {
		if key != "" && key != sessionKey {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending hub message: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
