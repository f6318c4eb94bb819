package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/restaurant-workflow/services"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type client struct {
	userID string
	role   string
}

// Hub menampung semua websocket client (per user + role) dan mengirim event
// ke audience yang tepat. Implements services.Publisher.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]client),
	}
}

// Register adds a connection for the given user/role.
func (h *Hub) Register(conn *websocket.Conn, userID, role string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = client{userID: userID, role: role}
}

// Unregister drops the connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Notify sends the event to every connected session in the audience.
// Fire-and-forget: write errors are logged and the loop keeps going.
func (h *Hub) Notify(event string, payload interface{}, audience services.Audience) {
	data, err := json.Marshal(Message{Event: event, Data: payload})
	if err != nil {
		utils.ErrorLogger.Printf("realtime: marshal %s: %v", event, err)
		return
	}

	users := make(map[string]bool, len(audience.UserIDs))
	for _, id := range audience.UserIDs {
		users[id] = true
	}
	roles := make(map[string]bool, len(audience.Roles))
	for _, r := range audience.Roles {
		roles[r] = true
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, cl := range h.clients {
		if !users[cl.userID] && !roles[cl.role] {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("realtime: send %s to %s: %v", event, cl.userID, err)
		}
	}
}

// ClientCount reports the number of connected sessions.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
