package events

import (
	"encoding/json"
	"sync"

	"tugas-go/internal/models"

	"github.com/gofiber/websocket/v2"
)

// Aksi yang disiarkan ke klien websocket.
const (
	ActionCreated = "task.created"
	ActionUpdated = "task.updated"
	ActionDeleted = "task.deleted"
)

// TaskEvent adalah satu perubahan task yang disiarkan ke semua klien.
type TaskEvent struct {
	Action string      `json:"action"`
	Task   models.Task `json:"task"`
}

// Client merepresentasikan satu koneksi websocket.
type Client struct {
	Conn *websocket.Conn
	Mu   sync.Mutex
}

// Hub mengelola koneksi websocket dan menyiarkan TaskEvent.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan TaskEvent
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan TaskEvent),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Publish mengirim event ke hub. Hub nil berarti fitur websocket
// tidak aktif dan event dibuang.
func (h *Hub) Publish(action string, task models.Task) {
	if h == nil {
		return
	}
	h.Broadcast <- TaskEvent{Action: action, Task: task}
}

// Run menjalankan loop Hub untuk mengelola register, unregister, dan broadcast.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Conn.Close()
			}
		case event := <-h.Broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				continue
			}
			for client := range h.Clients {
				client.Mu.Lock()
				err := client.Conn.WriteMessage(websocket.TextMessage, message)
				client.Mu.Unlock()
				if err != nil {
					delete(h.Clients, client)
					client.Conn.Close()
				}
			}
		}
	}
}
