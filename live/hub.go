package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Event names pushed to every connected client. Clients treat each as a
// "state changed, re-fetch" signal; no payload is authoritative.
const (
	EventReservationUpdated = "reservation-updated"
	EventTicketScanned      = "ticket-scanned"
	EventNotification       = "notification"
)

// Event is the wire form of a broadcast.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	once       sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}

		case data := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}

		case <-h.done:
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	h.once.Do(func() { close(h.done) })
}

// Broadcast fans an event out to all connected clients. The channel is
// one-way; subscribers cannot signal back.
func (h *Hub) Broadcast(event string, payload any) {
	data, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		log.Println("broadcast marshal:", err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ServeWS upgrades the request and keeps the connection registered until
// the client goes away. Inbound messages are discarded.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	client := &Client{Conn: conn, Send: make(chan []byte, 256)}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go func() {
		defer conn.Close()
		for data := range client.Send {
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				break
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	select {
	case h.unregister <- client:
	case <-h.done:
	}
	conn.Close()
}
