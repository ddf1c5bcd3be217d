package ws

import (
	"log"
	"sync"
)

type userMessage struct {
	userID  int64
	payload []byte
}

// Hub tracks connected clients per user id and delivers targeted messages.
type Hub struct {
	clients    map[int64]map[*Client]bool
	deliver    chan userMessage
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		deliver:    make(chan userMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.userID] = set
			}
			set[client] = true
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user_id=%d", client.userID)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.removeClient(client)

		case msg := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			// Remove slow clients inline; queueing them on h.unregister
			// from the goroutine that drains it would deadlock.
			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.removeClient(client)
				}
			}
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mutex.Lock()
	if set, ok := h.clients[client.userID]; ok {
		if _, ok := set[client]; ok {
			delete(set, client)
			close(client.send)
		}
		if len(set) == 0 {
			delete(h.clients, client.userID)
		}
	}
	h.mutex.Unlock()
	if h.logger != nil {
		h.logger.Printf("WS disconnected | user_id=%d", client.userID)
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// SendToUser queues a payload for every open connection of one user. Drops
// when the delivery buffer is full; notifications are best effort.
func (h *Hub) SendToUser(userID int64, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliver <- userMessage{userID: userID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS delivery dropped | user_id=%d reason=buffer_full", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}
