// Package websocket pushes dashboard refresh hints to connected clients.
// When a write lands (new observation, plan created or updated) every
// client gets a small event telling it which view to re-fetch; all data
// still flows through the regular HTTP reads.
package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

type RefreshEvent struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

const (
	ScopeSummary      = "summary"
	ScopePlans        = "plans"
	ScopeObservations = "observations"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow client, drop it rather than block the hub
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop gracefully shuts down the hub and waits for Run() to exit.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

// NotifyRefresh tells every connected dashboard to re-fetch the given scope.
func (h *Hub) NotifyRefresh(scope string) {
	data, err := json.Marshal(RefreshEvent{Type: "refresh", Scope: scope})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal refresh event")
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}
