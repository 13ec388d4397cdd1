package handlers

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/mpb/coaching-dashboard/internal/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub *websocket.Hub
}

func NewWebSocketHandler(hub *websocket.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// Subscribe upgrades the connection and attaches it to the refresh hub.
func (h *WebSocketHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	websocket.NewClient(h.hub, conn).Register()
}
