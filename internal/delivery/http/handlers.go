package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mmuslimabdulj/lobby-chat/internal/config"
	"github.com/mmuslimabdulj/lobby-chat/internal/delivery/ws"
	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
	"github.com/mmuslimabdulj/lobby-chat/view/pages"
)

// statusHistoryLimit is how many recent messages the status page shows
const statusHistoryLimit = 50

// ChatReader exposes read-only snapshots of the chat state
type ChatReader interface {
	Roster() []string
	History() []domain.ChatMessage
}

type Handler struct {
	hub            *ws.Hub
	chat           ChatReader
	allowedOrigins []string
	upgrader       websocket.Upgrader
}

func NewHandler(hub *ws.Hub, chat ChatReader, cfg *config.Config) *Handler {
	h := &Handler{
		hub:            hub,
		chat:           chat,
		allowedOrigins: cfg.AllowedOrigins,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return h.isOriginAllowed(r.Header.Get("Origin"))
		},
	}
	return h
}

// isOriginAllowed checks if the origin is in the allowed list
func (h *Handler) isOriginAllowed(origin string) bool {
	// Empty origin is allowed (same-origin requests, non-browser clients)
	if origin == "" {
		return true
	}

	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
	}
	return false
}

// HandleStatus serves the read-only status page
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

	history := h.chat.History()
	if len(history) > statusHistoryLimit {
		history = history[len(history)-statusHistoryLimit:]
	}

	component := pages.Status(pages.StatusView{
		Connections: h.hub.ClientCount(),
		Users:       h.chat.Roster(),
		History:     history,
	})
	if err := component.Render(r.Context(), w); err != nil {
		log.Printf("render status page: %v", err)
	}
}

// HandleUsers returns the current roster
func (h *Handler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.ActiveUsersResponsePayload{Users: h.chat.Roster()})
}

// HandleHistory returns the full message log
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.chat.History())
}

// HandleHealth reports liveness plus connection and user counts
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"connections": h.hub.ClientCount(),
		"users":       len(h.chat.Roster()),
	})
}

// HandleWebSocket upgrades HTTP to WebSocket and attaches the connection
// to the hub
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrader already replied with an HTTP error
		return
	}

	client := ws.NewClient(h.hub, conn)

	// Register before starting the pumps so history is the first thing sent
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
