package http

import (
	"net/http"

	"github.com/mmuslimabdulj/lobby-chat/internal/middleware"
)

// NewRouter wires the routes. WebSocket upgrades are throttled per IP.
func NewRouter(h *Handler, wsLimiter *middleware.IPRateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleStatus)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET /api/users", h.HandleUsers)
	mux.HandleFunc("GET /api/history", h.HandleHistory)
	mux.HandleFunc("GET /ws", middleware.RateLimitFunc(wsLimiter, h.HandleWebSocket))

	return middleware.SecurityHeaders(mux)
}
