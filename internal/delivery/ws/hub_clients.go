package ws

import "github.com/mmuslimabdulj/lobby-chat/internal/usecase"

// Register adds a client to the hub. The client receives its connection
// ID and the message history before any of its own frames are handled.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Dispatch queues an inbound event from c
func (h *Hub) Dispatch(c *Client, ev usecase.Event) {
	select {
	case h.inbound <- inboundEvent{client: c, event: ev}:
	case <-h.done:
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
