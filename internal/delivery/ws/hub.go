package ws

import (
	"context"
	"log"
	"sync"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
	"github.com/mmuslimabdulj/lobby-chat/internal/usecase"
)

// EventHandler turns an inbound event into the frames to deliver
type EventHandler interface {
	Handle(ev usecase.Event) usecase.Outcome
}

type inboundEvent struct {
	client *Client
	event  usecase.Event
}

// Hub maintains the set of active clients and relays coordinator outcomes.
// All events are handled one at a time by Run, so every client sees the
// broadcasts of one event in the same relative order.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundEvent
	done       chan struct{}

	handler      EventHandler
	maxFrameSize int64
	sendBuffer   int
	debug        bool
}

// HubOption configures a Hub
type HubOption func(*Hub)

// WithMaxFrameSize sets the largest inbound frame a client may send
func WithMaxFrameSize(n int64) HubOption {
	return func(h *Hub) {
		h.maxFrameSize = n
	}
}

// WithSendBuffer sets the per-client outbound queue length
func WithSendBuffer(n int) HubOption {
	return func(h *Hub) {
		h.sendBuffer = n
	}
}

// WithDebug enables per-frame diagnostics
func WithDebug(enabled bool) HubOption {
	return func(h *Hub) {
		h.debug = enabled
	}
}

// NewHub creates a new Hub dispatching to handler
func NewHub(handler EventHandler, opts ...HubOption) *Hub {
	h := &Hub{
		clients:      make(map[string]*Client),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		inbound:      make(chan inboundEvent, 256),
		done:         make(chan struct{}),
		handler:      handler,
		maxFrameSize: domain.MaxFrameSize,
		sendBuffer:   256,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run starts the hub's main event loop. It returns when ctx is cancelled,
// closing every client's send queue.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

			log.Printf("Client connected: %s", client.ID)
			h.process(client, usecase.Event{ConnectionID: client.ID, Type: domain.EventConnect})

		case client := <-h.unregister:
			// Check if client exists - prevent double disconnect
			if !h.detach(client) {
				continue
			}
			log.Printf("Client disconnected: %s", client.ID)
			h.process(nil, disconnectEvent(client))

		case in := <-h.inbound:
			if !h.has(in.client.ID) {
				continue // Already gone, drop late frames
			}
			h.process(in.client, in.event)
		}
	}
}

// process handles ev for origin, then evicts any client that could not keep
// up with the resulting frames. Each eviction is a disconnect of its own.
func (h *Hub) process(origin *Client, ev usecase.Event) {
	slow := h.deliver(origin, h.handler.Handle(ev))

	for len(slow) > 0 {
		client := slow[0]
		slow = slow[1:]

		if !h.detach(client) {
			continue
		}
		log.Printf("Client evicted (send buffer full): %s", client.ID)
		slow = append(slow, h.deliver(nil, h.handler.Handle(disconnectEvent(client)))...)
	}
}

// detach removes client and closes its send queue. It reports false if the
// client was not registered.
func (h *Hub) detach(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return false
	}
	delete(h.clients, client.ID)
	close(client.send)
	return true
}

func (h *Hub) has(id string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[id]
	return ok
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		close(client.send)
		delete(h.clients, id)
	}
}

func (h *Hub) debugf(format string, args ...any) {
	if h.debug {
		log.Printf(format, args...)
	}
}

func disconnectEvent(client *Client) usecase.Event {
	return usecase.Event{ConnectionID: client.ID, Type: domain.EventDisconnect}
}
