package usecase

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
)

// Event is an inbound event tagged with the connection it came from
type Event struct {
	ConnectionID string
	Type         domain.EventType
	Text         string // username for setUsername, chat text for sendMessage
}

// Outcome tells the transport what to deliver for one event.
// Broadcast goes to every connection, Private only to the originator.
type Outcome struct {
	Private   []domain.Event
	Broadcast []domain.Event
}

// IsEmpty reports whether there is nothing to deliver
func (o Outcome) IsEmpty() bool {
	return len(o.Private) == 0 && len(o.Broadcast) == 0
}

// Coordinator maps inbound events to outcomes using the presence registry
// and the message store. It never performs network I/O.
type Coordinator struct {
	// mu makes each event's mutation and roster snapshot one atomic step
	mu sync.Mutex

	presence      *PresenceRegistry
	messages      *MessageStore
	recordNotices bool
}

// CoordinatorOption configures a Coordinator
type CoordinatorOption func(*Coordinator)

// WithSystemNotices controls whether join/leave notices are appended to the
// message log under the System sender
func WithSystemNotices(enabled bool) CoordinatorOption {
	return func(c *Coordinator) {
		c.recordNotices = enabled
	}
}

// NewCoordinator creates a Coordinator over the given stores
func NewCoordinator(presence *PresenceRegistry, messages *MessageStore, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		presence:      presence,
		messages:      messages,
		recordNotices: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle applies ev and returns what must be delivered. It never fails:
// rejected input is reported through a private reply.
func (c *Coordinator) Handle(ev Event) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Type {
	case domain.EventConnect:
		return c.handleConnect(ev)
	case domain.EventSetUsername:
		return c.handleSetUsername(ev)
	case domain.EventSendMessage:
		return c.handleSendMessage(ev)
	case domain.EventGetActiveUsers:
		return private(domain.EventActiveUsersResponse, domain.ActiveUsersResponsePayload{
			Users: c.presence.Roster(),
		})
	case domain.EventDisconnect:
		return c.handleDisconnect(ev)
	default:
		return private(domain.EventError, domain.ErrorPayload{Message: domain.ErrUnknownEvent.Error()})
	}
}

func (c *Coordinator) handleConnect(ev Event) Outcome {
	return Outcome{
		Private: []domain.Event{
			{Type: domain.EventConnected, Payload: domain.ConnectedPayload{ID: ev.ConnectionID}},
			{Type: domain.EventMessageHistory, Payload: c.messages.History()},
		},
	}
}

func (c *Coordinator) handleSetUsername(ev Event) Outcome {
	user, err := c.presence.Register(ev.ConnectionID, ev.Text)
	if err != nil {
		return private(domain.EventUsernameSet, domain.UsernameSetPayload{
			Success: false,
			Message: err.Error(),
		})
	}

	notice := fmt.Sprintf("%s joined the chat", user.Username)
	c.recordNotice(notice)

	return Outcome{
		Broadcast: []domain.Event{
			{Type: domain.EventUserJoined, Payload: domain.PresencePayload{
				Username:  user.Username,
				Message:   notice,
				Timestamp: user.JoinedAt,
			}},
			{Type: domain.EventActiveUsers, Payload: c.presence.Roster()},
		},
		Private: []domain.Event{
			{Type: domain.EventUsernameSet, Payload: domain.UsernameSetPayload{
				Success:  true,
				Username: user.Username,
			}},
		},
	}
}

func (c *Coordinator) handleSendMessage(ev Event) Outcome {
	user, ok := c.presence.Lookup(ev.ConnectionID)
	if !ok {
		return private(domain.EventMessageSent, domain.MessageSentPayload{
			Success: false,
			Message: domain.ErrUsernameRequired.Error(),
		})
	}

	msg, err := c.messages.Append(user.Username, ev.Text)
	if err != nil {
		return private(domain.EventMessageSent, domain.MessageSentPayload{
			Success: false,
			Message: err.Error(),
		})
	}

	return Outcome{
		Broadcast: []domain.Event{{Type: domain.EventNewMessage, Payload: msg}},
		Private:   []domain.Event{{Type: domain.EventMessageSent, Payload: domain.MessageSentPayload{Success: true}}},
	}
}

func (c *Coordinator) handleDisconnect(ev Event) Outcome {
	user, ok := c.presence.Remove(ev.ConnectionID)
	if !ok {
		// Never claimed a name: nobody else knew about it
		return Outcome{}
	}

	notice := fmt.Sprintf("%s left the chat", user.Username)
	c.recordNotice(notice)

	return Outcome{
		Broadcast: []domain.Event{
			{Type: domain.EventUserLeft, Payload: domain.PresencePayload{
				Username:  user.Username,
				Message:   notice,
				Timestamp: time.Now(),
			}},
			{Type: domain.EventActiveUsers, Payload: c.presence.Roster()},
		},
	}
}

func (c *Coordinator) recordNotice(text string) {
	if !c.recordNotices {
		return
	}
	if _, err := c.messages.Append(domain.SystemSender, text); err != nil {
		log.Printf("record system notice: %v", err)
	}
}

// Roster returns the current roster snapshot
func (c *Coordinator) Roster() []string {
	return c.presence.Roster()
}

// History returns the current message log snapshot
func (c *Coordinator) History() []domain.ChatMessage {
	return c.messages.History()
}

func private(t domain.EventType, payload any) Outcome {
	return Outcome{Private: []domain.Event{{Type: t, Payload: payload}}}
}
