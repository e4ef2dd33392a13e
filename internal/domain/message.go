package domain

import (
	"encoding/json"
	"time"
)

// EventType names a frame exchanged with clients
type EventType string

// Inbound events (client -> server)
const (
	EventSetUsername    EventType = "setUsername"
	EventSendMessage    EventType = "sendMessage"
	EventGetActiveUsers EventType = "getActiveUsers"

	// Derived from the socket lifecycle, never sent by clients
	EventConnect    EventType = "connect"
	EventDisconnect EventType = "disconnect"
)

// Private replies (server -> originating connection)
const (
	EventConnected           EventType = "connected"
	EventUsernameSet         EventType = "usernameSet"
	EventMessageSent         EventType = "messageSent"
	EventMessageHistory      EventType = "messageHistory"
	EventActiveUsersResponse EventType = "activeUsersResponse"
	EventError               EventType = "error"
)

// Broadcasts (server -> every connection)
const (
	EventUserJoined  EventType = "userJoined"
	EventUserLeft    EventType = "userLeft"
	EventNewMessage  EventType = "newMessage"
	EventActiveUsers EventType = "activeUsers"
)

// ChatMessage is one entry of the message log
type ChatMessage struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Envelope is the wire frame for inbound events
type Envelope struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Event is an outbound frame. Payload is one of the payload types below,
// a ChatMessage, a []ChatMessage or a []string roster.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

// SetUsernamePayload is the payload of setUsername
type SetUsernamePayload struct {
	Username string `json:"username"`
}

// SendMessagePayload is the payload of sendMessage
type SendMessagePayload struct {
	Message string `json:"message"`
}

// ConnectedPayload tells a fresh connection its identifier
type ConnectedPayload struct {
	ID string `json:"id"`
}

// UsernameSetPayload answers setUsername
type UsernameSetPayload struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`
}

// MessageSentPayload answers sendMessage
type MessageSentPayload struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ActiveUsersResponsePayload answers getActiveUsers
type ActiveUsersResponsePayload struct {
	Users []string `json:"users"`
}

// PresencePayload is broadcast on userJoined / userLeft
type PresencePayload struct {
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorPayload carries a free-form error message
type ErrorPayload struct {
	Message string `json:"message"`
}
