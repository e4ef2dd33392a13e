package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
)

// MessageStore is the append-only chat log kept for the process lifetime
type MessageStore struct {
	mu  sync.RWMutex
	log *RingBuffer[domain.ChatMessage]
}

// NewMessageStore creates a store. retention caps the number of kept
// messages; zero keeps everything.
func NewMessageStore(retention int) *MessageStore {
	return &MessageStore{
		log: NewRingBuffer[domain.ChatMessage](retention),
	}
}

// Append validates text and stores it as a new message from username
func (s *MessageStore) Append(username, text string) (domain.ChatMessage, error) {
	text, err := ValidateMessage(text)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Username:  username,
		Message:   text,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.log.Add(msg)
	s.mu.Unlock()

	return msg, nil
}

// History returns a copy of the log in append order
func (s *MessageStore) History() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.log.GetAll()
	if history == nil {
		return []domain.ChatMessage{}
	}
	return history
}

// Len returns the number of stored messages
func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log.Len()
}
