package usecase

import (
	"sort"
	"sync"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
)

// PresenceRegistry tracks which connections have claimed a username.
// Usernames are not unique: two connections may hold the same name.
type PresenceRegistry struct {
	mu    sync.RWMutex
	users map[string]domain.ActiveUser // connection ID -> user
}

// NewPresenceRegistry creates an empty registry
func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		users: make(map[string]domain.ActiveUser),
	}
}

// Register validates rawUsername and records it for connectionID,
// replacing any previous record. On error the registry is unchanged.
func (r *PresenceRegistry) Register(connectionID, rawUsername string) (domain.ActiveUser, error) {
	name, err := ValidateUsername(rawUsername)
	if err != nil {
		return domain.ActiveUser{}, err
	}

	user := domain.NewActiveUser(connectionID, name)

	r.mu.Lock()
	r.users[connectionID] = user
	r.mu.Unlock()

	return user, nil
}

// Remove deletes and returns the record for connectionID, if any
func (r *PresenceRegistry) Remove(connectionID string) (domain.ActiveUser, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[connectionID]
	if ok {
		delete(r.users, connectionID)
	}
	return user, ok
}

// Lookup returns the record for connectionID, if any
func (r *PresenceRegistry) Lookup(connectionID string) (domain.ActiveUser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[connectionID]
	return user, ok
}

// Roster returns the usernames of all active users, one entry per
// connection, sorted
func (r *PresenceRegistry) Roster() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.users))
	for _, u := range r.users {
		names = append(names, u.Username)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Count returns the number of active users
func (r *PresenceRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
