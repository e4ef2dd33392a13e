package domain

import "time"

// ActiveUser is a connection that has claimed a display name
type ActiveUser struct {
	ConnectionID string    `json:"connection_id"`
	Username     string    `json:"username"`
	JoinedAt     time.Time `json:"joined_at"`
}

// NewActiveUser creates an ActiveUser joined now
func NewActiveUser(connectionID, username string) ActiveUser {
	return ActiveUser{
		ConnectionID: connectionID,
		Username:     username,
		JoinedAt:     time.Now(),
	}
}
