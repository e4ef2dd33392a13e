package domain

import "errors"

// Validation errors. The text is sent verbatim to the client.
var (
	ErrUsernameEmpty   = errors.New("username cannot be empty")
	ErrUsernameLength  = errors.New("username must be between 2 and 20 characters")
	ErrUsernameInvalid = errors.New("username may only contain letters, digits and underscores")
	ErrMessageEmpty    = errors.New("message cannot be empty")
	ErrMessageTooLong  = errors.New("message must be at most 500 characters")
)

// ErrUsernameRequired is returned when an anonymous connection tries to chat
var ErrUsernameRequired = errors.New("set a username first")

// ErrUnknownEvent is returned for inbound events the coordinator does not handle
var ErrUnknownEvent = errors.New("unknown event")
