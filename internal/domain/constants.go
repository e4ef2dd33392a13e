package domain

// ==== Validation Constants ====

const (
	// MinUsernameLength is the shortest accepted display name
	MinUsernameLength = 2

	// MaxUsernameLength is the longest accepted display name
	MaxUsernameLength = 20

	// MinMessageLength is the shortest accepted chat text after trimming
	MinMessageLength = 1

	// MaxMessageLength is the longest accepted chat text, counted in characters
	MaxMessageLength = 500
)

// SystemSender is the username attached to join/leave notices in the message log
const SystemSender = "System"

// ==== WebSocket Constants ====

const (
	// MinFrameSize fits a MaxMessageLength message whose every character is
	// sent as an escaped surrogate pair (12 bytes), plus the envelope
	MinFrameSize = MaxMessageLength*12 + 512

	// MaxFrameSize is the default maximum inbound WebSocket frame size in bytes
	MaxFrameSize = 8192
)
