package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
)

// usernameRegex matches names made of ASCII letters, digits and underscores
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUsername trims raw and checks it against the display name rules.
// It returns the trimmed name on success.
func ValidateUsername(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domain.ErrUsernameEmpty
	}

	n := utf8.RuneCountInString(name)
	if n < domain.MinUsernameLength || n > domain.MaxUsernameLength {
		return "", domain.ErrUsernameLength
	}

	if !usernameRegex.MatchString(name) {
		return "", domain.ErrUsernameInvalid
	}
	return name, nil
}

// ValidateMessage trims raw and checks the chat text bounds.
// It returns the trimmed text on success.
func ValidateMessage(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if utf8.RuneCountInString(text) < domain.MinMessageLength {
		return "", domain.ErrMessageEmpty
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return "", domain.ErrMessageTooLong
	}
	return text, nil
}
