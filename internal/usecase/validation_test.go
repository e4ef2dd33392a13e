package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{"Valid simple", "bob", "bob", nil},
		{"Valid mixed", "valid_Name1", "valid_Name1", nil},
		{"Exactly 2 chars", "ab", "ab", nil},
		{"Exactly 20 chars", strings.Repeat("x", 20), strings.Repeat("x", 20), nil},
		{"Trimmed", "  alice  ", "alice", nil},
		{"Empty", "", "", domain.ErrUsernameEmpty},
		{"Whitespace only", "   ", "", domain.ErrUsernameEmpty},
		{"One char", "a", "", domain.ErrUsernameLength},
		{"Too long", strings.Repeat("x", 21), "", domain.ErrUsernameLength},
		{"Space inside", "bob smith", "", domain.ErrUsernameInvalid},
		{"Hyphen", "bob-smith", "", domain.ErrUsernameInvalid},
		{"Non-ASCII letter", "jürgen", "", domain.ErrUsernameInvalid},
		{"HTML", "<b>x</b>", "", domain.ErrUsernameInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateUsername(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("ValidateUsername(%q) error = %v, expected %v", tc.input, err, tc.err)
			}
			if got != tc.expected {
				t.Errorf("ValidateUsername(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{"Single char", "x", "x", nil},
		{"Trimmed", "  hi there \n", "hi there", nil},
		{"Exactly 500", strings.Repeat("a", 500), strings.Repeat("a", 500), nil},
		{"500 multibyte chars", strings.Repeat("é", 500), strings.Repeat("é", 500), nil},
		{"Empty", "", "", domain.ErrMessageEmpty},
		{"Whitespace only", " \t\n ", "", domain.ErrMessageEmpty},
		{"Too long", strings.Repeat("a", 501), "", domain.ErrMessageTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateMessage(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("ValidateMessage error = %v, expected %v", err, tc.err)
			}
			if got != tc.expected {
				t.Errorf("ValidateMessage = %q, expected %q", got, tc.expected)
			}
		})
	}
}
