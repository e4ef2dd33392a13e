package ws

import (
	"errors"
	"testing"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		eventType domain.EventType
		text      string
		wantErr   bool
	}{
		{"Set username", `{"type":"setUsername","payload":{"username":"bob"}}`, domain.EventSetUsername, "bob", false},
		{"Send message", `{"type":"sendMessage","payload":{"message":"hi there"}}`, domain.EventSendMessage, "hi there", false},
		{"Get active users", `{"type":"getActiveUsers"}`, domain.EventGetActiveUsers, "", false},
		{"Missing payload", `{"type":"sendMessage"}`, domain.EventSendMessage, "", false},
		{"Null payload", `{"type":"setUsername","payload":null}`, domain.EventSetUsername, "", false},
		{"Not JSON", `hello`, "", "", true},
		{"Wrong payload shape", `{"type":"setUsername","payload":{"username":42}}`, "", "", true},
		{"Unknown type passes through", `{"type":"teleport","payload":{"x":1}}`, "teleport", "", false},
		{"Client cannot fake disconnect", `{"type":"disconnect"}`, "", "", true},
		{"Client cannot fake connect", `{"type":"connect"}`, "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := decodeFrame("conn-1", []byte(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %+v", ev)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ev.ConnectionID != "conn-1" || ev.Type != tc.eventType || ev.Text != tc.text {
				t.Errorf("Unexpected event: %+v", ev)
			}
		})
	}
}

func TestDecodeFrame_LifecycleIsTyped(t *testing.T) {
	_, err := decodeFrame("conn-1", []byte(`{"type":"disconnect"}`))
	if !errors.Is(err, errLifecycleEvent) {
		t.Errorf("Expected errLifecycleEvent, got %v", err)
	}
}
