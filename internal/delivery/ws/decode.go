package ws

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
	"github.com/mmuslimabdulj/lobby-chat/internal/usecase"
)

var errLifecycleEvent = errors.New("lifecycle event sent by client")

// decodeFrame parses an inbound envelope into a coordinator event.
// Lifecycle events (connect/disconnect) cannot be sent by clients. Other
// unrecognised types pass through so the coordinator can answer them.
func decodeFrame(connectionID string, raw []byte) (usecase.Event, error) {
	var env domain.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return usecase.Event{}, fmt.Errorf("decode envelope: %w", err)
	}

	ev := usecase.Event{ConnectionID: connectionID, Type: env.Type}

	switch env.Type {
	case domain.EventSetUsername:
		var p domain.SetUsernamePayload
		if err := decodePayload(env.Payload, &p); err != nil {
			return usecase.Event{}, err
		}
		ev.Text = p.Username

	case domain.EventSendMessage:
		var p domain.SendMessagePayload
		if err := decodePayload(env.Payload, &p); err != nil {
			return usecase.Event{}, err
		}
		ev.Text = p.Message

	case domain.EventConnect, domain.EventDisconnect:
		return usecase.Event{}, fmt.Errorf("%w: %q", errLifecycleEvent, env.Type)
	}

	return ev, nil
}

// decodePayload fills v from raw. A missing payload leaves v zero so the
// coordinator answers with a validation error.
func decodePayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
