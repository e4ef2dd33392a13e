package ws

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewClient(t *testing.T) {
	hub := NewHub(nil, WithSendBuffer(32))

	client := NewClient(hub, nil)

	if client == nil {
		t.Fatal("Expected client to be created")
	}
	if _, err := uuid.Parse(client.ID); err != nil {
		t.Errorf("Expected client ID to be a UUID, got %q", client.ID)
	}
	if client.hub != hub {
		t.Error("Expected client.hub to be the same as input hub")
	}
	if cap(client.send) != 32 {
		t.Errorf("Expected send buffer of 32, got %d", cap(client.send))
	}

	other := NewClient(hub, nil)
	if other.ID == client.ID {
		t.Error("Expected distinct connection IDs")
	}
}

func TestClient_TrySend(t *testing.T) {
	hub := NewHub(nil)
	client := newMockClient(hub, 1)

	if !client.trySend([]byte("test message")) {
		t.Fatal("Expected first send to succeed")
	}

	received := <-client.send
	if string(received) != "test message" {
		t.Errorf("Expected 'test message', got %s", string(received))
	}
}

func TestClient_TrySendBufferFull(t *testing.T) {
	hub := NewHub(nil)
	client := newMockClient(hub, 2)

	client.trySend([]byte("msg1"))
	client.trySend([]byte("msg2"))

	// This should not block (buffer full handling)
	if client.trySend([]byte("msg3")) {
		t.Error("Expected third send to report a full buffer")
	}

	<-client.send
	<-client.send

	select {
	case <-client.send:
		t.Error("Expected no more messages (third should be dropped)")
	default:
	}
}
