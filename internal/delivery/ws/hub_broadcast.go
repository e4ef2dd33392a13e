package ws

import (
	"encoding/json"
	"log"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
	"github.com/mmuslimabdulj/lobby-chat/internal/usecase"
)

// deliver sends the broadcast frames of out to every client, in order, and
// then the private frames to origin. It returns the clients whose send
// queue was full.
// NOTE: Must only be called from the Run goroutine
func (h *Hub) deliver(origin *Client, out usecase.Outcome) []*Client {
	if out.IsEmpty() {
		return nil
	}

	var slow []*Client

	for _, ev := range out.Broadcast {
		data, ok := encodeEvent(ev)
		if !ok {
			continue
		}

		h.mu.RLock()
		for _, client := range h.clients {
			if !client.trySend(data) {
				slow = append(slow, client)
			}
		}
		h.mu.RUnlock()
	}

	if origin == nil || !h.has(origin.ID) {
		return slow
	}

	for _, ev := range out.Private {
		data, ok := encodeEvent(ev)
		if !ok {
			continue
		}
		if !origin.trySend(data) {
			slow = append(slow, origin)
			break
		}
	}

	return slow
}

func encodeEvent(ev domain.Event) ([]byte, bool) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("encode %s event: %v", ev.Type, err)
		return nil, false
	}
	return data, true
}
