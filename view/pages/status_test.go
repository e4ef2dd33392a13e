package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mmuslimabdulj/lobby-chat/internal/domain"
)

func TestStatus_Render(t *testing.T) {
	view := StatusView{
		Connections: 3,
		Users:       []string{"alice", "bob"},
		History: []domain.ChatMessage{
			{ID: "1", Username: domain.SystemSender, Message: "alice joined the chat", Timestamp: time.Now()},
			{ID: "2", Username: "alice", Message: "<script>alert(1)</script>", Timestamp: time.Now()},
		},
	}

	var buf bytes.Buffer
	if err := Status(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"3 connected, 2 named",
		"<li>alice</li>",
		"<li>bob</li>",
		`<li class="sys">alice joined the chat`,
		"<b>alice</b>: ",
		`<time datetime="`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}

	if strings.Contains(html, "<script>") {
		t.Error("Expected message text to be HTML-escaped")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, context.Canceled
}

func TestStatus_RenderPropagatesWriteError(t *testing.T) {
	err := Status(StatusView{}).Render(context.Background(), failingWriter{})
	if err == nil {
		t.Error("Expected write error to be returned")
	}
}
