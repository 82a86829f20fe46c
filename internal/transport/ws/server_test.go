package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/jesslynnloo/LLM-Chat/internal/adapter/llm"
	"github.com/jesslynnloo/LLM-Chat/internal/config"
	"github.com/jesslynnloo/LLM-Chat/internal/repository"
	"github.com/jesslynnloo/LLM-Chat/internal/service"
)

func newTestServer(t *testing.T) (*httptest.Server, *service.Service) {
	t.Helper()
	store, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	svc := service.New(store, llm.NewMockClient(), &config.Config{
		Model:        "mock",
		SystemPrompt: config.DefaultSystemPrompt,
	})

	e := echo.New()
	e.HideBanner = true
	NewServer(svc).RegisterRoutes(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server, svc
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func TestWebSocketChatRoundtrip(t *testing.T) {
	server, svc := newTestServer(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "ws chat")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	conn := dial(t, server)
	if err := conn.WriteJSON(ChatMessage{Type: TypeChat, SessionID: session.SessionID, Content: "hi"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var streamed strings.Builder
	var doneID string
	for doneID == "" {
		var msg struct {
			Type      string `json:"type"`
			Text      string `json:"text"`
			MessageID string `json:"message_id"`
			Code      string `json:"code"`
			Message   string `json:"message"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read failed: %v", err)
		}
		switch msg.Type {
		case TypeDelta:
			streamed.WriteString(msg.Text)
		case TypeDone:
			doneID = msg.MessageID
		case TypeError:
			t.Fatalf("unexpected error frame: %s %s", msg.Code, msg.Message)
		}
	}

	messages, err := svc.GetMessages(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[1].MessageID != doneID {
		t.Fatalf("done frame id %q does not match stored assistant message %q", doneID, messages[1].MessageID)
	}
	if messages[1].Content != streamed.String() {
		t.Fatalf("streamed %q but stored %q", streamed.String(), messages[1].Content)
	}
}

func TestWebSocketChatSessionNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	conn := dial(t, server)
	if err := conn.WriteJSON(ChatMessage{Type: TypeChat, SessionID: "missing", Content: "hi"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var msg ErrorMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if msg.Type != TypeError || msg.Code != ErrorCodeSessionNotFound {
		t.Fatalf("unexpected frame: %+v", msg)
	}
}

func TestWebSocketInvalidMessage(t *testing.T) {
	server, _ := newTestServer(t)

	conn := dial(t, server)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"bogus"}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var msg ErrorMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if msg.Type != TypeError || msg.Code != ErrorCodeInvalidMessage {
		t.Fatalf("unexpected frame: %+v", msg)
	}
}
