package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/jesslynnloo/LLM-Chat/internal/domain"
	"github.com/jesslynnloo/LLM-Chat/internal/service"
)

// Server handles WebSocket chat connections.
type Server struct {
	service  *service.Service
	upgrader websocket.Upgrader
}

// NewServer creates a new WebSocket server.
func NewServer(svc *service.Service) *Server {
	return &Server{
		service: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The REST surface is CORS-open; keep the socket consistent.
				return true
			},
		},
	}
}

// RegisterRoutes registers the WebSocket route with the echo server.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/v1/chat/ws", s.HandleWebSocket)
}

// HandleWebSocket upgrades the connection and serves chat turns until the
// client disconnects. Turns are processed one at a time per connection, so
// all writes happen from this goroutine.
func (s *Server) HandleWebSocket(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("ERROR: failed to upgrade WebSocket: %v", err)
		return err
	}
	defer conn.Close()

	ctx := c.Request().Context()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WARN: WebSocket read error: %v", err)
			}
			return nil
		}

		var msg ChatMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != TypeChat {
			s.writeError(conn, "", ErrorCodeInvalidMessage, "expected a chat message")
			continue
		}

		s.handleChat(ctx, conn, &msg)
	}
}

// handleChat runs one relay turn, forwarding deltas as they arrive.
func (s *Server) handleChat(ctx context.Context, conn *websocket.Conn, msg *ChatMessage) {
	assistantMsg, err := s.service.SendMessage(ctx, msg.SessionID, msg.Content, func(delta string) error {
		return conn.WriteJSON(DeltaMessage{
			Type:      TypeDelta,
			SessionID: msg.SessionID,
			Text:      delta,
		})
	})
	if err != nil {
		code := ErrorCodeInternal
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			code = ErrorCodeSessionNotFound
		case errors.Is(err, domain.ErrEmptyMessage):
			code = ErrorCodeEmptyMessage
		case errors.Is(err, domain.ErrUpstream):
			code = ErrorCodeUpstream
		}
		log.Printf("ERROR: chat turn failed: %v", err)
		s.writeError(conn, msg.SessionID, code, err.Error())
		return
	}

	if err := conn.WriteJSON(DoneMessage{
		Type:      TypeDone,
		SessionID: msg.SessionID,
		MessageID: assistantMsg.MessageID,
	}); err != nil {
		log.Printf("WARN: failed to write done message: %v", err)
	}
}

func (s *Server) writeError(conn *websocket.Conn, sessionID, code, message string) {
	if err := conn.WriteJSON(ErrorMessage{
		Type:      TypeError,
		SessionID: sessionID,
		Code:      code,
		Message:   message,
	}); err != nil {
		log.Printf("WARN: failed to write error message: %v", err)
	}
}
