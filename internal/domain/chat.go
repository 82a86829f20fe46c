// Package domain defines the core domain models for the chat backend.
package domain

import "time"

// Message roles stored in a session.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	// RoleSystem only ever appears in provider requests, never in storage.
	RoleSystem = "system"
)

// Session represents a conversation thread.
type Session struct {
	SessionID string    `json:"session_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Message represents a single turn in a session.
type Message struct {
	MessageID string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSessionRequest is the body of POST /v1/sessions.
type CreateSessionRequest struct {
	Title string `json:"title,omitempty"`
}

// RenameSessionRequest is the body of PATCH /v1/sessions/:session_id.
type RenameSessionRequest struct {
	Title string `json:"title"`
}

// ChatRequest is the body of POST /v1/sessions/:session_id/messages.
type ChatRequest struct {
	Content string `json:"content"`
}

// StreamEvent is one SSE frame of a streamed reply. Exactly one field is set.
type StreamEvent struct {
	Delta string `json:"delta,omitempty"`
	Error string `json:"error,omitempty"`
}
