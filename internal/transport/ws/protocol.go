// Package ws provides a WebSocket transport for the chat relay.
package ws

// Message types from client to server
const (
	TypeChat = "chat"
)

// Message types from server to client
const (
	TypeDelta = "delta"
	TypeDone  = "done"
	TypeError = "error"
)

// ChatMessage is sent by the client to start a chat turn.
type ChatMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

// DeltaMessage carries one incremental fragment of the reply.
type DeltaMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// DoneMessage marks the end of a successfully streamed reply.
type DoneMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
}

// ErrorMessage is sent when a chat turn fails.
type ErrorMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// Error codes
const (
	ErrorCodeInvalidMessage  = "invalid_message"
	ErrorCodeSessionNotFound = "session_not_found"
	ErrorCodeEmptyMessage    = "empty_message"
	ErrorCodeUpstream        = "upstream_error"
	ErrorCodeInternal        = "internal_error"
)
