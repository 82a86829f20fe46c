package domain

import "errors"

// Sentinel errors distinguishing client-addressable failures from storage
// faults. Handlers map these with errors.Is; anything unmatched is a 500.
var (
	// ErrSessionNotFound means the referenced session id does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyMessage means the user message was empty after trimming.
	ErrEmptyMessage = errors.New("message content cannot be empty")

	// ErrUpstream wraps failures of the model provider call. When a stream
	// fails after chunks were already emitted, the caller keeps what it saw
	// but no assistant message is persisted.
	ErrUpstream = errors.New("upstream provider error")
)
