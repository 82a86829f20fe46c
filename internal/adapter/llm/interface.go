// Package llm provides an abstraction for the model provider API.
package llm

import "context"

// Client defines the interface for model provider operations.
type Client interface {
	// CreateChatCompletionStream sends a streaming chat completion request.
	// The callback is called for each chunk received, in arrival order.
	CreateChatCompletionStream(ctx context.Context, req *ChatCompletionRequest, callback StreamCallback) error

	// ListModels retrieves the list of available models.
	ListModels(ctx context.Context) ([]Model, error)
}

// Ensure HTTPClient implements Client interface.
var _ Client = (*HTTPClient)(nil)
