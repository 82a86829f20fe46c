package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvChatMode is the environment variable name for mode selection.
	EnvChatMode = "CHAT_MODE"
	// ModeMock indicates the mock provider should be used.
	ModeMock = "MOCK"
)

// NewClient creates a provider client based on the CHAT_MODE environment
// variable. If CHAT_MODE=MOCK, returns a MockClient; otherwise returns a
// real HTTPClient.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	mode := os.Getenv(EnvChatMode)

	if mode == ModeMock {
		log.Println("CHAT_MODE=MOCK detected, using mock provider client")
		return NewMockClient()
	}

	return NewHTTPClient(baseURL, apiKey, timeout)
}
