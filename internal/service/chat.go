package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jesslynnloo/LLM-Chat/internal/adapter/llm"
	"github.com/jesslynnloo/LLM-Chat/internal/domain"
)

// maxAutoTitleLen bounds titles derived from the first user message.
const maxAutoTitleLen = 60

// SendMessage turns one user turn into a streamed assistant turn.
//
// The user message is persisted before the provider is invoked. Each
// incremental chunk of generated text is passed to onChunk as it arrives.
// The assistant message is persisted exactly once, after the stream ends
// cleanly; on provider failure, cancellation, or an onChunk error, nothing
// is persisted beyond the user turn and the error is returned.
func (s *Service) SendMessage(ctx context.Context, sessionID, userText string, onChunk func(delta string) error) (*domain.Message, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return nil, domain.ErrEmptyMessage
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}

	userMsg := &domain.Message{
		MessageID: uuid.New().String(),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   userText,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}

	// First message of an untitled session names the session.
	if session.Title == "" {
		if err := s.store.UpdateSessionTitle(ctx, sessionID, autoTitle(userText)); err != nil {
			log.Printf("WARN: failed to set session title: %v", err)
		}
	}

	history, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	req := s.buildCompletionRequest(history)

	var reply strings.Builder
	err = s.llmClient.CreateChatCompletionStream(ctx, req, func(chunk *llm.StreamChunk) error {
		delta := chunk.DeltaContent()
		if delta == "" {
			return nil
		}
		if err := onChunk(delta); err != nil {
			return err
		}
		reply.WriteString(delta)
		return nil
	})
	if err != nil {
		// Partial output is discarded: the caller saw whatever chunks
		// reached it, but storage keeps only the user turn.
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	assistantMsg := &domain.Message{
		MessageID: uuid.New().String(),
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   reply.String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to persist assistant message: %w", err)
	}

	return assistantMsg, nil
}

// buildCompletionRequest turns the stored history into a provider request:
// system prompt first, then every turn in chronological order.
func (s *Service) buildCompletionRequest(history []domain.Message) *llm.ChatCompletionRequest {
	messages := make([]llm.ChatMessage, 0, len(history)+1)
	messages = append(messages, llm.ChatMessage{
		Role:    domain.RoleSystem,
		Content: s.config.SystemPrompt,
	})
	for _, m := range history {
		messages = append(messages, llm.ChatMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	return &llm.ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	}
}

// ListModels retrieves the list of available models from the provider.
func (s *Service) ListModels(ctx context.Context) ([]llm.Model, error) {
	models, err := s.llmClient.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return models, nil
}

func autoTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= maxAutoTitleLen {
		return text
	}
	return string(runes[:maxAutoTitleLen])
}
