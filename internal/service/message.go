package service

import (
	"context"
	"fmt"

	"github.com/jesslynnloo/LLM-Chat/internal/domain"
)

// GetMessages returns the ordered history of a session. A session that
// exists but has no messages yields an empty slice; a missing session yields
// ErrSessionNotFound.
func (s *Service) GetMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}

	messages, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
