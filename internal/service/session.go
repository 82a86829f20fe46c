package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jesslynnloo/LLM-Chat/internal/domain"
)

// CreateSession allocates a new session id and persists the record.
func (s *Service) CreateSession(ctx context.Context, title string) (*domain.Session, error) {
	session := &domain.Session{
		SessionID: uuid.New().String(),
		Title:     strings.TrimSpace(title),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ListSessions returns all sessions, most recent first.
func (s *Service) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a session and all of its messages.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	return s.store.DeleteSession(ctx, sessionID)
}

// RenameSession sets the display title of a session.
func (s *Service) RenameSession(ctx context.Context, sessionID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.ErrEmptyMessage
	}
	return s.store.UpdateSessionTitle(ctx, sessionID, title)
}
