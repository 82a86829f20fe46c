package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jesslynnloo/LLM-Chat/internal/domain"
)

// CreateSession creates a new session.
// POST /v1/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	session, err := h.service.CreateSession(ctx, req.Title)
	if err != nil {
		log.Printf("ERROR: failed to create session: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create session"})
	}

	return c.JSON(http.StatusCreated, session)
}

// ListSessions returns all sessions, most recent first.
// GET /v1/sessions
func (h *Handler) ListSessions(c echo.Context) error {
	ctx := c.Request().Context()

	sessions, err := h.service.ListSessions(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list sessions: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list sessions"})
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": sessions,
	})
}

// RenameSession sets the display title of a session.
// PATCH /v1/sessions/:session_id
func (h *Handler) RenameSession(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var req domain.RenameSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	err := h.service.RenameSession(ctx, sessionID, req.Title)
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title cannot be empty"})
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	case err != nil:
		log.Printf("ERROR: failed to rename session: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to rename session"})
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteSession removes a session and all of its messages.
// DELETE /v1/sessions/:session_id
func (h *Handler) DeleteSession(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	err := h.service.DeleteSession(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	case err != nil:
		log.Printf("ERROR: failed to delete session: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete session"})
	}

	return c.NoContent(http.StatusNoContent)
}
