package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jesslynnloo/LLM-Chat/internal/domain"
)

// SendMessage appends a user turn and streams the assistant reply as SSE.
// Each chunk is one "data:" frame; the stream ends with "data: [DONE]" on
// success or a terminal error frame if the provider fails mid-stream.
// Failures before the first chunk are plain JSON responses.
// POST /v1/sessions/:session_id/messages
func (h *Handler) SendMessage(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "streaming not supported"})
	}

	started := false
	writeEvent := func(event domain.StreamEvent) error {
		if !started {
			c.Response().Header().Set("Content-Type", "text/event-stream")
			c.Response().Header().Set("Cache-Control", "no-cache")
			c.Response().Header().Set("Connection", "keep-alive")
			c.Response().WriteHeader(http.StatusOK)
			started = true
		}
		data, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Response().Writer, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	_, err := h.service.SendMessage(ctx, sessionID, req.Content, func(delta string) error {
		return writeEvent(domain.StreamEvent{Delta: delta})
	})
	if err != nil {
		if started {
			// Chunks already reached the client; all that is left is a
			// terminal error frame. Storage kept only the user turn.
			log.Printf("ERROR: stream failed mid-flight: %v", err)
			_ = writeEvent(domain.StreamEvent{Error: err.Error()})
			return nil
		}
		switch {
		case errors.Is(err, domain.ErrEmptyMessage):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "content cannot be empty"})
		case errors.Is(err, domain.ErrSessionNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		case errors.Is(err, domain.ErrUpstream):
			log.Printf("ERROR: provider request failed: %v", err)
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		default:
			log.Printf("ERROR: failed to send message: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to send message"})
		}
	}

	if !started {
		// Empty reply stream: still a success, emit headers then terminate.
		c.Response().Header().Set("Content-Type", "text/event-stream")
		c.Response().Header().Set("Cache-Control", "no-cache")
		c.Response().Header().Set("Connection", "keep-alive")
		c.Response().WriteHeader(http.StatusOK)
	}
	fmt.Fprint(c.Response().Writer, "data: [DONE]\n\n")
	flusher.Flush()

	return nil
}

// ListModels returns the provider's model list.
// GET /v1/models
func (h *Handler) ListModels(c echo.Context) error {
	ctx := c.Request().Context()

	models, err := h.service.ListModels(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list models: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to list models"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"object": "list",
		"data":   models,
	})
}
