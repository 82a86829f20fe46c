package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/jesslynnloo/LLM-Chat/internal/domain"
)

func TestHealth(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t, &fakeLLM{failAfter: -1})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Health(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestCreateSession(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t, &fakeLLM{failAfter: -1})

	body, _ := json.Marshal(domain.CreateSessionRequest{Title: "my chat"})
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateSession(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var session domain.Session
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, "my chat", session.Title)
	assert.False(t, session.CreatedAt.IsZero())
}

func TestListSessions(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t, &fakeLLM{failAfter: -1})

	_, err := svc.CreateSession(context.Background(), "only one")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListSessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sessions []domain.Session `json:"sessions"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Sessions, 1)
	assert.Equal(t, "only one", resp.Sessions[0].Title)
}

func TestListSessionsEmpty(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t, &fakeLLM{failAfter: -1})

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListSessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sessions":[]}`, rec.Body.String())
}

func TestDeleteSession(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t, &fakeLLM{failAfter: -1})

	session, err := svc.CreateSession(context.Background(), "")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+session.SessionID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(session.SessionID)

	assert.NoError(t, h.DeleteSession(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	sessions, err := svc.ListSessions(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestDeleteSessionNotFound(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t, &fakeLLM{failAfter: -1})

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues("missing")

	assert.NoError(t, h.DeleteSession(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenameSession(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t, &fakeLLM{failAfter: -1})

	session, err := svc.CreateSession(context.Background(), "old")
	assert.NoError(t, err)

	body, _ := json.Marshal(domain.RenameSessionRequest{Title: "new"})
	req := httptest.NewRequest(http.MethodPatch, "/v1/sessions/"+session.SessionID, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(session.SessionID)

	assert.NoError(t, h.RenameSession(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	sessions, err := svc.ListSessions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "new", sessions[0].Title)
}

func TestRenameSessionEmptyTitle(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t, &fakeLLM{failAfter: -1})

	session, err := svc.CreateSession(context.Background(), "old")
	assert.NoError(t, err)

	body, _ := json.Marshal(domain.RenameSessionRequest{Title: "   "})
	req := httptest.NewRequest(http.MethodPatch, "/v1/sessions/"+session.SessionID, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(session.SessionID)

	assert.NoError(t, h.RenameSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
