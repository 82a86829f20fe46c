// Package http provides the HTTP server wiring for the chat backend.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jesslynnloo/LLM-Chat/internal/service"
	v1 "github.com/jesslynnloo/LLM-Chat/internal/transport/http/v1"
	"github.com/jesslynnloo/LLM-Chat/internal/transport/ws"
)

// NewServer creates and configures the HTTP server serving the REST API,
// the streaming chat endpoint, and the WebSocket transport.
func NewServer(svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	v1Handler := v1.NewHandler(svc)
	wsServer := ws.NewServer(svc)

	// Register routes
	v1Handler.RegisterRoutes(e)
	wsServer.RegisterRoutes(e)

	return e
}
