// Package service implements the session service and the chat relay.
package service

import (
	"github.com/jesslynnloo/LLM-Chat/internal/adapter/llm"
	"github.com/jesslynnloo/LLM-Chat/internal/config"
	"github.com/jesslynnloo/LLM-Chat/internal/repository"
)

type Service struct {
	store     repository.Store
	llmClient llm.Client
	config    *config.Config
}

func New(store repository.Store, llmClient llm.Client, cfg *config.Config) *Service {
	return &Service{
		store:     store,
		llmClient: llmClient,
		config:    cfg,
	}
}
