package v1

import (
	"context"
	"errors"
	"testing"

	"github.com/jesslynnloo/LLM-Chat/internal/adapter/llm"
	"github.com/jesslynnloo/LLM-Chat/internal/config"
	"github.com/jesslynnloo/LLM-Chat/internal/repository"
	"github.com/jesslynnloo/LLM-Chat/internal/service"
)

// fakeLLM yields scripted chunks, optionally failing after failAfter chunks.
type fakeLLM struct {
	chunks    []string
	failAfter int // -1 means never fail
}

var _ llm.Client = (*fakeLLM)(nil)

func (f *fakeLLM) CreateChatCompletionStream(ctx context.Context, req *llm.ChatCompletionRequest, callback llm.StreamCallback) error {
	for i, text := range f.chunks {
		if f.failAfter >= 0 && i == f.failAfter {
			return errors.New("provider went away")
		}
		chunk := &llm.StreamChunk{
			Choices: []llm.Choice{{Delta: &llm.ChatMessage{Role: "assistant", Content: text}}},
		}
		if err := callback(chunk); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeLLM) ListModels(ctx context.Context) ([]llm.Model, error) {
	return []llm.Model{{ID: "fake-model", Object: "model"}}, nil
}

func newTestHandler(t *testing.T, client llm.Client) (*Handler, *service.Service) {
	t.Helper()
	store, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	svc := service.New(store, client, &config.Config{
		Model:        "test-model",
		SystemPrompt: config.DefaultSystemPrompt,
	})
	return NewHandler(svc), svc
}
