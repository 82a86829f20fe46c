// Package config provides configuration for the chat backend.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultSystemPrompt is prepended to every completion request.
const DefaultSystemPrompt = "You are a helpful assistant that answers questions from the user."

// Config holds the backend configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Model provider
	OpenAIBaseURL string
	OpenAIAPIKey  string
	Model         string
	LLMTimeout    time.Duration
	SystemPrompt  string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnvInt("HTTP_PORT", 8000),
		DatabaseURL:   getEnv("DATABASE_URL", "file:chat.db?cache=shared&mode=rwc"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		Model:         getEnv("OPENAI_MODEL", "gpt-5-nano"),
		LLMTimeout:    time.Duration(getEnvInt("LLM_TIMEOUT_MS", 120000)) * time.Millisecond,
		SystemPrompt:  getEnv("SYSTEM_PROMPT", DefaultSystemPrompt),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
