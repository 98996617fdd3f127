package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Embeddings
	EmbedProvider  string `env:"EMBED_PROVIDER" envDefault:"openai" validate:"oneof=openai ollama stub"` // "openai", "ollama" (local server), or "stub" (offline/testing)
	OpenAIKey      string `env:"OPENAI_API_KEY"`
	EmbeddingModel string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	EmbeddingDim   int    `env:"EMBEDDING_DIM" envDefault:"384" validate:"min=1"` // output vectors are padded/truncated to this length

	// Ollama
	OllamaURL   string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel string `env:"OLLAMA_MODEL" envDefault:"all-minilm"`
}

var validate = validator.New()

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// Validate checks the loaded configuration for invalid values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
