package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"textvec/internal/config"
	"textvec/internal/embeddings"
	"textvec/internal/logger"
)

// Deps bundles common runtime dependencies for the commands.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Embedder embeddings.Embedder
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// A .env file is optional for a CLI; real env vars always apply.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return Deps{}, err
	}
	log := logger.New(cfg.LogLevel).With("run_id", uuid.NewString())

	embedder, err := buildEmbedder(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize embedder: %w", err)
	}
	return Deps{
		Config:   cfg,
		Log:      log,
		Embedder: embedder,
	}, nil
}

func buildEmbedder(cfg config.Config, log *slog.Logger) (embeddings.Embedder, error) {
	switch cfg.EmbedProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when EMBED_PROVIDER=openai")
		}
		embedder, err := embeddings.NewOpenAIEmbedder(cfg.OpenAIKey, openai.EmbeddingModel(cfg.EmbeddingModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI embedder: %w", err)
		}
		log.Debug("using OpenAI embedder", "model", cfg.EmbeddingModel)
		return embedder, nil
	case "ollama":
		embedder, err := embeddings.NewOllamaEmbedder(cfg.OllamaURL, cfg.OllamaModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Ollama embedder: %w", err)
		}
		log.Debug("using Ollama embedder", "url", cfg.OllamaURL, "model", cfg.OllamaModel)
		return embedder, nil
	case "stub":
		log.Debug("using stub embedder", "dim", cfg.EmbeddingDim)
		return embeddings.NewStubEmbedder(cfg.EmbeddingDim), nil
	default:
		return nil, fmt.Errorf("invalid EMBED_PROVIDER: %s (valid options: openai, ollama, stub)", cfg.EmbedProvider)
	}
}
