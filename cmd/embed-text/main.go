// Command embed-text reads one raw text from stdin and writes its embedding
// to stdout as a JSON array of exactly EMBEDDING_DIM numbers, zero-padding
// or truncating the model's vector as needed.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"textvec/internal/app"
	"textvec/internal/cliutil"
	"textvec/internal/embeddings"
)

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	vec, err := run(context.Background(), deps, os.Stdin)
	if err != nil {
		cliutil.Fail(deps.Log, "embedding failed", err)
		os.Exit(1)
	}
	if err := cliutil.WriteJSONLine(os.Stdout, vec); err != nil {
		cliutil.Fail(deps.Log, "failed to write result", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, deps app.Deps, in io.Reader) (embeddings.Vector, error) {
	text, err := cliutil.ReadInput(in)
	if err != nil {
		return nil, err
	}
	// The empty string is still a valid input: the model defines its vector.
	vec, err := deps.Embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	return embeddings.Resize(vec, deps.Config.EmbeddingDim), nil
}
