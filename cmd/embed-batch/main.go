// Command embed-batch reads a JSON array of strings from stdin and writes
// one JSON array of embedding vectors to stdout, preserving input order.
package main

import (
	"context"
	"encoding/json"
	"errors"
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

	vecs, err := run(context.Background(), deps, os.Stdin)
	if err != nil {
		cliutil.Fail(deps.Log, "batch embedding failed", err)
		os.Exit(1)
	}
	if err := cliutil.WriteJSONLine(os.Stdout, vecs); err != nil {
		cliutil.Fail(deps.Log, "failed to write result", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, deps app.Deps, in io.Reader) ([]embeddings.Vector, error) {
	input, err := cliutil.ReadInput(in)
	if err != nil {
		return nil, err
	}
	texts, err := parseTexts(input)
	if err != nil {
		return nil, err
	}
	// An empty batch is valid and short-circuits to [].
	if len(texts) == 0 {
		return []embeddings.Vector{}, nil
	}

	deps.Log.Debug("embedding batch", "texts", len(texts))
	vecs, err := deps.Embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vecs), len(texts))
	}

	out := make([]embeddings.Vector, len(vecs))
	for i, v := range vecs {
		out[i] = embeddings.Resize(v, deps.Config.EmbeddingDim)
	}
	return out, nil
}

// parseTexts decodes the stdin payload into the batch of texts.
func parseTexts(input string) ([]string, error) {
	if input == "" {
		return nil, errors.New("no input data received")
	}
	// Decode into pointers: a null element would silently become "" in a
	// []string, and "null" itself becomes a nil slice without error.
	var elems []*string
	if err := json.Unmarshal([]byte(input), &elems); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errors.New("input must be a JSON array of strings")
		}
		return nil, fmt.Errorf("invalid JSON input: %w", err)
	}
	if elems == nil {
		return nil, errors.New("input must be a JSON array of strings")
	}
	texts := make([]string, len(elems))
	for i, e := range elems {
		if e == nil {
			return nil, errors.New("input must be a JSON array of strings")
		}
		texts[i] = *e
	}
	return texts, nil
}
