package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"textvec/internal/app"
	"textvec/internal/config"
	"textvec/internal/embeddings"
)

func newTestDeps(e embeddings.Embedder, dim int) app.Deps {
	return app.Deps{
		Embedder: e,
		Config: config.Config{
			EmbeddingDim: dim,
		},
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		dim     int
		setup   func(*embeddings.MockEmbedder)
		wantLen int
		wantErr bool
	}{
		{
			name:  "short vector is zero-padded to the target length",
			input: "hello",
			dim:   384,
			setup: func(e *embeddings.MockEmbedder) {
				e.On("Embed", mock.Anything, "hello").
					Return(make(embeddings.Vector, 100), nil).Once()
			},
			wantLen: 384,
		},
		{
			name:  "long vector is truncated to the target length",
			input: "hello",
			dim:   384,
			setup: func(e *embeddings.MockEmbedder) {
				e.On("Embed", mock.Anything, "hello").
					Return(make(embeddings.Vector, 1536), nil).Once()
			},
			wantLen: 384,
		},
		{
			name:  "exact-length vector passes through",
			input: "hello",
			dim:   384,
			setup: func(e *embeddings.MockEmbedder) {
				e.On("Embed", mock.Anything, "hello").
					Return(make(embeddings.Vector, 384), nil).Once()
			},
			wantLen: 384,
		},
		{
			name:  "surrounding whitespace is stripped before embedding",
			input: "  hello world \n",
			dim:   8,
			setup: func(e *embeddings.MockEmbedder) {
				e.On("Embed", mock.Anything, "hello world").
					Return(make(embeddings.Vector, 8), nil).Once()
			},
			wantLen: 8,
		},
		{
			name:  "empty input is still embedded",
			input: "",
			dim:   8,
			setup: func(e *embeddings.MockEmbedder) {
				e.On("Embed", mock.Anything, "").
					Return(make(embeddings.Vector, 8), nil).Once()
			},
			wantLen: 8,
		},
		{
			name:  "embedder failure propagates",
			input: "hello",
			dim:   384,
			setup: func(e *embeddings.MockEmbedder) {
				e.On("Embed", mock.Anything, "hello").
					Return(nil, errors.New("backend unavailable")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEmbedder := new(embeddings.MockEmbedder)
			if tt.setup != nil {
				tt.setup(mockEmbedder)
			}
			deps := newTestDeps(mockEmbedder, tt.dim)

			got, err := run(context.Background(), deps, strings.NewReader(tt.input))

			if (err != nil) != tt.wantErr {
				t.Fatalf("run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("got %d numbers, want %d", len(got), tt.wantLen)
			}
			mockEmbedder.AssertExpectations(t)
		})
	}
}

func TestRunPaddingValues(t *testing.T) {
	mockEmbedder := new(embeddings.MockEmbedder)
	mockEmbedder.On("Embed", mock.Anything, "x").
		Return(embeddings.Vector{1, 2}, nil).Once()
	deps := newTestDeps(mockEmbedder, 4)

	got, err := run(context.Background(), deps, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	expected := embeddings.Vector{1, 2, 0, 0}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("index %d: got %f, want %f", i, got[i], expected[i])
		}
	}
	mockEmbedder.AssertExpectations(t)
}
