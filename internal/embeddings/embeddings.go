package embeddings

import (
	"context"
	"math"
)

// Vector is a simple float32 slice wrapper.
type Vector []float32

// Embedder defines the embedding interface.
type Embedder interface {
	// Embed returns the vector for a single text.
	Embed(ctx context.Context, text string) (Vector, error)

	// EmbedBatch returns one vector per input text, preserving input order.
	EmbedBatch(ctx context.Context, texts []string) ([]Vector, error)
}

// Resize normalizes v to exactly dim elements: shorter vectors are
// zero-padded, longer ones truncated. The input is not modified.
func Resize(v Vector, dim int) Vector {
	if dim <= 0 {
		return Vector{}
	}
	out := make(Vector, dim)
	copy(out, v)
	return out
}

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 for empty or mismatched-length vectors.
func CosineSimilarity(a, b Vector) float32 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
