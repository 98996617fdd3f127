package embeddings

import (
	"context"
	"hash/fnv"
	"math/rand"
)

// StubEmbedder produces deterministic pseudo-random vectors seeded by the
// input text. Useful offline and in tests: the same text always maps to the
// same vector, and distinct texts almost surely differ.
type StubEmbedder struct {
	dim int
}

// NewStubEmbedder creates a stub embedder emitting vectors of dim elements.
func NewStubEmbedder(dim int) *StubEmbedder {
	if dim <= 0 {
		dim = 384
	}
	return &StubEmbedder{dim: dim}
}

func (e *StubEmbedder) Embed(_ context.Context, text string) (Vector, error) {
	h := fnv.New64a()
	h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	vec := make(Vector, e.dim)
	for i := range vec {
		vec[i] = rng.Float32()*2 - 1
	}
	return vec, nil
}

func (e *StubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
	vecs := make([]Vector, len(texts))
	for i, text := range texts {
		v, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vecs[i] = v
	}
	return vecs, nil
}

var _ Embedder = (*StubEmbedder)(nil)
