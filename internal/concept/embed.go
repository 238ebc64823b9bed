package concept

import (
	"context"
	"math"
	"math/rand"
)

// HashEmbedder is a deterministic, dependency-free stand-in for a real
// embedding model: it hashes a term's printed key into a seed and draws a
// reproducible unit vector from it, so the same term always embeds to the
// same point without calling out to any external service.
type HashEmbedder struct {
	dimension int
}

// NewHashEmbedder builds an embedder producing vectors of the given
// dimension.
func NewHashEmbedder(dimension int) *HashEmbedder {
	if dimension <= 0 {
		dimension = 64
	}
	return &HashEmbedder{dimension: dimension}
}

// Embed turns text into a unit-length vector seeded by its content.
func (e *HashEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var seed int64
	for _, r := range text {
		seed = seed*31 + int64(r)
	}
	rng := rand.New(rand.NewSource(seed))

	vec := make([]float32, e.dimension)
	var sumSquares float64
	for i := range vec {
		vec[i] = float32(rng.NormFloat64())
		sumSquares += float64(vec[i]) * float64(vec[i])
	}
	if sumSquares > 0 {
		magnitude := float32(math.Sqrt(sumSquares))
		for i := range vec {
			vec[i] /= magnitude
		}
	}
	return vec, nil
}

// Dimension reports the embedder's vector width.
func (e *HashEmbedder) Dimension() int { return e.dimension }
