package concept

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"
)

// SemanticIndex is an optional side index over concept terms, letting a
// host surface suggest existing concepts related to freshly submitted
// Narsese by embedding similarity rather than exact term matching. The
// reasoner's own inference never consults it — it only ever answers
// questions from its own belief tables — this is strictly an assistive
// lookup for `INF concepts -detailed`-style tooling or a front end's
// autocomplete.
type SemanticIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   *HashEmbedder
}

const semanticCollectionName = "concepts"

// NewSemanticIndex builds an in-memory chromem-go collection backed by the
// deterministic HashEmbedder.
func NewSemanticIndex(dimension int) (*SemanticIndex, error) {
	db := chromem.NewDB()
	embedder := NewHashEmbedder(dimension)

	embedFunc := func(ctx context.Context, text string) ([]float32, error) {
		return embedder.Embed(ctx, text)
	}
	collection, err := db.CreateCollection(semanticCollectionName, nil, embedFunc)
	if err != nil {
		return nil, fmt.Errorf("concept: create semantic collection: %w", err)
	}
	return &SemanticIndex{db: db, collection: collection, embedder: embedder}, nil
}

// Index adds or replaces a concept's entry, keyed by its term's canonical
// printed form.
func (s *SemanticIndex) Index(ctx context.Context, c *Concept) error {
	key := c.Key()
	if err := s.collection.AddDocument(ctx, chromem.Document{
		ID:      key,
		Content: key,
	}); err != nil {
		return fmt.Errorf("concept: index %q: %w", key, err)
	}
	return nil
}

// Related returns up to n concept keys whose embedding is nearest the
// query term's, nearest first.
func (s *SemanticIndex) Related(ctx context.Context, query string, n int) ([]string, error) {
	if n <= 0 {
		n = 5
	}
	if n > s.collection.Count() {
		n = s.collection.Count()
	}
	if n == 0 {
		return nil, nil
	}
	results, err := s.collection.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("concept: query %q: %w", query, err)
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out, nil
}
