package concept

import (
	"context"
	"testing"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbedderIsDeterministicAndUnitLength(t *testing.T) {
	e := NewHashEmbedder(32)
	v1, err := e.Embed(context.Background(), "<bird --> animal>")
	require.NoError(t, err)
	v2, err := e.Embed(context.Background(), "<bird --> animal>")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	var sumSquares float64
	for _, x := range v1 {
		sumSquares += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, sumSquares, 1e-4)
}

func TestHashEmbedderDiffersByContent(t *testing.T) {
	e := NewHashEmbedder(32)
	v1, _ := e.Embed(context.Background(), "<bird --> animal>")
	v2, _ := e.Embed(context.Background(), "<fish --> animal>")
	assert.NotEqual(t, v1, v2)
}

func TestSemanticIndexRelated(t *testing.T) {
	idx, err := NewSemanticIndex(16)
	require.NoError(t, err)

	bird, _ := term.MakeInheritance(term.NewWord("bird"), term.NewWord("animal"))
	fish, _ := term.MakeInheritance(term.NewWord("fish"), term.NewWord("animal"))
	b := budget.New(0.8, 0.9, 0.8)

	require.NoError(t, idx.Index(context.Background(), New(bird, b)))
	require.NoError(t, idx.Index(context.Background(), New(fish, b)))

	related, err := idx.Related(context.Background(), bird.Key(), 2)
	require.NoError(t, err)
	assert.Contains(t, related, bird.Key())
}
