package lineage

import (
	"testing"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T, depth int) *evidence.Task {
	t.Helper()
	tv := truth.New(1.0, 0.9, false)
	var parent *evidence.Task
	for i := 0; i < depth; i++ {
		word := term.NewWord(string(rune('A' + i)))
		s := evidence.NewJudgement(word, tv, evidence.NewStamp(int64(i+1), int64(i)), true)
		task := evidence.New(s, budget.New(0.5, 0.5, 0.5), int64(i), int64(i+1), parent, nil)
		parent = task
	}
	return parent
}

func TestBuildAndAncestorsOrderedNearestFirst(t *testing.T) {
	leaf := buildChain(t, 4)
	v, err := Build(leaf)
	require.NoError(t, err)

	ancestors, err := v.Ancestors()
	require.NoError(t, err)
	require.Len(t, ancestors, 3)
	assert.Equal(t, leaf.Parent.Sentence.String(), ancestors[0])
	assert.Equal(t, leaf.Parent.Parent.Parent.Sentence.String(), ancestors[2])
}

func TestAcyclicAlwaysTrueForBuiltView(t *testing.T) {
	leaf := buildChain(t, 10)
	v, err := Build(leaf)
	require.NoError(t, err)

	ok, err := v.Acyclic()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDepthMatchesParentCount(t *testing.T) {
	leaf := buildChain(t, 5)
	v, err := Build(leaf)
	require.NoError(t, err)

	depth, err := v.Depth()
	require.NoError(t, err)
	assert.Equal(t, 4, depth)
}

func TestInputTaskHasNoAncestors(t *testing.T) {
	leaf := buildChain(t, 1)
	v, err := Build(leaf)
	require.NoError(t, err)

	ancestors, err := v.Ancestors()
	require.NoError(t, err)
	assert.Empty(t, ancestors)
}
