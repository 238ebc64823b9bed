package dctx

import (
	"testing"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTask(name string, serial int64) *evidence.Task {
	w := term.NewWord(name)
	s := evidence.NewJudgement(w, truth.New(1, 0.9, false), evidence.NewStamp(serial, 0), true)
	return evidence.New(s, budget.New(0.9, 0.9, 0.9), 0, serial, nil, nil)
}

func TestDoublePremiseTaskRequiresBelief(t *testing.T) {
	task := buildTask("A", 1)
	ctx := New(task, nil, nil, 0, 8, numeric.NewUF(0.01))
	tv := truth.New(1, 0.8, false)
	ok := ctx.DoublePremiseTask(term.NewWord("B"), &tv, budget.New(0.9, 0.9, 0.9))
	assert.False(t, ok)
	assert.Empty(t, ctx.NewTasks)
}

func TestDoublePremiseTaskSucceedsWithBelief(t *testing.T) {
	task := buildTask("A", 1)
	beliefSentence := evidence.NewJudgement(term.NewWord("B"), truth.New(1, 0.9, false), evidence.NewStamp(2, 0), true)
	ctx := New(task, &beliefSentence, nil, 5, 8, numeric.NewUF(0.01))
	tv := truth.New(1, 0.8, false)
	ok := ctx.DoublePremiseTask(term.NewWord("C"), &tv, budget.New(0.9, 0.9, 0.9))
	require.True(t, ok)
	require.Len(t, ctx.NewTasks, 1)
	assert.Same(t, task, ctx.NewTasks[0].Parent)
}

func TestDerivedTaskDropsBelowThreshold(t *testing.T) {
	task := buildTask("A", 1)
	ctx := New(task, nil, nil, 0, 8, numeric.NewUF(0.5))
	weak := evidence.New(evidence.NewJudgement(term.NewWord("Z"), truth.New(1, 0.9, false), evidence.NewStamp(3, 0), true), budget.New(0.01, 0.01, 0.01), 0, 3, task, nil)

	kept := ctx.DerivedTask(weak)
	assert.False(t, kept)
	assert.Empty(t, ctx.NewTasks)
	assert.Len(t, ctx.Dropped, 1)
}

func TestSinglePremiseTaskStructuralAbortsOnParentRepeat(t *testing.T) {
	parent := buildTask("A", 1)
	child := evidence.New(evidence.NewJudgement(term.NewWord("A"), truth.New(1, 0.9, false), evidence.NewStamp(2, 0), true), budget.New(0.9, 0.9, 0.9), 0, 2, parent, nil)

	ctx := New(child, nil, nil, 0, 8, numeric.NewUF(0.01))
	tv := truth.New(1, 0.9, false)
	ok := ctx.SinglePremiseTaskStructural(term.NewWord("A"), &tv, budget.New(0.9, 0.9, 0.9))
	assert.False(t, ok)
}
