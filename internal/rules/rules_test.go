package rules

import (
	"testing"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/dctx"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func judgementTask(content term.Term, f, c float64, serial int64) *evidence.Task {
	s := evidence.NewJudgement(content, truth.New(f, c, false), evidence.NewStamp(serial, 0), true)
	return evidence.New(s, budget.New(0.9, 0.9, 0.9), 0, serial, nil, nil)
}

func TestSyllogismDeduction(t *testing.T) {
	a, b, c := term.NewWord("A"), term.NewWord("B"), term.NewWord("C")
	ab, _ := term.MakeInheritance(a, b)
	bc, _ := term.MakeInheritance(b, c)

	task := judgementTask(ab, 1.0, 0.9, 1)
	belief := evidence.NewJudgement(bc, truth.New(1.0, 0.9, false), evidence.NewStamp(2, 0), true)

	ctx := dctx.New(task, &belief, nil, 0, 8, numeric.NewUF(0.01))
	fired := Syllogism(ctx)
	require.True(t, fired)
	require.Len(t, ctx.NewTasks, 1)

	ac, _ := term.MakeInheritance(a, c)
	assert.True(t, ctx.NewTasks[0].Sentence.Content.Equal(ac))
}

func TestConversionStructural(t *testing.T) {
	a, b := term.NewWord("A"), term.NewWord("B")
	ab, _ := term.MakeInheritance(a, b)
	task := judgementTask(ab, 0.9, 0.9, 1)

	ctx := dctx.New(task, nil, nil, 0, 8, numeric.NewUF(0.01))
	fired := Conversion(ctx)
	require.True(t, fired)
	require.Len(t, ctx.NewTasks, 1)

	ba, _ := term.MakeInheritance(b, a)
	assert.True(t, ctx.NewTasks[0].Sentence.Content.Equal(ba))
}

func TestNegationRoundTrip(t *testing.T) {
	a := term.NewWord("A")
	task := judgementTask(a, 1.0, 0.9, 1)
	ctx := dctx.New(task, nil, nil, 0, 8, numeric.NewUF(0.01))
	fired := Negation(ctx)
	require.True(t, fired)

	notA, _ := term.MakeNegation(a)
	assert.True(t, ctx.NewTasks[0].Sentence.Content.Equal(notA))
}

func TestLocalAnswersQuestion(t *testing.T) {
	a := term.NewWord("A")
	q := evidence.NewQuestion(a, evidence.NewStamp(1, 0), true)
	qTask := evidence.New(q, budget.New(0.9, 0.9, 0.9), 0, 1, nil, nil)
	belief := evidence.NewJudgement(a, truth.New(1.0, 0.9, false), evidence.NewStamp(2, 0), true)

	ctx := dctx.New(qTask, &belief, nil, 0, 8, numeric.NewUF(0.01))
	fired := Local(ctx)
	require.True(t, fired)
	assert.True(t, ctx.NewTasks[0].Sentence.Content.Equal(a))
}

func TestLocalAnswersQueryVariableQuestion(t *testing.T) {
	a, b := term.NewWord("A"), term.NewWord("B")
	qVar := term.NewVariable(term.KindVarQuery, 1)
	pattern, _ := term.MakeInheritance(qVar, b)
	ab, _ := term.MakeInheritance(a, b)

	q := evidence.NewQuestion(pattern, evidence.NewStamp(1, 0), true)
	qTask := evidence.New(q, budget.New(0.9, 0.9, 0.9), 0, 1, nil, nil)
	belief := evidence.NewJudgement(ab, truth.New(1.0, 0.9, false), evidence.NewStamp(2, 0), true)

	ctx := dctx.New(qTask, &belief, nil, 0, 8, numeric.NewUF(0.01))
	fired := Local(ctx)
	require.True(t, fired)
	require.Len(t, ctx.NewTasks, 1)
	assert.True(t, ctx.NewTasks[0].Sentence.Content.Equal(ab))
}

func TestSyllogismIgnoresQuestionTask(t *testing.T) {
	a, b, c := term.NewWord("A"), term.NewWord("B"), term.NewWord("C")
	ab, _ := term.MakeInheritance(a, b)
	bc, _ := term.MakeInheritance(b, c)

	q := evidence.NewQuestion(ab, evidence.NewStamp(1, 0), true)
	qTask := evidence.New(q, budget.New(0.9, 0.9, 0.9), 0, 1, nil, nil)
	belief := evidence.NewJudgement(bc, truth.New(1.0, 0.9, false), evidence.NewStamp(2, 0), true)

	ctx := dctx.New(qTask, &belief, nil, 0, 8, numeric.NewUF(0.01))
	assert.False(t, Syllogism(ctx))
	assert.Empty(t, ctx.NewTasks)
}

func TestCompositionalIgnoresQuestionTask(t *testing.T) {
	a, b, c := term.NewWord("A"), term.NewWord("B"), term.NewWord("C")
	ac, _ := term.MakeInheritance(a, c)
	bc, _ := term.MakeInheritance(b, c)

	q := evidence.NewQuestion(ac, evidence.NewStamp(1, 0), true)
	qTask := evidence.New(q, budget.New(0.9, 0.9, 0.9), 0, 1, nil, nil)
	belief := evidence.NewJudgement(bc, truth.New(1.0, 0.9, false), evidence.NewStamp(2, 0), true)

	ctx := dctx.New(qTask, &belief, nil, 0, 8, numeric.NewUF(0.01))
	assert.False(t, Compositional(ctx))
	assert.Empty(t, ctx.NewTasks)
}
