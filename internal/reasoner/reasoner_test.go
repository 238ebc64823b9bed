package reasoner

import (
	"strings"
	"testing"

	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCycles(r *Reasoner, n int) []Output {
	var all []Output
	for i := 0; i < n; i++ {
		all = append(all, r.Cycle()...)
	}
	return all
}

func TestRevisionAfterDirectInput(t *testing.T) {
	r := New(Default())
	word := term.NewWord("Sentence")

	tv1 := truth.New(1.0, 0.5, false)
	r.Submit(InputSentence{Content: word, Punctuation: evidence.Judgement, Truth: &tv1})
	runCycles(r, 5)

	tv2 := truth.New(0.0, 0.5, false)
	r.Submit(InputSentence{Content: word, Punctuation: evidence.Judgement, Truth: &tv2})
	runCycles(r, 5)

	c, ok := r.Memory.Lookup(word.Key())
	require.True(t, ok)
	require.Len(t, c.Beliefs, 1)
	assert.InDelta(t, 0.5, c.Beliefs[0].Truth.F.Float64(), 1e-6)
}

func TestAnswerAfterRevision(t *testing.T) {
	r := New(Default())
	word := term.NewWord("Sentence")

	tv1 := truth.New(1.0, 0.5, false)
	r.Submit(InputSentence{Content: word, Punctuation: evidence.Judgement, Truth: &tv1})
	runCycles(r, 2)

	r.Submit(InputSentence{Content: word, Punctuation: evidence.Question})
	outputs := runCycles(r, 2)

	tv2 := truth.New(0.0, 0.5, false)
	r.Submit(InputSentence{Content: word, Punctuation: evidence.Judgement, Truth: &tv2})
	outputs = append(outputs, runCycles(r, 2)...)

	found := false
	for _, o := range outputs {
		if o.Kind == Answer && strings.Contains(o.Text, "Sentence") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestQueryVariableAnsweringViaCycles(t *testing.T) {
	r := New(Default())
	a, b := term.NewWord("A"), term.NewWord("B")
	ab, _ := term.MakeInheritance(a, b)
	qVar := term.NewVariable(term.KindVarQuery, 1)
	pattern, _ := term.MakeInheritance(qVar, b)

	tv := truth.New(1.0, 0.9, false)
	r.Submit(InputSentence{Content: ab, Punctuation: evidence.Judgement, Truth: &tv})
	runCycles(r, 5)

	r.Submit(InputSentence{Content: pattern, Punctuation: evidence.Question})
	outputs := runCycles(r, 50)

	found := false
	for _, o := range outputs {
		if o.Kind == Answer && strings.Contains(o.Text, ab.Key()) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSyllogisticDeductionViaCycles(t *testing.T) {
	r := New(Default())
	a, b, c := term.NewWord("A"), term.NewWord("B"), term.NewWord("C")
	ab, _ := term.MakeInheritance(a, b)
	bc, _ := term.MakeInheritance(b, c)
	ac, _ := term.MakeInheritance(a, c)

	tv := truth.New(1.0, 0.9, false)
	r.Submit(InputSentence{Content: ab, Punctuation: evidence.Judgement, Truth: &tv})
	r.Submit(InputSentence{Content: bc, Punctuation: evidence.Judgement, Truth: &tv})
	outputs := runCycles(r, 40)

	found := false
	for _, o := range outputs {
		if strings.Contains(o.Text, ac.Key()) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResetClearsMemoryAndClocks(t *testing.T) {
	r := New(Default())
	word := term.NewWord("A")
	tv := truth.New(1, 0.9, false)
	r.Submit(InputSentence{Content: word, Punctuation: evidence.Judgement, Truth: &tv})
	runCycles(r, 3)
	assert.Greater(t, r.Now(), int64(0))

	r.Reset()
	assert.Equal(t, int64(0), r.Now())
	assert.Equal(t, 0, r.Memory.Size())
}
