package narsese

import (
	"testing"

	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJudgementWithTruth(t *testing.T) {
	p, err := Parse("Sentence. %1.0;0.5%")
	require.NoError(t, err)
	assert.Equal(t, evidence.Judgement, p.Punctuation)
	require.NotNil(t, p.Truth)
	assert.InDelta(t, 1.0, p.Truth.F.Float64(), 1e-6)
	assert.InDelta(t, 0.5, p.Truth.C.Float64(), 1e-6)
	assert.Equal(t, term.NewWord("Sentence").Key(), p.Content.Key())
}

func TestParseJudgementWithoutTruth(t *testing.T) {
	p, err := Parse("Sentence.")
	require.NoError(t, err)
	assert.Equal(t, evidence.Judgement, p.Punctuation)
	assert.Nil(t, p.Truth)
}

func TestParseQuestionDropsTruth(t *testing.T) {
	p, err := Parse("Sentence? %1.0;0.5%")
	require.NoError(t, err)
	assert.Equal(t, evidence.Question, p.Punctuation)
	assert.Nil(t, p.Truth)
}

func TestParseStatementCopulas(t *testing.T) {
	cases := []string{
		"<A --> B>.",
		"<A <-> B>.",
		"<A ==> B>.",
		"<A <=> B>.",
	}
	for _, c := range cases {
		_, err := Parse(c)
		assert.NoError(t, err, "input %q should parse", c)
	}
}

func TestParseSetsAndCompounds(t *testing.T) {
	cases := []string{
		"{A, B}.",
		"[A, B].",
		"(*, A, B).",
		"(&, A, B).",
		"(|, A, B).",
		"(&&, A, B).",
	}
	for _, c := range cases {
		_, err := Parse(c)
		assert.NoError(t, err, "input %q should parse", c)
	}
}

func TestParseQueryVariableQuestion(t *testing.T) {
	p, err := Parse("<?1 --> B>?")
	require.NoError(t, err)
	assert.Equal(t, evidence.Question, p.Punctuation)
	assert.Equal(t, term.KindInheritance, p.Content.Kind())
}

func TestParseRepeatedVariableSameIdentity(t *testing.T) {
	p, err := Parse("<$x --> $x>.")
	require.Error(t, err) // reflexive statement, rejected by term construction
	_ = p
}

func TestParseRejectsMissingPunctuation(t *testing.T) {
	_, err := Parse("Sentence")
	assert.Error(t, err)
}

func TestParseRejectsUnbalancedBrackets(t *testing.T) {
	_, err := Parse("<A --> B.")
	assert.Error(t, err)
}

func TestParseRejectsMalformedTruth(t *testing.T) {
	_, err := Parse("Sentence. %1.0%")
	assert.Error(t, err)
}

func TestParseRejectsTemporalCopula(t *testing.T) {
	_, err := Parse("<A =/> B>.")
	assert.Error(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("   ")
	assert.Error(t, err)
}
