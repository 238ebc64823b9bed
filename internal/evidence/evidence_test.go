package evidence

import (
	"testing"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampOverlap(t *testing.T) {
	a := Stamp{Base: []int64{1, 2, 3}}
	b := Stamp{Base: []int64{4, 5, 3}}
	c := Stamp{Base: []int64{4, 5, 6}}
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestStampMergeBoundedLength(t *testing.T) {
	a := Stamp{Base: []int64{1, 2, 3, 4, 5}}
	b := Stamp{Base: []int64{6, 7, 8, 9, 10}}
	merged := Merge(a, b, 8)
	assert.LessOrEqual(t, len(merged.Base), 8)
}

func TestRevisabilityRequiresDisjointStamps(t *testing.T) {
	word := term.NewWord("A")
	tv := truth.New(1.0, 0.9, false)
	s1 := NewJudgement(word, tv, Stamp{Base: []int64{1}}, true)
	s2 := NewJudgement(word, tv, Stamp{Base: []int64{1}}, true)
	s3 := NewJudgement(word, tv, Stamp{Base: []int64{2}}, true)

	assert.False(t, Revisability(s1, s2))
	assert.True(t, Revisability(s1, s3))
}

func TestTaskIsInput(t *testing.T) {
	word := term.NewWord("A")
	tv := truth.New(1.0, 0.9, false)
	s := NewJudgement(word, tv, NewStamp(1, 0), true)
	task := New(s, budget.New(0.5, 0.5, 0.5), 0, 1, nil, nil)
	require.NotNil(t, task)
	assert.True(t, task.IsInput())
	assert.NotEmpty(t, task.PersistentID)
}
