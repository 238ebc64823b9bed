package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementReflexiveRejected(t *testing.T) {
	a := NewWord("A")
	_, ok := MakeInheritance(a, a)
	assert.False(t, ok)
}

func TestStatementReflexiveSetRejected(t *testing.T) {
	a := NewWord("A")
	setA, ok := MakeSetExt([]Term{a})
	require.True(t, ok)
	_, ok = MakeInheritance(a, setA)
	assert.False(t, ok)
}

func TestCircularDoubleImplicationRejected(t *testing.T) {
	a, b := NewWord("A"), NewWord("B")
	ab, _ := MakeInheritance(a, b)
	ba, _ := MakeInheritance(b, a)
	_, ok := MakeImplication(ab, ba)
	assert.False(t, ok)
}

func TestSetExtCanonicalOrderAndDedup(t *testing.T) {
	a, b := NewWord("A"), NewWord("B")
	s1, ok1 := MakeSetExt([]Term{a, a, b})
	s2, ok2 := MakeSetExt([]Term{b, a})
	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, s1.Equal(s2))
	assert.Equal(t, 2, s1.Size())
}

func TestIntersectionCollapsesToSingleMember(t *testing.T) {
	a := NewWord("A")
	result, ok := MakeIntersectExt([]Term{a, a})
	require.True(t, ok)
	assert.True(t, result.Equal(a))
}

func TestDoubleNegationCollapses(t *testing.T) {
	a := NewWord("A")
	n1, _ := MakeNegation(a)
	n2, ok := MakeNegation(n1)
	require.True(t, ok)
	assert.True(t, n2.Equal(a))
}

func TestImagePlaceholderMustNotBeAtZero(t *testing.T) {
	a, b := NewWord("A"), NewWord("B")
	_, ok := MakeImageExt([]Term{a, b}, 0)
	assert.False(t, ok)

	img, ok := MakeImageExt([]Term{a, b}, 1)
	require.True(t, ok)
	assert.Equal(t, 1, img.Size()) // placeholder excluded from Size
}

func TestEmptyComponentsRejected(t *testing.T) {
	_, ok := MakeProduct(nil)
	assert.False(t, ok)
	_, ok = MakeSetExt(nil)
	assert.False(t, ok)
}

func TestIsConstantCaching(t *testing.T) {
	a := NewWord("A")
	v := NewVariable(KindVarIndep, 1)
	assert.True(t, a.IsConstant())
	assert.False(t, v.IsConstant())

	ab, ok := MakeInheritance(a, v)
	require.True(t, ok)
	assert.False(t, ab.IsConstant())
}

func TestNormalizeVariablesRenumbersLeftToRight(t *testing.T) {
	v5 := NewVariable(KindVarIndep, 5)
	v9 := NewVariable(KindVarIndep, 9)
	prod, ok := MakeProduct([]Term{v9, v5, v9})
	require.True(t, ok)

	norm := NormalizeVariables(prod)
	first, _ := norm.ComponentAt(0)
	second, _ := norm.ComponentAt(1)
	third, _ := norm.ComponentAt(2)
	assert.Equal(t, 1, first.VarID())
	assert.Equal(t, 2, second.VarID())
	assert.Equal(t, 1, third.VarID())
}

func TestSubstitute(t *testing.T) {
	a := NewWord("A")
	v := NewVariable(KindVarIndep, 1)
	stmt, ok := MakeInheritance(v, a)
	require.True(t, ok)

	b := NewWord("B")
	result := Substitute(stmt, map[string]Term{v.Key(): b})
	subj, _ := result.Subject()
	assert.True(t, subj.Equal(b))
}
