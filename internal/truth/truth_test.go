package truth

import (
	"testing"

	"github.com/narust/reasoner/internal/numeric"
	"github.com/stretchr/testify/assert"
)

func TestExpectation(t *testing.T) {
	tv := New(1.0, 0.9, false)
	assert.InDelta(t, 0.95, tv.Expectation(), 1e-9)
}

func TestEqualityIgnoresAnalytic(t *testing.T) {
	a := New(0.8, 0.5, true)
	b := New(0.8, 0.5, false)
	assert.True(t, a.Equal(b))
}

func TestNegation(t *testing.T) {
	tv := Negation(New(0.9, 0.8, false))
	assert.InDelta(t, 0.1, tv.F.Float64(), 1e-9)
	assert.InDelta(t, 0.8, tv.C.Float64(), 1e-9)
}

func TestDeduction(t *testing.T) {
	tv := Deduction(New(0.9, 0.9, false), New(0.8, 0.7, false))
	assert.InDelta(t, 0.72, tv.F.Float64(), 1e-6)
}

func TestAbductionPoisonedByAnalyticOperand(t *testing.T) {
	analytic := New(0.9, 0.8, true)
	plain := New(0.5, 0.5, false)
	result := Abduction(analytic, plain)
	assert.Equal(t, PoisonedAnalytic, result)
	assert.True(t, result.Analytic)
}

func TestRevisionBothInfiniteAverages(t *testing.T) {
	a := New(0.2, 1.0, false)
	b := New(0.8, 1.0, false)
	r := Revision(a, b)
	assert.InDelta(t, 0.5, r.F.Float64(), 1e-9)
	assert.Equal(t, numeric.NewUF(1), r.C)
}

func TestRevisionAccumulatesEvidence(t *testing.T) {
	a := New(1.0, 0.5, false)
	b := New(1.0, 0.5, false)
	r := Revision(a, b)
	assert.True(t, r.C.Float64() > a.C.Float64())
	assert.InDelta(t, 1.0, r.F.Float64(), 1e-9)
}

func TestDoubleNegationIdentity(t *testing.T) {
	a := New(0.7, 0.6, false)
	assert.True(t, Negation(Negation(a)).Equal(a))
}
