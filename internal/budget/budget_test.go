package budget

import (
	"testing"

	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/truth"
	"github.com/stretchr/testify/assert"
)

func TestSummaryIsGeometricMean(t *testing.T) {
	b := New(1, 1, 1)
	assert.Equal(t, numeric.NewUF(1), b.Summary())

	b2 := New(0, 1, 1)
	assert.Equal(t, numeric.NewUF(0), b2.Summary())
}

func TestMergeIsComponentwiseMax(t *testing.T) {
	a := New(0.2, 0.9, 0.3)
	b := New(0.8, 0.1, 0.5)
	m := Merge(a, b)
	assert.Equal(t, numeric.NewUF(0.8), m.P)
	assert.Equal(t, numeric.NewUF(0.9), m.D)
	assert.Equal(t, numeric.NewUF(0.5), m.Q)
}

func TestDistributeAmongLinksShrinksPriority(t *testing.T) {
	parent := New(1.0, 0.5, 0.5)
	d := DistributeAmongLinks(parent, 4)
	assert.InDelta(t, 0.5, d.P.Float64(), 1e-9)
	assert.Equal(t, parent.D, d.D)
}

func TestForgetDecaysTowardQualityFloor(t *testing.T) {
	b := New(0.9, 0.5, 0.1)
	decayed := Forget(b, 1.0, 0.5)
	assert.True(t, decayed.P.Float64() < b.P.Float64())
	assert.True(t, decayed.P.Float64() >= b.Q.Float64()*0.5-1e-9)
}

func TestForgetFixedPointAtQualityFloor(t *testing.T) {
	target := 0.05
	b := New(target, 0.5, 0.1)
	decayed := Forget(b, 1.0, 0.5)
	assert.InDelta(t, target, decayed.P.Float64(), 1e-9)
}

func TestReviseNudgesLinkPriority(t *testing.T) {
	old := truth.New(0.5, 0.5, false)
	result := truth.New(1.0, 0.9, false)
	tl := New(0.1, 0.5, 0.5)
	Revise(old, result, New(0.1, 0.5, 0.5), &tl, nil)
	assert.True(t, tl.P.Float64() > 0.1)
}
