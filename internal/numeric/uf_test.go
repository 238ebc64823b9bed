package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUFClamps(t *testing.T) {
	assert.Equal(t, UF(0), NewUF(-1))
	assert.Equal(t, UF(1), NewUF(2))
	assert.Equal(t, UF(0.5), NewUF(0.5))
}

func TestNewUFRounds(t *testing.T) {
	assert.Equal(t, UF(0.1235), NewUF(0.12346))
}

func TestUFBooleanOps(t *testing.T) {
	f := NewUF(0.3)
	g := NewUF(0.4)
	assert.Equal(t, NewUF(0.7), f.Not())
	assert.Equal(t, NewUF(0.12), f.And(g))
	assert.InDelta(t, 0.58, f.Or(g).Float64(), 1e-9)
}

func TestMeans(t *testing.T) {
	assert.Equal(t, NewUF(0.5), ArithmeticMean(NewUF(0), NewUF(1)))
	assert.Equal(t, NewUF(0), GeometricMean(NewUF(0), NewUF(1)))
	assert.Equal(t, NewUF(1), GeometricMean(NewUF(1), NewUF(1), NewUF(1)))
}

func TestW2CC2WRoundTrip(t *testing.T) {
	k := 1.0
	w := 4.0
	c := W2C(w, k)
	got := C2W(c, k)
	require.InDelta(t, w, got, 0.01)
}

func TestC2WAtOne(t *testing.T) {
	got := C2W(NewUF(1), 1.0)
	assert.True(t, got > 1e10)
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, NewUF(0.7), Max(NewUF(0.3), NewUF(0.7)))
	assert.Equal(t, NewUF(0.3), Min(NewUF(0.3), NewUF(0.7)))
}
