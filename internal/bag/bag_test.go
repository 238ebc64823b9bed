package bag

import (
	"fmt"
	"testing"

	"github.com/narust/reasoner/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItem struct {
	key string
	pri numeric.UF
}

func newTestBag(capacity int) *Bag[stubItem] {
	return New[stubItem](capacity,
		func(s stubItem) string { return s.key },
		func(s stubItem) numeric.UF { return s.pri })
}

func TestDistributorCapacityAndNext(t *testing.T) {
	d := NewDistributor(10)
	c := d.Capacity()
	for i := 0; i < c-1; i++ {
		assert.Equal(t, i+1, d.Next(i))
	}
	assert.Equal(t, 0, d.Next(c-1))
}

func TestDistributorHigherLevelsDrawnMoreOften(t *testing.T) {
	d := NewDistributor(10)
	counts := map[int]int{}
	idx := 0
	for i := 0; i < d.Capacity()*5; i++ {
		counts[d.Pick(idx)]++
		idx = d.Next(idx)
	}
	assert.True(t, counts[9] >= counts[0])
}

func TestBagCapacityNeverExceeded(t *testing.T) {
	b := newTestBag(3)
	for i := 0; i < 5; i++ {
		b.PutIn(stubItem{key: fmt.Sprintf("i%d", i), pri: numeric.NewUF(float64(i) / 10)})
		assert.LessOrEqual(t, b.Size(), 3)
	}
}

func TestBagEvictsLowestPriorityOnOverflow(t *testing.T) {
	b := newTestBag(2)
	b.PutIn(stubItem{key: "low", pri: numeric.NewUF(0.0)})
	b.PutIn(stubItem{key: "mid", pri: numeric.NewUF(0.5)})
	_, evicted := b.PutIn(stubItem{key: "high", pri: numeric.NewUF(1.0)})
	assert.True(t, evicted)
	assert.False(t, b.Contains("low"))
}

func TestBagTakeOutThenPutBackNeverIncreasesSize(t *testing.T) {
	b := newTestBag(5)
	b.PutIn(stubItem{key: "a", pri: numeric.NewUF(0.5)})
	b.PutIn(stubItem{key: "b", pri: numeric.NewUF(0.5)})
	before := b.Size()
	item, ok := b.TakeOut()
	require.True(t, ok)
	b.PutBack(item)
	assert.LessOrEqual(t, b.Size(), before)
}

func TestPickOutByKey(t *testing.T) {
	b := newTestBag(5)
	b.PutIn(stubItem{key: "a", pri: numeric.NewUF(0.5)})
	item, ok := b.PickOut("a")
	require.True(t, ok)
	assert.Equal(t, "a", item.key)
	assert.False(t, b.Contains("a"))
}
