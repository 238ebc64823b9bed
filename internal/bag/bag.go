package bag

import "github.com/narust/reasoner/internal/numeric"

// Levels is the number of priority buckets items are binned into, and the
// range parameter the Distributor is built from.
const Levels = 100

// Bag is a fixed-capacity, priority-biased, pseudo-randomly drawn
// container. Items are binned into Levels priority buckets by their
// current priority; TakeOut walks the bag's Distributor to pick a bucket,
// favoring higher ones, then pops the oldest item in that bucket (FIFO
// within a level, like OpenNARS's bag implementation).
type Bag[T any] struct {
	capacity   int
	keyOf      func(T) string
	priorityOf func(T) numeric.UF

	buckets     [][]T
	itemLevel   map[string]int
	items       map[string]T
	distributor *Distributor
	walk        int
	size        int
}

// New creates an empty bag with the given item capacity. keyOf and
// priorityOf extract the bag key and current priority from an item; the
// bag never mutates items itself, callers update priority before PutBack.
func New[T any](capacity int, keyOf func(T) string, priorityOf func(T) numeric.UF) *Bag[T] {
	return &Bag[T]{
		capacity:    capacity,
		keyOf:       keyOf,
		priorityOf:  priorityOf,
		buckets:     make([][]T, Levels),
		itemLevel:   make(map[string]int),
		items:       make(map[string]T),
		distributor: NewDistributor(Levels),
	}
}

// Size returns the current item count.
func (b *Bag[T]) Size() int { return b.size }

// Capacity returns the configured maximum item count.
func (b *Bag[T]) Capacity() int { return b.capacity }

// Contains reports whether an item with this key is currently held.
func (b *Bag[T]) Contains(key string) bool {
	_, ok := b.items[key]
	return ok
}

// Get returns the item with this key without removing it.
func (b *Bag[T]) Get(key string) (T, bool) {
	v, ok := b.items[key]
	return v, ok
}

func (b *Bag[T]) levelFor(item T) int {
	p := b.priorityOf(item).Float64()
	lvl := int(p*float64(Levels-1) + 0.5)
	if lvl < 0 {
		lvl = 0
	}
	if lvl > Levels-1 {
		lvl = Levels - 1
	}
	return lvl
}

// PutIn adds an item, evicting and returning the lowest-priority item if
// the bag is over capacity.
func (b *Bag[T]) PutIn(item T) (evicted T, evictedOK bool) {
	key := b.keyOf(item)
	if _, ok := b.items[key]; ok {
		b.removeKey(key, b.itemLevel[key])
	}
	lvl := b.levelFor(item)
	b.buckets[lvl] = append(b.buckets[lvl], item)
	b.itemLevel[key] = lvl
	b.items[key] = item
	b.size++

	if b.capacity > 0 && b.size > b.capacity {
		return b.evictLowest()
	}
	var zero T
	return zero, false
}

// PutBack re-inserts an item (typically after the caller updated its
// priority), re-binning it into its new bucket.
func (b *Bag[T]) PutBack(item T) {
	b.PutIn(item)
}

// evictLowest removes and returns the oldest item in the lowest non-empty
// bucket.
func (b *Bag[T]) evictLowest() (T, bool) {
	for lvl := 0; lvl < Levels; lvl++ {
		if len(b.buckets[lvl]) > 0 {
			item := b.buckets[lvl][0]
			b.buckets[lvl] = b.buckets[lvl][1:]
			key := b.keyOf(item)
			delete(b.itemLevel, key)
			delete(b.items, key)
			b.size--
			return item, true
		}
	}
	var zero T
	return zero, false
}

// TakeOut removes one item, biased toward high priority via the
// distributor's weighted walk.
func (b *Bag[T]) TakeOut() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	desired := b.distributor.Pick(b.walk)
	b.walk = b.distributor.Next(b.walk)

	lvl := desired
	for i := 0; i < Levels; i++ {
		if len(b.buckets[lvl]) > 0 {
			item := b.buckets[lvl][0]
			b.buckets[lvl] = b.buckets[lvl][1:]
			key := b.keyOf(item)
			delete(b.itemLevel, key)
			delete(b.items, key)
			b.size--
			return item, true
		}
		lvl = (lvl + 1) % Levels
	}
	var zero T
	return zero, false
}

// PickOut removes and returns the item with the given key, if present,
// regardless of its bucket.
func (b *Bag[T]) PickOut(key string) (T, bool) {
	lvl, ok := b.itemLevel[key]
	if !ok {
		var zero T
		return zero, false
	}
	bucket := b.buckets[lvl]
	for i, it := range bucket {
		if b.keyOf(it) == key {
			b.buckets[lvl] = append(bucket[:i], bucket[i+1:]...)
			delete(b.itemLevel, key)
			delete(b.items, key)
			b.size--
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (b *Bag[T]) removeKey(key string, lvl int) {
	bucket := b.buckets[lvl]
	for i, it := range bucket {
		if b.keyOf(it) == key {
			b.buckets[lvl] = append(bucket[:i], bucket[i+1:]...)
			b.size--
			return
		}
	}
}

// Items returns every item currently held, in no particular order — used
// for INF dumps and serialization, not for inference itself.
func (b *Bag[T]) Items() []T {
	out := make([]T, 0, b.size)
	for _, bucket := range b.buckets {
		out = append(out, bucket...)
	}
	return out
}
