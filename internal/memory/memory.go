// Package memory implements the concept bag and term-keyed lookup that
// anchors the reasoner's long-term state: concepts are created on first
// reference and never deleted, only pushed down by bag eviction.
package memory

import (
	"sync"

	"github.com/narust/reasoner/internal/bag"
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/concept"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/term"
)

// DefaultCapacity is used when a zero capacity is requested.
const DefaultCapacity = 10000

// Memory owns the concept bag. A mutex guards it so a second, concurrent
// entry point (an MCP tool call arriving mid-cycle) can observe it safely;
// the work-cycle driver itself never holds it across a yield point.
type Memory struct {
	mu       sync.RWMutex
	concepts *bag.Bag[*concept.Concept]
	capacity int
}

// New creates an empty memory with the given concept-bag capacity.
func New(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{
		capacity: capacity,
		concepts: bag.New[*concept.Concept](capacity,
			func(c *concept.Concept) string { return c.Key() },
			func(c *concept.Concept) numeric.UF { return c.Priority() }),
	}
}

// Capacity returns the configured concept-bag capacity.
func (m *Memory) Capacity() int { return m.capacity }

// Size returns the current number of concepts held.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.concepts.Size()
}

// Lookup finds an existing concept by its term's canonical key, without
// creating one.
func (m *Memory) Lookup(key string) (*concept.Concept, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.concepts.Get(key)
}

// LookupOrCreate returns the concept for t, creating and inserting one
// with initial if it doesn't exist yet. Reports whether a new concept was
// created, and — if the bag was at capacity — the concept that was
// evicted to make room, so the caller can emit a COMMENT about it.
func (m *Memory) LookupOrCreate(t term.Term, initial budget.Budget) (c *concept.Concept, created bool, evicted *concept.Concept) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := t.Key()
	if existing, ok := m.concepts.Get(key); ok {
		return existing, false, nil
	}
	c = concept.New(t, initial)
	ev, ok := m.concepts.PutIn(c)
	if ok && ev != c {
		evicted = ev
	}
	return c, true, evicted
}

// Activate raises concept's budget toward taskBudget (the OR/mean
// activation rule from §4.4) and reinserts it so its bucket reflects the
// new priority.
func (m *Memory) Activate(c *concept.Concept, taskBudget budget.Budget) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.Budget = budget.Activate(c.Budget, taskBudget)
	m.concepts.PutBack(c)
}

// FireCandidate draws one concept from the bag for firing and immediately
// reinserts it — the bag draw only decides which concept gets attention
// this step, it never removes the concept from memory (§4.7 step 4).
func (m *Memory) FireCandidate() (*concept.Concept, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.concepts.TakeOut()
	if !ok {
		return nil, false
	}
	m.concepts.PutBack(c)
	return c, true
}

// All returns every concept currently held, in no particular order — used
// for INF memory dumps and for save/load.
func (m *Memory) All() []*concept.Concept {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.concepts.Items()
}

// Restore inserts an already-built concept directly into the bag, used
// when reloading a saved status payload. It bypasses LookupOrCreate's
// creation bookkeeping since the concept already carries its reloaded
// belief/question/link tables.
func (m *Memory) Restore(c *concept.Concept) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.concepts.PutIn(c)
}
