// Package taskbuf implements the input task buffer: a FIFO of freshly
// arrived tasks plus a bounded, priority-biased overflow bag for
// judgements that are not processed immediately but whose expectation
// clears the admission threshold.
package taskbuf

import (
	"github.com/narust/reasoner/internal/bag"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/numeric"
)

// DefaultNovelCapacity is the default size of the novel-task overflow bag.
const DefaultNovelCapacity = 1000

// Buffer holds tasks awaiting direct processing. New arrivals (input or
// freshly derived) go on the FIFO queue; a judgement that doesn't fit this
// step and clears the admission threshold is parked in the novel bag
// instead of being dropped outright.
type Buffer struct {
	queue []*evidence.Task
	novel *bag.Bag[*evidence.Task]
}

// New creates an empty buffer with the given novel-task bag capacity.
func New(novelCapacity int) *Buffer {
	if novelCapacity <= 0 {
		novelCapacity = DefaultNovelCapacity
	}
	return &Buffer{
		novel: bag.New[*evidence.Task](novelCapacity,
			func(t *evidence.Task) string { return t.Key() },
			func(t *evidence.Task) numeric.UF { return t.Budget.P }),
	}
}

// Push enqueues a task for direct processing on this or a future step.
func (b *Buffer) Push(t *evidence.Task) {
	b.queue = append(b.queue, t)
}

// PopOrPromote removes and returns the next task to direct-process: the
// head of the FIFO queue if non-empty, otherwise one task drawn from the
// novel-task bag (§4.7 step 2). Reports whether a task was produced.
func (b *Buffer) PopOrPromote() (*evidence.Task, bool) {
	if len(b.queue) > 0 {
		t := b.queue[0]
		b.queue = b.queue[1:]
		return t, true
	}
	return b.novel.TakeOut()
}

// Admit parks a judgement that wasn't processed immediately because it
// didn't fit this step into the novel-task bag, provided its expectation
// clears admissionThreshold; otherwise it is dropped. Returns whether it
// was admitted and, if the bag was full, the task evicted to make room.
func (b *Buffer) Admit(t *evidence.Task, admissionThreshold float64) (admitted bool, evicted *evidence.Task) {
	if t.Sentence.Punctuation != evidence.Judgement {
		return false, nil
	}
	if t.Sentence.Truth.Expectation() <= admissionThreshold {
		return false, nil
	}
	ev, ok := b.novel.PutIn(t)
	if ok && ev != t {
		evicted = ev
	}
	return true, evicted
}

// QueueLen reports the number of tasks waiting in the FIFO queue.
func (b *Buffer) QueueLen() int { return len(b.queue) }

// NovelSize reports the number of tasks currently parked in the novel bag.
func (b *Buffer) NovelSize() int { return b.novel.Size() }

// Queue returns a snapshot of the FIFO queue, in order, for serialization.
func (b *Buffer) Queue() []*evidence.Task {
	return append([]*evidence.Task(nil), b.queue...)
}

// NovelItems returns a snapshot of the novel-task bag's contents, for
// serialization.
func (b *Buffer) NovelItems() []*evidence.Task { return b.novel.Items() }

// RestoreQueue replaces the FIFO queue wholesale, used when reloading a
// saved status payload.
func (b *Buffer) RestoreQueue(tasks []*evidence.Task) {
	b.queue = append([]*evidence.Task(nil), tasks...)
}

// RestoreNovel reinserts a task directly into the novel bag, bypassing the
// admission threshold, used when reloading a saved status payload.
func (b *Buffer) RestoreNovel(t *evidence.Task) {
	b.novel.PutIn(t)
}
