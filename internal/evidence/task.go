package evidence

import (
	"github.com/google/uuid"
	"github.com/narust/reasoner/internal/budget"
)

// Task owns a sentence plus a budget, a creation time, a monotone
// per-process serial, and an optional parent chain. Tasks are referenced
// by pointer so the same task can be shared by multiple task-links across
// concepts (§3.7's "shared ownership"); task content is never mutated
// after construction, only Budget and BestSolution may change in place.
type Task struct {
	// PersistentID survives save/load and is the join key the
	// shared-reference normalization pass (§5 "Serialization") uses to
	// rebuild aliasing after deserialization.
	PersistentID string

	Sentence Sentence
	Budget   budget.Budget

	CreationTime int64
	Serial       int64

	Parent        *Task
	ParentBelief  *Sentence
	BestSolution  *Sentence
}

// New constructs a fresh input or derived task, stamping it with a new
// persistent id.
func New(sentence Sentence, b budget.Budget, creationTime, serial int64, parent *Task, parentBelief *Sentence) *Task {
	return &Task{
		PersistentID: uuid.NewString(),
		Sentence:     sentence,
		Budget:       b,
		CreationTime: creationTime,
		Serial:       serial,
		Parent:       parent,
		ParentBelief: parentBelief,
	}
}

// IsInput reports whether this task has no parent, i.e. it arrived
// directly from an NSE command rather than being derived.
func (t *Task) IsInput() bool { return t.Parent == nil }

// Key is the bag/map key for this task, delegating to its sentence.
func (t *Task) Key() string { return t.Sentence.Key() }
