// Package link implements term-link templates, term-links and task-links:
// the indexed pointers a concept uses to reach related terms and the tasks
// referencing it.
package link

import (
	"fmt"
	"strings"
	"time"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/pkg/cache"
)

// Type is the tagged variant of a link's structural relationship to its
// owning concept. Component/ComponentStatement/ComponentCondition point
// into the compound (the concept is the whole); the rest point out from it
// (the concept is a part).
type Type int

const (
	Self Type = iota
	Component
	CompoundLink
	ComponentStatement
	CompoundStatement
	ComponentCondition
	CompoundCondition
	Transform
)

func (t Type) String() string {
	switch t {
	case Self:
		return "SELF"
	case Component:
		return "Component"
	case CompoundLink:
		return "Compound"
	case ComponentStatement:
		return "ComponentStatement"
	case CompoundStatement:
		return "CompoundStatement"
	case ComponentCondition:
		return "ComponentCondition"
	case CompoundCondition:
		return "CompoundCondition"
	case Transform:
		return "Transform"
	default:
		return "?"
	}
}

// PointsInward reports whether this link type points from the compound
// into one of its components (as opposed to out from a component to the
// whole compound or a related term).
func (t Type) PointsInward() bool {
	switch t {
	case Component, ComponentStatement, ComponentCondition:
		return true
	default:
		return false
	}
}

// Template is the target-term/type/index-path tuple precomputed once per
// compound concept and used to spin up term-links and task-links.
type Template struct {
	Target  string // target term's canonical key
	Type    Type
	Indices []int
}

func indexKey(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = itoa(idx)
	}
	return strings.Join(parts, ",")
}

func itoa(i int) string { return fmt.Sprintf("%d", i) }

// Key renders the generated term-link key "(T-<type>(indices))<at>target".
func (tpl Template) Key() string {
	return fmt.Sprintf("(T-%s(%s))@%s", tpl.Type, indexKey(tpl.Indices), tpl.Target)
}

// TermLink is a template plus its own live budget.
type TermLink struct {
	Template Template
	Budget   budget.Budget
}

// Key is the bag key for this term-link.
func (tl TermLink) Key() string { return tl.Template.Key() }

// NoveltyWindow is how long a term-link key must have gone unseen by a
// task-link before it is considered novel again.
const NoveltyWindow = 50 * time.Millisecond

// TaskLink is a shared reference to a task, plus budget, link type,
// indices into the task's content, and a bounded ring buffer recording
// which term-link keys it has recently been paired with — used to avoid
// immediately re-deriving the same pair of links.
type TaskLink struct {
	Task    *evidence.Task
	Budget  budget.Budget
	Type    Type
	Indices []int

	recent *cache.LRU[string, struct{}]
}

// NewTaskLink constructs a task-link with a fresh novelty tracker bounded
// to recordCapacity recently-seen term-link keys.
func NewTaskLink(task *evidence.Task, b budget.Budget, t Type, indices []int, recordCapacity int) *TaskLink {
	return &TaskLink{
		Task:    task,
		Budget:  b,
		Type:    t,
		Indices: indices,
		recent:  cache.New[string, struct{}](&cache.Config{MaxEntries: recordCapacity, TTL: NoveltyWindow}),
	}
}

// Key is the bag key for this task-link: its task's content key qualified
// by link type/indices, so a task can have distinct task-links of
// different shapes.
func (tl *TaskLink) Key() string {
	return fmt.Sprintf("%s#%s(%s)", tl.Task.Key(), tl.Type, indexKey(tl.Indices))
}

// IsNovel reports whether termLinkKey is novel against this task-link: not
// recently recorded, or recorded long enough ago to have expired from the
// window.
func (tl *TaskLink) IsNovel(termLinkKey string) bool {
	return !tl.recent.SeenWithin(termLinkKey)
}

// RecordNovelty marks termLinkKey as seen, starting its novelty window.
func (tl *TaskLink) RecordNovelty(termLinkKey string) {
	tl.recent.Set(termLinkKey, struct{}{})
}

// Priority is a convenience accessor used by bag ordering functions.
func (tl TermLink) Priority() numeric.UF    { return tl.Budget.P }
func PriorityOfTaskLink(tl *TaskLink) numeric.UF { return tl.Budget.P }
