// Package concept implements the concept-centered memory unit: a
// container keyed by a term, holding beliefs, questions, task-links and
// term-links, plus the direct-processing and try-solution algorithms that
// run over them.
package concept

import (
	"sort"

	"github.com/narust/reasoner/internal/bag"
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/link"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/term"
)

// DefaultBeliefCap and DefaultQuestionCap are the default table sizes from §3.9.
const (
	DefaultBeliefCap      = 7
	DefaultQuestionCap    = 7
	DefaultTaskLinkCap    = 100
	DefaultTermLinkCap    = 100
	DefaultNoveltyRecords = 10
)

// Concept is keyed by its term's canonical string and owns its budget,
// link bags, belief table and question list. Concepts are created on
// first reference and then live in memory permanently — they are never
// deleted, only pushed down by bag eviction.
type Concept struct {
	Term   term.Term
	Budget budget.Budget

	TaskLinks *bag.Bag[*link.TaskLink]
	TermLinks *bag.Bag[link.TermLink]

	Beliefs   []evidence.Sentence // sorted by Rank, descending, cap BeliefCap
	Questions []evidence.Sentence // FIFO, cap QuestionCap

	Templates []link.Template

	BeliefCap   int
	QuestionCap int
}

// New creates a fresh concept for t with empty tables and precomputed
// term-link templates.
func New(t term.Term, initial budget.Budget) *Concept {
	c := &Concept{
		Term:        t,
		Budget:      initial,
		BeliefCap:   DefaultBeliefCap,
		QuestionCap: DefaultQuestionCap,
		Templates:   link.BuildTemplates(t),
	}
	c.TaskLinks = bag.New[*link.TaskLink](DefaultTaskLinkCap,
		func(tl *link.TaskLink) string { return tl.Key() },
		link.PriorityOfTaskLink)
	c.TermLinks = bag.New[link.TermLink](DefaultTermLinkCap,
		func(tl link.TermLink) string { return tl.Key() },
		func(tl link.TermLink) numeric.UF { return tl.Priority() })
	return c
}

// Key is the memory bag key for this concept: its term's canonical string.
func (c *Concept) Key() string { return c.Term.Key() }

// Priority is the memory bag priority accessor.
func (c *Concept) Priority() numeric.UF { return c.Budget.P }

// sortBeliefs keeps Beliefs ordered by descending rank.
func (c *Concept) sortBeliefs() {
	sort.SliceStable(c.Beliefs, func(i, j int) bool {
		return evidence.Rank(c.Beliefs[i].Truth) > evidence.Rank(c.Beliefs[j].Truth)
	})
}
