package concept

import (
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/link"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/term"
)

// BuildLinksForTask builds a self task-link for an accepted task and, for
// each term-link template whose distributed sub-budget clears threshold,
// a matching task-link — the link-building step of direct processing
// (§4.5). Returns the term-link budgets that should be installed into the
// related concepts (the caller owns looking those concepts up in memory).
func (c *Concept) BuildLinksForTask(task *evidence.Task, threshold numeric.UF) (selfLink *link.TaskLink, sub []SubTaskLink) {
	n := len(c.Templates) + 1
	selfBudget := budget.DistributeAmongLinks(task.Budget, n)
	selfLink = link.NewTaskLink(task, selfBudget, link.Self, nil, DefaultNoveltyRecords)
	c.TaskLinks.PutIn(selfLink)

	for _, tpl := range c.Templates {
		b := budget.DistributeAmongLinks(task.Budget, n)
		if !b.AboveThreshold(threshold) {
			continue
		}
		tl := link.NewTaskLink(task, b, tpl.Type, tpl.Indices, DefaultNoveltyRecords)

		var childTerm term.Term
		if len(tpl.Indices) > 0 {
			if ct, ok := c.Term.ComponentAt(tpl.Indices[0]); ok {
				childTerm = ct
			}
		}
		sub = append(sub, SubTaskLink{Target: tpl.Target, TargetTerm: childTerm, TaskLink: tl})

		termLink := link.TermLink{Template: tpl, Budget: b}
		c.TermLinks.PutIn(termLink)
	}
	return selfLink, sub
}

// SubTaskLink pairs a task-link built from a template with the component
// concept it should be installed into: Target is that concept's key,
// TargetTerm its term (so the caller can create the concept if it doesn't
// exist yet, per §4.5's component-concept creation).
type SubTaskLink struct {
	Target     string
	TargetTerm term.Term
	TaskLink   *link.TaskLink
}
