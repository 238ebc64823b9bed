package concept

import (
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/truth"
)

// AbsorbBelief runs direct processing for an incoming judgement: it tries
// to revise against an existing, revisable, disjoint-evidence belief on
// the same content; otherwise it inserts as a new belief if the table has
// room or it outranks the table's weakest entry. Returns the sentence that
// was actually stored (revised or original), the revision's own budget
// (meaningful only when revised is true), and whether anything changed.
// The caller is responsible for reporting a revision as a derivation
// (internal/dctx's DoublePremiseTaskRevision) — this method only updates
// the belief table itself.
func (c *Concept) AbsorbBelief(incoming evidence.Sentence, threshold numeric.UF, maxStampLen int) (stored evidence.Sentence, resultBudget budget.Budget, changed bool, revised bool) {
	for i, existing := range c.Beliefs {
		if evidence.Revisability(existing, incoming) {
			revisedTruth := truth.Revision(existing.Truth, incoming.Truth)
			revisedStamp := evidence.Merge(existing.Stamp, incoming.Stamp, maxStampLen)
			revisedSentence := evidence.NewJudgement(incoming.Content, revisedTruth, revisedStamp, true)

			revBudget := budget.Revise(existing.Truth, revisedTruth, c.Budget, nil, nil)
			if !revBudget.AboveThreshold(threshold) {
				return existing, budget.Budget{}, false, false
			}
			c.Beliefs[i] = revisedSentence
			c.sortBeliefs()
			c.trimBeliefs()
			return revisedSentence, revBudget, true, true
		}
	}
	stored, changed = c.insertBelief(incoming)
	return stored, budget.Budget{}, changed, false
}

func (c *Concept) insertBelief(s evidence.Sentence) (evidence.Sentence, bool) {
	cap := c.BeliefCap
	if cap <= 0 {
		cap = DefaultBeliefCap
	}
	if len(c.Beliefs) < cap {
		c.Beliefs = append(c.Beliefs, s)
		c.sortBeliefs()
		return s, true
	}
	worst := c.Beliefs[len(c.Beliefs)-1]
	if evidence.Rank(s.Truth) <= evidence.Rank(worst.Truth) {
		return worst, false
	}
	c.Beliefs[len(c.Beliefs)-1] = s
	c.sortBeliefs()
	return s, true
}

func (c *Concept) trimBeliefs() {
	cap := c.BeliefCap
	if cap <= 0 {
		cap = DefaultBeliefCap
	}
	if len(c.Beliefs) > cap {
		c.Beliefs = c.Beliefs[:cap]
	}
}

// AbsorbQuestion appends a pending question, evicting the oldest if the
// question table (FIFO, cap QuestionCap) is full.
func (c *Concept) AbsorbQuestion(q evidence.Sentence) {
	cap := c.QuestionCap
	if cap <= 0 {
		cap = DefaultQuestionCap
	}
	c.Questions = append(c.Questions, q)
	if len(c.Questions) > cap {
		c.Questions = c.Questions[len(c.Questions)-cap:]
	}
}
