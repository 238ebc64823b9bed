package rules

import (
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/dctx"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/unify"
)

// Local fires when the task-link and term-link both point at matching
// content: a question matched by a candidate belief yields an activated
// answer task. Matching is either exact content equality (the common case,
// when task-link and term-link both point at the same concept) or, when
// the question's content carries query variables, a successful
// query-variable unification against the belief's content (the case that
// lets a question like <?1 --> B>? be answered by a belief <A --> B> held
// in a different concept, reached via that concept's term-link). A
// judgement matched by an equal-content judgement is left to the concept's
// own AbsorbBelief revision rather than re-derived here.
func Local(ctx *dctx.Context) bool {
	if ctx.CurrentBelief == nil {
		return false
	}
	task := ctx.CurrentTask.Sentence
	if task.Punctuation != evidence.Question {
		return false
	}
	if !task.Content.Equal(ctx.CurrentBelief.Content) {
		if !unify.HasUnificationQ(task.Content, ctx.CurrentBelief.Content, ctx.Time) {
			return false
		}
	}
	quality := SolutionQuality(task.Content, *ctx.CurrentBelief)
	complexity := term.Complexity(ctx.CurrentBelief.Content)
	b := budget.CompoundBackward(complexity, ctx.CurrentTask.Budget)
	b.Q = b.Q.Or(numeric.NewUF(quality))

	answer := evidence.NewJudgement(ctx.CurrentBelief.Content, ctx.CurrentBelief.Truth, ctx.CurrentBelief.Stamp, ctx.CurrentBelief.Revisable)
	answerTask := evidence.New(answer, b, ctx.Time, ctx.Time, ctx.CurrentTask, ctx.CurrentBelief)
	return ctx.DerivedTask(answerTask)
}

// SolutionQuality mirrors concept.SolutionQuality for a problem that is
// known to exist, kept local to avoid an import cycle between rules and
// concept (concept does not need to know about the rule table).
func SolutionQuality(problem term.Term, solution evidence.Sentence) float64 {
	if len(term.CollectVariables(problem, term.KindVarQuery)) > 0 {
		c := term.Complexity(solution.Content)
		if c < 1 {
			c = 1
		}
		return solution.Truth.Expectation() / float64(c)
	}
	return solution.Truth.C.Float64()
}
