package rules

import (
	"github.com/narust/reasoner/internal/dctx"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
)

// Compositional derives intensional compound conclusions from two
// beliefs sharing a predicate: <S1-->P>,<S2-->P> license both
// <[S1,S2]-->P> (disjunctive evidence, truth.Union) and
// <(|,S1,S2)-->P> (conjunctive evidence, truth.Intersection), per §4.6's
// compositional rules. Only the shared-predicate direction is implemented;
// the shared-subject mirror is symmetric and omitted to keep the derived-
// task volume bounded. Only fires for a judgement task, for the same
// reason as Syllogism.
func Compositional(ctx *dctx.Context) bool {
	if ctx.CurrentBelief == nil {
		return false
	}
	if ctx.CurrentTask.Sentence.Punctuation != evidence.Judgement {
		return false
	}
	taskContent := ctx.CurrentTask.Sentence.Content
	belContent := ctx.CurrentBelief.Content
	if !taskContent.IsStatement() || !belContent.IsStatement() {
		return false
	}
	taskSubj, ok1 := taskContent.Subject()
	taskPred, ok2 := taskContent.Predicate()
	belSubj, ok3 := belContent.Subject()
	belPred, ok4 := belContent.Predicate()
	if !ok1 || !ok2 || !ok3 || !ok4 || !taskPred.Equal(belPred) || taskSubj.Equal(belSubj) {
		return false
	}

	taskTV := ctx.CurrentTask.Sentence.Truth
	belTV := ctx.CurrentBelief.Truth
	tb := ctx.CurrentTask.Budget
	make := makerFor(taskContent.Kind())

	fired := false
	if union, ok := term.MakeSetInt([]term.Term{taskSubj, belSubj}); ok {
		if conclude(ctx, make, union, taskPred, truth.Union(taskTV, belTV), tb) {
			fired = true
		}
	}
	if inter, ok := term.MakeIntersectInt([]term.Term{taskSubj, belSubj}); ok {
		if conclude(ctx, make, inter, taskPred, truth.Intersection(taskTV, belTV), tb) {
			fired = true
		}
	}
	return fired
}
