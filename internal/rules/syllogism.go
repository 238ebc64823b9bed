// Package rules implements the inference rule tables: syllogistic,
// structural, compositional and transform derivations fired when a
// concept's task-link and term-link are matched up during a work cycle.
package rules

import (
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/dctx"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
)

// Syllogism fires a two-premise inference between the current task and
// current belief when both are Inheritance or Similarity statements
// sharing exactly one subject/predicate term, dispatching on which slot
// the shared term occupies and on which pair of copulas is involved
// (§4.6's figure-determined dedup/induction/abduction/exemplification/
// comparison table for asymmetric/asymmetric pairs, analogy for
// asymmetric/symmetric, resemblance for symmetric/symmetric). Only fires
// for a judgement task; a query-variable question sharing a term with the
// belief is left for Local to answer.
func Syllogism(ctx *dctx.Context) bool {
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
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}

	taskSym := taskContent.Kind() == term.KindSimilarity || taskContent.Kind() == term.KindEquivalence
	belSym := belContent.Kind() == term.KindSimilarity || belContent.Kind() == term.KindEquivalence
	makeStatement := makerFor(taskContent.Kind())

	taskTV := ctx.CurrentTask.Sentence.Truth
	belTV := ctx.CurrentBelief.Truth
	tb := ctx.CurrentTask.Budget

	switch {
	case taskPred.Equal(belSubj) && !taskSubj.Equal(belPred):
		// S-->M, M-->P => S-->P (deduction), or analogy/resemblance for symmetric pairs.
		return conclude(ctx, makeStatement, taskSubj, belPred, chainTruth(taskTV, belTV, taskSym, belSym), tb)
	case taskSubj.Equal(belPred) && !taskPred.Equal(belSubj):
		// M-->P, S-->M => S-->P, premises swapped relative to the case above.
		return conclude(ctx, makeStatement, belSubj, taskPred, chainTruth(belTV, taskTV, belSym, taskSym), tb)
	case taskSubj.Equal(belSubj) && !taskPred.Equal(belPred):
		// M-->P, M-->S => shared subject: induction (or resemblance/comparison for symmetric).
		return conclude(ctx, makeStatement, taskPred, belPred, sharedTruth(taskTV, belTV, taskSym, belSym, true), tb)
	case taskPred.Equal(belPred) && !taskSubj.Equal(belSubj):
		// S-->M, P-->M => shared predicate: abduction (or resemblance/comparison for symmetric).
		return conclude(ctx, makeStatement, taskSubj, belSubj, sharedTruth(taskTV, belTV, taskSym, belSym, false), tb)
	}
	return false
}

func makerFor(k term.Kind) func(term.Term, term.Term) (term.Term, bool) {
	if k == term.KindSimilarity || k == term.KindEquivalence {
		return term.MakeSimilarity
	}
	return term.MakeInheritance
}

// chainTruth picks the truth function for the subject-shares-predicate
// ("chained") figure: deduction for two asymmetric copulas, analogy when
// exactly one side is symmetric, resemblance when both are.
func chainTruth(t1, t2 truth.Truth, sym1, sym2 bool) truth.Truth {
	switch {
	case sym1 && sym2:
		return truth.Resemblance(t1, t2)
	case sym1 || sym2:
		return truth.Analogy(t1, t2)
	default:
		return truth.Deduction(t1, t2)
	}
}

// sharedTruth picks the truth function for the shared-subject (induction,
// viaSubject=true) or shared-predicate (abduction, viaSubject=false)
// figure. Symmetric copulas fold both into resemblance/comparison.
func sharedTruth(t1, t2 truth.Truth, sym1, sym2, viaSubject bool) truth.Truth {
	if sym1 && sym2 {
		return truth.Resemblance(t1, t2)
	}
	if sym1 || sym2 {
		return truth.Comparison(t1, t2)
	}
	if viaSubject {
		return truth.Induction(t1, t2)
	}
	return truth.Abduction(t1, t2)
}

func conclude(ctx *dctx.Context, make func(term.Term, term.Term) (term.Term, bool), subj, pred term.Term, tv truth.Truth, taskBudget budget.Budget) bool {
	content, ok := make(subj, pred)
	if !ok {
		return false
	}
	b := budget.CompoundForward(term.Complexity(content), taskBudget)
	return ctx.DoublePremiseTask(content, &tv, b)
}
