package rules

import (
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/dctx"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
)

// StructuralReliance is the reliance constant for discounting the
// confidence of structural conclusions, which rest on definitional
// equivalence rather than independent evidence. No rule in this package
// applies it.
var StructuralReliance = numeric.NewUF(0.9)

// Conversion derives <P --> S> from <S --> P>, single-premise, confidence
// built from the converted truth function (§4.6 structural rules).
func Conversion(ctx *dctx.Context) bool {
	content := ctx.CurrentTask.Sentence.Content
	if ctx.CurrentTask.Sentence.Punctuation != evidence.Judgement || !content.IsStatement() {
		return false
	}
	subj, ok1 := content.Subject()
	pred, ok2 := content.Predicate()
	if !ok1 || !ok2 {
		return false
	}
	converted, ok := makerFor(content.Kind())(pred, subj)
	if !ok {
		return false
	}
	tv := truth.Conversion(ctx.CurrentTask.Sentence.Truth)
	b := budget.CompoundForward(term.Complexity(converted), ctx.CurrentTask.Budget)
	return ctx.SinglePremiseTaskStructural(converted, &tv, b)
}

// Negation derives (--,T) from T and vice versa (double negation is
// collapsed away by term construction, so this never loops).
func Negation(ctx *dctx.Context) bool {
	content := ctx.CurrentTask.Sentence.Content
	negated, ok := term.MakeNegation(content)
	if !ok {
		return false
	}
	var tv *truth.Truth
	if ctx.CurrentTask.Sentence.Punctuation == evidence.Judgement {
		t := truth.Negation(ctx.CurrentTask.Sentence.Truth)
		tv = &t
	}
	b := budget.CompoundForward(term.Complexity(negated), ctx.CurrentTask.Budget)
	return ctx.SinglePremiseTaskStructural(negated, tv, b)
}

// Contraposition derives <(--,P) --> (--,S)> from a judgement <S --> P> of
// any frequency; the result has frequency 0 and a confidence drawn from
// the premise's negative evidence.
func Contraposition(ctx *dctx.Context) bool {
	content := ctx.CurrentTask.Sentence.Content
	if ctx.CurrentTask.Sentence.Punctuation != evidence.Judgement || !content.IsStatement() {
		return false
	}
	subj, ok1 := content.Subject()
	pred, ok2 := content.Predicate()
	if !ok1 || !ok2 {
		return false
	}
	negSubj, ok := term.MakeNegation(subj)
	if !ok {
		return false
	}
	negPred, ok := term.MakeNegation(pred)
	if !ok {
		return false
	}
	result, ok := makerFor(content.Kind())(negPred, negSubj)
	if !ok {
		return false
	}
	tv := truth.Contraposition(ctx.CurrentTask.Sentence.Truth)
	b := budget.CompoundForward(term.Complexity(result), ctx.CurrentTask.Budget)
	return ctx.SinglePremiseTaskStructural(result, &tv, b)
}
