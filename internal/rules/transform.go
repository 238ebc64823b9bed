package rules

import (
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/dctx"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
)

// Transform rewrites a product/image pair into the other shape to expose a
// different argument as the subject: <(*,A,B) --> R> becomes
// <A --> (/,R,_,B)>, truth carried unchanged since both sides state the
// same relation (§4.6's Transform-typed term-link rule). Only the
// product-to-image direction is rewritten; a statement whose sides hold an
// image and no product is left as it is.
//
// The budget given to the rewritten task is CompoundForward over the
// current task's own budget, since a Transform-typed term-link has no
// paired belief to draw budget from — see DESIGN.md's third Open Question
// decision.
func Transform(ctx *dctx.Context) bool {
	content := ctx.CurrentTask.Sentence.Content
	if !content.IsStatement() {
		return false
	}
	subj, ok1 := content.Subject()
	pred, ok2 := content.Predicate()
	if !ok1 || !ok2 {
		return false
	}

	rewritten, ok := rewriteProductImage(subj, pred, content.Kind())
	if !ok {
		rewritten, ok = rewriteProductImage(pred, subj, content.Kind())
		if !ok {
			return false
		}
	}

	var tv *truth.Truth
	if ctx.CurrentTask.Sentence.Punctuation == evidence.Judgement {
		t := truth.Identity(ctx.CurrentTask.Sentence.Truth)
		tv = &t
	}
	b := budget.CompoundForward(term.Complexity(rewritten), ctx.CurrentTask.Budget)
	return ctx.SinglePremiseTaskStructural(rewritten, tv, b)
}

// rewriteProductImage tries to rewrite a <product --> other> or
// <other --> product> pair into the equivalent image form, placing other
// in the image's relation slot, a placeholder where the product's first
// component sat, and the remaining components after it.
func rewriteProductImage(maybeProduct, other term.Term, kind term.Kind) (term.Term, bool) {
	if maybeProduct.Kind() != term.KindProduct || maybeProduct.Size() < 1 {
		return term.Term{}, false
	}
	components := maybeProduct.Components()
	if len(components) < 1 {
		return term.Term{}, false
	}
	extracted := components[0]
	rest := append([]term.Term{other, term.Empty()}, components[1:]...)
	image, ok := term.MakeImageExt(rest, 1)
	if !ok {
		return term.Term{}, false
	}
	return makerFor(kind)(extracted, image)
}
