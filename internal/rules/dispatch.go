package rules

import (
	"github.com/narust/reasoner/internal/dctx"
	"github.com/narust/reasoner/internal/link"
)

// Dispatch runs the rule(s) applicable to a fired (task-link, term-link)
// pair, per the §4.6 2-D dispatch table keyed on link type. It mutates ctx
// by appending any derived tasks and reports whether anything fired.
func Dispatch(ctx *dctx.Context, taskLinkType, termLinkType link.Type) bool {
	switch {
	case taskLinkType == link.Self && termLinkType == link.Self:
		return Local(ctx)
	case termLinkType == link.Component || termLinkType == link.CompoundLink,
		termLinkType == link.ComponentStatement || termLinkType == link.CompoundStatement,
		termLinkType == link.ComponentCondition || termLinkType == link.CompoundCondition:
		return fireStatementPair(ctx)
	case termLinkType == link.Transform:
		return Transform(ctx)
	default:
		return false
	}
}

// fireStatementPair tries the syllogistic and structural rule families in
// turn; the first that both applies and clears threshold wins (no global
// ordering across simultaneous rule firings is implied beyond this
// per-pair preference, matching §4.6/§9's note on tie-breaking).
func fireStatementPair(ctx *dctx.Context) bool {
	if ctx.CurrentBelief != nil {
		if Syllogism(ctx) {
			return true
		}
		if Compositional(ctx) {
			return true
		}
		if Local(ctx) {
			return true
		}
	}
	if Conversion(ctx) {
		return true
	}
	if Contraposition(ctx) {
		return true
	}
	return Negation(ctx)
}
