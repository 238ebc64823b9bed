// Package budget implements resource-control budget values and the budget
// functions that combine and decay them across the work cycle.
package budget

import (
	"math"

	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/truth"
)

// Budget is a (priority, durability, quality) resource handle.
type Budget struct {
	P numeric.UF
	D numeric.UF
	Q numeric.UF
}

// New clamps three plain floats into a Budget.
func New(p, d, q float64) Budget {
	return Budget{P: numeric.NewUF(p), D: numeric.NewUF(d), Q: numeric.NewUF(q)}
}

// Summary is the geometric mean of priority, durability and quality.
func (b Budget) Summary() numeric.UF {
	return numeric.GeometricMean(b.P, b.D, b.Q)
}

// AboveThreshold reports whether the budget's summary clears a threshold.
func (b Budget) AboveThreshold(threshold numeric.UF) bool {
	return b.Summary() >= threshold
}

// Merge combines two budgets component-wise by max.
func Merge(a, b Budget) Budget {
	return Budget{P: numeric.Max(a.P, b.P), D: numeric.Max(a.D, b.D), Q: numeric.Max(a.Q, b.Q)}
}

// DistributeAmongLinks computes the per-link priority when a budget is
// spread across n freshly built links: priority = parent.P/sqrt(n);
// durability and quality carry over unchanged.
func DistributeAmongLinks(parent Budget, n int) Budget {
	if n < 1 {
		n = 1
	}
	p := parent.P.Float64() / math.Sqrt(float64(n))
	return Budget{P: numeric.NewUF(p), D: parent.D, Q: parent.Q}
}

// Activate raises a concept's budget on being selected by an incoming
// task: priority becomes the fuzzy-or of the two, durability the
// arithmetic mean, quality is untouched.
func Activate(concept, task Budget) Budget {
	return Budget{
		P: concept.P.Or(task.P),
		D: numeric.ArithmeticMean(concept.D, task.D),
		Q: concept.Q,
	}
}

// Forget decays priority toward quality*relativeThreshold by a factor
// dependent on durability, so that high-durability items resist forgetting.
// See DESIGN.md's second Open Question decision for why durability (not
// priority) is the exponent base.
func Forget(b Budget, forgetRate, relativeThreshold float64) Budget {
	if forgetRate <= 0 {
		forgetRate = 1
	}
	target := b.Q.Float64() * relativeThreshold
	d := b.D.Float64()
	if d <= 0 {
		d = 1e-6
	}
	exponent := 1.0 / (forgetRate * d)
	decay := math.Pow(d, exponent)
	newP := target + (b.P.Float64()-target)*decay
	return Budget{P: numeric.NewUF(newP), D: b.D, Q: b.Q}
}

// BudgetInference derives the budget for a newly derived task: priority is
// the fuzzy-or of the task-link's priority and the result's quality, scaled
// down by the new term's structural complexity for durability and quality.
// If beliefLink is non-nil, its priority and durability are nudged upward
// by the same activation value (the "target-activation" step).
func BudgetInference(quality numeric.UF, complexity int, taskLink Budget, beliefLink *Budget) Budget {
	if complexity < 1 {
		complexity = 1
	}
	activation := taskLink.P.Or(quality)
	d := numeric.NewUF(activation.Float64() / float64(complexity))
	q := numeric.NewUF(quality.Float64() / float64(complexity))
	if beliefLink != nil {
		beliefLink.P = beliefLink.P.Or(activation)
		beliefLink.D = beliefLink.D.Or(activation)
	}
	return Budget{P: activation, D: d, Q: q}
}

// Revise computes the priority of a revised belief from how much the
// revision changed the expectation value, and — when feedback links are
// supplied — raises their priority by fuzzy-or with that delta so that links
// whose revisions mattered are favored for future firing.
func Revise(old, result truth.Truth, baseline Budget, taskLink, termLink *Budget) Budget {
	delta := math.Abs(result.Expectation() - old.Expectation())
	p := numeric.NewUF(delta)
	if taskLink != nil {
		taskLink.P = taskLink.P.Or(p)
	}
	if termLink != nil {
		termLink.P = termLink.P.Or(p)
	}
	return Budget{P: p, D: baseline.D, Q: baseline.Q}
}

// CompoundForward is the prebuilt budget combination used by structural and
// syllogistic rules deriving in the forward direction.
func CompoundForward(complexity int, taskLink Budget) Budget {
	return BudgetInference(taskLink.Q, complexity, taskLink, nil)
}

// CompoundBackward is the backward-direction counterpart, driven by the
// belief link rather than the task link.
func CompoundBackward(complexity int, beliefLink Budget) Budget {
	return BudgetInference(beliefLink.Q, complexity, beliefLink, nil)
}

// CompoundBackwardWeak is CompoundBackward with priority additionally
// discounted by the single-evidence constant, for weaker backward
// derivations (e.g. deriving a question rather than a judgement).
func CompoundBackwardWeak(complexity int, beliefLink Budget) Budget {
	b := CompoundBackward(complexity, beliefLink)
	b.P = numeric.NewUF(b.P.Float64() * truth.SingleEvidence.Float64())
	return b
}
