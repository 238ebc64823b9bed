// Package truth implements truth values and the full NAL truth-function
// table: how frequency/confidence pairs combine under each inference rule.
package truth

import "github.com/narust/reasoner/internal/numeric"

// Truth is a (frequency, confidence, analytic) triple. Equality ignores
// the analytic flag.
type Truth struct {
	F        numeric.UF
	C        numeric.UF
	Analytic bool
}

// New constructs a truth value from plain floats, clamping each into [0,1].
func New(f, c float64, analytic bool) Truth {
	return Truth{F: numeric.NewUF(f), C: numeric.NewUF(c), Analytic: analytic}
}

// Equal compares frequency and confidence only, per §3.3.
func (t Truth) Equal(o Truth) bool { return t.F == o.F && t.C == o.C }

// Expectation is c*(f-0.5)+0.5.
func (t Truth) Expectation() float64 {
	return t.C.Float64()*(t.F.Float64()-0.5) + 0.5
}

// PoisonedAnalytic is the result abduction/exemplification/analytic-abduction
// produce when either operand is itself analytic: (0.5, 0, true). The
// analytic flag here is kept true per spec.md's explicit prose even though
// the reference implementation this was ported from sets it false — see
// DESIGN.md's first Open Question decision.
var PoisonedAnalytic = Truth{F: numeric.NewUF(0.5), C: numeric.NewUF(0), Analytic: true}

func w2c(w float64) numeric.UF { return numeric.W2C(w, numeric.DefaultK) }

// Identity returns the operand truth unchanged; used when a rule restates
// content without combining new evidence.
func Identity(t Truth) Truth { return t }

// Conversion swaps subject/predicate evidential weight into a maximal
// frequency belief: f=1, c=w2c(f1*c1).
func Conversion(t Truth) Truth {
	return Truth{F: numeric.NewUF(1), C: w2c(t.F.Float64() * t.C.Float64())}
}

// Negation flips frequency, keeps confidence: f=1-f1, c=c1.
func Negation(t Truth) Truth {
	return Truth{F: t.F.Not(), C: t.C}
}

// Contraposition: f=0, c=w2c((1-f1)*c1).
func Contraposition(t Truth) Truth {
	return Truth{F: numeric.NewUF(0), C: w2c((1 - t.F.Float64()) * t.C.Float64())}
}

// Revision fuses two judgements on the same content from disjoint evidence:
// a weighted average of frequency by evidential weight w=c/(1-c), with
// confidence recovered from the summed weight. Confidence of exactly 1 is
// treated as infinite evidence and short-circuits to plain averaging when
// both operands are infinite, per DESIGN.md's supplemented-feature note.
func Revision(t1, t2 Truth) Truth {
	inf1 := t1.C.Float64() >= 1
	inf2 := t2.C.Float64() >= 1
	switch {
	case inf1 && inf2:
		return Truth{F: numeric.NewUF((t1.F.Float64() + t2.F.Float64()) / 2), C: numeric.NewUF(1)}
	case inf1:
		return Truth{F: t1.F, C: numeric.NewUF(1)}
	case inf2:
		return Truth{F: t2.F, C: numeric.NewUF(1)}
	}
	w1 := numeric.C2W(t1.C, numeric.DefaultK)
	w2 := numeric.C2W(t2.C, numeric.DefaultK)
	w := w1 + w2
	f := (t1.F.Float64()*w1 + t2.F.Float64()*w2) / w
	return Truth{F: numeric.NewUF(f), C: w2c(w)}
}

// Deduction: f=f1*f2, c=c1*c2*f1*f2.
func Deduction(t1, t2 Truth) Truth {
	f := t1.F.Float64() * t2.F.Float64()
	c := t1.C.Float64() * t2.C.Float64() * f
	return Truth{F: numeric.NewUF(f), C: numeric.NewUF(c)}
}

// AnalyticDeduction derives a result marked analytic, scaled by a structural
// reliance constant: f=f1, c=f1*c1*reliance.
func AnalyticDeduction(t1 Truth, reliance numeric.UF) Truth {
	c := t1.F.Float64() * t1.C.Float64() * reliance.Float64()
	return Truth{F: t1.F, C: numeric.NewUF(c), Analytic: true}
}

// Analogy: f=f1*f2, c=c1*c2*f2.
func Analogy(t1, t2 Truth) Truth {
	f := t1.F.Float64() * t2.F.Float64()
	c := t1.C.Float64() * t2.C.Float64() * t2.F.Float64()
	return Truth{F: numeric.NewUF(f), C: numeric.NewUF(c)}
}

// Resemblance: f=f1*f2, c=c1*c2*(f1+f2-f1*f2).
func Resemblance(t1, t2 Truth) Truth {
	f := t1.F.Float64() * t2.F.Float64()
	or := t1.F.Float64() + t2.F.Float64() - t1.F.Float64()*t2.F.Float64()
	c := t1.C.Float64() * t2.C.Float64() * or
	return Truth{F: numeric.NewUF(f), C: numeric.NewUF(c)}
}

// Abduction: f=f1, c=w2c(f2*c1*c2). Poisoned to PoisonedAnalytic if either
// operand is analytic.
func Abduction(t1, t2 Truth) Truth {
	if t1.Analytic || t2.Analytic {
		return PoisonedAnalytic
	}
	c := t2.F.Float64() * t1.C.Float64() * t2.C.Float64()
	return Truth{F: t1.F, C: w2c(c)}
}

// Induction is the symmetric counterpart of Abduction.
func Induction(t1, t2 Truth) Truth { return Abduction(t2, t1) }

// Exemplification: f=1, c=w2c(f1*f2*c1*c2). Poisoned like Abduction.
func Exemplification(t1, t2 Truth) Truth {
	if t1.Analytic || t2.Analytic {
		return PoisonedAnalytic
	}
	c := t1.F.Float64() * t2.F.Float64() * t1.C.Float64() * t2.C.Float64()
	return Truth{F: numeric.NewUF(1), C: w2c(c)}
}

// Comparison: f=f1*f2/(f1+f2-f1*f2) (0 when the denominator is 0),
// c=w2c((f1+f2-f1*f2)*c1*c2).
func Comparison(t1, t2 Truth) Truth {
	or := t1.F.Float64() + t2.F.Float64() - t1.F.Float64()*t2.F.Float64()
	var f float64
	if or != 0 {
		f = t1.F.Float64() * t2.F.Float64() / or
	}
	c := or * t1.C.Float64() * t2.C.Float64()
	return Truth{F: numeric.NewUF(f), C: w2c(c)}
}

// AnalyticAbduction is abduction between an already-analytic operand and a
// plain one, always poisoned (kept distinct from Abduction for callers that
// know statically they are in the analytic branch of a rule table).
func AnalyticAbduction(t1, t2 Truth) Truth { return PoisonedAnalytic }

// Union: f=or(f1,f2), c=c1*c2.
func Union(t1, t2 Truth) Truth {
	return Truth{F: t1.F.Or(t2.F), C: numeric.NewUF(t1.C.Float64() * t2.C.Float64())}
}

// Intersection: f=and(f1,f2), c=c1*c2.
func Intersection(t1, t2 Truth) Truth {
	return Truth{F: t1.F.And(t2.F), C: numeric.NewUF(t1.C.Float64() * t2.C.Float64())}
}

// ReduceDisjunction: analytic-deduction of intersection(t1, negation(t2)).
func ReduceDisjunction(t1, t2 Truth, reliance numeric.UF) Truth {
	return AnalyticDeduction(Intersection(t1, Negation(t2)), reliance)
}

// ReduceConjunction: negation of analytic-deduction of intersection(negation(t1), t2).
func ReduceConjunction(t1, t2 Truth, reliance numeric.UF) Truth {
	return Negation(AnalyticDeduction(Intersection(Negation(t1), t2), reliance))
}

// AnonymousAnalogy: analogy(t2, (f1, w2c(c1))).
func AnonymousAnalogy(t1, t2 Truth) Truth {
	temp := Truth{F: t1.F, C: w2c(t1.C.Float64())}
	return Analogy(t2, temp)
}

// SingleEvidence is w2c(1), the constant desire-weak discounts confidence by.
var SingleEvidence = w2c(1)

// DesireStrong derives a desire value from a belief and a goal-implication
// truth, sharing Deduction's shape.
func DesireStrong(belief, implication Truth) Truth { return Deduction(belief, implication) }

// DesireWeak is DesireStrong with confidence additionally discounted by the
// single-evidence constant, for derivations resting on one evidential step.
func DesireWeak(belief, implication Truth) Truth {
	d := DesireStrong(belief, implication)
	return Truth{F: d.F, C: numeric.NewUF(d.C.Float64() * SingleEvidence.Float64())}
}

// DesireDed shares Deduction's shape (desire propagated forward through an
// implication).
func DesireDed(belief, implication Truth) Truth { return Deduction(belief, implication) }

// DesireInd shares Abduction's shape (desire propagated backward through an
// implication).
func DesireInd(belief, implication Truth) Truth { return Abduction(belief, implication) }
