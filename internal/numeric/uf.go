// Package numeric implements the bounded unit-interval arithmetic that
// truth and budget values are built from: UF, the fixed-point fraction
// type shared by frequency, confidence, priority, durability and quality.
package numeric

import (
	"fmt"
	"math"
)

// UF is a value constrained to [0, 1], stored at fixed-point resolution
// 1/10000 so that values computed along different paths but representing
// "the same" evidence compare equal.
type UF float64

// Decimals is the number of decimal digits UF values are rounded to.
const Decimals = 4

const scale = 10000.0

// DefaultK is the evidential horizon used by W2C/C2W when the reasoner has
// not overridden it.
const DefaultK = 1.0

// NewUF clamps x into [0,1] and rounds it to Decimals precision.
func NewUF(x float64) UF {
	if math.IsNaN(x) {
		x = 0
	}
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	rounded := math.Round(x*scale) / scale
	if rounded > 1 {
		rounded = 1
	}
	return UF(rounded)
}

// Float64 returns the plain float64 value.
func (u UF) Float64() float64 { return float64(u) }

// String renders the value as it appears in Narsese output, e.g. "0.9000".
func (u UF) String() string {
	return fmt.Sprintf("%.*f", Decimals, float64(u))
}

// Not is the fuzzy negation 1 - x.
func (u UF) Not() UF { return NewUF(1 - float64(u)) }

// And is the fuzzy conjunction x*y.
func (u UF) And(v UF) UF { return NewUF(float64(u) * float64(v)) }

// Or is the fuzzy disjunction 1 - (1-x)(1-y).
func (u UF) Or(v UF) UF { return NewUF(1 - (1-float64(u))*(1-float64(v))) }

// Add is addition clamped to [0,1].
func (u UF) Add(v UF) UF { return NewUF(float64(u) + float64(v)) }

// Mul is plain multiplication.
func (u UF) Mul(v UF) UF { return NewUF(float64(u) * float64(v)) }

// ArithmeticMean of any number of UF values.
func ArithmeticMean(vs ...UF) UF {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += float64(v)
	}
	return NewUF(sum / float64(len(vs)))
}

// GeometricMean of any number of UF values.
func GeometricMean(vs ...UF) UF {
	if len(vs) == 0 {
		return 0
	}
	product := 1.0
	for _, v := range vs {
		product *= float64(v)
	}
	return NewUF(math.Pow(product, 1.0/float64(len(vs))))
}

// Max returns the larger of two UF values.
func Max(a, b UF) UF {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two UF values.
func Min(a, b UF) UF {
	if a < b {
		return a
	}
	return b
}

// W2C converts an amount of positive evidence w into confidence using
// evidential horizon k: c = w / (w + k).
func W2C(w, k float64) UF {
	if w < 0 {
		w = 0
	}
	if k <= 0 {
		k = DefaultK
	}
	return NewUF(w / (w + k))
}

// C2W is the inverse of W2C: recovers the evidence amount w implied by a
// confidence value, w = k*c / (1 - c). Confidence of exactly 1 has no
// finite inverse; callers must special-case it before calling C2W.
func C2W(c UF, k float64) float64 {
	if k <= 0 {
		k = DefaultK
	}
	cf := float64(c)
	if cf >= 1 {
		return math.Inf(1)
	}
	return k * cf / (1 - cf)
}
