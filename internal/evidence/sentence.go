package evidence

import (
	"fmt"

	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
)

// Punctuation tags which of the two sentence shapes a Sentence carries.
type Punctuation int

const (
	// Judgement is a statement of belief: content plus truth plus stamp.
	Judgement Punctuation = iota
	// Question asks for the content's truth, answered by search.
	Question
)

func (p Punctuation) mark() string {
	if p == Question {
		return "?"
	}
	return "."
}

// Sentence is a tagged union over Judgement and Question, factoring the
// shared content/stamp fields into one value per §9's "inheritance of
// sentence types" design note.
type Sentence struct {
	Content     term.Term
	Punctuation Punctuation
	Stamp       Stamp

	// Judgement-only fields.
	Truth     truth.Truth
	Revisable bool

	// Question-only fields.
	BestSolution *Sentence
	WasInput     bool
}

// NewJudgement builds a judgement sentence.
func NewJudgement(content term.Term, tv truth.Truth, stamp Stamp, revisable bool) Sentence {
	return Sentence{Content: content, Punctuation: Judgement, Stamp: stamp, Truth: tv, Revisable: revisable}
}

// NewQuestion builds a question sentence.
func NewQuestion(content term.Term, stamp Stamp, wasInput bool) Sentence {
	return Sentence{Content: content, Punctuation: Question, Stamp: stamp, WasInput: wasInput}
}

// Key is the bag/map key for this sentence: content, punctuation, and for
// judgements a brief truth suffix so distinct-evidence judgements on the
// same content can still be told apart when needed.
func (s Sentence) Key() string {
	if s.Punctuation == Judgement {
		return fmt.Sprintf("%s%s %s", s.Content.Key(), s.Punctuation.mark(), briefTruth(s.Truth))
	}
	return s.Content.Key() + s.Punctuation.mark()
}

func briefTruth(t truth.Truth) string {
	return fmt.Sprintf("%%%s;%s%%", t.F.String(), t.C.String())
}

// String renders the sentence the way it appears in IN/OUT/ANSWER output.
func (s Sentence) String() string {
	if s.Punctuation == Judgement {
		return s.Content.String() + s.Punctuation.mark() + " " + briefTruth(s.Truth)
	}
	return s.Content.String() + s.Punctuation.mark()
}

// Revisability reports whether two judgement sentences may be revised
// together: same content, both individually revisable, and disjoint
// evidential bases.
func Revisability(a, b Sentence) bool {
	if a.Punctuation != Judgement || b.Punctuation != Judgement {
		return false
	}
	if !a.Content.Equal(b.Content) {
		return false
	}
	if !a.Revisable || !b.Revisable {
		return false
	}
	return !a.Stamp.Overlaps(b.Stamp)
}

// Rank is the belief-table ordering score: higher is kept. Defined as
// confidence*(1 - |f-0.5|*2): the score grows with confidence and is
// highest at f=0.5, falling to 0 at f=0 and f=1.
func Rank(t truth.Truth) float64 {
	f := t.F.Float64()
	dist := f - 0.5
	if dist < 0 {
		dist = -dist
	}
	return t.C.Float64() * (1 - dist*2)
}
