// Package reasoner drives the work cycle: it owns memory, the task buffer
// and the system clocks, and wires direct processing, concept firing and
// derivation absorption together into the step a CYC command repeats.
package reasoner

import (
	"fmt"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/concept"
	"github.com/narust/reasoner/internal/dctx"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/link"
	"github.com/narust/reasoner/internal/memory"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/rules"
	"github.com/narust/reasoner/internal/taskbuf"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
)

// Parameters are the tunable constants that govern a Reasoner's behavior.
type Parameters struct {
	ConceptCapacity     int
	NovelTaskCapacity   int
	BudgetThreshold     numeric.UF
	AdmissionThreshold  float64 // judgement expectation floor for novel-bag admission
	MaxStampLength      int
	TermLinksPerCycle   int // K, the number of term-links drawn per concept firing
	Volume              int // 0-100, governs which derivations are reported via OUT
	DefaultJudgementF   float64
	DefaultJudgementC   float64
	DefaultTaskPriority float64
}

// Default returns the parameter set used when none is supplied.
func Default() Parameters {
	return Parameters{
		ConceptCapacity:     10000,
		NovelTaskCapacity:   1000,
		BudgetThreshold:     numeric.NewUF(0.01),
		AdmissionThreshold:  0.6,
		MaxStampLength:      evidence.DefaultMaxLength,
		TermLinksPerCycle:   3,
		Volume:              100,
		DefaultJudgementF:   1.0,
		DefaultJudgementC:   0.9,
		DefaultTaskPriority: 0.8,
	}
}

// Kind tags an output record's role (§6.3).
type Kind string

const (
	In      Kind = "IN"
	Out     Kind = "OUT"
	Answer  Kind = "ANSWER"
	Comment Kind = "COMMENT"
	Info    Kind = "INFO"
	Error   Kind = "ERROR"
)

// Output is one line of the reasoner's response stream.
type Output struct {
	Kind Kind
	Text string
}

func out(k Kind, format string, args ...interface{}) Output {
	return Output{Kind: k, Text: fmt.Sprintf(format, args...)}
}

// Reasoner is the single owner of memory, the task buffer and the clocks;
// per §9's design note there is exactly one of these per running system.
type Reasoner struct {
	Params Parameters
	Memory *memory.Memory
	Buffer *taskbuf.Buffer

	clock       int64
	stampSerial int64
	taskSerial  int64
}

// New constructs a fresh Reasoner.
func New(params Parameters) *Reasoner {
	return &Reasoner{
		Params: params,
		Memory: memory.New(params.ConceptCapacity),
		Buffer: taskbuf.New(params.NovelTaskCapacity),
	}
}

// Now returns the current system clock value.
func (r *Reasoner) Now() int64 { return r.clock }

func (r *Reasoner) nextStampSerial() int64 { r.stampSerial++; return r.stampSerial }
func (r *Reasoner) nextTaskSerial() int64  { r.taskSerial++; return r.taskSerial }

// SerialCounters returns the current stamp and task serial counters, for
// inclusion in a saved status snapshot.
func (r *Reasoner) SerialCounters() (stampSerial, taskSerial int64) {
	return r.stampSerial, r.taskSerial
}

// ReplaceState atomically swaps in a restored memory, buffer and clock
// triple — used by internal/status when a LOA command installs a loaded
// snapshot.
func (r *Reasoner) ReplaceState(mem *memory.Memory, buf *taskbuf.Buffer, clock, stampSerial, taskSerial int64) {
	r.Memory = mem
	r.Buffer = buf
	r.clock = clock
	r.stampSerial = stampSerial
	r.taskSerial = taskSerial
}

// InputSentence is the content a narsese parse (or a LOA-restored task)
// hands the reasoner to turn into a freshly stamped input task.
type InputSentence struct {
	Content     term.Term
	Punctuation evidence.Punctuation
	Truth       *truth.Truth // nil for questions and truth-less judgements
}

// Reset clears all state and resets the clocks, as required by the RES
// command (§6.2; RES additionally reseeds the stamp/task serial counters,
// a supplemented behavior recorded in DESIGN.md).
func (r *Reasoner) Reset() {
	r.Memory = memory.New(r.Params.ConceptCapacity)
	r.Buffer = taskbuf.New(r.Params.NovelTaskCapacity)
	r.clock = 0
	r.stampSerial = 0
	r.taskSerial = 0
}

// Submit stamps in as a fresh input task, reports it with an IN output and
// queues it for direct processing.
func (r *Reasoner) Submit(in InputSentence) Output {
	stamp := evidence.NewStamp(r.nextStampSerial(), r.clock)

	var sentence evidence.Sentence
	var priority float64
	switch in.Punctuation {
	case evidence.Judgement:
		tv := in.Truth
		if tv == nil {
			t := truth.New(r.Params.DefaultJudgementF, r.Params.DefaultJudgementC, false)
			tv = &t
		}
		sentence = evidence.NewJudgement(in.Content, *tv, stamp, true)
		priority = tv.Expectation()
	case evidence.Question:
		sentence = evidence.NewQuestion(in.Content, stamp, true)
		priority = r.Params.DefaultTaskPriority
	}

	b := budget.New(priority, 0.9, priority)
	task := evidence.New(sentence, b, r.clock, r.nextTaskSerial(), nil, nil)
	r.Buffer.Push(task)
	return out(In, "%s", sentence.String())
}

// Cycle runs one work-cycle step: direct-process one task from the buffer,
// then fire one concept, absorbing whatever it derives (§4.7).
func (r *Reasoner) Cycle() []Output {
	r.clock++
	var outputs []Output

	if task, ok := r.Buffer.PopOrPromote(); ok {
		outputs = append(outputs, r.directProcess(task)...)
	}
	outputs = append(outputs, r.fireConcept()...)
	return outputs
}

func (r *Reasoner) directProcess(t *evidence.Task) []Output {
	var outputs []Output
	c, created, evicted := r.Memory.LookupOrCreate(t.Sentence.Content, t.Budget)
	if evicted != nil {
		outputs = append(outputs, out(Comment, "Evicted: %s", evicted.Key()))
	}
	if created {
		outputs = append(outputs, out(Comment, "Insert: %s", c.Key()))
	}
	r.Memory.Activate(c, t.Budget)

	switch t.Sentence.Punctuation {
	case evidence.Judgement:
		stored, revBudget, changed, revised := c.AbsorbBelief(t.Sentence, r.Params.BudgetThreshold, r.Params.MaxStampLength)
		if !changed {
			outputs = append(outputs, out(Comment, "Ignored: %s", t.Sentence.String()))
			break
		}
		if revised {
			revCtx := dctx.New(t, nil, c, r.clock, r.Params.MaxStampLength, r.Params.BudgetThreshold)
			revCtx.DoublePremiseTaskRevision(stored.Content, stored.Truth, revBudget, stored.Stamp)
			outputs = append(outputs, r.reportDerivations(revCtx)...)
		}
		for i := range c.Questions {
			accepted, quality := concept.TrySolution(&c.Questions[i], stored)
			if accepted && c.Questions[i].WasInput {
				outputs = append(outputs, out(Answer, "%s", stored.String()))
			}
			_ = quality
		}
	case evidence.Question:
		if best, found := c.FindAnswer(t.Sentence); found {
			q := t.Sentence
			accepted, _ := concept.TrySolution(&q, best)
			if accepted {
				outputs = append(outputs, out(Answer, "%s", best.String()))
			}
			c.AbsorbQuestion(q)
		} else {
			c.AbsorbQuestion(t.Sentence)
		}
	}

	selfLink, subLinks := c.BuildLinksForTask(t, r.Params.BudgetThreshold)
	_ = selfLink
	for _, sub := range subLinks {
		target, created, evicted := r.Memory.LookupOrCreate(sub.TargetTerm, sub.TaskLink.Budget)
		if evicted != nil {
			outputs = append(outputs, out(Comment, "Evicted: %s", evicted.Key()))
		}
		if created {
			outputs = append(outputs, out(Comment, "Insert: %s", target.Key()))
		}
		target.TaskLinks.PutIn(sub.TaskLink)

		// The component concept also gets an outward term-link back to this
		// compound, so a concept shared by two statements (e.g. B in both
		// <A-->B> and <B-->C>) can mediate a syllogism between them once
		// both compounds have been processed (§4.5's outward linking).
		outward := link.TermLink{
			Template: link.BuildOutward(t.Sentence.Content, sub.TaskLink.Indices[0]),
			Budget:   sub.TaskLink.Budget,
		}
		target.TermLinks.PutIn(outward)
	}
	return outputs
}

func (r *Reasoner) fireConcept() []Output {
	var outputs []Output
	c, ok := r.Memory.FireCandidate()
	if !ok {
		return outputs
	}
	tl, ok := c.TaskLinks.TakeOut()
	if !ok {
		return outputs
	}
	defer c.TaskLinks.PutBack(tl)

	for i := 0; i < r.Params.TermLinksPerCycle; i++ {
		termLink, ok := c.TermLinks.TakeOut()
		if !ok {
			break
		}
		if tl.IsNovel(termLink.Key()) {
			outputs = append(outputs, r.fireLinkPair(c, tl, termLink)...)
			tl.RecordNovelty(termLink.Key())
		}
		c.TermLinks.PutBack(termLink)
	}
	return outputs
}

func (r *Reasoner) fireLinkPair(c *concept.Concept, tl *link.TaskLink, termLink link.TermLink) []Output {
	var outputs []Output
	var belief *evidence.Sentence
	if target, ok := r.Memory.Lookup(termLink.Template.Target); ok && len(target.Beliefs) > 0 {
		belief = &target.Beliefs[0]
	}

	ctx := dctx.New(tl.Task, belief, c, r.clock, r.Params.MaxStampLength, r.Params.BudgetThreshold)
	rules.Dispatch(ctx, tl.Type, termLink.Template.Type)

	// A question task-link matched against a belief term-link (Local, via
	// unification when the content differs only by query variable) derives
	// its answer as an ordinary forward judgement task rather than mutating
	// any concept's question table directly, so the match is reported here
	// rather than waiting for the derived task to recirculate through
	// directProcess at its own concept.
	if tl.Task.Sentence.Punctuation == evidence.Question {
		for _, derived := range ctx.NewTasks {
			accepted, _ := concept.TrySolution(&tl.Task.Sentence, derived.Sentence)
			if accepted && tl.Task.Sentence.WasInput {
				outputs = append(outputs, out(Answer, "%s", derived.Sentence.String()))
			}
		}
	}

	outputs = append(outputs, r.reportDerivations(ctx)...)
	return outputs
}

// reportDerivations turns one dctx.Context's accumulated results into
// output records: a COMMENT for every below-threshold drop, a COMMENT plus
// a volume-gated OUT for every kept derivation, which is also pushed back
// onto the task buffer for further processing.
func (r *Reasoner) reportDerivations(ctx *dctx.Context) []Output {
	var outputs []Output
	for _, dropped := range ctx.Dropped {
		outputs = append(outputs, out(Comment, "Ignored: %s", dropped.Sentence.String()))
	}
	for _, derived := range ctx.NewTasks {
		outputs = append(outputs, out(Comment, "Derived: %s", derived.Sentence.String()))
		silence := float64(100-r.Params.Volume) / 100.0
		if derived.Budget.Summary().Float64() > silence {
			outputs = append(outputs, out(Out, "%s", derived.Sentence.String()))
		}
		r.Buffer.Push(derived)
	}
	return outputs
}
