// Package dctx implements the per-cycle derivation context: the scratchpad
// holding the current task, belief and links a rule fires against, plus
// the shared "derive a task from this" final steps every rule delegates
// to instead of constructing tasks by hand.
package dctx

import (
	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/concept"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/link"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
)

// Context is rebuilt for each concept firing (and for direct processing,
// with CurrentConcept/links left nil). Rules read CurrentTask/CurrentBelief
// and call the DoublePremiseTask*/SinglePremiseTask* helpers to emit
// derived tasks rather than building evidence.Task values themselves.
type Context struct {
	CurrentTask    *evidence.Task
	CurrentBelief  *evidence.Sentence
	CurrentConcept *concept.Concept
	CurrentTaskLink *link.TaskLink
	CurrentTermLink *link.TermLink

	Time           int64
	MaxStampLength int
	Threshold      numeric.UF

	NewTasks []*evidence.Task
	Dropped  []*evidence.Task // below-threshold derivations, kept for COMMENT reporting
}

// New creates a context for one concept firing or direct-processing step.
func New(task *evidence.Task, belief *evidence.Sentence, c *concept.Concept, now int64, maxStampLength int, threshold numeric.UF) *Context {
	return &Context{
		CurrentTask:    task,
		CurrentBelief:  belief,
		CurrentConcept: c,
		Time:           now,
		MaxStampLength: maxStampLength,
		Threshold:      threshold,
	}
}

// NewStampSingle produces the stamp for a single-premise derivation: the
// current task's stamp, or the current belief's when answering a question
// that needs the belief's evidential base.
func (ctx *Context) NewStampSingle() evidence.Stamp {
	if ctx.CurrentTask.Sentence.Punctuation == evidence.Judgement || ctx.CurrentBelief == nil {
		return ctx.CurrentTask.Sentence.Stamp
	}
	return ctx.CurrentBelief.Stamp
}

// NewStampDouble merges the current task's and current belief's stamps.
// Reports false if there is no current belief to merge with.
func (ctx *Context) NewStampDouble() (evidence.Stamp, bool) {
	if ctx.CurrentBelief == nil {
		return evidence.Stamp{}, false
	}
	return evidence.Merge(ctx.CurrentTask.Sentence.Stamp, ctx.CurrentBelief.Stamp, ctx.MaxStampLength), true
}

// DerivedTask records a fully built task as a derivation result if its
// budget clears threshold, otherwise records it as dropped for reporting.
// Returns whether it was kept.
func (ctx *Context) DerivedTask(t *evidence.Task) bool {
	if !t.Budget.AboveThreshold(ctx.Threshold) {
		ctx.Dropped = append(ctx.Dropped, t)
		return false
	}
	ctx.NewTasks = append(ctx.NewTasks, t)
	return true
}

// DoublePremiseTask builds and records a derived task from both current
// task and current belief, taking its punctuation from the current task
// and marking the result revisable.
func (ctx *Context) DoublePremiseTask(newContent term.Term, newTruth *truth.Truth, newBudget budget.Budget) bool {
	stamp, ok := ctx.NewStampDouble()
	if !ok {
		return false
	}
	return ctx.buildAndDerive(ctx.CurrentTask, newContent, ctx.CurrentTask.Sentence.Punctuation, newTruth, true, newBudget, stamp, ctx.CurrentBelief)
}

// DoublePremiseTaskNotRevisable is DoublePremiseTask but marks the result
// unrevisable, so its conclusion is never merged by revision. No rule in
// internal/rules calls it.
func (ctx *Context) DoublePremiseTaskNotRevisable(newContent term.Term, newTruth *truth.Truth, newBudget budget.Budget) bool {
	stamp, ok := ctx.NewStampDouble()
	if !ok {
		return false
	}
	return ctx.buildAndDerive(ctx.CurrentTask, newContent, ctx.CurrentTask.Sentence.Punctuation, newTruth, false, newBudget, stamp, ctx.CurrentBelief)
}

// DoublePremiseTaskRevision builds a revision-rule conclusion: no parent
// belief is recorded since the result summarizes both inputs.
func (ctx *Context) DoublePremiseTaskRevision(newContent term.Term, newTruth truth.Truth, newBudget budget.Budget, newStamp evidence.Stamp) bool {
	return ctx.buildAndDerive(ctx.CurrentTask, newContent, ctx.CurrentTask.Sentence.Punctuation, &newTruth, true, newBudget, newStamp, nil)
}

// SinglePremiseTaskStructural builds a structural/transform-rule
// conclusion from the current task alone, aborting if it would just
// reproduce the task's own parent (avoiding circular structural chains).
func (ctx *Context) SinglePremiseTaskStructural(newContent term.Term, newTruth *truth.Truth, newBudget budget.Budget) bool {
	if parent := ctx.CurrentTask.Parent; parent != nil && parent.Sentence.Content.Equal(newContent) {
		return false
	}
	stamp := ctx.NewStampSingle()
	revisable := ctx.CurrentTask.Sentence.Punctuation == evidence.Judgement && ctx.CurrentTask.Sentence.Revisable
	return ctx.buildAndDerive(ctx.CurrentTask, newContent, ctx.CurrentTask.Sentence.Punctuation, newTruth, revisable, newBudget, stamp, nil)
}

func (ctx *Context) buildAndDerive(parent *evidence.Task, content term.Term, punct evidence.Punctuation, tv *truth.Truth, revisable bool, b budget.Budget, stamp evidence.Stamp, parentBelief *evidence.Sentence) bool {
	var sentence evidence.Sentence
	switch punct {
	case evidence.Judgement:
		if tv == nil {
			return false
		}
		sentence = evidence.NewJudgement(content, *tv, stamp, revisable)
	case evidence.Question:
		sentence = evidence.NewQuestion(content, stamp, false)
	}
	task := evidence.New(sentence, b, ctx.Time, ctx.Time, parent, parentBelief)
	return ctx.DerivedTask(task)
}
