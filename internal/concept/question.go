package concept

import (
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
)

// SolutionQuality scores how well solution answers problem: plain
// expectation if there is no problem term to match against; expectation
// divided by complexity when the problem carries query variables (so
// simpler bindings are preferred); otherwise plain confidence.
func SolutionQuality(problem term.Term, hasProblem bool, solution evidence.Sentence) float64 {
	if !hasProblem {
		return solution.Truth.Expectation()
	}
	if len(term.CollectVariables(problem, term.KindVarQuery)) > 0 {
		complexity := term.Complexity(solution.Content)
		if complexity < 1 {
			complexity = 1
		}
		return solution.Truth.Expectation() / float64(complexity)
	}
	return solution.Truth.C.Float64()
}

// TrySolution compares candidate against question's current best solution
// and, if strictly better, installs it. Returns whether a new best was
// installed and the quality score computed for candidate, which the
// caller uses to decide whether to emit an ANSWER output and/or an
// activated derived task.
func TrySolution(question *evidence.Sentence, candidate evidence.Sentence) (accepted bool, quality float64) {
	quality = SolutionQuality(question.Content, true, candidate)
	if question.BestSolution != nil {
		oldQuality := SolutionQuality(question.Content, true, *question.BestSolution)
		if quality <= oldQuality {
			return false, quality
		}
	}
	cp := candidate
	question.BestSolution = &cp
	return true, quality
}

// FindAnswer searches the concept's belief table for the judgement that
// best answers q, without mutating q.
func (c *Concept) FindAnswer(q evidence.Sentence) (evidence.Sentence, bool) {
	var best evidence.Sentence
	bestQuality := -1.0
	found := false
	for _, belief := range c.Beliefs {
		quality := SolutionQuality(q.Content, true, belief)
		if quality > bestQuality {
			bestQuality = quality
			best = belief
			found = true
		}
	}
	return best, found
}
