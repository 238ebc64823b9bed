// Package unify implements variable processing: unification, substitution
// application, and bounded commutative search, the three pure operations
// rule tables use to match compounds that differ only by variable binding.
package unify

import (
	"sort"

	"github.com/narust/reasoner/internal/term"
)

// Unification is the result of attempting to make two terms structurally
// equal by substituting variables of one kind.
type Unification struct {
	Has  bool
	MapA map[string]term.Term
	MapB map[string]term.Term
}

// maxPermutationDepth bounds the backtracking search over commutative
// compound orderings so that unification stays within one cycle's budget,
// per §9's "keep time bounded per cycle" note.
const maxPermutationDepth = 24

// FindUnification tries to make a and b structurally equal by substituting
// variables of the given kind in either side. For commutative compounds the
// search iterates permutations in index order but starting point is
// perturbed by seed, so different cycles explore different orientations
// without needing true randomness.
func FindUnification(kind term.Kind, a, b term.Term, seed int64) Unification {
	mapA := map[string]term.Term{}
	mapB := map[string]term.Term{}
	ok := unify(kind, a, b, mapA, mapB, seed)
	return Unification{Has: ok, MapA: mapA, MapB: mapB}
}

// HasUnificationQ is a boolean short-circuit over query variables, used by
// question-answering search without needing the substitution maps.
func HasUnificationQ(a, b term.Term, seed int64) bool {
	return FindUnification(term.KindVarQuery, a, b, seed).Has
}

// Apply rewrites termA and termB using the substitution maps found by
// FindUnification and reports whether any substitution actually happened.
func Apply(u Unification, a, b term.Term) (term.Term, term.Term, bool) {
	if !u.Has {
		return a, b, false
	}
	changed := false
	ra := a
	if len(u.MapA) > 0 {
		ra = term.Substitute(a, u.MapA)
		changed = changed || ra.Key() != a.Key()
	}
	rb := b
	if len(u.MapB) > 0 {
		rb = term.Substitute(b, u.MapB)
		changed = changed || rb.Key() != b.Key()
	}
	return ra, rb, changed
}

func unify(kind term.Kind, a, b term.Term, mapA, mapB map[string]term.Term, seed int64) bool {
	a = resolve(a, mapA)
	b = resolve(b, mapB)

	if a.Key() == b.Key() {
		return true
	}
	if a.Kind() == kind {
		mapA[a.Key()] = b
		return true
	}
	if b.Kind() == kind {
		mapB[b.Key()] = a
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	ca, cb := a.Components(), b.Components()
	if len(ca) != len(cb) {
		return false
	}
	if len(ca) == 0 {
		return false
	}
	if a.Kind().Commutative() {
		return unifyCommutative(kind, ca, cb, mapA, mapB, seed)
	}
	for i := range ca {
		if !unify(kind, ca[i], cb[i], mapA, mapB, seed) {
			return false
		}
	}
	return true
}

// resolve follows a variable binding chain to its current value, if bound.
func resolve(t term.Term, m map[string]term.Term) term.Term {
	for {
		v, ok := m[t.Key()]
		if !ok {
			return t
		}
		t = v
	}
}

// unifyCommutative tries matchings of cb's elements to ca's in permutation
// order, starting at an offset derived from seed, stopping at the first
// success (bounded by maxPermutationDepth attempts).
func unifyCommutative(kind term.Kind, ca, cb []term.Term, mapA, mapB map[string]term.Term, seed int64) bool {
	n := len(ca)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	offset := int(seed % int64(max(n, 1)))
	if offset < 0 {
		offset += n
	}
	attempts := 0
	perm := rotate(order, offset)
	for {
		attempts++
		if tryMatch(kind, ca, cb, perm, mapA, mapB) {
			return true
		}
		if !nextPermutation(perm) || attempts >= maxPermutationDepth {
			return false
		}
	}
}

func tryMatch(kind term.Kind, ca, cb []term.Term, perm []int, mapA, mapB map[string]term.Term) bool {
	trialA := cloneMap(mapA)
	trialB := cloneMap(mapB)
	for i, j := range perm {
		if !unify(kind, ca[i], cb[j], trialA, trialB, 0) {
			return false
		}
	}
	for k, v := range trialA {
		mapA[k] = v
	}
	for k, v := range trialB {
		mapB[k] = v
	}
	return true
}

func cloneMap(m map[string]term.Term) map[string]term.Term {
	out := make(map[string]term.Term, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func rotate(order []int, offset int) []int {
	n := len(order)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = order[(i+offset)%n]
	}
	return out
}

// nextPermutation advances perm to the next lexicographic permutation,
// reporting whether one existed.
func nextPermutation(perm []int) bool {
	n := len(perm)
	i := n - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for perm[j] <= perm[i] {
		j--
	}
	perm[i], perm[j] = perm[j], perm[i]
	sort.Ints(perm[i+1:])
	return true
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
