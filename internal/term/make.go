package term

// Empty returns the image placeholder term.
func Empty() Term {
	return Term{kind: KindEmpty, key: "_", constant: true}
}

// NewWord constructs an atomic word term.
func NewWord(name string) Term {
	t := Term{kind: KindWord, name: name, constant: true}
	t.key = buildKey(t.kind, t.name, 0, nil)
	return t
}

// NewVariable constructs a variable term of the given kind (must be one of
// KindVarIndep/KindVarDep/KindVarQuery) and numeric id.
func NewVariable(kind Kind, id int) Term {
	t := Term{kind: kind, varID: id, constant: false}
	t.key = buildKey(t.kind, "", id, nil)
	return t
}

// finish computes and caches constant-ness and the canonical key for a
// compound given its (already ordered/validated) component list.
func finish(kind Kind, components []Term) Term {
	t := Term{kind: kind, components: components}
	t.constant = true
	for _, c := range components {
		if !c.constant {
			t.constant = false
			break
		}
	}
	t.key = buildKey(kind, "", 0, components)
	return t
}

// MakeStatement builds one of the four copula statements, applying the
// reflexive/circular rejection and canonical-order simplification for the
// commutative copulas (similarity, equivalence). Returns ok=false ("no
// term") on any invalid construction; callers must treat this as "this
// derivation yields nothing" rather than an error.
func MakeStatement(kind Kind, subject, predicate Term) (Term, bool) {
	if !kind.isStatement() {
		return Term{}, false
	}
	if isReflexive(subject, predicate) {
		return Term{}, false
	}
	if isCircularDouble(kind, subject, predicate) {
		return Term{}, false
	}
	s, p := subject, predicate
	if kind.commutative() && s.key > p.key {
		s, p = p, s
	}
	return finish(kind, []Term{s, p}), true
}

// isReflexive rejects <A --> A>, <A --> {A}>, <{A} --> A>.
func isReflexive(subject, predicate Term) bool {
	if subject.key == predicate.key {
		return true
	}
	if predicate.kind == KindSetExt && len(predicate.components) == 1 && predicate.components[0].key == subject.key {
		return true
	}
	if subject.kind == KindSetExt && len(subject.components) == 1 && subject.components[0].key == predicate.key {
		return true
	}
	return false
}

// isCircularDouble rejects <<A --> B> ==> <B --> A>> shaped statements:
// an implication/equivalence whose sides are the same-copula statement with
// subject and predicate swapped.
func isCircularDouble(kind Kind, subject, predicate Term) bool {
	if kind != KindImplication && kind != KindEquivalence {
		return false
	}
	if !subject.kind.isStatement() || !predicate.kind.isStatement() {
		return false
	}
	if subject.kind != predicate.kind {
		return false
	}
	sSub, ok1 := subject.Subject()
	sPred, ok2 := subject.Predicate()
	pSub, ok3 := predicate.Subject()
	pPred, ok4 := predicate.Predicate()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return sSub.key == pPred.key && sPred.key == pSub.key
}

// MakeSetExt builds an extensional set: always sorted, deduplicated, never
// collapses to a bare member.
func MakeSetExt(components []Term) (Term, bool) {
	if len(components) == 0 {
		return Term{}, false
	}
	return finish(KindSetExt, sortComponents(components)), true
}

// MakeSetInt builds an intensional set, same rules as MakeSetExt.
func MakeSetInt(components []Term) (Term, bool) {
	if len(components) == 0 {
		return Term{}, false
	}
	return finish(KindSetInt, sortComponents(components)), true
}

// MakeIntersectExt builds an extensional intersection: sorted, deduplicated,
// and a one-member result collapses to that member.
func MakeIntersectExt(components []Term) (Term, bool) {
	return makeCollapsingCommutative(KindIntersectExt, components)
}

// MakeIntersectInt builds an intensional intersection, same rules.
func MakeIntersectInt(components []Term) (Term, bool) {
	return makeCollapsingCommutative(KindIntersectInt, components)
}

func makeCollapsingCommutative(kind Kind, components []Term) (Term, bool) {
	if len(components) == 0 {
		return Term{}, false
	}
	sorted := sortComponents(components)
	if len(sorted) == 1 {
		return sorted[0], true
	}
	return finish(kind, sorted), true
}

// MakeDiffExt builds an ordered extensional difference; arity is always 2.
func MakeDiffExt(a, b Term) (Term, bool) {
	if a.key == b.key {
		return Term{}, false
	}
	return finish(KindDiffExt, []Term{a, b}), true
}

// MakeDiffInt builds an ordered intensional difference; arity is always 2.
func MakeDiffInt(a, b Term) (Term, bool) {
	if a.key == b.key {
		return Term{}, false
	}
	return finish(KindDiffInt, []Term{a, b}), true
}

// MakeProduct builds an ordered product term; arity >= 1.
func MakeProduct(components []Term) (Term, bool) {
	if len(components) == 0 {
		return Term{}, false
	}
	cs := make([]Term, len(components))
	copy(cs, components)
	return finish(KindProduct, cs), true
}

// MakeImageExt builds an extensional image. placeholderIndex is the
// position of the relation placeholder within components (0-indexed); it
// must be >= 1, since an image must have a relation term first.
func MakeImageExt(components []Term, placeholderIndex int) (Term, bool) {
	return makeImage(KindImageExt, components, placeholderIndex)
}

// MakeImageInt builds an intensional image, same rules as MakeImageExt.
func MakeImageInt(components []Term, placeholderIndex int) (Term, bool) {
	return makeImage(KindImageInt, components, placeholderIndex)
}

func makeImage(kind Kind, components []Term, placeholderIndex int) (Term, bool) {
	if len(components) == 0 || placeholderIndex < 1 || placeholderIndex >= len(components) {
		return Term{}, false
	}
	cs := make([]Term, len(components))
	copy(cs, components)
	cs[placeholderIndex] = Empty()
	return finish(kind, cs), true
}

// MakeConjunction builds a commutative conjunction: sorted, deduplicated.
func MakeConjunction(components []Term) (Term, bool) {
	if len(components) == 0 {
		return Term{}, false
	}
	return finish(KindConjunction, sortComponents(components)), true
}

// MakeDisjunction builds a commutative disjunction: sorted, deduplicated.
func MakeDisjunction(components []Term) (Term, bool) {
	if len(components) == 0 {
		return Term{}, false
	}
	return finish(KindDisjunction, sortComponents(components)), true
}

// MakeNegation builds a negation; double negation collapses:
// MakeNegation(MakeNegation(t)) == t.
func MakeNegation(t Term) (Term, bool) {
	if t.kind == KindNegation {
		return t.components[0], true
	}
	return finish(KindNegation, []Term{t}), true
}

// MakeInheritance is MakeStatement(KindInheritance, ...).
func MakeInheritance(subject, predicate Term) (Term, bool) {
	return MakeStatement(KindInheritance, subject, predicate)
}

// MakeSimilarity is MakeStatement(KindSimilarity, ...).
func MakeSimilarity(subject, predicate Term) (Term, bool) {
	return MakeStatement(KindSimilarity, subject, predicate)
}

// MakeImplication is MakeStatement(KindImplication, ...).
func MakeImplication(subject, predicate Term) (Term, bool) {
	return MakeStatement(KindImplication, subject, predicate)
}

// MakeEquivalence is MakeStatement(KindEquivalence, ...).
func MakeEquivalence(subject, predicate Term) (Term, bool) {
	return MakeStatement(KindEquivalence, subject, predicate)
}
