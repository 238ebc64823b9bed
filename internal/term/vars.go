package term

// NormalizeVariables renumbers every variable in t, per kind, in
// left-to-right first-occurrence order starting at 1. narsese.Parse applies
// it to every parsed sentence's content, and Substitute to its result
// (see §4.1's "variable normalization" step), so that two
// structurally-equivalent terms with differently numbered variables
// compare equal.
func NormalizeVariables(t Term) Term {
	counters := map[Kind]int{}
	assigned := map[string]Term{}
	return renumber(t, counters, assigned)
}

func renumber(t Term, counters map[Kind]int, assigned map[string]Term) Term {
	if t.kind.isVariable() {
		if existing, ok := assigned[t.key]; ok {
			return existing
		}
		counters[t.kind]++
		fresh := NewVariable(t.kind, counters[t.kind])
		assigned[t.key] = fresh
		return fresh
	}
	if len(t.components) == 0 {
		return t
	}
	newComponents := make([]Term, len(t.components))
	changed := false
	for i, c := range t.components {
		nc := renumber(c, counters, assigned)
		newComponents[i] = nc
		if nc.key != c.key {
			changed = true
		}
	}
	if !changed {
		return t
	}
	// Commutative compounds must be re-sorted after renumbering since
	// variable identity affects canonical order.
	if t.kind.commutative() && !t.kind.isStatement() {
		newComponents = sortComponents(newComponents)
	} else if t.kind.commutative() && t.kind.isStatement() && len(newComponents) == 2 && newComponents[0].key > newComponents[1].key {
		newComponents[0], newComponents[1] = newComponents[1], newComponents[0]
	}
	return finish(t.kind, newComponents)
}

// CollectVariables returns every distinct variable of the given kind
// appearing in t, in first-occurrence left-to-right order.
func CollectVariables(t Term, kind Kind) []Term {
	seen := map[string]bool{}
	var out []Term
	var walk func(Term)
	walk = func(x Term) {
		if x.kind == kind {
			if !seen[x.key] {
				seen[x.key] = true
				out = append(out, x)
			}
			return
		}
		for _, c := range x.components {
			walk(c)
		}
	}
	walk(t)
	return out
}

// Substitute rewrites every occurrence of a variable term whose key matches
// a key in mapping with its replacement, then renormalizes variables in the
// result.
func Substitute(t Term, mapping map[string]Term) Term {
	replaced := substitute(t, mapping)
	return NormalizeVariables(replaced)
}

func substitute(t Term, mapping map[string]Term) Term {
	if t.kind.isVariable() {
		if r, ok := mapping[t.key]; ok {
			return r
		}
		return t
	}
	if len(t.components) == 0 {
		return t
	}
	newComponents := make([]Term, len(t.components))
	changed := false
	for i, c := range t.components {
		nc := substitute(c, mapping)
		newComponents[i] = nc
		if nc.key != c.key {
			changed = true
		}
	}
	if !changed {
		return t
	}
	if t.kind.commutative() && !t.kind.isStatement() {
		newComponents = sortComponents(newComponents)
	} else if t.kind.commutative() && t.kind.isStatement() && len(newComponents) == 2 && newComponents[0].key > newComponents[1].key {
		newComponents[0], newComponents[1] = newComponents[1], newComponents[0]
	}
	return finish(t.kind, newComponents)
}

// IndependentVariableValid reports whether an independent variable appears
// in at least two different statement subterms of the containing compound,
// the validity rule from §4.2.
func IndependentVariableValid(root Term, v Term) bool {
	count := 0
	var walk func(Term)
	walk = func(x Term) {
		if x.kind.isStatement() {
			if containsKey(x, v.key) {
				count++
			}
		}
		for _, c := range x.components {
			walk(c)
		}
	}
	walk(root)
	return count >= 2
}

func containsKey(t Term, key string) bool {
	if t.key == key {
		return true
	}
	for _, c := range t.components {
		if containsKey(c, key) {
			return true
		}
	}
	return false
}
