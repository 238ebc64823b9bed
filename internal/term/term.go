// Package term implements the immutable term algebra: atoms, compounds,
// statements and variables, with the construction/simplification pipeline
// and the structural predicates rules are built from.
package term

import (
	"sort"
	"strings"
)

// Kind identifies which of the fixed set of term shapes a Term is.
type Kind int

const (
	KindEmpty Kind = iota // placeholder only, valid only inside Image components
	KindWord
	KindVarIndep // $
	KindVarDep   // #
	KindVarQuery // ?
	KindSetExt   // {a,b,...}
	KindSetInt   // [a,b,...]
	KindIntersectExt
	KindIntersectInt
	KindDiffExt
	KindDiffInt
	KindProduct
	KindImageExt
	KindImageInt
	KindConjunction
	KindDisjunction
	KindNegation
	KindInheritance
	KindSimilarity
	KindImplication
	KindEquivalence
)

// Commutative reports whether a compound of this kind stores its
// components/sides in a canonical sorted order rather than positional order.
func (k Kind) Commutative() bool { return k.commutative() }

// commutative reports whether a compound of this kind stores its
// components/sides in a canonical sorted order rather than positional order.
func (k Kind) commutative() bool {
	switch k {
	case KindSetExt, KindSetInt, KindIntersectExt, KindIntersectInt,
		KindConjunction, KindDisjunction, KindSimilarity, KindEquivalence:
		return true
	default:
		return false
	}
}

// isStatement reports whether a kind is one of the four copula statements.
func (k Kind) isStatement() bool {
	switch k {
	case KindInheritance, KindSimilarity, KindImplication, KindEquivalence:
		return true
	default:
		return false
	}
}

// isVariable reports whether a kind denotes a variable term.
func (k Kind) isVariable() bool {
	switch k {
	case KindVarIndep, KindVarDep, KindVarQuery:
		return true
	default:
		return false
	}
}

// Term is an immutable value: atoms carry a Name, variables carry a VarID,
// and everything else is a Kind plus an ordered list of Components. Once
// constructed through Make/New* a Term is never mutated.
type Term struct {
	kind       Kind
	name       string // KindWord
	varID      int    // KindVarIndep/Dep/Query
	components []Term // compounds and statements, in stored (possibly canonicalized) order

	constant bool   // cached: true iff no variable appears anywhere below
	key      string // cached canonical printed form, used for equality/hashing/bag keys
}

// Kind returns the term's shape tag.
func (t Term) Kind() Kind { return t.kind }

// Name returns the atomic word; valid only for KindWord.
func (t Term) Name() string { return t.name }

// VarID returns the variable's numeric id; valid only for variable kinds.
func (t Term) VarID() int { return t.varID }

// IsConstant reports whether the term contains no variables anywhere in its
// structure. Cached at construction.
func (t Term) IsConstant() bool { return t.constant }

// IsEmpty reports whether this is the image placeholder term.
func (t Term) IsEmpty() bool { return t.kind == KindEmpty }

// IsVariable reports whether the term itself is a variable (of any kind).
func (t Term) IsVariable() bool { return t.kind.isVariable() }

// IsStatement reports whether the term is one of the four copula statements.
func (t Term) IsStatement() bool { return t.kind.isStatement() }

// IsCompound reports whether the term has components (anything but Word,
// Empty, or a variable).
func (t Term) IsCompound() bool {
	switch t.kind {
	case KindWord, KindEmpty, KindVarIndep, KindVarDep, KindVarQuery:
		return false
	default:
		return true
	}
}

// Size counts components, excluding an image placeholder slot if present.
func (t Term) Size() int {
	n := 0
	for _, c := range t.components {
		if c.kind == KindEmpty {
			continue
		}
		n++
	}
	return n
}

// ComponentAt returns the i-th non-placeholder component (0-indexed).
func (t Term) ComponentAt(i int) (Term, bool) {
	idx := 0
	for _, c := range t.components {
		if c.kind == KindEmpty {
			continue
		}
		if idx == i {
			return c, true
		}
		idx++
	}
	return Term{}, false
}

// Components returns the raw, stored component list (placeholder included
// for images). Callers that need Size/ComponentAt semantics should use
// those instead of indexing this directly.
func (t Term) Components() []Term {
	out := make([]Term, len(t.components))
	copy(out, t.components)
	return out
}

// Key returns the canonical string form used for equality, hashing and as
// a bag/map key. Two terms are structurally equal iff their keys match.
func (t Term) Key() string { return t.key }

// Equal reports structural equality.
func (t Term) Equal(o Term) bool { return t.key == o.key }

// Subject returns the left side of a statement.
func (t Term) Subject() (Term, bool) {
	if !t.kind.isStatement() || len(t.components) != 2 {
		return Term{}, false
	}
	return t.components[0], true
}

// Predicate returns the right side of a statement.
func (t Term) Predicate() (Term, bool) {
	if !t.kind.isStatement() || len(t.components) != 2 {
		return Term{}, false
	}
	return t.components[1], true
}

// Complexity counts every node in the term tree (1 for an atom/variable,
// 1 + sum of children's complexity for a compound), used to scale budget
// by how elaborate a derived term is.
func Complexity(t Term) int {
	if len(t.components) == 0 {
		return 1
	}
	sum := 1
	for _, c := range t.components {
		if c.kind == KindEmpty {
			continue
		}
		sum += Complexity(c)
	}
	return sum
}

// containsVariable walks the term tree.
func containsVariable(t Term) bool {
	if t.kind.isVariable() {
		return true
	}
	for _, c := range t.components {
		if containsVariable(c) {
			return true
		}
	}
	return false
}

// sortComponents returns a new slice sorted by canonical key, with
// duplicates (by key) removed.
func sortComponents(cs []Term) []Term {
	sorted := make([]Term, len(cs))
	copy(sorted, cs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].key < sorted[j].key })
	out := sorted[:0:0]
	var lastKey string
	first := true
	for _, c := range sorted {
		if !first && c.key == lastKey {
			continue
		}
		out = append(out, c)
		lastKey = c.key
		first = false
	}
	return out
}

func kindPrefix(k Kind) string {
	switch k {
	case KindSetExt:
		return "{"
	case KindSetInt:
		return "["
	case KindIntersectExt:
		return "&"
	case KindIntersectInt:
		return "|"
	case KindDiffExt:
		return "-"
	case KindDiffInt:
		return "~"
	case KindProduct:
		return "*"
	case KindImageExt:
		return "/"
	case KindImageInt:
		return "\\"
	case KindConjunction:
		return "&&"
	case KindDisjunction:
		return "||"
	case KindNegation:
		return "--"
	case KindInheritance:
		return "-->"
	case KindSimilarity:
		return "<->"
	case KindImplication:
		return "==>"
	case KindEquivalence:
		return "<=>"
	default:
		return "?"
	}
}

// buildKey renders the canonical printed form of a term given its already
// (possibly) canonicalized components.
func buildKey(kind Kind, name string, varID int, components []Term) string {
	switch kind {
	case KindEmpty:
		return "_"
	case KindWord:
		return name
	case KindVarIndep:
		return "$" + itoa(varID)
	case KindVarDep:
		return "#" + itoa(varID)
	case KindVarQuery:
		return "?" + itoa(varID)
	case KindInheritance, KindSimilarity, KindImplication, KindEquivalence:
		return "<" + components[0].key + kindPrefix(kind) + components[1].key + ">"
	case KindNegation:
		return "(--," + components[0].key + ")"
	case KindSetExt, KindSetInt:
		parts := make([]string, len(components))
		for i, c := range components {
			parts[i] = c.key
		}
		open, close := "{", "}"
		if kind == KindSetInt {
			open, close = "[", "]"
		}
		return open + strings.Join(parts, ",") + close
	default:
		parts := make([]string, len(components))
		for i, c := range components {
			parts[i] = c.key
		}
		return "(" + kindPrefix(kind) + "," + strings.Join(parts, ",") + ")"
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
