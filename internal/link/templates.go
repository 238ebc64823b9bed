package link

import "github.com/narust/reasoner/internal/term"

// BuildTemplates computes the term-link templates for a compound concept's
// term, once, at concept creation. Each direct component gets an inward
// (Component*) template; statement components additionally get a
// *Condition variant so compositional rules can recognize them as
// candidate antecedents.
func BuildTemplates(t term.Term) []Template {
	if !t.IsCompound() {
		return nil
	}
	var out []Template
	statement := t.IsStatement()
	n := t.Size()
	for i := 0; i < n; i++ {
		child, ok := t.ComponentAt(i)
		if !ok {
			continue
		}
		typ := Component
		if statement {
			typ = ComponentStatement
		}
		out = append(out, Template{Target: child.Key(), Type: typ, Indices: []int{i}})

		if child.IsStatement() {
			out = append(out, Template{Target: child.Key(), Type: ComponentCondition, Indices: []int{i}})
		}
	}
	return out
}

// BuildOutward computes the term-link template a component concept uses to
// point back up to a compound that contains it — the Compound/
// CompoundStatement counterpart of BuildTemplates. It never produces a
// CompoundCondition template.
func BuildOutward(compound term.Term, childIndex int) Template {
	typ := CompoundLink
	if compound.IsStatement() {
		typ = CompoundStatement
	}
	return Template{Target: compound.Key(), Type: typ, Indices: []int{childIndex}}
}
