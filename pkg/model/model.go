// Package model implements counter-model extraction: reading an open
// branch into a per-world truth-value assignment and reporting whether it
// refutes the tableau's argument. It is a read-only projection over
// pkg/tableau's Branch/Node arena and never mutates it.
package model

import (
	"fmt"
	"strings"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// Literal pairs a mined atomic or predicated sentence with the truth value
// the branch's evidence assigns it at one world.
type Literal struct {
	Sentence lexicon.Sentence
	Value    logic.TruthValue
}

// Model is the countermodel: a frame (worlds plus
// access relation) and, per world, a literal interpretation. Non-modal
// logics always report exactly world 0 with an empty access relation.
type Model struct {
	LogicName      string
	Worlds         []int
	Access         map[int][]int
	Literals       map[int][]Literal
	IsCounterModel bool
}

var _ tableau.Model = (*Model)(nil)

// String renders a compact, human-readable assignment, satisfying the
// tableau.Model marker interface.
func (m *Model) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s countermodel", m.LogicName)
	for _, w := range m.Worlds {
		fmt.Fprintf(&b, " w%d{", w)
		for i, lit := range m.Literals[w] {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%s=%s", lit.Sentence, lit.Value)
		}
		b.WriteByte('}')
	}
	return b.String()
}

// ValueAt returns the value Literals[w] assigns to s, defaulting to
// FalseValue when s has no evidence on the branch at all (true if A
// appears, false otherwise).
func (m *Model) ValueAt(w int, s lexicon.Sentence) logic.TruthValue {
	for _, lit := range m.Literals[w] {
		if lexicon.Compare(lit.Sentence, s) == 0 {
			return lit.Value
		}
	}
	return logic.FalseValue
}

// Extension partitions pred's instances at world w into its extension
// (designated value) and anti-extension (undesignated value).
func (m *Model) Extension(meta logic.Meta, w int, pred lexicon.Predicate) (extension, antiExtension [][]lexicon.Parameter) {
	for _, lit := range m.Literals[w] {
		p, ok := lit.Sentence.(lexicon.Predicated)
		if !ok || p.Pred != pred {
			continue
		}
		if meta.IsDesignatedValue(lit.Value) {
			extension = append(extension, p.Params)
		} else {
			antiExtension = append(antiExtension, p.Params)
		}
	}
	return extension, antiExtension
}

// Extract mines branch into a Model for l, and determines whether it is a
// countermodel for tb.Argument: iff the premises are all designated at
// w0 and the conclusion is not designated at w0.
func Extract(tb *tableau.Tableau, l *logic.Logic, branch *tableau.Branch) *Model {
	worlds := branch.Worlds()
	if len(worlds) == 0 {
		worlds = []int{0}
	}

	m := &Model{LogicName: l.Name, Worlds: worlds, Access: map[int][]int{}, Literals: map[int][]Literal{}}
	for _, w := range worlds {
		m.Access[w] = accessibleFrom(branch, w)
		m.Literals[w] = literalsAtWorld(branch, l.Meta, w)
	}

	domain := branch.Constants()
	designated := func(s lexicon.Sentence) bool {
		return l.Meta.IsDesignatedValue(Evaluate(l, m, domain, 0, s))
	}
	counter := true
	for _, p := range tb.Argument.Premises {
		if !designated(p) {
			counter = false
			break
		}
	}
	if counter && designated(tb.Argument.Conclusion) {
		counter = false
	}
	m.IsCounterModel = counter
	return m
}

func accessibleFrom(b *tableau.Branch, w int) []int {
	var out []int
	for _, n := range b.Nodes() {
		if n.HasAccess() && *n.World1 == w {
			out = append(out, *n.World2)
		}
	}
	return out
}

// literalsAtWorld mines every base (non-compound) sentence appearing,
// asserted or negated, on nodes stamped at w, folding repeated occurrences
// into one (hasTrue, hasFalse) evidence pair by mining the (±A, ±¬A)
// pairs off the branch — the same bilattice encoding common.FDEModel uses
// for its truth tables, reused here to read evidence back out instead of
// combining it.
func literalsAtWorld(b *tableau.Branch, meta logic.Meta, w int) []Literal {
	type evidence struct{ hasTrue, hasFalse bool }
	order := []lexicon.Sentence{}
	byKey := map[string]*evidence{}

	for _, n := range b.Nodes() {
		if n.Sentence == nil || !atWorld(n, w) {
			continue
		}
		base, negated := baseLiteral(n.Sentence)
		if base == nil {
			continue
		}
		asserted := !meta.Designation || n.IsDesignated()
		if meta.Designation && !n.HasDesignation() {
			continue
		}
		key := base.String()
		e, ok := byKey[key]
		if !ok {
			e = &evidence{}
			byKey[key] = e
			order = append(order, base)
		}
		switch {
		case !negated && asserted:
			e.hasTrue = true
		case negated && asserted:
			e.hasFalse = true
		}
	}

	out := make([]Literal, 0, len(order))
	for _, base := range order {
		e := byKey[base.String()]
		out = append(out, Literal{Sentence: base, Value: valueFromEvidence(meta, e.hasTrue, e.hasFalse)})
	}
	return out
}

func atWorld(n *tableau.Node, w int) bool {
	if n.World == nil {
		return w == 0
	}
	return *n.World == w
}

// baseLiteral reduces s to its underlying Atomic/Predicated sentence and
// whether s negates it, or returns (nil, false) for anything else (a
// compound sentence left on the branch contributes no direct evidence; its
// fully-decomposed literals do).
func baseLiteral(s lexicon.Sentence) (lexicon.Sentence, bool) {
	if inner, ok := lexicon.Unnegate(s); ok {
		if isLiteral(inner) {
			return inner, true
		}
		return nil, false
	}
	if isLiteral(s) {
		return s, false
	}
	return nil, false
}

func isLiteral(s lexicon.Sentence) bool {
	switch s.(type) {
	case lexicon.Atomic, lexicon.Predicated:
		return true
	default:
		return false
	}
}

func valueFromEvidence(meta logic.Meta, hasTrue, hasFalse bool) logic.TruthValue {
	switch {
	case hasTrue && hasFalse:
		if metaHas(meta, logic.GlutValue) {
			return logic.GlutValue
		}
		return logic.TrueValue
	case hasTrue:
		return logic.TrueValue
	case hasFalse:
		return logic.FalseValue
	default:
		if metaHas(meta, logic.GapValue) {
			return logic.GapValue
		}
		return logic.FalseValue
	}
}

func metaHas(meta logic.Meta, v logic.TruthValue) bool {
	for _, x := range meta.Values {
		if x == v {
			return true
		}
	}
	return false
}

// Evaluate computes s's truth value at world w under m, recursing through
// operators via l.Model.TruthFunction, through quantifiers via
// l.Model.Quantify over domain, and through the modal operators via m's
// access relation: a per-world interpretation read back as a full
// evaluator, needed to decide premise/conclusion designation rather than
// just display mined literals.
func Evaluate(l *logic.Logic, m *Model, domain []lexicon.Constant, w int, s lexicon.Sentence) logic.TruthValue {
	switch t := s.(type) {
	case lexicon.Atomic, lexicon.Predicated:
		return m.ValueAt(w, t)
	case lexicon.Quantified:
		if len(domain) == 0 {
			return l.Model.Quantify(t.Quant, nil)
		}
		vals := make([]logic.TruthValue, len(domain))
		for i, c := range domain {
			vals[i] = Evaluate(l, m, domain, w, lexicon.Substitute(t.Body, t.Var, c))
		}
		return l.Model.Quantify(t.Quant, vals)
	case lexicon.Operated:
		switch t.Op {
		case lexicon.Possibility:
			for _, w2 := range m.Access[w] {
				if l.Meta.IsDesignatedValue(Evaluate(l, m, domain, w2, t.Operands[0])) {
					return logic.TrueValue
				}
			}
			return logic.FalseValue
		case lexicon.Necessity:
			for _, w2 := range m.Access[w] {
				if !l.Meta.IsDesignatedValue(Evaluate(l, m, domain, w2, t.Operands[0])) {
					return logic.FalseValue
				}
			}
			return logic.TrueValue
		default:
			vals := make([]logic.TruthValue, len(t.Operands))
			for i, o := range t.Operands {
				vals[i] = Evaluate(l, m, domain, w, o)
			}
			return l.Model.TruthFunction(t.Op, vals...)
		}
	default:
		return logic.FalseValue
	}
}
