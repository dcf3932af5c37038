package common

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// AsOperated type-asserts s as an Operated sentence.
func AsOperated(s lexicon.Sentence) (lexicon.Operated, bool) {
	o, ok := s.(lexicon.Operated)
	return o, ok
}

// IsOp reports whether s is an Operated sentence with the given operator.
func IsOp(s lexicon.Sentence, op lexicon.Operator) bool {
	o, ok := AsOperated(s)
	return ok && o.Op == op
}

// NegatedOperand returns the operand of s when s is a Negation, else
// (nil, false).
func NegatedOperand(s lexicon.Sentence) (lexicon.Sentence, bool) {
	o, ok := AsOperated(s)
	if ok && o.Op == lexicon.Negation {
		return o.Operands[0], true
	}
	return nil, false
}

// IsNegatedOp reports whether s is ¬(X op Y) for the given op.
func IsNegatedOp(s lexicon.Sentence, op lexicon.Operator) bool {
	inner, ok := NegatedOperand(s)
	return ok && IsOp(inner, op)
}

// AsQuantified type-asserts s as a Quantified sentence.
func AsQuantified(s lexicon.Sentence) (lexicon.Quantified, bool) {
	q, ok := s.(lexicon.Quantified)
	return q, ok
}

// Carry propagates source's world stamp onto spec, implementing the
// modal-mixin recipe: wherever a base rule reads the sentence of node N,
// the modal variant also reads N.world and stamps every node it appends
// with that world. Non-modal source nodes (World == nil) leave spec
// untouched, so the same decomposition code serves both.
func Carry(source *tableau.Node, spec tableau.NodeSpec) tableau.NodeSpec {
	if source.World != nil {
		spec = spec.AtWorld(*source.World)
	}
	return spec
}
